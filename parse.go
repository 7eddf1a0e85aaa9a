// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

import (
	"strconv"

	"github.com/pkg/errors"
)

// ParseWord parses a binary string like "0000000000010001" into a word of
// len(s) bits, most significant bit first. Any character other than '0' or
// '1' yields a *FormatError.
func ParseWord(s string) (Word, error) {
	if len(s) == 0 {
		return nil, errors.WithStack(&FormatError{Input: s, Pos: -1, Msg: "empty word"})
	}
	w := make(Word, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			w[i] = Hi
		default:
			return nil, errors.WithStack(&FormatError{Input: s, Pos: i, Msg: "expected 0 or 1"})
		}
	}
	return w, nil
}

// ParseWordN is like ParseWord but also requires the string to be exactly
// width characters long.
func ParseWordN(s string, width int) (Word, error) {
	if len(s) != width {
		return nil, errors.WithStack(&FormatError{Input: s, Pos: -1,
			Msg: "expected " + strconv.Itoa(width) + " binary digits"})
	}
	return ParseWord(s)
}

// MustParseWord is like ParseWord but panics on error.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}
