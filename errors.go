// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

import (
	"strconv"

	"github.com/pkg/errors"
)

// A WidthError reports a word passed to an operation with a width other than
// the one required by that operation.
type WidthError struct {
	Op       string // operation name, e.g. "Add16"
	Expected int
	Got      int
}

func (e *WidthError) Error() string {
	return e.Op + ": expected " + strconv.Itoa(e.Expected) + " bits word, got " + strconv.Itoa(e.Got) + " bits"
}

// A FormatError reports a malformed binary string.
type FormatError struct {
	Input string
	Pos   int // offending byte offset, or -1 for a length mismatch
	Msg   string
}

func (e *FormatError) Error() string {
	if e.Pos < 0 {
		return strconv.Quote(e.Input) + ": " + e.Msg
	}
	return "in " + strconv.Quote(e.Input) + " at pos " + strconv.Itoa(e.Pos+1) + ": " + e.Msg
}

// CheckWidth panics with a *WidthError if w is not width bits wide.
func CheckWidth(op string, w Word, width int) {
	if len(w) != width {
		panic(errors.WithStack(&WidthError{Op: op, Expected: width, Got: len(w)}))
	}
}

// CheckSameWidth panics with a *WidthError if a and b have different widths.
func CheckSameWidth(op string, a, b Word) {
	if len(a) != len(b) {
		panic(errors.WithStack(&WidthError{Op: op, Expected: len(a), Got: len(b)}))
	}
}
