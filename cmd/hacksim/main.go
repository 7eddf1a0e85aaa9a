// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hacksim runs a Hack machine language program on the gate level
// computer.
//
// Usage:
//
//	hacksim [flags] program.hack
//
// Each non blank line of the program file is a 16 characters binary
// instruction. Lines starting with "//" are ignored.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/db47h/hack/machine"
	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var (
	cycles  = flag.Int("cycles", 1000, "number of clock cycles to run in headless mode")
	tui     = flag.Bool("tui", false, "run interactively, rendering the screen in the terminal")
	dump    = flag.Bool("dump", false, "pretty-print the machine state after the run")
	verbose = flag.Bool("v", false, "log every clock cycle")
	hz      = flag.Int("hz", 0, "clock rate limit in cycles per second for -tui (0: unlimited)")
	ramDump = flag.Int("ram", 256, "number of RAM words included in -dump")
)

func readProgram(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		l := strings.TrimSpace(s.Text())
		if l == "" || strings.HasPrefix(l, "//") {
			continue
		}
		lines = append(lines, l)
	}
	if err = s.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return lines, nil
}

func run(log *logrus.Logger) error {
	if flag.NArg() != 1 {
		flag.Usage()
		return errors.New("missing program file")
	}
	prog, err := readProgram(flag.Arg(0))
	if err != nil {
		return err
	}

	c := machine.NewComputer(machine.WithLogger(log), machine.WithClockRate(*hz))
	if err = c.LoadStrings(prog); err != nil {
		return errors.Wrap(err, flag.Arg(0))
	}

	if *tui {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("-tui requires a terminal")
		}
		if err = runTUI(c); err != nil {
			return err
		}
	} else if err = c.Run(*cycles); err != nil {
		return err
	}

	fmt.Printf("A=%d D=%d PC=%d cycles=%d\n", c.A().Int(), c.D().Int(), c.PC().Uint(), c.Cycles())
	if *dump {
		printer := pp.New()
		fd := int(os.Stdout.Fd())
		isTerm := term.IsTerminal(fd)
		printer.SetColoringEnabled(isTerm)
		printer.Println(newDump(c, *ramDump, func() (int, int, error) {
			if !isTerm {
				return 0, 0, errors.New("stdout is not a terminal")
			}
			return term.GetSize(fd)
		}))
	}
	return nil
}

// Terminal is the size of the terminal hacksim runs in.
type Terminal struct {
	Width  int
	Height int
}

// Dump is the state printed by -dump.
type Dump struct {
	Machine  machine.Snapshot
	Terminal *Terminal // nil if stdout is not a terminal
}

// newDump snapshots c with n RAM words. size reports the terminal size.
func newDump(c *machine.Computer, n int, size func() (w, h int, err error)) Dump {
	d := Dump{Machine: c.Snapshot(n)}
	if w, h, err := size(); err == nil {
		d.Terminal = &Terminal{Width: w, Height: h}
	}
	return d
}

func main() {
	flag.Parse()
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if err := run(log); err != nil {
		log.Fatalf("%+v", err)
	}
}
