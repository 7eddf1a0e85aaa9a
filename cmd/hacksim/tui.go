// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"time"

	"github.com/db47h/hack"
	"github.com/db47h/hack/machine"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	frameRate  = 10
	keyRelease = 150 * time.Millisecond
)

var keyMap = map[tcell.Key]int{
	tcell.KeyEnter:      machine.KeyNewline,
	tcell.KeyBackspace:  machine.KeyBackspace,
	tcell.KeyBackspace2: machine.KeyBackspace,
	tcell.KeyLeft:       machine.KeyLeft,
	tcell.KeyUp:         machine.KeyUp,
	tcell.KeyRight:      machine.KeyRight,
	tcell.KeyDown:       machine.KeyDown,
	tcell.KeyHome:       machine.KeyHome,
	tcell.KeyEnd:        machine.KeyEnd,
	tcell.KeyPgUp:       machine.KeyPageUp,
	tcell.KeyPgDn:       machine.KeyPageDown,
	tcell.KeyInsert:     machine.KeyInsert,
	tcell.KeyDelete:     machine.KeyDelete,
	tcell.KeyEscape:     machine.KeyEsc,
}

// hackKey returns the Hack key code for ev, or 0.
func hackKey(ev *tcell.EventKey) int {
	if ev.Key() == tcell.KeyRune {
		if r := ev.Rune(); r < 128 {
			return int(r)
		}
		return 0
	}
	if k := ev.Key(); k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return machine.KeyF1 + int(k-tcell.KeyF1)
	}
	return keyMap[ev.Key()]
}

// frame is a copy of the screen bitmap, one bool per pixel.
type frame [machine.ScreenHeight][machine.ScreenWidth]bool

func (f *frame) grab(s *machine.Screen) {
	for y := 0; y < machine.ScreenHeight; y++ {
		for wx := 0; wx < machine.ScreenWidth/hack.WordWidth; wx++ {
			w := s.Word(y*machine.ScreenWidth/hack.WordWidth + wx)
			for b := 0; b < hack.WordWidth; b++ {
				f[y][wx*hack.WordWidth+b] = bool(w[hack.WordWidth-1-b])
			}
		}
	}
}

// lit reports whether a pixel is set in the given block.
func (f *frame) lit(x0, y0, dx, dy int) bool {
	for y := y0; y < y0+dy && y < machine.ScreenHeight; y++ {
		for x := x0; x < x0+dx && x < machine.ScreenWidth; x++ {
			if f[y][x] {
				return true
			}
		}
	}
	return false
}

// draw renders f on scr with half block characters: each terminal cell
// holds two vertical pixels of the downsampled bitmap.
func (f *frame) draw(scr tcell.Screen) {
	cols, rows := scr.Size()
	rows-- // status line
	if cols <= 0 || rows <= 0 {
		return
	}
	dx := (machine.ScreenWidth + cols - 1) / cols
	dy := (machine.ScreenHeight + 2*rows - 1) / (2 * rows)
	on, off := tcell.ColorWhite, tcell.ColorBlack
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, bot := off, off
			if f.lit(cx*dx, 2*cy*dy, dx, dy) {
				top = on
			}
			if f.lit(cx*dx, (2*cy+1)*dy, dx, dy) {
				bot = on
			}
			scr.SetContent(cx, cy, '▀', nil, tcell.StyleDefault.Foreground(top).Background(bot))
		}
	}
}

func status(scr tcell.Screen, c *machine.Computer) {
	_, rows := scr.Size()
	msg := []rune("hacksim " + c.State().String() + "  Ctrl-C: quit")
	for i, r := range msg {
		scr.SetContent(i, rows-1, r, nil, tcell.StyleDefault)
	}
}

func runTUI(c *machine.Computer) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err = scr.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer scr.Fini()

	if err = c.Start(); err != nil {
		return err
	}
	defer c.Stop()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go scr.ChannelEvents(events, quit)

	kbd := c.Keyboard()
	release := time.NewTimer(keyRelease)
	release.Stop()
	refresh := time.NewTicker(time.Second / frameRate)
	defer refresh.Stop()

	var f frame
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if code := hackKey(ev); code != 0 {
					kbd.Press(code)
					release.Reset(keyRelease)
				}
			case *tcell.EventResize:
				scr.Sync()
			}
		case <-release.C:
			kbd.Release()
		case <-refresh.C:
			c.ReadScreen(f.grab)
			scr.Clear()
			f.draw(scr)
			status(scr, c)
			scr.Show()
		}
	}
}
