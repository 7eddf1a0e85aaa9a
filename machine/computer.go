// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package machine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/db47h/hack"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Errors returned by Computer.
var (
	ErrNoProgram = errors.New("no program loaded")
	ErrRunning   = errors.New("computer is running")
)

// State is the run state of a Computer.
type State int32

// Run states.
const (
	Idle State = iota
	Running
	Halted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// Option configures a Computer.
type Option func(*Computer)

// WithLogger sets the logger used by the computer. The default is
// logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option {
	return func(c *Computer) { c.log = l }
}

// WithKeyboard wires an existing keyboard into the memory map.
func WithKeyboard(k *Keyboard) Option {
	return func(c *Computer) { c.kbd = k }
}

// WithClockRate throttles Start to at most hz cycles per second. 0 means
// as fast as possible.
func WithClockRate(hz int) Option {
	return func(c *Computer) { c.hz = hz }
}

// A Computer connects a CPU, a ROM and the Memory and drives them with a
// clock.
//
// All methods are safe for concurrent use. Cycles are serialized against
// inspection methods, so state is only observed between clock phases.
type Computer struct {
	mu    sync.Mutex
	cpu   CPU
	mem   *Memory
	rom   *ROM
	kbd   *Keyboard
	log   *logrus.Logger
	hz    int
	reset hack.Signal
	out   Output

	loaded bool
	cycles uint64
	state  int32
	stop   atomic.Bool
	done   chan struct{}
}

// NewComputer returns a new computer with cleared memory and an empty ROM.
func NewComputer(opts ...Option) *Computer {
	c := &Computer{
		rom: NewROM(),
		log: logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.kbd == nil {
		c.kbd = NewKeyboard()
	}
	c.mem = NewMemory(c.kbd)
	c.out = Output{
		OutM:     hack.Zero(hack.WordWidth),
		AddressM: hack.Zero(hack.AddressWidth),
		PC:       hack.Zero(hack.AddressWidth),
	}
	return c
}

// Load loads program into ROM. It fails if the computer is running.
func (c *Computer) Load(program []hack.Word) error {
	return c.load(func() error { return c.rom.Load(program) })
}

// LoadStrings is like Load but takes instructions as binary strings.
func (c *Computer) LoadStrings(program []string) error {
	return c.load(func() error { return c.rom.LoadStrings(program) })
}

func (c *Computer) load(fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.State() == Running {
		return ErrRunning
	}
	if err := fn(); err != nil {
		return errors.Wrap(err, "load program")
	}
	c.loaded = true
	c.log.WithField("words", c.rom.Len()).Info("program loaded")
	return nil
}

// SetReset drives the reset line. While reset is held, the program counter
// is forced to 0.
func (c *Computer) SetReset(reset bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hack.Signal(reset) == c.reset {
		return
	}
	c.reset = hack.Signal(reset)
	if reset {
		c.log.Info("reset asserted")
	} else {
		c.log.Info("reset cleared")
	}
}

// phase evaluates the whole computer for one clock phase. c.mu must be held.
func (c *Computer) phase(clk hack.Signal) hack.Word {
	instr := c.rom.Fetch(c.out.PC)
	inM := c.mem.Tick(c.out.OutM, c.out.WriteM, c.out.AddressM, clk)
	c.out = c.cpu.Tick(inM, instr, c.reset, clk)
	return instr
}

// Tick runs the low phase of the clock.
func (c *Computer) Tick() {
	c.mu.Lock()
	c.phase(hack.Lo)
	c.mu.Unlock()
}

// Tock runs the high phase of the clock. Registers and memory commit on this
// phase.
func (c *Computer) Tock() {
	c.mu.Lock()
	instr := c.phase(hack.Hi)
	c.cycles++
	c.trace(instr)
	c.mu.Unlock()
}

// TickTock runs one full clock cycle.
func (c *Computer) TickTock() {
	c.mu.Lock()
	c.cycle()
	c.mu.Unlock()
}

func (c *Computer) cycle() {
	c.phase(hack.Lo)
	instr := c.phase(hack.Hi)
	c.cycles++
	c.trace(instr)
}

func (c *Computer) trace(instr hack.Word) {
	if !c.log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	c.log.WithFields(logrus.Fields{
		"cycle":       c.cycles,
		"pc":          c.cpu.PC().Int(),
		"instruction": instr.String(),
		"a":           c.cpu.A().Int(),
		"d":           c.cpu.D().Int(),
	}).Debug("cycle")
}

// Run synchronously runs the given number of clock cycles.
func (c *Computer) Run(cycles int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return ErrNoProgram
	}
	if !c.setRunning() {
		return ErrRunning
	}
	defer atomic.StoreInt32(&c.state, int32(Halted))
	for i := 0; i < cycles; i++ {
		c.cycle()
	}
	return nil
}

// setRunning switches to the Running state. c.mu must be held so that the
// switch is atomic with respect to program loads.
func (c *Computer) setRunning() bool {
	for {
		s := atomic.LoadInt32(&c.state)
		if State(s) == Running {
			return false
		}
		if atomic.CompareAndSwapInt32(&c.state, s, int32(Running)) {
			return true
		}
	}
}

// Start runs the computer on its own goroutine until Stop is called.
func (c *Computer) Start() error {
	return c.StartWithBudget(0)
}

// StartWithBudget is like Start but halts by itself after n cycles. n == 0
// means no limit.
func (c *Computer) StartWithBudget(n uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return ErrNoProgram
	}
	if !c.setRunning() {
		return ErrRunning
	}
	c.stop.Store(false)
	done := make(chan struct{})
	c.done = done
	c.log.WithField("budget", n).Info("computer started")
	go c.run(c.cycles, n, done)
	return nil
}

// tickInterval returns the clock period for hz cycles per second, or 0 if
// the clock is not throttled. Rates too high for a time.Duration period run
// unthrottled.
func tickInterval(hz int) time.Duration {
	if hz <= 0 {
		return 0
	}
	return time.Second / time.Duration(hz)
}

func (c *Computer) run(start, n uint64, done chan struct{}) {
	defer close(done)
	var tick *time.Ticker
	if d := tickInterval(c.hz); d > 0 {
		tick = time.NewTicker(d)
		defer tick.Stop()
	}
	var ran uint64
	for !c.stop.Load() && (n == 0 || ran < n) {
		if tick != nil {
			<-tick.C
		}
		c.TickTock()
		ran++
	}
	c.mu.Lock()
	c.log.WithField("cycles", c.cycles-start).Info("computer stopped")
	atomic.StoreInt32(&c.state, int32(Halted))
	c.mu.Unlock()
}

// Stop halts a running computer between two cycles and waits for its
// goroutine to exit.
func (c *Computer) Stop() {
	c.stop.Store(true)
	c.Wait()
}

// Wait blocks until the goroutine started by Start exits.
func (c *Computer) Wait() {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done != nil {
		<-done
	}
}

// State returns the current run state.
func (c *Computer) State() State {
	return State(atomic.LoadInt32(&c.state))
}

// Cycles returns the number of completed clock cycles.
func (c *Computer) Cycles() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cycles
}

// A returns the value of the A register.
func (c *Computer) A() hack.Word {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cpu.A()
}

// D returns the value of the D register.
func (c *Computer) D() hack.Word {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cpu.D()
}

// PC returns the value of the program counter.
func (c *Computer) PC() hack.Word {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cpu.PC()
}

func memAddress(addr int) hack.Word {
	if addr < 0 || addr >= 1<<hack.AddressWidth {
		panic(errors.Errorf("memory address %d out of range", addr))
	}
	return hack.FromInt(addr, hack.AddressWidth)
}

// Peek returns the memory word at addr.
func (c *Computer) Peek(addr int) hack.Word {
	a := memAddress(addr)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mem.Out(a)
}

// Poke writes w at addr through the memory load path.
func (c *Computer) Poke(addr int, w hack.Word) {
	hack.CheckWidth("Poke", w, hack.WordWidth)
	a := memAddress(addr)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mem.Tick(w, hack.Hi, a, hack.Hi)
}

// Keyboard returns the keyboard wired to the computer.
func (c *Computer) Keyboard() *Keyboard { return c.kbd }

// Screen returns the screen. Use ReadScreen while the computer is running.
func (c *Computer) Screen() *Screen { return c.mem.Screen() }

// ReadScreen calls fn with the screen while no cycle is in progress.
func (c *Computer) ReadScreen(fn func(*Screen)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.mem.Screen())
}

// Snapshot is a copy of the visible machine state.
type Snapshot struct {
	State  string
	Cycles uint64
	A      int
	D      int
	PC     int
	RAM    map[int]int // non-zero words among the first n RAM words
}

// Snapshot returns the registers and the non-zero values among the first n
// words of RAM.
func (c *Computer) Snapshot(n int) Snapshot {
	if n > RAMSize {
		n = RAMSize
	}
	s := Snapshot{State: c.State().String(), RAM: make(map[int]int)}
	c.mu.Lock()
	defer c.mu.Unlock()
	s.Cycles = c.cycles
	s.A, s.D, s.PC = c.cpu.A().Int(), c.cpu.D().Int(), int(c.cpu.PC().Uint())
	for i := 0; i < n; i++ {
		if v := c.mem.Out(hack.FromInt(i, hack.AddressWidth)).Int(); v != 0 {
			s.RAM[i] = v
		}
	}
	return s
}
