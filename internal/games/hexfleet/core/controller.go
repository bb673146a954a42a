package core

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Stats counts what the controller has done since construction.
type Stats struct {
	Swaps     int // Accepted swap requests
	Rollbacks int // Swaps undone for lack of a match
	Cascades  int // Completed pop passes
	MaxChain  int // Longest run of pop passes from a single swap
}

// TickEvent describes what a single Tick did.
type TickEvent struct {
	Transitioned bool
	From         StateKind
	To           StateKind
	Tally        Tally // Non-empty only when a pop pass completed
	Chain        int   // Pop passes so far for the current swap
}

// Option configures a Controller.
type Option func(*Controller)

// WithTimings overrides the animation gates.
func WithTimings(t Timings) Option {
	return func(c *Controller) {
		c.machine = NewMachine(t)
	}
}

// WithLogger sets the logger used for transitions and defects.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver installs a presentation observer on the board.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.board.SetObserver(o)
	}
}

// WithMaxRun overrides the run walk bound.
func WithMaxRun(n int) Option {
	return func(c *Controller) {
		c.maxRun = n
	}
}

// Controller owns a board and sequences swaps, match checks and cascades.
// It is single-threaded: callers drive it with RequestSwap and Tick from
// one goroutine.
type Controller struct {
	board    *Board
	machine  *Machine
	detector *MatchDetector
	swaps    *SwapCoordinator
	cascade  *CascadeEngine
	logger   *log.Logger
	maxRun   int

	chain int
	stats Stats
}

// NewController wires the engine components around b. Match counts are
// reported to n; a nil notifier discards them.
func NewController(b *Board, n Notifier, opts ...Option) *Controller {
	c := &Controller{
		board:   b,
		machine: NewMachine(DefaultTimings()),
		logger:  log.New(io.Discard),
		maxRun:  MaxRunLength,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.detector = NewMatchDetector(b)
	c.detector.SetMaxRun(c.maxRun)
	c.swaps = NewSwapCoordinator(b, c.machine, c.detector, c.logger)
	c.cascade = NewCascadeEngine(b, n)
	if !b.Settled() {
		c.logger.Warn("board starts with runs; a swap may commit on one it did not make",
			"width", b.Width(), "height", b.Height())
	}
	return c
}

// Board returns the controlled board.
func (c *Controller) Board() *Board {
	return c.board
}

// State returns the current state tag.
func (c *Controller) State() StateKind {
	return c.machine.State()
}

// AcceptsInput reports whether RequestSwap would be considered.
func (c *Controller) AcceptsInput() bool {
	return c.machine.AcceptsInput()
}

// Progress returns the current state's animation progress in [0, 1].
func (c *Controller) Progress() float64 {
	return c.machine.Progress()
}

// Chain returns the number of pop passes for the current swap.
func (c *Controller) Chain() int {
	return c.chain
}

// Stats returns the running counters.
func (c *Controller) Stats() Stats {
	return c.stats
}

// FindMove returns a swap that would produce a match, if one exists.
func (c *Controller) FindMove() (Move, bool) {
	return c.swaps.FindMove()
}

// RequestSwap asks to swap the cell at p with its neighbor in dir.
// Invalid requests are ignored and return false.
func (c *Controller) RequestSwap(p Pos, dir Direction) bool {
	if !c.swaps.TrySwap(p, dir) {
		return false
	}
	c.stats.Swaps++
	c.chain = 0
	c.transition(StateSwapping)
	return true
}

// Tick advances the current state's timer by dt. When the gate elapses the
// state's exit work runs and the machine moves to the next state.
func (c *Controller) Tick(dt time.Duration) TickEvent {
	from := c.machine.State()
	ev := TickEvent{From: from, To: from, Chain: c.chain}

	if !c.machine.Advance(dt) {
		return ev
	}

	matchFound := false
	switch from {
	case StateSwapping, StateFalling:
		matchFound = c.detector.CheckForMatches()
	case StatePopping:
		ev.Tally = c.cascade.PopMatches()
		c.stats.Cascades++
	}

	to := Next(from, matchFound)
	c.transition(to)

	ev.Transitioned = true
	ev.To = to
	ev.Chain = c.chain
	return ev
}

// RunUntilIdle ticks with a fixed dt until the machine rests in Idle or
// maxTicks is reached. Returns the number of ticks taken.
func (c *Controller) RunUntilIdle(dt time.Duration, maxTicks int) int {
	ticks := 0
	for ticks < maxTicks && !c.machine.AcceptsInput() {
		c.Tick(dt)
		ticks++
	}
	return ticks
}

// transition switches state and runs the entry action for the new state.
func (c *Controller) transition(to StateKind) {
	from := c.machine.State()
	c.machine.set(to)
	c.logger.Debug("board transition", "from", from, "to", to, "chain", c.chain)
	c.enter(to)
}

// enter dispatches entry actions over the closed state set.
func (c *Controller) enter(k StateKind) {
	switch k {
	case StateIdle, StateSwapping, StateFalling:
	case StateUnswapping:
		if c.swaps.Rollback() {
			c.stats.Rollbacks++
		}
	case StatePopping:
		c.swaps.commit()
		c.chain++
		if c.chain > c.stats.MaxChain {
			c.stats.MaxChain = c.chain
		}
	default:
		c.logger.Error("unknown board state", "state", k)
	}
}
