package core

import "time"

// StateKind is the board state machine tag.
type StateKind uint8

const (
	StateIdle       StateKind = iota // At rest, accepts swaps
	StateSwapping                    // Swap animating, match check on exit
	StateUnswapping                  // Rollback animating, no match check
	StatePopping                     // Matched cells shrinking
	StateFalling                     // Survivors settling, refill landing
)

// String returns the string representation of a state.
func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "Idle"
	case StateSwapping:
		return "Swapping"
	case StateUnswapping:
		return "Unswapping"
	case StatePopping:
		return "Popping"
	case StateFalling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// Timings holds the animation gate for each animated state.
type Timings struct {
	Swap time.Duration // Swapping and Unswapping
	Pop  time.Duration
	Fall time.Duration
}

// DefaultTimings returns the standard animation gates.
func DefaultTimings() Timings {
	return Timings{
		Swap: 200 * time.Millisecond,
		Pop:  250 * time.Millisecond,
		Fall: 300 * time.Millisecond,
	}
}

// Duration returns the gate for state k. Idle has no gate.
func (t Timings) Duration(k StateKind) time.Duration {
	switch k {
	case StateSwapping, StateUnswapping:
		return t.Swap
	case StatePopping:
		return t.Pop
	case StateFalling:
		return t.Fall
	default:
		return 0
	}
}

// Next returns the state that follows k once its timer elapses.
// matchFound is the result of the exit-time match check, which only
// Swapping and Falling perform. Idle never times out; it leaves only
// through an accepted swap.
func Next(k StateKind, matchFound bool) StateKind {
	switch k {
	case StateSwapping:
		if matchFound {
			return StatePopping
		}
		return StateUnswapping
	case StateUnswapping:
		return StateIdle
	case StatePopping:
		return StateFalling
	case StateFalling:
		if matchFound {
			return StatePopping
		}
		return StateIdle
	default:
		return StateIdle
	}
}

// Machine holds the current state tag and its timer.
// Entry and exit side effects are dispatched by the Controller.
type Machine struct {
	kind    StateKind
	elapsed time.Duration
	timings Timings
}

// NewMachine creates a machine resting in Idle.
func NewMachine(t Timings) *Machine {
	return &Machine{kind: StateIdle, timings: t}
}

// State returns the current state tag.
func (m *Machine) State() StateKind {
	return m.kind
}

// AcceptsInput reports whether a swap request may be accepted.
func (m *Machine) AcceptsInput() bool {
	return m.kind == StateIdle
}

// Timings returns the animation gates.
func (m *Machine) Timings() Timings {
	return m.timings
}

// Progress returns how far the current state's timer has run, in [0, 1].
// Idle reports 0.
func (m *Machine) Progress() float64 {
	if m.kind == StateIdle {
		return 0
	}
	d := m.timings.Duration(m.kind)
	if d <= 0 {
		return 1
	}
	p := float64(m.elapsed) / float64(d)
	if p > 1 {
		p = 1
	}
	return p
}

// Advance adds dt to the timer and reports whether the gate has elapsed.
// Idle never elapses.
func (m *Machine) Advance(dt time.Duration) bool {
	if m.kind == StateIdle {
		return false
	}
	m.elapsed += dt
	return m.elapsed >= m.timings.Duration(m.kind)
}

// set switches to k and restarts the timer.
func (m *Machine) set(k StateKind) {
	m.kind = k
	m.elapsed = 0
}
