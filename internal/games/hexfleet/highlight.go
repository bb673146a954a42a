package hexfleet

import "github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"

// highlighter is the board observer for the terminal renderer. Cells the
// engine reports as moved or retyped stay highlighted for a few ticks.
type highlighter struct {
	duration int
	ticks    map[core.Pos]int
	targets  map[core.Pos]core.Point
}

var _ core.Observer = (*highlighter)(nil)

func newHighlighter(duration int) *highlighter {
	return &highlighter{
		duration: duration,
		ticks:    make(map[core.Pos]int),
		targets:  make(map[core.Pos]core.Point),
	}
}

// PositionChanged records the target and highlights animated moves.
func (h *highlighter) PositionChanged(p core.Pos, target core.Point, snap bool) {
	h.targets[p] = target
	if !snap {
		h.mark(p)
	}
}

// TypeChanged highlights a respawned or reshuffled cell.
func (h *highlighter) TypeChanged(p core.Pos, _ core.CellType) {
	h.mark(p)
}

func (h *highlighter) mark(p core.Pos) {
	if h.duration > 0 {
		h.ticks[p] = h.duration
	}
}

// Step ages every highlight by one tick.
func (h *highlighter) Step() {
	for p, n := range h.ticks {
		if n <= 1 {
			delete(h.ticks, p)
			continue
		}
		h.ticks[p] = n - 1
	}
}

// Active reports whether p is highlighted.
func (h *highlighter) Active(p core.Pos) bool {
	return h.ticks[p] > 0
}

// Target returns the last presentation location reported for p.
func (h *highlighter) Target(p core.Pos) (core.Point, bool) {
	pt, ok := h.targets[p]
	return pt, ok
}

// Clear drops all highlights but keeps targets.
func (h *highlighter) Clear() {
	clear(h.ticks)
}
