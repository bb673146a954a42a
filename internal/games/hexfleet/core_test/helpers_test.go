package core_test

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
)

var glyphs = map[string]core.CellType{
	".": core.None,
	"*": core.Wild,
	"L": core.LaserCannon,
	"R": core.RocketLauncher,
	"S": core.ShieldGenerator,
	"D": core.RepairDroids,
	"E": core.EngineDrive,
}

// grid builds a board from glyph rows listed top row first, the same
// layout Board.String produces. "." slots become the shape mask.
func grid(t *testing.T, rows ...string) *core.Board {
	t.Helper()

	h := len(rows)
	require.NotZero(t, h, "grid needs at least one row")
	w := len(strings.Fields(rows[0]))

	types := make(map[core.Pos]core.CellType, w*h)
	var mask []core.Pos
	for i, row := range rows {
		y := h - 1 - i
		fields := strings.Fields(row)
		require.Len(t, fields, w, "row %d width", i)
		for x, g := range fields {
			ct, ok := glyphs[g]
			require.True(t, ok, "unknown glyph %q", g)
			p := core.P(x, y)
			if ct == core.None {
				mask = append(mask, p)
				continue
			}
			types[p] = ct
		}
	}

	b, err := core.NewBoard(core.BoardConfig{
		Width:   w,
		Height:  h,
		Mask:    mask,
		Palette: core.ConcreteTypes(),
	}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for p, ct := range types {
		require.NoError(t, b.SetType(p, ct))
	}
	return b
}

// quiet is a 4x4 board with no runs. Columns alternate between two types
// and neighboring columns never share a type.
func quiet(t *testing.T) *core.Board {
	t.Helper()
	return grid(t,
		"E S E S",
		"D R D R",
		"E S E S",
		"D R D R",
	)
}

type notification struct {
	Type  core.CellType
	Count int
}

// recorder collects notifier calls in order.
type recorder struct {
	calls []notification
}

func (r *recorder) OnCellsMatched(t core.CellType, count int) {
	r.calls = append(r.calls, notification{Type: t, Count: count})
}

type positionEvent struct {
	Pos    core.Pos
	Target core.Point
	Snap   bool
}

type typeEvent struct {
	Pos  core.Pos
	Type core.CellType
}

// observer collects presentation events.
type observer struct {
	positions []positionEvent
	types     []typeEvent
}

func (o *observer) PositionChanged(p core.Pos, target core.Point, snap bool) {
	o.positions = append(o.positions, positionEvent{Pos: p, Target: target, Snap: snap})
}

func (o *observer) TypeChanged(p core.Pos, t core.CellType) {
	o.types = append(o.types, typeEvent{Pos: p, Type: t})
}

// fastTimings makes every animated state last exactly one step tick.
var fastTimings = core.Timings{
	Swap: step,
	Pop:  step,
	Fall: step,
}

const step = 10 * time.Millisecond

func matchedPositions(b *core.Board) []core.Pos {
	var out []core.Pos
	for _, p := range b.Positions() {
		if c := b.Cell(p); c.Matched {
			out = append(out, p)
		}
	}
	return out
}

func cellIDs(b *core.Board) map[core.Pos]int {
	ids := make(map[core.Pos]int)
	for _, p := range b.Positions() {
		ids[p] = b.Cell(p).ID
	}
	return ids
}
