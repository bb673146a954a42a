package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
)

func TestCascadeEndToEnd(t *testing.T) {
	b := grid(t,
		"R S E S",
		"L R D R",
		"L S E S",
		"L R D R",
	)
	before := cellIDs(b)
	rec := &recorder{}
	obs := &observer{}
	b.SetObserver(obs)

	d := core.NewMatchDetector(b)
	require.True(t, d.CheckForMatches())
	for _, p := range []core.Pos{core.P(0, 0), core.P(0, 1), core.P(0, 2)} {
		require.True(t, b.Cell(p).Matched, "%v", p)
	}
	require.False(t, b.Cell(core.P(0, 3)).Matched)

	tally := core.NewCascadeEngine(b, rec).PopMatches()

	require.Equal(t, []notification{{Type: core.LaserCannon, Count: 3}}, rec.calls)
	require.Equal(t, 3, tally.Count(core.LaserCannon))
	require.Equal(t, 3, tally.Total())
	require.Equal(t, []core.CellType{core.LaserCannon}, tally.Types())

	// The surviving cell fell to the bottom.
	bottom := b.Cell(core.P(0, 0))
	require.Equal(t, before[core.P(0, 3)], bottom.ID)
	require.Equal(t, core.RocketLauncher, bottom.Type)

	// The consumed cells were respawned above it, in order.
	for y := 1; y <= 3; y++ {
		c := b.Cell(core.P(0, y))
		require.Equal(t, before[core.P(0, y-1)], c.ID)
		require.True(t, c.Type.IsConcrete())
		require.False(t, c.Matched)
	}

	// Other columns are untouched.
	for x := 1; x < 4; x++ {
		for y := 0; y < 4; y++ {
			require.Equal(t, before[core.P(x, y)], b.Cell(core.P(x, y)).ID)
		}
	}

	require.Empty(t, matchedPositions(b))
	require.Len(t, obs.types, 3)
	require.Len(t, obs.positions, 4)
	for _, ev := range obs.positions {
		require.False(t, ev.Snap)
		require.Equal(t, 0, ev.Pos.X)
	}
}

func TestCascadeTallyPerType(t *testing.T) {
	b := grid(t,
		"E S D S",
		"L R E R",
		"L S D S",
		"L R E R",
		"L S E S",
		"L R E R",
	)
	before := cellIDs(b)
	rec := &recorder{}

	require.True(t, core.NewMatchDetector(b).CheckForMatches())
	require.Len(t, matchedPositions(b), 8)

	tally := core.NewCascadeEngine(b, rec).PopMatches()

	require.Equal(t, []notification{
		{Type: core.LaserCannon, Count: 5},
		{Type: core.EngineDrive, Count: 3},
	}, rec.calls)
	require.Equal(t, 8, tally.Total())
	for _, call := range rec.calls {
		require.NotEqual(t, core.None, call.Type)
		require.NotEqual(t, core.Wild, call.Type)
		require.Positive(t, call.Count)
	}

	// Column 2 survivors keep their relative order.
	require.Equal(t, before[core.P(2, 3)], b.Cell(core.P(2, 0)).ID)
	require.Equal(t, before[core.P(2, 4)], b.Cell(core.P(2, 1)).ID)
	require.Equal(t, before[core.P(2, 5)], b.Cell(core.P(2, 2)).ID)
}

func TestCascadeConservesMaskedColumn(t *testing.T) {
	b := grid(t,
		"D R D",
		". S E",
		"L R D",
		"L S E",
		"L R D",
	)
	before := cellIDs(b)
	playable := b.PlayableCount()

	require.True(t, core.NewMatchDetector(b).CheckForMatches())
	core.NewCascadeEngine(b, nil).PopMatches()

	require.Equal(t, playable, b.PlayableCount())
	require.True(t, b.Masked(core.P(0, 3)))
	require.Equal(t, before[core.P(0, 3)], b.Cell(core.P(0, 3)).ID)
	ct, _ := b.TypeAt(core.P(0, 3))
	require.Equal(t, core.None, ct)

	nonNone := 0
	for y := 0; y < b.Height(); y++ {
		if ct, _ := b.TypeAt(core.P(0, y)); ct != core.None {
			nonNone++
		}
	}
	require.Equal(t, 4, nonNone)

	require.Equal(t, before[core.P(0, 4)], b.Cell(core.P(0, 0)).ID)
	ct, _ = b.TypeAt(core.P(0, 0))
	require.Equal(t, core.RepairDroids, ct)
}

func TestCascadeCountsWildUnderRunType(t *testing.T) {
	b := grid(t,
		"E S E S",
		"L R D R",
		"* S E S",
		"L R D R",
	)
	rec := &recorder{}

	require.True(t, core.NewMatchDetector(b).CheckForMatches())
	core.NewCascadeEngine(b, rec).PopMatches()

	require.Equal(t, []notification{{Type: core.LaserCannon, Count: 3}}, rec.calls)
}

func TestCascadeWithoutMatchesIsNoop(t *testing.T) {
	b := quiet(t)
	before := cellIDs(b)
	rec := &recorder{}
	obs := &observer{}
	b.SetObserver(obs)

	tally := core.NewCascadeEngine(b, rec).PopMatches()

	require.True(t, tally.Empty())
	require.Empty(t, rec.calls)
	require.Empty(t, obs.positions)
	require.Empty(t, obs.types)
	require.Equal(t, before, cellIDs(b))
}

func TestTallyAdd(t *testing.T) {
	a := core.NewTally()
	a.Counts[core.LaserCannon] = 3

	other := core.NewTally()
	other.Counts[core.LaserCannon] = 2
	other.Counts[core.EngineDrive] = 4

	a.Add(other)
	require.Equal(t, 5, a.Count(core.LaserCannon))
	require.Equal(t, 4, a.Count(core.EngineDrive))
	require.Equal(t, []core.CellType{core.LaserCannon, core.EngineDrive}, a.Types())
}

func TestRefillIsAlwaysConcrete(t *testing.T) {
	b, err := core.NewBoard(core.BoardConfig{
		Width:   1,
		Height:  3,
		Palette: []core.CellType{core.LaserCannon, core.RocketLauncher},
		Wilds:   []core.Pos{core.P(0, 1)},
	}, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	d := core.NewMatchDetector(b)
	e := core.NewCascadeEngine(b, nil)

	for i := range 50 {
		for y := 0; y < 3; y++ {
			require.NoError(t, b.SetType(core.P(0, y), core.LaserCannon))
		}
		require.True(t, d.CheckForMatches())
		e.PopMatches()
		for y := 0; y < 3; y++ {
			ct := b.Cell(core.P(0, y)).Type
			require.True(t, ct.IsConcrete(), "pass %d: refilled (0,%d) as %s", i, y, ct)
		}
	}
}

func TestPoppedWildRespawnsConcrete(t *testing.T) {
	b := grid(t,
		"S",
		"L",
		"*",
		"L",
	)
	require.True(t, core.NewMatchDetector(b).CheckForMatches())
	tally := core.NewCascadeEngine(b, nil).PopMatches()

	require.Equal(t, 3, tally.Count(core.LaserCannon))
	require.Zero(t, tally.Count(core.Wild))
	for y := 0; y < 4; y++ {
		require.True(t, b.Cell(core.P(0, y)).Type.IsConcrete(), "\n%s", b)
	}
}
