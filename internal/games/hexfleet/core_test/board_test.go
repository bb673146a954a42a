package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
)

func TestNewBoardRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  core.BoardConfig
		want error
	}{
		{
			name: "zero width",
			cfg:  core.BoardConfig{Width: 0, Height: 4, Palette: core.ConcreteTypes()},
			want: core.ErrInvalidDimensions,
		},
		{
			name: "negative height",
			cfg:  core.BoardConfig{Width: 4, Height: -1, Palette: core.ConcreteTypes()},
			want: core.ErrInvalidDimensions,
		},
		{
			name: "empty palette",
			cfg:  core.BoardConfig{Width: 4, Height: 4},
			want: core.ErrEmptyPalette,
		},
		{
			name: "wild in palette",
			cfg:  core.BoardConfig{Width: 4, Height: 4, Palette: []core.CellType{core.LaserCannon, core.Wild}},
			want: core.ErrInvalidPalette,
		},
		{
			name: "none in palette",
			cfg:  core.BoardConfig{Width: 4, Height: 4, Palette: []core.CellType{core.None}},
			want: core.ErrInvalidPalette,
		},
		{
			name: "mask outside board",
			cfg: core.BoardConfig{
				Width:   4,
				Height:  4,
				Palette: core.ConcreteTypes(),
				Mask:    []core.Pos{core.P(4, 0)},
			},
			want: core.ErrMaskOutOfBounds,
		},
		{
			name: "wild on masked slot",
			cfg: core.BoardConfig{
				Width:   4,
				Height:  4,
				Palette: core.ConcreteTypes(),
				Mask:    []core.Pos{core.P(1, 1)},
				Wilds:   []core.Pos{core.P(1, 1)},
			},
			want: core.ErrInvalidWild,
		},
		{
			name: "wild outside board",
			cfg: core.BoardConfig{
				Width:   4,
				Height:  4,
				Palette: core.ConcreteTypes(),
				Wilds:   []core.Pos{core.P(0, 4)},
			},
			want: core.ErrInvalidWild,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := core.NewBoard(tt.cfg, nil)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, b)
		})
	}
}

func TestNewBoardSettles(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234} {
		b, err := core.NewBoard(core.BoardConfig{
			Width:   8,
			Height:  8,
			Palette: core.ConcreteTypes(),
		}, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.False(t, core.NewMatchDetector(b).HasMatch(), "seed %d:\n%s", seed, b)
		require.True(t, b.Settled())
	}
}

func TestSingleTypeBoardCannotSettle(t *testing.T) {
	b, err := core.NewBoard(core.BoardConfig{
		Width:   3,
		Height:  3,
		Palette: []core.CellType{core.LaserCannon},
	}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.False(t, b.Settled())
	require.True(t, core.NewMatchDetector(b).HasMatch())
}

func TestNewBoardPlacesOnlyLayoutWilds(t *testing.T) {
	wilds := []core.Pos{core.P(1, 1), core.P(4, 3)}
	for _, seed := range []int64{1, 7, 42} {
		b, err := core.NewBoard(core.BoardConfig{
			Width:   6,
			Height:  6,
			Palette: core.ConcreteTypes(),
			Wilds:   wilds,
		}, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		for _, p := range b.Positions() {
			ct := b.Cell(p).Type
			if p == wilds[0] || p == wilds[1] {
				require.Equal(t, core.Wild, ct, "seed %d at %v", seed, p)
				continue
			}
			require.True(t, ct.IsConcrete(), "seed %d at %v got %s", seed, p, ct)
		}
		require.False(t, core.NewMatchDetector(b).HasMatch(), "seed %d:\n%s", seed, b)
	}
}

func TestShuffleKeepsWilds(t *testing.T) {
	b, err := core.NewBoard(core.BoardConfig{
		Width:   5,
		Height:  5,
		Palette: core.ConcreteTypes(),
		Wilds:   []core.Pos{core.P(2, 2)},
	}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	for range 10 {
		b.Shuffle()
		for _, p := range b.Positions() {
			if p == core.P(2, 2) {
				require.Equal(t, core.Wild, b.Cell(p).Type)
			} else {
				require.True(t, b.Cell(p).Type.IsConcrete(), "%v", p)
			}
		}
	}
}

func TestNewBoardMask(t *testing.T) {
	mask := []core.Pos{core.P(0, 0), core.P(4, 0), core.P(0, 5), core.P(4, 5)}
	b, err := core.NewBoard(core.BoardConfig{
		Width:   5,
		Height:  6,
		Mask:    mask,
		Palette: core.ConcreteTypes(),
	}, nil)
	require.NoError(t, err)

	require.Equal(t, 26, b.PlayableCount())
	for _, p := range b.Positions() {
		ct, ok := b.TypeAt(p)
		require.True(t, ok)
		if b.Masked(p) {
			require.Equal(t, core.None, ct, "%v", p)
			require.False(t, b.Playable(p))
		} else {
			require.True(t, ct.IsConcrete(), "%v holds %s", p, ct)
			require.True(t, b.Playable(p))
		}
		require.NotNil(t, b.Cell(p))
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	b := quiet(t)

	_, ok := b.TypeAt(core.P(-1, 0))
	require.False(t, ok)
	_, ok = b.TypeAt(core.P(0, 4))
	require.False(t, ok)
	require.Nil(t, b.Cell(core.P(4, 0)))
	require.False(t, b.Playable(core.P(4, 0)))
}

func TestBoardCellIDsAreUnique(t *testing.T) {
	b := quiet(t)
	seen := make(map[int]bool)
	for _, p := range b.Positions() {
		id := b.Cell(p).ID
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}

func TestSetType(t *testing.T) {
	b := grid(t,
		"E S",
		". R",
	)
	obs := &observer{}
	b.SetObserver(obs)

	require.NoError(t, b.SetType(core.P(1, 1), core.Wild))
	ct, _ := b.TypeAt(core.P(1, 1))
	require.Equal(t, core.Wild, ct)
	require.Equal(t, []typeEvent{{Pos: core.P(1, 1), Type: core.Wild}}, obs.types)

	require.Error(t, b.SetType(core.P(0, 0), core.LaserCannon), "masked slot")
	require.Error(t, b.SetType(core.P(1, 0), core.None), "none on playable slot")
	require.Error(t, b.SetType(core.P(2, 0), core.LaserCannon), "out of bounds")
}

func TestBoardString(t *testing.T) {
	b := grid(t,
		"E * .",
		"L R S",
	)
	require.Equal(t, "E * .\nL R S", b.String())
}

func TestShuffleKeepsMaskAndSettles(t *testing.T) {
	b := grid(t,
		"L L L .",
		"R R R S",
		"S D E .",
	)
	obs := &observer{}
	b.SetObserver(obs)

	b.Shuffle()

	require.True(t, b.Masked(core.P(3, 2)))
	require.True(t, b.Masked(core.P(3, 0)))
	ct, _ := b.TypeAt(core.P(3, 2))
	require.Equal(t, core.None, ct)
	require.False(t, core.NewMatchDetector(b).HasMatch(), "\n%s", b)
	require.Len(t, obs.types, b.PlayableCount())
}

func TestAnnounceSnapsEveryPlayableCell(t *testing.T) {
	b := grid(t,
		"E S",
		". R",
	)
	obs := &observer{}
	b.SetObserver(obs)

	b.Announce()

	require.Len(t, obs.positions, 3)
	require.Len(t, obs.types, 3)
	for _, ev := range obs.positions {
		require.True(t, ev.Snap)
		require.Equal(t, core.PixelLocation(ev.Pos, b.Spacing()), ev.Target)
	}
}
