package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
)

func TestNeighborParity(t *testing.T) {
	tests := []struct {
		name string
		from core.Pos
		dir  core.Direction
		want core.Pos
	}{
		{"even up", core.P(2, 2), core.DirUp, core.P(2, 3)},
		{"even down", core.P(2, 2), core.DirDown, core.P(2, 1)},
		{"even left up", core.P(2, 2), core.DirLeftUp, core.P(1, 3)},
		{"even left down", core.P(2, 2), core.DirLeftDown, core.P(1, 2)},
		{"even right up", core.P(2, 2), core.DirRightUp, core.P(3, 3)},
		{"even right down", core.P(2, 2), core.DirRightDown, core.P(3, 2)},
		{"odd up", core.P(3, 2), core.DirUp, core.P(3, 3)},
		{"odd down", core.P(3, 2), core.DirDown, core.P(3, 1)},
		{"odd left up", core.P(3, 2), core.DirLeftUp, core.P(2, 2)},
		{"odd left down", core.P(3, 2), core.DirLeftDown, core.P(2, 1)},
		{"odd right up", core.P(3, 2), core.DirRightUp, core.P(4, 2)},
		{"odd right down", core.P(3, 2), core.DirRightDown, core.P(4, 1)},
		{"off board", core.P(0, 0), core.DirLeftDown, core.P(-1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.from.Neighbor(tt.dir))
		})
	}
}

func TestNeighborSymmetry(t *testing.T) {
	const w, h = 9, 7
	inBounds := func(p core.Pos) bool {
		return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
	}

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			p := core.P(x, y)
			for _, d := range core.Directions() {
				q := p.Neighbor(d)
				if !inBounds(q) {
					continue
				}
				require.Equal(t, p, q.Neighbor(d.Opposite()), "%v %s -> %v", p, d, q)
			}
		}
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range core.Directions() {
		require.NotEqual(t, d, d.Opposite(), d.String())
		require.Equal(t, d, d.Opposite().Opposite(), d.String())
	}
}

func TestPixelLocationRaisesEvenColumns(t *testing.T) {
	require.Equal(t, core.Point{X: 0, Y: 1}, core.PixelLocation(core.P(0, 0), 2))
	require.Equal(t, core.Point{X: 2, Y: 0}, core.PixelLocation(core.P(1, 0), 2))
	require.Equal(t, core.Point{X: 4, Y: 7}, core.PixelLocation(core.P(2, 3), 2))
}

func TestParseCellType(t *testing.T) {
	for _, ct := range append(core.ConcreteTypes(), core.Wild, core.None) {
		got, ok := core.ParseCellType(ct.String())
		require.True(t, ok, ct.String())
		require.Equal(t, ct, got)
	}

	got, ok := core.ParseCellType(" Laser-Cannon ")
	require.True(t, ok)
	require.Equal(t, core.LaserCannon, got)

	_, ok = core.ParseCellType("torpedo")
	require.False(t, ok)
}

func TestConcreteTypes(t *testing.T) {
	types := core.ConcreteTypes()
	require.Len(t, types, 5)
	for _, ct := range types {
		require.True(t, ct.IsConcrete(), ct.String())
	}
	require.False(t, core.None.IsConcrete())
	require.False(t, core.Wild.IsConcrete())
}
