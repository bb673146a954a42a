package modules

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexfleet/internal/config"
	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
)

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("torpedo", "T", core.LaserCannon, 3, 1)
	require.Error(t, err)

	_, err = New("laser", "L", core.Wild, 3, 1)
	require.Error(t, err)

	_, err = New("laser", "L", core.LaserCannon, 0, 1)
	require.Error(t, err)
}

func TestFeedCarriesRemainder(t *testing.T) {
	m, err := New("laser", "Laser", core.LaserCannon, 4, 3)
	require.NoError(t, err)
	ship := NewShip()

	require.Equal(t, 0, m.Feed(3, &ship))
	require.Equal(t, 3, m.Status().Charge)

	require.Equal(t, 2, m.Feed(6, &ship))
	require.Equal(t, 1, m.Status().Charge)
	require.Equal(t, 2, m.Status().Activations)
	require.Equal(t, 6, ship.Damage)

	require.Equal(t, 0, m.Feed(0, &ship))
	require.InDelta(t, 0.25, m.Status().Fraction(), 1e-9)

	m.Reset()
	require.Equal(t, Status{Name: "Laser", Kind: "laser", PoweredBy: core.LaserCannon, Threshold: 4}, m.Status())
}

func TestEffects(t *testing.T) {
	tests := []struct {
		kind  string
		setup func(*Ship)
		check func(*testing.T, Ship)
	}{
		{"laser", nil, func(t *testing.T, s Ship) { require.Equal(t, 5, s.Damage) }},
		{"rocket", nil, func(t *testing.T, s Ship) { require.Equal(t, 5, s.Rockets) }},
		{"engine", nil, func(t *testing.T, s Ship) { require.Equal(t, 5, s.Distance) }},
		{"shield", func(s *Ship) { s.Shield = s.MaxShield - 2 }, func(t *testing.T, s Ship) {
			require.Equal(t, s.MaxShield, s.Shield, "shield is capped")
		}},
		{"repair", func(s *Ship) { s.Hull = 50 }, func(t *testing.T, s Ship) { require.Equal(t, 55, s.Hull) }},
		{"repair", func(s *Ship) { s.Hull = 99 }, func(t *testing.T, s Ship) { require.Equal(t, 100, s.Hull) }},
	}

	for _, tc := range tests {
		t.Run(tc.kind, func(t *testing.T) {
			m, err := New(tc.kind, tc.kind, core.EngineDrive, 1, 5)
			require.NoError(t, err)
			ship := NewShip()
			if tc.setup != nil {
				tc.setup(&ship)
			}
			require.Equal(t, 1, m.Feed(1, &ship))
			tc.check(t, ship)
		})
	}
}

func TestShipHit(t *testing.T) {
	s := NewShip()
	s.Shield = 10

	s.Hit(4)
	require.Equal(t, 6, s.Shield)
	require.Equal(t, 100, s.Hull)

	s.Hit(16)
	require.Equal(t, 0, s.Shield)
	require.Equal(t, 90, s.Hull)

	s.Hit(-3)
	require.Equal(t, 90, s.Hull)

	s.Hit(500)
	require.Equal(t, 0, s.Hull)
	require.True(t, s.Destroyed())
}

func TestRegistryFromDefaultConfig(t *testing.T) {
	r, err := FromConfig(config.DefaultHexfleetConfig().Modules, nil)
	require.NoError(t, err)

	statuses := r.Statuses()
	require.Len(t, statuses, 5)
	require.Equal(t, "Laser Bank", statuses[0].Name)
	require.Equal(t, core.LaserCannon, statuses[0].PoweredBy)

	// Laser Bank: threshold 6, power 4.
	r.OnCellsMatched(core.LaserCannon, 7)
	require.Equal(t, 4, r.Ship().Damage)
	require.Equal(t, 1, r.Statuses()[0].Charge)

	acts := r.Drain()
	require.Equal(t, []Activation{{Module: "Laser Bank", Kind: "laser", Times: 1}}, acts)
	require.Empty(t, r.Drain())
}

func TestRegistryFromConfigErrors(t *testing.T) {
	_, err := FromConfig([]config.ModuleConfig{{Kind: "laser", Name: "L", PoweredBy: "plasma", Threshold: 1}}, nil)
	require.Error(t, err)

	_, err = FromConfig([]config.ModuleConfig{{Kind: "warp", Name: "W", PoweredBy: "engine_drive", Threshold: 1}}, nil)
	require.Error(t, err)
}

func TestRegistrySharedTypeAndUnused(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	r := NewRegistry(logger)
	a, err := New("laser", "A", core.RocketLauncher, 2, 1)
	require.NoError(t, err)
	b, err := New("rocket", "B", core.RocketLauncher, 3, 1)
	require.NoError(t, err)
	r.Install(a)
	r.Install(b)

	r.OnCellsMatched(core.RocketLauncher, 3)
	ship := r.Ship()
	require.Equal(t, 1, ship.Damage)
	require.Equal(t, 1, ship.Rockets)
	require.Len(t, r.Drain(), 2)
	require.Contains(t, buf.String(), "module activated")

	r.OnCellsMatched(core.RepairDroids, 4)
	require.Equal(t, 4, r.Unused(core.RepairDroids))

	r.Reset()
	require.Equal(t, NewShip(), r.Ship())
	require.Zero(t, r.Unused(core.RepairDroids))
	for _, s := range r.Statuses() {
		require.Zero(t, s.Charge)
		require.Zero(t, s.Activations)
	}
}

func TestRegistryAsNotifier(t *testing.T) {
	r, err := FromConfig(config.DefaultHexfleetConfig().Modules, nil)
	require.NoError(t, err)

	b, err := core.NewBoard(core.BoardConfig{
		Width:   4,
		Height:  4,
		Palette: core.ConcreteTypes(),
		Spacing: 1,
	}, nil)
	require.NoError(t, err)

	c := core.NewController(b, r)
	mv, ok := c.FindMove()
	if !ok {
		t.Skip("seeded board has no move")
	}
	require.True(t, c.RequestSwap(mv.From, mv.Dir))
	c.RunUntilIdle(core.DefaultTimings().Swap, 1000)

	total := 0
	for _, s := range r.Statuses() {
		total += s.Charge + s.Activations*s.Threshold
	}
	require.GreaterOrEqual(t, total, 3, "a committed swap consumes at least one run")
}
