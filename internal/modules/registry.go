package modules

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexfleet/internal/config"
	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
)

// Activation records one module firing.
type Activation struct {
	Module string
	Kind   string
	Times  int
}

// Registry dispatches match counts to the installed modules.
// It implements core.Notifier and is owned by a single game session.
type Registry struct {
	ship    Ship
	modules []Module
	byType  map[core.CellType][]Module
	unused  map[core.CellType]int
	pending []Activation
	logger  *log.Logger
}

var _ core.Notifier = (*Registry)(nil)

// NewRegistry returns an empty registry around a fresh ship.
// A nil logger discards output.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Registry{
		ship:   NewShip(),
		byType: make(map[core.CellType][]Module),
		unused: make(map[core.CellType]int),
		logger: logger,
	}
}

// FromConfig builds a registry with one module per config entry.
func FromConfig(cfgs []config.ModuleConfig, logger *log.Logger) (*Registry, error) {
	r := NewRegistry(logger)
	for _, c := range cfgs {
		t, ok := core.ParseCellType(c.PoweredBy)
		if !ok {
			return nil, fmt.Errorf("modules: %s: unknown cell type %q", c.Name, c.PoweredBy)
		}
		m, err := New(c.Kind, c.Name, t, c.Threshold, c.Power)
		if err != nil {
			return nil, err
		}
		r.Install(m)
	}
	return r, nil
}

// Install adds a module. Several modules may share a cell type; each gets
// the full count.
func (r *Registry) Install(m Module) {
	r.modules = append(r.modules, m)
	r.byType[m.PoweredBy()] = append(r.byType[m.PoweredBy()], m)
}

// OnCellsMatched charges every module powered by t.
func (r *Registry) OnCellsMatched(t core.CellType, count int) {
	targets := r.byType[t]
	if len(targets) == 0 {
		r.unused[t] += count
		r.logger.Debug("no module for cells", "type", t, "count", count)
		return
	}
	for _, m := range targets {
		if fired := m.Feed(count, &r.ship); fired > 0 {
			r.pending = append(r.pending, Activation{Module: m.Name(), Kind: m.Kind(), Times: fired})
			r.logger.Info("module activated", "module", m.Name(), "times", fired, "ship", r.ship.String())
		}
	}
}

// Ship returns a copy of the ship stats.
func (r *Registry) Ship() Ship {
	return r.ship
}

// Hit forwards incoming damage to the ship.
func (r *Registry) Hit(dmg int) {
	r.ship.Hit(dmg)
}

// Statuses returns every module's status in install order.
func (r *Registry) Statuses() []Status {
	out := make([]Status, len(r.modules))
	for i, m := range r.modules {
		out[i] = m.Status()
	}
	return out
}

// Unused returns how many matched cells of t reached no module.
func (r *Registry) Unused(t core.CellType) int {
	return r.unused[t]
}

// Drain returns the activations since the last call and clears them.
func (r *Registry) Drain() []Activation {
	out := r.pending
	r.pending = nil
	return out
}

// Reset restores the ship and clears all module charge.
func (r *Registry) Reset() {
	r.ship = NewShip()
	for _, m := range r.modules {
		m.Reset()
	}
	clear(r.unused)
	r.pending = nil
}
