package modules

import (
	"fmt"

	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
)

// Module is a ship system charged by one cell type.
type Module interface {
	Name() string
	Kind() string
	PoweredBy() core.CellType

	// Feed adds count cells of charge and fires once per full threshold.
	// Returns the number of activations.
	Feed(count int, ship *Ship) int

	Status() Status
	Reset()
}

// Status is a read-only snapshot of a module for HUDs and logs.
type Status struct {
	Name        string
	Kind        string
	PoweredBy   core.CellType
	Charge      int
	Threshold   int
	Activations int
}

// Fraction returns the charge progress in [0, 1).
func (s Status) Fraction() float64 {
	if s.Threshold <= 0 {
		return 0
	}
	return float64(s.Charge) / float64(s.Threshold)
}

// effect applies one activation of the given power.
type effect func(ship *Ship, power int)

var effects = map[string]effect{
	"laser": func(s *Ship, p int) {
		s.Damage += p
	},
	"rocket": func(s *Ship, p int) {
		s.Rockets += p
	},
	"shield": func(s *Ship, p int) {
		s.Shield = min(s.MaxShield, s.Shield+p)
	},
	"repair": func(s *Ship, p int) {
		s.Hull = min(s.MaxHull, s.Hull+p)
	},
	"engine": func(s *Ship, p int) {
		s.Distance += p
	},
}

// module is the shared charge accumulator behind every kind.
type module struct {
	name      string
	kind      string
	poweredBy core.CellType
	threshold int
	power     int
	apply     effect

	charge      int
	activations int
}

// New builds a module of the given kind.
func New(kind, name string, poweredBy core.CellType, threshold, power int) (Module, error) {
	apply, ok := effects[kind]
	if !ok {
		return nil, fmt.Errorf("modules: unknown kind %q", kind)
	}
	if !poweredBy.IsConcrete() {
		return nil, fmt.Errorf("modules: %s cannot be powered by %s", name, poweredBy)
	}
	if threshold <= 0 {
		return nil, fmt.Errorf("modules: %s threshold must be positive", name)
	}
	return &module{
		name:      name,
		kind:      kind,
		poweredBy: poweredBy,
		threshold: threshold,
		power:     power,
		apply:     apply,
	}, nil
}

func (m *module) Name() string             { return m.name }
func (m *module) Kind() string             { return m.kind }
func (m *module) PoweredBy() core.CellType { return m.poweredBy }

func (m *module) Feed(count int, ship *Ship) int {
	if count <= 0 {
		return 0
	}
	m.charge += count
	fired := 0
	for m.charge >= m.threshold {
		m.charge -= m.threshold
		m.apply(ship, m.power)
		fired++
	}
	m.activations += fired
	return fired
}

func (m *module) Status() Status {
	return Status{
		Name:        m.name,
		Kind:        m.kind,
		PoweredBy:   m.poweredBy,
		Charge:      m.charge,
		Threshold:   m.threshold,
		Activations: m.activations,
	}
}

func (m *module) Reset() {
	m.charge = 0
	m.activations = 0
}
