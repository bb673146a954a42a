// Package config provides YAML-based gameplay configuration loading and
// validation for Hexfleet.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// HexfleetConfig contains all gameplay configuration.
type HexfleetConfig struct {
	Timings  TimingsConfig  `yaml:"timings"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Board    BoardConfig    `yaml:"board"`
	Modules  []ModuleConfig `yaml:"modules"`
}

// TimingsConfig defines the board animation gates.
// Values are Go duration strings in YAML ("200ms").
type TimingsConfig struct {
	Swap time.Duration `yaml:"swap"`
	Pop  time.Duration `yaml:"pop"`
	Fall time.Duration `yaml:"fall"`
}

// GameplayConfig defines scoring and the move budget.
type GameplayConfig struct {
	Moves          int `yaml:"moves"`           // Swaps per game; 0 means unlimited
	PointsPerCell  int `yaml:"points_per_cell"` // Base points per consumed cell
	MaxRun         int `yaml:"max_run"`         // Run walk bound
	HintCost       int `yaml:"hint_cost"`       // Points deducted per hint
	IncomingDamage int `yaml:"incoming_damage"` // Hull damage taken per accepted swap
}

// BoardConfig defines board presentation and upkeep.
type BoardConfig struct {
	Spacing          float64 `yaml:"spacing"`            // Observer pixel spacing
	ReshuffleOnStuck bool    `yaml:"reshuffle_on_stuck"` // Reshuffle when no swap can match
	HighlightTicks   int     `yaml:"highlight_ticks"`    // Ticks a changed cell stays highlighted
	ShowCoordinates  bool    `yaml:"show_coordinates"`   // Print the cursor position in the HUD
}

// ModuleConfig declares one ship module.
type ModuleConfig struct {
	Kind      string `yaml:"kind"`       // laser, rocket, shield, repair, engine
	Name      string `yaml:"name"`       // Display name
	PoweredBy string `yaml:"powered_by"` // Cell type name that charges it
	Threshold int    `yaml:"threshold"`  // Cells needed per activation
	Power     int    `yaml:"power"`      // Effect size per activation
}

// ModuleKinds lists the accepted module kinds.
var ModuleKinds = []string{"laser", "rocket", "shield", "repair", "engine"}

// Validate checks the configuration and returns the first problem found.
func (c HexfleetConfig) Validate() error {
	t := c.Timings
	if t.Swap < 0 || t.Pop < 0 || t.Fall < 0 {
		return fmt.Errorf("%w: timings must not be negative", ErrInvalid)
	}
	g := c.Gameplay
	if g.Moves < 0 {
		return fmt.Errorf("%w: gameplay.moves must not be negative", ErrInvalid)
	}
	if g.PointsPerCell <= 0 {
		return fmt.Errorf("%w: gameplay.points_per_cell must be positive", ErrInvalid)
	}
	if g.MaxRun < 3 {
		return fmt.Errorf("%w: gameplay.max_run must be at least 3", ErrInvalid)
	}
	if g.HintCost < 0 {
		return fmt.Errorf("%w: gameplay.hint_cost must not be negative", ErrInvalid)
	}
	if g.IncomingDamage < 0 {
		return fmt.Errorf("%w: gameplay.incoming_damage must not be negative", ErrInvalid)
	}
	if c.Board.Spacing <= 0 {
		return fmt.Errorf("%w: board.spacing must be positive", ErrInvalid)
	}

	names := make(map[string]bool, len(c.Modules))
	for i, m := range c.Modules {
		if !validKind(m.Kind) {
			return fmt.Errorf("%w: modules[%d]: unknown kind %q", ErrInvalid, i, m.Kind)
		}
		if m.Name == "" {
			return fmt.Errorf("%w: modules[%d]: name is required", ErrInvalid, i)
		}
		if names[m.Name] {
			return fmt.Errorf("%w: modules[%d]: duplicate name %q", ErrInvalid, i, m.Name)
		}
		names[m.Name] = true
		if m.PoweredBy == "" {
			return fmt.Errorf("%w: modules[%d]: powered_by is required", ErrInvalid, i)
		}
		if m.Threshold <= 0 {
			return fmt.Errorf("%w: modules[%d]: threshold must be positive", ErrInvalid, i)
		}
		if m.Power < 0 {
			return fmt.Errorf("%w: modules[%d]: power must not be negative", ErrInvalid, i)
		}
	}
	return nil
}

func validKind(kind string) bool {
	for _, k := range ModuleKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Mode represents a named gameplay preset.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
	ModeBlitz   Mode = "blitz"
)

// ParseMode parses a mode name. The empty string is classic.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeClassic:
		return ModeClassic, nil
	case ModeEndless, ModeBlitz:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q (want classic, endless or blitz)", ErrInvalid, s)
	}
}

// ApplyMode modifies the config for a gameplay preset.
// Classic leaves the loaded config untouched.
func ApplyMode(cfg *HexfleetConfig, mode Mode) {
	switch mode {
	case ModeEndless:
		cfg.Gameplay.Moves = 0
	case ModeBlitz:
		if cfg.Gameplay.Moves == 0 || cfg.Gameplay.Moves > 15 {
			cfg.Gameplay.Moves = 15
		}
		cfg.Timings.Swap /= 2
		cfg.Timings.Pop /= 2
		cfg.Timings.Fall /= 2
	}
}
