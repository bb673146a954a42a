package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/hexfleet.yaml
var defaultHexfleetYAML []byte

// DefaultHexfleetConfig returns the hard-coded default configuration.
// It matches defaults/hexfleet.yaml and is used when the embedded file
// cannot be parsed.
func DefaultHexfleetConfig() HexfleetConfig {
	return HexfleetConfig{
		Timings: TimingsConfig{
			Swap: 200 * time.Millisecond,
			Pop:  250 * time.Millisecond,
			Fall: 300 * time.Millisecond,
		},
		Gameplay: GameplayConfig{
			Moves:          30,
			PointsPerCell:  10,
			MaxRun:         12,
			HintCost:       25,
			IncomingDamage: 3,
		},
		Board: BoardConfig{
			Spacing:          1,
			ReshuffleOnStuck: true,
			HighlightTicks:   20,
		},
		Modules: []ModuleConfig{
			{Kind: "laser", Name: "Laser Bank", PoweredBy: "laser_cannon", Threshold: 6, Power: 4},
			{Kind: "rocket", Name: "Rocket Pod", PoweredBy: "rocket_launcher", Threshold: 9, Power: 2},
			{Kind: "shield", Name: "Deflector", PoweredBy: "shield_generator", Threshold: 6, Power: 10},
			{Kind: "repair", Name: "Repair Bay", PoweredBy: "repair_droids", Threshold: 8, Power: 8},
			{Kind: "engine", Name: "Ion Drive", PoweredBy: "engine_drive", Threshold: 10, Power: 5},
		},
	}
}
