// Package core provides the board engine for the Hexfleet match-3 puzzle.
// This package is UI-agnostic and deterministic for a given RNG seed.
package core

import "strings"

// Direction is one of the six neighbor directions on the hex grid.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeftUp
	DirLeftDown
	DirRightUp
	DirRightDown
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeftUp:
		return "LeftUp"
	case DirLeftDown:
		return "LeftDown"
	case DirRightUp:
		return "RightUp"
	case DirRightDown:
		return "RightDown"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeftUp:
		return DirRightDown
	case DirLeftDown:
		return DirRightUp
	case DirRightUp:
		return DirLeftDown
	case DirRightDown:
		return DirLeftUp
	default:
		return d
	}
}

// Directions returns all six directions.
func Directions() []Direction {
	return []Direction{DirUp, DirDown, DirLeftUp, DirLeftDown, DirRightUp, DirRightDown}
}

// MatchAxes returns the directions scanned for runs.
// Their opposites are redundant because a run reads the same both ways.
func MatchAxes() []Direction {
	return []Direction{DirUp, DirRightUp, DirRightDown}
}

// CellType identifies what a cell holds.
type CellType uint8

const (
	None CellType = iota // Clipped slot, never playable
	Wild                 // Matches any concrete type
	LaserCannon
	RocketLauncher
	ShieldGenerator
	RepairDroids
	EngineDrive

	cellTypeCount
)

var cellTypeNames = [...]string{
	None:            "none",
	Wild:            "wild",
	LaserCannon:     "laser_cannon",
	RocketLauncher:  "rocket_launcher",
	ShieldGenerator: "shield_generator",
	RepairDroids:    "repair_droids",
	EngineDrive:     "engine_drive",
}

// String returns the snake_case name used in layout and config files.
func (t CellType) String() string {
	if t >= cellTypeCount {
		return "unknown"
	}
	return cellTypeNames[t]
}

// IsConcrete reports whether t is a gameplay type (not None, not Wild).
func (t CellType) IsConcrete() bool {
	return t > Wild && t < cellTypeCount
}

// ParseCellType parses a cell type name. Case and dashes are ignored.
func ParseCellType(s string) (CellType, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range cellTypeNames {
		if name == key {
			return CellType(i), true
		}
	}
	return None, false
}

// ConcreteTypes returns every concrete type in declaration order.
func ConcreteTypes() []CellType {
	types := make([]CellType, 0, int(cellTypeCount)-2)
	for t := LaserCannon; t < cellTypeCount; t++ {
		types = append(types, t)
	}
	return types
}
