// Package modules implements the ship systems powered by matched cells.
// A Registry receives per-type match counts from the board and charges the
// modules wired to each cell type; a full charge activates the module
// against the Ship.
package modules

import "fmt"

// Ship holds the stats modules act on.
type Ship struct {
	Hull      int
	MaxHull   int
	Shield    int
	MaxShield int
	Rockets   int // Loaded rockets
	Damage    int // Total damage dealt by weapons
	Distance  int // Distance travelled under engine power
}

// NewShip returns a ship at full hull with shields down.
func NewShip() Ship {
	return Ship{
		Hull:      100,
		MaxHull:   100,
		MaxShield: 50,
	}
}

// Hit applies incoming damage, shield first.
func (s *Ship) Hit(dmg int) {
	if dmg <= 0 {
		return
	}
	absorbed := min(dmg, s.Shield)
	s.Shield -= absorbed
	s.Hull = max(0, s.Hull-(dmg-absorbed))
}

// Destroyed reports whether the hull is gone.
func (s Ship) Destroyed() bool {
	return s.Hull <= 0
}

func (s Ship) String() string {
	return fmt.Sprintf("hull %d/%d shield %d/%d rockets %d dmg %d dist %d",
		s.Hull, s.MaxHull, s.Shield, s.MaxShield, s.Rockets, s.Damage, s.Distance)
}
