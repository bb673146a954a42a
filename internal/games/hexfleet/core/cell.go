package core

// Cell is a single slot on the board.
// A cell does not know its position; the board assigns that.
type Cell struct {
	ID      int      // Stable handle, survives moves and respawns
	Type    CellType // What the cell holds
	Matched bool     // Set during match evaluation, cleared by the cascade

	matchedAs CellType // Resolved run type recorded when Matched was set
}

// MatchedAs returns the concrete type the cell was matched under.
// Wild cells report the type their run resolved to. None if not matched.
func (c *Cell) MatchedAs() CellType {
	if !c.Matched {
		return None
	}
	return c.matchedAs
}

// mark flags the cell as matched under t. The first resolution wins.
func (c *Cell) mark(t CellType) {
	if c.Matched {
		return
	}
	c.Matched = true
	c.matchedAs = t
}

// respawn gives the cell a fresh type and clears the match state.
func (c *Cell) respawn(t CellType) {
	c.Type = t
	c.clear()
}

// clear resets the transient match state.
func (c *Cell) clear() {
	c.Matched = false
	c.matchedAs = None
}
