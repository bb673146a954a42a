package core

import "sort"

// Tally counts consumed cells per concrete type for one cascade pass.
type Tally struct {
	Counts map[CellType]int
}

// NewTally creates an empty tally.
func NewTally() Tally {
	return Tally{Counts: make(map[CellType]int)}
}

// Count returns the count for t.
func (t Tally) Count(ct CellType) int {
	return t.Counts[ct]
}

// Total returns the number of cells across all types.
func (t Tally) Total() int {
	total := 0
	for _, n := range t.Counts {
		total += n
	}
	return total
}

// Empty returns true if nothing was counted.
func (t Tally) Empty() bool {
	return t.Total() == 0
}

// Types returns the counted types in CellType order.
func (t Tally) Types() []CellType {
	types := make([]CellType, 0, len(t.Counts))
	for ct, n := range t.Counts {
		if n > 0 {
			types = append(types, ct)
		}
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i] < types[j]
	})
	return types
}

// Add merges other into t.
func (t Tally) Add(other Tally) {
	for ct, n := range other.Counts {
		t.Counts[ct] += n
	}
}

// CascadeEngine removes matched cells, lets survivors fall and refills
// each column from the top.
type CascadeEngine struct {
	board    *Board
	notifier Notifier
}

// NewCascadeEngine creates a cascade engine reporting to n.
// A nil notifier discards counts.
func NewCascadeEngine(b *Board, n Notifier) *CascadeEngine {
	if n == nil {
		n = nopNotifier{}
	}
	return &CascadeEngine{board: b, notifier: n}
}

// cellMove records where a cell landed during a cascade.
type cellMove struct {
	pos       Pos
	cell      *Cell
	respawned bool
}

// PopMatches compacts every column and returns what was consumed.
//
// Per column, bottom to top:
//  1. Split playable cells into unmatched and matched, keeping order
//  2. Masked rows stay where they are
//  3. Other rows take unmatched cells first, then matched cells respawned
//     with a new random type
//
// The board array is replaced only after every column is rebuilt.
// The notifier hears each consumed type once, in CellType order.
func (e *CascadeEngine) PopMatches() Tally {
	b := e.board
	tally := NewTally()
	next := make([]*Cell, len(b.cells))
	var moves []cellMove

	for x := 0; x < b.w; x++ {
		kept := make([]*Cell, 0, b.h)
		popped := make([]*Cell, 0, b.h)
		for y := 0; y < b.h; y++ {
			p := P(x, y)
			if b.mask.Has(p) {
				continue
			}
			c := b.cells[b.index(p)]
			if c.Matched {
				popped = append(popped, c)
			} else {
				kept = append(kept, c)
			}
		}

		for y := 0; y < b.h; y++ {
			p := P(x, y)
			i := b.index(p)
			if b.mask.Has(p) {
				next[i] = b.cells[i]
				continue
			}

			var c *Cell
			respawned := false
			if len(kept) > 0 {
				c, kept = kept[0], kept[1:]
				c.clear()
			} else {
				c, popped = popped[0], popped[1:]
				if t := c.MatchedAs(); t.IsConcrete() {
					tally.Counts[t]++
				}
				c.respawn(b.randomType())
				respawned = true
			}

			next[i] = c
			if respawned || b.cells[i] != c {
				moves = append(moves, cellMove{pos: p, cell: c, respawned: respawned})
			}
		}
	}

	b.cells = next

	for _, t := range tally.Types() {
		e.notifier.OnCellsMatched(t, tally.Counts[t])
	}
	for _, m := range moves {
		if m.respawned {
			b.observer.TypeChanged(m.pos, m.cell.Type)
		}
		b.observer.PositionChanged(m.pos, PixelLocation(m.pos, b.spacing), false)
	}

	return tally
}
