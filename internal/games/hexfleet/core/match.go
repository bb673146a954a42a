package core

// Run length bounds.
const (
	MinRunLength = 3  // Shortest run that counts as a match
	MaxRunLength = 12 // Termination bound for a single run walk
)

// Run is a contiguous walk along one axis from a start position.
type Run struct {
	Axis      Direction
	Type      CellType // Resolved type; Wild if no concrete cell was seen
	Positions []Pos    // Start first, in walk order
}

// Len returns the number of cells in the run.
func (r Run) Len() int {
	return len(r.Positions)
}

// Qualifies reports whether the run is long enough and resolved to a
// concrete type. All-wild runs never qualify.
func (r Run) Qualifies() bool {
	return r.Len() >= MinRunLength && r.Type.IsConcrete()
}

// MatchDetector scans a board for runs and marks matched cells.
type MatchDetector struct {
	board  *Board
	maxRun int
}

// NewMatchDetector creates a detector over b.
func NewMatchDetector(b *Board) *MatchDetector {
	return &MatchDetector{board: b, maxRun: MaxRunLength}
}

// SetMaxRun overrides the run walk bound. Values below MinRunLength are raised.
func (d *MatchDetector) SetMaxRun(n int) {
	if n < MinRunLength {
		n = MinRunLength
	}
	d.maxRun = n
}

// RunAt walks from start along axis and returns the run found.
//
// Walk rules:
//  1. A None or out-of-bounds start yields an empty run
//  2. The first concrete type seen establishes the run type
//  3. Wild always extends the run
//  4. A concrete type different from the established one stops the walk
//  5. None or out-of-bounds stops the walk
func (d *MatchDetector) RunAt(start Pos, axis Direction) Run {
	run := Run{Axis: axis, Type: Wild}

	t, ok := d.board.TypeAt(start)
	if !ok || t == None {
		run.Type = None
		return run
	}

	established := None
	if t.IsConcrete() {
		established = t
	}
	run.Positions = append(run.Positions, start)

	cur := start
	for len(run.Positions) < d.maxRun {
		next := cur.Neighbor(axis)
		nt, ok := d.board.TypeAt(next)
		if !ok || nt == None {
			break
		}
		if nt != Wild {
			if established == None {
				established = nt
			} else if nt != established {
				break
			}
		}
		run.Positions = append(run.Positions, next)
		cur = next
	}

	if established != None {
		run.Type = established
	}
	return run
}

// Runs returns every qualifying run on the board without marking anything.
// Overlapping runs are all reported.
func (d *MatchDetector) Runs() []Run {
	var runs []Run
	for _, p := range d.board.Positions() {
		for _, axis := range MatchAxes() {
			if r := d.RunAt(p, axis); r.Qualifies() {
				runs = append(runs, r)
			}
		}
	}
	return runs
}

// HasMatch reports whether any qualifying run exists, without marking.
func (d *MatchDetector) HasMatch() bool {
	for _, p := range d.board.Positions() {
		for _, axis := range MatchAxes() {
			if d.RunAt(p, axis).Qualifies() {
				return true
			}
		}
	}
	return false
}

// CheckForMatches scans the whole board, marks every cell in a qualifying
// run and reports whether any run was found. Flags are only ever set here;
// clearing belongs to the cascade.
func (d *MatchDetector) CheckForMatches() bool {
	found := false
	for _, p := range d.board.Positions() {
		for _, axis := range MatchAxes() {
			r := d.RunAt(p, axis)
			if !r.Qualifies() {
				continue
			}
			found = true
			for _, rp := range r.Positions {
				d.board.Cell(rp).mark(r.Type)
			}
		}
	}
	return found
}
