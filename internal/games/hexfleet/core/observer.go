package core

// Notifier receives how many cells of each concrete type a cascade consumed.
// It is called at most once per type per cascade pass, always with count > 0.
type Notifier interface {
	OnCellsMatched(t CellType, count int)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(t CellType, count int)

// OnCellsMatched calls f(t, count).
func (f NotifierFunc) OnCellsMatched(t CellType, count int) {
	f(t, count)
}

// Observer is the presentation boundary. The engine pushes position and
// type changes and never reads rendering state back.
type Observer interface {
	// PositionChanged reports that the cell now at p should move to target.
	// snap requests an immediate jump instead of an animated move.
	PositionChanged(p Pos, target Point, snap bool)

	// TypeChanged reports that the cell at p now holds t.
	TypeChanged(p Pos, t CellType)
}

// nopNotifier discards match counts.
type nopNotifier struct{}

func (nopNotifier) OnCellsMatched(CellType, int) {}

// nopObserver discards presentation events.
type nopObserver struct{}

func (nopObserver) PositionChanged(Pos, Point, bool) {}
func (nopObserver) TypeChanged(Pos, CellType)        {}
