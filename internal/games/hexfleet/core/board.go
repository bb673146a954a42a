package core

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Construction errors. NewBoard wraps these; test with errors.Is.
var (
	ErrInvalidDimensions = errors.New("board: width and height must be positive")
	ErrEmptyPalette      = errors.New("board: palette is empty")
	ErrInvalidPalette    = errors.New("board: palette may only hold concrete types")
	ErrMaskOutOfBounds   = errors.New("board: mask position out of bounds")
	ErrInvalidWild       = errors.New("board: wild position must be playable")
)

// settlePasses bounds the reroll loop that clears runs from a fresh board.
const settlePasses = 100

// BoardConfig is everything needed to construct a board.
type BoardConfig struct {
	Width      int
	Height     int
	Mask       []Pos      // Positions that are permanently None
	Palette    []CellType // Concrete types used for random generation
	Wilds      []Pos      // Positions that start as Wild; never spawned randomly
	Spacing    float64    // Presentation cell spacing reported to observers
}

// Validate checks the config and returns a wrapped construction error.
func (c BoardConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if len(c.Palette) == 0 {
		return ErrEmptyPalette
	}
	for _, t := range c.Palette {
		if !t.IsConcrete() {
			return fmt.Errorf("%w: %s", ErrInvalidPalette, t)
		}
	}
	masked := make(map[Pos]bool, len(c.Mask))
	for _, p := range c.Mask {
		if p.X < 0 || p.X >= c.Width || p.Y < 0 || p.Y >= c.Height {
			return fmt.Errorf("%w: %v on %dx%d", ErrMaskOutOfBounds, p, c.Width, c.Height)
		}
		masked[p] = true
	}
	for _, p := range c.Wilds {
		if p.X < 0 || p.X >= c.Width || p.Y < 0 || p.Y >= c.Height || masked[p] {
			return fmt.Errorf("%w: %v", ErrInvalidWild, p)
		}
	}
	return nil
}

// Board owns the cell array and the fixed board geometry.
// Cells are stored in row-major order: index = y*W + x.
// Every in-bounds position holds exactly one non-nil cell at all times.
type Board struct {
	w     int
	h     int
	cells []*Cell
	mask  mapset.Set[Pos]

	palette  []CellType
	spacing  float64
	rng      *rand.Rand
	observer Observer
	nextID   int
	settled  bool
}

// NewBoard builds a board, fills every playable slot with a random palette
// type, places the configured wilds and rerolls concrete cells until no run
// of three remains (bounded; see Settled). A nil rng uses a fixed seed.
func NewBoard(cfg BoardConfig, rng *rand.Rand) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	spacing := cfg.Spacing
	if spacing <= 0 {
		spacing = 1
	}

	b := &Board{
		w:        cfg.Width,
		h:        cfg.Height,
		cells:    make([]*Cell, cfg.Width*cfg.Height),
		mask:     mapset.New[Pos](),
		palette:  append([]CellType(nil), cfg.Palette...),
		spacing:  spacing,
		rng:      rng,
		observer: nopObserver{},
	}
	for _, p := range cfg.Mask {
		b.mask.Put(p)
	}

	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			p := P(x, y)
			t := None
			if !b.mask.Has(p) {
				t = b.randomType()
			}
			b.cells[b.index(p)] = b.newCell(t)
		}
	}
	for _, p := range cfg.Wilds {
		b.cells[b.index(p)].Type = Wild
	}
	b.settled = b.settle()

	return b, nil
}

func (b *Board) newCell(t CellType) *Cell {
	b.nextID++
	return &Cell{ID: b.nextID, Type: t}
}

// index converts a position to a flat array index.
func (b *Board) index(p Pos) int {
	return p.Y*b.w + p.X
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

// Spacing returns the presentation spacing used for observer targets.
func (b *Board) Spacing() float64 {
	return b.spacing
}

// Palette returns a copy of the concrete types used for spawning.
func (b *Board) Palette() []CellType {
	return append([]CellType(nil), b.palette...)
}

// SetObserver installs the presentation observer. nil disables it.
func (b *Board) SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	b.observer = o
}

// InBounds returns true if p is within the board rectangle.
func (b *Board) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < b.w && p.Y >= 0 && p.Y < b.h
}

// Masked returns true if p is part of the fixed shape mask.
func (b *Board) Masked(p Pos) bool {
	return b.mask.Has(p)
}

// Playable returns true if p is in bounds and not None.
func (b *Board) Playable(p Pos) bool {
	return b.InBounds(p) && b.cells[b.index(p)].Type != None
}

// Cell returns the cell at p, or nil if p is out of bounds.
func (b *Board) Cell(p Pos) *Cell {
	if !b.InBounds(p) {
		return nil
	}
	return b.cells[b.index(p)]
}

// TypeAt returns the type at p. ok is false when p is out of bounds,
// which is distinct from an in-bounds None slot.
func (b *Board) TypeAt(p Pos) (t CellType, ok bool) {
	if !b.InBounds(p) {
		return None, false
	}
	return b.cells[b.index(p)].Type, true
}

// SetType overwrites the type at p and clears its match state.
// Masked slots cannot be changed and unmasked slots cannot become None.
func (b *Board) SetType(p Pos, t CellType) error {
	if !b.InBounds(p) {
		return fmt.Errorf("board: %v out of bounds", p)
	}
	if b.mask.Has(p) {
		return fmt.Errorf("board: %v is masked", p)
	}
	if t == None || t >= cellTypeCount {
		return fmt.Errorf("board: cannot place %s at %v", t, p)
	}
	c := b.cells[b.index(p)]
	c.respawn(t)
	b.observer.TypeChanged(p, t)
	return nil
}

// Positions returns every in-bounds position, bottom row first.
func (b *Board) Positions() []Pos {
	positions := make([]Pos, 0, b.w*b.h)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			positions = append(positions, P(x, y))
		}
	}
	return positions
}

// PlayableCount returns the number of non-None slots.
func (b *Board) PlayableCount() int {
	return len(b.cells) - b.mask.Size()
}

// Types returns a snapshot of the cell types indexed [y][x].
func (b *Board) Types() [][]CellType {
	rows := make([][]CellType, b.h)
	for y := range rows {
		rows[y] = make([]CellType, b.w)
		for x := range rows[y] {
			rows[y][x] = b.cells[b.index(P(x, y))].Type
		}
	}
	return rows
}

// ClearMatches resets the matched flag on every cell.
func (b *Board) ClearMatches() {
	for _, c := range b.cells {
		c.clear()
	}
}

// Shuffle rerolls every concrete cell and settles the result. Wild cells
// keep their slots.
func (b *Board) Shuffle() {
	for _, p := range b.Positions() {
		if b.mask.Has(p) {
			continue
		}
		if c := b.cells[b.index(p)]; c.Type != Wild {
			c.respawn(b.randomType())
		}
	}
	b.settled = b.settle()
	for _, p := range b.Positions() {
		if !b.mask.Has(p) {
			b.observer.TypeChanged(p, b.cells[b.index(p)].Type)
		}
	}
}

// Announce pushes every cell position to the observer with snap set,
// used once after construction so a renderer can place its sprites.
func (b *Board) Announce() {
	for _, p := range b.Positions() {
		if b.mask.Has(p) {
			continue
		}
		b.observer.TypeChanged(p, b.cells[b.index(p)].Type)
		b.observer.PositionChanged(p, PixelLocation(p, b.spacing), true)
	}
}

// swap exchanges the array slots at a and b. Callers validate positions.
func (b *Board) swap(p, q Pos) {
	i, j := b.index(p), b.index(q)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// randomType picks a concrete spawn type from the palette.
func (b *Board) randomType() CellType {
	return b.palette[b.rng.Intn(len(b.palette))]
}

// settle rerolls concrete cells that sit in runs until none remain or the
// pass budget runs out, and reports whether the board ended run-free.
// Single-type palettes cannot settle and keep their runs.
func (b *Board) settle() bool {
	d := NewMatchDetector(b)
	for pass := 0; pass < settlePasses; pass++ {
		runs := d.Runs()
		if len(runs) == 0 {
			return true
		}
		for _, r := range runs {
			// Rerolling the middle cell breaks the run with the fewest changes.
			if p, ok := b.rerollTarget(r); ok {
				b.cells[b.index(p)].Type = b.randomType()
			}
		}
	}
	return len(d.Runs()) == 0
}

// rerollTarget picks the concrete cell nearest the middle of r.
// Wild cells are layout data and stay put.
func (b *Board) rerollTarget(r Run) (Pos, bool) {
	mid := len(r.Positions) / 2
	for off := 0; off <= mid+1; off++ {
		for _, i := range []int{mid - off, mid + off} {
			if i < 0 || i >= len(r.Positions) {
				continue
			}
			if p := r.Positions[i]; b.cells[b.index(p)].Type.IsConcrete() {
				return p, true
			}
		}
	}
	return Pos{}, false
}

// Settled reports whether the last construction or shuffle cleared every
// pre-existing run. An unsettled board can commit a swap on a run the swap
// did not make.
func (b *Board) Settled() bool {
	return b.settled
}

// String renders the board as rows of type initials, top row first.
// Useful in test failure messages.
func (b *Board) String() string {
	var sb strings.Builder
	for y := b.h - 1; y >= 0; y-- {
		for x := 0; x < b.w; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(typeGlyph(b.cells[b.index(P(x, y))].Type))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// typeGlyph returns a single-letter symbol for a cell type.
func typeGlyph(t CellType) string {
	switch t {
	case None:
		return "."
	case Wild:
		return "*"
	case LaserCannon:
		return "L"
	case RocketLauncher:
		return "R"
	case ShieldGenerator:
		return "S"
	case RepairDroids:
		return "D"
	case EngineDrive:
		return "E"
	default:
		return "?"
	}
}
