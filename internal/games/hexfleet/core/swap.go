package core

import "github.com/charmbracelet/log"

// Move is a swap request: the cell at From trades places with its
// neighbor in direction Dir.
type Move struct {
	From Pos
	Dir  Direction
}

// To returns the neighbor position the move swaps with.
func (m Move) To() Pos {
	return m.From.Neighbor(m.Dir)
}

// SwapCoordinator validates and applies two-cell swaps and keeps the last
// pair for rollback.
type SwapCoordinator struct {
	board    *Board
	machine  *Machine
	detector *MatchDetector
	logger   *log.Logger

	last    [2]Pos
	hasLast bool
}

// NewSwapCoordinator creates a coordinator gated by m.
func NewSwapCoordinator(b *Board, m *Machine, d *MatchDetector, logger *log.Logger) *SwapCoordinator {
	return &SwapCoordinator{
		board:    b,
		machine:  m,
		detector: d,
		logger:   logger,
	}
}

// TrySwap exchanges the cell at origin with its neighbor in dir.
// Returns false without touching the board if the machine is not
// accepting input, the neighbor is out of bounds, or either slot is None.
func (s *SwapCoordinator) TrySwap(origin Pos, dir Direction) bool {
	if !s.machine.AcceptsInput() {
		return false
	}
	target := origin.Neighbor(dir)
	if !s.board.Playable(origin) || !s.board.Playable(target) {
		return false
	}

	s.board.swap(origin, target)
	s.last = [2]Pos{origin, target}
	s.hasLast = true
	s.announce(origin, target)
	return true
}

// LastSwap returns the pending swap pair, if any.
func (s *SwapCoordinator) LastSwap() (a, b Pos, ok bool) {
	return s.last[0], s.last[1], s.hasLast
}

// Rollback re-applies the inverse of the pending swap and forgets it.
// Returns false if there is nothing to roll back.
func (s *SwapCoordinator) Rollback() bool {
	if !s.hasLast {
		return false
	}
	a, b := s.last[0], s.last[1]
	s.hasLast = false

	if !s.board.InBounds(a) || !s.board.InBounds(b) {
		s.logger.Error("rollback pair out of bounds", "a", a, "b", b)
		return false
	}

	s.board.swap(a, b)
	s.board.Cell(a).clear()
	s.board.Cell(b).clear()
	s.announce(a, b)
	return true
}

// commit forgets the pending swap once it produced a match.
func (s *SwapCoordinator) commit() {
	s.hasLast = false
}

// FindMove returns the first swap that would produce a match, scanning
// bottom row first. The board is left unchanged.
func (s *SwapCoordinator) FindMove() (Move, bool) {
	for _, p := range s.board.Positions() {
		if !s.board.Playable(p) {
			continue
		}
		// Each pair is visited once through these three directions.
		for _, dir := range MatchAxes() {
			q := p.Neighbor(dir)
			if !s.board.Playable(q) {
				continue
			}
			s.board.swap(p, q)
			found := s.detector.HasMatch()
			s.board.swap(p, q)
			if found {
				return Move{From: p, Dir: dir}, true
			}
		}
	}
	return Move{}, false
}

// announce tells the observer that the cells at a and b moved.
func (s *SwapCoordinator) announce(a, b Pos) {
	o := s.board.observer
	o.PositionChanged(a, PixelLocation(a, s.board.spacing), false)
	o.PositionChanged(b, PixelLocation(b, s.board.spacing), false)
}
