package hexfleet

import (
	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
	"github.com/vovakirdan/hexfleet/internal/modules"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Layout     string
	Board      string // Board.String() rendering, top row first
	Engine     core.StateKind
	Cursor     core.Pos
	Score      int
	MovesLeft  int
	Reshuffles int
	Stats      core.Stats
	Ship       modules.Ship
	Tallies    map[core.CellType]int
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.ctrl != nil && !g.ctrl.AcceptsInput():
		state = StateAnimating
	}

	snap := Snapshot{
		Tick:       g.tick,
		Layout:     g.layout.ID,
		Cursor:     g.cursor,
		Score:      g.score,
		MovesLeft:  g.movesLeft,
		Reshuffles: g.reshuffles,
		Tallies:    make(map[core.CellType]int, len(g.tallies.Counts)),
		State:      state,
	}
	for t, n := range g.tallies.Counts {
		snap.Tallies[t] = n
	}
	if g.ctrl != nil {
		snap.Board = g.board.String()
		snap.Engine = g.ctrl.State()
		snap.Stats = g.ctrl.Stats()
		snap.Ship = g.ship.Ship()
	}
	return snap
}
