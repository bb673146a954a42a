package hexfleet

import (
	"errors"

	"github.com/vovakirdan/hexfleet/internal/config"
	platformcore "github.com/vovakirdan/hexfleet/internal/core"
	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
	"github.com/vovakirdan/hexfleet/internal/modules"
)

// settleTicks bounds the ticks spent waiting for one swap to resolve.
const settleTicks = 10000

// ErrNotSettled is returned when the engine keeps animating past settleTicks.
var ErrNotSettled = errors.New("hexfleet: engine did not settle")

// AutoplayResult summarizes a headless run.
type AutoplayResult struct {
	Layout     string
	Mode       config.Mode
	Swaps      int
	Score      int
	MovesLeft  int
	GameOver   bool
	Reason     string
	Reshuffles int
	Stats      core.Stats
	Ship       modules.Ship
	Tallies    core.Tally
}

// Autoplay plays up to maxSwaps swaps, each time taking the first move the
// engine finds, and lets every swap resolve before the next. It stops early
// on game over. The game must have been Reset.
func (g *Game) Autoplay(maxSwaps int) (AutoplayResult, error) {
	if g.failed != nil {
		return AutoplayResult{}, g.failed
	}
	if g.ctrl == nil {
		return AutoplayResult{}, errors.New("hexfleet: game not reset")
	}
	// Headless runs ignore the terminal size.
	g.tooSmall = false

	swaps := 0
	for swaps < maxSwaps && !g.gameOver {
		mv, ok := g.ctrl.FindMove()
		if !ok {
			break
		}
		g.cursor = mv.From
		before := g.ctrl.Stats().Swaps
		g.Step(frame(actionFor(mv.Dir)))
		if g.ctrl.Stats().Swaps == before {
			break
		}
		swaps++
		if err := g.settle(); err != nil {
			return g.autoplayResult(swaps), err
		}
	}
	return g.autoplayResult(swaps), nil
}

func (g *Game) settle() error {
	for range settleTicks {
		if g.ctrl.AcceptsInput() || g.gameOver {
			return nil
		}
		g.Step(platformcore.NewInputFrame())
	}
	return ErrNotSettled
}

func (g *Game) autoplayResult(swaps int) AutoplayResult {
	return AutoplayResult{
		Layout:     g.layout.ID,
		Mode:       g.Mode(),
		Swaps:      swaps,
		Score:      g.score,
		MovesLeft:  g.movesLeft,
		GameOver:   g.gameOver,
		Reason:     g.reason,
		Reshuffles: g.reshuffles,
		Stats:      g.ctrl.Stats(),
		Ship:       g.ship.Ship(),
		Tallies:    g.Tallies(),
	}
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// actionFor is the inverse of swapDirections.
func actionFor(dir core.Direction) platformcore.Action {
	for a, d := range swapDirections {
		if d == dir {
			return a
		}
	}
	return platformcore.ActionNone
}
