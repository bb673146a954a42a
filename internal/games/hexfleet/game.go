// Package hexfleet provides the Hexfleet match-3 game for the platform.
// Each board layout is registered as its own game; the engine lives in the
// core subpackage and this package adds the cursor, scoring, move budget,
// ship modules and rendering.
package hexfleet

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexfleet/internal/config"
	platformcore "github.com/vovakirdan/hexfleet/internal/core"
	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/layouts"
	"github.com/vovakirdan/hexfleet/internal/modules"
	"github.com/vovakirdan/hexfleet/internal/registry"
)

// maxShuffles bounds the reshuffle attempts when the board has no move.
const maxShuffles = 20

// messageTicks is how long a status message stays in the footer.
const messageTicks = 90

// Game is one Hexfleet session on a fixed layout.
type Game struct {
	layout layouts.Layout
	mode   config.Mode // Applied over the package config on Reset
	cfg    config.HexfleetConfig
	logger *log.Logger

	rng   *rand.Rand
	board *core.Board
	ctrl  *core.Controller
	ship  *modules.Registry
	flash *highlighter

	// Screen dimensions
	screenW int
	screenH int
	dt      time.Duration

	tick       uint64
	cursor     core.Pos
	hint       core.Move
	hintTicks  int
	score      int
	movesLeft  int // -1 means unlimited
	tallies    core.Tally
	reshuffles int
	message    string
	msgTicks   int

	gameOver bool
	reason   string
	paused   bool
	tooSmall bool
	failed   error // Set when the layout cannot build a board
}

// Package-level settings, applied on every Reset.
var (
	settingsMu sync.RWMutex
	gameConfig = config.DefaultHexfleetConfig()
	gameLogger = log.New(io.Discard)
)

// SetConfig sets the gameplay config used by new and restarted games.
func SetConfig(cfg config.HexfleetConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	gameConfig = cfg
}

// SetLogger sets the logger handed to the engine and module registry.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	gameLogger = l
}

func settings() (config.HexfleetConfig, *log.Logger) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return gameConfig, gameLogger
}

func init() {
	all, err := layouts.Builtin().LoadAll()
	if err != nil {
		panic(fmt.Sprintf("hexfleet: builtin layouts: %v", err))
	}
	for _, l := range all {
		register(l)
	}
}

func register(l layouts.Layout) {
	registry.Register(registry.GameInfo{
		ID:          l.ID,
		Title:       "Hexfleet: " + l.Name,
		Description: l.Metadata["description"],
	}, func() registry.Game {
		return New(l)
	})
}

// RegisterDir registers every layout found under dir. Layouts whose ID is
// already taken are skipped. Returns the number registered.
func RegisterDir(dir string) (int, error) {
	all, err := layouts.NewLoader(dir).LoadAll()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, l := range all {
		if registry.Exists(l.ID) {
			continue
		}
		register(l)
		n++
	}
	return n, nil
}

// New creates a game on the given layout.
func New(l layouts.Layout) *Game {
	return &Game{layout: l}
}

var (
	_ registry.Game    = (*Game)(nil)
	_ registry.Resizer = (*Game)(nil)
)

// SetMode selects the gameplay preset used from the next Reset on.
func (g *Game) SetMode(m config.Mode) {
	g.mode = m
}

// Mode returns the selected gameplay preset.
func (g *Game) Mode() config.Mode {
	if g.mode == "" {
		return config.ModeClassic
	}
	return g.mode
}

// ID returns the layout identifier.
func (g *Game) ID() string {
	return g.layout.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Hexfleet: " + g.layout.Name
}

// Reset builds a fresh board and ship.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.cfg, g.logger = settings()
	config.ApplyMode(&g.cfg, g.mode)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = time.Second / time.Duration(tickRate)

	g.tick = 0
	g.score = 0
	g.hintTicks = 0
	g.tallies = core.NewTally()
	g.reshuffles = 0
	g.message = ""
	g.msgTicks = 0
	g.gameOver = false
	g.reason = ""
	g.paused = false
	g.failed = nil

	g.movesLeft = -1
	if g.cfg.Gameplay.Moves > 0 {
		g.movesLeft = g.cfg.Gameplay.Moves
	}

	ship, err := modules.FromConfig(g.cfg.Modules, g.logger)
	if err != nil {
		g.fail(err)
		return
	}
	g.ship = ship

	board, err := core.NewBoard(g.layout.BoardConfig(g.cfg.Board.Spacing), g.rng)
	if err != nil {
		g.fail(err)
		return
	}
	g.board = board
	g.flash = newHighlighter(g.cfg.Board.HighlightTicks)

	t := g.cfg.Timings
	g.ctrl = core.NewController(board, ship,
		core.WithTimings(core.Timings{Swap: t.Swap, Pop: t.Pop, Fall: t.Fall}),
		core.WithMaxRun(g.cfg.Gameplay.MaxRun),
		core.WithLogger(g.logger.WithPrefix(g.layout.ID)),
		core.WithObserver(g.flash),
	)
	board.Announce()
	g.flash.Clear()

	g.cursor = g.firstPlayable()
	g.ensureMove()
	g.checkScreenSize()

	g.logger.Debug("game reset", "layout", g.layout.ID, "seed", cfg.Seed, "moves", g.movesLeft)
}

func (g *Game) fail(err error) {
	g.failed = err
	g.gameOver = true
	g.reason = "Layout error"
	g.board = nil
	g.ctrl = nil
	g.logger.Error("cannot start game", "layout", g.layout.ID, "err", err)
}

// firstPlayable returns the lowest playable slot near the board center.
func (g *Game) firstPlayable() core.Pos {
	center := core.P(g.board.Width()/2, g.board.Height()/2)
	if g.board.Playable(center) {
		return center
	}
	for _, p := range g.board.Positions() {
		if g.board.Playable(p) {
			return p
		}
	}
	return center
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.ctrl == nil || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	g.handleCursor(in)
	if in.Has(platformcore.ActionHint) {
		g.requestHint()
	}
	g.handleSwap(in)

	result := platformcore.StepResult{}
	ev := g.ctrl.Tick(g.dt)
	if !ev.Tally.Empty() {
		result.Matched = g.scoreTally(ev.Tally, ev.Chain)
	}
	for _, a := range g.ship.Drain() {
		g.say(fmt.Sprintf("%s activated x%d", a.Module, a.Times))
	}

	if ev.Transitioned && ev.To == core.StateIdle {
		g.ensureMove()
		g.checkGameOver()
	}

	g.flash.Step()
	if g.hintTicks > 0 {
		g.hintTicks--
	}
	if g.msgTicks > 0 {
		g.msgTicks--
		if g.msgTicks == 0 {
			g.message = ""
		}
	}

	result.State = g.State()
	return result
}

// handleCursor moves the cursor, skipping masked slots and wrapping at edges.
func (g *Game) handleCursor(in platformcore.InputFrame) {
	switch {
	case in.Has(platformcore.ActionUp):
		g.moveCursor(0, 1)
	case in.Has(platformcore.ActionDown):
		g.moveCursor(0, -1)
	case in.Has(platformcore.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(platformcore.ActionRight):
		g.moveCursor(1, 0)
	}
}

func (g *Game) moveCursor(dx, dy int) {
	w, h := g.board.Width(), g.board.Height()
	p := g.cursor
	for range max(w, h) {
		p = core.P(platformcore.Wrap(p.X+dx, w), platformcore.Wrap(p.Y+dy, h))
		if g.board.Playable(p) {
			g.cursor = p
			return
		}
	}
}

// swapDirections maps the swap actions to hex directions.
var swapDirections = map[platformcore.Action]core.Direction{
	platformcore.ActionSwapUp:        core.DirUp,
	platformcore.ActionSwapDown:      core.DirDown,
	platformcore.ActionSwapLeftUp:    core.DirLeftUp,
	platformcore.ActionSwapLeftDown:  core.DirLeftDown,
	platformcore.ActionSwapRightUp:   core.DirRightUp,
	platformcore.ActionSwapRightDown: core.DirRightDown,
}

// handleSwap requests at most one swap per tick.
func (g *Game) handleSwap(in platformcore.InputFrame) {
	if g.movesLeft == 0 {
		return
	}
	for _, a := range platformcore.SwapActions() {
		if !in.Has(a) {
			continue
		}
		if g.ctrl.RequestSwap(g.cursor, swapDirections[a]) {
			if g.movesLeft > 0 {
				g.movesLeft--
			}
			g.hintTicks = 0
			g.ship.Hit(g.cfg.Gameplay.IncomingDamage)
		}
		return
	}
}

// requestHint shows a playable swap for a price.
func (g *Game) requestHint() {
	if !g.ctrl.AcceptsInput() {
		return
	}
	mv, ok := g.ctrl.FindMove()
	if !ok {
		return
	}
	g.hint = mv
	g.hintTicks = g.cfg.Board.HighlightTicks * 3
	g.score = max(0, g.score-g.cfg.Gameplay.HintCost)
	g.cursor = mv.From
	g.say(fmt.Sprintf("Try %s from (%d,%d)", mv.Dir, mv.From.X, mv.From.Y))
}

// scoreTally adds points for a completed pop pass. Deeper chains multiply.
func (g *Game) scoreTally(t core.Tally, chain int) map[string]int {
	g.tallies.Add(t)
	g.score += t.Total() * g.cfg.Gameplay.PointsPerCell * max(1, chain)
	if chain > 1 {
		g.say(fmt.Sprintf("Chain x%d!", chain))
	}

	matched := make(map[string]int, len(t.Counts))
	for _, ct := range t.Types() {
		matched[ct.String()] = t.Count(ct)
	}
	return matched
}

// ensureMove reshuffles a stuck board, or ends the game when reshuffling
// is disabled or cannot find a move.
func (g *Game) ensureMove() {
	if _, ok := g.ctrl.FindMove(); ok {
		return
	}
	if !g.cfg.Board.ReshuffleOnStuck {
		g.end("No moves left")
		return
	}
	for range maxShuffles {
		g.board.Shuffle()
		g.reshuffles++
		if !g.board.Settled() {
			g.logger.Warn("reshuffled board still has runs", "layout", g.layout.ID)
		}
		if _, ok := g.ctrl.FindMove(); ok {
			g.say("No moves, board reshuffled")
			g.logger.Info("board reshuffled", "layout", g.layout.ID, "total", g.reshuffles)
			return
		}
	}
	g.end("No moves left")
}

func (g *Game) checkGameOver() {
	switch {
	case g.ship.Ship().Destroyed():
		g.end("Ship destroyed")
	case g.movesLeft == 0:
		g.end("Out of moves")
	}
}

func (g *Game) end(reason string) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.reason = reason
	stats := g.ctrl.Stats()
	g.logger.Info("game over",
		"layout", g.layout.ID,
		"reason", reason,
		"score", g.score,
		"swaps", stats.Swaps,
		"cascades", stats.Cascades,
		"max_chain", stats.MaxChain,
	)
}

func (g *Game) say(msg string) {
	g.message = msg
	g.msgTicks = messageTicks
}

// checkScreenSize checks that the board, HUD and module panel fit.
func (g *Game) checkScreenSize() {
	w, h := g.minScreenSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Resize follows a terminal resize without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.ctrl != nil {
		g.checkScreenSize()
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Score:     g.score,
		GameOver:  g.gameOver,
		Paused:    g.paused || g.tooSmall,
		MovesLeft: g.movesLeft,
	}
	if g.ctrl != nil {
		st.MaxChain = g.ctrl.Stats().MaxChain
	}
	return st
}

// Controller exposes the engine for headless drivers.
func (g *Game) Controller() *core.Controller {
	return g.ctrl
}

// Ship returns the module registry.
func (g *Game) Ship() *modules.Registry {
	return g.ship
}

// Tallies returns the cells consumed this game, per type.
func (g *Game) Tallies() core.Tally {
	out := core.NewTally()
	out.Add(g.tallies)
	return out
}

// Err returns the error that prevented the game from starting, if any.
func (g *Game) Err() error {
	return g.failed
}
