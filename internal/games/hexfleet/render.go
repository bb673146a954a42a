package hexfleet

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hexfleet/internal/config"
	platformcore "github.com/vovakirdan/hexfleet/internal/core"
	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
)

const (
	colWidth  = 4 // Terminal columns per hex column
	rowHeight = 2 // Terminal rows per hex row; odd columns sit one row lower
	hudHeight = 4
	footerH   = 3
	panelGap  = 3
	panelW    = 30
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.failed != nil {
		g.renderOverlay(dst, "Cannot start "+g.layout.ID, g.failed.Error())
		return
	}
	if g.tooSmall {
		w, h := g.minScreenSize()
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCenteredColor(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", w, h), platformcore.ColorGray)
		return
	}

	boardX, boardY := g.boardOrigin()
	g.renderHUD(dst)
	g.renderBoard(dst, boardX, boardY)
	g.renderPanel(dst, boardX+g.boardWidth()+panelGap, boardY)
	g.renderFooter(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, g.reason, fmt.Sprintf("Score %d  -  R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "P to continue")
	}
}

func (g *Game) boardWidth() int {
	return g.layout.Width*colWidth + 1
}

func (g *Game) boardHeight() int {
	return g.layout.Height*rowHeight + 1
}

func (g *Game) minScreenSize() (w, h int) {
	return g.boardWidth() + panelGap + panelW + 2, hudHeight + g.boardHeight() + footerH
}

// boardOrigin centers the board and module panel as one block.
func (g *Game) boardOrigin() (x, y int) {
	total := g.boardWidth() + panelGap + panelW
	return platformcore.Max(0, (g.screenW-total)/2), hudHeight
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	moves := "inf"
	if g.movesLeft >= 0 {
		moves = fmt.Sprint(g.movesLeft)
	}
	title := strings.ToUpper(g.Title())
	if m := g.Mode(); m != config.ModeClassic {
		title += " " + strings.ToUpper(string(m))
	}
	hud := fmt.Sprintf(" %s | Score: %d | Moves: %s", title, g.score, moves)
	if chain := g.ctrl.Chain(); chain > 1 && !g.ctrl.AcceptsInput() {
		hud += fmt.Sprintf(" | Chain x%d", chain)
	}
	if g.cfg.Board.ShowCoordinates {
		hud += fmt.Sprintf(" | (%d,%d)", g.cursor.X, g.cursor.Y)
	}
	dst.DrawTextColor(0, 0, hud, platformcore.ColorCyan)

	s := g.ship.Ship()
	dst.DrawTextColor(1, 1, fmt.Sprintf("Hull %3d/%d", s.Hull, s.MaxHull), healthColor(s.Hull, s.MaxHull))
	dst.DrawTextColor(17, 1, fmt.Sprintf("Shield %2d/%d", s.Shield, s.MaxShield), platformcore.ColorBrightCyan)
	dst.DrawTextColor(33, 1, fmt.Sprintf("Rockets %d  Dmg %d  Dist %d", s.Rockets, s.Damage, s.Distance), platformcore.ColorGray)

	for x := range dst.Width() {
		dst.SetWithColor(x, 2, '─', platformcore.ColorGray)
	}
}

// cellScreenPos maps a board slot to its terminal position.
func (g *Game) cellScreenPos(p core.Pos, boardX, boardY int) (x, y int) {
	spacing := g.board.Spacing()
	pt, ok := g.flash.Target(p)
	if !ok {
		pt = core.PixelLocation(p, spacing)
	}
	top := float64(g.board.Height()) - 0.5
	col := int(pt.X/spacing + 0.5)
	row := int((top-pt.Y/spacing)*rowHeight + 0.5)
	return boardX + col*colWidth, boardY + row
}

func (g *Game) renderBoard(dst *platformcore.Screen, boardX, boardY int) {
	popping := g.ctrl.State() == core.StatePopping
	hintOn := g.hintTicks > 0

	for _, p := range g.board.Positions() {
		x, y := g.cellScreenPos(p, boardX, boardY)
		cell := g.board.Cell(p)
		if cell.Type == core.None {
			continue
		}

		sc := platformcore.ScreenCell{
			Rune:  typeRune(cell.Type),
			Color: typeColor(cell.Type),
			Bold:  g.flash.Active(p),
		}
		if popping && cell.Matched {
			sc.Rune = '✸'
			sc.Bold = true
		}
		dst.SetCell(x+1, y, sc)

		switch {
		case p == g.cursor:
			dst.SetWithColor(x, y, '[', platformcore.ColorBrightWhite)
			dst.SetWithColor(x+2, y, ']', platformcore.ColorBrightWhite)
		case hintOn && (p == g.hint.From || p == g.hint.To()):
			dst.SetWithColor(x, y, '(', platformcore.ColorBrightYellow)
			dst.SetWithColor(x+2, y, ')', platformcore.ColorBrightYellow)
		}
	}
}

func (g *Game) renderPanel(dst *platformcore.Screen, x, y int) {
	dst.DrawTextColor(x, y, "MODULES", platformcore.ColorBrightWhite)
	row := y + 2
	for _, st := range g.ship.Statuses() {
		color := typeColor(st.PoweredBy)
		dst.DrawTextColor(x, row, fmt.Sprintf("%c %-12s x%d", typeRune(st.PoweredBy), st.Name, st.Activations), color)
		dst.DrawTextColor(x+2, row+1, chargeBar(st.Fraction(), 16), color)
		dst.DrawTextColor(x+19, row+1, fmt.Sprintf("%d/%d", st.Charge, st.Threshold), platformcore.ColorGray)
		row += 2
	}

	// The tally list is dropped first on short screens.
	last := dst.Height() - footerH
	row++
	if row >= last {
		return
	}
	dst.DrawTextColor(x, row, "MATCHED", platformcore.ColorBrightWhite)
	row++
	for _, ct := range core.ConcreteTypes() {
		if row >= last {
			return
		}
		if n := g.tallies.Count(ct); n > 0 {
			dst.DrawTextColor(x, row, fmt.Sprintf("%c %-16s %4d", typeRune(ct), ct, n), typeColor(ct))
			row++
		}
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	h := dst.Height()
	for x := range dst.Width() {
		dst.SetWithColor(x, h-3, '─', platformcore.ColorGray)
	}
	if g.message != "" {
		dst.DrawTextColor(1, h-2, g.message, platformcore.ColorBrightYellow)
	}
	dst.DrawTextColor(1, h-1, "arrows move  u/i/o j/k/l swap  h hint  p pause  q quit", platformcore.ColorGray)
}

// renderOverlay draws a centered two-line box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := platformcore.Max(len([]rune(line1)), len([]rune(line2))) + 4
	box := platformcore.NewRect(0, 0, dst.Width(), dst.Height()).CenteredIn(w, 5)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorBrightWhite)
	dst.DrawTextCenteredColor(box.Y+1, line1, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}

func typeRune(t core.CellType) rune {
	switch t {
	case core.Wild:
		return '*'
	case core.LaserCannon:
		return 'L'
	case core.RocketLauncher:
		return 'R'
	case core.ShieldGenerator:
		return 'S'
	case core.RepairDroids:
		return 'D'
	case core.EngineDrive:
		return 'E'
	default:
		return ' '
	}
}

func typeColor(t core.CellType) platformcore.Color {
	switch t {
	case core.Wild:
		return platformcore.ColorBrightMagenta
	case core.LaserCannon:
		return platformcore.ColorBrightRed
	case core.RocketLauncher:
		return platformcore.ColorOrange
	case core.ShieldGenerator:
		return platformcore.ColorBrightCyan
	case core.RepairDroids:
		return platformcore.ColorBrightGreen
	case core.EngineDrive:
		return platformcore.ColorBrightYellow
	default:
		return platformcore.ColorDefault
	}
}

func healthColor(v, full int) platformcore.Color {
	switch {
	case v*3 <= full:
		return platformcore.ColorBrightRed
	case v*3 <= full*2:
		return platformcore.ColorYellow
	default:
		return platformcore.ColorBrightGreen
	}
}

func chargeBar(frac float64, width int) string {
	filled := platformcore.Clamp(int(frac*float64(width)), 0, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
