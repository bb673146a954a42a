package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexfleet/internal/registry"
	"github.com/vovakirdan/hexfleet/internal/storage"
)

const (
	maxScores      = 100 // Scores loaded per board
	cargoWidth     = 38  // Matched-cells panel width
	minWidthSplit  = 90  // Narrower terminals stack the cargo panel under the table
	cargoBarLength = 12
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevBoard, k.NextBoard, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.PrevBoard, k.NextBoard}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up", "older"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down", "newer"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("right", "l", "d", "tab"),
			key.WithHelp("right/tab", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("left", "h", "a", "shift+tab"),
			key.WithHelp("left", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// boardRecord is everything stored for one board.
type boardRecord struct {
	scores  []storage.ScoreEntry
	tallies []storage.TallyEntry
	stats   *storage.GameStats
}

// loadBoardRecord reads a board's history. A nil store yields an empty record.
func loadBoardRecord(store *storage.Store, boardID string) boardRecord {
	var rec boardRecord
	if store == nil {
		return rec
	}
	if scores, err := store.TopScores(boardID, maxScores); err == nil {
		rec.scores = scores
	}
	if tallies, err := store.Tallies(boardID); err == nil {
		rec.tallies = tallies
	}
	if stats, err := store.GetGameStats(boardID); err == nil && stats.GamesCount > 0 {
		rec.stats = stats
	}
	return rec
}

// ScoreboardModel pages through the boards, showing each board's best
// games with their longest chain and the cells matched on it so far.
type ScoreboardModel struct {
	boards    []registry.GameInfo
	current   int
	store     *storage.Store
	record    boardRecord
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards: registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.showBoard(0)
	return m
}

// split reports whether the cargo panel fits beside the table.
func (m ScoreboardModel) split() bool {
	return m.width >= minWidthSplit
}

func (m ScoreboardModel) newTable() table.Model {
	dateWidth := 12
	if m.split() {
		dateWidth = min(max(m.width-cargoWidth-40, 12), 20)
	}
	rows := m.height - 10
	if !m.split() {
		rows -= len(m.record.tallies) + 3
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Chain", Width: 6},
			{Title: "Played", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(rows, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// showBoard switches to board i (wrapping) and reloads its record.
func (m *ScoreboardModel) showBoard(i int) {
	if len(m.boards) == 0 {
		m.record = boardRecord{}
		return
	}
	m.current = (i%len(m.boards) + len(m.boards)) % len(m.boards)
	m.record = loadBoardRecord(m.store, m.boards[m.current].ID)

	best := 0
	if m.record.stats != nil {
		best = m.record.stats.BestChain
	}
	rows := make([]table.Row, len(m.record.scores))
	for i, s := range m.record.scores {
		chain := fmt.Sprintf("x%d", s.MaxChain)
		if s.MaxChain > 1 && s.MaxChain == best {
			chain += "*"
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(s.Score),
			chain,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table = m.newTable()
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextBoard):
			m.showBoard(m.current + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevBoard):
			m.showBoard(m.current - 1)
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.showBoard(m.current)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.boardSelector(), m.width))
	b.WriteString("\n\n")

	scores := frame.Render(m.scoresPanel())
	cargo := frame.Width(cargoWidth).Render(m.cargoPanel())
	body := lipgloss.JoinVertical(lipgloss.Center, scores, cargo)
	if m.split() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, scores, "  ", cargo)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(centerText(m.help.View(m.keys), m.width)))
	return b.String()
}

// boardSelector renders "< Title (2/4) >" for the current board.
func (m ScoreboardModel) boardSelector() string {
	if len(m.boards) == 0 {
		return "no boards"
	}
	return fmt.Sprintf("< %s (%d/%d) >", m.boards[m.current].Title, m.current+1, len(m.boards))
}

func (m ScoreboardModel) scoresPanel() string {
	if len(m.record.scores) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No scores recorded yet.\nPlay this board to set one!")
	}
	return m.table.View()
}

// cargoPanel renders the board's lifetime stats and one bar per matched
// cell type, scaled to the most matched type.
func (m ScoreboardModel) cargoPanel() string {
	st := m.record.stats
	if st == nil {
		return "Matched cells\n\nnothing yet"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Games %d  Avg %.0f\n", st.GamesCount, st.AvgScore)
	fmt.Fprintf(&b, "Best chain x%d\n", st.BestChain)
	fmt.Fprintf(&b, "Last %s\n\n", st.LastPlayed.Format("Jan 02 15:04"))
	b.WriteString("Matched cells\n")

	top := 0
	for _, t := range m.record.tallies {
		top = max(top, t.Count)
	}
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	for _, t := range m.record.tallies {
		n := cargoBarLength
		if top > 0 {
			n = max(1, t.Count*cargoBarLength/top)
		}
		fmt.Fprintf(&b, "%-16s %s %d\n", t.CellType, barStyle.Render(strings.Repeat("=", n)), t.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
