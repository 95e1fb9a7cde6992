package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adventure-squad/neon-runner/internal/runner"
	"github.com/adventure-squad/neon-runner/internal/storage"
)

const (
	minWidthForSidebar = 80  // narrower terminals get a tab strip
	sidebarWidth       = 20  // hero list column
	maxRuns            = 100 // rows loaded per board
)

// Leaderboard palette, shared with the game's neon colors.
var (
	boardAccent  = lipgloss.Color("199")
	boardMuted   = lipgloss.Color("241")
	boardBorder  = lipgloss.Color("240")
	boardHilight = lipgloss.Color("229")
)

// boardTab is one leaderboard filter. An empty Character ranks everyone.
type boardTab struct {
	Character string
	Title     string
}

// boardTabs returns the overall board followed by one board per hero.
func boardTabs() []boardTab {
	tabs := []boardTab{{Title: "All heroes"}}
	for _, c := range runner.Characters() {
		tabs = append(tabs, boardTab{Character: c.ID, Title: c.Name})
	}
	return tabs
}

// ScoreboardKeyMap defines the key bindings for the leaderboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextHero key.Binding
	PrevHero key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevHero, k.NextHero, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextHero: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next hero")),
		PrevHero: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev hero")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
// It runs standalone (scores command) or embedded in the game, where
// back closes it instead of ending the program.
type ScoreboardModel struct {
	store    *storage.Store
	tabs     []boardTab
	active   int
	runs     []storage.Run
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	embedded bool
	closed   bool // back pressed
	quitting bool
}

// NewScoreboardModel creates a standalone leaderboard.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		tabs:   boardTabs(),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.layout()
	m.reload()
	return m
}

// newEmbeddedScoreboard opens the leaderboard on the given hero's board.
func newEmbeddedScoreboard(store *storage.Store, width, height int, character string) ScoreboardModel {
	m := NewScoreboardModel(store, width, height)
	m.embedded = true
	for i, tab := range m.tabs {
		if tab.Character == character {
			m.show(i)
			break
		}
	}
	return m
}

// wide reports whether the hero list fits beside the table.
func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// layout sizes the table for the current window.
func (m *ScoreboardModel) layout() {
	dateWidth := 12
	room := m.width - 6
	if m.wide() {
		room -= sidebarWidth + 4
	}
	if extra := room - 38 - dateWidth; extra > 0 {
		dateWidth += min(extra, 8)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Hero", Width: 9},
			{Title: "Score", Width: 8},
			{Title: "Time", Width: 7},
			{Title: "Played", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(boardBorder).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(boardHilight).
		Background(boardAccent).
		Bold(false)
	t.SetStyles(styles)

	m.table = t
	m.help.Width = m.width
	m.fillRows()
}

// show switches to tab i and loads its runs.
func (m *ScoreboardModel) show(i int) {
	n := len(m.tabs)
	m.active = (i%n + n) % n
	m.reload()
}

// reload fetches the active board. Errors leave it empty.
func (m *ScoreboardModel) reload() {
	m.runs = nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(m.tabs[m.active].Character, maxRuns); err == nil {
			m.runs = runs
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			heroName(r.Character),
			strconv.Itoa(r.Score),
			formatDuration(r.Duration()),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// heroName maps a stored character ID to its display name.
func heroName(id string) string {
	if c, ok := runner.CharacterByID(id); ok {
		return c.Name
	}
	return id
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.closed = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextHero):
			m.show(m.active + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevHero):
			m.show(m.active - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.closed && !m.embedded) {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(boardAccent).
		Render("HIGH SCORES - " + m.tabs[m.active].Title)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(boardBorder).
		Padding(0, 1)

	var body string
	if m.wide() {
		side := box.Width(sidebarWidth).Render(m.heroList())
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", box.Render(m.boardContent()))
	} else {
		body = centerText(m.tabStrip(), m.width) + "\n\n" +
			centerText(box.Render(m.boardContent()), m.width)
	}

	footer := lipgloss.NewStyle().Foreground(boardMuted).Render(m.help.View(m.keys))
	return centerText(title, m.width) + "\n\n" + body + "\n" + m.summary() + "\n" + footer
}

// heroList renders the sidebar of boards.
func (m ScoreboardModel) heroList() string {
	lines := []string{"Heroes", strings.Repeat("─", sidebarWidth-4)}
	for i, tab := range m.tabs {
		if i == m.active {
			lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(boardHilight).Render("> "+tab.Title))
			continue
		}
		lines = append(lines, "  "+tab.Title)
	}
	return strings.Join(lines, "\n")
}

// tabStrip renders the boards in one line, or just the active one with
// arrows when they do not fit.
func (m ScoreboardModel) tabStrip() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(boardHilight).Background(boardAccent).Padding(0, 1)
	idle := lipgloss.NewStyle().Foreground(boardMuted).Padding(0, 1)

	parts := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.active {
			parts[i] = active.Render(tab.Title)
		} else {
			parts[i] = idle.Render(tab.Title)
		}
	}
	strip := strings.Join(parts, " ")
	if lipgloss.Width(strip) > m.width-4 {
		return "< " + m.tabs[m.active].Title + " >"
	}
	return strip
}

// boardContent renders the table or a placeholder.
func (m ScoreboardModel) boardContent() string {
	if len(m.runs) > 0 {
		return m.table.View()
	}
	msg := "No runs recorded yet.\nGo set a high score!"
	if m.store == nil {
		msg = "Leaderboard unavailable.\nNo runs database is open."
	}
	return lipgloss.NewStyle().Foreground(boardMuted).Italic(true).Padding(2, 4).Render(msg)
}

// summary renders the best score and run count of the active board.
func (m ScoreboardModel) summary() string {
	if len(m.runs) == 0 {
		return ""
	}
	best := m.runs[0]
	line := fmt.Sprintf("Best %d by %s  ·  %d runs shown", best.Score, heroName(best.Character), len(m.runs))
	return lipgloss.NewStyle().Foreground(boardMuted).Render(line)
}

// IsGoingBack returns true if user wants to leave the leaderboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.closed
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// Runs returns the runs shown on the active board.
func (m ScoreboardModel) Runs() []storage.Run {
	return m.runs
}

// RunScoreboard runs the leaderboard as a standalone program.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}
