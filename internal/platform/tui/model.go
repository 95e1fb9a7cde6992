package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/adventure-squad/neon-runner/internal/config"
	"github.com/adventure-squad/neon-runner/internal/core"
	"github.com/adventure-squad/neon-runner/internal/runner"
	"github.com/adventure-squad/neon-runner/internal/sprites"
	"github.com/adventure-squad/neon-runner/internal/storage"
)

// Options configures a game model.
type Options struct {
	Runner  config.RunnerConfig
	Sprites *sprites.Sheet // nil draws solid blocks
	Cues    runner.Cues    // nil plays nothing
	Store   *storage.Store // nil disables the leaderboard
	Logger  *log.Logger    // nil discards
	Runtime core.RuntimeConfig

	// ScreenshotDir defaults to ~/.neonrunner/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model hosting one Neon Runner game.
type Model struct {
	game      *runner.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	board     *ScoreboardModel // non-nil while the leaderboard is open
	shotDir   string
	now       func() time.Time

	ticking  bool      // a tick command is in flight
	runStart time.Time // when the current session began
	best     int       // best score of the selected hero
	lastRun  *storage.Run
	quitting bool
}

// NewModel creates a new Bubble Tea model for a runner game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := runner.New(
		runner.WithConfig(opts.Runner),
		runner.WithSeed(cfg.Seed),
		runner.WithCues(opts.Cues),
		runner.WithSprites(opts.Sprites),
	)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:     opts.Store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		shotDir:   opts.ScreenshotDir,
		now:       time.Now,
	}
}

// Init waits for the player to pick a hero; ticks start with the first run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.board != nil {
		return m.updateBoard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if IsTap(msg) {
			return m.apply(core.InputOf(core.ActionActivate))
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Shot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil

	case key.Matches(msg, keys.Scores):
		if m.game.Mode() != runner.ModePlaying {
			board := newEmbeddedScoreboard(m.store, m.config.ScreenW, m.config.ScreenH, m.game.Character().ID)
			m.board = &board
		}
		return m, nil
	}

	if i, ok := m.keyMapper.HeroDigit(msg); ok {
		if err := m.game.SelectCharacter(i); err == nil {
			m.refreshBest()
		}
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}
	if frame.Empty() {
		return m, nil
	}
	return m.apply(frame)
}

// apply feeds input to the game and starts ticking when a run begins.
func (m Model) apply(in core.InputFrame) (tea.Model, tea.Cmd) {
	before := m.game.Mode()
	now := m.now()
	m.game.Input(in, now)
	after := m.game.Mode()
	if after != before {
		m.logger.Debug("mode changed", "from", before, "to", after)
	}

	if after == runner.ModeStart && before != runner.ModeStart {
		m.refreshBest()
	}
	if after == runner.ModePlaying && before != runner.ModePlaying {
		m.runStart = now
		m.lastRun = nil
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(m.config.TickRate)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state;
// only the raster changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	// Last row is the help bar.
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.now())
	if result.Continue {
		return m, tickCmd(m.config.TickRate)
	}

	m.ticking = false
	if m.game.Mode() == runner.ModeGameOver && m.lastRun == nil {
		m.finishRun(result.Snapshot)
	}
	return m, nil
}

// finishRun records a finished session. Zero-score runs are not saved.
func (m *Model) finishRun(snap core.Snapshot) {
	run := storage.Run{
		Character:  snap.Character,
		Score:      snap.Score,
		Frames:     snap.Frame,
		DurationMS: m.now().Sub(m.runStart).Milliseconds(),
	}
	m.lastRun = &run
	m.logger.Info("run finished", "hero", run.Character, "score", run.Score, "frames", run.Frames)

	if m.store == nil || run.Score <= 0 {
		return
	}
	saved, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.lastRun = &saved
	if saved.Score > m.best {
		m.best = saved.Score
	}
}

// refreshBest loads the selected hero's best score.
func (m *Model) refreshBest() {
	m.best = 0
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.Character().ID)
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	m.best = best
}

// updateBoard routes messages to the open leaderboard.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		next, _ := m.handleResize(wsm)
		m = next.(Model)
	}

	updated, cmd := m.board.Update(msg)
	board := updated.(ScoreboardModel)

	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}
	m.board = &board
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() error {
	m.draw()

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".neonrunner", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// Generate filename with timestamp
	timestamp := m.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	return os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// draw renders the world and the overlay for the current mode.
func (m *Model) draw() {
	now := m.now()
	m.game.Render(m.screen, now)

	snap := m.game.Snapshot()
	hero := m.game.Character()

	switch m.game.Mode() {
	case runner.ModeCharacterSelect:
		drawCharacterMenu(m.screen, m.game.Characters(), m.game.Cursor())
	case runner.ModeStart:
		drawReady(m.screen, hero)
	case runner.ModePlaying:
		drawHUD(m.screen, snap, hero, m.best)
	case runner.ModeGameOver:
		drawHUD(m.screen, snap, hero, m.best)
		drawGameOver(m.screen, snap.Score, m.best)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.draw()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Game exposes the hosted game.
func (m Model) Game() *runner.Game {
	return m.game
}

// LastRun returns the most recently finished run, or nil.
func (m Model) LastRun() *storage.Run {
	return m.lastRun
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks count as taps
	)

	_, err := p.Run()
	return err
}
