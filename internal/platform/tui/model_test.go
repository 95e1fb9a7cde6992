package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adventure-squad/neon-runner/internal/config"
	"github.com/adventure-squad/neon-runner/internal/core"
	"github.com/adventure-squad/neon-runner/internal/runner"
	"github.com/adventure-squad/neon-runner/internal/storage"
)

var space = tea.KeyMsg{Type: tea.KeySpace}

// testClock is a manually advanced clock shared by a model and its copies.
type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T, cfg config.RunnerConfig, store *storage.Store) (Model, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	m := NewModel(Options{
		Runner:        cfg,
		Store:         store,
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7},
		ScreenshotDir: t.TempDir(),
	})
	m.now = clock.now
	return m, clock
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

// fragileConfig ends a run on the first jump: one heart and a ceiling
// just above the player's head.
func fragileConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Health.MaxHearts = 1
	cfg.World.CeilingY = cfg.World.GroundY - cfg.Player.Height - 5
	return cfg
}

func TestModelStartsOnCharacterSelect(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultRunnerConfig(), nil)

	if cmd := m.Init(); cmd != nil {
		t.Error("no ticks before a run starts")
	}
	if m.Game().Mode() != runner.ModeCharacterSelect {
		t.Fatalf("mode = %v", m.Game().Mode())
	}
	if m.screen.Height() != 24 {
		t.Errorf("screen height = %d, one row is kept for help", m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "Choose your hero") {
		t.Error("character menu not drawn")
	}
}

func TestModelFlowStartsTicking(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultRunnerConfig(), nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Game().Cursor() != 1 {
		t.Fatalf("cursor = %d, expected 1", m.Game().Cursor())
	}

	m, cmd := send(t, m, space)
	if m.Game().Mode() != runner.ModeStart || cmd != nil {
		t.Fatalf("after confirm: mode=%v cmd=%v", m.Game().Mode(), cmd != nil)
	}
	if m.Game().Character().ID != "peter" {
		t.Errorf("hero = %s, expected peter", m.Game().Character().ID)
	}

	m, cmd = send(t, m, space)
	if m.Game().Mode() != runner.ModePlaying {
		t.Fatalf("mode = %v, expected PLAYING", m.Game().Mode())
	}
	if cmd == nil || !m.ticking {
		t.Fatal("starting a run must schedule a tick")
	}

	// A jump while playing must not schedule a second tick loop.
	_, cmd = send(t, m, space)
	if cmd != nil {
		t.Error("input during a run should not add ticks")
	}
}

func TestModelDigitPicksHero(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultRunnerConfig(), nil)

	m, _ = send(t, m, runeKey('3'))
	if m.Game().Mode() != runner.ModeStart || m.Game().Character().ID != "charlie" {
		t.Fatalf("mode=%v hero=%s", m.Game().Mode(), m.Game().Character().ID)
	}

	// Digits are ignored outside the picker.
	m, _ = send(t, m, runeKey('1'))
	if m.Game().Character().ID != "charlie" {
		t.Error("digit changed hero outside the picker")
	}

	m, _ = send(t, m, runeKey('c'))
	if m.Game().Mode() != runner.ModeCharacterSelect {
		t.Errorf("back should return to the picker, got %v", m.Game().Mode())
	}
}

func TestModelMouseTap(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultRunnerConfig(), nil)
	tap := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	m, _ = send(t, m, tap)
	m, cmd := send(t, m, tap)
	if m.Game().Mode() != runner.ModePlaying || cmd == nil {
		t.Fatalf("two taps should start a run, mode=%v", m.Game().Mode())
	}

	m, _ = send(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Game().Snapshot().Frame != 0 {
		t.Error("release must not touch the game")
	}
}

func TestModelTickStopsAtGameOver(t *testing.T) {
	m, clock := newTestModel(t, fragileConfig(), nil)

	m, _ = send(t, m, space)
	m, _ = send(t, m, space)
	m, _ = send(t, m, space) // jump into the ceiling

	clock.advance(16 * time.Millisecond)
	m, cmd := send(t, m, TickMsg(clock.now()))
	if m.Game().Mode() != runner.ModeGameOver {
		t.Fatalf("mode = %v, expected GAME_OVER", m.Game().Mode())
	}
	if cmd != nil || m.ticking {
		t.Error("ticking must stop once the run ends")
	}
	if m.LastRun() == nil || m.LastRun().Score != 0 {
		t.Fatalf("last run = %+v", m.LastRun())
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over panel not drawn")
	}

	// Restart resumes ticking.
	m, cmd = send(t, m, space)
	if m.Game().Mode() != runner.ModePlaying || cmd == nil {
		t.Errorf("restart: mode=%v tick=%v", m.Game().Mode(), cmd != nil)
	}
	if m.LastRun() != nil {
		t.Error("restart should clear the last run")
	}
}

func TestFinishRunSavesScore(t *testing.T) {
	store := openStore(t)
	m, clock := newTestModel(t, config.DefaultRunnerConfig(), store)

	m.runStart = clock.now()
	clock.advance(12 * time.Second)
	m.finishRun(core.Snapshot{Character: "jack", Score: 120, Frame: 720})

	runs, err := store.TopRuns("jack", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Score != 120 || runs[0].Frames != 720 {
		t.Fatalf("saved runs = %+v", runs)
	}
	if runs[0].Duration() != 12*time.Second {
		t.Errorf("duration = %v, expected 12s", runs[0].Duration())
	}
	if m.best != 120 {
		t.Errorf("best = %d, expected 120", m.best)
	}
	if m.LastRun().RunID == "" {
		t.Error("last run should carry its saved ID")
	}

	// Zero scores are not recorded.
	m.finishRun(core.Snapshot{Character: "jack", Score: 0})
	if runs, _ := store.TopRuns("", 10); len(runs) != 1 {
		t.Errorf("zero-score run was saved, have %d runs", len(runs))
	}
}

func TestModelLoadsBestOnSelect(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.Run{Character: "peter", Score: 300})
	store.SaveRun(storage.Run{Character: "jack", Score: 900})

	m, _ := newTestModel(t, config.DefaultRunnerConfig(), store)
	m, _ = send(t, m, runeKey('2'))
	if m.best != 300 {
		t.Errorf("best = %d, expected peter's 300", m.best)
	}
}

func TestModelScoreboardOverlay(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.Run{Character: "jack", Score: 450})

	m, _ := newTestModel(t, config.DefaultRunnerConfig(), store)
	m, _ = send(t, m, runeKey('1'))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board == nil {
		t.Fatal("tab should open the leaderboard")
	}
	if got := m.board.Runs(); len(got) != 1 || got[0].Score != 450 {
		t.Errorf("board should open on jack's runs, got %+v", got)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("leaderboard not drawn")
	}

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.board != nil {
		t.Fatal("esc should close the leaderboard")
	}
	if cmd != nil {
		t.Error("closing the leaderboard must not quit")
	}
	if m.Game().Mode() != runner.ModeStart {
		t.Errorf("game mode changed to %v", m.Game().Mode())
	}
}

func TestModelScoreboardBlockedWhilePlaying(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultRunnerConfig(), nil)
	m, _ = send(t, m, space)
	m, _ = send(t, m, space)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board != nil {
		t.Error("leaderboard must not open during a run")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultRunnerConfig(), nil)

	m, cmd := send(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultRunnerConfig(), nil)
	m, _ = send(t, m, space)
	m, _ = send(t, m, space)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if m.Game().Mode() != runner.ModePlaying {
		t.Error("resize must not reset the run")
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultRunnerConfig(), nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || !strings.HasPrefix(files[0].Name(), "neon-runner_") {
		t.Fatalf("screenshots = %v", files)
	}
	data, err := os.ReadFile(filepath.Join(m.shotDir, files[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "N E O N") {
		t.Error("screenshot should hold the picker overlay")
	}
}
