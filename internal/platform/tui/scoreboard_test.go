package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adventure-squad/neon-runner/internal/storage"
)

func seedRuns(t *testing.T, store *storage.Store) {
	t.Helper()
	for _, r := range []storage.Run{
		{Character: "jack", Score: 120, DurationMS: 61_000},
		{Character: "jack", Score: 80},
		{Character: "peter", Score: 300},
		{Character: "charlie", Score: 40},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBoardTabs(t *testing.T) {
	tabs := boardTabs()
	if len(tabs) != 4 {
		t.Fatalf("expected overall board plus 3 heroes, got %d", len(tabs))
	}
	if tabs[0].Character != "" || tabs[1].Character != "jack" || tabs[3].Character != "charlie" {
		t.Errorf("tabs = %+v", tabs)
	}
}

func TestScoreboardTabsCycle(t *testing.T) {
	store := openStore(t)
	seedRuns(t, store)
	m := NewScoreboardModel(store, 100, 30)

	if len(m.Runs()) != 4 || m.Runs()[0].Score != 300 {
		t.Fatalf("overall board = %+v", m.Runs())
	}

	next := func(msg tea.KeyMsg) {
		t.Helper()
		updated, _ := m.Update(msg)
		m = updated.(ScoreboardModel)
	}

	next(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Runs(); len(got) != 2 || got[0].Score != 120 {
		t.Errorf("jack board = %+v", got)
	}

	next(tea.KeyMsg{Type: tea.KeyShiftTab})
	next(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tabs[m.active].Character != "charlie" {
		t.Errorf("prev from overall should wrap to charlie, got %q", m.tabs[m.active].Character)
	}
	if len(m.Runs()) != 1 {
		t.Errorf("charlie board has %d runs", len(m.Runs()))
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	standalone := NewScoreboardModel(nil, 100, 30)
	updated, cmd := standalone.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !updated.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("standalone back should end the program")
	}

	embedded := newEmbeddedScoreboard(nil, 100, 30, "peter")
	if embedded.tabs[embedded.active].Character != "peter" {
		t.Errorf("embedded board should open on peter")
	}
	updated, cmd = embedded.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !updated.(ScoreboardModel).IsGoingBack() || cmd != nil {
		t.Error("embedded back should close without quitting")
	}

	updated, cmd = embedded.Update(runeKey('q'))
	if !updated.(ScoreboardModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestScoreboardView(t *testing.T) {
	store := openStore(t)
	seedRuns(t, store)

	wide := NewScoreboardModel(store, 100, 30).View()
	for _, want := range []string{"HIGH SCORES - All heroes", "Heroes", "Peter", "1:01", "Best 300 by Peter"} {
		if !strings.Contains(wide, want) {
			t.Errorf("wide view missing %q", want)
		}
	}

	narrow := NewScoreboardModel(store, 60, 30).View()
	if strings.Contains(narrow, "Heroes\n") {
		t.Error("narrow view should not draw the sidebar")
	}

	empty := NewScoreboardModel(nil, 100, 30).View()
	if !strings.Contains(empty, "Leaderboard unavailable") {
		t.Error("missing placeholder without a store")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{61 * time.Second, "1:01"},
		{10*time.Minute + 500*time.Millisecond, "10:01"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}
