package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmatthews/ladders/internal/board"
	"github.com/lmatthews/ladders/internal/game"
)

func tick(t *testing.T, m WatchModel) WatchModel {
	t.Helper()
	updated, _ := m.Update(TickMsg(time.Now()))
	next, ok := updated.(WatchModel)
	if !ok {
		t.Fatalf("Update returned %T, want WatchModel", updated)
	}
	return next
}

func keyPress(t *testing.T, m WatchModel, k string) WatchModel {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	updated, _ := m.Update(msg)
	next, ok := updated.(WatchModel)
	if !ok {
		t.Fatalf("Update returned %T, want WatchModel", updated)
	}
	return next
}

func TestWatchPlaysShortestGame(t *testing.T) {
	m := NewWatchModel(WatchConfig{
		Board: board.Classic(),
		Die:   game.NewScriptedDie(4, 6, 6, 2, 5, 5, 6),
		Rate:  4,
	})

	for i := 0; i < 7; i++ {
		if m.Won() {
			t.Fatalf("won after %d rolls, want 7", i)
		}
		m = tick(t, m)
	}

	if !m.Won() {
		t.Fatal("game not won after 7 scripted rolls")
	}
	if m.Rolls() != 7 {
		t.Errorf("Rolls() = %d, want 7", m.Rolls())
	}
	if m.Position() != 100 {
		t.Errorf("Position() = %d, want 100", m.Position())
	}

	// Further ticks after the win must not advance anything.
	m = tick(t, m)
	if m.Rolls() != 7 {
		t.Errorf("rolls advanced after win: %d", m.Rolls())
	}
}

func TestWatchPauseStopsRolling(t *testing.T) {
	m := NewWatchModel(WatchConfig{
		Board: board.Classic(),
		Die:   game.NewScriptedDie(6),
		Rate:  4,
	})

	m = tick(t, m)
	if m.Rolls() != 1 {
		t.Fatalf("Rolls() = %d, want 1", m.Rolls())
	}

	m = keyPress(t, m, " ")
	m = tick(t, m)
	m = tick(t, m)
	if m.Rolls() != 1 {
		t.Errorf("rolls advanced while paused: %d", m.Rolls())
	}

	m = keyPress(t, m, " ")
	m = tick(t, m)
	if m.Rolls() != 2 {
		t.Errorf("Rolls() = %d after unpause, want 2", m.Rolls())
	}
}

func TestWatchRestart(t *testing.T) {
	m := NewWatchModel(WatchConfig{
		Board: board.Classic(),
		Die:   game.NewScriptedDie(6),
		Rate:  4,
	})

	m = tick(t, m)
	m = tick(t, m)
	if m.Position() != 12 {
		t.Fatalf("Position() = %d, want 12", m.Position())
	}

	m = keyPress(t, m, "r")
	if m.Position() != 0 || m.Rolls() != 0 {
		t.Errorf("restart did not reset state: position=%d rolls=%d", m.Position(), m.Rolls())
	}
}

func TestWatchOvershootTracked(t *testing.T) {
	// Tiny board: goal 10, no jumps. From 8, a six overshoots.
	b, err := board.New(10, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	m := NewWatchModel(WatchConfig{
		Board: b,
		Die:   game.NewScriptedDie(4, 4, 6),
		Rate:  4,
	})

	m = tick(t, m) // 4
	m = tick(t, m) // 8
	m = tick(t, m) // 6 overshoots
	if m.Position() != 8 {
		t.Errorf("Position() = %d, want 8 after overshoot", m.Position())
	}
	if !m.wasted {
		t.Error("overshoot not flagged")
	}
	if m.Won() {
		t.Error("game incorrectly won")
	}
}
