package sim

import (
	"testing"

	"github.com/lmatthews/ladders/internal/board"
	"github.com/lmatthews/ladders/internal/game"
)

func TestRunReproducibleBySeed(t *testing.T) {
	b := board.Classic()

	r1 := New(b, game.NewSeededDie(12345)).Run(100)
	r2 := New(b, game.NewSeededDie(12345)).Run(100)

	if r1 != r2 {
		t.Errorf("same seed produced different final games: %d vs %d", r1, r2)
	}
	if r1 < 1 {
		t.Errorf("Run() = %d, want >= 1", r1)
	}
}

func TestRunSingleGame(t *testing.T) {
	b := board.Classic()

	// Trial count 1: the result is just that game's roll count.
	die := game.NewSeededDie(42)
	got := New(b, die).Run(1)
	want := game.Play(game.NewSeededDie(42), b)

	if got != want {
		t.Errorf("Run(1) = %d, want %d", got, want)
	}
}

func TestRunReturnsLastGame(t *testing.T) {
	b := board.Classic()
	seed := int64(9001)

	// Replaying the same die sequence game by game, Run(n) must equal the
	// n-th game's roll count.
	want := 0
	replay := game.NewSeededDie(seed)
	for i := 0; i < 5; i++ {
		want = game.Play(replay, b)
	}

	got := New(b, game.NewSeededDie(seed)).Run(5)
	if got != want {
		t.Errorf("Run(5) = %d, want last game %d", got, want)
	}
}

func TestRunCollect(t *testing.T) {
	b := board.Classic()

	samples := New(b, game.NewSeededDie(7)).RunCollect(50)
	if len(samples) != 50 {
		t.Fatalf("RunCollect(50) returned %d samples", len(samples))
	}
	for i, v := range samples {
		if v < 1 {
			t.Errorf("sample %d = %d, want >= 1", i, v)
		}
	}

	// Last sample matches the Run result for the same seed.
	last := New(b, game.NewSeededDie(7)).Run(50)
	if samples[49] != last {
		t.Errorf("last sample %d != Run result %d", samples[49], last)
	}

	if New(b, game.NewSeededDie(7)).RunCollect(0) != nil {
		t.Error("RunCollect(0) should return nil")
	}
}
