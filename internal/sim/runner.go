// Package sim runs many solo games back to back and summarizes the roll
// counts. One die instance is shared sequentially across all games.
package sim

import (
	"github.com/lmatthews/ladders/internal/board"
	"github.com/lmatthews/ladders/internal/game"
)

// DefaultGames is the trial count used when none is given.
const DefaultGames = 1_000_000

// Runner plays repeated games on one board with one die.
type Runner struct {
	board *board.Board
	die   game.Die
}

// New creates a runner.
func New(b *board.Board, d game.Die) *Runner {
	return &Runner{board: b, die: d}
}

// Run plays games games and returns the roll count of the last one,
// discarding all earlier results. This is the benchmark path: no
// allocation per game, only the final result survives.
func (r *Runner) Run(games int) int {
	last := 0
	for i := 0; i < games; i++ {
		last = game.Play(r.die, r.board)
	}
	return last
}

// RunCollect plays games games and returns every roll count, for callers
// that want aggregate statistics instead of just the final game.
func (r *Runner) RunCollect(games int) []int {
	if games <= 0 {
		return nil
	}
	samples := make([]int, games)
	for i := range samples {
		samples[i] = game.Play(r.die, r.board)
	}
	return samples
}
