package config

import (
	_ "embed"

	"github.com/lmatthews/ladders/internal/board"
)

//go:embed defaults/classic.yaml
var defaultBoardYAML []byte

// DefaultBoardConfig returns the classic 100-square layout.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Goal:    board.DefaultGoal,
		Ladders: board.ClassicLadders(),
		Snakes:  board.ClassicSnakes(),
	}
}
