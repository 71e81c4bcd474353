// Package config loads board layouts from YAML. The classic board ships
// embedded; users can override it with their own layout file.
package config

import (
	"fmt"

	"github.com/lmatthews/ladders/internal/board"
)

// BoardConfig mirrors the YAML board document.
type BoardConfig struct {
	Goal    int         `yaml:"goal"`
	Ladders map[int]int `yaml:"ladders"`
	Snakes  map[int]int `yaml:"snakes"`
}

// Board validates the config and builds an immutable board from it.
func (c BoardConfig) Board() (*board.Board, error) {
	goal := c.Goal
	if goal == 0 {
		goal = board.DefaultGoal
	}
	b, err := board.New(goal, c.Ladders, c.Snakes)
	if err != nil {
		return nil, fmt.Errorf("config: invalid board layout: %w", err)
	}
	return b, nil
}
