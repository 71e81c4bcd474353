package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lmatthews/ladders/internal/game"
	"github.com/lmatthews/ladders/internal/platform/tui"
)

var flagRate int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a single game play out",
	Long: `Animate one solo game on the board, one die roll at a time.

Controls:
  Space/P    - Pause
  R          - Start a new game
  +/-        - Change speed
  Q/Ctrl+C   - Quit

Examples:
  ladders watch
  ladders watch --rate 10
  ladders watch --seed 42`,
	Run: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagRate, "rate", 4, "Rolls per second")
}

func runWatch(cmd *cobra.Command, args []string) {
	b, err := loadBoard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed, err := dieSeed()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	err = tui.RunWatch(tui.WatchConfig{
		Board:  b,
		Die:    game.NewSeededDie(seed),
		Rate:   flagRate,
		Width:  width,
		Height: height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
