// ladders is a snakes-and-ladders Monte Carlo simulator for the terminal.
//
// Usage:
//
//	ladders run               - Simulate a batch of games
//	ladders board             - Print the active board layout
//	ladders watch             - Watch a single game animated
//	ladders history           - Show saved run summaries
//	ladders serve             - Start SSH server for remote watching
//
// Global flags:
//
//	--seed <value>  - Set die seed for reproducible runs (default: entropy source)
//	--board <path>  - Use a custom board layout YAML
//	--db <path>     - Set database path (default: ~/.ladders/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmatthews/ladders/internal/board"
	"github.com/lmatthews/ladders/internal/config"
	"github.com/lmatthews/ladders/internal/game"
)

var (
	// Global flags
	flagSeed      int64
	flagBoardPath string
	flagDBPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladders",
	Short: "Snakes & Ladders Monte Carlo simulator",
	Long: `ladders plays solo games of snakes and ladders - many of them - and
reports how many dice rolls a game takes.

Available commands:
  run      - Simulate a batch of games and report the result
  board    - Print the active board layout
  watch    - Watch a single game play out, roll by roll
  history  - View saved run summaries
  serve    - Start SSH server so others can watch remotely

Examples:
  ladders run
  ladders run --games 1000 --stats
  ladders run --seed 42 --save
  ladders watch
  ladders serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Die seed (0 = seed from entropy source)")
	rootCmd.PersistentFlags().StringVar(&flagBoardPath, "board", "", "Path to custom board layout YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ladders/history.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadBoard builds the active board from the --board flag or defaults.
func loadBoard() (*board.Board, error) {
	cfg, err := config.LoadBoard(flagBoardPath)
	if err != nil {
		return nil, err
	}
	return cfg.Board()
}

// dieSeed resolves the --seed flag: explicit value, or a one-time draw
// from the entropy source. Entropy failure is fatal to the caller.
func dieSeed() (int64, error) {
	if flagSeed != 0 {
		return flagSeed, nil
	}
	return game.CryptoSeed()
}
