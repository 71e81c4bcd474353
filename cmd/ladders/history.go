package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lmatthews/ladders/internal/platform/tui"
	"github.com/lmatthews/ladders/internal/storage"
)

var (
	flagHistoryLimit int
	flagInteractive  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved run summaries",
	Long: `Display recently saved simulation runs, newest first.

Runs are recorded by 'ladders run --save'.

Examples:
  ladders history
  ladders history -n 50
  ladders history --interactive`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No saved runs yet.")
		fmt.Println()
		fmt.Println("Run 'ladders run --save' to record the first one.")
		return
	}

	// Print header
	fmt.Printf("  %-17s  %-9s  %-12s  %-5s  %-5s  %-6s  %s\n",
		"When", "Games", "Seed", "Last", "Min", "Max", "Mean")
	fmt.Printf("  %-17s  %-9s  %-12s  %-5s  %-5s  %-6s  %s\n",
		"----", "-----", "----", "----", "---", "---", "----")

	for _, r := range runs {
		fmt.Printf("  %-17s  %-9d  %-12d  %-5d  %-5d  %-6d  %.1f\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Games, r.Seed, r.LastRolls, r.MinRolls, r.MaxRolls, r.MeanRolls)
	}

	// Show all-time extremes
	fmt.Println()
	if shortest, err := store.ShortestGame(); err == nil && shortest > 0 {
		fmt.Printf("Shortest game ever: %d rolls\n", shortest)
	}
	if longest, err := store.LongestGame(); err == nil && longest > 0 {
		fmt.Printf("Longest game ever: %d rolls\n", longest)
	}
}
