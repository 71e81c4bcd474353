package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmatthews/ladders/internal/game"
	"github.com/lmatthews/ladders/internal/sim"
	"github.com/lmatthews/ladders/internal/storage"
)

var (
	flagGames int
	flagStats bool
	flagSave  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a batch of games",
	Long: `Play a batch of solo games back to back with one shared die and report
the roll count of the final game:

  Finished game in {N} rolls

All earlier games are discarded. Pass --stats to aggregate over the
whole batch instead of throwing it away, and --save to record the run
summary in the history database.

Examples:
  ladders run
  ladders run --games 1000
  ladders run --seed 42 --stats
  ladders run --stats --save`,
	Run: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagGames, "games", sim.DefaultGames, "Number of games to simulate")
	runCmd.Flags().BoolVar(&flagStats, "stats", false, "Print aggregate statistics over all games")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Save the run summary to the history database")
}

func runRun(cmd *cobra.Command, args []string) {
	if flagGames < 1 {
		fmt.Fprintln(os.Stderr, "Error: --games must be at least 1")
		os.Exit(1)
	}

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

	runner := sim.New(b, game.NewSeededDie(seed))

	// The plain path keeps the original behavior: play the whole batch,
	// report only the final game.
	if !flagStats && !flagSave {
		fmt.Printf("Finished game in %d rolls\n", runner.Run(flagGames))
		return
	}

	samples := runner.RunCollect(flagGames)
	last := samples[len(samples)-1]
	summary := sim.Summarize(samples)

	fmt.Printf("Finished game in %d rolls\n", last)

	if flagStats {
		printSummary(summary, samples)
	}

	if flagSave {
		saveRun(seed, last, summary)
	}
}

func printSummary(s sim.Summary, samples []int) {
	fmt.Println()
	fmt.Printf("  %-8s %d\n", "games", s.Games)
	fmt.Printf("  %-8s %d\n", "min", s.Min)
	fmt.Printf("  %-8s %d\n", "max", s.Max)
	fmt.Printf("  %-8s %.2f\n", "mean", s.Mean)
	fmt.Printf("  %-8s %.2f\n", "stddev", s.StdDev)
	fmt.Printf("  %-8s %.1f\n", "p50", s.P50)
	fmt.Printf("  %-8s %.1f\n", "p90", s.P90)
	fmt.Printf("  %-8s %.1f\n", "p99", s.P99)

	fmt.Println()
	for _, bucket := range sim.Histogram(samples, 25) {
		bar := barWidth(bucket.Count, s.Games)
		fmt.Printf("  %4d-%-4d %7d %s\n", bucket.Lo, bucket.Hi, bucket.Count, bar)
	}
}

// barWidth renders a proportional histogram bar, max 40 chars.
func barWidth(count, total int) string {
	const maxBar = 40
	n := count * maxBar / total
	bar := make([]byte, n)
	for i := range bar {
		bar[i] = '#'
	}
	return string(bar)
}

func saveRun(seed int64, last int, s sim.Summary) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return
	}
	defer store.Close()

	_, err = store.SaveRun(storage.RunEntry{
		Games:     s.Games,
		Seed:      seed,
		LastRolls: last,
		MinRolls:  s.Min,
		MaxRolls:  s.Max,
		MeanRolls: s.Mean,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save run: %v\n", err)
	}
}
