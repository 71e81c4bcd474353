package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the active board layout",
	Long: `Validate and print the active board layout: the goal square and every
ladder and snake, sorted by origin.

Examples:
  ladders board
  ladders board --board ./my-board.yaml`,
	Run: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) {
	b, err := loadBoard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Goal: %d\n", b.Goal())

	fmt.Println()
	fmt.Println("Ladders:")
	for _, j := range b.Ladders() {
		fmt.Printf("  %3d -> %3d\n", j.From, j.To)
	}

	fmt.Println()
	fmt.Println("Snakes:")
	for _, j := range b.Snakes() {
		fmt.Printf("  %3d -> %3d\n", j.From, j.To)
	}
}
