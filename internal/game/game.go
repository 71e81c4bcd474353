// Package game implements a single solo game of snakes and ladders: roll a
// die, walk the board, follow ladders up and snakes down, and win by
// landing exactly on the goal square.
package game

import "github.com/lmatthews/ladders/internal/board"

// Move records one turn: the die value rolled and the square the pawn
// ended up on after resolving ladders, snakes, and overshoots.
type Move struct {
	Roll   int
	Square int
}

// Play runs one complete game on b using d and returns the number of rolls
// taken to reach the goal. The count is always at least 1.
//
// There is no iteration cap: a game ends only when the pawn lands exactly
// on the goal, which happens with probability 1 in finite expected time.
func Play(d Die, b *board.Board) int {
	rolls := 0
	position := 0
	goal := b.Goal()

	for position != goal {
		rolls++
		position = b.Resolve(position, d.Roll())
	}

	return rolls
}

// PlayTrace runs one complete game and returns every move taken, in order.
// The last move always lands on the goal. Play is the allocation-free
// variant for bulk simulation; PlayTrace feeds the watch view.
func PlayTrace(d Die, b *board.Board) []Move {
	var moves []Move
	position := 0
	goal := b.Goal()

	for position != goal {
		roll := d.Roll()
		position = b.Resolve(position, roll)
		moves = append(moves, Move{Roll: roll, Square: position})
	}

	return moves
}
