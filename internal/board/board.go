// Package board defines the snakes-and-ladders board: a fixed goal square
// and an immutable jump table mapping ladder and snake origins to their
// destinations. Squares absent from the table resolve to themselves.
package board

import (
	"fmt"
	"sort"
)

// DefaultGoal is the winning square on the classic board.
const DefaultGoal = 100

// Jump is a single board transition (ladder or snake).
type Jump struct {
	From int
	To   int
}

// Board is an immutable game board. The zero value is not usable; construct
// with New or Classic.
type Board struct {
	goal  int
	jumps map[int]int
}

// New builds a board from separate ladder and snake tables, validating that
// the layout is playable: all squares in range, ladders go up, snakes go
// down, no origin listed twice, and no jump chains onto another jump.
func New(goal int, ladders, snakes map[int]int) (*Board, error) {
	if goal < 2 {
		return nil, fmt.Errorf("board: goal %d too small", goal)
	}

	jumps := make(map[int]int, len(ladders)+len(snakes))

	for from, to := range ladders {
		if from < 1 || from >= goal {
			return nil, fmt.Errorf("board: ladder origin %d out of range [1, %d)", from, goal)
		}
		if to < 1 || to > goal {
			return nil, fmt.Errorf("board: ladder destination %d out of range [1, %d]", to, goal)
		}
		if to <= from {
			return nil, fmt.Errorf("board: ladder %d -> %d must go up", from, to)
		}
		jumps[from] = to
	}

	for from, to := range snakes {
		if from < 1 || from >= goal {
			return nil, fmt.Errorf("board: snake origin %d out of range [1, %d)", from, goal)
		}
		if to < 1 {
			return nil, fmt.Errorf("board: snake destination %d out of range [1, %d]", to, goal)
		}
		if to >= from {
			return nil, fmt.Errorf("board: snake %d -> %d must go down", from, to)
		}
		if _, dup := jumps[from]; dup {
			return nil, fmt.Errorf("board: square %d is both a ladder and a snake", from)
		}
		jumps[from] = to
	}

	// Resolution is single-hop: a destination that is itself an origin
	// would make the outcome order-dependent.
	for from, to := range jumps {
		if _, chained := jumps[to]; chained {
			return nil, fmt.Errorf("board: jump %d -> %d lands on another jump origin", from, to)
		}
	}

	return &Board{goal: goal, jumps: jumps}, nil
}

// Classic returns the standard 100-square board used by the simulator.
func Classic() *Board {
	b, err := New(DefaultGoal, ClassicLadders(), ClassicSnakes())
	if err != nil {
		// The classic layout is a compile-time constant; it cannot fail
		// validation.
		panic(err)
	}
	return b
}

// ClassicLadders returns the ladder table of the standard board.
func ClassicLadders() map[int]int {
	return map[int]int{
		1:  38,
		4:  14,
		9:  31,
		21: 42,
		28: 84,
		36: 44,
		51: 67,
		71: 91,
		80: 100,
	}
}

// ClassicSnakes returns the snake table of the standard board.
func ClassicSnakes() map[int]int {
	return map[int]int{
		98: 78,
		95: 75,
		93: 73,
		87: 24,
		64: 60,
		62: 19,
		56: 53,
		49: 11,
		48: 26,
		16: 6,
	}
}

// Goal returns the winning square.
func (b *Board) Goal() int {
	return b.goal
}

// Resolve computes the square a pawn at position ends up on after rolling
// roll. Overshooting the goal wastes the roll: the pawn stays put. Landing
// on a jump origin moves the pawn to the jump destination.
func (b *Board) Resolve(position, roll int) int {
	landed := position + roll
	if landed > b.goal {
		return position
	}
	if to, ok := b.jumps[landed]; ok {
		return to
	}
	return landed
}

// Destination reports the jump destination for a square, if the square is a
// ladder or snake origin.
func (b *Board) Destination(square int) (int, bool) {
	to, ok := b.jumps[square]
	return to, ok
}

// IsLadder reports whether square is a ladder origin.
func (b *Board) IsLadder(square int) bool {
	to, ok := b.jumps[square]
	return ok && to > square
}

// IsSnake reports whether square is a snake origin.
func (b *Board) IsSnake(square int) bool {
	to, ok := b.jumps[square]
	return ok && to < square
}

// Ladders returns all ladders sorted by origin.
func (b *Board) Ladders() []Jump {
	return b.collect(true)
}

// Snakes returns all snakes sorted by origin.
func (b *Board) Snakes() []Jump {
	return b.collect(false)
}

func (b *Board) collect(up bool) []Jump {
	var out []Jump
	for from, to := range b.jumps {
		if (to > from) == up {
			out = append(out, Jump{From: from, To: to})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })
	return out
}
