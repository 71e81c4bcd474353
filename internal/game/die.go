package game

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Sides is the number of faces on the die. The rules assume a standard
// six-sided die throughout.
const Sides = 6

// Die is the only capability the game loop needs from a randomness source:
// one uniform draw in [1, Sides] per call.
type Die interface {
	Roll() int
}

// SeededDie is a fast non-cryptographic die. Seed it once from a strong
// source (see CryptoSeed) for normal play, or with a fixed value for
// reproducible runs.
type SeededDie struct {
	rng *rand.Rand
}

// NewSeededDie creates a die from an explicit seed. The same seed always
// produces the same roll sequence.
func NewSeededDie(seed int64) *SeededDie {
	return &SeededDie{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniform value in [1, Sides].
func (d *SeededDie) Roll() int {
	return d.rng.Intn(Sides) + 1
}

// CryptoSeed draws a one-time seed from the operating system's entropy
// source. Failure here is fatal to the caller: there is no sane fallback
// for an unavailable entropy source at startup.
func CryptoSeed() (int64, error) {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("game: cannot read seed from entropy source: %w", err)
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

// ScriptedDie replays a fixed roll sequence, cycling when exhausted.
// Used by tests and anywhere a deterministic game is needed.
type ScriptedDie struct {
	rolls []int
	next  int
}

// NewScriptedDie creates a die that cycles through the given rolls.
// Panics if rolls is empty or contains an out-of-range value.
func NewScriptedDie(rolls ...int) *ScriptedDie {
	if len(rolls) == 0 {
		panic("game: scripted die needs at least one roll")
	}
	for _, r := range rolls {
		if r < 1 || r > Sides {
			panic(fmt.Sprintf("game: scripted roll %d out of range [1, %d]", r, Sides))
		}
	}
	return &ScriptedDie{rolls: rolls}
}

// Roll returns the next scripted value, wrapping around at the end.
func (d *ScriptedDie) Roll() int {
	r := d.rolls[d.next%len(d.rolls)]
	d.next++
	return r
}
