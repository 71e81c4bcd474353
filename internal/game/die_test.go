package game

import "testing"

func TestSeededDieRange(t *testing.T) {
	d := NewSeededDie(1)
	seen := make(map[int]bool)

	for i := 0; i < 10000; i++ {
		r := d.Roll()
		if r < 1 || r > Sides {
			t.Fatalf("Roll() = %d, out of [1, %d]", r, Sides)
		}
		seen[r] = true
	}

	// With 10k draws every face should appear.
	for face := 1; face <= Sides; face++ {
		if !seen[face] {
			t.Errorf("face %d never rolled", face)
		}
	}
}

func TestSeededDieReproducible(t *testing.T) {
	d1 := NewSeededDie(777)
	d2 := NewSeededDie(777)

	for i := 0; i < 100; i++ {
		if r1, r2 := d1.Roll(), d2.Roll(); r1 != r2 {
			t.Fatalf("draw %d differs: %d vs %d", i, r1, r2)
		}
	}
}

func TestScriptedDieCycles(t *testing.T) {
	d := NewScriptedDie(1, 2, 3)
	want := []int{1, 2, 3, 1, 2, 3, 1}

	for i, w := range want {
		if got := d.Roll(); got != w {
			t.Errorf("roll %d = %d, want %d", i, got, w)
		}
	}
}

func TestScriptedDieRejectsBadRolls(t *testing.T) {
	for _, rolls := range [][]int{{}, {0}, {7}, {3, 9}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewScriptedDie(%v) did not panic", rolls)
				}
			}()
			NewScriptedDie(rolls...)
		}()
	}
}

func TestCryptoSeed(t *testing.T) {
	if _, err := CryptoSeed(); err != nil {
		t.Fatalf("CryptoSeed() failed: %v", err)
	}
}
