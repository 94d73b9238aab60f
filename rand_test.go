package mockfx

import "testing"

func TestSeedNext_Recurrence(t *testing.T) {
	cases := []struct {
		name  string
		seed  Seed
		value int64
		next  Seed
	}{
		{"even", 6, 6, 3},
		{"odd", 3, 3, 10},
		{"one", 1, 1, 4},
		{"zero", 0, 0, 0},
		{"negative even", -4, 4, -2},
		{"negative odd", -5, 5, -14},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, next := tc.seed.Next()
			if v != tc.value {
				t.Errorf("Expected value %d, got %d", tc.value, v)
			}
			if next != tc.next {
				t.Errorf("Expected successor %d, got %d", tc.next, next)
			}
		})
	}
}

func TestSeedNext_Deterministic(t *testing.T) {
	a, b := Seed(27), Seed(27)

	for i := 0; i < 200; i++ {
		va, na := a.Next()
		vb, nb := b.Next()
		if va != vb || na != nb {
			t.Fatalf("Sequences diverged at draw %d: (%d,%d) vs (%d,%d)", i, va, na, vb, nb)
		}
		if va < 0 {
			t.Fatalf("Draw %d is negative: %d", i, va)
		}
		a, b = na, nb
	}
}

func TestSeedSplit(t *testing.T) {
	for _, seed := range []Seed{0, 1, 27, -13} {
		left, right := seed.Split()
		if left == right {
			t.Errorf("Split(%d) returned aliased states %d, %d", seed, left, right)
		}
		if left != seed {
			t.Errorf("Split(%d) changed the left state to %d", seed, left)
		}
	}
}

func TestSeedBetween(t *testing.T) {
	seed := Seed(97)
	for i := 0; i < 100; i++ {
		var v int64
		v, seed = seed.Between(10, 20)
		if v < 10 || v > 20 {
			t.Fatalf("Draw %d out of [10,20]: %d", i, v)
		}
	}

	t.Run("degenerate interval", func(t *testing.T) {
		v, _ := Seed(41).Between(7, 7)
		if v != 7 {
			t.Errorf("Expected 7, got %d", v)
		}
	})
}
