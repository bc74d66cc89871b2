package challenge

import "testing"

func TestSeedDeterministic(t *testing.T) {
	if Seed("2024-03-01easy") != Seed("2024-03-01easy") {
		t.Fatal("same input produced different seeds")
	}
}

func TestSeedOrderSensitive(t *testing.T) {
	if Seed("ab") == Seed("ba") {
		t.Error("seed is not order-sensitive")
	}
}

func TestSeedNearbyInputsDiverge(t *testing.T) {
	inputs := []string{
		"2024-03-01easy",
		"2024-03-02easy",
		"2024-03-01medium",
		"2024-03-01easyalgebra",
		"",
	}
	seen := map[uint32]string{}
	for _, in := range inputs {
		s := Seed(in)
		if prev, ok := seen[s]; ok {
			t.Errorf("Seed(%q) collides with Seed(%q)", in, prev)
		}
		seen[s] = in
	}
}

func TestSeedNeverZero(t *testing.T) {
	if Seed("") == 0 {
		t.Error("empty input produced a zero seed")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(Seed("fixture"))
	b := NewRNG(Seed("fixture"))
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("streams diverged at draw %d", i)
		}
	}
}

func TestRNGZeroSeedRecovers(t *testing.T) {
	r := NewRNG(0)
	if r.Next() == 0 && r.Next() == 0 {
		t.Error("zero-seeded RNG is stuck at zero")
	}
}

func TestIntnRange(t *testing.T) {
	r := NewRNG(Seed("range"))
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %d, out of range", v)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	r := NewRNG(Seed("perm"))
	vals := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})

	seen := make([]bool, len(vals))
	for _, v := range vals {
		if seen[v] {
			t.Fatalf("value %d appears twice after shuffle", v)
		}
		seen[v] = true
	}
}

func TestShuffleDrawCount(t *testing.T) {
	// A shuffle of n elements must consume exactly n-1 draws: downstream
	// choice shuffles depend on the stream position.
	a := NewRNG(Seed("count"))
	b := NewRNG(Seed("count"))

	a.Shuffle(5, func(i, j int) {})
	for i := 0; i < 4; i++ {
		b.Next()
	}
	if a.Next() != b.Next() {
		t.Error("shuffle of 5 elements did not consume exactly 4 draws")
	}
}
