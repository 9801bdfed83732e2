package die

import (
	"testing"
)

func TestFibonacciSeedsCountAndLength(t *testing.T) {
	for _, n := range []int{3, 4, 13, 37, 100, MaxFaces} {
		seeds := FibonacciSeeds(n)
		if len(seeds) != n {
			t.Fatalf("FibonacciSeeds(%d) returned %d seeds", n, len(seeds))
		}
		for i, s := range seeds {
			l := s.Length()
			if l < 0.9999 || l > 1.0001 {
				t.Errorf("n=%d seed %d has length %v, want ~1", n, i, l)
			}
		}
	}
}

func TestFibonacciSeedsDistinct(t *testing.T) {
	seeds := FibonacciSeeds(100)
	for i := 0; i < len(seeds); i++ {
		for j := i + 1; j < len(seeds); j++ {
			if seeds[i].Sub(seeds[j]).Length() < 1e-5 {
				t.Fatalf("seeds %d and %d coincide: %v", i, j, seeds[i])
			}
		}
	}
}

func TestFibonacciSeedsDeterministic(t *testing.T) {
	a := FibonacciSeeds(37)
	b := FibonacciSeeds(37)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seed %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFibonacciSeedsClamps(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{2, MinFaces},
		{0, MinFaces},
		{-5, MinFaces},
		{3, 3},
		{MaxFaces, MaxFaces},
		{MaxFaces + 488, MaxFaces},
	}
	for _, tc := range cases {
		if got := len(FibonacciSeeds(tc.in)); got != tc.want {
			t.Errorf("FibonacciSeeds(%d) yielded %d seeds, want %d", tc.in, got, tc.want)
		}
	}
}
