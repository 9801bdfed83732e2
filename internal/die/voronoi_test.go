package die

import (
	"testing"
)

func TestNearestSeedOwnsItself(t *testing.T) {
	for _, n := range []int{3, 13, 37} {
		p := NewPolyhedron(n)
		for i := 0; i < p.Count(); i++ {
			face, margin := p.NearestSeed(p.Normal(i))
			if face != i {
				t.Fatalf("n=%d: seed %d classified as cell %d", n, i, face)
			}
			if margin <= 0 {
				t.Errorf("n=%d: seed %d has non-positive margin %v", n, i, margin)
			}
		}
	}
}

func TestNearestSeedMarginShrinksAtBoundary(t *testing.T) {
	p := NewPolyhedron(37)
	a := p.Normal(0)
	b := neighborOf(p, 0)
	mid := a.Add(b).Normalize()
	_, atSeed := p.NearestSeed(a)
	_, atMid := p.NearestSeed(mid)
	if atMid >= atSeed {
		t.Errorf("margin at cell boundary (%v) not below margin at seed (%v)", atMid, atSeed)
	}
}

func TestNearestSeedMidpointNearZeroMargin(t *testing.T) {
	// Three well-separated cells: the midpoint of two seeds is owned by
	// one of them with a vanishing margin.
	p := NewPolyhedron(3)
	a := p.Normal(0)
	b := neighborOf(p, 0)
	mid := a.Add(b).Normalize()
	face, margin := p.NearestSeed(mid)
	if p.Normal(face) != a && p.Normal(face) != b {
		t.Fatalf("midpoint owned by unrelated cell %d", face)
	}
	if margin > 1e-3 {
		t.Errorf("midpoint margin %v, want ~0", margin)
	}
}
