package render

import (
	"testing"

	"github.com/bd/arbitrary-dice/pkg/math"
)

func TestFaceColorDeterministicAndPastel(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := FaceColor(i)
		if c != FaceColor(i) {
			t.Fatalf("FaceColor(%d) not deterministic", i)
		}
		for name, v := range map[string]float32{"r": c.X, "g": c.Y, "b": c.Z} {
			if v < 0.6 || v > 1.0 {
				t.Errorf("FaceColor(%d).%s = %v, want within [0.6, 1.0]", i, name, v)
			}
		}
	}
}

func TestFaceColorsVary(t *testing.T) {
	distinct := make(map[math.Vec3]bool)
	for i := 0; i < 20; i++ {
		distinct[FaceColor(i)] = true
	}
	if len(distinct) < 18 {
		t.Errorf("only %d distinct colors over 20 faces", len(distinct))
	}
}

func TestShadeNeverFullyBlack(t *testing.T) {
	// A face pointing straight away from the light still keeps the
	// lambert floor.
	n := lightDir.Neg()
	c := Shade(0, n, math.Vec3{Z: 1}, 1)
	if c.X < 0.1 && c.Y < 0.1 && c.Z < 0.1 {
		t.Errorf("backlit face shaded nearly black: %v", c)
	}
}

func TestShadeEdgeBlendsToEdgeColor(t *testing.T) {
	n := math.Vec3{Z: 1}
	onEdge := Shade(0, n, math.Vec3{Z: 1}, 0)
	if onEdge != edgeColor {
		t.Errorf("edgeT=0 shaded %v, want edge color %v", onEdge, edgeColor)
	}
	interior := Shade(0, n, math.Vec3{Z: 1}, 1)
	if interior == edgeColor {
		t.Error("interior pixel collapsed to the edge color")
	}
}

func TestShadeRimBrightensGrazingAngles(t *testing.T) {
	view := math.Vec3{Z: 1}
	grazing := math.Vec3{X: 1} // orthogonal to the view: full rim
	got := Shade(0, grazing, view, 1)

	lambert := grazing.Dot(lightDir)
	if lambert < lambertFloor {
		lambert = lambertFloor
	}
	noRim := FaceColor(0).Scale(lambert)
	if got.X <= noRim.X || got.Y <= noRim.Y || got.Z <= noRim.Z {
		t.Errorf("grazing normal got no rim brightening: %v vs %v", got, noRim)
	}

	// A normal looking straight back at the viewer gets none.
	facing := Shade(0, view, view, 1)
	wantLambert := view.Dot(lightDir)
	if wantLambert < lambertFloor {
		wantLambert = lambertFloor
	}
	wantFacing := FaceColor(0).Scale(wantLambert)
	if facing.Sub(wantFacing).Length() > 1e-5 {
		t.Errorf("viewer-facing normal picked up rim: %v vs %v", facing, wantFacing)
	}
}

func TestEdgeBlendClamps(t *testing.T) {
	cases := []struct {
		proximity, width, want float32
	}{
		{-0.5, 0.02, 0},
		{0, 0.02, 0},
		{0.01, 0.02, 0.5},
		{0.02, 0.02, 1},
		{5, 0.02, 1},
	}
	for _, tc := range cases {
		if got := edgeBlend(tc.proximity, tc.width); got != tc.want {
			t.Errorf("edgeBlend(%v, %v) = %v, want %v", tc.proximity, tc.width, got, tc.want)
		}
	}
}
