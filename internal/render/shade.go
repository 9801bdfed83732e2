// Package render rasterizes the die on the CPU: one ray per pixel
// against the polyhedron (or the Voronoi sphere), shaded per face and
// darkened near face boundaries.
package render

import (
	gomath "math"

	"github.com/bd/arbitrary-dice/pkg/math"
)

// Shading constants. Colors are linear RGB in [0,1].
var (
	// lightDir is the fixed directional light, roughly over the
	// viewer's right shoulder.
	lightDir = math.Vec3{X: 0.4, Y: 0.7, Z: 0.6}.Normalize()

	// background matches the window clear color.
	background = math.Vec3{X: 0.1, Y: 0.1, Z: 0.15}

	// edgeColor is the near-black the surface blends to along edges.
	edgeColor = math.Vec3{X: 0.04, Y: 0.04, Z: 0.06}
)

const (
	// lambertFloor keeps faces pointing away from the light readable.
	lambertFloor = 0.35

	// rimStrength scales the grazing-angle brightening.
	rimStrength = 0.25

	// polyEdgeWidth is the half-space slack below which a polyhedron
	// pixel blends toward the edge color.
	polyEdgeWidth = 0.02

	// sphereEdgeWidth is the Voronoi margin below which a sphere pixel
	// blends toward the edge color.
	sphereEdgeWidth = 0.015
)

// FaceColor returns the stable pastel color for a face index: three
// independent hash fractions remapped into [0.6, 1.0].
func FaceColor(i int) math.Vec3 {
	return math.Vec3{
		X: 0.6 + 0.4*hash01(i, 1),
		Y: 0.6 + 0.4*hash01(i, 2),
		Z: 0.6 + 0.4*hash01(i, 3),
	}
}

// hash01 maps an integer index and channel salt to a fraction in [0,1).
// Same construction as the classic GLSL sin-fract hash, so colors stay
// stable across reseeds with the same count.
func hash01(i, salt int) float32 {
	s := gomath.Sin(float64(i)*12.9898 + float64(salt)*78.233)
	_, f := gomath.Modf(s * 43758.5453)
	return float32(gomath.Abs(f))
}

// Shade lights a surface sample: lambert with a floor, rim brightening
// at grazing angles, then a blend from the edge color by proximity to a
// face boundary. normal and viewDir are unit world-space vectors;
// edgeT is proximity already normalized to [0,1] (0 = on the edge).
func Shade(face int, normal, viewDir math.Vec3, edgeT float32) math.Vec3 {
	lambert := normal.Dot(lightDir)
	if lambert < lambertFloor {
		lambert = lambertFloor
	}

	facing := normal.Dot(viewDir)
	if facing < 0 {
		facing = 0
	}
	g := 1 - facing
	rim := rimStrength * g * g * g

	c := FaceColor(face).Scale(lambert)
	c = math.Vec3{X: c.X + rim, Y: c.Y + rim, Z: c.Z + rim}
	return mix(edgeColor, c, edgeT)
}

// edgeBlend normalizes a raw proximity value against a threshold width
// into the [0,1] blend parameter Shade expects.
func edgeBlend(proximity, width float32) float32 {
	if proximity <= 0 {
		return 0
	}
	if proximity >= width {
		return 1
	}
	return proximity / width
}

func mix(a, b math.Vec3, t float32) math.Vec3 {
	return math.Vec3{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
		Z: a.Z + t*(b.Z-a.Z),
	}
}

// toByte clamps a linear channel into an 8-bit value.
func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v * 255)
}
