// Package die implements the virtual die: face seeds on the unit sphere,
// the implicit convex polyhedron they define, ray intersection against it,
// and the roll animation that settles a chosen face toward the viewer.
package die

import (
	gomath "math"

	"github.com/bd/arbitrary-dice/pkg/math"
)

const (
	// MinFaces is the smallest usable face count.
	MinFaces = 3
	// MaxFaces bounds the face count; beyond this the linear per-pixel
	// scans over faces stop being interactive.
	MaxFaces = 512
)

// goldenAngle is pi * (3 - sqrt(5)), the spherical Fibonacci step.
var goldenAngle = gomath.Pi * (3 - gomath.Sqrt(5))

// ClampFaces clamps a requested face count to [MinFaces, MaxFaces].
func ClampFaces(n int) int {
	if n < MinFaces {
		return MinFaces
	}
	if n > MaxFaces {
		return MaxFaces
	}
	return n
}

// FibonacciSeeds returns n unit vectors evenly distributed over the unit
// sphere using the Fibonacci lattice. The count is clamped to
// [MinFaces, MaxFaces]. The result is deterministic in n.
func FibonacciSeeds(n int) []math.Vec3 {
	n = ClampFaces(n)
	seeds := make([]math.Vec3, n)
	for i := range seeds {
		t := (float64(i) + 0.5) / float64(n)
		z := 1 - 2*t
		r := gomath.Sqrt(gomath.Max(0, 1-z*z))
		phi := float64(i) * goldenAngle
		seeds[i] = math.Vec3{
			X: float32(gomath.Cos(phi) * r),
			Y: float32(z),
			Z: float32(gomath.Sin(phi) * r),
		}.Normalize()
	}
	return seeds
}
