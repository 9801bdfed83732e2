package die

import "github.com/bd/arbitrary-dice/pkg/math"

// NearestSeed classifies a body-frame surface direction into the
// spherical Voronoi cell of the angularly closest seed. It returns the
// owning face index and the margin between the best and second-best dot
// products; the margin approaches 0 near a cell boundary and drives
// edge darkening in the sphere shading variant. Linear scan over the
// active seeds; with a few hundred faces at most there is nothing to
// accelerate.
func (p *Polyhedron) NearestSeed(dir math.Vec3) (face int, margin float32) {
	best := float32(-2)
	second := float32(-2)
	for i, n := range p.seeds {
		d := n.Dot(dir)
		if d > best {
			second = best
			best = d
			face = i
		} else if d > second {
			second = d
		}
	}
	return face, best - second
}
