package die

import (
	gomath "math"

	"github.com/bd/arbitrary-dice/pkg/math"
)

const inf = float32(gomath.MaxFloat32)

// parallelEps is the |dot(normal, dir)| threshold below which a ray is
// treated as parallel to a face plane.
const parallelEps = 1e-6

// Hit describes the first surface crossing of a ray into the solid.
type Hit struct {
	T      float32   // distance along the ray, >= 0
	Point  math.Vec3 // origin + dir*T
	Face   int       // entering face index
	Normal math.Vec3 // outward normal of the entering face
}

// IntersectLocal clips the ray against every face half-space in the body
// frame (orientation ignored) and reports the entry hit. dir must be unit
// length. A miss is a normal outcome, not an error. The scan is
// allocation-free; it runs once per rendered pixel.
func (p *Polyhedron) IntersectLocal(origin, dir math.Vec3) (Hit, bool) {
	var (
		tNear     float32 = 0
		tFar      float32 = inf
		enterFace         = -1
	)
	for i, n := range p.seeds {
		denom := n.Dot(dir)
		num := p.offset - n.Dot(origin)
		if denom > -parallelEps && denom < parallelEps {
			// Parallel to this plane: outside the half-space means the
			// ray can never enter the solid.
			if num < 0 {
				return Hit{}, false
			}
			continue
		}
		t := num / denom
		if denom < 0 {
			// Entering through this plane.
			if t > tNear {
				tNear = t
				enterFace = i
			}
		} else if t < tFar {
			tFar = t
		}
		if tNear > tFar {
			return Hit{}, false
		}
	}
	if enterFace < 0 || tFar < 0 {
		return Hit{}, false
	}
	t := tNear
	if t < 0 {
		t = 0
	}
	n := p.seeds[enterFace]
	return Hit{
		T:      t,
		Point:  origin.Add(dir.Scale(t)),
		Face:   enterFace,
		Normal: n,
	}, true
}

// Intersect transforms the ray into the body frame using the inverse of
// the current orientation, clips it, and rotates the hit back to world
// space.
func (p *Polyhedron) Intersect(origin, dir math.Vec3) (Hit, bool) {
	inv := p.orientation.Conjugate()
	hit, ok := p.IntersectLocal(inv.Rotate(origin), inv.Rotate(dir))
	if !ok {
		return Hit{}, false
	}
	hit.Point = p.orientation.Rotate(hit.Point)
	hit.Normal = p.orientation.Rotate(hit.Normal)
	return hit, true
}

// EdgeDistance returns the minimum slack offset - dot(n_i, point) over
// all faces other than skip, for a body-frame point. Inside the solid
// the value is >= 0 and approaches 0 near a shared edge or vertex; the
// shader darkens within a small threshold of it.
func (p *Polyhedron) EdgeDistance(point math.Vec3, skip int) float32 {
	nearest := inf
	for i, n := range p.seeds {
		if i == skip {
			continue
		}
		d := p.offset - n.Dot(point)
		if d < nearest {
			nearest = d
		}
	}
	return nearest
}
