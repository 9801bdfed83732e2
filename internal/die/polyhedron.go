package die

import "github.com/bd/arbitrary-dice/pkg/math"

// DefaultOffset is the shared plane distance from the origin. With unit
// normals this keeps every face plane inside the unit sphere, so the
// solid reads as a rounded-off blob of flats for small counts and tends
// toward a sphere as the count grows.
const DefaultOffset = 0.9

// TowardViewer is the world axis a settled face points along.
var TowardViewer = math.Vec3{Z: 1}

// Polyhedron is the die body: the convex intersection of one half-space
// per face, dot(normal_i, x) <= offset, plus a rigid orientation applied
// to the whole normal set. Seeds are regenerated wholesale on SetSeeds
// and never mutated individually; only the orientation changes between
// reseeds, and only the animator writes it.
type Polyhedron struct {
	seeds       []math.Vec3
	offset      float32
	orientation math.Quat
}

// NewPolyhedron creates a die with n faces (clamped) at the default
// plane offset and identity orientation.
func NewPolyhedron(n int) *Polyhedron {
	p := &Polyhedron{
		offset:      DefaultOffset,
		orientation: math.QuatIdentity(),
	}
	p.SetSeeds(n)
	return p
}

// SetSeeds regenerates the face normals for n faces (clamped to
// [MinFaces, MaxFaces]) and returns the clamped count. The orientation
// is left untouched.
func (p *Polyhedron) SetSeeds(n int) int {
	p.seeds = FibonacciSeeds(n)
	return len(p.seeds)
}

// Count returns the active face count.
func (p *Polyhedron) Count() int {
	return len(p.seeds)
}

// Normal returns face i's outward normal in the body frame.
func (p *Polyhedron) Normal(i int) math.Vec3 {
	return p.seeds[i]
}

// Offset returns the shared plane distance from the origin.
func (p *Polyhedron) Offset() float32 {
	return p.offset
}

// SetOffset overrides the shared plane distance.
func (p *Polyhedron) SetOffset(d float32) {
	p.offset = d
}

// Orientation returns the current rigid rotation of the body.
func (p *Polyhedron) Orientation() math.Quat {
	return p.orientation
}

// SetOrientation replaces the body rotation.
func (p *Polyhedron) SetOrientation(q math.Quat) {
	p.orientation = q
}

// WorldNormal returns face i's normal with the current orientation
// applied.
func (p *Polyhedron) WorldNormal(i int) math.Vec3 {
	return p.orientation.Rotate(p.seeds[i])
}

// WrapFace reduces an arbitrary face index modulo the active count, with
// negative indices wrapping around.
func (p *Polyhedron) WrapFace(i int) int {
	n := len(p.seeds)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
