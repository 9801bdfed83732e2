package render

import (
	"fmt"
	gomath "math"
	"runtime"
	"sync"

	"github.com/bd/arbitrary-dice/internal/die"
	"github.com/bd/arbitrary-dice/pkg/math"
)

// Mode selects how the die surface is defined.
type Mode int

const (
	// ModePolyhedron intersects rays against the half-space solid.
	ModePolyhedron Mode = iota
	// ModeSphere intersects rays against the unit sphere and classifies
	// the surface point by its nearest seed (spherical Voronoi cell).
	ModeSphere
)

// ParseMode maps the config strings onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "poly", "polyhedron":
		return ModePolyhedron, nil
	case "sphere", "voronoi":
		return ModeSphere, nil
	}
	return ModePolyhedron, fmt.Errorf("unknown render mode %q", s)
}

// DefaultFaces returns the face count used when the config leaves it
// unset: 13 for the polyhedron, 37 for the sphere.
func (m Mode) DefaultFaces() int {
	if m == ModeSphere {
		return 37
	}
	return 13
}

// camera constants: eye on +Z looking at the origin.
const (
	cameraDist   = 3.0
	fovY         = 0.8 // vertical field of view, radians
	sphereRadius = 1.0
)

// Frame is a reusable RGBA pixel buffer, rows top to bottom.
type Frame struct {
	W, H int
	Pix  []byte
}

// NewFrame allocates a frame.
func NewFrame(w, h int) *Frame {
	f := &Frame{}
	f.Resize(w, h)
	return f
}

// Resize reallocates the buffer when the size changes.
func (f *Frame) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == f.W && h == f.H && f.Pix != nil {
		return
	}
	f.W, f.H = w, h
	f.Pix = make([]byte, w*h*4)
}

// Render fills the frame with one ray cast per pixel. Rows are split
// across one worker per CPU; workers only read the polyhedron, so no
// locking is needed, and the WaitGroup joins them before the buffer is
// handed to the GL upload.
func Render(f *Frame, p *die.Polyhedron, mode Mode) {
	orient := p.Orientation()
	inv := orient.Conjugate()
	eye := math.Vec3{Z: cameraDist}
	localEye := inv.Rotate(eye)

	tanHalf := float32(gomath.Tan(fovY / 2))
	aspect := float32(f.W) / float32(f.H)

	workers := runtime.NumCPU()
	if workers > f.H {
		workers = f.H
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for y := w; y < f.H; y += workers {
				renderRow(f, p, mode, y, localEye, inv, orient, tanHalf, aspect)
			}
		}(w)
	}
	wg.Wait()
}

func renderRow(f *Frame, p *die.Polyhedron, mode Mode, y int, localEye math.Vec3, inv, orient math.Quat, tanHalf, aspect float32) {
	ny := (1 - 2*(float32(y)+0.5)/float32(f.H)) * tanHalf
	row := f.Pix[y*f.W*4:]
	for x := 0; x < f.W; x++ {
		nx := (2*(float32(x)+0.5)/float32(f.W) - 1) * tanHalf * aspect
		dir := math.Vec3{X: nx, Y: ny, Z: -1}.Normalize()

		c := background
		switch mode {
		case ModePolyhedron:
			c = shadePolyhedron(p, localEye, inv.Rotate(dir), orient, dir)
		case ModeSphere:
			c = shadeSphere(p, dir, inv)
		}

		o := x * 4
		row[o+0] = toByte(c.X)
		row[o+1] = toByte(c.Y)
		row[o+2] = toByte(c.Z)
		row[o+3] = 255
	}
}

// shadePolyhedron clips the body-frame ray against the half-spaces and
// lights the entry point. A miss renders as background.
func shadePolyhedron(p *die.Polyhedron, localOrigin, localDir math.Vec3, orient math.Quat, worldDir math.Vec3) math.Vec3 {
	hit, ok := p.IntersectLocal(localOrigin, localDir)
	if !ok {
		return background
	}
	edge := edgeBlend(p.EdgeDistance(hit.Point, hit.Face), polyEdgeWidth)
	worldNormal := orient.Rotate(hit.Normal)
	return Shade(hit.Face, worldNormal, worldDir.Neg(), edge)
}

// shadeSphere hits the unit sphere and colors by the Voronoi cell of the
// surface normal, using the classification margin as edge proximity.
func shadeSphere(p *die.Polyhedron, worldDir math.Vec3, inv math.Quat) math.Vec3 {
	origin := math.Vec3{Z: cameraDist}
	b := origin.Dot(worldDir)
	c := origin.Dot(origin) - sphereRadius*sphereRadius
	disc := b*b - c
	if disc < 0 {
		return background
	}
	t := -b - float32(gomath.Sqrt(float64(disc)))
	if t < 0 {
		return background
	}
	worldNormal := origin.Add(worldDir.Scale(t)).Scale(1 / sphereRadius)
	face, margin := p.NearestSeed(inv.Rotate(worldNormal))
	edge := edgeBlend(margin, sphereEdgeWidth)
	return Shade(face, worldNormal, worldDir.Neg(), edge)
}
