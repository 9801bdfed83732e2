package die

import (
	"math/rand"
	"time"

	"github.com/bd/arbitrary-dice/pkg/math"
)

// DefaultRollDuration is how long a roll takes from trigger to settle.
const DefaultRollDuration = 1200 * time.Millisecond

// Result is a settled roll: the 1-based face that ended up toward the
// viewer and the face count it was rolled out of.
type Result struct {
	Face  int
	Count int
}

// animation is the in-flight roll. Its zero lifetime is one roll: built
// by RollTo, interpolated by Advance, dropped when t reaches 1.
type animation struct {
	start     math.Quat
	end       math.Quat
	startedAt time.Time
	duration  time.Duration
	face      int
}

// Animator owns the die orientation. It is a two-state machine, idle or
// rolling, advanced once per frame; triggering a roll while one is in
// flight replaces it wholesale, starting from the orientation as
// interpolated at that instant so back-to-back rolls compose without a
// visible jump.
type Animator struct {
	poly     *Polyhedron
	duration time.Duration
	rng      *rand.Rand
	anim     *animation
}

// NewAnimator creates an animator for p. Rolls picked by RollRandom are
// deterministic with respect to seed.
func NewAnimator(p *Polyhedron, duration time.Duration, seed int64) *Animator {
	if duration <= 0 {
		duration = DefaultRollDuration
	}
	return &Animator{
		poly:     p,
		duration: duration,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Rolling reports whether a roll is in flight.
func (a *Animator) Rolling() bool {
	return a.anim != nil
}

// Stop drops any in-flight roll, holding the orientation where it is.
func (a *Animator) Stop() {
	a.anim = nil
}

// RollTo starts a roll that settles face (wrapped modulo the active
// count) toward the viewer. Returns the wrapped face index.
func (a *Animator) RollTo(face int, now time.Time) int {
	face = a.poly.WrapFace(face)
	current := a.poly.Orientation()
	// Minimal rotation taking the face's current world direction onto
	// the viewer axis, composed onto the current orientation.
	delta := math.QuatBetween(a.poly.WorldNormal(face), TowardViewer)
	a.anim = &animation{
		start:     current,
		end:       delta.Mul(current).Normalize(),
		startedAt: now,
		duration:  a.duration,
		face:      face,
	}
	return face
}

// RollRandom rolls to a uniformly random face.
func (a *Animator) RollRandom(now time.Time) int {
	return a.RollTo(a.rng.Intn(a.poly.Count()), now)
}

// Advance moves an in-flight roll to time now, writing the interpolated
// orientation into the polyhedron. When the roll settles it holds the
// end orientation exactly, clears the animation, and returns the result
// with ok=true; in every other case ok is false.
func (a *Animator) Advance(now time.Time) (Result, bool) {
	if a.anim == nil {
		return Result{}, false
	}
	t := float32(now.Sub(a.anim.startedAt).Seconds() / a.anim.duration.Seconds())
	if t >= 1 {
		a.poly.SetOrientation(a.anim.end)
		res := Result{Face: a.anim.face + 1, Count: a.poly.Count()}
		a.anim = nil
		return res, true
	}
	if t < 0 {
		t = 0
	}
	a.poly.SetOrientation(a.anim.start.Slerp(a.anim.end, easeOutCubic(t)))
	return Result{}, false
}

// easeOutCubic remaps linear time to fast-then-slow motion, 1-(1-t)^3.
func easeOutCubic(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}
