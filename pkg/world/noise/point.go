package noise

import "github.com/go-gl/mathgl/mgl32"

// Point2f is a world-space sample position.
type Point2f struct {
	X, Y float32
}

// Pt is shorthand for Point2f{X: x, Y: y}.
func Pt(x, y float32) Point2f {
	return Point2f{X: x, Y: y}
}

// Vec2 returns p as an mgl32 vector.
func (p Point2f) Vec2() mgl32.Vec2 {
	return mgl32.Vec2{p.X, p.Y}
}

func fromVec2(v mgl32.Vec2) Point2f {
	return Point2f{X: v[0], Y: v[1]}
}

// Scale multiplies both coordinates by f.
func (p Point2f) Scale(f float32) Point2f {
	return fromVec2(p.Vec2().Mul(f))
}

// Add returns p + q.
func (p Point2f) Add(q Point2f) Point2f {
	return fromVec2(p.Vec2().Add(q.Vec2()))
}

// Dist returns the euclidean distance between p and q.
func (p Point2f) Dist(q Point2f) float32 {
	return p.Vec2().Sub(q.Vec2()).Len()
}

// Range is the closed interval [Min, Max] a Noise guarantees for every input.
type Range struct {
	Min float32 `json:"min"`
	Max float32 `json:"max"`
}

// Contains reports whether v lies inside r, bounds included.
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp pins v into r.
func (r Range) Clamp(v float32) float32 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Width is Max - Min.
func (r Range) Width() float32 {
	return r.Max - r.Min
}
