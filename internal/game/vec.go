package game

import "math"

// Vec2 is a vector in the movement plane. Z grows "down" the board, matching
// the floor's orientation as seen from above.
type Vec2 struct {
	X, Z float64
}

// Forward is the canonical heading a session starts with.
var Forward = Vec2{X: 1, Z: 0}

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{v.X + o.X, v.Z + o.Z} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Z - o.Z} }
func (v Vec2) Scale(s float64) Vec2   { return Vec2{v.X * s, v.Z * s} }
func (v Vec2) Dot(o Vec2) float64     { return v.X*o.X + v.Z*o.Z }
func (v Vec2) LenSq() float64         { return v.X*v.X + v.Z*v.Z }
func (v Vec2) Len() float64           { return math.Hypot(v.X, v.Z) }
func (v Vec2) Dist(o Vec2) float64    { return math.Hypot(v.X-o.X, v.Z-o.Z) }
func (v Vec2) IsZero() bool           { return v.X == 0 && v.Z == 0 }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Z + (o.Z-v.Z)*t}
}

// Normalize returns the unit vector in v's direction, or the zero vector if v
// has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Z / l}
}

// Rotate turns v by angle radians about the vertical axis. Positive angles are
// counter-clockwise when the board is viewed from above.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{
		X: v.X*c + v.Z*s,
		Z: -v.X*s + v.Z*c,
	}
}

// Heading is the facing angle for a direction: rotation about the vertical
// axis measured from +Z toward +X.
func (v Vec2) Heading() float64 {
	return math.Atan2(v.X, v.Z)
}
