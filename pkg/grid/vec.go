package grid

import "math"

// Vec2 is a continuous world position or direction.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Length() float64   { return math.Sqrt(v.LengthSq()) }

// DistanceSq avoids the square root; range checks compare against a squared radius.
func (v Vec2) DistanceSq(o Vec2) float64 { return v.Sub(o).LengthSq() }
func (v Vec2) Distance(o Vec2) float64   { return v.Sub(o).Length() }

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle returns atan2(y, x) in (-π, π].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Lerp interpolates between v and o by t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// FromAngle returns the unit vector pointing at angle a.
func FromAngle(a float64) Vec2 {
	return Vec2{math.Cos(a), math.Sin(a)}
}
