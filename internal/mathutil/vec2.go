package mathutil

import "math"

// Vec2 is a 2-component vector.
type Vec2 [2]float64

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a[0] - b[0], a[1] - b[1]}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

func (a Vec2) Dot(b Vec2) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	return Vec2{v[0] / l, v[1] / l}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v[0], -v[1]}
}
