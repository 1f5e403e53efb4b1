// Package geom provides the geometric primitives used by the scene graph:
// vectors, 4x4 matrices, and the CSS-style box model.
package geom

import "math"

// Vec2 is a two-dimensional vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns the component-wise difference of v and other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Round returns v with both components rounded to the nearest integer.
func (v Vec2) Round() Vec2 {
	return Vec2{math.Round(v.X), math.Round(v.Y)}
}

// Vec3 is a three-dimensional vector.
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a four-dimensional (homogeneous) vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// PerspectiveDivide returns the projection of v onto the W=1 hyperplane.
// A vector with W=0 is returned unchanged.
func (v Vec4) PerspectiveDivide() Vec3 {
	if v.W == 0 {
		return Vec3{v.X, v.Y, v.Z}
	}
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}
}
