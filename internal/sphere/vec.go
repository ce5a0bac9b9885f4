// Package sphere implements the direction math shared by every conversion:
// cube face orientations, the inverse face lookup and the two latitude
// conventions used when walking a panorama.
package sphere

import "math"

// Vec3 is a direction in 3D space. It is not required to be unit length.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Scale returns the vector multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Length returns the Euclidean length of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if v has zero length.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return v.Scale(1 / length)
}

// Abs returns the component-wise absolute value.
func (v Vec3) Abs() Vec3 {
	return Vec3{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// MaxAbs returns the largest absolute component (the infinity norm).
func (v Vec3) MaxAbs() float64 {
	a := v.Abs()
	return max(a.X, a.Y, a.Z)
}

// Max returns the component-wise maximum of v and w.
func (v Vec3) Max(w Vec3) Vec3 {
	return Vec3{X: max(v.X, w.X), Y: max(v.Y, w.Y), Z: max(v.Z, w.Z)}
}
