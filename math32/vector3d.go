// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector3d is a 3D vector/point with X, Y and Z float64 components,
// for world-space locations that need extended precision in large worlds.
type Vector3d struct {
	X float64
	Y float64
	Z float64
}

// Vec3d returns a new [Vector3d] with the given x, y and z components.
func Vec3d(x, y, z float64) Vector3d {
	return Vector3d{X: x, Y: y, Z: z}
}

// Set sets this vector X, Y and Z components.
func (v *Vector3d) Set(x, y, z float64) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetZero sets all components to zero.
func (v *Vector3d) SetZero() {
	v.Set(0, 0, 0)
}

// SetFromVector3 sets this vector from a (float32) [Vector3].
func (v *Vector3d) SetFromVector3(vf Vector3) {
	v.X = float64(vf.X)
	v.Y = float64(vf.Y)
	v.Z = float64(vf.Z)
}

// Vector3 returns this vector narrowed to a (float32) [Vector3].
func (v Vector3d) Vector3() Vector3 {
	return Vec3(float32(v.X), float32(v.Y), float32(v.Z))
}

// Add adds the other given vector to this one and returns the result.
func (v Vector3d) Add(other Vector3d) Vector3d {
	return Vec3d(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector3d) Sub(other Vector3d) Vector3d {
	return Vec3d(v.X-other.X, v.Y-other.Y, v.Z-other.Z)
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result.
func (v Vector3d) MulScalar(s float64) Vector3d {
	return Vec3d(v.X*s, v.Y*s, v.Z*s)
}
