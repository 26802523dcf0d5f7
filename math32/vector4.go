// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector4 is a vector with X, Y, Z and W components, used here mostly
// for linear RGBA colors (red in X, alpha in W).
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4Scalar returns a new [Vector4] with all components set to the
// given scalar value.
func Vector4Scalar(s float32) Vector4 {
	return Vector4{X: s, Y: s, Z: s, W: s}
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3]
// and w component.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	return Vec4(v.X, v.Y, v.Z, w)
}

// Set sets this vector X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector4) SetScalar(s float32) {
	v.X = s
	v.Y = s
	v.Z = s
	v.W = s
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vec4(v.X*s, v.Y*s, v.Z*s, v.W*s)
}
