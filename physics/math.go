// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics is a minimal in-memory rigid-body simulation that the
// visualization layer binds to: bodies, characters, a system with a
// body-membership interface, and the simulation-side vector and
// quaternion representations.
//
// The simulation keeps its own math types, separate from the render-side
// [math32] ones: locations are extended-precision [RVec3] so large world
// coordinates survive, and [Vec3]/[Quat] are plain float32. Conversions
// between the two representations live in convert.go.
package physics

// RVec3 is the simulation's extended-precision (float64) 3-vector,
// used for world-space locations.
type RVec3 struct {
	X float64
	Y float64
	Z float64
}

// RV3 returns a new [RVec3] with the given x, y and z components.
func RV3(x, y, z float64) RVec3 {
	return RVec3{X: x, Y: y, Z: z}
}

// Set sets this vector X, Y and Z components.
func (v *RVec3) Set(x, y, z float64) {
	v.X = x
	v.Y = y
	v.Z = z
}

// Add adds the other given vector to this one and returns the result.
func (v RVec3) Add(other RVec3) RVec3 {
	return RV3(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result.
func (v RVec3) MulScalar(s float64) RVec3 {
	return RV3(v.X*s, v.Y*s, v.Z*s)
}

// Vec3 is the simulation's single-precision 3-vector, used for
// velocities and other local quantities.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// V3 returns a new [Vec3] with the given x, y and z components.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Set sets this vector X, Y and Z components.
func (v *Vec3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// Add adds the other given vector to this one and returns the result.
func (v Vec3) Add(other Vec3) Vec3 {
	return V3(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result.
func (v Vec3) MulScalar(s float32) Vec3 {
	return V3(v.X*s, v.Y*s, v.Z*s)
}

// Quat is the simulation's rotation quaternion.
// The zero value is nil, not the identity.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Set sets this quaternion's components.
func (q *Quat) Set(x, y, z, w float32) {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
}

// SetIdentity sets this quaternion to the identity rotation.
func (q *Quat) SetIdentity() {
	q.Set(0, 0, 0, 1)
}

// IsNil returns whether this quaternion is the zero value
// (all components zero, which is not a valid rotation).
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}
