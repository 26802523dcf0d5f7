// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Quat is a quaternion with X, Y, Z and W components.
// The zero value is nil (all zeros), not the identity:
// call [Quat.SetIdentity] or check [Quat.IsNil].
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the given components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuatAxisAngle returns a new quaternion from the given axis and
// angle rotation (in radians).
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	q := Quat{}
	q.SetFromAxisAngle(axis, angle)
	return q
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

// IsIdentity returns whether this quaternion is the identity rotation.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// IsNil returns whether this quaternion is the zero value
// (all components zero, which is not a valid rotation).
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// SetFromAxisAngle sets this quaternion from the given rotation axis
// (assumed normalized) and angle (in radians).
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	s := Sin(angle / 2)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = Cos(angle / 2)
}

// Mul returns this quaternion multiplied by the other given quaternion,
// composing the rotations (other is applied first).
func (q Quat) Mul(other Quat) Quat {
	return NewQuat(
		q.W*other.X+q.X*other.W+q.Y*other.Z-q.Z*other.Y,
		q.W*other.Y+q.Y*other.W+q.Z*other.X-q.X*other.Z,
		q.W*other.Z+q.Z*other.W+q.X*other.Y-q.Y*other.X,
		q.W*other.W-q.X*other.X-q.Y*other.Y-q.Z*other.Z,
	)
}

// SetMul multiplies this quaternion by the other given quaternion
// in place, composing the rotations (other is applied first).
func (q *Quat) SetMul(other Quat) {
	*q = q.Mul(other)
}

// Conjugate returns the conjugate of this quaternion, which is the
// inverse rotation for unit quaternions.
func (q Quat) Conjugate() Quat {
	return NewQuat(-q.X, -q.Y, -q.Z, q.W)
}

// Length returns the length of this quaternion.
func (q Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize normalizes this quaternion to unit length in place.
// A nil quaternion normalizes to the identity.
func (q *Quat) Normalize() {
	l := q.Length()
	if l == 0 {
		q.SetIdentity()
		return
	}
	inv := 1 / l
	q.X *= inv
	q.Y *= inv
	q.Z *= inv
	q.W *= inv
}
