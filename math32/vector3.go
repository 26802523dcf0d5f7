// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the
// given scalar value.
func Vector3Scalar(s float32) Vector3 {
	return Vector3{X: s, Y: s, Z: s}
}

// Set sets this vector X, Y and Z components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector3) SetScalar(s float32) {
	v.X = s
	v.Y = s
	v.Z = s
}

// SetZero sets all components to zero.
func (v *Vector3) SetZero() {
	v.SetScalar(0)
}

// Dim returns this vector component by dimension index (0 = X, 1 = Y, 2 = Z).
func (v Vector3) Dim(dim int) float32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("dim is out of range")
	}
}

// SetDim sets this vector component value by dimension index.
func (v *Vector3) SetDim(dim int, value float32) {
	switch dim {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic("dim is out of range")
	}
}

// Add adds the other given vector to this one and returns the result.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vec3(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// SetAdd adds the other given vector to this one in place.
func (v *Vector3) SetAdd(other Vector3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vec3(v.X-other.X, v.Y-other.Y, v.Z-other.Z)
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vec3(v.X*s, v.Y*s, v.Z*s)
}

// Negate returns the vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vec3(-v.X, -v.Y, -v.Z)
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// LengthSquared returns the length squared of this vector.
func (v Vector3) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the length of this vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normal returns this vector divided by its length (its unit vector).
func (v Vector3) Normal() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.MulScalar(1 / l)
}

// Cross returns the cross product of this vector with the other given vector.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vec3(
		v.Y*other.Z-v.Z*other.Y,
		v.Z*other.X-v.X*other.Z,
		v.X*other.Y-v.Y*other.X,
	)
}

// MulQuat returns this vector rotated by the given quaternion.
func (v Vector3) MulQuat(q Quat) Vector3 {
	// t = 2 * cross(q.xyz, v); v' = v + q.w * t + cross(q.xyz, t)
	qv := Vec3(q.X, q.Y, q.Z)
	t := qv.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W)).Add(qv.Cross(t))
}

// Lerp interpolates linearly between this vector at t=0 and the other
// given vector at t=1, componentwise, and returns the result.
// Components equal in both vectors come through exactly, with no
// rounding error, per [Lerp].
func (v Vector3) Lerp(other Vector3, t float32) Vector3 {
	return Vec3(
		Lerp(t, v.X, other.X),
		Lerp(t, v.Y, other.Y),
		Lerp(t, v.Z, other.Z),
	)
}

// SetLerp sets this vector to the componentwise linear interpolation
// between v0 at t=0 and v1 at t=1. The receiver may be v0 or v1.
func (v *Vector3) SetLerp(t float32, v0, v1 Vector3) {
	*v = v0.Lerp(v1, t)
}

// ToSpherical converts this vector in place from Cartesian coordinates
// to spherical coordinates (r, theta, phi) per ISO 80000:
//   - X becomes r, the distance from the origin, in [0, +Inf).
//   - Y becomes theta, the polar angle (in radians) measured from the
//     +Z axis, in [0, Pi].
//   - Z becomes phi, the azimuthal angle (in radians) measured from the
//     +X axis to the projection of the vector onto the X-Y plane,
//     in [-Pi, Pi].
func (v *Vector3) ToSpherical() {
	xx := float64(v.X)
	yy := float64(v.Y)
	zz := float64(v.Z)
	sumSq := xx*xx + yy*yy
	rxy := sqrt64(sumSq)
	phi := atan264(yy, xx)
	theta := atan264(rxy, zz)
	r := sqrt64(sumSq + zz*zz)

	v.X = float32(r)
	v.Y = float32(theta)
	v.Z = float32(phi)
}
