// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/sportgl/sport/math32"

// Conversions between the simulation-side and render-side vector and
// quaternion representations. These are pure field-by-field relabelings
// of the same scalar components: no normalization or validation is done
// in either direction. Each has an allocating form and a Set form that
// mutates a caller-supplied output, for per-frame code that must not
// allocate.

// ToRenderVector copies a simulation location vector to a new
// render-side vector.
func ToRenderVector(v RVec3) math32.Vector3d {
	return math32.Vec3d(v.X, v.Y, v.Z)
}

// SetRenderVector copies a simulation location vector into the given
// render-side vector.
func SetRenderVector(out *math32.Vector3d, v RVec3) {
	out.Set(v.X, v.Y, v.Z)
}

// ToRenderVec3 copies a simulation single-precision vector to a new
// render-side vector.
func ToRenderVec3(v Vec3) math32.Vector3 {
	return math32.Vec3(v.X, v.Y, v.Z)
}

// SetRenderVec3 copies a simulation single-precision vector into the
// given render-side vector.
func SetRenderVec3(out *math32.Vector3, v Vec3) {
	out.Set(v.X, v.Y, v.Z)
}

// ToRenderQuat copies a simulation quaternion to a new render-side
// quaternion.
func ToRenderQuat(q Quat) math32.Quat {
	return math32.NewQuat(q.X, q.Y, q.Z, q.W)
}

// SetRenderQuat copies a simulation quaternion into the given
// render-side quaternion.
func SetRenderQuat(out *math32.Quat, q Quat) {
	out.Set(q.X, q.Y, q.Z, q.W)
}

// ToLocationVector copies a render-side location vector to a new
// simulation location vector.
func ToLocationVector(v math32.Vector3d) RVec3 {
	return RV3(v.X, v.Y, v.Z)
}

// SetLocationVector copies a render-side location vector into the given
// simulation location vector.
func SetLocationVector(out *RVec3, v math32.Vector3d) {
	out.Set(v.X, v.Y, v.Z)
}

// ToPhysicsVec3 copies a render-side vector to a new simulation
// single-precision vector.
func ToPhysicsVec3(v math32.Vector3) Vec3 {
	return V3(v.X, v.Y, v.Z)
}

// SetPhysicsVec3 copies a render-side vector into the given simulation
// single-precision vector.
func SetPhysicsVec3(out *Vec3, v math32.Vector3) {
	out.Set(v.X, v.Y, v.Z)
}

// ToPhysicsQuat copies a render-side quaternion to a new simulation
// quaternion.
func ToPhysicsQuat(q math32.Quat) Quat {
	out := Quat{}
	out.Set(q.X, q.Y, q.Z, q.W)
	return out
}

// SetPhysicsQuat copies a render-side quaternion into the given
// simulation quaternion.
func SetPhysicsQuat(out *Quat, q math32.Quat) {
	out.Set(q.X, q.Y, q.Z, q.W)
}
