// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/sportgl/sport/math32"

// State is the basic physical state of a simulated entity: location,
// orientation, and linear and angular velocity.
type State struct {

	// world-space location of the entity
	Pos RVec3

	// rotation specified as a Quat
	Quat Quat

	// linear velocity
	LinVel Vec3

	// angular velocity (axis scaled by radians per second)
	AngVel Vec3
}

// Defaults sets default values for fields that are at their nil values.
func (ps *State) Defaults() {
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// AngMotionMax is the maximum angular motion that can be taken per step.
const AngMotionMax = math32.Pi / 4

// StepByAngVel steps the Quat rotation from the angular velocity.
func (ps *State) StepByAngVel(step float32) {
	av := ToRenderVec3(ps.AngVel)
	ang := math32.Sqrt(av.Dot(av))
	if ang == 0 {
		return
	}

	// limit the angular motion
	if ang*step > AngMotionMax {
		ang = AngMotionMax / step
	}
	axis := av.MulScalar(1 / ang)
	dq := math32.NewQuatAxisAngle(axis, ang*step)
	q := dq.Mul(ToRenderQuat(ps.Quat))
	q.Normalize()
	SetPhysicsQuat(&ps.Quat, q)
}

// StepByLinVel steps the Pos from the linear velocity.
func (ps *State) StepByLinVel(step float32) {
	lv := ps.LinVel.MulScalar(step)
	ps.Pos = ps.Pos.Add(RV3(float64(lv.X), float64(lv.Y), float64(lv.Z)))
}
