// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

// BodyID identifies a body within a [System].
type BodyID uint32

// MotionType describes how a body moves during [System.Step].
type MotionType int32

const (
	// Static bodies never move.
	Static MotionType = iota

	// Kinematic bodies move by their velocities but ignore gravity.
	Kinematic

	// Dynamic bodies move by their velocities and are affected by
	// gravity.
	Dynamic
)

// Body is a rigid body in a [System].
type Body struct {

	// how the body moves during stepping
	Motion MotionType

	// current physical state
	State State

	id BodyID
}

// ID returns the body's identifier within its system.
func (b *Body) ID() BodyID {
	return b.id
}

// PositionAndRotation reports the body's current world-space location
// and orientation in one combined query, writing into the given
// caller-supplied outputs.
func (b *Body) PositionAndRotation(loc *RVec3, ori *Quat) {
	*loc = b.State.Pos
	*ori = b.State.Quat
}

// SetPositionAndRotation sets the body's world-space location and
// orientation.
func (b *Body) SetPositionAndRotation(loc RVec3, ori Quat) {
	b.State.Pos = loc
	b.State.Quat = ori
}
