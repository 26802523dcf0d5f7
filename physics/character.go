// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

// Character is a character controller backed by a regular body in the
// system. Its pose queries go through that body, and its membership in
// the system is the body's membership.
type Character struct {
	body *Body
}

// BodyID returns the identifier of the body backing this character.
func (c *Character) BodyID() BodyID {
	return c.body.id
}

// Body returns the body backing this character.
func (c *Character) Body() *Body {
	return c.body
}

// PositionAndRotation reports the character's current world-space
// location and orientation, writing into the given caller-supplied
// outputs. lockBodies is accepted for call-shape compatibility with
// simulations that lock bodies during queries; this in-memory
// simulation has no body locking and ignores it.
func (c *Character) PositionAndRotation(loc *RVec3, ori *Quat, lockBodies bool) {
	c.body.PositionAndRotation(loc, ori)
}

// CharacterVirtual is a character controller that is not backed by a
// body in any system: it keeps its own state and is stepped by its
// owner. Because it has no body, the system cannot report whether it
// has been removed; owners must retire its visualizations explicitly.
type CharacterVirtual struct {

	// current physical state
	State State
}

// NewCharacterVirtual returns a new virtual character with the given
// initial state.
func NewCharacterVirtual(state State) *CharacterVirtual {
	cv := &CharacterVirtual{State: state}
	cv.State.Defaults()
	return cv
}

// PositionAndRotation reports the virtual character's current
// world-space location and orientation, writing into the given
// caller-supplied outputs.
func (cv *CharacterVirtual) PositionAndRotation(loc *RVec3, ori *Quat) {
	*loc = cv.State.Pos
	*ori = cv.State.Quat
}

// SetPositionAndRotation sets the virtual character's world-space
// location and orientation.
func (cv *CharacterVirtual) SetPositionAndRotation(loc RVec3, ori Quat) {
	cv.State.Pos = loc
	cv.State.Quat = ori
}
