// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

// System owns the simulated bodies and steps the ones that have been
// added to it. All methods are meant to be called from the single
// frame-processing goroutine; the system does no locking of its own.
type System struct {

	// acceleration applied to dynamic bodies every step
	Gravity Vec3

	bodies []*Body
	added  map[BodyID]bool
	nextID BodyID
}

// NewSystem returns a new empty system with conventional gravity.
func NewSystem() *System {
	return &System{
		Gravity: V3(0, -9.81, 0),
		added:   map[BodyID]bool{},
	}
}

// CreateBody creates a new body with the given motion type and initial
// state. The body is not part of the simulation until it is added
// through the [BodyInterface].
func (sys *System) CreateBody(motion MotionType, state State) *Body {
	b := &Body{Motion: motion, State: state, id: sys.nextID}
	b.State.Defaults()
	sys.nextID++
	sys.bodies = append(sys.bodies, b)
	return b
}

// CreateCharacter creates a character backed by a new dynamic body with
// the given initial state, and adds that body to the simulation.
func (sys *System) CreateCharacter(state State) *Character {
	b := sys.CreateBody(Dynamic, state)
	sys.BodyInterface().AddBody(b.id)
	return &Character{body: b}
}

// BodyInterface returns the system's body-management interface.
func (sys *System) BodyInterface() *BodyInterface {
	return &BodyInterface{sys: sys}
}

// Step advances all added bodies by the given timestep (in seconds):
// dynamic bodies accelerate under gravity, and dynamic and kinematic
// bodies move by their velocities.
func (sys *System) Step(dt float32) {
	for _, b := range sys.bodies {
		if !sys.added[b.id] || b.Motion == Static {
			continue
		}
		if b.Motion == Dynamic {
			b.State.LinVel = b.State.LinVel.Add(sys.Gravity.MulScalar(dt))
		}
		b.State.StepByLinVel(dt)
		b.State.StepByAngVel(dt)
	}
}

// BodyInterface adds and removes bodies from a [System] and answers
// membership queries.
type BodyInterface struct {
	sys *System
}

// AddBody adds the body with the given identifier to the simulation.
func (bi *BodyInterface) AddBody(id BodyID) {
	bi.sys.added[id] = true
}

// RemoveBody removes the body with the given identifier from the
// simulation. The body itself remains valid and can be re-added.
func (bi *BodyInterface) RemoveBody(id BodyID) {
	delete(bi.sys.added, id)
}

// IsAdded reports whether the body with the given identifier is
// currently added to the simulation.
func (bi *BodyInterface) IsAdded(id BodyID) bool {
	return bi.sys.added[id]
}
