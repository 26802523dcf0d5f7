// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view keeps render geometry synchronized, frame by frame, with
// the pose of entities in a physics simulation.
package view

import (
	"fmt"

	"github.com/sportgl/sport/colors"
	"github.com/sportgl/sport/math32"
	"github.com/sportgl/sport/physics"
	"github.com/sportgl/sport/scene"
)

// axisColors maps axis indices to colors.
var axisColors = [3]math32.Vector4{
	colors.Red,   // X
	colors.Green, // Y
	colors.Blue,  // Z
}

// LocalAxis visualizes one of the local axes of a simulated entity, or
// else a "floating" arrow bound to nothing.
//
// The bound [physics.Object] is a non-owning alias: the simulation may
// remove or destroy the underlying entity at any time, and the owner of
// the LocalAxis is expected to notice via [LocalAxis.WasRemovedFrom]
// (directly or through [scene.Scene.PruneRemoved]) and hide it.
type LocalAxis struct {
	scene.Geometry

	// entity to visualize; nil for a floating axis
	obj physics.Object

	// which axis: 0 is X, 1 is Y, 2 is Z
	axisIndex int

	// length of the axis in world units
	length float32

	// most recent pose of the entity. These are scratch targets
	// reused every frame to avoid per-frame allocation, which is safe
	// only under the single-goroutine frame ordering.
	lastLocation    physics.RVec3
	lastOrientation physics.Quat
}

// NewLocalAxis returns a new LocalAxis visualizing the given local axis
// of the given entity (nil for a floating axis) with the given length
// in world units, and makes it visible in the given scene.
// It panics if axisIndex is not 0, 1, or 2, or if length is negative.
func NewLocalAxis(sc *scene.Scene, obj physics.Object, axisIndex int, length float32) *LocalAxis {
	if axisIndex < 0 || axisIndex > 2 {
		panic(fmt.Sprintf("view.NewLocalAxis: axisIndex %d is out of range", axisIndex))
	}
	if length < 0 {
		panic(fmt.Sprintf("view.NewLocalAxis: length %g is negative", length))
	}
	la := &LocalAxis{
		Geometry:  scene.NewGeometry(),
		obj:       obj,
		axisIndex: axisIndex,
		length:    length,
	}
	la.lastOrientation.SetIdentity()
	la.SetColor(axisColors[axisIndex])
	la.SetMesh(scene.ArrowMesh(axisIndex))
	la.SetProgram(scene.ProgramUnshadedMonochrome)
	la.SetScale(length)
	sc.MakeVisible(la)
	return la
}

// Object returns the bound entity, or nil for a floating axis.
func (la *LocalAxis) Object() physics.Object {
	return la.obj
}

// AxisIndex returns which local axis is visualized.
func (la *LocalAxis) AxisIndex() int {
	return la.axisIndex
}

// Length returns the configured axis length in world units.
func (la *LocalAxis) Length() float32 {
	return la.length
}

// UpdateAndRender refreshes the mesh-to-world transform from the bound
// entity's current pose and then performs the generic render step.
func (la *LocalAxis) UpdateAndRender() {
	la.updateTransform()
	la.Geometry.UpdateAndRender()
}

// WasRemovedFrom reports whether the bound entity has been removed from
// the given system.
//
// A floating axis is never removed. A [physics.CharacterVirtual] has no
// body in any system, so removal cannot be detected and this always
// reports false for it: owners of such axes must hide them explicitly.
func (la *LocalAxis) WasRemovedFrom(sys *physics.System) bool {
	switch obj := la.obj.(type) {
	case nil:
		return false

	case *physics.Body:
		return !sys.BodyInterface().IsAdded(obj.ID())

	case *physics.Character:
		return !sys.BodyInterface().IsAdded(obj.BodyID())

	case *physics.CharacterVirtual:
		return false

	default:
		panic(fmt.Sprintf("view.LocalAxis: unrecognized physics object %T", la.obj))
	}
}

// updateTransform recomputes the mesh-to-world transform from the bound
// entity's current pose.
func (la *LocalAxis) updateTransform() {
	switch obj := la.obj.(type) {
	case nil:
		// floating axis: location and orientation are controlled
		// externally, leave them as they are

	case *physics.Body:
		obj.PositionAndRotation(&la.lastLocation, &la.lastOrientation)
		la.applyLastPose()

	case *physics.Character:
		obj.PositionAndRotation(&la.lastLocation, &la.lastOrientation, false)
		la.applyLastPose()

	case *physics.CharacterVirtual:
		obj.PositionAndRotation(&la.lastLocation, &la.lastOrientation)
		la.applyLastPose()

	default:
		panic(fmt.Sprintf("view.LocalAxis: unrecognized physics object %T", la.obj))
	}

	// scale always equals the configured length; re-assert every frame
	la.SetScale(la.length)
}

// applyLastPose publishes the cached pose to the render transform.
func (la *LocalAxis) applyLastPose() {
	physics.SetRenderVector(&la.Location, la.lastLocation)
	physics.SetRenderQuat(&la.Orientation, la.lastOrientation)
}
