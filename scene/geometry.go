// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene is the render-collaborator boundary of the
// visualization layer: the base [Geometry] primitive with its
// mesh-to-world transform, the [Mesh] data it draws, and the [Scene]
// visibility registry that the per-frame update walks.
package scene

import (
	"github.com/sportgl/sport/colors"
	"github.com/sportgl/sport/math32"
	"github.com/sportgl/sport/physics"
)

// Drawable is a renderable primitive registered with a [Scene].
type Drawable interface {

	// AsGeometry returns the primitive's base [Geometry].
	AsGeometry() *Geometry

	// UpdateAndRender refreshes the primitive's state and then
	// performs the generic render step. Called once per frame by
	// [Scene.UpdateAndRender].
	UpdateAndRender()

	// WasRemovedFrom reports whether the simulated entity this
	// primitive visualizes has been removed from the given system.
	// It does not mutate anything; an external scene-management pass
	// ([Scene.PruneRemoved]) acts on the signal.
	WasRemovedFrom(sys *physics.System) bool
}

// Geometry is the base state shared by all renderable primitives:
// the mesh-to-world transform (location, orientation, uniform scale),
// the color, the mesh, and the name of the shading program.
type Geometry struct {

	// world-space location, extended precision for large worlds
	Location math32.Vector3d

	// world-space orientation
	Orientation math32.Quat

	// uniform mesh-to-world scale factor
	Scale float32

	// linear-colorspace color
	Color math32.Vector4

	// the mesh to draw
	Mesh *Mesh

	// name of the shading program used to draw the mesh
	Program string
}

// NewGeometry returns a Geometry with the identity transform,
// unit scale, and white color.
func NewGeometry() Geometry {
	g := Geometry{Scale: 1, Color: colors.White, Program: ProgramPhong}
	g.Orientation.SetIdentity()
	return g
}

// Names of the built-in shading programs.
const (
	ProgramPhong              = "Phong/Monochrome"
	ProgramUnshadedMonochrome = "Unshaded/Monochrome"
)

// AsGeometry returns this geometry itself.
func (g *Geometry) AsGeometry() *Geometry {
	return g
}

// SetLocation sets the world-space location.
func (g *Geometry) SetLocation(loc math32.Vector3d) *Geometry {
	g.Location = loc
	return g
}

// SetOrientation sets the world-space orientation.
func (g *Geometry) SetOrientation(ori math32.Quat) *Geometry {
	g.Orientation = ori
	return g
}

// SetScale sets the uniform mesh-to-world scale factor.
func (g *Geometry) SetScale(scale float32) *Geometry {
	g.Scale = scale
	return g
}

// SetColor sets the color.
func (g *Geometry) SetColor(color math32.Vector4) *Geometry {
	g.Color = color
	return g
}

// SetMesh sets the mesh to draw.
func (g *Geometry) SetMesh(mesh *Mesh) *Geometry {
	g.Mesh = mesh
	return g
}

// SetProgram sets the name of the shading program.
func (g *Geometry) SetProgram(name string) *Geometry {
	g.Program = name
	return g
}

// UpdateAndRender is the generic render step. The base geometry has no
// per-frame state of its own to refresh; drawing is performed by
// whatever renderer consumes the scene.
func (g *Geometry) UpdateAndRender() {}

// WasRemovedFrom reports false: a plain geometry visualizes no
// simulated entity and is never removed.
func (g *Geometry) WasRemovedFrom(sys *physics.System) bool {
	return false
}
