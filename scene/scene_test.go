// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sportgl/sport/physics"
)

// fakeDrawable counts updates and reports a settable removal signal.
type fakeDrawable struct {
	Geometry

	updates int
	removed bool
}

func (f *fakeDrawable) UpdateAndRender() {
	f.updates++
}

func (f *fakeDrawable) WasRemovedFrom(sys *physics.System) bool {
	return f.removed
}

func TestSceneVisibility(t *testing.T) {
	sc := NewScene()
	a := &fakeDrawable{Geometry: NewGeometry()}
	b := &fakeDrawable{Geometry: NewGeometry()}

	sc.MakeVisible(a)
	sc.MakeVisible(b)
	sc.MakeVisible(a) // no-op
	assert.Len(t, sc.Visible(), 2)
	assert.True(t, sc.IsVisible(a))

	sc.UpdateAndRender()
	sc.UpdateAndRender()
	assert.Equal(t, 2, a.updates)
	assert.Equal(t, 2, b.updates)

	sc.Hide(a)
	assert.False(t, sc.IsVisible(a))
	assert.Len(t, sc.Visible(), 1)

	sc.UpdateAndRender()
	assert.Equal(t, 2, a.updates)
	assert.Equal(t, 3, b.updates)
}

func TestScenePruneRemoved(t *testing.T) {
	sys := physics.NewSystem()
	sc := NewScene()
	keep := &fakeDrawable{Geometry: NewGeometry()}
	gone := &fakeDrawable{Geometry: NewGeometry(), removed: true}

	sc.MakeVisible(keep)
	sc.MakeVisible(gone)

	assert.Equal(t, 1, sc.PruneRemoved(sys))
	assert.True(t, sc.IsVisible(keep))
	assert.False(t, sc.IsVisible(gone))

	// nothing left to prune
	assert.Equal(t, 0, sc.PruneRemoved(sys))
}

func TestArrowMesh(t *testing.T) {
	for axis := 0; axis < 3; axis++ {
		m := ArrowMesh(axis)
		assert.Equal(t, Lines, m.Topology)
		assert.Equal(t, 10, m.VertexCount())

		// shared cache: same mesh every time
		assert.Same(t, m, ArrowMesh(axis))

		// the tip is one unit along the axis
		tip := m.Positions[3:6]
		for dim := 0; dim < 3; dim++ {
			if dim == axis {
				assert.Equal(t, float32(1), tip[dim])
			} else {
				assert.Equal(t, float32(0), tip[dim])
			}
		}
	}
	assert.Panics(t, func() { ArrowMesh(3) })
	assert.Panics(t, func() { ArrowMesh(-1) })
}

func TestMeshCopyPositions(t *testing.T) {
	m := ArrowMesh(0)
	cp := m.CopyPositions()
	assert.Equal(t, m.Positions, cp)
	cp[0] = 99
	assert.NotEqual(t, m.Positions[0], cp[0])
}

func TestGeometryDefaults(t *testing.T) {
	g := NewGeometry()
	assert.True(t, g.Orientation.IsIdentity())
	assert.Equal(t, float32(1), g.Scale)
	assert.False(t, g.WasRemovedFrom(physics.NewSystem()))
}
