// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVector3InDelta(t *testing.T, want, got Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, standardTol)
	assert.InDelta(t, want.Y, got.Y, standardTol)
	assert.InDelta(t, want.Z, got.Z, standardTol)
}

func TestVector3Basic(t *testing.T) {
	v := Vec3(3, 4, 0)
	assert.Equal(t, float32(5), v.Length())
	assertVector3InDelta(t, Vec3(0.6, 0.8, 0), v.Normal())
	assert.Equal(t, Vec3(4, 6, 3), v.Add(Vec3(1, 2, 3)))
	assert.Equal(t, Vec3(6, 8, 0), v.MulScalar(2))
	assert.Equal(t, float32(11), v.Dot(Vec3(1, 2, 3)))
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))

	assert.Equal(t, float32(4), v.Dim(1))
	assert.Panics(t, func() { v.Dim(3) })
}

func TestVector3Lerp(t *testing.T) {
	v0 := Vec3(1, 5, -2)
	v1 := Vec3(3, 5, 2)

	// components equal in both endpoints come through exactly
	mid := v0.Lerp(v1, 0.37)
	assert.Equal(t, float32(5), mid.Y)

	assert.Equal(t, v0, v0.Lerp(v1, 0))
	assert.Equal(t, v1, v0.Lerp(v1, 1))
	assertVector3InDelta(t, Vec3(2, 5, 0), v0.Lerp(v1, 0.5))

	// output may alias an input
	out := v0
	out.SetLerp(0.5, out, v1)
	assertVector3InDelta(t, Vec3(2, 5, 0), out)
}

func TestVector3MulQuat(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0, 0, 1), Pi/2)
	assertVector3InDelta(t, Vec3(0, 1, 0), Vec3(1, 0, 0).MulQuat(q))
	assertVector3InDelta(t, Vec3(-1, 0, 0), Vec3(0, 1, 0).MulQuat(q))

	var id Quat
	id.SetIdentity()
	assert.Equal(t, Vec3(1, 2, 3), Vec3(1, 2, 3).MulQuat(id))
}

func TestVector3ToSpherical(t *testing.T) {
	v := Vec3(1, 0, 0)
	v.ToSpherical()
	assert.InDelta(t, 1, v.X, standardTol)    // r
	assert.InDelta(t, Pi/2, v.Y, standardTol) // polar angle from +Z
	assert.InDelta(t, 0, v.Z, standardTol)    // azimuth

	v = Vec3(0, 0, 1)
	v.ToSpherical()
	assert.InDelta(t, 1, v.X, standardTol)
	assert.InDelta(t, 0, v.Y, standardTol)

	v = Vec3(0, 2, 0)
	v.ToSpherical()
	assert.InDelta(t, 2, v.X, standardTol)
	assert.InDelta(t, Pi/2, v.Y, standardTol)
	assert.InDelta(t, Pi/2, v.Z, standardTol)

	v = Vec3(1, 1, 1)
	v.ToSpherical()
	assert.InDelta(t, Sqrt(3), v.X, standardTol)
	assert.InDelta(t, Atan2(Sqrt2, 1), v.Y, standardTol)
	assert.InDelta(t, Pi/4, v.Z, standardTol)
}

func TestQuat(t *testing.T) {
	var q Quat
	assert.True(t, q.IsNil())
	q.SetIdentity()
	assert.True(t, q.IsIdentity())
	assert.False(t, q.IsNil())
	assert.Equal(t, float32(1), q.Length())

	r := NewQuatAxisAngle(Vec3(0, 1, 0), Pi/3)
	assert.InDelta(t, 1, r.Length(), standardTol)

	// composing two quarter turns about Z equals a half turn
	h := NewQuatAxisAngle(Vec3(0, 0, 1), Pi/2)
	full := h.Mul(h)
	want := NewQuatAxisAngle(Vec3(0, 0, 1), Pi)
	assert.InDelta(t, want.X, full.X, standardTol)
	assert.InDelta(t, want.Y, full.Y, standardTol)
	assert.InDelta(t, want.Z, full.Z, standardTol)
	assert.InDelta(t, want.W, full.W, standardTol)

	n := NewQuat(0, 3, 0, 4)
	n.Normalize()
	assert.InDelta(t, 1, n.Length(), standardTol)
	assert.InDelta(t, 0.6, n.Y, standardTol)
}
