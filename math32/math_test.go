// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-6

func TestLerp(t *testing.T) {
	// degenerate interpolation is bit-exact, no rounding drift
	assert.Equal(t, float32(5), Lerp(0.37, 5, 5))
	assert.Equal(t, float32(-0.1), Lerp(1000, -0.1, -0.1))

	assert.Equal(t, float32(2), Lerp(0, 2, 7))
	assert.Equal(t, float32(7), Lerp(1, 2, 7))
	assert.InDelta(t, 4.5, Lerp(0.5, 2, 7), standardTol)

	// extrapolation
	assert.InDelta(t, 12, Lerp(2, 2, 7), standardTol)
}

func TestModulo(t *testing.T) {
	assert.Equal(t, float32(3), Modulo(-1, 4))
	assert.Equal(t, float32(3), Modulo(7, 4))
	assert.Equal(t, float32(0), Modulo(8, 4))
	assert.InDelta(t, 0.5, Modulo(-3.5, 4), standardTol)

	for _, x := range []float32{-100.25, -4, -0.5, 0, 0.5, 4, 99.75} {
		for _, m := range []float32{0.5, 1, 4, 10.5} {
			r := Modulo(x, m)
			assert.GreaterOrEqual(t, r, float32(0), "Modulo(%g, %g)", x, m)
			assert.Less(t, r, m, "Modulo(%g, %g)", x, m)
		}
	}

	assert.Panics(t, func() { Modulo(1, 0) })
	assert.Panics(t, func() { Modulo(1, -4) })
}

func TestModuloInt(t *testing.T) {
	assert.Equal(t, 3, ModuloInt(-1, 4))
	assert.Equal(t, 3, ModuloInt(7, 4))
	assert.Equal(t, 0, ModuloInt(-8, 4))

	for x := -9; x <= 9; x++ {
		for _, m := range []int{1, 2, 5} {
			r := ModuloInt(x, m)
			assert.GreaterOrEqual(t, r, 0)
			assert.Less(t, r, m)
			assert.Equal(t, 0, ModuloInt(x-r, m), "congruence of ModuloInt(%d, %d)", x, m)
		}
	}

	assert.Panics(t, func() { ModuloInt(1, 0) })
}

func TestStandardizeAngle(t *testing.T) {
	assert.Equal(t, float32(0), StandardizeAngle(0))
	assert.Equal(t, float32(-Pi), StandardizeAngle(Pi))
	assert.InDelta(t, Pi/2, StandardizeAngle(Pi/2), standardTol)
	assert.InDelta(t, Pi/2, StandardizeAngle(Pi/2+TwoPi), 1.0e-5)
	assert.InDelta(t, Pi/2, StandardizeAngle(-3*Pi/2), 1.0e-5)

	// 3*Pi is congruent to +-Pi; float32 rounding decides the sign
	assert.InDelta(t, Pi, Abs(StandardizeAngle(3*Pi)), 1.0e-5)

	for _, a := range []float32{-100, -TwoPi, -1, 0, 1, TwoPi, 100} {
		r := StandardizeAngle(a)
		assert.GreaterOrEqual(t, r, float32(-Pi))
		assert.Less(t, r, float32(Pi))
		// congruent to the input mod 2*Pi
		diff := Modulo(a-r, TwoPi)
		if diff > Pi {
			diff = TwoPi - diff
		}
		assert.InDelta(t, 0, diff, 1.0e-4, "StandardizeAngle(%g)", a)
	}
}
