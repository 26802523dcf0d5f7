// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sportgl/sport/math32"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("FFFFFFFF")
	assert.NoError(t, err)
	assert.Equal(t, math32.Vec4(1, 1, 1, 1), c)

	c, err = FromHex("00000000")
	assert.NoError(t, err)
	assert.Equal(t, math32.Vec4(0, 0, 0, 0), c)

	// alpha is linear in the input byte, no gamma
	c, err = FromHex("000000FF")
	assert.NoError(t, err)
	assert.Equal(t, float32(1), c.W)

	c, err = FromHex("00000080")
	assert.NoError(t, err)
	assert.InDelta(t, 128.0/255, c.W, 1.0e-6)

	// color channels are gamma-linearized
	c, err = FromHex("80000000")
	assert.NoError(t, err)
	assert.InDelta(t, math32.Pow(128.0/255, Gamma), c.X, 1.0e-6)
	assert.Equal(t, float32(0), c.Y)

	// red is the most-significant byte
	c, err = FromHex("FF0000FF")
	assert.NoError(t, err)
	assert.Equal(t, Red, c)
}

func TestFromHexErrors(t *testing.T) {
	_, err := FromHex("nothex")
	assert.Error(t, err)

	// more than 32 bits
	_, err = FromHex("1FFFFFFFF")
	assert.Error(t, err)

	_, err = FromHex("")
	assert.Error(t, err)
}

func TestSRGBToLinear(t *testing.T) {
	assert.Equal(t, float32(0), SRGBToLinear(0))
	assert.Equal(t, float32(1), SRGBToLinear(1))
	assert.Less(t, SRGBToLinear(0.5), float32(0.5))
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 1, Luminance(1, 1, 1), 1.0e-6)
	assert.Equal(t, float32(0), Luminance(0, 0, 0))
	assert.InDelta(t, 0.587, Luminance(0, 1, 0), 1.0e-6)
}
