// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides sRGB color decoding into the linear
// colorspace, and the canonical color constants used to tag
// visualization geometry.
package colors

import (
	"fmt"
	"strconv"

	"github.com/sportgl/sport/math32"
)

// Canonical linear-colorspace constants. The first three are the
// conventional axis colors: X is red, Y is green, Z is blue.
var (
	Red    = math32.Vec4(1, 0, 0, 1)
	Green  = math32.Vec4(0, 1, 0, 1)
	Blue   = math32.Vec4(0, 0, 1, 1)
	White  = math32.Vec4(1, 1, 1, 1)
	Black  = math32.Vec4(0, 0, 0, 1)
	Yellow = math32.Vec4(1, 1, 0, 1)
)

// Gamma is the exponent used to linearize sRGB channel values.
const Gamma = 2.2

// SRGBToLinear converts a single sRGB color channel in [0, 1]
// to the linear colorspace.
func SRGBToLinear(c float32) float32 {
	return math32.Pow(c, Gamma)
}

// FromHex converts an sRGB color string to a color in the linear
// colorspace. The string is parsed as an unsigned 32-bit hexadecimal
// number with the red channel in the most-significant byte and the
// alpha channel in the least-significant byte.
// The three color channels are gamma-linearized; alpha is copied
// through unmodified (red in X, alpha in W of the result).
func FromHex(hex string) (math32.Vector4, error) {
	srgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return math32.Vector4{}, fmt.Errorf("colors.FromHex: parsing %q: %w", hex, err)
	}

	r := SRGBToLinear(float32((srgb>>24)&0xFF) / 255)
	g := SRGBToLinear(float32((srgb>>16)&0xFF) / 255)
	b := SRGBToLinear(float32((srgb>>8)&0xFF) / 255)
	a := float32(srgb&0xFF) / 255

	return math32.Vec4(r, g, b, a), nil
}

// Luminance returns the Rec. 601 luma of the given linear color
// channels: 0.299 R + 0.587 G + 0.114 B.
func Luminance(r, g, b float32) float32 {
	return 0.299*r + 0.587*g + 0.114*b
}
