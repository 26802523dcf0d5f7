// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector, quaternion, and math package
// for the render side of 3D physics visualization.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	Pi    = math.Pi
	TwoPi = 2 * math.Pi

	Sqrt2 = math.Sqrt2
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts a number from degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 {
	return math32.Pow(x, y)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Atan2 returns the arc tangent of y/x, using the signs
// of the two to determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// IsNaN reports whether x is a "not-a-number" value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// IsInf reports whether x is an infinity, according to sign.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// Lerp interpolates linearly between (or extrapolates linearly from)
// the two values y0 at t=0 and y1 at t=1.
// When y0 == y1 the result is exactly y0: no rounding error is
// introduced by a degenerate interpolation.
func Lerp(t, y0, y1 float32) float32 {
	if y0 == y1 {
		return y0
	}
	return (1-t)*y0 + t*y1
}

// Modulo returns the least non-negative value congruent to x with
// respect to the given modulus, which must be positive.
// This differs from the native remainder for negative x:
// Modulo(-1, 4) == 3, while Mod(-1, 4) == -1.
func Modulo(x, modulus float32) float32 {
	if modulus <= 0 {
		panic("math32.Modulo: modulus must be positive")
	}
	rem := math32.Mod(x, modulus)
	if x < 0 {
		rem = math32.Mod(rem+modulus, modulus)
	}
	return rem
}

// ModuloInt returns the least non-negative value congruent to i with
// respect to the given modulus, which must be positive.
// This differs from the native remainder for negative i:
// ModuloInt(-1, 4) == 3, while -1 % 4 == -1.
func ModuloInt(i, modulus int) int {
	if modulus <= 0 {
		panic("math32.ModuloInt: modulus must be positive")
	}
	rem := i % modulus
	if i < 0 {
		rem = (rem + modulus) % modulus
	}
	return rem
}

// Accumulated squares in the coordinate conversions are computed
// in float64 before narrowing.
func sqrt64(x float64) float64 {
	return math.Sqrt(x)
}

func atan264(y, x float64) float64 {
	return math.Atan2(y, x)
}

// StandardizeAngle standardizes a rotation angle (in radians)
// to the canonical half-open range [-Pi, Pi).
func StandardizeAngle(angle float32) float32 {
	result := Modulo(angle, TwoPi)
	if result >= Pi {
		result -= TwoPi
	}
	return result
}
