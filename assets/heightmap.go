// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"image"

	"github.com/sportgl/sport/colors"
)

// HeightBuffer converts an image to a flat buffer of terrain heights,
// one value per pixel in row-major order. Each pixel's sRGB channels
// are gamma-linearized, combined into a luma, and scaled by maxHeight,
// so the result ranges over [0, maxHeight].
func HeightBuffer(img image.Image, maxHeight float32) []float32 {
	bounds := img.Bounds()
	result := make([]float32, 0, bounds.Dx()*bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lr := colors.SRGBToLinear(float32(r) / 0xffff)
			lg := colors.SRGBToLinear(float32(g) / 0xffff)
			lb := colors.SRGBToLinear(float32(b) / 0xffff)
			result = append(result, maxHeight*colors.Luminance(lr, lg, lb))
		}
	}
	return result
}
