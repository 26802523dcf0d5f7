// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/sportgl/sport/math32"
)

// arrowMeshes caches one arrow mesh per local axis.
var arrowMeshes [numAxes]*Mesh

// ArrowMesh returns the shared unit arrow mesh pointing along the given
// local axis (0 is X, 1 is Y, 2 is Z), generating and caching it on
// first use. The arrow is a unit-length shaft with 4 head segments.
func ArrowMesh(axisIndex int) *Mesh {
	if axisIndex < 0 || axisIndex >= numAxes {
		panic(fmt.Sprintf("scene.ArrowMesh: axisIndex %d is out of range", axisIndex))
	}
	if m := arrowMeshes[axisIndex]; m != nil {
		return m
	}
	m := makeArrowMesh(axisIndex)
	arrowMeshes[axisIndex] = m
	return m
}

func makeArrowMesh(axisIndex int) *Mesh {
	const headLen = 0.1
	const headWidth = 0.05
	lat1 := (axisIndex + 1) % numAxes
	lat2 := (axisIndex + 2) % numAxes

	var tip, base math32.Vector3
	tip.SetDim(axisIndex, 1)
	base.SetDim(axisIndex, 1-headLen)

	verts := make([]math32.Vector3, 0, 10)
	verts = append(verts, math32.Vector3{}, tip)
	for _, lat := range []int{lat1, lat2} {
		for _, sign := range []float32{1, -1} {
			barb := base
			barb.SetDim(lat, sign*headWidth)
			verts = append(verts, tip, barb)
		}
	}

	pos := make([]float32, 0, 3*len(verts))
	for _, v := range verts {
		pos = append(pos, v.X, v.Y, v.Z)
	}
	return &Mesh{
		Name:      fmt.Sprintf("arrow%c", 'X'+axisIndex),
		Topology:  Lines,
		Positions: pos,
	}
}
