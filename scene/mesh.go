// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Topology describes how a mesh's vertices are assembled into
// primitives.
type Topology int32

const (
	// Lines assembles each consecutive pair of vertices into a
	// line segment.
	Lines Topology = iota

	// LineStrip connects each vertex to the previous one.
	LineStrip

	// Triangles assembles each consecutive triple of vertices into
	// a triangle.
	Triangles
)

// numAxes is the number of local axes of a 3D transform.
const numAxes = 3

// Mesh is vertex data in mesh space: packed X,Y,Z positions plus the
// topology used to assemble them.
type Mesh struct {

	// name of the mesh in the library
	Name string

	// how the vertices are assembled
	Topology Topology

	// packed vertex positions, 3 floats per vertex
	Positions []float32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// CopyPositions returns a copy of the packed vertex positions, for
// callers that need ownership of the buffer.
func (m *Mesh) CopyPositions() []float32 {
	out := make([]float32, len(m.Positions))
	copy(out, m.Positions)
	return out
}
