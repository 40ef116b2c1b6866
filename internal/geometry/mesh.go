// Package geometry builds the procedural meshes of the forest scene: the
// cabin primitives (box, roof, window, door), the tree primitives (cone,
// cylinder) and the skybox cube.
//
// Builders are pure. They return CPU-side buffers and never touch the GPU;
// the renderer uploads them once at startup.
package geometry

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidParameter is wrapped by every builder that rejects its shape parameters.
var ErrInvalidParameter = errors.New("invalid primitive parameter")

// MinSegments is the smallest ring resolution accepted by Cone and Cylinder.
const MinSegments = 3

// Vertex is one interleaved vertex: position, normal, texture coordinate.
// 8 float32 (32 bytes), uploaded to the GPU as-is.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// VertexStride is the size of Vertex in float32 components.
const VertexStride = 8

// IndexedMesh is a vertex buffer plus a triangle index buffer.
// It is never mutated after a builder returns it.
type IndexedMesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles described by the index buffer.
func (m *IndexedMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that the index buffer describes whole triangles and only
// references existing vertices.
func (m *IndexedMesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q: index count %d is not a multiple of 3", m.Name, len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("mesh %q: index %d at %d out of range (%d vertices)", m.Name, idx, i, n)
		}
	}
	return nil
}

// Floats flattens the vertex buffer into the 8-float stride layout.
func (m *IndexedMesh) Floats() []float32 {
	out := make([]float32, 0, len(m.Vertices)*VertexStride)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}

// PositionMesh is a position-only triangle list drawn without an index buffer.
type PositionMesh struct {
	Name      string
	Positions [][3]float32
}

// VertexCount returns the number of vertices to pass to the draw call.
func (m *PositionMesh) VertexCount() int {
	return len(m.Positions)
}

// quad appends a four-vertex quad sharing one normal and the two triangles
// (0,1,2) (2,3,0) that cover it.
func (m *IndexedMesh) quad(corners [4][3]float32, normal [3]float32, uvs [4][2]float32) {
	base := uint32(len(m.Vertices))
	for i := range corners {
		m.Vertices = append(m.Vertices, Vertex{Position: corners[i], Normal: normal, TexCoord: uvs[i]})
	}
	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base+2, base+3, base,
	)
}

// checkRing validates the parameters shared by the ring-based primitives.
func checkRing(kind string, segments int, height, radius float32) error {
	if segments < MinSegments {
		return fmt.Errorf("%s: segments %d < %d: %w", kind, segments, MinSegments, ErrInvalidParameter)
	}
	if err := checkPositive(kind, "height", height); err != nil {
		return err
	}
	return checkPositive(kind, "radius", radius)
}

// checkPositive rejects zero, negative, NaN and infinite dimensions.
func checkPositive(kind, name string, v float32) error {
	if !(v > 0) || math32.IsInf(v, 0) {
		return fmt.Errorf("%s: %s %v must be a positive finite number: %w", kind, name, v, ErrInvalidParameter)
	}
	return nil
}
