package geometry

import (
	"github.com/chewxy/math32"
)

// Defaults used for tree trunks when no configuration overrides them.
const (
	DefaultCylinderSegments = 16
	DefaultCylinderHeight   = 1.0
	DefaultCylinderRadius   = 0.2
)

// Cylinder returns the open side wall of a cylinder from y=0 to y=height.
// There are no caps and the normals are purely radial, so the trunk is lit
// like a smooth column. Vertices 0..n-1 form the bottom ring and n..2n-1 the
// top ring; the last quad wraps back to vertex 0.
func Cylinder(segments int, height, radius float32) (*IndexedMesh, error) {
	if err := checkRing("cylinder", segments, height, radius); err != nil {
		return nil, err
	}

	m := &IndexedMesh{
		Name:     "cylinder",
		Vertices: make([]Vertex, 0, segments*2),
		Indices:  make([]uint32, 0, segments*6),
	}

	for ring := 0; ring < 2; ring++ {
		y, v := float32(0), float32(0)
		if ring == 1 {
			y, v = height, 1
		}
		for i := 0; i < segments; i++ {
			u := float32(i) / float32(segments)
			angle := u * 2 * math32.Pi
			c, s := math32.Cos(angle), math32.Sin(angle)

			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{c * radius, y, s * radius},
				Normal:   [3]float32{c, 0, s},
				TexCoord: [2]float32{u, v},
			})
		}
	}

	n := uint32(segments)
	for i := uint32(0); i < n; i++ {
		a := i
		b := (i + 1) % n
		a2, b2 := a+n, b+n
		m.Indices = append(m.Indices,
			a, b, b2,
			b2, a2, a,
		)
	}

	return m, nil
}
