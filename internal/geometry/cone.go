package geometry

import (
	"github.com/chewxy/math32"
)

// Defaults used for tree crowns when no configuration overrides them.
const (
	DefaultConeSegments = 20
	DefaultConeHeight   = 1.0
	DefaultConeRadius   = 0.8
)

// Cone returns an open cone (no base cap) standing on the XZ plane with its
// apex at (0, height, 0).
//
// The ring has segments+1 vertices: the last one repeats the first position
// with U=1 so the texture wraps without a seam. Ring normals blend the radial
// direction, weighted by slant/radius, with an upward component of
// height/radius. That is a smooth-shading approximation rather than the
// analytic cone normal, and crowns are lit with it on purpose.
func Cone(segments int, height, radius float32) (*IndexedMesh, error) {
	if err := checkRing("cone", segments, height, radius); err != nil {
		return nil, err
	}

	m := &IndexedMesh{
		Name:     "cone",
		Vertices: make([]Vertex, 0, segments+2),
		Indices:  make([]uint32, 0, segments*3),
	}

	// Apex, lit straight up.
	m.Vertices = append(m.Vertices, Vertex{
		Position: [3]float32{0, height, 0},
		Normal:   [3]float32{0, 1, 0},
		TexCoord: [2]float32{0.5, 1},
	})

	slant := math32.Sqrt(radius*radius + height*height)
	for i := 0; i <= segments; i++ {
		u := float32(i) / float32(segments)
		angle := u * 2 * math32.Pi
		x := math32.Cos(angle) * radius
		z := math32.Sin(angle) * radius

		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{x, 0, z},
			Normal:   coneNormal(x, z, slant/radius, height/radius),
			TexCoord: [2]float32{u, 0},
		})
	}

	for i := 0; i < segments; i++ {
		m.Indices = append(m.Indices, 0, uint32(i+1), uint32(i+2))
	}

	return m, nil
}

// coneNormal returns normalize((x, 0, z)*radial + (0, up, 0)).
func coneNormal(x, z, radial, up float32) [3]float32 {
	nx, ny, nz := x*radial, up, z*radial
	l := math32.Sqrt(nx*nx + ny*ny + nz*nz)
	return [3]float32{nx / l, ny / l, nz / l}
}
