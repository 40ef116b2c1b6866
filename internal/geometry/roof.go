package geometry

// Defaults for the cabin roof.
const (
	DefaultRoofWidth = 4.0
	DefaultRoofDepth = 5.0
	DefaultRoofPitch = 0.5
)

// Fixed slope normal components. They are the unit normal of a 1:2 slope and
// are used regardless of the requested pitch so the roof shades the same at
// any size.
const (
	roofSlopeUp  = 0.447
	roofSlopeOut = 0.894
)

// Roof returns a four-sided roof whose ridge point sits at
// (0, width*pitch*0.5, 0) above a width x depth footprint on y=0.
//
// Each sloped face is a flat-shaded triangle with its own three vertices and
// UVs (0,0) (1,0) (0.5,1), emitted front, right, back, left. A downward
// facing underside quad closes the footprint. 16 vertices, 18 indices.
func Roof(width, depth, pitch float32) (*IndexedMesh, error) {
	if err := checkPositive("roof", "width", width); err != nil {
		return nil, err
	}
	if err := checkPositive("roof", "depth", depth); err != nil {
		return nil, err
	}
	if err := checkPositive("roof", "pitch", pitch); err != nil {
		return nil, err
	}

	hw, hd := width*0.5, depth*0.5
	ridge := [3]float32{0, width * pitch * 0.5, 0}

	m := &IndexedMesh{
		Name:     "roof",
		Vertices: make([]Vertex, 0, 16),
		Indices:  make([]uint32, 0, 18),
	}

	faces := []struct {
		a, b   [3]float32
		normal [3]float32
	}{
		{[3]float32{-hw, 0, -hd}, [3]float32{hw, 0, -hd}, [3]float32{0, roofSlopeUp, roofSlopeOut}},  // front
		{[3]float32{hw, 0, -hd}, [3]float32{hw, 0, hd}, [3]float32{roofSlopeOut, roofSlopeUp, 0}},    // right
		{[3]float32{hw, 0, hd}, [3]float32{-hw, 0, hd}, [3]float32{0, roofSlopeUp, -roofSlopeOut}},   // back
		{[3]float32{-hw, 0, hd}, [3]float32{-hw, 0, -hd}, [3]float32{-roofSlopeOut, roofSlopeUp, 0}}, // left
	}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			Vertex{Position: f.a, Normal: f.normal, TexCoord: [2]float32{0, 0}},
			Vertex{Position: f.b, Normal: f.normal, TexCoord: [2]float32{1, 0}},
			Vertex{Position: ridge, Normal: f.normal, TexCoord: [2]float32{0.5, 1}},
		)
		m.Indices = append(m.Indices, base, base+1, base+2)
	}

	// Underside, triangles (12,13,14) (14,15,12).
	m.quad([4][3]float32{{-hw, 0, -hd}, {hw, 0, -hd}, {hw, 0, hd}, {-hw, 0, hd}},
		[3]float32{0, -1, 0}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}})

	return m, nil
}
