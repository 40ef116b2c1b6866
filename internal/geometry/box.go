package geometry

// Box returns the unit cube centered at the origin: six faces with four
// unshared vertices each, so every face keeps its own normal and 0..1 UV
// square. The back and right faces mirror U so textures read the right way
// round when viewed from outside. Callers size it with a model transform.
func Box() *IndexedMesh {
	m := &IndexedMesh{
		Name:     "box",
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	const h = 0.5

	// Front (+Z)
	m.quad([4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},
		[3]float32{0, 0, 1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	// Back (-Z)
	m.quad([4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h}},
		[3]float32{0, 0, -1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}})
	// Left (-X)
	m.quad([4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}},
		[3]float32{-1, 0, 0}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	// Right (+X)
	m.quad([4][3]float32{{h, -h, -h}, {h, -h, h}, {h, h, h}, {h, h, -h}},
		[3]float32{1, 0, 0}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}})
	// Top (+Y)
	m.quad([4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}},
		[3]float32{0, 1, 0}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	// Bottom (-Y)
	m.quad([4][3]float32{{-h, -h, h}, {h, -h, h}, {h, -h, -h}, {-h, -h, -h}},
		[3]float32{0, -1, 0}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}})

	return m
}
