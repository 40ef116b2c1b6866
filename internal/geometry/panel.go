package geometry

// Window and door panels are two stacked quads facing +Z: an outer frame at
// z=0 and a smaller inner quad pushed PanelOffset forward so it wins the
// depth test against the frame.
const (
	WindowInset = 0.8
	DoorInset   = 0.9
	PanelOffset = 0.01

	DefaultWindowWidth  = 0.3
	DefaultWindowHeight = 0.4
	DefaultDoorWidth    = 0.5
	DefaultDoorHeight   = 1.0
)

// Window returns a frame quad plus a glass quad scaled by WindowInset. Both
// quads map the full 0..1 texture.
func Window(width, height float32) (*IndexedMesh, error) {
	return panel("window", width, height, WindowInset, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
}

// Door returns a frame quad plus a door leaf scaled by DoorInset whose UVs
// are inset to 0.1..0.9, so the leaf samples the inner part of the texture.
func Door(width, height float32) (*IndexedMesh, error) {
	return panel("door", width, height, DoorInset, [4][2]float32{{0.1, 0.1}, {0.9, 0.1}, {0.9, 0.9}, {0.1, 0.9}})
}

func panel(name string, width, height, inset float32, innerUV [4][2]float32) (*IndexedMesh, error) {
	if err := checkPositive(name, "width", width); err != nil {
		return nil, err
	}
	if err := checkPositive(name, "height", height); err != nil {
		return nil, err
	}

	m := &IndexedMesh{
		Name:     name,
		Vertices: make([]Vertex, 0, 8),
		Indices:  make([]uint32, 0, 12),
	}
	normal := [3]float32{0, 0, 1}
	hw, hh := width*0.5, height*0.5

	m.quad([4][3]float32{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}},
		normal, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}})

	iw, ih := hw*inset, hh*inset
	m.quad([4][3]float32{{-iw, -ih, PanelOffset}, {iw, -ih, PanelOffset}, {iw, ih, PanelOffset}, {-iw, ih, PanelOffset}},
		normal, innerUV)

	return m, nil
}
