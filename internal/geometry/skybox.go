package geometry

// SkyboxScale is the half-extent of the sky cube. It only needs to exceed
// the far plane's reach; the shader keeps the cube centered on the viewer.
const SkyboxScale = 1000.0

// skyboxCorners lists the 36 unit-cube positions, two triangles per face,
// in the order -Z, -X, +X, +Z, +Y, -Y.
var skyboxCorners = [36][3]float32{
	{-1, 1, -1}, {-1, -1, -1}, {1, -1, -1},
	{1, -1, -1}, {1, 1, -1}, {-1, 1, -1},

	{-1, -1, 1}, {-1, -1, -1}, {-1, 1, -1},
	{-1, 1, -1}, {-1, 1, 1}, {-1, -1, 1},

	{1, -1, -1}, {1, -1, 1}, {1, 1, 1},
	{1, 1, 1}, {1, 1, -1}, {1, -1, -1},

	{-1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
	{1, 1, 1}, {1, -1, 1}, {-1, -1, 1},

	{-1, 1, -1}, {1, 1, -1}, {1, 1, 1},
	{1, 1, 1}, {-1, 1, 1}, {-1, 1, -1},

	{-1, -1, -1}, {-1, -1, 1}, {1, -1, -1},
	{1, -1, -1}, {-1, -1, 1}, {1, -1, 1},
}

// Skybox returns the sky cube as a plain triangle list with positions only
// (stride 3, no index buffer). Draw it last with depth func LEQUAL and depth
// writes disabled.
func Skybox() *PositionMesh {
	m := &PositionMesh{
		Name:      "skybox",
		Positions: make([][3]float32, len(skyboxCorners)),
	}
	for i, c := range skyboxCorners {
		m.Positions[i] = [3]float32{c[0] * SkyboxScale, c[1] * SkyboxScale, c[2] * SkyboxScale}
	}
	return m
}
