package scene

// Material is a Phong material. When a part is drawn textured, the renderer
// replaces Diffuse with white and lets the texture supply the color.
type Material struct {
	Ambient   [3]float32
	Diffuse   [3]float32
	Specular  [3]float32
	Shininess float32
}

// MaterialID indexes a Palette.
type MaterialID int

const (
	MaterialWood MaterialID = iota
	MaterialRoof
	MaterialWindow
	MaterialDoor
	MaterialTrunk
	MaterialCrown
	MaterialChimney
	MaterialStep

	materialCount
)

var materialNames = [materialCount]string{
	"wood", "roof", "window", "door", "trunk", "crown", "chimney", "step",
}

func (id MaterialID) String() string {
	if id < 0 || id >= materialCount {
		return "unknown"
	}
	return materialNames[id]
}

// Palette holds one material per MaterialID. A scene owns its palette, so
// the control panel can edit colors in place.
type Palette [materialCount]Material

// DefaultPalette returns the cabin and forest materials.
func DefaultPalette() Palette {
	var p Palette
	p[MaterialWood] = Material{
		Ambient:   [3]float32{0.4, 0.3, 0.2},
		Diffuse:   [3]float32{0.7, 0.6, 0.5},
		Specular:  [3]float32{0.1, 0.1, 0.1},
		Shininess: 32,
	}
	p[MaterialRoof] = Material{
		Ambient:   [3]float32{0.3, 0.1, 0.1},
		Diffuse:   [3]float32{0.6, 0.2, 0.1},
		Specular:  [3]float32{0.1, 0.1, 0.1},
		Shininess: 16,
	}
	p[MaterialWindow] = Material{
		Ambient:   [3]float32{0.1, 0.1, 0.2},
		Diffuse:   [3]float32{0.2, 0.2, 0.4},
		Specular:  [3]float32{0.8, 0.8, 0.8},
		Shininess: 128,
	}
	p[MaterialDoor] = Material{
		Ambient:   [3]float32{0.3, 0.2, 0.1},
		Diffuse:   [3]float32{0.5, 0.4, 0.2},
		Specular:  [3]float32{0.05, 0.05, 0.05},
		Shininess: 32,
	}
	p[MaterialTrunk] = Material{
		Ambient:   [3]float32{0.3, 0.2, 0.1},
		Diffuse:   [3]float32{0.5, 0.4, 0.2},
		Specular:  [3]float32{0.05, 0.05, 0.05},
		Shininess: 8,
	}
	p[MaterialCrown] = Material{
		Ambient:   [3]float32{0.1, 0.3, 0.1},
		Diffuse:   [3]float32{0.2, 0.6, 0.2},
		Specular:  [3]float32{0.1, 0.1, 0.1},
		Shininess: 32,
	}
	p[MaterialChimney] = Material{
		Ambient:   [3]float32{0.2, 0.2, 0.2},
		Diffuse:   [3]float32{0.4, 0.4, 0.4},
		Shininess: 4,
	}
	p[MaterialStep] = Material{
		Ambient:   [3]float32{0.3, 0.3, 0.3},
		Diffuse:   [3]float32{0.5, 0.5, 0.5},
		Shininess: 4,
	}
	return p
}
