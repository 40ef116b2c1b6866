package scene

import (
	"github.com/Faultbox/simpleforest/internal/placement"
	"github.com/Faultbox/simpleforest/pkg/math"
)

// MeshID names a mesh uploaded once at startup.
type MeshID int

const (
	MeshBox MeshID = iota
	MeshRoof
	MeshWindow
	MeshDoor
	MeshCylinder
	MeshCone
	MeshTreeModel

	MeshCount
)

// TextureID names a 2D texture. TextureNone draws the material color.
type TextureID int

const (
	TextureNone TextureID = iota
	TextureWood
	TextureBark
	TextureLeaves
	TextureRoof
	TextureStep
	TextureWindow
	TextureDoor

	TextureCount
)

// Part is one draw call: a mesh, its material and texture, and a model
// transform. Parts with Textured=false ignore the global texture toggle.
type Part struct {
	Name     string
	Mesh     MeshID
	Material MaterialID
	Texture  TextureID
	Model    math.Mat4
	Textured bool
}

// CabinParts returns the cabin: wall body, roof, chimney, door, two windows
// and the front step, in draw order. The cabin faces +Z and its door sits
// just in front of the z=2 wall.
func CabinParts() []Part {
	return []Part{
		{
			Name:     "body",
			Mesh:     MeshBox,
			Material: MaterialWood,
			Texture:  TextureWood,
			Model:    math.Translate(0, 1, 0).Mul(math.Scale(3, 2, 4)),
			Textured: true,
		},
		{
			Name:     "roof",
			Mesh:     MeshRoof,
			Material: MaterialRoof,
			Texture:  TextureRoof,
			Model:    math.Translate(0, 2.45, 0),
			Textured: true,
		},
		{
			Name:     "chimney",
			Mesh:     MeshBox,
			Material: MaterialChimney,
			Texture:  TextureNone,
			Model:    math.Translate(1.2, 3.5, 0).Mul(math.Scale(0.4, 1, 0.4)),
			Textured: false,
		},
		{
			Name:     "door",
			Mesh:     MeshDoor,
			Material: MaterialDoor,
			Texture:  TextureDoor,
			Model:    math.Translate(0, 0.5, 2.01),
			Textured: true,
		},
		{
			Name:     "window-left",
			Mesh:     MeshWindow,
			Material: MaterialWindow,
			Texture:  TextureWindow,
			Model:    math.Translate(-1, 1.2, 2.01),
			Textured: true,
		},
		{
			Name:     "window-right",
			Mesh:     MeshWindow,
			Material: MaterialWindow,
			Texture:  TextureWindow,
			Model:    math.Translate(1, 1.2, 2.01),
			Textured: true,
		},
		{
			Name:     "step",
			Mesh:     MeshBox,
			Material: MaterialStep,
			Texture:  TextureStep,
			Model:    math.Translate(0, 0.1, 2.5).Mul(math.Scale(1, 0.1, 1)),
			Textured: true,
		},
	}
}

// TreeTransforms returns the model matrices of a primitive tree's trunk
// (cylinder) and crown (cone).
//
// The trunk is lifted by 0.6*s and stretched to 1.2*s; the crown base sits
// at y=1.2*s. Both scale with the instance.
func TreeTransforms(inst placement.Instance) (trunk, crown math.Mat4) {
	s := inst.Scale
	p := inst.Position

	trunk = math.TranslateVec(p).
		Mul(math.Translate(0, 0.6*s, 0)).
		Mul(math.Scale(s, 1.2*s, s))

	crown = math.Translate(p.X, 1.2*s, p.Z).
		Mul(math.Scale(0.8*s, 1.2*s, 0.8*s))

	return trunk, crown
}

// PrimitiveTreeParts returns a trunk and a crown part for every instance.
func PrimitiveTreeParts(trees []placement.Instance) []Part {
	parts := make([]Part, 0, len(trees)*2)
	for _, inst := range trees {
		trunk, crown := TreeTransforms(inst)
		parts = append(parts,
			Part{Name: "trunk", Mesh: MeshCylinder, Material: MaterialTrunk, Texture: TextureBark, Model: trunk, Textured: true},
			Part{Name: "crown", Mesh: MeshCone, Material: MaterialCrown, Texture: TextureLeaves, Model: crown, Textured: true},
		)
	}
	return parts
}

// ModelTreeParts returns one model part per instance.
func ModelTreeParts(trees []placement.Instance, model *Model) []Part {
	parts := make([]Part, 0, len(trees))
	for _, inst := range trees {
		parts = append(parts, Part{
			Name:     "tree",
			Mesh:     MeshTreeModel,
			Material: MaterialCrown,
			Texture:  TextureLeaves,
			Model:    ModelTreeTransform(inst, model),
			Textured: true,
		})
	}
	return parts
}
