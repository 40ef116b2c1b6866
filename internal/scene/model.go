package scene

import (
	"github.com/Faultbox/simpleforest/internal/geometry"
	"github.com/Faultbox/simpleforest/internal/placement"
	"github.com/Faultbox/simpleforest/pkg/math"
)

// Model is an imported tree mesh. The mesh is already normalized so its
// largest extent is 2 units; Min and Max are its bounds after that scaling.
type Model struct {
	Path        string
	Min, Max    math.Vec3
	ScaleFactor float32
	Mesh        *geometry.IndexedMesh
}

// ModelSource loads optional tree models. TryLoad reports false when the
// model is missing or unusable; callers then fall back to primitive trees.
type ModelSource interface {
	TryLoad(path string) (*Model, bool)
}

// NoModels is a ModelSource that never yields a model.
type NoModels struct{}

// TryLoad always reports false.
func (NoModels) TryLoad(string) (*Model, bool) { return nil, false }

// ModelTreeTransform places a model tree on the ground at the instance
// position: the model is centered on X/Z, its lowest point rests on y=0,
// and it is scaled uniformly by the instance scale.
func ModelTreeTransform(inst placement.Instance, m *Model) math.Mat4 {
	s := inst.Scale
	cx := (m.Min.X + m.Max.X) * 0.5
	cz := (m.Min.Z + m.Max.Z) * 0.5

	return math.Translate(inst.Position.X, 0, inst.Position.Z).
		Mul(math.Scale(s, s, s)).
		Mul(math.Translate(-cx, -m.Min.Y, -cz))
}
