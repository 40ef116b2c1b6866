package scene

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/simpleforest/internal/config"
	"github.com/Faultbox/simpleforest/internal/geometry"
	"github.com/Faultbox/simpleforest/internal/placement"
	"github.com/Faultbox/simpleforest/pkg/math"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func near(a, b math.Vec3) bool {
	const eps = 1e-4
	return abs(a.X-b.X) < eps && abs(a.Y-b.Y) < eps && abs(a.Z-b.Z) < eps
}

func sampler() *placement.Sampler {
	return placement.NewSampler(rand.NewPCG(11, 12))
}

// fakeModels serves one fixed model for a single path.
type fakeModels struct {
	path  string
	model *Model
	calls int
}

func (f *fakeModels) TryLoad(path string) (*Model, bool) {
	f.calls++
	if path != f.path {
		return nil, false
	}
	return f.model, true
}

func TestCabinParts(t *testing.T) {
	parts := CabinParts()
	if len(parts) != 7 {
		t.Fatalf("got %d cabin parts, want 7", len(parts))
	}

	byName := make(map[string]Part)
	for _, p := range parts {
		byName[p.Name] = p
	}

	// The body spans x [-1.5,1.5], y [0,2], z [-2,2].
	body := byName["body"]
	if got := body.Model.TransformPoint(math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}); !near(got, math.Vec3{X: 1.5, Y: 2, Z: 2}) {
		t.Errorf("body corner = %v", got)
	}
	if got := body.Model.TransformPoint(math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}); !near(got, math.Vec3{X: -1.5, Y: 0, Z: -2}) {
		t.Errorf("body corner = %v", got)
	}

	chimney := byName["chimney"]
	if chimney.Textured || chimney.Texture != TextureNone {
		t.Error("chimney must always be drawn untextured")
	}

	door := byName["door"]
	if got := door.Model.TransformPoint(math.Vec3{}); !near(got, math.Vec3{X: 0, Y: 0.5, Z: 2.01}) {
		t.Errorf("door origin = %v", got)
	}
	// Door sits in front of the front wall.
	if got := door.Model.TransformPoint(math.Vec3{}); got.Z <= 2 {
		t.Errorf("door at z=%v is inside the wall", got.Z)
	}

	left, right := byName["window-left"], byName["window-right"]
	if got := left.Model.TransformPoint(math.Vec3{}); !near(got, math.Vec3{X: -1, Y: 1.2, Z: 2.01}) {
		t.Errorf("left window = %v", got)
	}
	if got := right.Model.TransformPoint(math.Vec3{}); !near(got, math.Vec3{X: 1, Y: 1.2, Z: 2.01}) {
		t.Errorf("right window = %v", got)
	}

	step := byName["step"]
	if got := step.Model.TransformPoint(math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}); !near(got, math.Vec3{X: 0.5, Y: 0.15, Z: 3}) {
		t.Errorf("step corner = %v", got)
	}
}

func TestTreeTransforms(t *testing.T) {
	inst := placement.Instance{Position: math.Vec3{X: 6, Y: 0, Z: -8}, Scale: 2}
	trunk, crown := TreeTransforms(inst)

	// Cylinder base (y=0) lands at 0.6*s.
	if got := trunk.TransformPoint(math.Vec3{}); !near(got, math.Vec3{X: 6, Y: 1.2, Z: -8}) {
		t.Errorf("trunk base = %v", got)
	}
	// Unit height stretches to 1.2*s.
	if got := trunk.TransformPoint(math.Vec3{X: 0, Y: 1, Z: 0}); !near(got, math.Vec3{X: 6, Y: 1.2 + 2.4, Z: -8}) {
		t.Errorf("trunk top = %v", got)
	}
	if got := trunk.TransformPoint(math.Vec3{X: 1, Y: 0, Z: 0}); !near(got, math.Vec3{X: 8, Y: 1.2, Z: -8}) {
		t.Errorf("trunk radius point = %v", got)
	}

	if got := crown.TransformPoint(math.Vec3{}); !near(got, math.Vec3{X: 6, Y: 2.4, Z: -8}) {
		t.Errorf("crown base = %v", got)
	}
	if got := crown.TransformPoint(math.Vec3{X: 1, Y: 1, Z: 0}); !near(got, math.Vec3{X: 6 + 1.6, Y: 2.4 + 2.4, Z: -8}) {
		t.Errorf("crown point = %v", got)
	}
}

func TestModelTreeTransform(t *testing.T) {
	m := &Model{
		Min: math.Vec3{X: -1, Y: -0.5, Z: 2},
		Max: math.Vec3{X: 1, Y: 1.5, Z: 4},
	}
	inst := placement.Instance{Position: math.Vec3{X: 3, Z: 5}, Scale: 2}
	tr := ModelTreeTransform(inst, m)

	// Bottom center of the bounds lands on the ground at the instance.
	if got := tr.TransformPoint(math.Vec3{X: 0, Y: -0.5, Z: 3}); !near(got, math.Vec3{X: 3, Y: 0, Z: 5}) {
		t.Errorf("model base = %v", got)
	}
	if got := tr.TransformPoint(math.Vec3{X: 0, Y: 1.5, Z: 3}); !near(got, math.Vec3{X: 3, Y: 4, Z: 5}) {
		t.Errorf("model top = %v", got)
	}
}

func TestBuildPrimitiveForest(t *testing.T) {
	cfg := config.Default()
	s, err := Build(cfg, sampler(), nil, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(s.Trees) != cfg.Scene.Trees.Count {
		t.Fatalf("got %d trees, want %d", len(s.Trees), cfg.Scene.Trees.Count)
	}
	if len(s.TreeParts) != 2*len(s.Trees) {
		t.Errorf("got %d tree parts, want a trunk and crown per tree", len(s.TreeParts))
	}
	if len(s.Parts()) != len(s.Cabin)+len(s.TreeParts) {
		t.Errorf("Parts() = %d", len(s.Parts()))
	}

	for id := MeshBox; id < MeshTreeModel; id++ {
		m := s.Meshes[id]
		if m == nil {
			t.Fatalf("mesh %d missing", id)
		}
		if err := m.Validate(); err != nil {
			t.Errorf("mesh %d: %v", id, err)
		}
	}
	if s.Meshes[MeshTreeModel] != nil {
		t.Error("tree model mesh set without a model")
	}
	if s.Meshes[MeshCone].TriangleCount() != cfg.Scene.Meshes.Cone.Segments {
		t.Errorf("cone built with wrong segments")
	}
	if s.Skybox.VertexCount() != 36 {
		t.Errorf("skybox has %d vertices", s.Skybox.VertexCount())
	}
}

func TestBuildFallsBackWithoutModel(t *testing.T) {
	cfg := config.Default()
	cfg.Assets.TreeModel = "missing.glb"

	models := &fakeModels{path: "other.glb"}
	s, err := Build(cfg, sampler(), models, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if models.calls != 1 {
		t.Errorf("TryLoad called %d times, want 1", models.calls)
	}
	if s.TreeModel != nil {
		t.Error("unexpected tree model")
	}
	for _, p := range s.TreeParts {
		if p.Mesh != MeshCylinder && p.Mesh != MeshCone {
			t.Fatalf("fallback tree uses mesh %d", p.Mesh)
		}
	}
}

func TestBuildWithModel(t *testing.T) {
	cfg := config.Default()
	cfg.Assets.TreeModel = "pine.glb"
	cfg.Scene.Trees.Count = 5

	cone, err := geometry.Cone(8, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	model := &Model{Path: "pine.glb", Max: math.Vec3{X: 1, Y: 2, Z: 1}, Min: math.Vec3{X: -1, Z: -1}, ScaleFactor: 1, Mesh: cone}

	s, err := Build(cfg, sampler(), &fakeModels{path: "pine.glb", model: model}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Meshes[MeshTreeModel] != cone {
		t.Error("model mesh not registered")
	}
	if len(s.TreeParts) != 5 {
		t.Fatalf("got %d tree parts, want one per tree", len(s.TreeParts))
	}
	for _, p := range s.TreeParts {
		if p.Mesh != MeshTreeModel {
			t.Errorf("tree part uses mesh %d", p.Mesh)
		}
	}

	// Dropping the model goes back to primitives.
	s.SetTreeModel(nil)
	if len(s.TreeParts) != 10 || s.Meshes[MeshTreeModel] != nil {
		t.Errorf("primitive fallback not restored: %d parts", len(s.TreeParts))
	}
}

func TestBuildKeepsPartialForest(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Trees.XMin, cfg.Scene.Trees.XMax = 4, 6
	cfg.Scene.Trees.ZMin, cfg.Scene.Trees.ZMax = 4, 6
	cfg.Scene.Trees.MinDistance = 10
	cfg.Scene.Trees.MaxAttempts = 200

	s, err := Build(cfg, sampler(), nil, nil)
	if err != nil {
		t.Fatalf("exhausted budget should not fail Build: %v", err)
	}
	if len(s.Trees) != 1 {
		t.Errorf("got %d trees, want the single one that fits", len(s.Trees))
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Meshes.Cone.Segments = 2
	if _, err := Build(cfg, sampler(), nil, nil); !errors.Is(err, geometry.ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}

	cfg = config.Default()
	cfg.Scene.Trees.ScaleMin = 3
	if _, err := Build(cfg, sampler(), nil, nil); !errors.Is(err, placement.ErrInvalidParams) {
		t.Errorf("err = %v, want ErrInvalidParams", err)
	}
}

func TestBuildRejectsNonFiniteForest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.yaml")
	yaml := "scene:\n  trees:\n    exclusion_x: .nan\n    x_min: -.inf\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if _, err := Build(cfg, sampler(), nil, nil); !errors.Is(err, placement.ErrInvalidParams) {
		t.Errorf("err = %v, want ErrInvalidParams", err)
	}
}

func TestMaterialTextureToggle(t *testing.T) {
	s, err := Build(config.Default(), sampler(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	body, chimney := s.Cabin[0], s.Cabin[2]

	s.UseTexture = true
	if m, textured := s.Material(body); !textured || m.Diffuse != [3]float32{1, 1, 1} {
		t.Errorf("textured body: textured=%v diffuse=%v", textured, m.Diffuse)
	}
	if m, textured := s.Material(chimney); textured || m.Diffuse != s.Palette[MaterialChimney].Diffuse {
		t.Errorf("chimney: textured=%v diffuse=%v", textured, m.Diffuse)
	}

	s.UseTexture = false
	if m, textured := s.Material(body); textured || m.Diffuse != s.Palette[MaterialWood].Diffuse {
		t.Errorf("solid body: textured=%v diffuse=%v", textured, m.Diffuse)
	}

	// Palette edits show up immediately.
	s.Palette[MaterialWood].Diffuse = [3]float32{1, 0, 0}
	if m, _ := s.Material(body); m.Diffuse != [3]float32{1, 0, 0} {
		t.Errorf("palette edit ignored: %v", m.Diffuse)
	}
}

func TestLighting(t *testing.T) {
	l := DefaultLighting()
	if d := math.Vec3From(l.Direction); abs(d.Length()-1) > 1e-5 || d.Y >= 0 {
		t.Errorf("default direction %v should be unit and pointing down", l.Direction)
	}

	l.Direction = [3]float32{0, 0, 0}
	l.Normalize()
	if l.Direction != [3]float32{0, -1, 0} {
		t.Errorf("zero direction normalized to %v", l.Direction)
	}

	l.Direction = [3]float32{0, 0, 3}
	l.Normalize()
	if l.Direction != [3]float32{0, 0, 1} {
		t.Errorf("Normalize = %v", l.Direction)
	}
}
