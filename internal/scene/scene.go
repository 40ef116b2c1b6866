// Package scene assembles the forest scene on the CPU: the procedural
// meshes, the cabin layout, the sampled trees and the material palette. The
// renderer consumes a Scene; nothing here touches the GPU.
package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/simpleforest/internal/config"
	"github.com/Faultbox/simpleforest/internal/geometry"
	"github.com/Faultbox/simpleforest/internal/logger"
	"github.com/Faultbox/simpleforest/internal/placement"
	"github.com/Faultbox/simpleforest/pkg/math"
)

// Lighting is the single directional light.
type Lighting struct {
	Direction [3]float32 // points from the light into the scene, unit length
	Color     [3]float32
}

// DefaultLighting returns a warm sun shining down and away from the viewer.
func DefaultLighting() Lighting {
	d := math.Vec3{X: -0.3, Y: -1, Z: -0.5}.Normalize()
	return Lighting{
		Direction: d.Array(),
		Color:     [3]float32{1, 0.95, 0.9},
	}
}

// Normalize rescales Direction to unit length. A zero direction is left
// pointing straight down.
func (l *Lighting) Normalize() {
	d := math.Vec3From(l.Direction)
	if d.Length() == 0 {
		l.Direction = [3]float32{0, -1, 0}
		return
	}
	l.Direction = d.Normalize().Array()
}

// Scene is the complete CPU-side description of a frame.
type Scene struct {
	// Meshes indexed by MeshID. MeshTreeModel is nil unless a model loaded.
	Meshes [MeshCount]*geometry.IndexedMesh
	Skybox *geometry.PositionMesh

	Cabin      []Part
	Trees      []placement.Instance
	TreeParts  []Part
	TreeModel  *Model
	Placement  placement.Params
	Stats      placement.Stats
	Palette    Palette
	Lighting   Lighting
	UseTexture bool

	log *zap.Logger
}

// Build creates every mesh, samples the forest and lays out the cabin.
//
// When cfg.Assets.TreeModel names a model that models can load, trees use
// it; otherwise they are built from a cylinder trunk and a cone crown.
// Running out of placement attempts is logged and the partial forest kept.
// Invalid mesh or placement parameters are returned as errors.
func Build(cfg *config.Config, sampler *placement.Sampler, models ModelSource, log *zap.Logger) (*Scene, error) {
	log = logger.OrNop(log)
	if models == nil {
		models = NoModels{}
	}

	s := &Scene{
		Skybox:     geometry.Skybox(),
		Cabin:      CabinParts(),
		Placement:  PlacementParams(cfg.Scene.Trees),
		Palette:    DefaultPalette(),
		Lighting:   DefaultLighting(),
		UseTexture: cfg.Scene.Textured,
		log:        log,
	}

	if err := s.buildMeshes(cfg.Scene.Meshes); err != nil {
		return nil, err
	}

	if path := cfg.Assets.TreeModel; path != "" {
		if m, ok := models.TryLoad(path); ok {
			s.SetTreeModel(m)
		} else {
			log.Warn("tree model unavailable, using primitive trees", zap.String("path", path))
		}
	}

	if hint := s.Placement.CapacityHint(); s.Placement.Count > hint {
		log.Warn("tree count likely exceeds what fits",
			zap.Int("count", s.Placement.Count),
			zap.Int("capacity", hint))
	}

	if err := s.Regenerate(sampler); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) buildMeshes(cfg config.MeshesConfig) error {
	s.Meshes[MeshBox] = geometry.Box()

	roof, err := geometry.Roof(cfg.Roof.Width, cfg.Roof.Depth, cfg.Roof.Pitch)
	if err != nil {
		return fmt.Errorf("building roof: %w", err)
	}
	s.Meshes[MeshRoof] = roof

	window, err := geometry.Window(geometry.DefaultWindowWidth, geometry.DefaultWindowHeight)
	if err != nil {
		return fmt.Errorf("building window: %w", err)
	}
	s.Meshes[MeshWindow] = window

	door, err := geometry.Door(geometry.DefaultDoorWidth, geometry.DefaultDoorHeight)
	if err != nil {
		return fmt.Errorf("building door: %w", err)
	}
	s.Meshes[MeshDoor] = door

	trunk, err := geometry.Cylinder(cfg.Cylinder.Segments, cfg.Cylinder.Height, cfg.Cylinder.Radius)
	if err != nil {
		return fmt.Errorf("building trunk: %w", err)
	}
	s.Meshes[MeshCylinder] = trunk

	crown, err := geometry.Cone(cfg.Cone.Segments, cfg.Cone.Height, cfg.Cone.Radius)
	if err != nil {
		return fmt.Errorf("building crown: %w", err)
	}
	s.Meshes[MeshCone] = crown

	return nil
}

// PlacementParams converts the tree section of the config.
func PlacementParams(t config.TreesConfig) placement.Params {
	return placement.Params{
		Count:       t.Count,
		XMin:        t.XMin,
		XMax:        t.XMax,
		ZMin:        t.ZMin,
		ZMax:        t.ZMax,
		HouseXRange: t.ExclusionX,
		HouseZRange: t.ExclusionZ,
		MinDistance: t.MinDistance,
		ScaleMin:    t.ScaleMin,
		ScaleMax:    t.ScaleMax,
		MaxAttempts: t.MaxAttempts,
	}
}

// Regenerate re-samples the forest with the scene's placement params.
// Only invalid params are returned as an error; an exhausted attempt budget
// keeps the partial forest and is logged.
func (s *Scene) Regenerate(sampler *placement.Sampler) error {
	trees, stats, err := sampler.Generate(s.Placement)
	switch {
	case errors.Is(err, placement.ErrPlacementInfeasible):
		s.log.Warn("forest placement incomplete",
			zap.Int("requested", s.Placement.Count),
			zap.Int("placed", len(trees)),
			zap.Int("draws", stats.Draws),
			zap.Error(err))
	case err != nil:
		return fmt.Errorf("placing trees: %w", err)
	}

	s.Trees = trees
	s.Stats = stats
	s.rebuildTreeParts()

	s.log.Info("forest generated",
		zap.Int("trees", len(trees)),
		zap.Int("draws", stats.Draws),
		zap.Int("rejected_exclusion", stats.RejectedExclusion),
		zap.Int("rejected_spacing", stats.RejectedSpacing))
	return nil
}

// SetTreeModel switches trees to m, or back to primitives when m is nil.
func (s *Scene) SetTreeModel(m *Model) {
	s.TreeModel = m
	if m != nil {
		s.Meshes[MeshTreeModel] = m.Mesh
		s.log.Info("using tree model",
			zap.String("path", m.Path),
			zap.Int("vertices", len(m.Mesh.Vertices)),
			zap.Float32("scale_factor", m.ScaleFactor))
	} else {
		s.Meshes[MeshTreeModel] = nil
	}
	s.rebuildTreeParts()
}

func (s *Scene) rebuildTreeParts() {
	if s.TreeModel != nil {
		s.TreeParts = ModelTreeParts(s.Trees, s.TreeModel)
		return
	}
	s.TreeParts = PrimitiveTreeParts(s.Trees)
}

// Parts returns every opaque draw call: cabin first, then trees.
func (s *Scene) Parts() []Part {
	parts := make([]Part, 0, len(s.Cabin)+len(s.TreeParts))
	parts = append(parts, s.Cabin...)
	return append(parts, s.TreeParts...)
}

// Material resolves the color a part is drawn with. Textured parts get a
// white diffuse so the texture shows through unchanged.
func (s *Scene) Material(p Part) (m Material, textured bool) {
	m = s.Palette[p.Material]
	textured = p.Textured && s.UseTexture && p.Texture != TextureNone
	if textured {
		m.Diffuse = [3]float32{1, 1, 1}
	}
	return m, textured
}
