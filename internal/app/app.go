// Package app ties the scene, camera and input together. It holds no GL
// state, so both the plain SDL frontend and the ImGui panel share it.
package app

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/simpleforest/internal/assets"
	"github.com/Faultbox/simpleforest/internal/config"
	"github.com/Faultbox/simpleforest/internal/engine/camera"
	"github.com/Faultbox/simpleforest/internal/engine/input"
	"github.com/Faultbox/simpleforest/internal/logger"
	"github.com/Faultbox/simpleforest/internal/placement"
	"github.com/Faultbox/simpleforest/internal/scene"
)

// ErrModelUnavailable is returned when a tree model cannot be loaded.
var ErrModelUnavailable = errors.New("tree model unavailable")

// App is the frontend-independent application state.
type App struct {
	Config     *config.Config
	Scene      *scene.Scene
	Camera     *camera.FlyCamera
	Controller *input.Controller
	Models     *assets.GLTFSource
	FPS        FPSCounter

	sampler *placement.Sampler
	log     *zap.Logger
}

// NewSampler returns a sampler for seed, or a clock-seeded one for 0.
func NewSampler(seed uint64) *placement.Sampler {
	if seed == 0 {
		return placement.NewTimeSeeded()
	}
	return placement.NewSampler(rand.NewPCG(seed, seed))
}

// New builds the scene described by cfg and a camera at its start pose.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	log = logger.OrNop(log)

	a := &App{
		Config:  cfg,
		Models:  assets.NewGLTFSource(log.Named("assets")),
		sampler: NewSampler(cfg.Scene.Seed),
		log:     log,
	}

	var err error
	a.Scene, err = scene.Build(cfg, a.sampler, a.Models, log.Named("scene"))
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	a.Camera = camera.NewFlyCamera()
	a.Camera.Speed = cfg.Camera.Speed
	a.Camera.Sensitivity = cfg.Camera.Sensitivity
	a.Controller = input.NewController(a.Camera)

	log.Info("scene ready",
		zap.Int("trees", len(a.Scene.Trees)),
		zap.Int("parts", len(a.Scene.Parts())),
		zap.Bool("textured", a.Scene.UseTexture),
		zap.Bool("tree_model", a.Scene.TreeModel != nil))
	return a, nil
}

// Update advances one frame of dt seconds: applies held keys and a pending
// texture toggle.
func (a *App) Update(dt float32) {
	a.FPS.Tick(dt)
	a.Controller.Update(dt)
	if a.Controller.TakeTextureToggle() {
		a.SetTextured(!a.Scene.UseTexture)
	}
}

// SetTextured switches between textured and solid-color materials.
func (a *App) SetTextured(on bool) {
	if a.Scene.UseTexture == on {
		return
	}
	a.Scene.UseTexture = on
	a.log.Debug("textures toggled", zap.Bool("enabled", on))
}

// Regenerate re-samples the forest.
func (a *App) Regenerate() error {
	return a.Scene.Regenerate(a.sampler)
}

// LoadTreeModel replaces the primitive trees with the model at path.
// On failure the current trees stay in place.
func (a *App) LoadTreeModel(path string) error {
	m, ok := a.Models.TryLoad(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrModelUnavailable, path)
	}
	a.Scene.SetTreeModel(m)
	return nil
}

// ClearTreeModel goes back to cone and cylinder trees.
func (a *App) ClearTreeModel() {
	a.Scene.SetTreeModel(nil)
}
