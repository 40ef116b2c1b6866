// Package game runs the plain SDL frontend: one window, the scene filling
// it, keyboard and captured mouse for the fly camera.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/simpleforest/internal/app"
	"github.com/Faultbox/simpleforest/internal/engine/renderer"
	"github.com/Faultbox/simpleforest/internal/engine/window"
	"github.com/Faultbox/simpleforest/internal/logger"
)

const title = "SimpleForest"

// Game owns the window and renderer around an app.App.
type Game struct {
	app      *app.App
	window   *window.Window
	renderer *renderer.Renderer
	log      *zap.Logger
}

// New opens the window and uploads a's scene.
func New(a *app.App, log *zap.Logger) (*Game, error) {
	log = logger.OrNop(log)
	cfg := a.Config

	log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	g := &Game{app: a, log: log}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.GetSize()
	g.renderer, err = renderer.New(renderer.ConfigFor(a.Config, width, height), a.Scene, log.Named("renderer"))
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.Controller.OnCapture = g.window.SetCapture
	g.window.SetCapture(a.Controller.Captured)

	log.Info("game initialized successfully")
	return g, nil
}

// Run drives frames until Escape or a window close.
func (g *Game) Run() error {
	lastTime := time.Now()
	var shownFPS float32
	g.log.Info("starting game loop")

	for !g.app.Controller.QuitRequested() {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if w, h := g.window.PollEvents(g.app.Controller); w > 0 && h > 0 {
			g.renderer.Resize(w, h)
		}

		g.app.Update(dt)
		if fps := g.app.FPS.FPS(); fps != shownFPS {
			shownFPS = fps
			g.window.SetTitle(fmt.Sprintf("%s - %.0f FPS", title, fps))
			g.log.Debug("fps", zap.Float32("fps", fps), zap.Float32("dt_ms", dt*1000))
		}

		g.renderer.SyncMeshes(g.app.Scene)
		g.renderer.Draw(g.app.Scene, renderer.CameraView(g.app.Camera))
		g.window.SwapBuffers()
	}
	return nil
}

// Close releases GPU resources and the window.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
