// Forest Panel - the SimpleForest scene with an ImGui control panel.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/simpleforest/internal/app"
	"github.com/Faultbox/simpleforest/internal/config"
	"github.com/Faultbox/simpleforest/internal/engine/renderer"
	"github.com/Faultbox/simpleforest/internal/engine/ui"
	"github.com/Faultbox/simpleforest/internal/logger"
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	p, err := newPanelApp(cfg)
	if err != nil {
		logger.Error("failed to start panel", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer p.Close()

	p.Run()
}

const (
	windowTitle   = "SimpleForest"
	screenshotDir = "screenshots"
)

// panelApp is the ImGui frontend state.
type panelApp struct {
	app      *app.App
	backend  *ui.Backend
	renderer *renderer.Renderer
	viewport *ui.Viewport
	panel    *ui.ControlPanel
	lastTime time.Time
	shownFPS float32
}

func newPanelApp(cfg *config.Config) (*panelApp, error) {
	a, err := app.New(cfg, logger.Log)
	if err != nil {
		return nil, err
	}
	// Start with the pointer free so the panel is usable.
	a.Controller.SetCapture(false)

	p := &panelApp{app: a}

	p.backend, err = ui.NewBackend(windowTitle, cfg.Graphics.Width+ui.PanelWidth, cfg.Graphics.Height, logger.Named("ui"))
	if err != nil {
		return nil, err
	}

	p.renderer, err = renderer.New(renderer.ConfigFor(cfg, cfg.Graphics.Width, cfg.Graphics.Height), a.Scene, logger.Named("renderer"))
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	p.viewport, err = ui.NewViewport(a, p.renderer, screenshotDir, logger.Named("viewport"))
	if err != nil {
		p.renderer.Close()
		return nil, fmt.Errorf("create viewport: %w", err)
	}
	p.panel = ui.NewControlPanel(a, p.viewport, logger.Named("panel"))
	return p, nil
}

// Run starts the ImGui loop.
func (p *panelApp) Run() {
	p.lastTime = time.Now()
	p.backend.Run(p.frame)
}

func (p *panelApp) frame() {
	now := time.Now()
	dt := float32(now.Sub(p.lastTime).Seconds())
	p.lastTime = now

	ui.PollKeys(p.app.Controller)
	if p.app.Controller.QuitRequested() {
		p.backend.Quit()
	}
	p.app.Update(dt)
	if fps := p.app.FPS.FPS(); fps != p.shownFPS {
		p.shownFPS = fps
		p.backend.SetWindowTitle(fmt.Sprintf("%s - %.0f FPS", windowTitle, fps))
	}

	pos, size := ui.WorkArea()
	p.panel.Draw(pos, imgui.NewVec2(ui.PanelWidth, size.Y))
	p.viewport.Draw(imgui.NewVec2(pos.X+ui.PanelWidth, pos.Y), imgui.NewVec2(size.X-ui.PanelWidth, size.Y))
}

// Close releases GPU resources.
func (p *panelApp) Close() {
	if p.viewport != nil {
		p.viewport.Close()
	}
	if p.renderer != nil {
		p.renderer.Close()
	}
}
