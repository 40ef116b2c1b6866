// Package ui hosts the ImGui frontend: the SDL backend window, the scene
// viewport and the control panel.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/simpleforest/internal/logger"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger
}

// NewBackend creates the window and GL context and loads GL function
// pointers for the scene renderer.
func NewBackend(title string, width, height int, log *zap.Logger) (*Backend, error) {
	b := &Backend{log: logger.OrNop(log)}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		imgui.StyleColorsDark()
	})

	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}
	b.log.Info("imgui backend ready",
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int("width", width),
		zap.Int("height", height))
	return b, nil
}

// Run starts the main loop; frame is called once per frame between
// NewFrame and Render.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// Quit ends the main loop after the current frame.
func (b *Backend) Quit() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// WorkArea returns the main viewport work area.
func WorkArea() (pos, size imgui.Vec2) {
	viewport := imgui.MainViewport()
	return viewport.WorkPos(), viewport.WorkSize()
}
