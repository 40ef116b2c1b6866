package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/simpleforest/internal/app"
	"github.com/Faultbox/simpleforest/internal/engine/debug"
	"github.com/Faultbox/simpleforest/internal/engine/input"
	"github.com/Faultbox/simpleforest/internal/engine/renderer"
	"github.com/Faultbox/simpleforest/internal/logger"
)

// keyBindings maps ImGui keys to controller symbols.
var keyBindings = []struct {
	key imgui.Key
	sym input.Symbol
}{
	{imgui.KeyW, input.KeyForward},
	{imgui.KeyS, input.KeyBackward},
	{imgui.KeyA, input.KeyLeft},
	{imgui.KeyD, input.KeyRight},
	{imgui.KeyTab, input.KeyToggleCapture},
	{imgui.KeyT, input.KeyToggleTextures},
	{imgui.KeyEscape, input.KeyQuit},
}

// PollKeys feeds the current key state into ctrl. The controller only acts
// on transitions, so reporting a held key every frame is harmless.
func PollKeys(ctrl *input.Controller) {
	for _, b := range keyBindings {
		ctrl.HandleKey(b.sym, imgui.IsKeyDown(b.key))
	}
}

// Viewport renders the scene into an offscreen target and shows it as an
// ImGui image. While the controller is captured, hovering the image steers
// the camera.
type Viewport struct {
	app      *app.App
	renderer *renderer.Renderer
	target   *renderer.Target
	shots    *debug.Screenshots
	log      *zap.Logger
	hovered  bool

	// Capture after the next render so the file holds a finished frame.
	captureRequested bool
	// LastCapture is the path of the last saved screenshot, or the error.
	LastCapture string
}

// NewViewport creates a viewport drawing a's scene with r. Screenshots are
// written into shotDir.
func NewViewport(a *app.App, r *renderer.Renderer, shotDir string, log *zap.Logger) (*Viewport, error) {
	t, err := renderer.NewTarget(a.Config.Graphics.Width, a.Config.Graphics.Height)
	if err != nil {
		return nil, err
	}
	return &Viewport{
		app:      a,
		renderer: r,
		target:   t,
		shots:    debug.NewScreenshots(shotDir, "forest"),
		log:      logger.OrNop(log),
	}, nil
}

// RequestCapture saves the viewport as a PNG after the next render.
func (v *Viewport) RequestCapture() {
	v.captureRequested = true
}

// Draw renders the scene at the given window position and size.
func (v *Viewport) Draw(pos, size imgui.Vec2) {
	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyF12)) {
		v.RequestCapture()
	}

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse |
		imgui.WindowFlagsNoScrollbar

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(size)
	if imgui.BeginV("Forest", nil, flags) {
		avail := imgui.ContentRegionAvail()
		w, h := int(avail.X), int(avail.Y)
		if w > 0 && h > 0 {
			v.render(w, h)

			texRef := imgui.NewTextureRefTextureID(imgui.TextureID(v.target.Texture()))
			imgui.ImageWithBgV(
				*texRef,
				imgui.NewVec2(float32(w), float32(h)),
				imgui.NewVec2(0, 1), // GL origin is bottom-left
				imgui.NewVec2(1, 0),
				imgui.NewVec4(0, 0, 0, 1),
				imgui.NewVec4(1, 1, 1, 1),
			)
			v.handlePointer(imgui.IsItemHovered())
		}
	}
	imgui.End()
}

func (v *Viewport) render(w, h int) {
	v.target.Resize(w, h)
	restore := v.target.Bind()
	defer restore()

	v.renderer.SyncMeshes(v.app.Scene)
	v.renderer.Resize(w, h)
	v.renderer.Draw(v.app.Scene, renderer.CameraView(v.app.Camera))

	if v.captureRequested {
		v.captureRequested = false
		v.capture(w, h)
	}
}

func (v *Viewport) capture(w, h int) {
	path, err := v.shots.Save(v.target.ReadPixels(), w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		v.LastCapture = err.Error()
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
	v.LastCapture = path
}

func (v *Viewport) handlePointer(hovered bool) {
	ctrl := v.app.Controller
	if hovered && !v.hovered {
		// Entering the image must not turn the camera by the jump.
		ctrl.Camera.ResetPointer()
	}
	v.hovered = hovered
	if hovered {
		p := imgui.MousePos()
		ctrl.HandlePointer(p.X, p.Y)
	}
}

// Close releases the offscreen target.
func (v *Viewport) Close() {
	v.target.Delete()
}
