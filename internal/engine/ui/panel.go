package ui

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/simpleforest/internal/app"
	"github.com/Faultbox/simpleforest/internal/logger"
	"github.com/Faultbox/simpleforest/internal/scene"
)

// PanelWidth is the fixed width of the control panel.
const PanelWidth = 300

var colorEdits = []struct {
	label string
	id    scene.MaterialID
}{
	{"Wall", scene.MaterialWood},
	{"Roof", scene.MaterialRoof},
	{"Window", scene.MaterialWindow},
	{"Door", scene.MaterialDoor},
	{"Trunk", scene.MaterialTrunk},
	{"Crown", scene.MaterialCrown},
}

// ControlPanel is the "Scene Control" window: textures, colors, lighting,
// pointer capture and forest controls.
type ControlPanel struct {
	app      *app.App
	viewport *Viewport
	log      *zap.Logger

	// File dialog results, applied on the main thread.
	picked     chan string
	dialogOpen bool
	status     string
}

// NewControlPanel creates a panel editing a's scene shown in vp.
func NewControlPanel(a *app.App, vp *Viewport, log *zap.Logger) *ControlPanel {
	return &ControlPanel{
		app:      a,
		viewport: vp,
		log:      logger.OrNop(log),
		picked:   make(chan string, 1),
	}
}

// Draw lays out the panel at pos with the given size.
func (p *ControlPanel) Draw(pos, size imgui.Vec2) {
	p.applyPicked()

	sc := p.app.Scene
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(size)
	if imgui.BeginV("Scene Control", nil, flags) {
		imgui.Text(fmt.Sprintf("FPS: %.1f", p.app.FPS.FPS()))
		imgui.Text(fmt.Sprintf("Trees: %d / %d", len(sc.Trees), sc.Placement.Count))

		textured := sc.UseTexture
		if imgui.Checkbox("Use textures (T)", &textured) {
			p.app.SetTextured(textured)
		}

		imgui.Separator()
		imgui.Text("Colors")
		for _, e := range colorEdits {
			imgui.ColorEdit3(e.label, &sc.Palette[e.id].Diffuse)
		}

		imgui.Separator()
		imgui.Text("Light")
		if imgui.SliderFloat3("Direction", &sc.Lighting.Direction, -1, 1) {
			sc.Lighting.Normalize()
		}
		imgui.ColorEdit3("Light Color", &sc.Lighting.Color)

		imgui.Separator()
		p.drawCamera()

		imgui.Separator()
		p.drawForest()

		if p.status != "" {
			imgui.Separator()
			imgui.TextWrapped(p.status)
		}
	}
	imgui.End()
}

func (p *ControlPanel) drawCamera() {
	ctrl := p.app.Controller
	cam := p.app.Camera

	imgui.Text("Camera")
	imgui.Text(fmt.Sprintf("Position: %.1f, %.1f, %.1f", cam.Position.X, cam.Position.Y, cam.Position.Z))
	imgui.Text(fmt.Sprintf("Yaw %.0f  Pitch %.0f", cam.Yaw, cam.Pitch))

	label := "Capture mouse (Tab)"
	if ctrl.Captured {
		label = "Release mouse (Tab)"
	}
	if imgui.Button(label) {
		ctrl.SetCapture(!ctrl.Captured)
	}
	imgui.TextDisabled("WASD to move")

	if imgui.Button("Screenshot (F12)") {
		p.viewport.RequestCapture()
	}
	if last := p.viewport.LastCapture; last != "" {
		imgui.TextWrapped(last)
	}
}

func (p *ControlPanel) drawForest() {
	imgui.Text("Forest")
	if imgui.Button("Regenerate forest") {
		if err := p.app.Regenerate(); err != nil {
			p.status = err.Error()
			p.log.Error("regenerate failed", zap.Error(err))
		} else {
			p.status = fmt.Sprintf("Placed %d trees in %d draws", len(p.app.Scene.Trees), p.app.Scene.Stats.Draws)
		}
	}

	if p.dialogOpen {
		imgui.TextDisabled("Choosing model...")
	} else if imgui.Button("Load tree model...") {
		p.openModelDialog()
	}

	if m := p.app.Scene.TreeModel; m != nil {
		imgui.Text("Model: " + filepath.Base(m.Path))
		if imgui.Button("Use primitive trees") {
			p.app.ClearTreeModel()
			p.status = ""
		}
	}
	if stats := p.app.Models.Stats(); stats.Misses > 0 {
		imgui.TextDisabled("Models: " + stats.String())
	}
}

// openModelDialog shows the native file dialog without blocking the frame.
func (p *ControlPanel) openModelDialog() {
	p.dialogOpen = true
	go func() {
		filename, err := dialog.File().
			Filter("glTF models", "gltf", "glb").
			Filter("All Files", "*").
			Title("Load Tree Model").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				p.log.Warn("file dialog failed", zap.Error(err))
			}
			filename = ""
		}
		p.picked <- filename
	}()
}

// applyPicked loads a model chosen in the dialog. GL uploads happen on the
// main thread, so the dialog goroutine only hands over the path.
func (p *ControlPanel) applyPicked() {
	select {
	case path := <-p.picked:
		p.dialogOpen = false
		if path == "" {
			return
		}
		if err := p.app.LoadTreeModel(path); err != nil {
			p.status = err.Error()
			return
		}
		p.status = "Loaded " + filepath.Base(path)
	default:
	}
}
