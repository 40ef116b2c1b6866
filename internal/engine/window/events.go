package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/simpleforest/internal/engine/input"
)

// FromScancode maps a physical key to its logical symbol.
func FromScancode(sc sdl.Scancode) (input.Symbol, bool) {
	switch sc {
	case sdl.SCANCODE_W:
		return input.KeyForward, true
	case sdl.SCANCODE_S:
		return input.KeyBackward, true
	case sdl.SCANCODE_A:
		return input.KeyLeft, true
	case sdl.SCANCODE_D:
		return input.KeyRight, true
	case sdl.SCANCODE_TAB:
		return input.KeyToggleCapture, true
	case sdl.SCANCODE_T:
		return input.KeyToggleTextures, true
	case sdl.SCANCODE_ESCAPE:
		return input.KeyQuit, true
	}
	return input.KeyNone, false
}

// PollEvents drains the SDL event queue into ctrl. It returns the new
// drawable size when the window was resized, or (0, 0).
//
// Pointer positions are accumulated from relative motion so the camera sees
// a continuous absolute position even while the cursor is captured.
func (w *Window) PollEvents(ctrl *input.Controller) (width, height int) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			ctrl.RequestQuit()

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				width, height = int(e.Data1), int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if sym, ok := FromScancode(e.Keysym.Scancode); ok {
				ctrl.HandleKey(sym, e.Type == sdl.KEYDOWN)
			}

		case *sdl.MouseMotionEvent:
			w.pointerX += float32(e.XRel)
			w.pointerY += float32(e.YRel)
			ctrl.HandlePointer(w.pointerX, w.pointerY)
		}
	}
	return width, height
}
