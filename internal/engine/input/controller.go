package input

import (
	"github.com/Faultbox/simpleforest/internal/engine/camera"
)

// Controller routes input to the fly camera and tracks the toggles the
// frontend acts on (pointer capture, textures, quit).
type Controller struct {
	Camera   *camera.FlyCamera
	Keys     KeySet
	Captured bool

	// OnCapture is called whenever capture changes, so the frontend can
	// grab or release the system pointer.
	OnCapture func(captured bool)

	texturesToggled bool
	quit            bool
}

// NewController creates a controller driving cam. Capture starts enabled.
func NewController(cam *camera.FlyCamera) *Controller {
	return &Controller{
		Camera:   cam,
		Captured: true,
	}
}

// HandleKey records a key transition. Toggles fire on the press edge only,
// so key repeat does not flip them back and forth.
func (c *Controller) HandleKey(sym Symbol, down bool) {
	if sym == KeyNone {
		return
	}
	if !down {
		c.Keys.Release(sym)
		return
	}
	if !c.Keys.Press(sym) {
		return
	}

	switch sym {
	case KeyToggleCapture:
		c.SetCapture(!c.Captured)
	case KeyToggleTextures:
		c.texturesToggled = !c.texturesToggled
	case KeyQuit:
		c.quit = true
	}
}

// HandlePointer forwards an absolute pointer position to the camera while
// the pointer is captured.
func (c *Controller) HandlePointer(x, y float32) {
	if !c.Captured {
		return
	}
	c.Camera.HandlePointer(x, y)
}

// SetCapture switches pointer capture. Turning capture on re-arms the
// camera's first-sample flag.
func (c *Controller) SetCapture(captured bool) {
	if captured == c.Captured {
		return
	}
	c.Captured = captured
	if captured {
		c.Camera.ResetPointer()
	}
	if c.OnCapture != nil {
		c.OnCapture(captured)
	}
}

// Update applies held movement keys for a frame of dt seconds.
func (c *Controller) Update(dt float32) {
	if c.Keys.Held(KeyForward) {
		c.Camera.Move(camera.Forward, dt)
	}
	if c.Keys.Held(KeyBackward) {
		c.Camera.Move(camera.Backward, dt)
	}
	if c.Keys.Held(KeyLeft) {
		c.Camera.Move(camera.Left, dt)
	}
	if c.Keys.Held(KeyRight) {
		c.Camera.Move(camera.Right, dt)
	}
}

// TakeTextureToggle reports whether the texture toggle was pressed an odd
// number of times since the last call, and clears it.
func (c *Controller) TakeTextureToggle() bool {
	t := c.texturesToggled
	c.texturesToggled = false
	return t
}

// RequestQuit marks the controller as finished, e.g. on a window close.
func (c *Controller) RequestQuit() {
	c.quit = true
}

// QuitRequested reports whether Escape or a close request was seen.
func (c *Controller) QuitRequested() bool {
	return c.quit
}
