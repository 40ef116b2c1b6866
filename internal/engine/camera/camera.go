// Package camera provides the first-person fly camera used to walk the scene.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/simpleforest/pkg/math"
)

// Pitch limits in degrees. Stopping short of 90 keeps Front from becoming
// parallel to Up, which would collapse the strafe axis.
const (
	MinPitch = -89.0
	MaxPitch = 89.0
)

// Direction is a movement direction relative to where the camera looks.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// FlyCamera is a yaw/pitch camera that moves freely in the direction it
// faces. Angles are in degrees.
type FlyCamera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3

	Yaw   float32
	Pitch float32

	Speed       float32 // world units per second
	Sensitivity float32 // degrees per pixel

	// Pointer reference. The first sample after a reset only records it,
	// so re-capturing the mouse never produces a jump.
	firstSample  bool
	lastX, lastY float32
}

// NewFlyCamera creates a camera at eye height in front of the cabin,
// looking down -Z.
func NewFlyCamera() *FlyCamera {
	c := &FlyCamera{
		Position:    math.Vec3{X: 0, Y: 1.6, Z: 5},
		Up:          math.Up,
		Yaw:         -90,
		Pitch:       0,
		Speed:       3.5,
		Sensitivity: 0.1,
		firstSample: true,
		lastX:       400,
		lastY:       300,
	}
	c.updateFront()
	return c
}

// HandlePointer feeds an absolute pointer position. Moving right turns
// right; moving up (smaller y) looks up.
func (c *FlyCamera) HandlePointer(x, y float32) {
	if c.firstSample {
		c.lastX, c.lastY = x, y
		c.firstSample = false
		return
	}

	dx := (x - c.lastX) * c.Sensitivity
	dy := (c.lastY - y) * c.Sensitivity
	c.lastX, c.lastY = x, y

	c.Yaw += dx
	c.Pitch += dy

	// Clamp pitch
	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < MinPitch {
		c.Pitch = MinPitch
	}

	c.updateFront()
}

// ResetPointer arms the first-sample flag so the next HandlePointer call
// only records its position.
func (c *FlyCamera) ResetPointer() {
	c.firstSample = true
}

// Reference returns the last recorded pointer position.
func (c *FlyCamera) Reference() (x, y float32) {
	return c.lastX, c.lastY
}

// Move translates the camera by Speed*dt along Front (forward/backward) or
// along the horizontal right axis (left/right).
func (c *FlyCamera) Move(dir Direction, dt float32) {
	velocity := c.Speed * dt

	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Scale(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Scale(velocity))
	case Left:
		c.Position = c.Position.Sub(c.RightVector().Scale(velocity))
	case Right:
		c.Position = c.Position.Add(c.RightVector().Scale(velocity))
	}
}

// RightVector returns normalize(Front x Up).
func (c *FlyCamera) RightVector() math.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// ViewMatrix returns the view matrix looking from Position along Front.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// SkyboxView returns the view matrix with its translation removed, so the
// sky cube stays centered on the viewer.
func (c *FlyCamera) SkyboxView() math.Mat4 {
	return c.ViewMatrix().WithoutTranslation()
}

func (c *FlyCamera) updateFront() {
	yaw := math.Radians(c.Yaw)
	pitch := math.Radians(c.Pitch)

	c.Front = math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}
