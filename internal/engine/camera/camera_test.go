package camera

import (
	"testing"

	"github.com/Faultbox/simpleforest/pkg/math"
)

const eps = 1e-4

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func vecNear(a, b math.Vec3) bool {
	return abs(a.X-b.X) < eps && abs(a.Y-b.Y) < eps && abs(a.Z-b.Z) < eps
}

func TestNewFlyCamera(t *testing.T) {
	c := NewFlyCamera()

	if c.Position != (math.Vec3{X: 0, Y: 1.6, Z: 5}) {
		t.Errorf("Position = %v", c.Position)
	}
	if !vecNear(c.Front, math.Vec3{X: 0, Y: 0, Z: -1}) {
		t.Errorf("Front = %v, want (0,0,-1)", c.Front)
	}
	if c.Yaw != -90 || c.Pitch != 0 || c.Speed != 3.5 || c.Sensitivity != 0.1 {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if x, y := c.Reference(); x != 400 || y != 300 {
		t.Errorf("Reference = (%v, %v), want (400, 300)", x, y)
	}
}

func TestFirstPointerSampleOnlyRecords(t *testing.T) {
	c := NewFlyCamera()
	c.HandlePointer(400, 300)

	if c.Yaw != -90 || c.Pitch != 0 {
		t.Errorf("first sample changed orientation: yaw=%v pitch=%v", c.Yaw, c.Pitch)
	}
	if x, y := c.Reference(); x != 400 || y != 300 {
		t.Errorf("Reference = (%v, %v), want (400, 300)", x, y)
	}

	// A far-away first sample must not jump either.
	c = NewFlyCamera()
	c.HandlePointer(1000, 10)
	if c.Yaw != -90 || c.Pitch != 0 {
		t.Errorf("first sample changed orientation: yaw=%v pitch=%v", c.Yaw, c.Pitch)
	}
}

func TestPointerTurnsCamera(t *testing.T) {
	c := NewFlyCamera()
	c.HandlePointer(400, 300)
	c.HandlePointer(410, 300)

	if abs(c.Yaw-(-89)) > eps {
		t.Errorf("Yaw = %v, want -89", c.Yaw)
	}
	if c.Pitch != 0 {
		t.Errorf("Pitch = %v, want 0", c.Pitch)
	}

	// Moving the pointer up looks up.
	c.HandlePointer(410, 280)
	if abs(c.Pitch-2) > eps {
		t.Errorf("Pitch = %v, want 2", c.Pitch)
	}
	if c.Front.Y <= 0 {
		t.Errorf("Front.Y = %v, want positive after looking up", c.Front.Y)
	}
}

func TestPitchClamped(t *testing.T) {
	c := NewFlyCamera()
	c.HandlePointer(0, 0)

	c.HandlePointer(0, -5000)
	if c.Pitch != MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, MaxPitch)
	}
	c.HandlePointer(0, 10000)
	if c.Pitch != MinPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, MinPitch)
	}
	if abs(c.Front.Length()-1) > eps {
		t.Errorf("Front not unit: %v", c.Front)
	}
}

func TestResetPointer(t *testing.T) {
	c := NewFlyCamera()
	c.HandlePointer(400, 300)
	c.HandlePointer(420, 300)
	yaw := c.Yaw

	c.ResetPointer()
	c.HandlePointer(10, 10)
	if c.Yaw != yaw {
		t.Errorf("sample after reset turned the camera: %v -> %v", yaw, c.Yaw)
	}
	if x, y := c.Reference(); x != 10 || y != 10 {
		t.Errorf("Reference = (%v, %v), want (10, 10)", x, y)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		dir  Direction
		want math.Vec3
	}{
		{Forward, math.Vec3{X: 0, Y: 1.6, Z: 5 - 3.5}},
		{Backward, math.Vec3{X: 0, Y: 1.6, Z: 5 + 3.5}},
		{Left, math.Vec3{X: -3.5, Y: 1.6, Z: 5}},
		{Right, math.Vec3{X: 3.5, Y: 1.6, Z: 5}},
	}

	for _, tt := range tests {
		c := NewFlyCamera()
		c.Move(tt.dir, 1)
		if !vecNear(c.Position, tt.want) {
			t.Errorf("Move(%d, 1) -> %v, want %v", tt.dir, c.Position, tt.want)
		}
	}
}

func TestMoveScalesWithDelta(t *testing.T) {
	c := NewFlyCamera()
	start := c.Position
	c.Move(Forward, 0.5)
	if d := c.Position.Distance(start); abs(d-c.Speed*0.5) > eps {
		t.Errorf("moved %v, want %v", d, c.Speed*0.5)
	}
}

func TestViewMatrixPlacesEyeAtOrigin(t *testing.T) {
	c := NewFlyCamera()
	view := c.ViewMatrix()

	eye := view.TransformPoint(c.Position)
	if !vecNear(eye, math.Vec3{}) {
		t.Errorf("eye in view space = %v, want origin", eye)
	}
	ahead := view.TransformPoint(c.Position.Add(c.Front))
	if !vecNear(ahead, math.Vec3{X: 0, Y: 0, Z: -1}) {
		t.Errorf("point ahead in view space = %v, want (0,0,-1)", ahead)
	}

	sky := c.SkyboxView()
	if sky[12] != 0 || sky[13] != 0 || sky[14] != 0 {
		t.Errorf("skybox view keeps translation: %v", sky)
	}
}
