package math

import "testing"

func near(a, b Vec3) bool {
	return abs(a.X-b.X) < 1e-5 && abs(a.Y-b.Y) < 1e-5 && abs(a.Z-b.Z) < 1e-5
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestIdentityIsNeutral(t *testing.T) {
	m := Translate(1, 2, 3).Mul(Scale(2, 2, 2))
	for name, got := range map[string]Mat4{
		"M*I": m.Mul(Identity()),
		"I*M": Identity().Mul(m),
	} {
		if got != m {
			t.Errorf("%s = %v, want %v", name, got, m)
		}
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"translate", Translate(0, 1, 0), Vec3{1, 1, 1}, Vec3{1, 2, 1}},
		{"scale", Scale(3, 2, 4), Vec3{0.5, 0.5, 0.5}, Vec3{1.5, 1, 2}},
		// Scale applies first, then the translation.
		{"translate*scale", Translate(0, 1, 0).Mul(Scale(3, 2, 4)), Vec3{0.5, 0.5, 0.5}, Vec3{1.5, 2, 2}},
		{"scale*translate", Scale(3, 2, 4).Mul(Translate(0, 1, 0)), Vec3{0.5, 0.5, 0.5}, Vec3{1.5, 3, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !near(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	got := TranslateVec(Vec3{10, 20, 30}).TransformDirection(Vec3{0, 0, 1})
	if got != (Vec3{0, 0, 1}) {
		t.Errorf("TransformDirection = %v, want (0, 0, 1)", got)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	const zNear, zFar = 0.1, 200
	m := Perspective(Radians(60), 16.0/9.0, zNear, zFar)
	if m[11] != -1 || m[15] != 0 {
		t.Fatalf("w row = (%v, %v), want (-1, 0)", m[11], m[15])
	}
	// The near plane maps to -1 and the far plane to +1 after the w divide.
	if z := m.TransformPoint(Vec3{0, 0, -zNear}).Z; abs(z+1) > 1e-4 {
		t.Errorf("near plane depth = %v, want -1", z)
	}
	if z := m.TransformPoint(Vec3{0, 0, -zFar}).Z; abs(z-1) > 1e-4 {
		t.Errorf("far plane depth = %v, want 1", z)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 1.6, 5}
	m := LookAt(eye, eye.Add(Vec3{0, 0, -1}), Up)

	if got := m.TransformPoint(eye); !near(got, Vec3{}) {
		t.Errorf("eye maps to %v, want origin", got)
	}
	if got := m.TransformPoint(Vec3{0, 1.6, 0}); !near(got, Vec3{0, 0, -5}) {
		t.Errorf("point ahead maps to %v, want (0, 0, -5)", got)
	}
}

func TestWithoutTranslation(t *testing.T) {
	r := Translate(5, 6, 7).Mul(Scale(2, 2, 2)).WithoutTranslation()
	if r != Scale(2, 2, 2) {
		t.Errorf("WithoutTranslation = %v, want uniform scale 2", r)
	}
}
