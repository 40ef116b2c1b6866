// Package math provides the float32 vector and matrix types shared by the
// mesh builders, the placement sampler and the camera.
package math

import "github.com/chewxy/math32"

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Vec2 is a point on the ground plane; the placement sampler stores world
// X in X and world Z in Y.
type Vec2 struct {
	X, Y float32
}

// Up is the world up axis.
var Up = Vec3{0, 1, 0}

// Vec3From builds a Vec3 from the array layout used by vertex buffers.
func Vec3From(a [3]float32) Vec3 { return Vec3{a[0], a[1], a[2]} }

// Array is the inverse of Vec3From.
func (v Vec3) Array() [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float32) Vec3 { return Vec3{s * v.X, s * v.Y, s * v.Z} }
func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Length() float32 { return math32.Sqrt(v.Dot(v)) }
func (v Vec3) Distance(o Vec3) float32 { return o.Sub(v).Length() }

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l > 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

// XZ projects v onto the ground plane.
func (v Vec3) XZ() Vec2 { return Vec2{v.X, v.Z} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{s * v.X, s * v.Y} }
func (v Vec2) Length() float32 { return math32.Sqrt(v.X*v.X + v.Y*v.Y) }

// Distance returns |o - v|.
func (v Vec2) Distance(o Vec2) float32 { return o.Sub(v).Length() }

// DistanceSq returns |o - v|², which the sampler compares against the
// squared spacing to avoid a square root per pair.
func (v Vec2) DistanceSq(o Vec2) float32 {
	dx, dy := o.X-v.X, o.Y-v.Y
	return dx*dx + dy*dy
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * (math32.Pi / 180)
}
