// Package camera implements an orbit camera in the style of an arc-rotate
// camera: it circles Target at Radius, steered by two angles.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type OrbitCamera struct {
	Target mgl32.Vec3
	Alpha  float32 // longitude around Y, radians
	Beta   float32 // angle from +Y, radians
	Radius float32

	RotateSpeed float32 // radians per pixel of drag
	ZoomSpeed   float32 // radius units per wheel notch
	MinRadius   float32
	MaxRadius   float32
	Fovy        float32
}

func New(target mgl32.Vec3, alpha, beta, radius float32) *OrbitCamera {
	c := &OrbitCamera{
		Target:      target,
		Alpha:       alpha,
		Beta:        beta,
		Radius:      radius,
		RotateSpeed: 0.01,
		ZoomSpeed:   0.5,
		MinRadius:   1,
		MaxRadius:   50,
		Fovy:        45,
	}
	c.clamp()
	return c
}

// Position returns the eye position on the sphere around Target.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	sinB, cosB := math32.Sincos(c.Beta)
	sinA, cosA := math32.Sincos(c.Alpha)
	offset := mgl32.Vec3{
		c.Radius * cosA * sinB,
		c.Radius * cosB,
		c.Radius * sinA * sinB,
	}
	return c.Target.Add(offset)
}

// Rotate applies a mouse drag in pixels.
func (c *OrbitCamera) Rotate(dx, dy float32) {
	c.Alpha -= dx * c.RotateSpeed
	c.Beta -= dy * c.RotateSpeed
	c.clamp()
}

// Zoom moves the camera toward Target for positive wheel values.
func (c *OrbitCamera) Zoom(wheel float32) {
	c.Radius -= wheel * c.ZoomSpeed
	c.clamp()
}

func (c *OrbitCamera) clamp() {
	// Keep Beta off the poles so the up vector stays valid
	const eps = 0.01
	if c.Beta < eps {
		c.Beta = eps
	}
	if c.Beta > math32.Pi-eps {
		c.Beta = math32.Pi - eps
	}
	if c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius > 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}
