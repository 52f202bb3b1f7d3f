// Package camera provides the orbiting viewpoint for the scene.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Clip planes shared by both projection modes.
const (
	nearPlane = 0.1
	farPlane  = 100.0
)

// Orbit circles a center point at a distance, always looking inward.
// Pitch and Yaw are in radians. Fields may be adjusted directly
// between frames.
type Orbit struct {
	Center   mgl32.Vec3
	Distance float32
	Pitch    float32
	Yaw      float32

	MinDistance, MaxDistance float32
	MinPitch, MaxPitch       float32

	DragSensitivity float32
	ZoomSensitivity float32

	FOV   float32 // vertical field of view, degrees
	Ortho bool
}

// New creates an orbit camera aimed at the middle of the tabletop
// arrangement. Angles are taken in degrees.
func New(distance, pitchDeg, yawDeg, fovDeg float32) *Orbit {
	return &Orbit{
		Center:   mgl32.Vec3{0, 2, 0},
		Distance: distance,
		Pitch:    mgl32.DegToRad(pitchDeg),
		Yaw:      mgl32.DegToRad(yawDeg),
		FOV:      fovDeg,

		MinDistance: 2,
		MaxDistance: 60,
		MinPitch:    0.1,
		MaxPitch:    1.5,

		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera's world-space location.
func (c *Orbit) Position() mgl32.Vec3 {
	cosPitch := math32.Cos(c.Pitch)
	return c.Center.Add(mgl32.Vec3{
		c.Distance * cosPitch * math32.Sin(c.Yaw),
		c.Distance * math32.Sin(c.Pitch),
		c.Distance * cosPitch * math32.Cos(c.Yaw),
	})
}

// ViewMatrix looks from the orbit position toward the center.
func (c *Orbit) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// Projection returns the projection matrix for the given viewport.
// The orthographic variant matches the perspective framing at the
// current orbit distance.
func (c *Orbit) Projection(width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	if c.Ortho {
		h := c.Distance * math32.Tan(mgl32.DegToRad(c.FOV)/2)
		return mgl32.Ortho(-h*aspect, h*aspect, -h, h, nearPlane, farPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, nearPlane, farPlane)
}

// Drag rotates the orbit by a mouse delta. Pitch stays clamped so the
// view can neither dive under the table nor flip over the top.
func (c *Orbit) Drag(dx, dy float32) {
	c.Yaw -= dx * c.DragSensitivity
	c.Pitch = clamp(c.Pitch+dy*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// Zoom moves the orbit along its sight line. Steps are proportional to
// distance so the wheel feels the same near and far.
func (c *Orbit) Zoom(delta float32) {
	c.Distance = clamp(c.Distance*(1-delta*c.ZoomSensitivity), c.MinDistance, c.MaxDistance)
}

// Pan moves the center point in view-relative directions. Speed scales
// with distance so a step covers the same fraction of the view.
func (c *Orbit) Pan(forward, right, up float32) {
	speed := c.Distance * 0.01
	sinYaw := math32.Sin(c.Yaw)
	cosYaw := math32.Cos(c.Yaw)

	// Forward runs opposite the camera offset, into the scene.
	c.Center[0] += (right*cosYaw - forward*sinYaw) * speed
	c.Center[2] -= (forward*cosYaw + right*sinYaw) * speed
	c.Center[1] += up * speed
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
