package render

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// Default camera clamps. Pitch stops short of the poles so the up
// vector never degenerates; zoom stops short of the look-at center so
// the eye never crosses through it.
const (
	maxPitch    = math.Pi/2 - 0.01
	minDistance = 1.0
)

// Camera is an orbit camera: an eye position circling a look-at
// center, with a world up vector. It persists across frames and is
// mutated only by the explicit input-driven operations below.
type Camera struct {
	Eye    math3d.Vec3
	Center math3d.Vec3
	Up     math3d.Vec3

	viewMatrix math3d.Mat4
	viewDirty  bool
}

// NewCamera creates a camera at eye looking at center.
func NewCamera(eye, center, up math3d.Vec3) *Camera {
	return &Camera{
		Eye:       eye,
		Center:    center,
		Up:        up,
		viewDirty: true,
	}
}

// ViewMatrix returns the look-at view matrix for the current state.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.viewMatrix = math3d.LookAt(c.Eye, c.Center, c.Up)
		c.viewDirty = false
	}
	return c.viewMatrix
}

// Distance returns the eye-to-center distance.
func (c *Camera) Distance() float64 {
	return c.Eye.Distance(c.Center)
}

// Orbit rotates the eye around the center by deltaYaw about the world
// up axis and deltaPitch about the camera's local right axis,
// preserving the eye-to-center distance. Pitch is clamped so the view
// direction never reaches the poles of the up axis.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	offset := c.Eye.Sub(c.Center)
	radius := offset.Len()
	if radius == 0 {
		return
	}

	yaw := math.Atan2(offset.X, offset.Z)
	pitch := math.Asin(offset.Y / radius)

	yaw += deltaYaw
	pitch += deltaPitch
	if pitch > maxPitch {
		pitch = maxPitch
	}
	if pitch < -maxPitch {
		pitch = -maxPitch
	}

	c.Eye = c.Center.Add(math3d.V3(
		radius*math.Cos(pitch)*math.Sin(yaw),
		radius*math.Sin(pitch),
		radius*math.Cos(pitch)*math.Cos(yaw),
	))
	c.viewDirty = true
}

// MoveCenter translates both eye and center by the same offset,
// panning the look-at target without changing the relative camera
// offset.
func (c *Camera) MoveCenter(delta math3d.Vec3) {
	c.Eye = c.Eye.Add(delta)
	c.Center = c.Center.Add(delta)
	c.viewDirty = true
}

// Zoom moves the eye along the eye-to-center axis by delta. Positive
// delta moves toward the center. The distance is clamped to a strictly
// positive minimum so the eye can never cross through the center.
func (c *Camera) Zoom(delta float64) {
	dir := c.Center.Sub(c.Eye).Normalize()
	if dir.LenSq() == 0 {
		return
	}

	distance := c.Distance() - delta
	if distance < minDistance {
		distance = minDistance
	}

	c.Eye = c.Center.Sub(dir.Scale(distance))
	c.viewDirty = true
}
