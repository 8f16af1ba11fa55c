package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits a target point. Yaw/Pitch are in degrees.
type Camera struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int, target mgl32.Vec3) *Camera {
	return &Camera{
		Target:      target,
		Distance:    25.0,
		Yaw:         -90.0,
		Pitch:       -40.0,
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// Front returns the unit view direction from the eye toward the target.
func (c *Camera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// Eye returns the camera position on the orbit sphere.
func (c *Camera) Eye() mgl32.Vec3 {
	return c.Target.Sub(c.Front().Mul(c.Distance))
}

// Rotate applies mouse-drag deltas, clamping pitch short of the poles.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Zoom adjusts the orbit distance.
func (c *Camera) Zoom(delta float32) {
	c.Distance -= delta
	if c.Distance < 2 {
		c.Distance = 2
	}
	if c.Distance > 200 {
		c.Distance = 200
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	eye := c.Eye()
	return mgl32.LookAtV(eye, c.Target, mgl32.Vec3{0, 1, 0})
}
