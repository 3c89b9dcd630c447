package render

import "github.com/adinfinit/g"

// Camera produces the projection and view matrices for the textured shader.
type Camera struct {
	Eye, LookAt, Up g.Vec3

	FOV       float32
	Near, Far float32

	Projection g.Mat4
	View       g.Mat4
}

func NewCamera() *Camera {
	return &Camera{
		Eye:    g.V3(0, 0, 2),
		LookAt: g.V3(0, 0, 0),
		Up:     g.V3(0, 1, 0),
		FOV:    70,
		Near:   0.1,
		Far:    100,
	}
}

// UpdateScreenSize recomputes both matrices for a framebuffer of the given size.
func (camera *Camera) UpdateScreenSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	size := g.V2(float32(width), float32(height))
	camera.Projection = g.Perspective(g.DegToRad(camera.FOV), size.X/size.Y, camera.Near, camera.Far)
	camera.View = g.LookAtV(camera.Eye, camera.LookAt, camera.Up)
}
