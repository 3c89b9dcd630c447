package render

import (
	"errors"

	m "github.com/go-gl/mathgl/mgl32"
)

// ErrNoModel is returned when rendering a model that was never loaded.
var ErrNoModel = errors.New("model has no vertex array")

// DefaultClearColor is the color the frame is wiped to before drawing.
var DefaultClearColor = m.Vec4{0x26 / 255.0, 0x42 / 255.0, 0x6b / 255.0, 1.0}

// Renderer clears the frame and draws loaded models.
type Renderer struct {
	gl         GL
	ClearColor m.Vec4
}

// NewRenderer returns a renderer and enables depth testing.
func NewRenderer(gl GL, clearColor m.Vec4) *Renderer {
	gl.EnableDepthTest()
	return &Renderer{gl: gl, ClearColor: clearColor}
}

// Prepare wipes the color and depth buffers. It must run before any draw
// in a frame.
func (renderer *Renderer) Prepare() {
	c := renderer.ClearColor
	renderer.gl.ClearColor(c.X(), c.Y(), c.Z(), c.W())
	renderer.gl.Clear()
}

// Render draws model with the active program. The slots enabled for the
// draw are disabled again before returning.
func (renderer *Renderer) Render(model Model) error {
	if model.VertexArray == 0 || model.Handle.IsZero() {
		return ErrNoModel
	}

	gl := renderer.gl
	gl.BindVertexArray(model.VertexArray)
	for _, slot := range model.Slots {
		gl.EnableVertexAttribArray(slot)
	}
	if model.Textured() {
		gl.BindTexture(0, model.Texture)
	}

	gl.DrawTriangles(model.IndexCount)

	if model.Textured() {
		gl.BindTexture(0, 0)
	}
	for _, slot := range model.Slots {
		gl.DisableVertexAttribArray(slot)
	}
	gl.BindVertexArray(0)
	return nil
}
