package render

import "embed"

// Shaders holds the stage sources of the built-in variants.
//
//go:embed shaders
var Shaders embed.FS

// StaticShader draws untextured positions straight into clip space.
type StaticShader struct{}

func (StaticShader) Sources() (string, string) {
	return "shaders/static.vert", "shaders/static.frag"
}

func (StaticShader) Attributes() []NamedSlot {
	return []NamedSlot{
		{Name: "position", Slot: PositionSlot},
	}
}

// TexturedShader samples the model texture and projects through Camera.
type TexturedShader struct {
	Camera *Camera
}

func (TexturedShader) Sources() (string, string) {
	return "shaders/textured.vert", "shaders/textured.frag"
}

func (TexturedShader) Attributes() []NamedSlot {
	return []NamedSlot{
		{Name: "position", Slot: PositionSlot},
		{Name: "textureCoords", Slot: TexCoordSlot},
	}
}

func (shader TexturedShader) LoadUniforms(program *Program) {
	program.UniformInt("TextureSampler", 0)
	if shader.Camera == nil {
		return
	}
	program.UniformMatrix("ProjectionMatrix", shader.Camera.Projection)
	program.UniformMatrix("CameraMatrix", shader.Camera.View)
}
