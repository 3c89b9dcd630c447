package render

import (
	"errors"
	"strconv"
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
)

func TestRenderer_Prepare(t *testing.T) {
	gl := newFakeGL()
	renderer := NewRenderer(gl, m.Vec4{1, 0, 0, 1})
	gl.calls = nil

	renderer.Prepare()

	want := []string{"ClearColor 1.00 0.00 0.00 1.00", "Clear"}
	if len(gl.calls) != len(want) || gl.calls[0] != want[0] || gl.calls[1] != want[1] {
		t.Errorf("calls = %q, want %q", gl.calls, want)
	}
}

func TestRenderer_RenderQuad(t *testing.T) {
	gl := newFakeGL()
	loader := NewLoader(gl)
	renderer := NewRenderer(gl, DefaultClearColor)

	model, err := loader.Load(NewGeometry(quadPositions, nil, quadIndices))
	if err != nil {
		t.Fatal(err)
	}
	gl.calls = nil

	if err := renderer.Render(model); err != nil {
		t.Fatal(err)
	}

	if len(gl.draws) != 1 || gl.draws[0] != 6 {
		t.Errorf("draws = %v, want exactly one draw of 6", gl.draws)
	}
	want := []string{
		"BindVertexArray 1",
		"EnableVertexAttribArray 0",
		"DrawTriangles 6",
		"DisableVertexAttribArray 0",
		"BindVertexArray 0",
	}
	if len(gl.calls) != len(want) {
		t.Fatalf("calls = %q, want %q", gl.calls, want)
	}
	for i := range want {
		if gl.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, gl.calls[i], want[i])
		}
	}
}

func TestRenderer_SymmetricSlots(t *testing.T) {
	gl := newFakeGL()
	loader := NewLoader(gl)
	renderer := NewRenderer(gl, DefaultClearColor)

	plain, err := loader.Load(NewGeometry(quadPositions, nil, quadIndices))
	if err != nil {
		t.Fatal(err)
	}
	textured, err := loader.Load(NewGeometry(quadPositions, quadTexCoords, quadIndices))
	if err != nil {
		t.Fatal(err)
	}
	texture, err := loader.LoadTexture(textureFS(t), "albedo.png")
	if err != nil {
		t.Fatal(err)
	}
	textured = textured.WithTexture(texture)

	for i, model := range []Model{textured, plain, textured, plain} {
		gl.calls = nil
		if err := renderer.Render(model); err != nil {
			t.Fatal(err)
		}

		enabled := gl.count("EnableVertexAttribArray")
		disabled := gl.count("DisableVertexAttribArray")
		if enabled != len(model.Slots) || disabled != len(model.Slots) {
			t.Errorf("render %d: enabled %d disabled %d, want %d each", i, enabled, disabled, len(model.Slots))
		}
		if slots := gl.enabledSlots(); len(slots) != 0 {
			t.Errorf("render %d: slots %v left enabled", i, slots)
		}
		if gl.vertexArray != 0 {
			t.Errorf("render %d: vertex array %d left bound", i, gl.vertexArray)
		}
	}

	gl.calls = nil
	if err := renderer.Render(textured); err != nil {
		t.Fatal(err)
	}
	if gl.count("BindTexture 0 "+strconv.Itoa(int(texture.ID))) != 1 || gl.count("BindTexture 0 0") != 1 {
		t.Errorf("textured draw must bind and unbind its texture: %q", gl.calls)
	}
}

func TestRenderer_RenderZeroModel(t *testing.T) {
	gl := newFakeGL()
	renderer := NewRenderer(gl, DefaultClearColor)
	gl.calls = nil

	if err := renderer.Render(Model{}); !errors.Is(err, ErrNoModel) {
		t.Errorf("Render(Model{}) = %v, want ErrNoModel", err)
	}
	if len(gl.calls) != 0 {
		t.Errorf("calls = %q, want none", gl.calls)
	}
}
