package render

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/adinfinit/g"
)

// ErrLinked is returned when binding an attribute on a linked program.
var ErrLinked = errors.New("program already linked")

// NamedSlot binds a vertex shader input to a fixed attribute slot.
type NamedSlot struct {
	Name string
	Slot uint32
}

// AttributeBinder declares the attribute bindings applied before linking.
type AttributeBinder interface {
	Attributes() []NamedSlot
}

// Variant is a concrete shader: where its stage sources live and how its
// inputs map to slots.
type Variant interface {
	AttributeBinder
	Sources() (vertexPath, fragmentPath string)
}

// UniformLoader is implemented by variants that upload uniforms whenever
// the program is started.
type UniformLoader interface {
	LoadUniforms(program *Program)
}

// CompileError carries the compiler diagnostic of a failed stage.
type CompileError struct {
	Stage Stage
	Path  string
	Log   string
}

func (err *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %v shader %q: %v", err.Stage, err.Path, err.Log)
}

// LinkError carries the linker diagnostic of a failed program.
type LinkError struct {
	Log string
}

func (err *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %v", err.Log)
}

// Program is a linked vertex+fragment program.
type Program struct {
	gl      GL
	ID      uint32
	variant Variant

	linked   bool
	bindings []NamedSlot

	locationCache map[string]int32
}

// NewProgram reads the variant sources from fsys, compiles both stages,
// binds the variant attributes and links.
func NewProgram(gl GL, fsys fs.FS, variant Variant) (*Program, error) {
	vertexPath, fragmentPath := variant.Sources()

	vertexShader, err := loadShader(gl, fsys, VertexStage, vertexPath)
	if err != nil {
		return nil, err
	}

	fragmentShader, err := loadShader(gl, fsys, FragmentStage, fragmentPath)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, err
	}

	program := &Program{
		gl:            gl,
		ID:            gl.CreateProgram(),
		variant:       variant,
		locationCache: map[string]int32{},
	}

	gl.AttachShader(program.ID, vertexShader)
	defer gl.DeleteShader(vertexShader)

	gl.AttachShader(program.ID, fragmentShader)
	defer gl.DeleteShader(fragmentShader)

	for _, attr := range variant.Attributes() {
		if err := program.BindAttribute(attr.Slot, attr.Name); err != nil {
			gl.DeleteProgram(program.ID)
			return nil, err
		}
	}

	gl.LinkProgram(program.ID)
	if !gl.ProgramLinked(program.ID) {
		log := gl.ProgramInfoLog(program.ID)
		gl.DeleteProgram(program.ID)
		return nil, &LinkError{Log: log}
	}
	program.linked = true

	return program, nil
}

func loadShader(gl GL, fsys fs.FS, stage Stage, path string) (uint32, error) {
	source, err := fs.ReadFile(fsys, path)
	if err != nil {
		return 0, fmt.Errorf("unable to read %v shader: %w", stage, err)
	}

	shader := gl.CreateShader(stage)
	gl.CompileShader(shader, string(source))
	if !gl.ShaderCompiled(shader) {
		log := gl.ShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Path: path, Log: log}
	}
	return shader, nil
}

// BindAttribute binds the named vertex input to slot. It only has an
// effect before the program is linked.
func (program *Program) BindAttribute(slot uint32, name string) error {
	if program.linked {
		return ErrLinked
	}
	program.gl.BindAttribLocation(program.ID, slot, name)
	program.bindings = append(program.bindings, NamedSlot{Name: name, Slot: slot})
	return nil
}

// Bindings returns the attribute bindings applied before linking.
func (program *Program) Bindings() []NamedSlot {
	return append([]NamedSlot(nil), program.bindings...)
}

// Start makes the program active and loads the variant uniforms.
func (program *Program) Start() {
	program.gl.UseProgram(program.ID)
	if loader, ok := program.variant.(UniformLoader); ok {
		loader.LoadUniforms(program)
	}
}

// Stop deactivates any program.
func (program *Program) Stop() { program.gl.UseProgram(0) }

// CleanUp deletes the program object.
func (program *Program) CleanUp() {
	if program.ID == 0 {
		return
	}
	program.Stop()
	program.gl.DeleteProgram(program.ID)
	program.ID = 0
}

func (program *Program) uniformLocation(name string) int32 {
	location, ok := program.locationCache[name]
	if !ok {
		location = program.gl.UniformLocation(program.ID, name)
		program.locationCache[name] = location
	}
	return location
}

// UniformMatrix sets a mat4 uniform; unknown names are ignored.
func (program *Program) UniformMatrix(name string, v g.Mat4) {
	location := program.uniformLocation(name)
	if location < 0 {
		return
	}
	program.gl.UniformMatrix4(location, v.Ptr())
}

// UniformInt sets an int or sampler uniform; unknown names are ignored.
func (program *Program) UniformInt(name string, v int32) {
	location := program.uniformLocation(name)
	if location < 0 {
		return
	}
	program.gl.Uniform1i(location, v)
}
