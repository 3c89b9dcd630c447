package render

// GL is the subset of OpenGL the loader, renderer and programs issue.
//
// All methods must be called from the thread that owns the context.
type GL interface {
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target Target, buffer uint32)
	BufferFloats(target Target, data []float32)
	BufferIndices(target Target, data []uint32)
	DeleteBuffer(buffer uint32)

	VertexAttribPointer(slot uint32, size int32)
	EnableVertexAttribArray(slot uint32)
	DisableVertexAttribArray(slot uint32)
	DrawTriangles(count int32)

	GenTexture() uint32
	BindTexture(unit uint32, texture uint32)
	TexImageRGBA(width, height int32, pix []uint8)
	DeleteTexture(texture uint32)

	EnableDepthTest()
	ClearColor(r, g, b, a float32)
	Clear()

	CreateShader(stage Stage) uint32
	CompileShader(shader uint32, source string)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	BindAttribLocation(program, slot uint32, name string)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, value *float32)
	Uniform1i(location int32, value int32)
}

// Target selects the buffer binding point.
type Target uint8

const (
	ArrayBuffer Target = iota
	ElementArrayBuffer
)

func (target Target) String() string {
	switch target {
	case ArrayBuffer:
		return "array"
	case ElementArrayBuffer:
		return "element"
	}
	return "unknown"
}

// Stage is a shader pipeline stage.
type Stage uint8

const (
	VertexStage Stage = iota
	FragmentStage
)

func (stage Stage) String() string {
	switch stage {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}
