// Package glcore issues render.GL calls through the OpenGL 4.1 core profile.
package glcore

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfit/gene/render"
)

// Context implements render.GL for the context current on the calling thread.
type Context struct{}

var _ render.GL = Context{}

// Init loads the GL function pointers for the current context.
func Init() (Context, error) {
	if err := gl.Init(); err != nil {
		return Context{}, fmt.Errorf("failed to initialize glow: %w", err)
	}
	return Context{}, nil
}

// Version returns the context version string.
func (Context) Version() string { return gl.GoStr(gl.GetString(gl.VERSION)) }

func (Context) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Context) BindVertexArray(vao uint32)   { gl.BindVertexArray(vao) }
func (Context) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (Context) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (Context) BindBuffer(target render.Target, buffer uint32) {
	gl.BindBuffer(glTarget(target), buffer)
}

func (Context) BufferFloats(target render.Target, data []float32) {
	gl.BufferData(glTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (Context) BufferIndices(target render.Target, data []uint32) {
	gl.BufferData(glTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (Context) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (Context) VertexAttribPointer(slot uint32, size int32) {
	gl.VertexAttribPointer(slot, size, gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (Context) EnableVertexAttribArray(slot uint32)  { gl.EnableVertexAttribArray(slot) }
func (Context) DisableVertexAttribArray(slot uint32) { gl.DisableVertexAttribArray(slot) }

func (Context) DrawTriangles(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (Context) GenTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	return texture
}

func (Context) BindTexture(unit uint32, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (Context) TexImageRGBA(width, height int32, pix []uint8) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

func (Context) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

func (Context) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}

func (Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (Context) Clear()                        { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }

func (Context) CreateShader(stage render.Stage) uint32 {
	switch stage {
	case render.FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

func (Context) CompileShader(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)
}

func (Context) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Context) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Context) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Context) CreateProgram() uint32               { return gl.CreateProgram() }
func (Context) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (Context) BindAttribLocation(program, slot uint32, name string) {
	gl.BindAttribLocation(program, slot, gl.Str(name+"\x00"))
}

func (Context) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Context) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Context) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Context) UseProgram(program uint32)    { gl.UseProgram(program) }
func (Context) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Context) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Context) UniformMatrix4(location int32, value *float32) {
	gl.UniformMatrix4fv(location, 1, false, value)
}

func (Context) Uniform1i(location int32, value int32) { gl.Uniform1i(location, value) }

func glTarget(target render.Target) uint32 {
	if target == render.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}
