package render

import (
	"fmt"
	"strings"
)

// fakeGL records every call so tests can assert on the command stream.
type fakeGL struct {
	calls []string
	next  uint32

	vertexArray uint32
	buffers     map[Target]uint32
	enabled     map[uint32]bool
	program     uint32
	draws       []int32

	deletedArrays   []uint32
	deletedBuffers  []uint32
	deletedTextures []uint32
	deletedPrograms []uint32
	deletedShaders  []uint32

	compileLog map[Stage]string
	linkLog    string
	stages     map[uint32]Stage
	linked     map[uint32]bool
	attribs    map[uint32][]NamedSlot
	locations  map[string]int32
	matrices   map[int32]float32
	ints       map[int32]int32
	textures   map[uint32][2]int32
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		buffers:    map[Target]uint32{},
		enabled:    map[uint32]bool{},
		compileLog: map[Stage]string{},
		stages:     map[uint32]Stage{},
		linked:     map[uint32]bool{},
		attribs:    map[uint32][]NamedSlot{},
		locations:  map[string]int32{},
		matrices:   map[int32]float32{},
		ints:       map[int32]int32{},
		textures:   map[uint32][2]int32{},
	}
}

func (f *fakeGL) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) gen() uint32 {
	f.next++
	return f.next
}

// count returns how many recorded calls start with prefix.
func (f *fakeGL) count(prefix string) int {
	n := 0
	for _, call := range f.calls {
		if strings.HasPrefix(call, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeGL) enabledSlots() []uint32 {
	var slots []uint32
	for slot, on := range f.enabled {
		if on {
			slots = append(slots, slot)
		}
	}
	return slots
}

func (f *fakeGL) GenVertexArray() uint32 {
	id := f.gen()
	f.record("GenVertexArray %d", id)
	return id
}

func (f *fakeGL) BindVertexArray(vao uint32) {
	f.vertexArray = vao
	f.record("BindVertexArray %d", vao)
}

func (f *fakeGL) DeleteVertexArray(vao uint32) {
	f.deletedArrays = append(f.deletedArrays, vao)
	f.record("DeleteVertexArray %d", vao)
}

func (f *fakeGL) GenBuffer() uint32 {
	id := f.gen()
	f.record("GenBuffer %d", id)
	return id
}

func (f *fakeGL) BindBuffer(target Target, buffer uint32) {
	f.buffers[target] = buffer
	f.record("BindBuffer %v %d", target, buffer)
}

func (f *fakeGL) BufferFloats(target Target, data []float32) {
	f.record("BufferFloats %v %d", target, len(data))
}

func (f *fakeGL) BufferIndices(target Target, data []uint32) {
	f.record("BufferIndices %v %d", target, len(data))
}

func (f *fakeGL) DeleteBuffer(buffer uint32) {
	f.deletedBuffers = append(f.deletedBuffers, buffer)
	f.record("DeleteBuffer %d", buffer)
}

func (f *fakeGL) VertexAttribPointer(slot uint32, size int32) {
	f.record("VertexAttribPointer %d %d", slot, size)
}

func (f *fakeGL) EnableVertexAttribArray(slot uint32) {
	f.enabled[slot] = true
	f.record("EnableVertexAttribArray %d", slot)
}

func (f *fakeGL) DisableVertexAttribArray(slot uint32) {
	f.enabled[slot] = false
	f.record("DisableVertexAttribArray %d", slot)
}

func (f *fakeGL) DrawTriangles(count int32) {
	f.draws = append(f.draws, count)
	f.record("DrawTriangles %d", count)
}

func (f *fakeGL) GenTexture() uint32 {
	id := f.gen()
	f.record("GenTexture %d", id)
	return id
}

func (f *fakeGL) BindTexture(unit uint32, texture uint32) {
	f.record("BindTexture %d %d", unit, texture)
}

func (f *fakeGL) TexImageRGBA(width, height int32, pix []uint8) {
	f.textures[uint32(len(f.textures))] = [2]int32{width, height}
	f.record("TexImageRGBA %dx%d %d", width, height, len(pix))
}

func (f *fakeGL) DeleteTexture(texture uint32) {
	f.deletedTextures = append(f.deletedTextures, texture)
	f.record("DeleteTexture %d", texture)
}

func (f *fakeGL) EnableDepthTest()              { f.record("EnableDepthTest") }
func (f *fakeGL) ClearColor(r, g, b, a float32) { f.record("ClearColor %.2f %.2f %.2f %.2f", r, g, b, a) }
func (f *fakeGL) Clear()                        { f.record("Clear") }

func (f *fakeGL) CreateShader(stage Stage) uint32 {
	id := f.gen()
	f.stages[id] = stage
	f.record("CreateShader %v %d", stage, id)
	return id
}

func (f *fakeGL) CompileShader(shader uint32, source string) {
	f.record("CompileShader %d", shader)
}

func (f *fakeGL) ShaderCompiled(shader uint32) bool {
	_, failed := f.compileLog[f.stages[shader]]
	return !failed
}

func (f *fakeGL) ShaderInfoLog(shader uint32) string { return f.compileLog[f.stages[shader]] }

func (f *fakeGL) DeleteShader(shader uint32) {
	f.deletedShaders = append(f.deletedShaders, shader)
	f.record("DeleteShader %d", shader)
}

func (f *fakeGL) CreateProgram() uint32 {
	id := f.gen()
	f.record("CreateProgram %d", id)
	return id
}

func (f *fakeGL) AttachShader(program, shader uint32) {
	f.record("AttachShader %d %d", program, shader)
}

func (f *fakeGL) BindAttribLocation(program, slot uint32, name string) {
	if !f.linked[program] {
		f.attribs[program] = append(f.attribs[program], NamedSlot{Name: name, Slot: slot})
	}
	f.record("BindAttribLocation %d %d %s", program, slot, name)
}

func (f *fakeGL) LinkProgram(program uint32) {
	f.linked[program] = f.linkLog == ""
	f.record("LinkProgram %d", program)
}

func (f *fakeGL) ProgramLinked(program uint32) bool   { return f.linked[program] }
func (f *fakeGL) ProgramInfoLog(program uint32) string { return f.linkLog }

func (f *fakeGL) UseProgram(program uint32) {
	f.program = program
	f.record("UseProgram %d", program)
}

func (f *fakeGL) DeleteProgram(program uint32) {
	f.deletedPrograms = append(f.deletedPrograms, program)
	f.record("DeleteProgram %d", program)
}

func (f *fakeGL) UniformLocation(program uint32, name string) int32 {
	f.record("UniformLocation %d %s", program, name)
	location, ok := f.locations[name]
	if !ok {
		return -1
	}
	return location
}

func (f *fakeGL) UniformMatrix4(location int32, value *float32) {
	f.matrices[location] = *value
	f.record("UniformMatrix4 %d", location)
}

func (f *fakeGL) Uniform1i(location int32, value int32) {
	f.ints[location] = value
	f.record("Uniform1i %d %d", location, value)
}
