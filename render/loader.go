package render

import (
	"errors"
	"log"
)

// ErrReleased is returned when a Loader is used after Cleanup.
var ErrReleased = errors.New("loader resources already released")

// Loader uploads geometry and textures to the GPU and owns every
// object it creates until Cleanup.
type Loader struct {
	gl       GL
	objects  arena
	released bool

	Logger *log.Logger
}

// NewLoader returns a loader issuing calls through gl.
func NewLoader(gl GL) *Loader {
	return &Loader{gl: gl}
}

// Load uploads geometry into a new vertex array. Every attribute gets its
// own buffer bound to the attribute slot. Nothing stays bound afterwards.
func (loader *Loader) Load(geometry Geometry) (Model, error) {
	if loader.released {
		return Model{}, ErrReleased
	}
	if err := geometry.Validate(); err != nil {
		return Model{}, err
	}

	vao := loader.gl.GenVertexArray()
	handle := loader.objects.insert(VertexArrayKind, vao)
	loader.gl.BindVertexArray(vao)

	loader.bindIndices(geometry.Indices)
	for _, attr := range geometry.Attributes {
		loader.storeAttribute(attr)
	}

	// the element buffer binding is part of the vertex array state
	loader.gl.BindVertexArray(0)

	model := Model{
		Handle:      handle,
		VertexArray: vao,
		IndexCount:  int32(len(geometry.Indices)),
		Slots:       geometry.Slots(),
	}
	loader.logger().Printf("loaded vertex array %d: %d vertices, %d indices, slots %v",
		vao, geometry.VertexCount(), model.IndexCount, model.Slots)
	return model, nil
}

func (loader *Loader) bindIndices(indices []uint32) {
	ibo := loader.gl.GenBuffer()
	loader.objects.insert(BufferKind, ibo)
	loader.gl.BindBuffer(ElementArrayBuffer, ibo)
	loader.gl.BufferIndices(ElementArrayBuffer, indices)
}

func (loader *Loader) storeAttribute(attr Attribute) {
	vbo := loader.gl.GenBuffer()
	loader.objects.insert(BufferKind, vbo)
	loader.gl.BindBuffer(ArrayBuffer, vbo)
	loader.gl.BufferFloats(ArrayBuffer, attr.Data)
	loader.gl.VertexAttribPointer(attr.Slot, attr.Size)
	loader.gl.BindBuffer(ArrayBuffer, 0)
}

// Valid reports whether handle refers to an object this loader still owns.
func (loader *Loader) Valid(handle Handle) bool {
	_, ok := loader.objects.get(handle)
	return ok
}

// Len returns the number of live GL objects owned by the loader.
func (loader *Loader) Len() int { return loader.objects.live }

// Cleanup deletes every vertex array, buffer and texture created by the
// loader. Calls after the first are no-ops.
func (loader *Loader) Cleanup() {
	if loader.released {
		return
	}
	loader.released = true

	var counts [TextureKind + 1]int
	loader.objects.each(func(handle Handle, rec record) {
		switch rec.kind {
		case VertexArrayKind:
			loader.gl.DeleteVertexArray(rec.id)
		case BufferKind:
			loader.gl.DeleteBuffer(rec.id)
		case TextureKind:
			loader.gl.DeleteTexture(rec.id)
		}
		counts[rec.kind]++
		loader.objects.release(handle)
	})

	loader.logger().Printf("released %d vertex arrays, %d buffers, %d textures",
		counts[VertexArrayKind], counts[BufferKind], counts[TextureKind])
}

func (loader *Loader) logger() *log.Logger {
	if loader.Logger != nil {
		return loader.Logger
	}
	return log.Default()
}
