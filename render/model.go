package render

import (
	"fmt"
	"sort"
)

// Fixed attribute slots shared by the loader and the shader variants.
const (
	PositionSlot uint32 = 0
	TexCoordSlot uint32 = 1
)

// Binding maps buffer components into a vertex shader input slot.
type Binding struct {
	Slot uint32
	Size int32
}

var (
	PositionBinding = Binding{Slot: PositionSlot, Size: 3}
	TexCoordBinding = Binding{Slot: TexCoordSlot, Size: 2}
)

// Attribute is per-vertex component data bound to a slot.
type Attribute struct {
	Binding
	Data []float32
}

// Geometry is indexed triangle data ready to be loaded.
type Geometry struct {
	Attributes []Attribute
	Indices    []uint32
}

// NewGeometry returns geometry with 3-component positions and, when
// texCoords is non-empty, 2-component texture coordinates.
func NewGeometry(positions, texCoords []float32, indices []uint32) Geometry {
	geometry := Geometry{Indices: indices}
	geometry.Attributes = append(geometry.Attributes, Attribute{PositionBinding, positions})
	if len(texCoords) > 0 {
		geometry.Attributes = append(geometry.Attributes, Attribute{TexCoordBinding, texCoords})
	}
	return geometry
}

// VertexCount returns the number of vertices described by the first attribute.
func (geometry *Geometry) VertexCount() int {
	if len(geometry.Attributes) == 0 || geometry.Attributes[0].Size <= 0 {
		return 0
	}
	first := geometry.Attributes[0]
	return len(first.Data) / int(first.Size)
}

// Slots returns the declared attribute slots in ascending order.
func (geometry *Geometry) Slots() []uint32 {
	slots := make([]uint32, 0, len(geometry.Attributes))
	for _, attr := range geometry.Attributes {
		slots = append(slots, attr.Slot)
	}
	sort.Slice(slots, func(i, k int) bool { return slots[i] < slots[k] })
	return slots
}

// Validate checks the geometry before any of it reaches the GPU.
func (geometry *Geometry) Validate() error {
	if len(geometry.Attributes) == 0 {
		return &GeometryError{Field: "attributes", Reason: "none declared"}
	}
	if len(geometry.Indices) == 0 {
		return &GeometryError{Field: "indices", Reason: "empty"}
	}
	if len(geometry.Indices)%3 != 0 {
		return &GeometryError{Field: "indices", Reason: fmt.Sprintf("length %d is not a multiple of 3", len(geometry.Indices))}
	}

	seen := map[uint32]bool{}
	vertexCount := -1
	for _, attr := range geometry.Attributes {
		if attr.Size <= 0 || attr.Size > 4 {
			return &GeometryError{Field: slotField(attr.Slot), Reason: fmt.Sprintf("invalid component count %d", attr.Size)}
		}
		if seen[attr.Slot] {
			return &GeometryError{Field: slotField(attr.Slot), Reason: "slot declared twice"}
		}
		seen[attr.Slot] = true

		if len(attr.Data) == 0 || len(attr.Data)%int(attr.Size) != 0 {
			return &GeometryError{Field: slotField(attr.Slot), Reason: fmt.Sprintf("%d components not divisible by %d", len(attr.Data), attr.Size)}
		}
		count := len(attr.Data) / int(attr.Size)
		if vertexCount >= 0 && count != vertexCount {
			return &GeometryError{Field: slotField(attr.Slot), Reason: fmt.Sprintf("%d vertices, expected %d", count, vertexCount)}
		}
		vertexCount = count
	}

	for i, index := range geometry.Indices {
		if int(index) >= vertexCount {
			return &GeometryError{Field: "indices", Reason: fmt.Sprintf("index %d at %d out of range [0, %d)", index, i, vertexCount)}
		}
	}
	return nil
}

// GeometryError reports malformed geometry passed to Loader.Load.
type GeometryError struct {
	Field  string
	Reason string
}

func (err *GeometryError) Error() string {
	return fmt.Sprintf("malformed geometry: %s: %s", err.Field, err.Reason)
}

func slotField(slot uint32) string { return fmt.Sprintf("slot %d", slot) }

// Model is a loaded vertex array with the number of indices to draw.
type Model struct {
	Handle      Handle
	VertexArray uint32
	IndexCount  int32
	// Slots lists the attribute slots declared when the model was loaded.
	Slots []uint32
	// Texture is bound to unit 0 while drawing; zero means untextured.
	Texture uint32
}

// WithTexture returns a copy of model drawn with texture.
func (model Model) WithTexture(texture Texture) Model {
	model.Slots = append([]uint32(nil), model.Slots...)
	model.Texture = texture.ID
	return model
}

// Textured reports whether the model carries a texture.
func (model Model) Textured() bool { return model.Texture != 0 }
