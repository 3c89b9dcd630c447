package render

import "fmt"

// Kind identifies which GL object a handle refers to.
type Kind uint8

const (
	VertexArrayKind Kind = iota + 1
	BufferKind
	TextureKind
)

func (kind Kind) String() string {
	switch kind {
	case VertexArrayKind:
		return "vertex-array"
	case BufferKind:
		return "buffer"
	case TextureKind:
		return "texture"
	}
	return fmt.Sprintf("Kind(%d)", uint8(kind))
}

// Handle refers to a GL object owned by a Loader.
//
// The zero Handle is never valid.
type Handle struct {
	index      uint32
	generation uint32
}

// IsZero reports whether handle was never issued.
func (handle Handle) IsZero() bool { return handle.generation == 0 }

func (handle Handle) String() string {
	return fmt.Sprintf("#%d.%d", handle.index, handle.generation)
}

type record struct {
	kind       Kind
	id         uint32
	generation uint32
	live       bool
}

// arena stores GL object records; a slot's generation is bumped when the
// record is released, which invalidates every handle issued for it.
type arena struct {
	records []record
	free    []uint32
	live    int
}

func (arena *arena) insert(kind Kind, id uint32) Handle {
	var index uint32
	if n := len(arena.free); n > 0 {
		index = arena.free[n-1]
		arena.free = arena.free[:n-1]
	} else {
		index = uint32(len(arena.records))
		arena.records = append(arena.records, record{})
	}

	rec := &arena.records[index]
	rec.kind = kind
	rec.id = id
	rec.generation++
	rec.live = true
	arena.live++

	return Handle{index: index, generation: rec.generation}
}

func (arena *arena) get(handle Handle) (record, bool) {
	if handle.IsZero() || int(handle.index) >= len(arena.records) {
		return record{}, false
	}
	rec := arena.records[handle.index]
	if !rec.live || rec.generation != handle.generation {
		return record{}, false
	}
	return rec, true
}

func (arena *arena) release(handle Handle) (record, bool) {
	rec, ok := arena.get(handle)
	if !ok {
		return record{}, false
	}
	slot := &arena.records[handle.index]
	slot.live = false
	slot.generation++
	arena.free = append(arena.free, handle.index)
	arena.live--
	return rec, true
}

// each calls fn for every live record with its handle.
func (arena *arena) each(fn func(Handle, record)) {
	for i, rec := range arena.records {
		if rec.live {
			fn(Handle{index: uint32(i), generation: rec.generation}, rec)
		}
	}
}
