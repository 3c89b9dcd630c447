package render

import "testing"

func TestArena_GenerationCheck(t *testing.T) {
	var objects arena

	a := objects.insert(VertexArrayKind, 10)
	b := objects.insert(BufferKind, 11)

	if rec, ok := objects.get(a); !ok || rec.id != 10 || rec.kind != VertexArrayKind {
		t.Errorf("get(a) = %+v, %v", rec, ok)
	}

	if _, ok := objects.release(a); !ok {
		t.Fatal("release(a) failed")
	}
	if _, ok := objects.get(a); ok {
		t.Error("released handle still resolves")
	}
	if _, ok := objects.release(a); ok {
		t.Error("double release succeeded")
	}

	// the freed slot is reused with a newer generation
	c := objects.insert(TextureKind, 12)
	if c.index != a.index || c.generation == a.generation {
		t.Errorf("reuse: a=%v c=%v", a, c)
	}
	if _, ok := objects.get(a); ok {
		t.Error("stale handle resolves to the reused slot")
	}
	if rec, ok := objects.get(c); !ok || rec.id != 12 {
		t.Errorf("get(c) = %+v, %v", rec, ok)
	}
	if _, ok := objects.get(b); !ok {
		t.Error("unrelated handle invalidated")
	}
	if objects.live != 2 {
		t.Errorf("live = %d, want 2", objects.live)
	}
}

func TestArena_ZeroHandle(t *testing.T) {
	var objects arena
	objects.insert(BufferKind, 1)

	if _, ok := objects.get(Handle{}); ok {
		t.Error("zero handle resolved")
	}
	if !(Handle{}).IsZero() {
		t.Error("zero handle not reported as zero")
	}
}
