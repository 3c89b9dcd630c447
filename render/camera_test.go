package render

import (
	"testing"

	"github.com/adinfinit/g"
)

func TestCamera_UpdateScreenSize(t *testing.T) {
	camera := NewCamera()

	camera.UpdateScreenSize(0, 480)
	if camera.Projection != (g.Mat4{}) {
		t.Fatal("zero width must leave the projection untouched")
	}

	camera.UpdateScreenSize(640, 480)
	if camera.Projection == (g.Mat4{}) || camera.View == (g.Mat4{}) {
		t.Fatal("matrices not computed")
	}

	wide := camera.Projection
	camera.UpdateScreenSize(480, 480)
	if wide == camera.Projection {
		t.Error("projection ignores the aspect ratio")
	}
}
