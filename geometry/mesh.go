// Package geometry builds in-memory triangle meshes for the loader.
package geometry

import (
	"math"

	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/gene/render"
)

// MeshData accumulates positions, texture coordinates and triangle indices.
type MeshData struct {
	Positions []float32
	TexCoords []float32
	Indices   []uint32
}

// Vertex appends a vertex and returns its index.
func (mesh *MeshData) Vertex(v m.Vec3, uv m.Vec2) uint32 {
	p := len(mesh.Positions) / 3
	mesh.Positions = append(mesh.Positions, v[:]...)
	mesh.TexCoords = append(mesh.TexCoords, uv[:]...)
	return uint32(p)
}

func (mesh *MeshData) Triangle(a, b, c uint32) {
	mesh.Indices = append(mesh.Indices, a, b, c)
}

// VertexCount returns the number of vertices added so far.
func (mesh *MeshData) VertexCount() int { return len(mesh.Positions) / 3 }

// Transform applies mat to every position.
func (mesh *MeshData) Transform(mat m.Mat4) {
	for i := 0; i+2 < len(mesh.Positions); i += 3 {
		v := m.Vec3{mesh.Positions[i], mesh.Positions[i+1], mesh.Positions[i+2]}
		v = mat.Mul4x1(v.Vec4(1)).Vec3()
		copy(mesh.Positions[i:i+3], v[:])
	}
}

// Geometry returns the mesh bound to the position and, when textured,
// texture coordinate slots.
func (mesh *MeshData) Geometry(textured bool) render.Geometry {
	var texCoords []float32
	if textured {
		texCoords = mesh.TexCoords
	}
	return render.NewGeometry(mesh.Positions, texCoords, mesh.Indices)
}

// Quad is two triangles sharing an edge, facing +Z, centered at the origin.
func Quad(size float32) MeshData {
	h := size / 2
	mesh := MeshData{}
	a := mesh.Vertex(m.Vec3{-h, h, 0}, m.Vec2{0, 0})
	b := mesh.Vertex(m.Vec3{-h, -h, 0}, m.Vec2{0, 1})
	c := mesh.Vertex(m.Vec3{h, -h, 0}, m.Vec2{1, 1})
	d := mesh.Vertex(m.Vec3{h, h, 0}, m.Vec2{1, 0})
	mesh.Triangle(a, b, d)
	mesh.Triangle(d, b, c)
	return mesh
}

// Fish is the lathed body used by the boids host.
func Fish() MeshData {
	return Lathe(12, 12, true, func(t, phase float32) m.Vec3 {
		r := 12.291*t*t*t - 20*t*t + 8.508*t
		h := 3 * t
		rx := 0.5 * h * float32(math.Exp(float64(1-h)))

		sn, cs := math.Sincos(float64(phase))
		return m.Vec3{
			r * float32(sn) * rx,
			r * float32(cs),
			(t - 0.5) * 3,
		}
	})
}

// Lathe sweeps fn around the Z axis: t runs along the body in [0, 1] and
// phase around it. Texture coordinates are cylindrical.
func Lathe(depth, corners int, capped bool, fn func(t, phase float32) m.Vec3) MeshData {
	mesh := MeshData{}

	vertex := func(v m.Vec3, t float32) uint32 {
		theta := float32(math.Atan2(float64(v.Y()), float64(v.X())))
		return mesh.Vertex(v, m.Vec2{t, theta*0.5/math.Pi + 0.5})
	}

	var headAverage m.Vec3
	lastLayer, nextLayer := make([]uint32, corners), make([]uint32, corners)
	for pi := 0; pi < corners; pi++ {
		p := float32(pi) * math.Pi * 2 / float32(corners-1)
		v := fn(0, p)
		lastLayer[pi] = vertex(v, 0)
		if capped {
			headAverage = headAverage.Add(v)
		}
	}

	if capped {
		headAverage = headAverage.Mul(1 / float32(corners))
		z0 := vertex(headAverage, 0)
		for pi := 0; pi < corners; pi++ {
			a, b := lastLayer[pi], lastLayer[(pi+1)%corners]
			mesh.Triangle(z0, a, b)
		}
	}

	var tailAverage m.Vec3
	for ti := 1; ti < depth; ti++ {
		t := float32(ti) / float32(depth-1)
		for pi := 0; pi < corners; pi++ {
			p := float32(pi) * math.Pi * 2 / float32(corners-1)
			v := fn(t, p)
			nextLayer[pi] = vertex(v, t)
			if capped && ti == depth-1 {
				tailAverage = tailAverage.Add(v)
			}
		}

		for pi := 0; pi < corners; pi++ {
			a, b := lastLayer[pi], lastLayer[(pi+1)%corners]
			c, d := nextLayer[pi], nextLayer[(pi+1)%corners]
			mesh.Triangle(a, c, d)
			mesh.Triangle(a, d, b)
		}

		lastLayer, nextLayer = nextLayer, lastLayer
	}

	if capped {
		tailAverage = tailAverage.Mul(1 / float32(corners))
		zt := vertex(tailAverage, 1)
		for pi := 0; pi < corners; pi++ {
			a, b := lastLayer[pi], lastLayer[(pi+1)%corners]
			mesh.Triangle(a, zt, b)
		}
	}

	return mesh
}
