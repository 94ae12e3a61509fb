package scene

import "github.com/go-gl/mathgl/mgl32"

// Program is a linked shader program and the location of its MVP uniform.
// A zero ID means the program failed to build; draws with it are skipped.
type Program struct {
	ID  uint32
	MVP int32
}

// Valid reports whether the program can be bound.
func (p Program) Valid() bool {
	return p.ID != 0
}

// Device is the subset of GPU state the renderer touches each frame.
type Device interface {
	// EnableVertices binds the vertex buffer and enables attribute 0 as 3 packed floats.
	EnableVertices()
	DisableVertices()
	UseProgram(p Program)
	SetMVP(p Program, mvp *mgl32.Mat4)
	DrawTriangles(first, count int32)
}

// Renderer draws the two triangles, each with its own program.
type Renderer struct {
	dev       Device
	first     Program
	second    Program
	transform Transform
}

// NewRenderer returns a renderer that draws vertices [0,3) with first and [3,6) with second.
func NewRenderer(dev Device, first, second Program) *Renderer {
	return &Renderer{
		dev:       dev,
		first:     first,
		second:    second,
		transform: NewTransform(),
	}
}

// Transform returns the fixed matrices used by Draw.
func (r *Renderer) Transform() Transform {
	return r.transform
}

// Draw renders one frame as seen from eye. Triangle one is always drawn before triangle two.
func (r *Renderer) Draw(eye mgl32.Vec3) {
	mvp := r.transform.MVP(eye)

	r.dev.EnableVertices()
	r.drawTriangle(r.first, &mvp, 0)
	r.drawTriangle(r.second, &mvp, VerticesPerTriangle)
	r.dev.DisableVertices()
}

func (r *Renderer) drawTriangle(p Program, mvp *mgl32.Mat4, first int32) {
	if !p.Valid() {
		return
	}
	r.dev.UseProgram(p)
	r.dev.SetMVP(p, mvp)
	r.dev.DrawTriangles(first, VerticesPerTriangle)
}
