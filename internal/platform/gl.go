package platform

import (
	"triangles/internal/scene"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const positionAttrib = 0

// GL is the OpenGL device for the demo: one vertex array, one static vertex buffer and
// any number of programs. It requires a current context (see Open).
type GL struct {
	vao uint32
	vbo uint32
}

// NewGL creates and binds the vertex array and sets the dark blue clear colour.
func NewGL() *GL {
	g := &GL{}
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.ClearColor(0.0, 0.0, 0.4, 0.0)
	return g
}

// UploadVertices copies data into a new static vertex buffer. It is meant to be called once.
func (g *GL) UploadVertices(data []float32) {
	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

// LoadProgram reads, compiles and links a vertex/fragment shader pair from disk and looks
// up its "MVP" uniform.
func (g *GL) LoadProgram(vertexPath, fragmentPath string) (scene.Program, error) {
	id, err := loadShaders(vertexPath, fragmentPath)
	if err != nil {
		return scene.Program{}, err
	}
	return scene.Program{ID: id, MVP: gl.GetUniformLocation(id, gl.Str("MVP\x00"))}, nil
}

func (g *GL) DeleteProgram(p scene.Program) {
	if p.Valid() {
		gl.DeleteProgram(p.ID)
	}
}

// EnableBlending turns on alpha-over blending: src*srcAlpha + dst*(1-srcAlpha).
func (g *GL) EnableBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (g *GL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (g *GL) EnableVertices() {
	gl.EnableVertexAttribArray(positionAttrib)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.VertexAttribPointer(positionAttrib, scene.FloatsPerVertex, gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (g *GL) DisableVertices() {
	gl.DisableVertexAttribArray(positionAttrib)
}

func (g *GL) UseProgram(p scene.Program) {
	gl.UseProgram(p.ID)
}

func (g *GL) SetMVP(p scene.Program, mvp *mgl32.Mat4) {
	gl.UniformMatrix4fv(p.MVP, 1, false, &mvp[0])
}

func (g *GL) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// Release deletes the vertex buffer and the vertex array.
func (g *GL) Release() {
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}
