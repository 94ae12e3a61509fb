package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// FloatsPerVertex is the size of one position in the vertex stream (x, y, z, tightly packed).
	FloatsPerVertex = 3
	// VerticesPerTriangle is the draw count for each of the two triangles.
	VerticesPerTriangle = 3

	fovyDegrees = 45
	aspect      = 4.0 / 3.0
	near        = 0.1
	far         = 100
)

// vertices holds both triangles back to back. Never modified; use Vertices for a copy.
var vertices = [2 * VerticesPerTriangle * FloatsPerVertex]float32{
	-1.0, -1.0, 0.0,
	1.0, -1.0, 0.0,
	0.0, 1.0, 0.0,

	0.0, 0.5, 0.0,
	0.5, 0.0, 0.0,
	0.5, 1.0, 0.0,
}

// Vertices returns a copy of the static vertex table.
func Vertices() []float32 {
	out := make([]float32, len(vertices))
	copy(out, vertices[:])
	return out
}

// VertexCount is the number of vertices in the table.
func VertexCount() int32 {
	return int32(len(vertices) / FloatsPerVertex)
}

var (
	target = mgl32.Vec3{0, 0, 0}
	up     = mgl32.Vec3{0, 1, 0}
)

// Transform holds the fixed projection and model matrices. View is rebuilt from the eye.
type Transform struct {
	Projection mgl32.Mat4
	Model      mgl32.Mat4
}

// NewTransform returns a 45° vertical FOV, 4:3 perspective with an identity model.
func NewTransform() Transform {
	return Transform{
		Projection: mgl32.Perspective(fovyDegrees*math32.Pi/180, aspect, near, far),
		Model:      mgl32.Ident4(),
	}
}

// View looks from eye at the origin with +Y up.
func View(eye mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, target, up)
}

// MVP computes Projection × View × Model for the given eye. It has no side effects.
func (t Transform) MVP(eye mgl32.Vec3) mgl32.Mat4 {
	return t.Projection.Mul4(View(eye)).Mul4(t.Model)
}
