package gles1

import "github.com/tinygl/gles1/internal/mat4"

// transformedVertex is a vertex after MVP transform, perspective divide
// and texture-matrix application (§4.4): x and y are in NDC.
type transformedVertex struct {
	X, Y     float32
	Color    [4]float32
	TexCoord [4]float32
}

// transformVertex applies the composed model-view-projection matrix to
// the position, divides by w if w != 1, and applies the active texture
// unit's texture matrix to the texcoord (§4.4). No view-volume clipping
// is performed (§4.4, §9 open question).
func (c *Context) transformVertex(mvp mat4.Mat4, v assembledVertex) transformedVertex {
	pos := mat4.MultiplyVector(mvp, v.Position)
	if pos[3] != 1 {
		w := pos[3]
		pos[0] /= w
		pos[1] /= w
		pos[2] /= w
	}

	unit := c.textureUnits[c.ActiveTexture]
	tc := mat4.MultiplyVector(unit.Matrix, v.TexCoord)

	return transformedVertex{
		X:        pos[0],
		Y:        pos[1],
		Color:    v.Color,
		TexCoord: tc,
	}
}
