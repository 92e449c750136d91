// Package mat4 implements column-major 4x4 affine matrices and the fixed
// set of matrix constructors the legacy fixed-function pipeline exposes
// (translate, rotate, scale, ortho, frustum).
//
// Matrices are stored the way the original C++ implementation stores them
// (std::array<GLfloat, 16>, column-major: element i*4+j is row j, column i)
// so MultiplyVector and Multiply read the same as
// original_source/GLES.cpp's multiplyMatrixVector/multiplyMatrixMatrix.
package mat4

import "github.com/chewxy/math32"

// Mat4 is a column-major 4x4 matrix: M[col*4+row].
type Mat4 [16]float32

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MultiplyVector computes m*v for a column vector v.
func MultiplyVector(m Mat4, v [4]float32) [4]float32 {
	return [4]float32{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// Multiply computes a*b (a's columns are the first operand, matching the
// column-major convention: Multiply(a, b) applies b first, then a).
func Multiply(a, b Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			result[i*4+j] = sum
		}
	}
	return result
}

// Translation returns the affine translation matrix for (x, y, z).
func Translation(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scaling returns the affine scale matrix for (x, y, z).
func Scaling(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Rotation returns the affine rotation matrix for angleDeg degrees about
// the axis (x, y, z), normalizing the axis first. A zero-length axis
// yields the identity matrix.
func Rotation(angleDeg, x, y, z float32) Mat4 {
	length := math32.Sqrt(x*x + y*y + z*z)
	if length == 0 {
		return Identity()
	}
	x, y, z = x/length, y/length, z/length

	rad := angleDeg * (math32.Pi / 180)
	s, c := math32.Sincos(rad)
	ic := 1 - c

	return Mat4{
		x*x*ic + c, y*x*ic + z*s, z*x*ic - y*s, 0,
		x*y*ic - z*s, y*y*ic + c, z*y*ic + x*s, 0,
		x*z*ic + y*s, y*z*ic - x*s, z*z*ic + c, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns the standard orthographic projection matrix for the given
// clipping planes.
func Ortho(l, r, b, t, n, f float32) Mat4 {
	return Mat4{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -2 / (f - n), 0,
		-(r + l) / (r - l), -(t + b) / (t - b), -(f + n) / (f - n), 1,
	}
}

// Frustum returns the standard perspective frustum matrix for the given
// clipping planes.
func Frustum(l, r, b, t, n, f float32) Mat4 {
	return Mat4{
		2 * n / (r - l), 0, 0, 0,
		0, 2 * n / (t - b), 0, 0,
		(r + l) / (r - l), (t + b) / (t - b), -(f + n) / (f - n), -1,
		0, 0, -2 * f * n / (f - n), 0,
	}
}
