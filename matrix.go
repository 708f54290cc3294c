package offaxis

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix4 is a 4x4 transformation matrix stored in column-major order,
// matching the OpenGL and WGSL memory layout:
//
//	| m[0]  m[4]  m[8]   m[12] |
//	| m[1]  m[5]  m[9]   m[13] |
//	| m[2]  m[6]  m[10]  m[14] |
//	| m[3]  m[7]  m[11]  m[15] |
type Matrix4 [16]float64

// Identity4 returns the identity transformation matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FrustumMatrix creates a perspective projection for the asymmetric frustum
// whose near-plane extents are left..right and bottom..top, with the same
// layout glFrustum produces. Clip z maps to [-1, 1].
func FrustumMatrix(left, right, bottom, top, near, far float64) Matrix4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Matrix4{
		2 * near / rl, 0, 0, 0,
		0, 2 * near / tb, 0, 0,
		(right + left) / rl, (top + bottom) / tb, -(far + near) / fn, -1,
		0, 0, -2 * far * near / fn, 0,
	}
}

// LookAtMatrix creates a view matrix that places the camera at eye, aims it
// at target and orients it with up, with the same layout gluLookAt produces.
// The caller guarantees that target != eye and that up is not parallel to
// the view direction.
func LookAtMatrix(eye, target, up Vec3) Matrix4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Matrix4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// TransformPoint applies the transformation to the point (x, y, z, 1) and
// returns the resulting homogeneous coordinates without dividing by w.
func (m Matrix4) TransformPoint(p Vec3) (Vec3, float64) {
	return Vec3{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}, m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float64 {
	return m[col*4+row]
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}

// Approx returns true if all elements are within epsilon of other's.
func (m Matrix4) Approx(other Matrix4, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-other[i]) >= epsilon {
			return false
		}
	}
	return true
}

// RowMajor returns the matrix in the row-major layout used by
// golang.org/x/image/math/f64.
func (m Matrix4) RowMajor() f64.Mat4 {
	var r f64.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row*4+col] = m[col*4+row]
		}
	}
	return r
}

// Float32 returns the column-major elements narrowed to float32 for GPU
// upload.
func (m Matrix4) Float32() [16]float32 {
	var r [16]float32
	for i, v := range m {
		r[i] = float32(v)
	}
	return r
}
