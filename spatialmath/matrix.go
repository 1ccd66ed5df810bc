package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Matrix is a 4x4 homogeneous transform, typically a view-projection used for frustum culling.
// Coefficients are addressed by (row, col). Translate and Scale modify the matrix in place.
type Matrix struct {
	mat mgl64.Mat4
}

// NewMatrix wraps an existing mgl64 matrix.
func NewMatrix(m mgl64.Mat4) *Matrix {
	return &Matrix{mat: m}
}

// NewIdentityMatrix returns the identity transform.
func NewIdentityMatrix() *Matrix {
	return &Matrix{mat: mgl64.Ident4()}
}

// NewTranslationMatrix returns a pure translation by v.
func NewTranslationMatrix(v r3.Vector) *Matrix {
	return &Matrix{mat: mgl64.Translate3D(v.X, v.Y, v.Z)}
}

// NewPerspectiveFovRH returns a right-handed perspective projection. fovY is the vertical field
// of view in radians. Points in front of the camera lie on the -Z axis and map to w = -z.
func NewPerspectiveFovRH(fovY, aspect, near, far float64) *Matrix {
	h := 1 / math.Tan(fovY*0.5)
	w := h / aspect

	var m mgl64.Mat4
	m.Set(0, 0, w)
	m.Set(1, 1, h)
	m.Set(2, 2, far/(near-far))
	m.Set(3, 2, -1)
	m.Set(2, 3, near*(far/(near-far)))
	return &Matrix{mat: m}
}

// NewPerspective returns an OpenGL style perspective projection, mapping the view volume to
// the [-w, w] clip cube on every axis. fovY is in radians.
func NewPerspective(fovY, aspect, near, far float64) *Matrix {
	return &Matrix{mat: mgl64.Perspective(fovY, aspect, near, far)}
}

// Mat4 returns a copy of the underlying mgl64 matrix.
func (m *Matrix) Mat4() mgl64.Mat4 {
	return m.mat
}

// At returns the coefficient at (row, col).
func (m *Matrix) At(row, col int) float64 {
	return m.mat.At(row, col)
}

// Set overwrites the coefficient at (row, col).
func (m *Matrix) Set(row, col int, value float64) {
	m.mat.Set(row, col, value)
}

// Translate adds v to the translation column.
func (m *Matrix) Translate(v r3.Vector) {
	m.mat.Set(0, 3, m.mat.At(0, 3)+v.X)
	m.mat.Set(1, 3, m.mat.At(1, 3)+v.Y)
	m.mat.Set(2, 3, m.mat.At(2, 3)+v.Z)
}

// Scale multiplies the X, Y and Z rows by the matching component of s.
func (m *Matrix) Scale(s r3.Vector) {
	for col := 0; col < 4; col++ {
		m.mat.Set(0, col, m.mat.At(0, col)*s.X)
		m.mat.Set(1, col, m.mat.At(1, col)*s.Y)
		m.mat.Set(2, col, m.mat.At(2, col)*s.Z)
	}
}

// Inverse returns the inverse of m, or an error if m is singular.
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.mat.Det() == 0 {
		return nil, newSingularMatrixError()
	}
	return &Matrix{mat: m.mat.Inv()}, nil
}

// Mul returns m * other.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	return &Matrix{mat: m.mat.Mul4(other.mat)}
}

// Transform returns m * v.
func (m *Matrix) Transform(v mgl64.Vec4) mgl64.Vec4 {
	return m.mat.Mul4x1(v)
}

// TransformPoint returns m * (p, 1).
func (m *Matrix) TransformPoint(p r3.Vector) mgl64.Vec4 {
	return m.mat.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
}
