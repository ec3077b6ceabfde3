package colorspace

import (
	"errors"
	"math"
)

// ErrSingularMatrix is returned when a matrix has no usable inverse.
var ErrSingularMatrix = errors.New("colorspace: singular matrix")

// singularEpsilon bounds the determinant magnitude below which a matrix is
// treated as singular. Matrices handled here have entries near unit scale.
const singularEpsilon = 1e-9

// Vec3 is a column vector.
type Vec3 [3]float32

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 [9]float32

// Diagonal returns the matrix with v on its diagonal.
func Diagonal(v Vec3) Matrix3 {
	return Matrix3{
		v[0], 0, 0,
		0, v[1], 0,
		0, 0, v[2],
	}
}

// Apply returns m·v.
func (m Matrix3) Apply(v Vec3) Vec3 {
	return Vec3{
		v[0]*m[0] + v[1]*m[1] + v[2]*m[2],
		v[0]*m[3] + v[1]*m[4] + v[2]*m[5],
		v[0]*m[6] + v[1]*m[7] + v[2]*m[8],
	}
}

// ApplyY returns only the second component of m·v.
func (m Matrix3) ApplyY(v Vec3) float32 {
	return v[0]*m[3] + v[1]*m[4] + v[2]*m[5]
}

// Mul returns m·n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var c Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c[row*3+col] = m[row*3]*n[col] + m[row*3+1]*n[3+col] + m[row*3+2]*n[6+col]
		}
	}
	return c
}

// det64 expands along the first row.
func det64(a [9]float64) float64 {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

// Inverse returns m⁻¹ computed from the adjugate. Cofactors are accumulated
// in float64. It returns ErrSingularMatrix when the determinant is too close to
// zero or any entry is not finite.
func (m Matrix3) Inverse() (Matrix3, error) {
	a := m.float64s()
	det := det64(a)
	if math.IsNaN(det) || math.IsInf(det, 0) || math.Abs(det) < singularEpsilon {
		return Matrix3{}, ErrSingularMatrix
	}

	A := +(a[4]*a[8] - a[5]*a[7])
	B := -(a[3]*a[8] - a[5]*a[6])
	C := +(a[3]*a[7] - a[4]*a[6])

	D := -(a[1]*a[8] - a[2]*a[7])
	E := +(a[0]*a[8] - a[2]*a[6])
	F := -(a[0]*a[7] - a[1]*a[6])

	G := +(a[1]*a[5] - a[2]*a[4])
	H := -(a[0]*a[5] - a[2]*a[3])
	I := +(a[0]*a[4] - a[1]*a[3])

	inv := Matrix3{
		float32(A / det), float32(D / det), float32(G / det),
		float32(B / det), float32(E / det), float32(H / det),
		float32(C / det), float32(F / det), float32(I / det),
	}
	return inv, nil
}

func (m Matrix3) float64s() [9]float64 {
	var a [9]float64
	for i, v := range m {
		a[i] = float64(v)
	}
	return a
}
