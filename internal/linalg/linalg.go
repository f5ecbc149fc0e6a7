// Package linalg provides the fixed-size vectors and matrices used by
// classical laminate theory: three in-plane components per ply and six
// generalized strain/load components per laminate.
package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when a matrix cannot be inverted.
var ErrSingular = errors.New("linalg: matrix is singular")

// Vec3 holds in-plane components [x, y, xy] or [1, 2, 12]
type Vec3 [3]float64

// Mat3 is a 3x3 row-major matrix
type Mat3 [3][3]float64

// Vec6 holds [ε_x, ε_y, γ_xy, κ_x, κ_y, κ_xy] or [N_x, N_y, N_xy, M_x, M_y, M_xy]
type Vec6 [6]float64

// Mat6 is a 6x6 row-major matrix
type Mat6 [6][6]float64

// Identity3 returns the 3x3 identity matrix
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Add returns v + u
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Scale returns a·v
func (v Vec3) Scale(a float64) Vec3 {
	return Vec3{a * v[0], a * v[1], a * v[2]}
}

// Mul returns the matrix product m·n
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return r
}

// MulVec returns m·v
func (m Mat3) MulVec(v Vec3) Vec3 {
	var r Vec3
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			r[i] += m[i][k] * v[k]
		}
	}
	return r
}

// Scale returns a·m
func (m Mat3) Scale(a float64) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a * m[i][j]
		}
	}
	return r
}

// T returns the transpose of m
func (m Mat3) T() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Inverse returns m⁻¹ or ErrSingular
func (m Mat3) Inverse() (Mat3, error) {
	var r Mat3
	inv, err := invert(3, func(i, j int) float64 { return m[i][j] })
	if err != nil {
		return r, err
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = inv.At(i, j)
		}
	}
	return r, nil
}

// MaxAbs returns the largest absolute entry of m
func (m Mat3) MaxAbs() float64 {
	var mx float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			mx = math.Max(mx, math.Abs(m[i][j]))
		}
	}
	return mx
}

// Strain returns the in-plane part ε = v[0:3]
func (v Vec6) Strain() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Curvature returns the bending part κ = v[3:6]
func (v Vec6) Curvature() Vec3 {
	return Vec3{v[3], v[4], v[5]}
}

// MulVec returns m·v
func (m Mat6) MulVec(v Vec6) Vec6 {
	var r Vec6
	for i := 0; i < 6; i++ {
		for k := 0; k < 6; k++ {
			r[i] += m[i][k] * v[k]
		}
	}
	return r
}

// Mul returns the matrix product m·n
func (m Mat6) Mul(n Mat6) Mat6 {
	var r Mat6
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			for k := 0; k < 6; k++ {
				r[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return r
}

// Block returns the 3x3 sub-matrix starting at row 3·bi, column 3·bj.
// Block(0,0) is A, Block(0,1) is B and Block(1,1) is D of an ABD matrix.
func (m Mat6) Block(bi, bj int) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[3*bi+i][3*bj+j]
		}
	}
	return r
}

// SetBlock writes b into the 3x3 sub-matrix starting at row 3·bi, column 3·bj
func (m *Mat6) SetBlock(bi, bj int, b Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[3*bi+i][3*bj+j] = b[i][j]
		}
	}
}

// MaxAbs returns the largest absolute entry of m
func (m Mat6) MaxAbs() float64 {
	var mx float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			mx = math.Max(mx, math.Abs(m[i][j]))
		}
	}
	return mx
}

// IsSymmetric reports whether |m[i][j] - m[j][i]| <= tol·max|m| for all i, j
func (m Mat6) IsSymmetric(tol float64) bool {
	limit := tol * m.MaxAbs()
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			if math.Abs(m[i][j]-m[j][i]) > limit {
				return false
			}
		}
	}
	return true
}

// Inverse returns m⁻¹ or ErrSingular
func (m Mat6) Inverse() (Mat6, error) {
	var r Mat6
	inv, err := invert(6, func(i, j int) float64 { return m[i][j] })
	if err != nil {
		return r, err
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			r[i][j] = inv.At(i, j)
		}
	}
	return r, nil
}

// invert copies an n×n matrix into a gonum Dense and inverts it by LU
// factorization. Ill-conditioned input is reported as ErrSingular.
func invert(n int, at func(i, j int) float64) (*mat.Dense, error) {
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, at(i, j))
		}
	}
	if !finite(a) {
		return nil, fmt.Errorf("%w: non-finite entry", ErrSingular)
	}
	if mat.Norm(a, math.Inf(1)) == 0 {
		return nil, ErrSingular
	}

	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	if !finite(&inv) {
		return nil, fmt.Errorf("%w: non-finite inverse", ErrSingular)
	}
	return &inv, nil
}

// finite reports whether every entry of m is neither NaN nor ±Inf
func finite(m *mat.Dense) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
