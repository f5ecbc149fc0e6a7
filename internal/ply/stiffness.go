package ply

import (
	"math"

	"github.com/alexiusacademia/laminate/internal/linalg"
)

// Q returns the plane-stress reduced stiffness matrix in ply axes (1-2).
//
//	Q = | E1/Δ      ν12·E2/Δ  0   |
//	    | ν21·E1/Δ  E2/Δ      0   |
//	    | 0         0         G12 |
//
// with Δ = 1 - ν12·ν21.
func Q(m Material) (linalg.Mat3, error) {
	if err := m.Validate(); err != nil {
		return linalg.Mat3{}, err
	}
	nu21 := m.Nu21()
	d := 1 - m.Nu12*nu21
	return linalg.Mat3{
		{m.E1 / d, m.Nu12 * m.E2 / d, 0},
		{nu21 * m.E1 / d, m.E2 / d, 0},
		{0, 0, m.G12},
	}, nil
}

// T returns the stress transformation matrix for a ply rotated by angle
// degrees. It maps laminate-axis stresses (x, y, xy) onto ply axes (1, 2, 12).
func T(angle float64) linalg.Mat3 {
	theta := angle * math.Pi / 180
	c := math.Cos(theta)
	s := math.Sin(theta)
	return linalg.Mat3{
		{c * c, s * s, 2 * c * s},
		{s * s, c * c, -2 * c * s},
		{-c * s, c * s, c*c - s*s},
	}
}

// StrainT returns the transformation for engineering strains (γ12 = 2ε12),
// R·T·R⁻¹ with R = diag(1, 1, 2).
func StrainT(angle float64) linalg.Mat3 {
	t := T(angle)
	t[0][2] /= 2
	t[1][2] /= 2
	t[2][0] *= 2
	t[2][1] *= 2
	return t
}

// Rotate returns Q̄ = T⁻¹·Q·(T⁻¹)ᵗ, the ply stiffness in laminate axes
func Rotate(q, t linalg.Mat3) (linalg.Mat3, error) {
	tInv, err := t.Inverse()
	if err != nil {
		return linalg.Mat3{}, err
	}
	return tInv.Mul(q).Mul(tInv.T()), nil
}
