package ply

import (
	"errors"
	"fmt"
)

// ErrInvalidMaterial is returned for non-physical elastic constants
var ErrInvalidMaterial = errors.New("invalid material")

// Material holds the in-plane engineering constants of a unidirectional ply.
// All moduli share one unit (MPa, GPa, ...); stiffness results carry that unit.
type Material struct {
	E1   float64 // Longitudinal modulus
	E2   float64 // Transverse modulus
	Nu12 float64 // Major Poisson ratio
	G12  float64 // In-plane shear modulus
}

// Nu21 returns the minor Poisson ratio ν21 = ν12·E2/E1
func (m Material) Nu21() float64 {
	return m.Nu12 * m.E2 / m.E1
}

// Validate checks that the moduli are positive and that 1 - ν12·ν21 > 0
func (m Material) Validate() error {
	if m.E1 <= 0 {
		return fmt.Errorf("%w: E1 must be positive, got %g", ErrInvalidMaterial, m.E1)
	}
	if m.E2 <= 0 {
		return fmt.Errorf("%w: E2 must be positive, got %g", ErrInvalidMaterial, m.E2)
	}
	if m.G12 <= 0 {
		return fmt.Errorf("%w: G12 must be positive, got %g", ErrInvalidMaterial, m.G12)
	}
	if m.Nu12*m.Nu21() >= 1 {
		return fmt.Errorf("%w: ν12·ν21 = %g must be below 1", ErrInvalidMaterial, m.Nu12*m.Nu21())
	}
	return nil
}
