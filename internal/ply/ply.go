// Package ply computes the stiffness of a single unidirectional layer:
// the reduced stiffness in material axes and its rotation into laminate axes.
package ply

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/laminate/internal/linalg"
)

var (
	// ErrInvalidThickness is returned for a ply thickness that is not positive
	ErrInvalidThickness = errors.New("invalid ply thickness")

	// ErrInvalidAngle is returned for a NaN or infinite orientation
	ErrInvalidAngle = errors.New("invalid ply angle")
)

// Ply is one oriented layer. It is immutable once built by New.
type Ply struct {
	angle     float64
	thickness float64
	material  Material

	q    linalg.Mat3
	t    linalg.Mat3
	qBar linalg.Mat3
}

// New builds a ply at angle degrees. Q, T and Q̄ are computed once here.
func New(angle, thickness float64, m Material) (*Ply, error) {
	if !(thickness > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidThickness, thickness)
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidAngle, angle)
	}
	q, err := Q(m)
	if err != nil {
		return nil, err
	}
	t := T(angle)
	qBar, err := Rotate(q, t)
	if err != nil {
		return nil, fmt.Errorf("rotate ply at %g°: %w", angle, err)
	}
	return &Ply{
		angle:     angle,
		thickness: thickness,
		material:  m,
		q:         q,
		t:         t,
		qBar:      qBar,
	}, nil
}

// Angle returns the orientation in degrees
func (p *Ply) Angle() float64 { return p.angle }

// Thickness returns the ply thickness
func (p *Ply) Thickness() float64 { return p.thickness }

// Material returns the ply's own copy of the elastic constants
func (p *Ply) Material() Material { return p.material }

// Q returns the reduced stiffness in ply axes
func (p *Ply) Q() linalg.Mat3 { return p.q }

// T returns the stress transformation matrix
func (p *Ply) T() linalg.Mat3 { return p.t }

// QBar returns the stiffness rotated into laminate axes
func (p *Ply) QBar() linalg.Mat3 { return p.qBar }

// StressToLocal rotates a laminate-axis stress into ply axes
func (p *Ply) StressToLocal(s linalg.Vec3) linalg.Vec3 {
	return p.t.MulVec(s)
}

// StrainToLocal rotates a laminate-axis engineering strain into ply axes
func (p *Ply) StrainToLocal(e linalg.Vec3) linalg.Vec3 {
	return StrainT(p.angle).MulVec(e)
}
