// Package laminate assembles the ABD stiffness of a ply stack and recovers
// mid-plane deformation and per-ply strain and stress under classical
// laminate theory.
package laminate

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/laminate/internal/linalg"
	"github.com/alexiusacademia/laminate/internal/ply"
)

// DefaultZeroTolerance is the relative magnitude below which ABD entries are
// snapped to zero. It suppresses round-off from the rotated stiffnesses.
const DefaultZeroTolerance = 1e-6

var (
	// ErrSingularStiffness is returned when the ABD matrix cannot be inverted
	ErrSingularStiffness = errors.New("singular laminate stiffness")

	// ErrInvalidTolerance is returned for a negative, NaN or infinite zero-snap tolerance
	ErrInvalidTolerance = errors.New("invalid zero tolerance")
)

// Laminate is an ordered ply stack, bottom to top. It is immutable once built.
type Laminate struct {
	plies   []*ply.Ply
	zs      [][2]float64
	midZ    []float64
	h       float64
	abd     linalg.Mat6
	zeroTol float64
}

// Option configures New
type Option func(*Laminate)

// WithZeroTolerance sets the relative zero-snap tolerance of the ABD matrix.
// A tolerance of 0 keeps the raw assembled values.
func WithZeroTolerance(tol float64) Option {
	return func(l *Laminate) {
		l.zeroTol = tol
	}
}

// New builds a laminate with one ply per angle (degrees), all of the given
// thickness and material. It fails if the material is invalid or the
// assembled ABD matrix is not invertible.
func New(angles []float64, thickness float64, m ply.Material, opts ...Option) (*Laminate, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	l := &Laminate{zeroTol: DefaultZeroTolerance}
	for _, opt := range opts {
		opt(l)
	}
	if !(l.zeroTol >= 0) || math.IsInf(l.zeroTol, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidTolerance, l.zeroTol)
	}

	l.plies = make([]*ply.Ply, 0, len(angles))
	for i, angle := range angles {
		p, err := ply.New(angle, thickness, m)
		if err != nil {
			return nil, fmt.Errorf("ply %d: %w", i+1, err)
		}
		l.plies = append(l.plies, p)
	}

	l.computeZ()
	l.abd = assemble(l.plies, l.zs)
	snapToZero(&l.abd, l.zeroTol)

	if _, err := l.ABDInverse(); err != nil {
		return nil, err
	}
	return l, nil
}

// computeZ derives ply bottom/top coordinates measured from the mid-plane
func (l *Laminate) computeZ() {
	var total float64
	for _, p := range l.plies {
		total += p.Thickness()
	}
	l.h = total / 2

	l.zs = make([][2]float64, len(l.plies))
	l.midZ = make([]float64, len(l.plies))
	var below float64
	for k, p := range l.plies {
		bot := below - l.h
		below += p.Thickness()
		top := below - l.h
		l.zs[k] = [2]float64{bot, top}
		l.midZ[k] = (bot + top) / 2
	}
}

// assemble sums Q̄ of every ply weighted by Δz, Δz²/2 and Δz³/3 into the
// A, B and D blocks.
func assemble(plies []*ply.Ply, zs [][2]float64) linalg.Mat6 {
	var a, b, d linalg.Mat3
	for k, p := range plies {
		bot, top := zs[k][0], zs[k][1]
		qBar := p.QBar()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				a[i][j] += qBar[i][j] * (top - bot)
				b[i][j] += qBar[i][j] * (top*top - bot*bot) / 2
				d[i][j] += qBar[i][j] * (top*top*top - bot*bot*bot) / 3
			}
		}
	}

	var abd linalg.Mat6
	abd.SetBlock(0, 0, a)
	abd.SetBlock(0, 1, b)
	abd.SetBlock(1, 0, b)
	abd.SetBlock(1, 1, d)
	return abd
}

// snapToZero zeroes entries with |x| < tol·max|abd|
func snapToZero(abd *linalg.Mat6, tol float64) {
	if tol <= 0 {
		return
	}
	limit := tol * abd.MaxAbs()
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if math.Abs(abd[i][j]) < limit {
				abd[i][j] = 0
			}
		}
	}
}

// Plies returns the plies in stacking order, bottom first
func (l *Laminate) Plies() []*ply.Ply {
	out := make([]*ply.Ply, len(l.plies))
	copy(out, l.plies)
	return out
}

// Len returns the number of plies
func (l *Laminate) Len() int { return len(l.plies) }

// Thickness returns the total laminate thickness
func (l *Laminate) Thickness() float64 { return 2 * l.h }

// HalfThickness returns h, the distance from the mid-plane to either face
func (l *Laminate) HalfThickness() float64 { return l.h }

// ZS returns the (bottom, top) z-coordinate of every ply
func (l *Laminate) ZS() [][2]float64 {
	out := make([][2]float64, len(l.zs))
	copy(out, l.zs)
	return out
}

// MidPlyZ returns the z-coordinate of every ply mid-surface
func (l *Laminate) MidPlyZ() []float64 {
	out := make([]float64, len(l.midZ))
	copy(out, l.midZ)
	return out
}

// ABD returns the 6x6 laminate stiffness [[A, B], [B, D]]
func (l *Laminate) ABD() linalg.Mat6 { return l.abd }

// A returns the extensional stiffness block
func (l *Laminate) A() linalg.Mat3 { return l.abd.Block(0, 0) }

// B returns the bending-extension coupling block
func (l *Laminate) B() linalg.Mat3 { return l.abd.Block(0, 1) }

// D returns the bending stiffness block
func (l *Laminate) D() linalg.Mat3 { return l.abd.Block(1, 1) }

// ABDInverse inverts the ABD matrix. It is recomputed on every call.
func (l *Laminate) ABDInverse() (linalg.Mat6, error) {
	inv, err := l.abd.Inverse()
	if err != nil {
		return linalg.Mat6{}, fmt.Errorf("%w: %d plies: %w", ErrSingularStiffness, len(l.plies), err)
	}
	return inv, nil
}

// IsSymmetric reports whether the stacking sequence mirrors about the mid-plane
func (l *Laminate) IsSymmetric() bool {
	n := len(l.plies)
	for k := 0; k < n/2; k++ {
		lo, hi := l.plies[k], l.plies[n-1-k]
		if lo.Angle() != hi.Angle() || lo.Thickness() != hi.Thickness() {
			return false
		}
	}
	return true
}
