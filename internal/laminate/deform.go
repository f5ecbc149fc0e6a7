package laminate

import (
	"fmt"

	"github.com/alexiusacademia/laminate/internal/linalg"
)

// Solve maps a load [N_x, N_y, N_xy, M_x, M_y, M_xy] through the inverted
// stiffness to the mid-plane deformation [ε_x, ε_y, γ_xy, κ_x, κ_y, κ_xy].
func Solve(abdInv linalg.Mat6, load linalg.Vec6) linalg.Vec6 {
	return abdInv.MulVec(load)
}

// Deform inverts the laminate stiffness and solves for the load
func (l *Laminate) Deform(load linalg.Vec6) (linalg.Vec6, error) {
	inv, err := l.ABDInverse()
	if err != nil {
		return linalg.Vec6{}, err
	}
	return Solve(inv, load), nil
}

// Engineering holds effective in-plane moduli of the whole laminate
type Engineering struct {
	Ex   float64
	Ey   float64
	Gxy  float64
	NuXY float64
}

// EngineeringConstants returns the in-plane moduli from the inverted A block:
// Ex = 1/(H·a11), Ey = 1/(H·a22), Gxy = 1/(H·a66), νxy = -a12/a11.
func (l *Laminate) EngineeringConstants() (Engineering, error) {
	a, err := l.A().Inverse()
	if err != nil {
		return Engineering{}, fmt.Errorf("%w: extensional block: %w", ErrSingularStiffness, err)
	}
	t := l.Thickness()
	return Engineering{
		Ex:   1 / (t * a[0][0]),
		Ey:   1 / (t * a[1][1]),
		Gxy:  1 / (t * a[2][2]),
		NuXY: -a[0][1] / a[0][0],
	}, nil
}
