// Package failure evaluates quadratic first-ply failure criteria on stresses
// expressed in ply material axes.
package failure

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/laminate/internal/linalg"
)

// ErrInvalidStrength is returned when a strength parameter is not positive
var ErrInvalidStrength = errors.New("invalid strength")

// tsaiWuF12Factor scales sqrt(F11·F22) into the interaction term F12.
// -1/2 is a heuristic in place of biaxial test data; review against the
// reference used for a given material system.
const tsaiWuF12Factor = -0.5

// tsaiHillCrossUsesLongitudinalOnly keeps σ1·σ2/σL² as the Tsai-Hill cross
// term. Textbook forms differ; review before changing it.
const tsaiHillCrossUsesLongitudinalOnly = true

// Strengths holds the ply strengths, all positive magnitudes
type Strengths struct {
	LongTension      float64 // σ_Lp
	LongCompression  float64 // σ_Ln
	TransTension     float64 // σ_Tp
	TransCompression float64 // σ_Tn
	Shear            float64 // τ_LT
}

// Validate checks every strength is positive
func (s Strengths) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"longitudinal tension", s.LongTension},
		{"longitudinal compression", s.LongCompression},
		{"transverse tension", s.TransTension},
		{"transverse compression", s.TransCompression},
		{"shear", s.Shear},
	}
	for _, f := range fields {
		if !(f.value > 0) {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidStrength, f.name, f.value)
		}
	}
	return nil
}

// Result is the outcome of one criterion on one stress state
type Result struct {
	Failed bool
	Index  float64
}

func result(index float64) Result {
	return Result{Failed: index >= 1, Index: index}
}

// TsaiWu evaluates the Tsai-Wu criterion for a ply-axis stress (σ1, σ2, τ12)
func TsaiWu(s linalg.Vec3, st Strengths) (Result, error) {
	if err := st.Validate(); err != nil {
		return Result{}, err
	}
	f11 := 1 / (st.LongTension * st.LongCompression)
	f22 := 1 / (st.TransTension * st.TransCompression)
	f66 := 1 / (st.Shear * st.Shear)
	f1 := 1/st.LongTension - 1/st.LongCompression
	f2 := 1/st.TransTension - 1/st.TransCompression
	f12 := tsaiWuF12Factor * math.Sqrt(f11*f22)

	t := f11*s[0]*s[0] + f22*s[1]*s[1] + f66*s[2]*s[2] +
		f1*s[0] + f2*s[1] + 2*f12*s[0]*s[1]
	return result(t), nil
}

// TsaiHill evaluates the Tsai-Hill criterion for a ply-axis stress. The
// tension or compression strength is picked by the sign of each normal
// stress; a zero stress uses the mean of both.
func TsaiHill(s linalg.Vec3, st Strengths) (Result, error) {
	if err := st.Validate(); err != nil {
		return Result{}, err
	}
	sl := pick(s[0], st.LongTension, st.LongCompression)
	stt := pick(s[1], st.TransTension, st.TransCompression)

	cross := s[0] * s[1] / (sl * stt)
	if tsaiHillCrossUsesLongitudinalOnly {
		cross = s[0] * s[1] / (sl * sl)
	}
	t := (s[0]/sl)*(s[0]/sl) - cross + (s[1]/stt)*(s[1]/stt) + (s[2]/st.Shear)*(s[2]/st.Shear)
	return result(t), nil
}

func pick(sigma, tension, compression float64) float64 {
	switch {
	case sigma > 0:
		return tension
	case sigma < 0:
		return compression
	default:
		return 0.5*tension + 0.5*compression
	}
}
