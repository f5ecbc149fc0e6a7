package failure

import (
	"github.com/alexiusacademia/laminate/internal/laminate"
	"github.com/alexiusacademia/laminate/internal/linalg"
)

// PlyResult holds both criteria at the bottom and top face of one ply
type PlyResult struct {
	Ply      int
	Angle    float64
	Bottom   linalg.Vec3 // ply-axis stress
	Top      linalg.Vec3
	TsaiWu   [2]Result // bottom, top
	TsaiHill [2]Result
}

// Failed reports whether either criterion predicts failure on either face
func (r PlyResult) Failed() bool {
	return r.TsaiWu[0].Failed || r.TsaiWu[1].Failed || r.TsaiHill[0].Failed || r.TsaiHill[1].Failed
}

// MaxIndex returns the largest index of the given criterion results
func MaxIndex(rs [2]Result) float64 {
	if rs[0].Index > rs[1].Index {
		return rs[0].Index
	}
	return rs[1].Index
}

// Report is the failure evaluation of a whole laminate under one deformation
type Report struct {
	Plies     []PlyResult
	FirstFail int // index of the first failing ply from the bottom, -1 if none
}

// Evaluate applies Tsai-Wu and Tsai-Hill to the ply-axis stresses at the
// faces of every ply. Strengths are validated before any ply is evaluated.
func Evaluate(lam *laminate.Laminate, d linalg.Vec6, st Strengths) (*Report, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}

	plies := lam.Plies()
	stresses := lam.SurfaceStresses(d, laminate.Local)
	report := &Report{Plies: make([]PlyResult, len(plies)), FirstFail: -1}

	for k, s := range stresses {
		pr := PlyResult{Ply: k, Angle: plies[k].Angle(), Bottom: s.Bottom, Top: s.Top}
		for i, stress := range []linalg.Vec3{s.Bottom, s.Top} {
			var err error
			if pr.TsaiWu[i], err = TsaiWu(stress, st); err != nil {
				return nil, err
			}
			if pr.TsaiHill[i], err = TsaiHill(stress, st); err != nil {
				return nil, err
			}
		}
		if report.FirstFail < 0 && pr.Failed() {
			report.FirstFail = k
		}
		report.Plies[k] = pr
	}
	return report, nil
}
