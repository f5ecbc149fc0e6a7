package laminate

import "github.com/alexiusacademia/laminate/internal/linalg"

// Frame selects the axes a strain or stress is expressed in
type Frame int

const (
	// Global is the laminate x-y frame
	Global Frame = iota
	// Local is the ply material 1-2 frame
	Local
)

func (f Frame) String() string {
	if f == Local {
		return "local"
	}
	return "global"
}

// Surfaces holds a quantity at the bottom and top face of a ply
type Surfaces struct {
	Bottom linalg.Vec3
	Top    linalg.Vec3
}

// StrainAt returns the strain of ply k at height z: ε + z·κ, rotated into
// ply axes for Local.
func (l *Laminate) StrainAt(k int, z float64, d linalg.Vec6, f Frame) linalg.Vec3 {
	e := d.Strain().Add(d.Curvature().Scale(z))
	if f == Local {
		return l.plies[k].StrainToLocal(e)
	}
	return e
}

// StressAt returns the stress of ply k at height z: Q̄·(ε + z·κ), rotated by
// the ply's T for Local.
func (l *Laminate) StressAt(k int, z float64, d linalg.Vec6, f Frame) linalg.Vec3 {
	p := l.plies[k]
	s := p.QBar().MulVec(l.StrainAt(k, z, d, Global))
	if f == Local {
		return p.StressToLocal(s)
	}
	return s
}

// MidStrains returns the strain at every ply mid-surface
func (l *Laminate) MidStrains(d linalg.Vec6, f Frame) []linalg.Vec3 {
	out := make([]linalg.Vec3, len(l.plies))
	for k := range l.plies {
		out[k] = l.StrainAt(k, l.midZ[k], d, f)
	}
	return out
}

// SurfaceStrains returns the strain at the bottom and top of every ply
func (l *Laminate) SurfaceStrains(d linalg.Vec6, f Frame) []Surfaces {
	out := make([]Surfaces, len(l.plies))
	for k := range l.plies {
		out[k] = Surfaces{
			Bottom: l.StrainAt(k, l.zs[k][0], d, f),
			Top:    l.StrainAt(k, l.zs[k][1], d, f),
		}
	}
	return out
}

// MidStresses returns the stress at every ply mid-surface
func (l *Laminate) MidStresses(d linalg.Vec6, f Frame) []linalg.Vec3 {
	out := make([]linalg.Vec3, len(l.plies))
	for k := range l.plies {
		out[k] = l.StressAt(k, l.midZ[k], d, f)
	}
	return out
}

// SurfaceStresses returns the stress at the bottom and top of every ply
func (l *Laminate) SurfaceStresses(d linalg.Vec6, f Frame) []Surfaces {
	out := make([]Surfaces, len(l.plies))
	for k := range l.plies {
		out[k] = Surfaces{
			Bottom: l.StressAt(k, l.zs[k][0], d, f),
			Top:    l.StressAt(k, l.zs[k][1], d, f),
		}
	}
	return out
}

// ProfilePoint is one through-thickness sample
type ProfilePoint struct {
	Ply    int
	Z      float64
	Strain linalg.Vec3
	Stress linalg.Vec3
}

// Profile samples strain and stress at the bottom and top of every ply,
// bottom ply first. Stresses jump at ply interfaces; both sides are kept.
func (l *Laminate) Profile(d linalg.Vec6, f Frame) []ProfilePoint {
	out := make([]ProfilePoint, 0, 2*len(l.plies))
	for k := range l.plies {
		for _, z := range l.zs[k] {
			out = append(out, ProfilePoint{
				Ply:    k,
				Z:      z,
				Strain: l.StrainAt(k, z, d, f),
				Stress: l.StressAt(k, z, d, f),
			})
		}
	}
	return out
}
