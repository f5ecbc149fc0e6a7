package laminate

import (
	"math"
	"testing"

	"github.com/alexiusacademia/laminate/internal/linalg"
	"github.com/alexiusacademia/laminate/internal/ply"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	carbonEpoxy = ply.Material{E1: 125000, E2: 9800, Nu12: 0.24, G12: 5500}
	demoGPa     = ply.Material{E1: 131, E2: 9, Nu12: 0.22, G12: 6}
	sampleLoad  = linalg.Vec6{240, 82, 4, -63, 0, 0}
)

func newSample(t *testing.T, opts ...Option) *Laminate {
	t.Helper()
	lam, err := New([]float64{0, 60, 0, 30}, 0.125, carbonEpoxy, opts...)
	require.NoError(t, err)
	return lam
}

func TestNew_ZCoordinates(t *testing.T) {
	lam := newSample(t)

	assert.Equal(t, 4, lam.Len())
	assert.Equal(t, 0.5, lam.Thickness())
	assert.Equal(t, 0.25, lam.HalfThickness())
	assert.Equal(t, [][2]float64{
		{-0.25, -0.125},
		{-0.125, 0},
		{0, 0.125},
		{0.125, 0.25},
	}, lam.ZS())
	assert.Equal(t, []float64{-0.1875, -0.0625, 0.0625, 0.1875}, lam.MidPlyZ())

	zs := lam.ZS()
	for k := 1; k < len(zs); k++ {
		assert.Equal(t, zs[k-1][1], zs[k][0], "ply %d must start where ply %d ends", k+1, k)
		assert.Less(t, zs[k][0], zs[k][1])
	}
}

func TestNew_PreservesOrder(t *testing.T) {
	lam := newSample(t)

	var angles []float64
	for _, p := range lam.Plies() {
		angles = append(angles, p.Angle())
	}
	assert.Equal(t, []float64{0, 60, 0, 30}, angles)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, 0.125, carbonEpoxy)
	assert.ErrorIs(t, err, ErrSingularStiffness)

	_, err = New([]float64{0, 90}, 0.125, ply.Material{E1: 1, E2: 4, Nu12: 0.5, G12: 1})
	assert.ErrorIs(t, err, ply.ErrInvalidMaterial)

	_, err = New([]float64{0, 90}, -0.125, carbonEpoxy)
	assert.ErrorIs(t, err, ply.ErrInvalidThickness)
}

func TestNew_NonFiniteInput(t *testing.T) {
	for _, angle := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		lam, err := New([]float64{0, angle}, 0.125, carbonEpoxy)
		assert.ErrorIs(t, err, ply.ErrInvalidAngle)
		assert.Nil(t, lam)
	}

	for _, tol := range []float64{math.NaN(), math.Inf(1), -1e-6} {
		lam, err := New([]float64{0, 90}, 0.125, carbonEpoxy, WithZeroTolerance(tol))
		assert.ErrorIs(t, err, ErrInvalidTolerance)
		assert.Nil(t, lam)
	}
}

func TestNew_SingularWrapsCause(t *testing.T) {
	_, err := New(nil, 0.125, carbonEpoxy)
	assert.ErrorIs(t, err, ErrSingularStiffness)
	assert.ErrorIs(t, err, linalg.ErrSingular)
}

func TestABD_Symmetric(t *testing.T) {
	for _, angles := range [][]float64{
		{0, 60, 0, 30},
		{45, -45, 0, 90},
		{15},
		{0, 30, 60, 90, -60, -30},
	} {
		lam, err := New(angles, 0.125, carbonEpoxy, WithZeroTolerance(0))
		require.NoError(t, err)
		assert.True(t, lam.ABD().IsSymmetric(1e-12), "angles %v", angles)
		assert.NotZero(t, lam.ABD().MaxAbs())
	}
}

func TestABD_SymmetricStackHasNoCoupling(t *testing.T) {
	lam, err := New([]float64{0, 60, 0, 0, 60, 0}, 0.125, carbonEpoxy)
	require.NoError(t, err)

	assert.True(t, lam.IsSymmetric())
	assert.Equal(t, linalg.Mat3{}, lam.B())

	raw, err := New([]float64{0, 60, 0, 0, 60, 0}, 0.125, carbonEpoxy, WithZeroTolerance(0))
	require.NoError(t, err)
	b := raw.B()
	limit := 1e-9 * raw.ABD().MaxAbs()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, 0, b[i][j], limit)
		}
	}
}

func TestABD_AsymmetricStackIsCoupled(t *testing.T) {
	lam := newSample(t)

	assert.False(t, lam.IsSymmetric())
	assert.NotEqual(t, linalg.Mat3{}, lam.B())
}

func TestABD_SingleZeroPly(t *testing.T) {
	lam, err := New([]float64{0}, 0.125, demoGPa, WithZeroTolerance(0))
	require.NoError(t, err)

	p := lam.Plies()[0]
	assert.Equal(t, p.Q(), p.QBar())
	assert.Equal(t, p.Q().Scale(0.125), lam.A())
	assert.Equal(t, linalg.Mat3{}, lam.B())

	d := lam.D()
	h := 0.0625
	wantD := p.Q().Scale(2 * h * h * h / 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, wantD[i][j], d[i][j], 1e-12)
		}
	}
}

func TestSnapToZero(t *testing.T) {
	var m linalg.Mat6
	m[0][0] = 1
	m[1][2] = 1e-9
	m[2][1] = -2e-7

	raw := m
	snapToZero(&raw, 0)
	assert.Equal(t, m, raw)

	snapToZero(&m, DefaultZeroTolerance)
	assert.Equal(t, 1.0, m[0][0])
	assert.Zero(t, m[1][2])
	assert.Zero(t, m[2][1])
}

func TestABDInverse_RoundTrip(t *testing.T) {
	lam := newSample(t)

	inv, err := lam.ABDInverse()
	require.NoError(t, err)

	d := Solve(inv, sampleLoad)
	back := lam.ABD().MulVec(d)
	for i := range sampleLoad {
		assert.InDelta(t, sampleLoad[i], back[i], 1e-6)
	}
}

func TestABDInverse_IsFresh(t *testing.T) {
	lam := newSample(t)

	a, err := lam.ABDInverse()
	require.NoError(t, err)
	a[0][0] = 0

	b, err := lam.ABDInverse()
	require.NoError(t, err)
	assert.NotZero(t, b[0][0])
}

func TestDeform_SampleScenario(t *testing.T) {
	lam := newSample(t)

	d, err := lam.Deform(sampleLoad)
	require.NoError(t, err)

	assert.NotEqual(t, linalg.Vec6{}, d)
	assert.NotEqual(t, linalg.Vec3{}, d.Curvature())
	assert.NotZero(t, d[3])
}

func TestSolve_Identity(t *testing.T) {
	var id linalg.Mat6
	for i := range id {
		id[i][i] = 1
	}
	assert.Equal(t, sampleLoad, Solve(id, sampleLoad))
}

func TestEngineeringConstants_SingleZeroPly(t *testing.T) {
	lam, err := New([]float64{0}, 0.125, demoGPa)
	require.NoError(t, err)

	eng, err := lam.EngineeringConstants()
	require.NoError(t, err)

	assert.InDelta(t, demoGPa.E1, eng.Ex, 1e-9)
	assert.InDelta(t, demoGPa.E2, eng.Ey, 1e-9)
	assert.InDelta(t, demoGPa.G12, eng.Gxy, 1e-9)
	assert.InDelta(t, demoGPa.Nu12, eng.NuXY, 1e-12)
}

func TestEngineeringConstants_CrossPly(t *testing.T) {
	lam, err := New([]float64{0, 90, 90, 0}, 0.125, carbonEpoxy)
	require.NoError(t, err)

	eng, err := lam.EngineeringConstants()
	require.NoError(t, err)

	assert.InDelta(t, eng.Ex, eng.Ey, 1e-6*eng.Ex)
	assert.Less(t, eng.Ex, carbonEpoxy.E1)
	assert.Greater(t, eng.Ex, carbonEpoxy.E2)
}
