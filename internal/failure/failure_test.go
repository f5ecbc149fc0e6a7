package failure

import (
	"reflect"
	"testing"

	"github.com/alexiusacademia/laminate/internal/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strengths = Strengths{
	LongTension:      900,
	LongCompression:  800,
	TransTension:     55,
	TransCompression: 170,
	Shear:            90,
}

func TestZeroStress(t *testing.T) {
	for name, criterion := range map[string]func(linalg.Vec3, Strengths) (Result, error){
		"tsai-wu":   TsaiWu,
		"tsai-hill": TsaiHill,
	} {
		t.Run(name, func(t *testing.T) {
			r, err := criterion(linalg.Vec3{}, strengths)
			require.NoError(t, err)
			assert.Equal(t, Result{Failed: false, Index: 0}, r)
		})
	}
}

func TestTsaiWu(t *testing.T) {
	r, err := TsaiWu(linalg.Vec3{100, 20, 10}, strengths)
	require.NoError(t, err)
	assert.InDelta(t, 0.27673998, r.Index, 1e-8)
	assert.False(t, r.Failed)
}

func TestTsaiWu_UniaxialBeyondStrength(t *testing.T) {
	r, err := TsaiWu(linalg.Vec3{1.1 * strengths.LongTension, 0, 0}, strengths)
	require.NoError(t, err)
	assert.True(t, r.Failed)
	assert.Greater(t, r.Index, 1.0)

	r, err = TsaiWu(linalg.Vec3{strengths.LongTension, 0, 0}, strengths)
	require.NoError(t, err)
	assert.InDelta(t, 1, r.Index, 1e-12)
}

func TestTsaiWu_InteractionTerm(t *testing.T) {
	// Equal-sign biaxial stress is relieved by the negative F12
	with, err := TsaiWu(linalg.Vec3{100, 20, 0}, strengths)
	require.NoError(t, err)
	a, err := TsaiWu(linalg.Vec3{100, 0, 0}, strengths)
	require.NoError(t, err)
	b, err := TsaiWu(linalg.Vec3{0, 20, 0}, strengths)
	require.NoError(t, err)

	assert.Less(t, with.Index, a.Index+b.Index)
}

func TestTsaiHill(t *testing.T) {
	r, err := TsaiHill(linalg.Vec3{100, 20, 10}, strengths)
	require.NoError(t, err)
	// cross term σ1·σ2/σL²
	want := (100.0/900)*(100.0/900) - 100.0*20/(900*900) + (20.0/55)*(20.0/55) + (10.0/90)*(10.0/90)
	assert.InDelta(t, want, r.Index, 1e-12)
	assert.InDelta(t, 0.15445363, r.Index, 1e-8)
	assert.False(t, r.Failed)
}

func TestTsaiHill_PicksStrengthBySign(t *testing.T) {
	r, err := TsaiHill(linalg.Vec3{-strengths.LongCompression, 0, 0}, strengths)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Index)
	assert.True(t, r.Failed)

	r, err = TsaiHill(linalg.Vec3{0, -85, 0}, strengths)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, r.Index, 1e-12)

	r, err = TsaiHill(linalg.Vec3{0, 0, -90}, strengths)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Index)
	assert.True(t, r.Failed)
}

func TestPick(t *testing.T) {
	assert.Equal(t, 900.0, pick(1, 900, 800))
	assert.Equal(t, 800.0, pick(-1, 900, 800))
	assert.Equal(t, 850.0, pick(0, 900, 800))
}

func TestInvalidStrength(t *testing.T) {
	bad := []Strengths{
		{0, 800, 55, 170, 90},
		{900, -800, 55, 170, 90},
		{900, 800, 0, 170, 90},
		{900, 800, 55, 0, 90},
		{900, 800, 55, 170, 0},
	}
	for _, s := range bad {
		_, err := TsaiWu(linalg.Vec3{1, 1, 1}, s)
		assert.ErrorIs(t, err, ErrInvalidStrength)
		_, err = TsaiHill(linalg.Vec3{1, 1, 1}, s)
		assert.ErrorIs(t, err, ErrInvalidStrength)
	}
	assert.NoError(t, strengths.Validate())
}

func TestStrengths_FieldsCarryNoTags(t *testing.T) {
	typ := reflect.TypeOf(Strengths{})
	for i := 0; i < typ.NumField(); i++ {
		assert.Empty(t, typ.Field(i).Tag, typ.Field(i).Name)
	}
}
