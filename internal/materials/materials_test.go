package materials

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	p, err := Lookup("carbon-epoxy")
	require.NoError(t, err)
	assert.Equal(t, 125000.0, p.Elastic.E1)
	assert.Equal(t, 9800.0, p.Elastic.E2)
	assert.Equal(t, 0.24, p.Elastic.Nu12)
	assert.Equal(t, 5500.0, p.Elastic.G12)
	assert.Equal(t, 0.125, p.Thickness)

	_, err = Lookup("balsa")
	assert.ErrorIs(t, err, ErrUnknownMaterial)
}

func TestPresetsAreValid(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		p, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
		assert.NoError(t, p.Elastic.Validate(), name)
		assert.NoError(t, p.Strengths.Validate(), name)
		assert.Positive(t, p.Thickness, name)
	}
}
