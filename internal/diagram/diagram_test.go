package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func sampleProfile() ProfileData {
	return ProfileData{
		Title:  "Through-thickness stress",
		Labels: [3]string{"σ1", "σ2", "τ12"},
		Samples: []ProfileSample{
			{Z: -0.25, Values: [3]float64{-120, 10, 2}},
			{Z: 0, Values: [3]float64{40, 12, 3}},
			{Z: 0, Values: [3]float64{5, 30, -4}},
			{Z: 0.25, Values: [3]float64{300, 35, -6}},
		},
		Interfaces: []float64{0},
	}
}

func TestDrawPlyStack(t *testing.T) {
	out := DrawPlyStack([]PlyRow{
		{Index: 1, Angle: 0, ZBottom: -0.125, ZTop: 0},
		{Index: 2, Angle: 45, ZBottom: 0, ZTop: 0.125},
	})

	assert.Contains(t, out, "1: 0°")
	assert.Contains(t, out, "2: 45°")
	// top ply is drawn first
	assert.Less(t, strings.Index(out, "2: 45°"), strings.Index(out, "1: 0°"))
	assert.Contains(t, out, "╱")
}

func TestHatch(t *testing.T) {
	assert.Equal(t, "─", hatch(0))
	assert.Equal(t, "─", hatch(180))
	assert.Equal(t, "╱", hatch(45))
	assert.Equal(t, "│", hatch(-90))
	assert.Equal(t, "╲", hatch(-45))
}

func TestDrawProfile(t *testing.T) {
	out := DrawProfile(sampleProfile(), 0)
	assert.Contains(t, out, "σ1")
	assert.Contains(t, out, "bottom → top")

	assert.Empty(t, DrawProfile(ProfileData{}, 0))
}

func TestDrawSummaryBox(t *testing.T) {
	body := []string{"Ply 2 (60°) fails", "σ"}
	out := DrawSummaryBox("FIRST-PLY FAILURE", body)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, title, separator, body, bottom border
	require.Len(t, lines, len(body)+4)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestExportProfile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "out", "profile.png")

	require.NoError(t, ExportProfile(sampleProfile(), filename, 4*vg.Inch, 6*vg.Inch))

	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, ExportProfile(ProfileData{}, filename, 4*vg.Inch, 6*vg.Inch))
}
