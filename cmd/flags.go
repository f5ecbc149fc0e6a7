package cmd

import (
	"fmt"

	"github.com/alexiusacademia/laminate/internal/failure"
	"github.com/alexiusacademia/laminate/internal/laminate"
	"github.com/alexiusacademia/laminate/internal/materials"
	"github.com/alexiusacademia/laminate/internal/ply"
	"github.com/spf13/cobra"
)

// materialFlags selects a preset and lets any constant be overridden
type materialFlags struct {
	name      string
	e1        float64
	e2        float64
	nu12      float64
	g12       float64
	strengths []float64
}

func (f *materialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "material", "m", "", "Material preset (see 'laminate materials') [default: $LAMINATE_MATERIAL]")
	cmd.Flags().Float64Var(&f.e1, "e1", 0, "Override longitudinal modulus E1")
	cmd.Flags().Float64Var(&f.e2, "e2", 0, "Override transverse modulus E2")
	cmd.Flags().Float64Var(&f.nu12, "nu12", 0, "Override major Poisson ratio ν12")
	cmd.Flags().Float64Var(&f.g12, "g12", 0, "Override shear modulus G12")
}

func (f *materialFlags) registerStrengths(cmd *cobra.Command) {
	cmd.Flags().Float64SliceVar(&f.strengths, "strengths", nil,
		"Override strengths σLp,σLn,σTp,σTn,τLT (MPa)")
}

// resolve returns the preset with command-line overrides applied
func (f *materialFlags) resolve(cmd *cobra.Command) (materials.Preset, error) {
	name := f.name
	if name == "" {
		name = cfg.Material
	}
	preset, err := materials.Lookup(name)
	if err != nil {
		return materials.Preset{}, err
	}

	if cmd.Flags().Changed("e1") {
		preset.Elastic.E1 = f.e1
	}
	if cmd.Flags().Changed("e2") {
		preset.Elastic.E2 = f.e2
	}
	if cmd.Flags().Changed("nu12") {
		preset.Elastic.Nu12 = f.nu12
	}
	if cmd.Flags().Changed("g12") {
		preset.Elastic.G12 = f.g12
	}
	if cmd.Flags().Changed("strengths") {
		if len(f.strengths) != 5 {
			return materials.Preset{}, fmt.Errorf("--strengths needs 5 values, got %d", len(f.strengths))
		}
		preset.Strengths = failure.Strengths{
			LongTension:      f.strengths[0],
			LongCompression:  f.strengths[1],
			TransTension:     f.strengths[2],
			TransCompression: f.strengths[3],
			Shear:            f.strengths[4],
		}
	}
	return preset, nil
}

// stackFlags describes a laminate: angles, ply thickness and zero tolerance
type stackFlags struct {
	materialFlags
	angles    []float64
	thickness float64
	zeroTol   float64
}

func (f *stackFlags) register(cmd *cobra.Command) {
	f.materialFlags.register(cmd)
	cmd.Flags().Float64SliceVarP(&f.angles, "angles", "a", nil, "Ply angles in degrees, bottom to top (e.g. 0,60,0,30) [required]")
	cmd.Flags().Float64VarP(&f.thickness, "thickness", "t", 0, "Ply thickness (mm) [default: preset]")
	cmd.Flags().Float64Var(&f.zeroTol, "zero-tol", laminate.DefaultZeroTolerance, "Relative ABD zero-snap tolerance (0 disables)")
	cmd.MarkFlagRequired("angles")
}

// build resolves the material and constructs the laminate
func (f *stackFlags) build(cmd *cobra.Command) (*laminate.Laminate, materials.Preset, error) {
	preset, err := f.resolve(cmd)
	if err != nil {
		return nil, materials.Preset{}, err
	}

	thickness := f.thickness
	if !cmd.Flags().Changed("thickness") {
		thickness = cfg.Thickness
		if thickness == 0 {
			thickness = preset.Thickness
		}
	}
	zeroTol := f.zeroTol
	if !cmd.Flags().Changed("zero-tol") {
		zeroTol = cfg.ZeroTolerance
	}

	lam, err := laminate.New(f.angles, thickness, preset.Elastic, laminate.WithZeroTolerance(zeroTol))
	if err != nil {
		return nil, materials.Preset{}, err
	}
	return lam, preset, nil
}

// materialLines formats the elastic constants for a report
func materialLines(m ply.Material) []string {
	return []string{
		fmt.Sprintf("  E1:\t%g", m.E1),
		fmt.Sprintf("  E2:\t%g", m.E2),
		fmt.Sprintf("  ν12:\t%g", m.Nu12),
		fmt.Sprintf("  ν21:\t%.6g", m.Nu21()),
		fmt.Sprintf("  G12:\t%g", m.G12),
	}
}
