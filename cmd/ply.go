package cmd

import (
	"fmt"

	"github.com/alexiusacademia/laminate/internal/ply"
	"github.com/spf13/cobra"
)

var (
	plyAngle    float64
	plyMaterial materialFlags
)

var plyCmd = &cobra.Command{
	Use:   "ply",
	Short: "Stiffness of a single ply at an angle",
	Long: `Calculate the reduced stiffness Q of a unidirectional ply, the
transformation matrix T at the given angle and the rotated stiffness
Q̄ = T⁻¹·Q·(T⁻¹)ᵗ in laminate axes.

Examples:
  # 30° ply of the GPa demo material
  laminate ply --angle 30 --material demo-gpa

  # Custom constants
  laminate ply --angle 45 --e1 131 --e2 9 --nu12 0.22 --g12 6 -m demo-gpa`,
	RunE: runPly,
}

func init() {
	rootCmd.AddCommand(plyCmd)

	plyCmd.Flags().Float64Var(&plyAngle, "angle", 0, "Ply angle (degrees)")
	plyMaterial.register(plyCmd)
}

func runPly(cmd *cobra.Command, args []string) error {
	preset, err := plyMaterial.resolve(cmd)
	if err != nil {
		return err
	}
	p, err := ply.New(plyAngle, preset.Thickness, preset.Elastic)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printBanner(w, "PLY STIFFNESS")

	printHeader(w, "MATERIAL ("+preset.Name+")")
	printLines(w, materialLines(p.Material()))

	printHeader(w, "REDUCED STIFFNESS Q (ply axes)")
	printMat3(w, p.Q())

	printHeader(w, fmt.Sprintf("TRANSFORMATION T (θ = %g°)", p.Angle()))
	printMat3(w, p.T())

	printHeader(w, "ROTATED STIFFNESS Q̄ (laminate axes)")
	printMat3(w, p.QBar())
	return nil
}
