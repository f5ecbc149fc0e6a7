package cmd

import (
	"fmt"

	"github.com/alexiusacademia/laminate/internal/diagram"
	"github.com/alexiusacademia/laminate/internal/laminate"
	"github.com/spf13/cobra"
)

var (
	stiffnessStack       stackFlags
	stiffnessShowDiagram bool
)

var laminateStiffnessCmd = &cobra.Command{
	Use:   "stiffness",
	Short: "Assemble the ABD stiffness matrix of a laminate",
	Long: `Assemble the 6x6 laminate stiffness [[A, B], [B, D]] from the rotated
ply stiffnesses and invert it.

  A = Σ Q̄k (zk,top − zk,bot)
  B = Σ Q̄k (zk,top² − zk,bot²)/2
  D = Σ Q̄k (zk,top³ − zk,bot³)/3

Entries smaller than --zero-tol times the largest entry are set to zero.

Examples:
  laminate laminate stiffness --angles 0,60,0,30 --material carbon-epoxy
  laminate laminate stiffness -a 0,45,-45,90,90,-45,45,0 --zero-tol 0 --diagram`,
	RunE: runLaminateStiffness,
}

func init() {
	laminateCmd.AddCommand(laminateStiffnessCmd)

	stiffnessStack.register(laminateStiffnessCmd)
	laminateStiffnessCmd.Flags().BoolVar(&stiffnessShowDiagram, "diagram", false, "Show ASCII ply stack")
}

func runLaminateStiffness(cmd *cobra.Command, args []string) error {
	lam, preset, err := stiffnessStack.build(cmd)
	if err != nil {
		return err
	}
	inv, err := lam.ABDInverse()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printBanner(w, "LAMINATE STIFFNESS - CLASSICAL LAMINATE THEORY")

	printHeader(w, "MATERIAL ("+preset.Name+")")
	printLines(w, materialLines(preset.Elastic))

	printStack(cmd, lam)

	printHeader(w, "ABD MATRIX")
	printMat6(w, lam.ABD())

	printHeader(w, "ABD INVERSE")
	printMat6(w, inv)

	symmetric := "No (B ≠ 0 expected)"
	if lam.IsSymmetric() {
		symmetric = "Yes (B = 0)"
	}
	lines := []string{
		fmt.Sprintf("  Total thickness:\t%g mm", lam.Thickness()),
		fmt.Sprintf("  Symmetric stack:\t%s", symmetric),
	}
	if eng, err := lam.EngineeringConstants(); err == nil {
		lines = append(lines,
			fmt.Sprintf("  Ex:\t%.6g", eng.Ex),
			fmt.Sprintf("  Ey:\t%.6g", eng.Ey),
			fmt.Sprintf("  Gxy:\t%.6g", eng.Gxy),
			fmt.Sprintf("  νxy:\t%.6g", eng.NuXY),
		)
	}
	printHeader(w, "EFFECTIVE IN-PLANE PROPERTIES")
	printLines(w, lines)

	if stiffnessShowDiagram {
		fmt.Fprintln(w, diagram.DrawPlyStack(plyRows(lam)))
	}
	return nil
}

// printStack lists every ply with its z-coordinates
func printStack(cmd *cobra.Command, lam *laminate.Laminate) {
	w := cmd.OutOrStdout()
	printHeader(w, "STACKING SEQUENCE (bottom to top)")
	lines := []string{"  Ply\tAngle (°)\tz bottom\tz top\tz mid", "  ───\t─────────\t────────\t─────\t─────"}
	zs, mid := lam.ZS(), lam.MidPlyZ()
	for k, p := range lam.Plies() {
		lines = append(lines, fmt.Sprintf("  %d\t%g\t%+.4f\t%+.4f\t%+.4f", k+1, p.Angle(), zs[k][0], zs[k][1], mid[k]))
	}
	printLines(w, lines)
}

func plyRows(lam *laminate.Laminate) []diagram.PlyRow {
	zs := lam.ZS()
	rows := make([]diagram.PlyRow, lam.Len())
	for k, p := range lam.Plies() {
		rows[k] = diagram.PlyRow{Index: k + 1, Angle: p.Angle(), ZBottom: zs[k][0], ZTop: zs[k][1]}
	}
	return rows
}
