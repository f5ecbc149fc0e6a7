package cmd

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/laminate/internal/diagram"
	"github.com/alexiusacademia/laminate/internal/failure"
	"github.com/alexiusacademia/laminate/internal/laminate"
	"github.com/alexiusacademia/laminate/internal/linalg"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var (
	analyzeStack       stackFlags
	analyzeLoad        []float64
	analyzeFrame       string
	analyzeQuantity    string
	analyzeShowDiagram bool
	analyzeExportFile  string
)

var laminateAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Deformation, ply stresses and failure under a load",
	Long: `Solve the mid-plane deformation of a laminate under an applied load
and recover the strain and stress in every ply, then evaluate the
Tsai-Wu and Tsai-Hill failure criteria in ply axes.

The load vector is [Nx, Ny, Nxy, Mx, My, Mxy]: forces and moments per
unit width. The deformation is [εx, εy, γxy, κx, κy, κxy].

Examples:
  # Asymmetric carbon/epoxy laminate
  laminate laminate analyze -a 0,60,0,30 --load 240,82,4,-63,0,0

  # Laminate-axis results with a terminal plot of stresses
  laminate laminate analyze -a 0,90,90,0 --load 100,0,0,0,0,0 --frame global --diagram

  # Export the through-thickness strain profile
  laminate laminate analyze -a 0,60,0,30 --load 240,82,4,-63,0,0 --quantity strain -o strain.png`,
	RunE: runLaminateAnalyze,
}

func init() {
	laminateCmd.AddCommand(laminateAnalyzeCmd)

	analyzeStack.register(laminateAnalyzeCmd)
	analyzeStack.registerStrengths(laminateAnalyzeCmd)
	laminateAnalyzeCmd.Flags().Float64SliceVarP(&analyzeLoad, "load", "l", nil, "Load Nx,Ny,Nxy,Mx,My,Mxy [required]")
	laminateAnalyzeCmd.Flags().StringVar(&analyzeFrame, "frame", "local", "Frame for ply strains/stresses: global or local")
	laminateAnalyzeCmd.Flags().StringVar(&analyzeQuantity, "quantity", "stress", "Profile quantity for diagrams: stress or strain")
	laminateAnalyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII through-thickness profile")
	laminateAnalyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export profile to file (png, svg, pdf)")
	laminateAnalyzeCmd.MarkFlagRequired("load")
}

func parseFrame(s string) (laminate.Frame, error) {
	switch s {
	case "global":
		return laminate.Global, nil
	case "local":
		return laminate.Local, nil
	}
	return 0, fmt.Errorf("--frame must be global or local, got %q", s)
}

func runLaminateAnalyze(cmd *cobra.Command, args []string) error {
	if len(analyzeLoad) != 6 {
		return fmt.Errorf("--load needs 6 values, got %d", len(analyzeLoad))
	}
	frame, err := parseFrame(analyzeFrame)
	if err != nil {
		return err
	}
	if analyzeQuantity != "stress" && analyzeQuantity != "strain" {
		return fmt.Errorf("--quantity must be stress or strain, got %q", analyzeQuantity)
	}

	lam, preset, err := analyzeStack.build(cmd)
	if err != nil {
		return err
	}
	var load linalg.Vec6
	copy(load[:], analyzeLoad)

	d, err := lam.Deform(load)
	if err != nil {
		return err
	}
	report, err := failure.Evaluate(lam, d, preset.Strengths)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printBanner(w, "LAMINATE ANALYSIS - CLASSICAL LAMINATE THEORY")

	printHeader(w, "MATERIAL ("+preset.Name+")")
	printLines(w, materialLines(preset.Elastic))

	printStack(cmd, lam)

	printHeader(w, "APPLIED LOAD")
	printLines(w, []string{
		fmt.Sprintf("  Nx, Ny, Nxy:\t%g\t%g\t%g", load[0], load[1], load[2]),
		fmt.Sprintf("  Mx, My, Mxy:\t%g\t%g\t%g", load[3], load[4], load[5]),
	})

	printHeader(w, "MID-PLANE DEFORMATION")
	printLines(w, []string{
		fmt.Sprintf("  εx, εy, γxy:\t%.6e\t%.6e\t%.6e", d[0], d[1], d[2]),
		fmt.Sprintf("  κx, κy, κxy:\t%.6e\t%.6e\t%.6e", d[3], d[4], d[5]),
	})

	strainLabels, stressLabels := labels(frame)
	printPlyTable(w, fmt.Sprintf("PLY STRAINS (%s axes)", frame), strainLabels, "%.6e",
		lam.MidStrains(d, frame), lam.SurfaceStrains(d, frame))
	printPlyTable(w, fmt.Sprintf("PLY STRESSES (%s axes)", frame), stressLabels, "%.4f",
		lam.MidStresses(d, frame), lam.SurfaceStresses(d, frame))

	printFailure(w, report)

	profile := profileData(lam, d, frame)
	if analyzeShowDiagram {
		for c := 0; c < 3; c++ {
			fmt.Fprintln(w, diagram.DrawProfile(profile, c))
			fmt.Fprintln(w)
		}
	}

	if analyzeExportFile != "" {
		err := diagram.ExportProfile(profile, analyzeExportFile,
			vg.Length(cfg.PlotWidth)*vg.Inch, vg.Length(cfg.PlotHeight)*vg.Inch)
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(w, "Diagram exported to: %s\n", analyzeExportFile)
	}
	return nil
}

func labels(f laminate.Frame) (strain, stress [3]string) {
	if f == laminate.Local {
		return [3]string{"ε1", "ε2", "γ12"}, [3]string{"σ1", "σ2", "τ12"}
	}
	return [3]string{"εx", "εy", "γxy"}, [3]string{"σx", "σy", "τxy"}
}

// printPlyTable prints mid, bottom and top values of every ply
func printPlyTable(w io.Writer, title string, names [3]string, verb string, mid []linalg.Vec3, faces []laminate.Surfaces) {
	printHeader(w, title)
	lines := []string{
		fmt.Sprintf("  Ply\tAt\t%s\t%s\t%s", names[0], names[1], names[2]),
		"  ───\t──\t──\t──\t──",
	}
	row := func(k int, at string, v linalg.Vec3) string {
		f := "  %d\t%s\t" + verb + "\t" + verb + "\t" + verb
		return fmt.Sprintf(f, k+1, at, v[0], v[1], v[2])
	}
	for k := range mid {
		lines = append(lines,
			row(k, "top", faces[k].Top),
			row(k, "mid", mid[k]),
			row(k, "bottom", faces[k].Bottom),
		)
	}
	printLines(w, lines)
}

func printFailure(w io.Writer, report *failure.Report) {
	printHeader(w, "FAILURE INDICES (ply axes, bottom / top)")
	lines := []string{
		"  Ply\tAngle (°)\tTsai-Wu\tTsai-Hill\tStatus",
		"  ───\t─────────\t───────\t─────────\t──────",
	}
	for _, pr := range report.Plies {
		status := "✓"
		if pr.Failed() {
			status = "⚠ FAILS"
		}
		lines = append(lines, fmt.Sprintf("  %d\t%g\t%.4f / %.4f\t%.4f / %.4f\t%s",
			pr.Ply+1, pr.Angle,
			pr.TsaiWu[0].Index, pr.TsaiWu[1].Index,
			pr.TsaiHill[0].Index, pr.TsaiHill[1].Index,
			status))
	}
	printLines(w, lines)

	if report.FirstFail < 0 {
		fmt.Fprintln(w, diagram.DrawSummaryBox("FIRST-PLY FAILURE", []string{"No ply fails under this load"}))
		return
	}
	pr := report.Plies[report.FirstFail]
	fmt.Fprintln(w, diagram.DrawSummaryBox("FIRST-PLY FAILURE", []string{
		fmt.Sprintf("Ply %d (%g°) fails", pr.Ply+1, pr.Angle),
		fmt.Sprintf("Tsai-Wu max index   = %.4f", failure.MaxIndex(pr.TsaiWu)),
		fmt.Sprintf("Tsai-Hill max index = %.4f", failure.MaxIndex(pr.TsaiHill)),
	}))
}

func profileData(lam *laminate.Laminate, d linalg.Vec6, frame laminate.Frame) diagram.ProfileData {
	strainLabels, stressLabels := labels(frame)
	data := diagram.ProfileData{
		Title:  fmt.Sprintf("Through-thickness %s (%s axes)", analyzeQuantity, frame),
		Labels: stressLabels,
	}
	if analyzeQuantity == "strain" {
		data.Labels = strainLabels
	}

	for _, pt := range lam.Profile(d, frame) {
		v := pt.Stress
		if analyzeQuantity == "strain" {
			v = pt.Strain
		}
		data.Samples = append(data.Samples, diagram.ProfileSample{Z: pt.Z, Values: v})
	}
	zs := lam.ZS()
	for k := 1; k < len(zs); k++ {
		data.Interfaces = append(data.Interfaces, zs[k][0])
	}
	return data
}
