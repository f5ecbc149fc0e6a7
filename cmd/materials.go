package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/laminate/internal/materials"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the material presets",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		printBanner(w, "MATERIAL PRESETS")

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Name\tE1\tE2\tν12\tG12\tσLp/σLn/σTp/σTn/τLT\tt (mm)\n")
		fmt.Fprintf(tw, "  ────\t──\t──\t───\t───\t──────────────────\t──────\n")
		for _, name := range materials.Names() {
			p, _ := materials.Lookup(name)
			s := p.Strengths
			fmt.Fprintf(tw, "  %s\t%g\t%g\t%g\t%g\t%g/%g/%g/%g/%g\t%g\n",
				p.Name, p.Elastic.E1, p.Elastic.E2, p.Elastic.Nu12, p.Elastic.G12,
				s.LongTension, s.LongCompression, s.TransTension, s.TransCompression, s.Shear,
				p.Thickness)
		}
		tw.Flush()
		fmt.Fprintln(w)
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
