package cmd

import (
	"github.com/spf13/cobra"
)

var laminateCmd = &cobra.Command{
	Use:   "laminate",
	Short: "Laminate stiffness and stress analysis",
	Long: `Assemble and analyze a laminate defined by its stacking sequence.

Subcommands:
  stiffness  - ABD matrix, its inverse and effective in-plane constants
  analyze    - Deformation, ply strains/stresses and failure under a load

Plies are listed bottom to top and share one material and thickness.`,
}

func init() {
	rootCmd.AddCommand(laminateCmd)
}
