package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/laminate/internal/config"
	"github.com/alexiusacademia/laminate/internal/version"
	"github.com/spf13/cobra"
)

// cfg holds environment defaults, loaded before any subcommand runs
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "laminate",
	Short: "Composite Laminate Analysis Tool",
	Long: `laminate - Classical Laminate Theory calculator

A CLI tool for the analysis of fiber-reinforced composite laminates
using Classical Laminate Theory (CLT).

This tool helps engineers compute:
  - Ply reduced stiffness Q and rotated stiffness Q̄
  - Laminate ABD stiffness matrix and its inverse
  - Mid-plane strains and curvatures under applied loads
  - Ply strains and stresses in laminate and material axes
  - Tsai-Wu and Tsai-Hill failure indices

Defaults can be set with LAMINATE_MATERIAL, LAMINATE_THICKNESS,
LAMINATE_ZERO_TOL, LAMINATE_PLOT_WIDTH and LAMINATE_PLOT_HEIGHT.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   laminate v%-46s║\n", version.Version)
		fmt.Println("  ║   Classical Laminate Theory Calculator                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Ply stiffness and coordinate rotation")
		fmt.Println("    • Laminate ABD matrix assembly and inversion")
		fmt.Println("    • Mid-plane deformation and ply strain/stress recovery")
		fmt.Println("    • Tsai-Wu and Tsai-Hill first-ply failure")
		fmt.Println()
		fmt.Println("  Use 'laminate --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
