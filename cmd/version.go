package cmd

import (
	"fmt"

	"github.com/alexiusacademia/laminate/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of laminate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "laminate v%s\n", version.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Commit %s, built %s\n", version.GitCommit, version.BuildTime)
		fmt.Fprintln(cmd.OutOrStdout(), "Classical Laminate Theory Calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
