package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/laminate/internal/linalg"
)

const rule = "───────────────────────────────────────────────────────────────"

func printBanner(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)
}

func printHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintln(w, rule)
}

func printLines(w io.Writer, lines []string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, l := range lines {
		fmt.Fprintln(tw, l)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func printMat3(w io.Writer, m linalg.Mat3) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range m {
		fmt.Fprintf(tw, "  %s\t\n", join(row[:]))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func printMat6(w io.Writer, m linalg.Mat6) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range m {
		fmt.Fprintf(tw, "  %s\t\n", join(row[:]))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func join(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%.6g", v)
	}
	return strings.Join(parts, "\t")
}
