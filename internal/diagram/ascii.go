package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// PlyRow describes one ply for the stack drawing
type PlyRow struct {
	Index   int     // 1-based, bottom ply is 1
	Angle   float64 // degrees
	ZBottom float64
	ZTop    float64
}

// ProfileSample is one through-thickness sample of a 3-component quantity
type ProfileSample struct {
	Z      float64
	Values [3]float64
}

// ProfileData holds a through-thickness distribution for plotting
type ProfileData struct {
	Title      string
	Labels     [3]string // component names, e.g. σ1, σ2, τ12
	Samples    []ProfileSample
	Interfaces []float64 // z of every ply boundary, bottom to top
}

// DrawPlyStack creates an ASCII cross-section of the ply stack, top ply first
func DrawPlyStack(rows []PlyRow) string {
	var sb strings.Builder

	widthChars := 30

	sb.WriteString("\n")
	sb.WriteString("  PLY STACK (top)                       z-range\n")
	sb.WriteString("  ───────────────                       ───────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))

	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		label := fmt.Sprintf(" %d: %g° ", r.Index, r.Angle)
		fill := strings.Repeat(hatch(r.Angle), widthChars)
		runes := []rune(fill)
		if n := len([]rune(label)); n < widthChars {
			copy(runes[(widthChars-n)/2:], []rune(label))
		}
		sb.WriteString(fmt.Sprintf("  │%s│  %+.4f … %+.4f\n", string(runes), r.ZBottom, r.ZTop))
		if i > 0 {
			sb.WriteString(fmt.Sprintf("  ├%s┤\n", strings.Repeat("─", widthChars)))
		}
	}

	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	sb.WriteString("  (bottom)\n")

	return sb.String()
}

// hatch picks a fill character that hints at the fibre direction
func hatch(angle float64) string {
	a := math.Mod(angle, 180)
	if a < 0 {
		a += 180
	}
	switch {
	case a < 22.5 || a >= 157.5:
		return "─"
	case a < 67.5:
		return "╱"
	case a < 112.5:
		return "│"
	default:
		return "╲"
	}
}

// DrawProfile plots one component of a through-thickness distribution as a
// terminal line graph, bottom sample on the left.
func DrawProfile(data ProfileData, component int) string {
	if len(data.Samples) == 0 {
		return ""
	}
	series := make([]float64, len(data.Samples))
	for i, s := range data.Samples {
		series[i] = s.Values[component]
	}

	caption := fmt.Sprintf("%s %s (bottom → top, z = %+.4f … %+.4f)",
		data.Title, data.Labels[component], data.Samples[0].Z, data.Samples[len(data.Samples)-1].Z)

	return asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes and misaligns symbols like σ
func pad(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
