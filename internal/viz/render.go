// Package viz renders histograms and convergence series for the
// terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qsim/internal/sim"
)

var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

const barWidth = 40

// Histogram renders sorted bitstring bars scaled to the largest
// count.
func Histogram(h sim.Histogram) string {
	keys := h.Keys()
	if len(keys) == 0 {
		return "(no outcomes)\n"
	}

	max := 0
	for _, key := range keys {
		if h[key] > max {
			max = h[key]
		}
	}

	var sb strings.Builder
	for _, key := range keys {
		n := h[key]
		filled := n * barWidth / max
		if filled == 0 && n > 0 {
			filled = 1
		}
		bar := strings.Repeat("█", filled)
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			keyStyle.Render(key),
			barStyle.Render(bar),
			countStyle.Render(fmt.Sprintf("%d (%.1f%%)", n, 100*h.Frequency(key))),
		))
	}
	return sb.String()
}

// Convergence plots a running-frequency series as a line graph.
func Convergence(series []float64, caption string) string {
	if len(series) < 2 {
		return "(not enough points to plot)\n"
	}
	return asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
	)
}
