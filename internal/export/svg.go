// Package export renders histograms to standalone SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/qsim/internal/sim"
)

const (
	barWidth   = 60
	barGap     = 20
	chartH     = 240
	marginTop  = 30
	marginBot  = 40
	marginSide = 30
)

// HistogramSVG renders sorted bitstring bars with count labels. The
// tallest bar fills the chart height.
func HistogramSVG(h sim.Histogram, title string) string {
	keys := h.Keys()

	width := 2*marginSide + len(keys)*(barWidth+barGap)
	if width < 2*marginSide+barWidth {
		width = 2*marginSide + barWidth
	}
	height := marginTop + chartH + marginBot

	max := 0
	for _, key := range keys {
		if h[key] > max {
			max = h[key]
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="20" fill="#00ffff" font-family="monospace" font-size="14">%s</text>
`, marginSide, title))

	for i, key := range keys {
		n := h[key]
		barH := 0
		if max > 0 {
			barH = n * chartH / max
		}
		x := marginSide + i*(barWidth+barGap)
		y := marginTop + chartH - barH

		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="#ff00ff"/>
`, x, y, barWidth, barH))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#eeeeee" font-family="monospace" font-size="12" text-anchor="middle">%s</text>
`, x+barWidth/2, marginTop+chartH+16, key))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#888899" font-family="monospace" font-size="11" text-anchor="middle">%d</text>
`, x+barWidth/2, y-4, n))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
