package export

import (
	"strings"
	"testing"

	"github.com/san-kum/qsim/internal/sim"
)

func TestHistogramSVG(t *testing.T) {
	svg := HistogramSVG(sim.Histogram{"00": 512, "11": 512}, "bell")

	for _, want := range []string{"<svg", "</svg>", "bell", ">00<", ">11<", ">512<"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if strings.Count(svg, "<rect") != 3 { // background + two bars
		t.Errorf("expected 3 rects, got %d", strings.Count(svg, "<rect"))
	}
}

func TestHistogramSVG_Empty(t *testing.T) {
	svg := HistogramSVG(sim.Histogram{}, "empty")
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("expected a valid svg document even with no data")
	}
}
