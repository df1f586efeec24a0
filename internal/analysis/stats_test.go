package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/qsim/internal/sim"
)

func TestEntropy(t *testing.T) {
	tests := []struct {
		name string
		hist sim.Histogram
		want float64
	}{
		{"deterministic", sim.Histogram{"0": 100}, 0},
		{"fair coin", sim.Histogram{"0": 512, "1": 512}, 1},
		{"four uniform", sim.Histogram{"00": 1, "01": 1, "10": 1, "11": 1}, 2},
		{"empty", sim.Histogram{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Entropy(tt.hist); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Entropy() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	// Bell-style histogram: bits perfectly correlated, each bit is 1
	// half the time.
	h := sim.Histogram{"00": 500, "11": 500}
	s := Summarize(h, 2)

	if s.Shots != 1000 {
		t.Errorf("shots: got %d", s.Shots)
	}
	if s.Outcomes != 2 {
		t.Errorf("outcomes: got %d", s.Outcomes)
	}
	if math.Abs(s.EntropyBits-1.0) > 1e-9 {
		t.Errorf("entropy: got %f", s.EntropyBits)
	}
	for bit, f := range s.BitFrequency {
		if math.Abs(f-0.5) > 1e-9 {
			t.Errorf("bit %d frequency: got %f, want 0.5", bit, f)
		}
	}
}

func TestSummarize_Deterministic(t *testing.T) {
	s := Summarize(sim.Histogram{"0": 100}, 1)
	if s.BitFrequency[0] != 0 {
		t.Errorf("expected bit frequency 0, got %f", s.BitFrequency[0])
	}
	if s.BitStdDev[0] != 0 {
		t.Errorf("expected zero stddev, got %f", s.BitStdDev[0])
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(sim.Histogram{}, 2)
	if s.Shots != 0 || s.Outcomes != 0 || s.EntropyBits != 0 {
		t.Errorf("unexpected summary for empty histogram: %+v", s)
	}
}

func TestTotalVariation(t *testing.T) {
	fair := map[string]float64{"0": 0.5, "1": 0.5}

	tests := []struct {
		name string
		hist sim.Histogram
		want float64
	}{
		{"exact match", sim.Histogram{"0": 50, "1": 50}, 0},
		{"all zeros", sim.Histogram{"0": 100}, 0.5},
		{"disjoint", sim.Histogram{"x": 10}, 1},
		{"empty", sim.Histogram{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalVariation(tt.hist, fair); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TotalVariation() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestRunningFrequency(t *testing.T) {
	batches := []sim.Histogram{
		{"0": 10},
		{"0": 5, "1": 5},
		{"1": 10},
	}
	series := RunningFrequency(batches, "0")
	want := []float64{1.0, 0.75, 0.5}

	if len(series) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(series))
	}
	for i := range want {
		if math.Abs(series[i]-want[i]) > 1e-9 {
			t.Errorf("point %d: got %f, want %f", i, series[i], want[i])
		}
	}
}
