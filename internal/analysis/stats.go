// Package analysis computes summary statistics over run histograms.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/qsim/internal/sim"
)

// Summary aggregates a histogram into a handful of numbers worth
// printing after a run.
type Summary struct {
	Shots       int
	Outcomes    int
	EntropyBits float64
	// BitFrequency[i] is the empirical probability that classical
	// bit i read 1, shot-weighted.
	BitFrequency []float64
	// BitStdDev[i] is the shot-weighted standard deviation of bit i.
	BitStdDev []float64
}

// Summarize computes a Summary. clbits must match the register size
// the histogram keys were serialized from.
func Summarize(h sim.Histogram, clbits int) Summary {
	s := Summary{
		Shots:        h.Total(),
		Outcomes:     len(h),
		EntropyBits:  Entropy(h),
		BitFrequency: make([]float64, clbits),
		BitStdDev:    make([]float64, clbits),
	}
	if s.Shots == 0 || clbits == 0 {
		return s
	}

	keys := h.Keys()
	values := make([]float64, len(keys))
	weights := make([]float64, len(keys))
	for bit := 0; bit < clbits; bit++ {
		for i, key := range keys {
			// bit 0 is the rightmost character
			pos := len(key) - 1 - bit
			v := 0.0
			if pos >= 0 && key[pos] == '1' {
				v = 1.0
			}
			values[i] = v
			weights[i] = float64(h[key])
		}
		s.BitFrequency[bit] = stat.Mean(values, weights)
		s.BitStdDev[bit] = stat.StdDev(values, weights)
	}
	return s
}

// Entropy returns the Shannon entropy of the outcome distribution in
// bits. A fair single-qubit coin scores 1, a deterministic circuit 0.
func Entropy(h sim.Histogram) float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	probs := make([]float64, 0, len(h))
	for _, n := range h {
		if n > 0 {
			probs = append(probs, float64(n)/float64(total))
		}
	}
	return stat.Entropy(probs) / math.Ln2
}

// TotalVariation returns the total variation distance between the
// histogram's empirical distribution and an ideal one (probabilities
// summing to 1). Keys absent on either side count fully.
func TotalVariation(h sim.Histogram, ideal map[string]float64) float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}

	seen := make(map[string]bool, len(h)+len(ideal))
	sum := 0.0
	for key, n := range h {
		sum += math.Abs(float64(n)/float64(total) - ideal[key])
		seen[key] = true
	}
	for key, p := range ideal {
		if !seen[key] {
			sum += p
		}
	}
	return sum / 2
}

// RunningFrequency folds a sequence of batch histograms into the
// cumulative empirical frequency of key after each batch. Feeds the
// convergence plot.
func RunningFrequency(batches []sim.Histogram, key string) []float64 {
	series := make([]float64, 0, len(batches))
	cumulative := sim.Histogram{}
	for _, b := range batches {
		cumulative.Merge(b)
		series = append(series, cumulative.Frequency(key))
	}
	return series
}
