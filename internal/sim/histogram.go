package sim

import "sort"

// Histogram counts observed classical-register bitstrings across the
// shots of one run. Keys exist only for outcomes actually observed.
//
// Bit ordering convention: classical bit 0 is the least significant
// (rightmost) character, so a register {c0:1, c1:0} serializes as
// "01". This matches the histograms the usual simulator backends
// print.
type Histogram map[string]int

// Bitstring serializes a classical register into a histogram key,
// highest bit index first.
func Bitstring(creg []int) string {
	buf := make([]byte, len(creg))
	for i, b := range creg {
		buf[len(creg)-1-i] = byte('0' + b)
	}
	return string(buf)
}

// Total returns the sum of all counts. For a completed run this
// equals the requested shot count exactly.
func (h Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Keys returns the observed bitstrings in sorted order.
func (h Histogram) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Frequency returns the empirical probability of key, or 0 for an
// empty histogram.
func (h Histogram) Frequency(key string) float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	return float64(h[key]) / float64(total)
}

// Merge folds other into h.
func (h Histogram) Merge(other Histogram) {
	for k, n := range other {
		h[k] += n
	}
}
