// Package quantum implements a dense state-vector engine for small
// qubit registers. A State owns a 2^n complex amplitude array for the
// duration of one shot; gates mutate it in place and Measure collapses
// it with Born-rule sampling. Basis states are indexed little-endian:
// qubit q corresponds to bit 1<<q of the amplitude index.
package quantum
