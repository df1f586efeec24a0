// Package circuit models a quantum circuit as an ordered, immutable
// sequence of operations over declared qubit and classical registers.
// A Builder validates operations as they are appended; Build returns a
// Circuit that is pure data and never executes anything itself.
package circuit
