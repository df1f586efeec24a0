package quantum

import "errors"

// Domain errors for engine operations.
var (
	// ErrQubitOutOfRange indicates a gate or measurement addressed a
	// qubit outside the register.
	ErrQubitOutOfRange = errors.New("quantum: qubit index out of range")

	// ErrQubitCount indicates an unsupported register size.
	ErrQubitCount = errors.New("quantum: qubit count out of range")

	// ErrSameQubit indicates a two-qubit gate with identical control
	// and target.
	ErrSameQubit = errors.New("quantum: control and target must differ")

	// ErrDegenerateState indicates a measurement observed an outcome
	// of exactly zero probability. Unreachable for well-formed
	// circuits; triggering it means the state vector lost its norm.
	ErrDegenerateState = errors.New("quantum: measurement outcome has zero probability")
)
