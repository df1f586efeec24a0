package circuit

import "errors"

// Domain errors for circuit construction.
var (
	// ErrIndexOutOfRange indicates a qubit or classical-bit index
	// outside the declared register bounds.
	ErrIndexOutOfRange = errors.New("circuit: index out of range")

	// ErrInvalidOperation indicates an unsupported gate kind or a
	// malformed target list.
	ErrInvalidOperation = errors.New("circuit: invalid operation")

	// ErrRegisterSize indicates a circuit declared with no qubits.
	ErrRegisterSize = errors.New("circuit: register size must be positive")
)
