package demos

import "github.com/san-kum/qsim/internal/circuit"

// Superposition is the single-qubit fair coin: H then measure.
func Superposition() (*circuit.Circuit, error) {
	return circuit.NewBuilder(1, 1).
		Gate(circuit.Hadamard, 0).
		Measure(0, 0).
		Build()
}

// Conditional measures a |0> qubit and then applies X only if the
// recorded bit is 1. The gate can never fire, so every shot ends in
// "0" - the circuit exists to exercise replay-time condition
// evaluation.
func Conditional() (*circuit.Circuit, error) {
	return circuit.NewBuilder(1, 1).
		Measure(0, 0).
		Conditional(circuit.PauliX, 0, 1, 0).
		Build()
}

// Bell prepares and measures a maximally entangled pair.
func Bell() (*circuit.Circuit, error) {
	return circuit.NewBuilder(2, 2).
		Gate(circuit.Hadamard, 0).
		Gate(circuit.CNOT, 0, 1).
		Measure(0, 0).
		Measure(1, 1).
		Build()
}

// Teleport moves the |+> state from qubit 0 to qubit 2 via a shared
// Bell pair, a Bell measurement, and classically-conditioned
// corrections. Qubits: 0 = state to send, 1 = sender's half of the
// pair, 2 = receiver. Classical bits record the Bell measurement.
func Teleport() (*circuit.Circuit, error) {
	return teleportBuilder(2).Build()
}

// TeleportVerify extends Teleport with the verification stage: a
// Hadamard rotates the received |+> back to |0>, and a third
// classical bit records the check. That bit reads 0 on every shot
// when teleportation worked.
func TeleportVerify() (*circuit.Circuit, error) {
	return teleportBuilder(3).
		Barrier().
		Gate(circuit.Hadamard, 2).
		Measure(2, 2).
		Build()
}

func teleportBuilder(clbits int) *circuit.Builder {
	return circuit.NewBuilder(3, clbits).
		// prepare |+> on the qubit to teleport
		Gate(circuit.Hadamard, 0).
		Barrier().
		// entangle sender and receiver
		Gate(circuit.Hadamard, 1).
		Gate(circuit.CNOT, 1, 2).
		Barrier().
		// Bell measurement of qubits 0 and 1
		Gate(circuit.CNOT, 0, 1).
		Gate(circuit.Hadamard, 0).
		Barrier().
		Measure(0, 0).
		Measure(1, 1).
		Barrier().
		// classical corrections on the receiver
		Conditional(circuit.PauliX, 1, 1, 2).
		Conditional(circuit.PauliZ, 0, 1, 2)
}
