package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
)

// MaxQubits bounds the register size; 2^26 amplitudes is already a
// 1 GiB allocation.
const MaxQubits = 26

// State is the amplitude vector of an n-qubit register. One State
// belongs to exactly one shot; nothing outside this package reads or
// writes the amplitudes directly.
type State struct {
	amps []complex128
	n    int
}

// New allocates a register of n qubits initialized to |0...0>.
func New(n int) (*State, error) {
	if n < 1 || n > MaxQubits {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrQubitCount, n, MaxQubits)
	}
	s := &State{
		amps: make([]complex128, 1<<n),
		n:    n,
	}
	s.amps[0] = 1
	return s, nil
}

// NumQubits returns the register size.
func (s *State) NumQubits() int { return s.n }

// Reset returns the register to |0...0> without reallocating.
func (s *State) Reset() {
	for i := range s.amps {
		s.amps[i] = 0
	}
	s.amps[0] = 1
}

// Amplitude returns the amplitude of basis state i.
func (s *State) Amplitude(i int) complex128 {
	if i < 0 || i >= len(s.amps) {
		return 0
	}
	return s.amps[i]
}

// Norm returns the total probability mass. It should stay at 1 within
// floating-point tolerance after every gate and measurement.
func (s *State) Norm() float64 {
	total := 0.0
	for _, a := range s.amps {
		total += real(a)*real(a) + imag(a)*imag(a)
	}
	return total
}

func (s *State) checkQubit(q int) error {
	if q < 0 || q >= s.n {
		return fmt.Errorf("%w: %d (register has %d qubits)", ErrQubitOutOfRange, q, s.n)
	}
	return nil
}

// ApplyH applies the Hadamard gate to qubit q:
// |0> -> (|0>+|1>)/sqrt2, |1> -> (|0>-|1>)/sqrt2.
func (s *State) ApplyH(q int) error {
	if err := s.checkQubit(q); err != nil {
		return err
	}
	f := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = f * (a + b)
			s.amps[j] = f * (a - b)
		}
	}
	return nil
}

// ApplyX applies the Pauli-X (bit flip) gate to qubit q.
func (s *State) ApplyX(q int) error {
	if err := s.checkQubit(q); err != nil {
		return err
	}
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
	return nil
}

// ApplyZ applies the Pauli-Z gate: a phase flip on the |1> component
// of qubit q.
func (s *State) ApplyZ(q int) error {
	if err := s.checkQubit(q); err != nil {
		return err
	}
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
	return nil
}

// ApplyCNOT flips target iff control is |1>.
func (s *State) ApplyCNOT(control, target int) error {
	if err := s.checkQubit(control); err != nil {
		return err
	}
	if err := s.checkQubit(target); err != nil {
		return err
	}
	if control == target {
		return fmt.Errorf("%w: qubit %d", ErrSameQubit, control)
	}
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
	return nil
}

// Probability returns the marginal probability of measuring qubit q
// as 1.
func (s *State) Probability(q int) (float64, error) {
	if err := s.checkQubit(q); err != nil {
		return 0, err
	}
	bit := 1 << q
	p1 := 0.0
	for i, a := range s.amps {
		if i&bit != 0 {
			p1 += real(a)*real(a) + imag(a)*imag(a)
		}
	}
	return p1, nil
}

// Measure performs a projective measurement of qubit q in the
// computational basis, drawing the outcome from rng, and collapses the
// state: amplitudes inconsistent with the outcome are zeroed and the
// survivors renormalized.
func (s *State) Measure(q int, rng *rand.Rand) (int, error) {
	p1, err := s.Probability(q)
	if err != nil {
		return 0, err
	}

	outcome := 0
	if rng.Float64() < p1 {
		outcome = 1
	}

	pOutcome := p1
	if outcome == 0 {
		pOutcome = 1 - p1
	}
	if pOutcome <= 0 {
		return 0, fmt.Errorf("%w: qubit %d outcome %d", ErrDegenerateState, q, outcome)
	}

	bit := 1 << q
	inv := complex(1/math.Sqrt(pOutcome), 0)
	for i := range s.amps {
		set := i&bit != 0
		if set == (outcome == 1) {
			s.amps[i] *= inv
		} else {
			s.amps[i] = 0
		}
	}
	return outcome, nil
}

// Phase returns the phase angle of the amplitude of basis state i.
// Handy for inspecting relative phases in tests.
func (s *State) Phase(i int) float64 {
	return cmplx.Phase(s.Amplitude(i))
}
