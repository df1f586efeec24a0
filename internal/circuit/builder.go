package circuit

import "fmt"

// Builder accumulates a validated operation sequence. Methods chain;
// the first validation failure sticks and is reported by Build.
type Builder struct {
	qubits int
	clbits int
	ops    []Operation
	err    error
}

// NewBuilder declares the register sizes for the circuit under
// construction. clbits may be zero for circuits with no measurements.
func NewBuilder(qubits, clbits int) *Builder {
	b := &Builder{qubits: qubits, clbits: clbits}
	if qubits < 1 {
		b.err = fmt.Errorf("%w: %d qubits", ErrRegisterSize, qubits)
	} else if clbits < 0 {
		b.err = fmt.Errorf("%w: %d classical bits", ErrRegisterSize, clbits)
	}
	return b
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *Builder) checkQubit(q int) error {
	if q < 0 || q >= b.qubits {
		return fmt.Errorf("%w: qubit %d (register has %d)", ErrIndexOutOfRange, q, b.qubits)
	}
	return nil
}

func (b *Builder) checkClbit(c int) error {
	if c < 0 || c >= b.clbits {
		return fmt.Errorf("%w: classical bit %d (register has %d)", ErrIndexOutOfRange, c, b.clbits)
	}
	return nil
}

func (b *Builder) checkGate(kind GateKind, targets []int) error {
	arity := kind.Arity()
	if arity == 0 {
		return fmt.Errorf("%w: unknown gate kind %d", ErrInvalidOperation, int(kind))
	}
	if len(targets) != arity {
		return fmt.Errorf("%w: %s takes %d target(s), got %d", ErrInvalidOperation, kind, arity, len(targets))
	}
	for _, q := range targets {
		if err := b.checkQubit(q); err != nil {
			return err
		}
	}
	if kind == CNOT && targets[0] == targets[1] {
		return fmt.Errorf("%w: CNOT control equals target (%d)", ErrInvalidOperation, targets[0])
	}
	return nil
}

// Gate appends an unconditional gate on the given targets. For CNOT
// the targets are (control, target).
func (b *Builder) Gate(kind GateKind, targets ...int) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.checkGate(kind, targets); err != nil {
		return b.fail(err)
	}
	b.ops = append(b.ops, Operation{
		Type:    OpGate,
		Kind:    kind,
		Targets: append([]int(nil), targets...),
	})
	return b
}

// Measure appends a measurement of qubit into classical bit clbit.
func (b *Builder) Measure(qubit, clbit int) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.checkQubit(qubit); err != nil {
		return b.fail(err)
	}
	if err := b.checkClbit(clbit); err != nil {
		return b.fail(err)
	}
	b.ops = append(b.ops, Operation{
		Type:    OpMeasure,
		Targets: []int{qubit},
		Clbit:   clbit,
	})
	return b
}

// Conditional appends a gate that executes at replay time only if
// classical bit clbit equals expected, as written by earlier Measure
// operations in the same shot.
func (b *Builder) Conditional(kind GateKind, clbit, expected int, targets ...int) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.checkGate(kind, targets); err != nil {
		return b.fail(err)
	}
	if err := b.checkClbit(clbit); err != nil {
		return b.fail(err)
	}
	if expected != 0 && expected != 1 {
		return b.fail(fmt.Errorf("%w: expected value %d (want 0 or 1)", ErrInvalidOperation, expected))
	}
	b.ops = append(b.ops, Operation{
		Type:     OpConditional,
		Kind:     kind,
		Targets:  append([]int(nil), targets...),
		Clbit:    clbit,
		Expected: expected,
	})
	return b
}

// Barrier appends a no-op marker. The executor skips it; it only
// shows up in diagrams and QASM output.
func (b *Builder) Barrier() *Builder {
	if b.err != nil {
		return b
	}
	b.ops = append(b.ops, Operation{Type: OpBarrier})
	return b
}

// Err reports the first validation failure, if any.
func (b *Builder) Err() error { return b.err }

// Build finalizes the circuit. The returned Circuit owns a copy of
// the operation sequence and is immutable from here on.
func (b *Builder) Build() (*Circuit, error) {
	if b.err != nil {
		return nil, b.err
	}
	ops := make([]Operation, len(b.ops))
	copy(ops, b.ops)
	return &Circuit{qubits: b.qubits, clbits: b.clbits, ops: ops}, nil
}
