package circuit

// GateKind identifies a supported unitary gate.
type GateKind int

const (
	Hadamard GateKind = iota
	PauliX
	PauliZ
	CNOT
)

func (k GateKind) String() string {
	switch k {
	case Hadamard:
		return "H"
	case PauliX:
		return "X"
	case PauliZ:
		return "Z"
	case CNOT:
		return "CNOT"
	default:
		return "?"
	}
}

// Arity returns the number of qubit targets the gate takes, or 0 for
// an unknown kind.
func (k GateKind) Arity() int {
	switch k {
	case Hadamard, PauliX, PauliZ:
		return 1
	case CNOT:
		return 2
	default:
		return 0
	}
}

// OpType tags the variant of an Operation.
type OpType int

const (
	// OpGate is an unconditional unitary gate on Targets.
	OpGate OpType = iota
	// OpMeasure measures Targets[0] into classical bit Clbit.
	OpMeasure
	// OpConditional applies Kind to Targets iff classical bit Clbit
	// equals Expected at replay time.
	OpConditional
	// OpBarrier is a documentation marker with no effect on state.
	OpBarrier
)

func (t OpType) String() string {
	switch t {
	case OpGate:
		return "gate"
	case OpMeasure:
		return "measure"
	case OpConditional:
		return "conditional"
	case OpBarrier:
		return "barrier"
	default:
		return "?"
	}
}

// Operation is one step of a circuit. The meaning of the fields
// depends on Type; unused fields are zero. For CNOT, Targets is
// [control, target].
type Operation struct {
	Type     OpType
	Kind     GateKind
	Targets  []int
	Clbit    int
	Expected int
}
