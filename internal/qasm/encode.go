// Package qasm serializes circuits to OpenQASM 3.0 source, suitable
// for feeding to external toolchains or just reading.
package qasm

import (
	"fmt"
	"strings"

	"github.com/san-kum/qsim/internal/circuit"
)

var gateNames = map[circuit.GateKind]string{
	circuit.Hadamard: "h",
	circuit.PauliX:   "x",
	circuit.PauliZ:   "z",
	circuit.CNOT:     "cx",
}

// Encode renders c as an OpenQASM 3.0 program. Conditional gates use
// single-bit if statements, which is how the protocol's classical
// corrections read most naturally.
func Encode(c *circuit.Circuit) (string, error) {
	var sb strings.Builder

	sb.WriteString("OPENQASM 3.0;\n")
	sb.WriteString("include \"stdgates.inc\";\n\n")
	fmt.Fprintf(&sb, "qubit[%d] q;\n", c.NumQubits())
	if c.NumClbits() > 0 {
		fmt.Fprintf(&sb, "bit[%d] c;\n", c.NumClbits())
	}
	sb.WriteString("\n")

	for _, op := range c.Operations() {
		switch op.Type {
		case circuit.OpBarrier:
			sb.WriteString("barrier q;\n")

		case circuit.OpGate:
			line, err := gateLine(op.Kind, op.Targets)
			if err != nil {
				return "", err
			}
			sb.WriteString(line + "\n")

		case circuit.OpMeasure:
			fmt.Fprintf(&sb, "c[%d] = measure q[%d];\n", op.Clbit, op.Targets[0])

		case circuit.OpConditional:
			line, err := gateLine(op.Kind, op.Targets)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "if (c[%d] == %d) { %s }\n", op.Clbit, op.Expected, line)

		default:
			return "", fmt.Errorf("%w: operation type %d", circuit.ErrInvalidOperation, int(op.Type))
		}
	}

	return sb.String(), nil
}

func gateLine(kind circuit.GateKind, targets []int) (string, error) {
	name, ok := gateNames[kind]
	if !ok {
		return "", fmt.Errorf("%w: gate kind %d", circuit.ErrInvalidOperation, int(kind))
	}
	args := make([]string, len(targets))
	for i, q := range targets {
		args[i] = fmt.Sprintf("q[%d]", q)
	}
	return fmt.Sprintf("%s %s;", name, strings.Join(args, ", ")), nil
}
