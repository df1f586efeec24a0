package circuit

import (
	"fmt"
	"strings"
)

// Circuit is an ordered, immutable operation sequence plus its
// register sizes. Built once, replayed once per shot.
type Circuit struct {
	qubits int
	clbits int
	ops    []Operation
}

// NumQubits returns the declared qubit register size.
func (c *Circuit) NumQubits() int { return c.qubits }

// NumClbits returns the declared classical register size.
func (c *Circuit) NumClbits() int { return c.clbits }

// Len returns the number of operations.
func (c *Circuit) Len() int { return len(c.ops) }

// Operations returns the operation sequence. Callers must treat the
// slice as read-only.
func (c *Circuit) Operations() []Operation { return c.ops }

// Diagram renders the circuit as ASCII qubit lanes, one row per
// qubit, operations left to right. Controls are drawn as '*',
// measurements as M:cN, conditionals with their ?cN=V condition.
func (c *Circuit) Diagram() string {
	cols := make([][]string, len(c.ops))
	for i, op := range c.ops {
		lane := make([]string, c.qubits)
		switch op.Type {
		case OpBarrier:
			for q := range lane {
				lane[q] = "|"
			}
		case OpGate:
			if op.Kind == CNOT {
				lane[op.Targets[0]] = "*"
				lane[op.Targets[1]] = "X"
			} else {
				lane[op.Targets[0]] = op.Kind.String()
			}
		case OpMeasure:
			lane[op.Targets[0]] = fmt.Sprintf("M:c%d", op.Clbit)
		case OpConditional:
			cond := fmt.Sprintf("?c%d=%d", op.Clbit, op.Expected)
			if op.Kind == CNOT {
				lane[op.Targets[0]] = "*" + cond
				lane[op.Targets[1]] = "X"
			} else {
				lane[op.Targets[0]] = op.Kind.String() + cond
			}
		}
		cols[i] = lane
	}

	widths := make([]int, len(cols))
	for i, lane := range cols {
		w := 1
		for _, cell := range lane {
			if len(cell) > w {
				w = len(cell)
			}
		}
		widths[i] = w
	}

	var sb strings.Builder
	for q := 0; q < c.qubits; q++ {
		sb.WriteString(fmt.Sprintf("q%d: ", q))
		for i, lane := range cols {
			cell := lane[q]
			sb.WriteString("─")
			sb.WriteString(cell)
			for pad := len(cell); pad < widths[i]+1; pad++ {
				sb.WriteString("─")
			}
		}
		sb.WriteString("\n")
	}
	if c.clbits > 0 {
		sb.WriteString(fmt.Sprintf("c:  %d bits\n", c.clbits))
	}
	return sb.String()
}
