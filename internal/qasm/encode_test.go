package qasm

import (
	"strings"
	"testing"

	"github.com/san-kum/qsim/internal/circuit"
)

func TestEncode_Superposition(t *testing.T) {
	c, err := circuit.NewBuilder(1, 1).
		Gate(circuit.Hadamard, 0).
		Measure(0, 0).
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	got, err := Encode(c)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	want := `OPENQASM 3.0;
include "stdgates.inc";

qubit[1] q;
bit[1] c;

h q[0];
c[0] = measure q[0];
`
	if got != want {
		t.Errorf("encoding mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncode_ConditionalAndBarrier(t *testing.T) {
	c, err := circuit.NewBuilder(3, 2).
		Gate(circuit.CNOT, 1, 2).
		Barrier().
		Measure(1, 1).
		Conditional(circuit.PauliX, 1, 1, 2).
		Conditional(circuit.PauliZ, 0, 1, 2).
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	got, err := Encode(c)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	for _, line := range []string{
		"qubit[3] q;",
		"bit[2] c;",
		"cx q[1], q[2];",
		"barrier q;",
		"c[1] = measure q[1];",
		"if (c[1] == 1) { x q[2]; }",
		"if (c[0] == 1) { z q[2]; }",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing line %q in:\n%s", line, got)
		}
	}
}

func TestEncode_NoClassicalRegister(t *testing.T) {
	c, err := circuit.NewBuilder(2, 0).
		Gate(circuit.Hadamard, 0).
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	got, err := Encode(c)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if strings.Contains(got, "bit[") {
		t.Errorf("unexpected classical register declaration:\n%s", got)
	}
}
