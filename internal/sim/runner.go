package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/san-kum/qsim/internal/circuit"
	"github.com/san-kum/qsim/internal/quantum"
)

// ErrShotCount indicates a negative shot count.
var ErrShotCount = errors.New("sim: shot count must be non-negative")

// Runner replays a circuit for a requested number of shots.
type Runner struct {
	workers int
}

// NewRunner creates a Runner. workers <= 0 means one worker per CPU.
func NewRunner(workers int) *Runner {
	return &Runner{workers: workers}
}

// Run executes shots independent trials of c and returns the
// histogram of classical-register outcomes. The run is atomic: any
// engine or operation failure aborts it and no partial histogram is
// returned. Shot i draws its randomness from seed+i, so a fixed seed
// reproduces the identical histogram regardless of worker count.
func (r *Runner) Run(ctx context.Context, c *circuit.Circuit, shots int, seed int64) (Histogram, error) {
	if shots < 0 {
		return nil, fmt.Errorf("%w: %d", ErrShotCount, shots)
	}
	if shots == 0 {
		return Histogram{}, nil
	}

	workers := r.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > shots {
		workers = shots
	}

	parts := make([]Histogram, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			part := Histogram{}
			for shot := idx; shot < shots; shot += workers {
				select {
				case <-ctx.Done():
					errs[idx] = ctx.Err()
					return
				default:
				}

				rng := rand.New(rand.NewSource(seed + int64(shot)))
				key, err := replay(c, rng)
				if err != nil {
					errs[idx] = err
					return
				}
				part[key]++
			}
			parts[idx] = part
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	merged := Histogram{}
	for _, part := range parts {
		merged.Merge(part)
	}
	return merged, nil
}

// replay runs one shot: fresh state vector, zeroed classical
// register, operations in order. Conditionals read the register as it
// stands when they are reached, not as it ends up.
func replay(c *circuit.Circuit, rng *rand.Rand) (string, error) {
	state, err := quantum.New(c.NumQubits())
	if err != nil {
		return "", err
	}
	creg := make([]int, c.NumClbits())

	for _, op := range c.Operations() {
		switch op.Type {
		case circuit.OpBarrier:
			// documentation marker only

		case circuit.OpGate:
			if err := applyGate(state, op.Kind, op.Targets); err != nil {
				return "", err
			}

		case circuit.OpConditional:
			if creg[op.Clbit] == op.Expected {
				if err := applyGate(state, op.Kind, op.Targets); err != nil {
					return "", err
				}
			}

		case circuit.OpMeasure:
			bit, err := state.Measure(op.Targets[0], rng)
			if err != nil {
				return "", err
			}
			creg[op.Clbit] = bit

		default:
			return "", fmt.Errorf("%w: operation type %d", circuit.ErrInvalidOperation, int(op.Type))
		}
	}

	return Bitstring(creg), nil
}

func applyGate(state *quantum.State, kind circuit.GateKind, targets []int) error {
	switch kind {
	case circuit.Hadamard:
		return state.ApplyH(targets[0])
	case circuit.PauliX:
		return state.ApplyX(targets[0])
	case circuit.PauliZ:
		return state.ApplyZ(targets[0])
	case circuit.CNOT:
		return state.ApplyCNOT(targets[0], targets[1])
	default:
		return fmt.Errorf("%w: gate kind %d", circuit.ErrInvalidOperation, int(kind))
	}
}
