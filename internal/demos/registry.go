// Package demos holds the named demonstration circuits the CLI can
// run: a superposition measurement, a conditional-gate check, a Bell
// pair, and the three-qubit teleportation protocol with and without
// its verification stage.
package demos

import (
	"fmt"
	"sort"

	"github.com/san-kum/qsim/internal/circuit"
)

// Demo is a named circuit factory. Build constructs a fresh circuit
// each call; circuits are immutable so callers may also cache one.
type Demo struct {
	Name        string
	Description string
	Build       func() (*circuit.Circuit, error)
}

// Registry maps demo names to factories.
type Registry struct {
	demos map[string]Demo
}

// NewRegistry returns a registry populated with the built-in demos.
func NewRegistry() *Registry {
	r := &Registry{demos: make(map[string]Demo)}

	r.register(Demo{
		Name:        "superposition",
		Description: "hadamard then measure: a fair quantum coin",
		Build:       Superposition,
	})
	r.register(Demo{
		Name:        "conditional",
		Description: "x gate conditioned on a measured 0: never fires",
		Build:       Conditional,
	})
	r.register(Demo{
		Name:        "bell",
		Description: "entangled pair: outcomes 00 and 11 only",
		Build:       Bell,
	})
	r.register(Demo{
		Name:        "teleport",
		Description: "teleport |+> from qubit 0 to qubit 2",
		Build:       Teleport,
	})
	r.register(Demo{
		Name:        "teleport-verify",
		Description: "teleport plus verification measure on the target",
		Build:       TeleportVerify,
	})

	return r
}

func (r *Registry) register(d Demo) {
	r.demos[d.Name] = d
}

// Get builds the named demo circuit.
func (r *Registry) Get(name string) (*circuit.Circuit, error) {
	d, ok := r.demos[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo: %s (available: %v)", name, r.Names())
	}
	return d.Build()
}

// Names lists the registered demos in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.demos))
	for name := range r.demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the registered demos sorted by name.
func (r *Registry) List() []Demo {
	out := make([]Demo, 0, len(r.demos))
	for _, name := range r.Names() {
		out = append(out, r.demos[name])
	}
	return out
}
