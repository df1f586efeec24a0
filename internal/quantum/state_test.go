package quantum_test

import (
	"errors"
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qsim/internal/quantum"
)

const tol = 1e-12

var _ = Describe("State", func() {
	Describe("New", func() {
		It("starts in the all-zero basis state", func() {
			s, err := quantum.New(3)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.NumQubits()).To(Equal(3))
			Expect(s.Amplitude(0)).To(Equal(complex(1, 0)))
			for i := 1; i < 8; i++ {
				Expect(s.Amplitude(i)).To(Equal(complex(0, 0)))
			}
			Expect(s.Norm()).To(BeNumerically("~", 1.0, tol))
		})

		It("rejects invalid register sizes", func() {
			_, err := quantum.New(0)
			Expect(errors.Is(err, quantum.ErrQubitCount)).To(BeTrue())
			_, err = quantum.New(quantum.MaxQubits + 1)
			Expect(errors.Is(err, quantum.ErrQubitCount)).To(BeTrue())
		})
	})

	Describe("Hadamard", func() {
		It("creates an equal superposition from |0>", func() {
			s, _ := quantum.New(1)
			Expect(s.ApplyH(0)).To(Succeed())
			want := 1 / math.Sqrt2
			Expect(real(s.Amplitude(0))).To(BeNumerically("~", want, tol))
			Expect(real(s.Amplitude(1))).To(BeNumerically("~", want, tol))
			Expect(s.Norm()).To(BeNumerically("~", 1.0, tol))
		})

		It("is its own inverse", func() {
			s, _ := quantum.New(2)
			Expect(s.ApplyH(1)).To(Succeed())
			Expect(s.ApplyH(1)).To(Succeed())
			Expect(real(s.Amplitude(0))).To(BeNumerically("~", 1.0, tol))
		})

		It("puts a relative phase on |1>", func() {
			s, _ := quantum.New(1)
			Expect(s.ApplyX(0)).To(Succeed())
			Expect(s.ApplyH(0)).To(Succeed())
			Expect(real(s.Amplitude(0))).To(BeNumerically("~", 1/math.Sqrt2, tol))
			Expect(real(s.Amplitude(1))).To(BeNumerically("~", -1/math.Sqrt2, tol))
		})

		It("rejects out-of-range targets", func() {
			s, _ := quantum.New(2)
			Expect(errors.Is(s.ApplyH(2), quantum.ErrQubitOutOfRange)).To(BeTrue())
			Expect(errors.Is(s.ApplyH(-1), quantum.ErrQubitOutOfRange)).To(BeTrue())
		})
	})

	Describe("Pauli gates", func() {
		It("X flips the addressed qubit", func() {
			s, _ := quantum.New(2)
			Expect(s.ApplyX(1)).To(Succeed())
			Expect(s.Amplitude(2)).To(Equal(complex(1, 0)))
			Expect(s.Amplitude(0)).To(Equal(complex(0, 0)))
		})

		It("Z leaves |0> alone and negates |1>", func() {
			s, _ := quantum.New(1)
			Expect(s.ApplyZ(0)).To(Succeed())
			Expect(s.Amplitude(0)).To(Equal(complex(1, 0)))

			Expect(s.ApplyX(0)).To(Succeed())
			Expect(s.ApplyZ(0)).To(Succeed())
			Expect(real(s.Amplitude(1))).To(BeNumerically("~", -1.0, tol))
		})
	})

	Describe("CNOT", func() {
		It("does nothing when control is |0>", func() {
			s, _ := quantum.New(2)
			Expect(s.ApplyCNOT(0, 1)).To(Succeed())
			Expect(s.Amplitude(0)).To(Equal(complex(1, 0)))
		})

		It("flips target when control is |1>", func() {
			s, _ := quantum.New(2)
			Expect(s.ApplyX(0)).To(Succeed())
			Expect(s.ApplyCNOT(0, 1)).To(Succeed())
			// |11> = index 3
			Expect(s.Amplitude(3)).To(Equal(complex(1, 0)))
		})

		It("entangles a superposed control", func() {
			s, _ := quantum.New(2)
			Expect(s.ApplyH(0)).To(Succeed())
			Expect(s.ApplyCNOT(0, 1)).To(Succeed())
			want := 1 / math.Sqrt2
			Expect(real(s.Amplitude(0))).To(BeNumerically("~", want, tol))
			Expect(real(s.Amplitude(3))).To(BeNumerically("~", want, tol))
			Expect(s.Amplitude(1)).To(Equal(complex(0, 0)))
			Expect(s.Amplitude(2)).To(Equal(complex(0, 0)))
		})

		It("rejects identical control and target", func() {
			s, _ := quantum.New(2)
			Expect(errors.Is(s.ApplyCNOT(1, 1), quantum.ErrSameQubit)).To(BeTrue())
		})
	})

	Describe("Measure", func() {
		It("is deterministic on basis states", func() {
			rng := rand.New(rand.NewSource(1))
			s, _ := quantum.New(2)
			Expect(s.ApplyX(1)).To(Succeed())

			bit, err := s.Measure(0, rng)
			Expect(err).NotTo(HaveOccurred())
			Expect(bit).To(Equal(0))

			bit, err = s.Measure(1, rng)
			Expect(err).NotTo(HaveOccurred())
			Expect(bit).To(Equal(1))
		})

		It("collapses and renormalizes a superposition", func() {
			rng := rand.New(rand.NewSource(42))
			s, _ := quantum.New(1)
			Expect(s.ApplyH(0)).To(Succeed())

			bit, err := s.Measure(0, rng)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Norm()).To(BeNumerically("~", 1.0, tol))

			p1, err := s.Probability(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(p1).To(BeNumerically("~", float64(bit), tol))

			// Repeated measurement must agree with the collapse.
			again, err := s.Measure(0, rng)
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(bit))
		})

		It("correlates both halves of a Bell pair", func() {
			rng := rand.New(rand.NewSource(7))
			for trial := 0; trial < 50; trial++ {
				s, _ := quantum.New(2)
				Expect(s.ApplyH(0)).To(Succeed())
				Expect(s.ApplyCNOT(0, 1)).To(Succeed())

				a, err := s.Measure(0, rng)
				Expect(err).NotTo(HaveOccurred())
				b, err := s.Measure(1, rng)
				Expect(err).NotTo(HaveOccurred())
				Expect(a).To(Equal(b))
			}
		})

		It("rejects out-of-range qubits", func() {
			rng := rand.New(rand.NewSource(1))
			s, _ := quantum.New(1)
			_, err := s.Measure(3, rng)
			Expect(errors.Is(err, quantum.ErrQubitOutOfRange)).To(BeTrue())
		})
	})

	Describe("Reset", func() {
		It("returns the register to |0...0>", func() {
			s, _ := quantum.New(2)
			Expect(s.ApplyH(0)).To(Succeed())
			Expect(s.ApplyX(1)).To(Succeed())
			s.Reset()
			Expect(s.Amplitude(0)).To(Equal(complex(1, 0)))
			Expect(s.Norm()).To(BeNumerically("~", 1.0, tol))
		})
	})
})
