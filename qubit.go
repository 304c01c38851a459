package qisbn

import (
	"math"
	"math/cmplx"
)

// snapTolerance absorbs floating point drift from long chains of phase gates.
const snapTolerance = 1e-12

type Qubit struct {
	alpha complex128 // |0⟩ amplitude
	beta  complex128 // |1⟩ amplitude
}

// NewQubit returns a qubit prepared in |0⟩.
func NewQubit() *Qubit {
	return &Qubit{
		alpha: 1,
		beta:  0,
	}
}

// ApplyX flips |0⟩ and |1⟩.
func (q *Qubit) ApplyX() {
	q.alpha, q.beta = q.beta, q.alpha
}

func (q *Qubit) ApplyHadamard() {
	// H = 1/√2 * [1  1]
	//           [1 -1]
	newAlpha := (q.alpha + q.beta) / complex(math.Sqrt(2), 0)
	newBeta := (q.alpha - q.beta) / complex(math.Sqrt(2), 0)
	q.alpha = newAlpha
	q.beta = newBeta
}

// ApplyPhase rotates the |1⟩ amplitude by theta radians.
func (q *Qubit) ApplyPhase(theta float64) {
	q.beta *= cmplx.Exp(complex(0, theta))
}

/*
Probabilities returns the Born-rule probabilities of measuring 0 and 1.
Values within snapTolerance of 0 or 1 are snapped, so a noiseless circuit
whose outcome is certain in exact arithmetic stays certain here.
*/
func (q *Qubit) Probabilities() (p0, p1 float64) {
	p0 = real(q.alpha * cmplx.Conj(q.alpha))
	p1 = real(q.beta * cmplx.Conj(q.beta))

	if total := p0 + p1; total > 0 {
		p0 /= total
		p1 /= total
	}

	switch {
	case p0 < snapTolerance:
		p0, p1 = 0, 1
	case p1 < snapTolerance:
		p0, p1 = 1, 0
	}

	return p0, p1
}

// Vector returns the amplitudes as a state vector indexed by outcome.
func (q *Qubit) Vector() []complex128 {
	return []complex128{q.alpha, q.beta}
}
