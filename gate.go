package qisbn

import (
	"fmt"
	"math"
	"strconv"
)

// GateKind identifies an operation in a circuit.
type GateKind int

const (
	GateX GateKind = iota
	GateH
	GatePhase
	GateMeasure
)

// maxAngleDenominator bounds the search for a π fraction when labelling.
const maxAngleDenominator = 64

type Gate struct {
	Kind  GateKind
	Theta float64 // only used by GatePhase
}

// apply performs the unitary part of the gate. Measurement is a no-op here.
func (g Gate) apply(q *Qubit) {
	switch g.Kind {
	case GateX:
		q.ApplyX()
	case GateH:
		q.ApplyHadamard()
	case GatePhase:
		q.ApplyPhase(g.Theta)
	}
}

// Label is the text drawn inside the gate's box.
func (g Gate) Label() string {
	switch g.Kind {
	case GateX:
		return "X"
	case GateH:
		return "H"
	case GatePhase:
		return fmt.Sprintf("P(%s)", formatAngle(g.Theta))
	case GateMeasure:
		return "M"
	default:
		return "?"
	}
}

/*
formatAngle renders theta as a multiple of π when it is a fraction with a
small denominator (π/5, 3π/5, 20π/11), and as a decimal otherwise.
*/
func formatAngle(theta float64) string {
	if theta == 0 {
		return "0"
	}

	ratio := theta / math.Pi
	for den := 1; den <= maxAngleDenominator; den++ {
		num := ratio * float64(den)
		rounded := math.Round(num)
		if math.Abs(num-rounded) < 1e-9 {
			return piFraction(int(rounded), den)
		}
	}

	return strconv.FormatFloat(theta, 'g', 4, 64)
}

func piFraction(num, den int) string {
	var s string
	switch num {
	case 1:
		s = "π"
	case -1:
		s = "-π"
	default:
		s = strconv.Itoa(num) + "π"
	}

	if den == 1 {
		return s
	}
	return s + "/" + strconv.Itoa(den)
}
