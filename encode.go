package qisbn

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

const (
	isbn10Length = 10
	ean13Length  = 13

	quantumRegisterName   = "isbn"
	classicalRegisterName = "validation"
)

// ErrInvalidFormat is the cause of every encoding failure.
var ErrInvalidFormat = errors.New("invalid ISBN format")

/*
Encode builds the validation circuit for a normalized identifier.

The qubit is prepared in |−⟩ with X then H. Every character contributes a
phase rotation, so the total phase is a multiple of 2π exactly when the
weighted checksum is zero modulo 10 (EAN-13) or 11 (ISBN-10). The closing
H then maps the qubit onto |1⟩. Identifiers of any other length get a
single rotation by π, which lands the qubit on |0⟩.

A character that is not a digit in the relevant base yields an error
whose cause is ErrInvalidFormat.
*/
func Encode(normalized string) (*Circuit, error) {
	qc := NewCircuit(quantumRegisterName, classicalRegisterName)
	qc.X().H()

	chars := []rune(normalized)

	switch len(chars) {
	case ean13Length:
		for i, c := range chars {
			d, err := digit(c, 10, i)
			if err != nil {
				return nil, err
			}
			weight := 1.0
			if i&1 == 1 {
				weight = 3
			}
			qc.P(float64(d) * math.Pi / 5 * weight)
		}
	case isbn10Length:
		for i, c := range chars {
			d, err := digit(c, 16, i)
			if err != nil {
				return nil, err
			}
			qc.P(float64(d) * 2 * math.Pi / 11 * float64(isbn10Length-i))
		}
	default:
		qc.P(math.Pi)
	}

	return qc.H().Measure(), nil
}

func digit(c rune, base, position int) (int, error) {
	d, err := strconv.ParseUint(string(c), base, 8)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidFormat, "character %q at position %d is not a base %d digit", c, position, base)
	}
	return int(d), nil
}
