package qisbn

import (
	"fmt"
	"io"

	"github.com/theapemachine/errnie"
)

const formatHint = "An ISBN must be 10 digits from [0-9Xx] OR 13 digits from [0-9], (optionally separated with dashes or spaces)."

// Result is the outcome of validating one candidate identifier.
type Result struct {
	Input      string
	Normalized string
	Shots      int
	Counts     Counts
	Circuit    *Circuit

	// Valid is set only when every shot measured 1.
	Valid bool
	// SuspectFormat is set when every shot measured 0 or the input could
	// not be encoded at all.
	SuspectFormat bool
	Err           error
}

// Option configures a Validator.
type Option func(*Validator)

// WithBackend replaces the default sampling simulator.
func WithBackend(backend Backend) Option {
	return func(v *Validator) {
		v.backend = backend
	}
}

type Validator struct {
	config  *Config
	backend Backend
}

// NewValidator returns a validator. A nil config uses NewConfig defaults.
func NewValidator(config *Config, opts ...Option) *Validator {
	if config == nil {
		config = NewConfig()
	}

	v := &Validator{
		config:  config,
		backend: NewSampler(config.seed()),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

/*
Validate normalizes isbn, encodes it into a circuit, runs the circuit on
the configured backend and applies the decision rule. Errors never escape
as panics; they are recorded on the result, which is then invalid.
*/
func (v *Validator) Validate(isbn string) *Result {
	shots := v.config.shots()
	result := &Result{
		Input:      isbn,
		Normalized: Normalize(isbn),
		Shots:      shots,
		Counts:     make(Counts),
	}

	circuit, err := Encode(result.Normalized)
	if err != nil {
		errnie.Info("Validate - %q not encodable: %v", isbn, err)
		result.Err = err
		result.SuspectFormat = true
		return result
	}
	result.Circuit = circuit

	counts, err := v.backend.Run(circuit, shots)
	if err != nil {
		errnie.Info("Validate - backend failed for %q: %v", isbn, err)
		result.Err = err
		return result
	}
	result.Counts = counts

	result.Valid = counts.All("1", shots)
	result.SuspectFormat = counts.All("0", shots)

	errnie.Debug("Validate - %q valid %v, %v", isbn, result.Valid, counts.Export())
	return result
}

// Validate checks isbn with a default validator.
func Validate(isbn string) bool {
	return NewValidator(nil).Validate(isbn).Valid
}

// Report writes the shot count, histogram and verdict for r.
func (r *Result) Report(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("Shots: %d", r.Shots),
		fmt.Sprintf("Counts: %s", r.Counts),
	}

	if r.Valid {
		lines = append(lines, fmt.Sprintf("ISBN %s validates!", r.Input))
	} else {
		lines = append(lines, fmt.Sprintf("%s does not validate!", r.Input))
	}

	if r.SuspectFormat {
		lines = append(lines, fmt.Sprintf("Possibly not a valid ISBN format: %s. %s", r.Input, formatHint))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
