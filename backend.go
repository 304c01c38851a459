package qisbn

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
)

var (
	ErrNoShots       = errors.New("shot count must be positive")
	ErrNoMeasurement = errors.New("circuit has no measurement")
)

/*
Backend executes a measured circuit a number of times and reports how
often each outcome was observed.
*/
type Backend interface {
	Run(circuit *Circuit, shots int) (Counts, error)
}

// Sampler simulates the circuit noiselessly and samples each shot.
// It is not safe for concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler seeds a sampler. A zero seed is replaced with the clock.
func NewSampler(seed uint64) *Sampler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Sampler{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *Sampler) Run(circuit *Circuit, shots int) (Counts, error) {
	state, err := prepare(circuit, shots)
	if err != nil {
		return nil, err
	}

	counts := state.Sample(s.rng, shots)
	errnie.Debug("Sampler.Run - shots %d, counts %v", shots, counts)
	return counts, nil
}

/*
Exact skips sampling: shots are split in proportion to the closed-form
outcome probabilities. A certain outcome receives every shot, which is all
the validity decision needs.
*/
type Exact struct{}

func (Exact) Run(circuit *Circuit, shots int) (Counts, error) {
	state, err := prepare(circuit, shots)
	if err != nil {
		return nil, err
	}

	counts := state.Apportion(shots)
	errnie.Debug("Exact.Run - shots %d, counts %v", shots, counts)
	return counts, nil
}

func prepare(circuit *Circuit, shots int) (*QuantumState, error) {
	if shots <= 0 {
		return nil, errors.Wrapf(ErrNoShots, "got %d", shots)
	}
	if circuit == nil || !circuit.Measured() {
		return nil, ErrNoMeasurement
	}

	state := NewQuantumState(circuit.Evolve())
	errnie.Debug("prepare - depth %d, state %v", circuit.Depth(), state.States)
	return state, nil
}
