package qisbn

import (
	"math"
	"math/rand/v2"
	"sort"
)

type QuantumState struct {
	States []State
}

// NewQuantumState captures the measurable outcomes of q.
func NewQuantumState(q *Qubit) *QuantumState {
	p0, p1 := q.Probabilities()
	vector := q.Vector()

	return &QuantumState{
		States: []State{
			{Outcome: "0", Probability: p0, Amplitude: vector[0]},
			{Outcome: "1", Probability: p1, Amplitude: vector[1]},
		},
	}
}

// Probability returns the probability of observing outcome.
func (qs *QuantumState) Probability(outcome string) float64 {
	for _, state := range qs.States {
		if state.Outcome == outcome {
			return state.Probability
		}
	}
	return 0
}

/*
Measure draws a single outcome using r, a uniform value in [0, 1).
The comparison is strict so that an outcome with zero probability can
never be selected, even when r is exactly 0.
*/
func (qs *QuantumState) Measure(r float64) string {
	if len(qs.States) == 0 {
		return ""
	}

	cumulativeProb := 0.0
	for _, state := range qs.States {
		cumulativeProb += state.Probability
		if r < cumulativeProb {
			return state.Outcome
		}
	}

	// Rounding left the cumulative sum just short of 1.
	for i := len(qs.States) - 1; i >= 0; i-- {
		if qs.States[i].Probability > 0 {
			return qs.States[i].Outcome
		}
	}
	return qs.States[len(qs.States)-1].Outcome
}

// Sample measures shots independent copies of the state.
func (qs *QuantumState) Sample(rng *rand.Rand, shots int) Counts {
	counts := make(Counts)
	for i := 0; i < shots; i++ {
		counts[qs.Measure(rng.Float64())]++
	}
	return counts
}

/*
Apportion distributes shots across outcomes in exact proportion to their
probabilities, handing leftover shots to the largest remainders.
*/
func (qs *QuantumState) Apportion(shots int) Counts {
	type share struct {
		outcome   string
		remainder float64
	}

	counts := make(Counts)
	shares := make([]share, 0, len(qs.States))
	assigned := 0

	for _, state := range qs.States {
		exact := state.Probability * float64(shots)
		whole := int(math.Floor(exact))
		if whole > 0 {
			counts[state.Outcome] += whole
		}
		assigned += whole
		shares = append(shares, share{outcome: state.Outcome, remainder: exact - float64(whole)})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].remainder > shares[j].remainder
	})

	for i := 0; assigned < shots && i < len(shares); i++ {
		if shares[i].remainder <= 0 {
			break
		}
		counts[shares[i].outcome]++
		assigned++
	}

	return counts
}
