package qisbn

/*
State is one measurable outcome of the register together with its
amplitude and the probability of observing it.
*/
type State struct {
	Outcome     string
	Probability float64
	Amplitude   complex128
}
