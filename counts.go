package qisbn

import (
	"fmt"
	"sort"
	"strings"
)

// Counts is a histogram of measurement outcomes.
type Counts map[string]int

// Total returns the number of recorded shots.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// All reports whether every one of shots trials produced outcome.
func (c Counts) All(outcome string, shots int) bool {
	return shots > 0 && c[outcome] == shots
}

func (c Counts) String() string {
	keys := make([]string, 0, len(c))
	for k, n := range c {
		if n > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%q: %d", k, c[k]))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Export returns the counts in a form suitable for structured logging.
func (c Counts) Export() map[string]any {
	total := c.Total()
	out := map[string]any{
		"shots": total,
	}
	for k, n := range c {
		out["count_"+k] = n
		if total > 0 {
			out["freq_"+k] = float64(n) / float64(total)
		}
	}
	return out
}
