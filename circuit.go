package qisbn

import (
	"math"
	"strings"
	"unicode/utf8"
)

/*
Circuit is an ordered list of gates acting on a single qubit, with a
single classical bit receiving the measurement. The register names are
only used when drawing.
*/
type Circuit struct {
	QuantumRegister   string
	ClassicalRegister string
	Gates             []Gate
}

func NewCircuit(quantumRegister, classicalRegister string) *Circuit {
	return &Circuit{
		QuantumRegister:   quantumRegister,
		ClassicalRegister: classicalRegister,
		Gates:             make([]Gate, 0),
	}
}

func (c *Circuit) X() *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateX})
	return c
}

func (c *Circuit) H() *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateH})
	return c
}

// P appends a phase gate rotating |1⟩ by theta radians.
func (c *Circuit) P(theta float64) *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GatePhase, Theta: theta})
	return c
}

// Measure appends a measurement of the qubit into the classical bit.
func (c *Circuit) Measure() *Circuit {
	c.Gates = append(c.Gates, Gate{Kind: GateMeasure})
	return c
}

// Measured reports whether the circuit ends in a measurement.
func (c *Circuit) Measured() bool {
	return len(c.Gates) > 0 && c.Gates[len(c.Gates)-1].Kind == GateMeasure
}

func (c *Circuit) Depth() int {
	return len(c.Gates)
}

// Evolve runs the unitary gates, up to the first measurement, on a fresh |0⟩ qubit.
func (c *Circuit) Evolve() *Qubit {
	q := NewQubit()
	for _, g := range c.Gates {
		if g.Kind == GateMeasure {
			break
		}
		g.apply(q)
	}
	return q
}

// Phase returns the sum of every phase rotation, reduced to [0, 2π).
func (c *Circuit) Phase() float64 {
	var total float64
	for _, g := range c.Gates {
		if g.Kind == GatePhase {
			total += g.Theta
		}
	}

	total = math.Mod(total, 2*math.Pi)
	if total < 0 {
		total += 2 * math.Pi
	}
	return total
}

/*
Draw renders the circuit as text, one box per gate on the quantum wire,
with measurements wired down to the classical register.
*/
func (c *Circuit) Draw() string {
	width := max(utf8.RuneCountInString(c.QuantumRegister), utf8.RuneCountInString(c.ClassicalRegister))
	pad := strings.Repeat(" ", width+2)

	var top, mid, bot, wire strings.Builder
	top.WriteString(pad)
	mid.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(c.QuantumRegister)) + c.QuantumRegister + ": ")
	bot.WriteString(pad)
	wire.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(c.ClassicalRegister)) + c.ClassicalRegister + ": ")

	for _, g := range c.Gates {
		if g.Kind == GateMeasure {
			top.WriteString("┌─┐")
			mid.WriteString("┤M├")
			bot.WriteString("└╥┘")
			wire.WriteString("═╩═")
			continue
		}

		label := g.Label()
		span := utf8.RuneCountInString(label) + 2
		top.WriteString("┌" + strings.Repeat("─", span) + "┐")
		mid.WriteString("┤ " + label + " ├")
		bot.WriteString("└" + strings.Repeat("─", span) + "┘")
		wire.WriteString(strings.Repeat("═", span+2))
	}

	mid.WriteString("─")
	wire.WriteString("═")

	lines := []string{
		strings.TrimRight(top.String(), " "),
		mid.String(),
		strings.TrimRight(bot.String(), " "),
		wire.String(),
	}
	return strings.Join(lines, "\n") + "\n"
}
