package qisbn

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCircuit(t *testing.T) {
	Convey("Given a circuit", t, func() {
		qc := NewCircuit("q", "c")

		Convey("It should be empty and unmeasured", func() {
			So(qc.Depth(), ShouldEqual, 0)
			So(qc.Measured(), ShouldBeFalse)
		})

		Convey("When chaining gates", func() {
			qc.X().H().P(math.Pi).P(math.Pi / 2).H().Measure()

			Convey("Every gate should be recorded in order", func() {
				So(qc.Depth(), ShouldEqual, 6)
				So(qc.Gates[0].Kind, ShouldEqual, GateX)
				So(qc.Gates[2].Theta, ShouldEqual, math.Pi)
				So(qc.Measured(), ShouldBeTrue)
			})

			Convey("Phase should be the reduced sum of rotations", func() {
				So(qc.Phase(), ShouldAlmostEqual, 3*math.Pi/2, 1e-12)
			})
		})

		Convey("When the phases cancel", func() {
			qc.X().H().P(-math.Pi / 2).P(math.Pi / 2).H().Measure()

			Convey("Evolve should leave the qubit in |1⟩", func() {
				_, p1 := qc.Evolve().Probabilities()
				So(p1, ShouldEqual, 1)
				So(qc.Phase(), ShouldAlmostEqual, 0, 1e-12)
			})
		})

		Convey("When drawing", func() {
			qc.X().Measure()

			Convey("It should render boxes and the classical wire", func() {
				want := "   ┌───┐┌─┐\n" +
					"q: ┤ X ├┤M├─\n" +
					"   └───┘└╥┘\n" +
					"c: ══════╩══\n"
				So(qc.Draw(), ShouldEqual, want)
			})
		})

		Convey("When drawing a phase gate", func() {
			qc.P(3 * math.Pi / 5)

			So(qc.Draw(), ShouldContainSubstring, "┤ P(3π/5) ├")
		})
	})
}

func TestFormatAngle(t *testing.T) {
	Convey("Given phase angles", t, func() {
		So(formatAngle(0), ShouldEqual, "0")
		So(formatAngle(math.Pi), ShouldEqual, "π")
		So(formatAngle(-math.Pi), ShouldEqual, "-π")
		So(formatAngle(math.Pi/5), ShouldEqual, "π/5")
		So(formatAngle(9*math.Pi/5*3), ShouldEqual, "27π/5")
		So(formatAngle(7*2*math.Pi/11*10), ShouldEqual, "140π/11")
		So(formatAngle(1), ShouldEqual, "1")
	})
}
