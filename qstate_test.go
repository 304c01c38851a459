package qisbn

import (
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantumState(t *testing.T) {
	Convey("Given a state certain to measure 1", t, func() {
		q := NewQubit()
		q.ApplyX()
		state := NewQuantumState(q)

		So(spew.Sdump(state.States), ShouldContainSubstring, "Outcome")
		So(state.Probability("1"), ShouldEqual, 1)

		Convey("Measure should never return 0, even for r = 0", func() {
			So(state.Measure(0), ShouldEqual, "1")
			So(state.Measure(0.999999), ShouldEqual, "1")
		})

		Convey("Sample should put every shot on 1", func() {
			counts := state.Sample(rand.New(rand.NewPCG(1, 2)), 300)
			So(counts.All("1", 300), ShouldBeTrue)
			So(counts["0"], ShouldEqual, 0)
		})

		Convey("Apportion should put every shot on 1", func() {
			So(state.Apportion(300), ShouldResemble, Counts{"1": 300})
		})
	})

	Convey("Given an even superposition", t, func() {
		q := NewQubit()
		q.ApplyHadamard()
		state := NewQuantumState(q)

		Convey("Sample should see both outcomes", func() {
			counts := state.Sample(rand.New(rand.NewPCG(7, 11)), 300)
			So(counts.Total(), ShouldEqual, 300)
			So(counts["0"], ShouldBeGreaterThan, 0)
			So(counts["1"], ShouldBeGreaterThan, 0)
		})

		Convey("Apportion should split the shots exactly", func() {
			counts := state.Apportion(301)
			So(counts.Total(), ShouldEqual, 301)
			So(counts["0"]+counts["1"], ShouldEqual, 301)
			So(counts["0"], ShouldBeBetweenOrEqual, 150, 151)
		})
	})

	Convey("Given an empty state", t, func() {
		state := &QuantumState{}
		So(state.Measure(0.5), ShouldEqual, "")
		So(state.Probability("0"), ShouldEqual, 0)
	})
}

func TestCounts(t *testing.T) {
	Convey("Given a histogram", t, func() {
		counts := Counts{"1": 288, "0": 12}

		So(counts.Total(), ShouldEqual, 300)
		So(counts.String(), ShouldEqual, `{"0": 12, "1": 288}`)
		So(counts.All("1", 300), ShouldBeFalse)

		Convey("Export should carry totals and frequencies", func() {
			out := counts.Export()
			So(out["shots"], ShouldEqual, 300)
			So(out["count_0"], ShouldEqual, 12)
			So(out["freq_1"], ShouldAlmostEqual, 0.96, 1e-12)
		})
	})

	Convey("Given zero entries", t, func() {
		So(Counts{"0": 0, "1": 5}.String(), ShouldEqual, `{"1": 5}`)
		So(Counts{}.String(), ShouldEqual, "{}")
		So(Counts{}.All("1", 0), ShouldBeFalse)
	})
}
