package streak_test

import (
	"testing"

	"github.com/okian/centum/internal/domain/model"
	"github.com/okian/centum/internal/domain/streak"
	. "github.com/smartystreets/goconvey/convey"
)

func days(statuses ...model.DayStatus) []model.DayRecord {
	out := make([]model.DayRecord, len(statuses))
	for i, s := range statuses {
		out[i] = model.DayRecord{Day: i + 1, Status: s}
	}
	return out
}

func TestCompute(t *testing.T) {
	Convey("Given a day-ascending canonical sequence", t, func() {
		Convey("When a run breaks before the last day", func() {
			r := streak.Compute(days(model.StatusAGI, model.StatusAGI, model.StatusMissed, model.StatusAGI))

			Convey("Then current is the trailing run and longest the best run", func() {
				So(r.Current, ShouldEqual, 1)
				So(r.Longest, ShouldEqual, 2)
			})
		})

		Convey("When the last record is not agi", func() {
			r := streak.Compute(days(model.StatusAGI, model.StatusAGI, model.StatusEvaluating))

			Convey("Then the current streak is zero", func() {
				So(r.Current, ShouldEqual, 0)
				So(r.Longest, ShouldEqual, 2)
			})
		})

		Convey("When days are absent between agi records", func() {
			r := streak.Compute([]model.DayRecord{
				{Day: 1, Status: model.StatusAGI},
				{Day: 5, Status: model.StatusAGI},
				{Day: 9, Status: model.StatusAGI},
			})

			Convey("Then absent days do not break the run", func() {
				So(r.Current, ShouldEqual, 3)
				So(r.Longest, ShouldEqual, 3)
			})
		})

		Convey("When the input is empty", func() {
			r := streak.Compute(nil)

			Convey("Then both runs are zero", func() {
				So(r.Current, ShouldEqual, 0)
				So(r.Longest, ShouldEqual, 0)
			})
		})

		Convey("When there is a single agi record", func() {
			r := streak.Compute(days(model.StatusAGI))

			Convey("Then current and longest are both one", func() {
				So(r.Current, ShouldEqual, 1)
				So(r.Longest, ShouldEqual, 1)
			})
		})

		Convey("For any sequence, longest is at least current", func() {
			sequences := [][]model.DayStatus{
				{},
				{model.StatusMissed},
				{model.StatusAGI, model.StatusMissed, model.StatusAGI, model.StatusAGI},
				{model.StatusAGI, model.StatusAGI, model.StatusAGI},
				{model.StatusPending, model.StatusEvaluating, model.StatusAGI},
			}
			for _, seq := range sequences {
				r := streak.Compute(days(seq...))
				So(r.Longest, ShouldBeGreaterThanOrEqualTo, r.Current)
			}
		})
	})
}

func TestProgress(t *testing.T) {
	Convey("Given a streak result", t, func() {
		Convey("When the goal has been reached", func() {
			statuses := make([]model.DayStatus, streak.GoalTarget)
			for i := range statuses {
				statuses[i] = model.StatusAGI
			}
			p := streak.Progress(streak.Compute(days(statuses...)))

			Convey("Then the campaign is achieved", func() {
				So(p.Current, ShouldEqual, streak.GoalTarget)
				So(p.Longest, ShouldEqual, streak.GoalTarget)
				So(p.Achieved, ShouldBeTrue)
				So(p.Fraction, ShouldEqual, 1.0)
				So(p.Remaining, ShouldEqual, 0)
			})
		})

		Convey("When the streak broke at the boundary", func() {
			p := streak.Progress(streak.Result{Current: 0, Longest: 99})

			Convey("Then the displayed progress does not regress", func() {
				So(p.Achieved, ShouldBeFalse)
				So(p.Best, ShouldEqual, 99)
				So(p.Remaining, ShouldEqual, 1)
				So(p.Fraction, ShouldEqual, 0.99)
			})
		})

		Convey("When there is no data at all", func() {
			p := streak.Progress(streak.Compute(nil))

			Convey("Then the progress view is all zero", func() {
				So(p.Fraction, ShouldEqual, 0)
				So(p.Achieved, ShouldBeFalse)
				So(p.Remaining, ShouldEqual, streak.GoalTarget)
			})
		})

		Convey("When the current run exceeds the recorded longest", func() {
			p := streak.Progress(streak.Result{Current: 12, Longest: 7})

			Convey("Then best tracks the larger run", func() {
				So(p.Best, ShouldEqual, 12)
			})
		})
	})
}
