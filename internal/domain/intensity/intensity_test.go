package intensity_test

import (
	"testing"

	"github.com/okian/centum/internal/domain/intensity"
	"github.com/okian/centum/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAlpha(t *testing.T) {
	Convey("Given any status and accuracy pair", t, func() {
		statuses := []model.DayStatus{
			model.StatusAGI,
			model.StatusEvaluating,
			model.StatusPending,
			model.StatusMissed,
			model.DayStatus("bogus"),
		}

		Convey("Then the output always lies within the clamp bounds", func() {
			for _, status := range statuses {
				So(intensity.Alpha(status, nil), ShouldBeBetweenOrEqual, intensity.MinAlpha, intensity.MaxAlpha)
				for correct := -2; correct <= 14; correct++ {
					c := correct
					So(intensity.Alpha(status, &c), ShouldBeBetweenOrEqual, intensity.MinAlpha, intensity.MaxAlpha)
				}
			}
		})
	})

	Convey("Given an agi day", t, func() {
		low, high := 2, 9

		Convey("Then higher accuracy renders more intense", func() {
			So(intensity.Alpha(model.StatusAGI, &high), ShouldBeGreaterThan, intensity.Alpha(model.StatusAGI, &low))
		})

		Convey("And full accuracy hits the upper clamp", func() {
			full := 10
			So(intensity.Alpha(model.StatusAGI, &full), ShouldEqual, intensity.MaxAlpha)
		})
	})

	Convey("Given a missed day", t, func() {
		narrow, wide := 9, 1

		Convey("Then a narrow miss renders softer than a wide one", func() {
			So(intensity.Alpha(model.StatusMissed, &narrow), ShouldBeLessThan, intensity.Alpha(model.StatusMissed, &wide))
		})
	})

	Convey("Given no accuracy data", t, func() {
		Convey("Then each status maps to its own base level", func() {
			agi := intensity.Alpha(model.StatusAGI, nil)
			evaluating := intensity.Alpha(model.StatusEvaluating, nil)
			pending := intensity.Alpha(model.StatusPending, nil)
			missed := intensity.Alpha(model.StatusMissed, nil)

			So(agi, ShouldBeGreaterThan, evaluating)
			So(evaluating, ShouldBeGreaterThan, missed)
			So(missed, ShouldBeGreaterThan, pending)
		})

		Convey("And an unknown status renders like pending", func() {
			So(intensity.Alpha(model.DayStatus("bogus"), nil), ShouldEqual, intensity.Alpha(model.StatusPending, nil))
		})
	})
}
