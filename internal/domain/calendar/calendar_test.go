package calendar_test

import (
	"testing"

	"github.com/okian/centum/internal/domain/calendar"
	"github.com/okian/centum/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given raw calendar-day records", t, func() {
		Convey("When the input contains duplicate days", func() {
			board := calendar.Normalize([]model.DayRecord{
				{Day: 1, Status: model.StatusAGI, Note: "first"},
				{Day: 2, Status: model.StatusMissed},
				{Day: 1, Status: model.StatusEvaluating, Note: "second"},
			})

			Convey("Then the last-seen record wins", func() {
				So(board.Len(), ShouldEqual, 2)
				r, ok := board.Day(1)
				So(ok, ShouldBeTrue)
				So(r.Status, ShouldEqual, model.StatusEvaluating)
				So(r.Note, ShouldEqual, "second")
			})
		})

		Convey("When the input contains malformed records", func() {
			board := calendar.Normalize([]model.DayRecord{
				{Day: 0, Status: model.StatusAGI},
				{Day: -3, Status: model.StatusAGI},
				{Day: 4, Status: model.StatusAGI},
			})

			Convey("Then malformed records are dropped silently", func() {
				So(board.Len(), ShouldEqual, 1)
				_, ok := board.Day(4)
				So(ok, ShouldBeTrue)
			})
		})

		Convey("When normalizing an already-normalized sequence", func() {
			first := calendar.Normalize([]model.DayRecord{
				{Day: 3, Status: model.StatusAGI},
				{Day: 1, Status: model.StatusMissed},
				{Day: 3, Status: model.StatusPending},
			})
			second := calendar.Normalize(first.Days())

			Convey("Then the mapping is unchanged", func() {
				So(second.Len(), ShouldEqual, first.Len())
				So(second.Days(), ShouldResemble, first.Days())
			})
		})

		Convey("When the input is empty", func() {
			board := calendar.Normalize(nil)

			Convey("Then the board is empty", func() {
				So(board.Len(), ShouldEqual, 0)
				So(board.Days(), ShouldBeEmpty)
			})
		})
	})
}

func TestBoardDays(t *testing.T) {
	Convey("Given a board built from unordered input", t, func() {
		board := calendar.Normalize([]model.DayRecord{
			{Day: 9, Status: model.StatusAGI},
			{Day: 2, Status: model.StatusMissed},
			{Day: 5, Status: model.StatusAGI},
		})

		Convey("Then Days is ascending by day", func() {
			days := board.Days()
			So(days, ShouldHaveLength, 3)
			So(days[0].Day, ShouldEqual, 2)
			So(days[1].Day, ShouldEqual, 5)
			So(days[2].Day, ShouldEqual, 9)
		})

		Convey("And Day is total over the calendar range", func() {
			_, ok := board.Day(0)
			So(ok, ShouldBeFalse)
			_, ok = board.Day(calendar.TotalDays + 1)
			So(ok, ShouldBeFalse)
			_, ok = board.Day(50)
			So(ok, ShouldBeFalse)
			_, ok = board.Day(5)
			So(ok, ShouldBeTrue)
		})
	})
}

func TestPlaceholder(t *testing.T) {
	Convey("Given an unrecorded day slot", t, func() {
		r := calendar.Placeholder(42)

		Convey("Then the placeholder is a bare pending record", func() {
			So(r.Day, ShouldEqual, 42)
			So(r.Status, ShouldEqual, model.StatusPending)
			So(r.Correct, ShouldBeNil)
			So(r.Note, ShouldBeEmpty)
		})
	})
}
