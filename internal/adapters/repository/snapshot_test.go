package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/okian/centum/internal/adapters/repository"
	"github.com/okian/centum/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSnapshotStore(t *testing.T) {
	Convey("Given a snapshot store", t, func() {
		ctx := context.Background()
		store := repository.NewSnapshotStore()

		Convey("When nothing has been installed", func() {
			_, err := store.Current(ctx)

			Convey("Then Current reports the missing snapshot", func() {
				So(err, ShouldEqual, repository.ErrNoSnapshot)
			})
		})

		Convey("When a payload is installed", func() {
			payload := &model.Payload{
				Campaign: model.Campaign{CurrentDay: 4},
				Days: []model.DayRecord{
					{Day: 1, Status: model.StatusAGI},
					{Day: 1, Status: model.StatusMissed},
					{Day: 0, Status: model.StatusAGI},
				},
				Participants: []model.Participant{{ID: "p"}},
			}
			snap := store.Replace(ctx, "file", payload)

			Convey("Then the snapshot is normalized at install time", func() {
				So(snap.Board.Len(), ShouldEqual, 1)
				r, ok := snap.Board.Day(1)
				So(ok, ShouldBeTrue)
				So(r.Status, ShouldEqual, model.StatusMissed)
			})

			Convey("And the snapshot carries identity and provenance", func() {
				So(snap.ID, ShouldNotBeEmpty)
				So(snap.Source, ShouldEqual, "file")
				So(snap.LoadedAt, ShouldHappenWithin, time.Minute, time.Now())
			})

			Convey("And Current returns the installed snapshot", func() {
				got, err := store.Current(ctx)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, snap)
			})
		})

		Convey("When the record set is replaced", func() {
			first := store.Replace(ctx, "file", &model.Payload{
				Days: []model.DayRecord{{Day: 1, Status: model.StatusAGI}},
			})
			second := store.Replace(ctx, "url", &model.Payload{
				Days: []model.DayRecord{{Day: 2, Status: model.StatusMissed}},
			})

			Convey("Then replacement is wholesale and last-resolved wins", func() {
				got, err := store.Current(ctx)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, second)
				So(got.ID, ShouldNotEqual, first.ID)
				_, ok := got.Board.Day(1)
				So(ok, ShouldBeFalse)
			})

			Convey("And the earlier snapshot stays consistent for holders", func() {
				So(first.Board.Len(), ShouldEqual, 1)
				_, ok := first.Board.Day(1)
				So(ok, ShouldBeTrue)
			})
		})

		Convey("When a nil payload is installed", func() {
			snap := store.Replace(ctx, "fallback", nil)

			Convey("Then the snapshot is empty but valid", func() {
				So(snap.Board.Len(), ShouldEqual, 0)
				So(snap.Participants, ShouldBeEmpty)
				So(snap.Challenges, ShouldBeEmpty)
			})
		})
	})
}
