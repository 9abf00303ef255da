package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/centum/internal/adapters/feed"
	"github.com/okian/centum/internal/app"
	"github.com/okian/centum/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const feedDoc = `{
	"campaign": {"name": "100 Days", "current_day": 4},
	"days": [
		{"day": 1, "status": "agi", "correct": 8},
		{"day": 2, "status": "agi", "correct": 9},
		{"day": 3, "status": "missed", "correct": 3},
		{"day": 4, "status": "agi", "correct": 7}
	],
	"participants": [
		{"id": "p1", "name": "Nova", "type": "LLM", "agi_days": 3, "longest_streak": 2,
			"performance": [{"day": 1, "solved": 8}, {"day": 2, "solved": 9}]},
		{"id": "p2", "name": "Atlas", "type": "Agent", "agi_days": 1, "longest_streak": 1,
			"performance": [{"day": 1, "solved": 4}]}
	],
	"challenges": [
		{"id": "ch4", "day": 4, "title": "Daily", "predictions": [
			{"participant_id": "p1", "is_correct": true},
			{"participant_id": "p2", "is_correct": false},
			{"participant_id": "ghost", "is_correct": true}
		]},
		{"id": "ch1", "day": 1, "title": "Opener", "predictions": []}
	]
}`

func newStarted(t *testing.T) *app.Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.json")
	if err := os.WriteFile(path, []byte(feedDoc), 0o600); err != nil {
		t.Fatal(err)
	}
	svc := app.New(app.WithLoader(feed.NewLoader(feed.WithPath(path))))
	if err := svc.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given an unconfigured service", t, func() {
		svc := app.New()
		ctx := context.Background()

		Convey("When it starts without any feed source", func() {
			err := svc.Start(ctx)

			Convey("Then it comes up on the built-in fallback", func() {
				So(err, ShouldBeNil)
				snap, err := svc.Export(ctx)
				So(err, ShouldBeNil)
				So(snap.Source, ShouldEqual, feed.SourceFallback)
				So(snap.Board.Len(), ShouldBeGreaterThan, 0)
			})

			Convey("And starting again is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
				svc.Stop()
			})
		})
	})
}

func TestServiceDerivations(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := newStarted(t)
		ctx := context.Background()

		Convey("When deriving the streak", func() {
			progress, err := svc.Streak(ctx)

			Convey("Then the current run trails the last record", func() {
				So(err, ShouldBeNil)
				So(progress.Current, ShouldEqual, 1)
				So(progress.Longest, ShouldEqual, 2)
				So(progress.Achieved, ShouldBeFalse)
				So(progress.Remaining, ShouldEqual, 98)
			})
		})

		Convey("When deriving the leaderboard", func() {
			entries, err := svc.Leaderboard(ctx, 0)

			Convey("Then participants rank by agi days descending", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].ID, ShouldEqual, "p1")
				So(entries[0].Rank, ShouldEqual, 1)
			})

			Convey("And a positive limit truncates", func() {
				top, err := svc.Leaderboard(ctx, 1)
				So(err, ShouldBeNil)
				So(top, ShouldHaveLength, 1)
			})
		})

		Convey("When deriving the calendar", func() {
			cells, err := svc.Calendar(ctx)

			Convey("Then only recorded days materialize, with intensity", func() {
				So(err, ShouldBeNil)
				So(cells, ShouldHaveLength, 4)
				So(cells[0].Day, ShouldEqual, 1)
				So(cells[0].Recorded, ShouldBeTrue)
				So(cells[0].Intensity, ShouldBeBetweenOrEqual, 0.12, 0.95)
			})
		})

		Convey("When resolving a single day", func() {
			Convey("Then a recorded day comes back as recorded", func() {
				cell, err := svc.CalendarDay(ctx, 3)
				So(err, ShouldBeNil)
				So(cell.Status, ShouldEqual, "missed")
				So(cell.Recorded, ShouldBeTrue)
			})

			Convey("And an unrecorded day yields the pending placeholder", func() {
				cell, err := svc.CalendarDay(ctx, 42)
				So(err, ShouldBeNil)
				So(cell.Status, ShouldEqual, "pending")
				So(cell.Recorded, ShouldBeFalse)
			})

			Convey("And an out-of-range day is rejected", func() {
				_, err := svc.CalendarDay(ctx, 0)
				So(errors.Is(err, app.ErrInvalidDay), ShouldBeTrue)
				_, err = svc.CalendarDay(ctx, 101)
				So(errors.Is(err, app.ErrInvalidDay), ShouldBeTrue)
			})
		})

		Convey("When listing challenges", func() {
			Convey("Then the current-day marker filters", func() {
				views, err := svc.Challenges(ctx, 0)
				So(err, ShouldBeNil)
				So(views, ShouldHaveLength, 1)
				So(views[0].ID, ShouldEqual, "ch4")
			})

			Convey("And the score counts only correct predictions", func() {
				views, err := svc.Challenges(ctx, 4)
				So(err, ShouldBeNil)
				So(views[0].Score.Correct, ShouldEqual, 2)
				So(views[0].Score.Total, ShouldEqual, 3)
			})

			Convey("And a dangling predictor resolves to the placeholder", func() {
				views, err := svc.Challenges(ctx, 4)
				So(err, ShouldBeNil)
				var ghostName string
				for _, p := range views[0].Predictions {
					if p.ParticipantID == "ghost" {
						ghostName = p.Name
					}
				}
				So(ghostName, ShouldEqual, "Unknown")
			})

			Convey("And a marker with no matches falls back to all", func() {
				views, err := svc.Challenges(ctx, 99)
				So(err, ShouldBeNil)
				So(views, ShouldHaveLength, 2)
			})
		})

		Convey("When deriving cohort series", func() {
			line, err := svc.CohortSeries(ctx, "LLM")

			Convey("Then performance and predictions merge per day", func() {
				So(err, ShouldBeNil)
				So(line.Cohort, ShouldEqual, "LLM")
				So(line.Points, ShouldHaveLength, 3)
			})

			Convey("And an unknown cohort is rejected", func() {
				_, err := svc.CohortSeries(ctx, "Cyborg")
				So(errors.Is(err, app.ErrUnknownCohort), ShouldBeTrue)
			})
		})

		Convey("When deriving top individual series", func() {
			lines, err := svc.TopSeries(ctx, 0)

			Convey("Then one line per top-ranked participant", func() {
				So(err, ShouldBeNil)
				So(lines, ShouldHaveLength, 2)
				So(lines[0].Label, ShouldEqual, "Nova")
				So(lines[0].Points, ShouldHaveLength, 2)
			})

			Convey("And the limit truncates the ranking", func() {
				lines, err := svc.TopSeries(ctx, 1)
				So(err, ShouldBeNil)
				So(lines, ShouldHaveLength, 1)
			})
		})

		Convey("When reloading", func() {
			before, err := svc.Export(ctx)
			So(err, ShouldBeNil)
			snap, err := svc.Reload(ctx)

			Convey("Then a fresh snapshot replaces the old one", func() {
				So(err, ShouldBeNil)
				So(snap.ID, ShouldNotEqual, before.ID)
				current, err := svc.Export(ctx)
				So(err, ShouldBeNil)
				So(current.ID, ShouldEqual, snap.ID)
			})
		})

		Convey("When asking for stats", func() {
			stats := svc.GetStats()

			Convey("Then the snapshot shape is reported", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["recordedDays"], ShouldEqual, 4)
				So(stats["participants"], ShouldEqual, 2)
				So(stats["currentDay"], ShouldEqual, 4)
			})
		})
	})

	Convey("Given a payload with no participants section at all", t, func() {
		path := filepath.Join(t.TempDir(), "sparse.json")
		So(os.WriteFile(path, []byte(`{"days": [{"day": 1, "status": "agi"}]}`), 0o600), ShouldBeNil)

		svc := app.New(app.WithLoader(feed.NewLoader(feed.WithPath(path))))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When deriving the leaderboard", func() {
			entries, err := svc.Leaderboard(ctx, 0)

			Convey("Then the ranking is empty, never an error", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldBeEmpty)
			})
		})

		Convey("When deriving the other surfaces", func() {
			progress, err := svc.Streak(ctx)

			Convey("Then derivations stay fail-soft over sparse data", func() {
				So(err, ShouldBeNil)
				So(progress.Current, ShouldEqual, 1)
				lines, err := svc.TopSeries(ctx, 0)
				So(err, ShouldBeNil)
				So(lines, ShouldBeEmpty)
			})
		})
	})
}
