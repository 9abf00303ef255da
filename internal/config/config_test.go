package config_test

import (
	"testing"

	"github.com/okian/centum/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.FeedURL, convey.ShouldBeEmpty)
			convey.So(cfg.FeedPath, convey.ShouldBeEmpty)
			convey.So(cfg.FeedTimeoutMS, convey.ShouldEqual, 5_000)
			convey.So(cfg.MaxLeaderboardLimit, convey.ShouldEqual, 100)
			convey.So(cfg.TopIndividualCount, convey.ShouldEqual, 4)
		})
	})
}
