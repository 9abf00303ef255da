// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, optional YAML file, and environment.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// FeedURL is the remote feed endpoint. Empty disables remote loading.
	FeedURL string `koanf:"feed_url"`

	// FeedPath is a local payload file tried before the URL.
	FeedPath string `koanf:"feed_path"`

	// FeedTimeoutMS bounds one remote feed fetch.
	FeedTimeoutMS int `koanf:"feed_timeout_ms"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// TopIndividualCount is how many top-ranked participant lines the
	// series endpoints expose by default.
	TopIndividualCount int `koanf:"top_individual_count"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		FeedURL:             "",
		FeedPath:            "",
		FeedTimeoutMS:       5_000,
		MaxLeaderboardLimit: 100,
		TopIndividualCount:  4,
	}
}
