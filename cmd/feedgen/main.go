package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/okian/centum/internal/feedgen"
	"github.com/okian/centum/pkg/logger"
)

// Default configuration constants.
const (
	defaultDays         = 30
	defaultParticipants = 8
	defaultSeed         = 42
	defaultTimeout      = 30 * time.Second
)

func main() {
	var (
		out          = flag.String("out", "feed.json", "Output file for the generated payload")
		days         = flag.Int("days", defaultDays, "Number of calendar days to record")
		participants = flag.Int("participants", defaultParticipants, "Number of participants")
		seed         = flag.Int64("seed", defaultSeed, "Random seed for reproducible payloads")
		baseURL      = flag.String("url", "", "Optionally verify a running instance at this base URL")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout for verification")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	log := logger.Get()

	payload := feedgen.Generate(feedgen.Config{
		Days:         *days,
		Participants: *participants,
		Seed:         *seed,
	})

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Error(ctx, "failed to encode payload", logger.Error(err))
		return
	}
	if err := os.WriteFile(*out, data, 0o600); err != nil {
		log.Error(ctx, "failed to write payload", logger.String("out", *out), logger.Error(err))
		return
	}
	log.Info(ctx, "payload written",
		logger.String("out", *out),
		logger.Int("days", *days),
		logger.Int("participants", *participants),
	)

	if *baseURL == "" {
		return
	}
	client := &http.Client{Timeout: *timeout}
	if err := feedgen.Verify(ctx, client, *baseURL); err != nil {
		log.Error(ctx, "verification failed", logger.Error(err))
	}
}
