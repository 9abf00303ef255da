// Package feedgen generates synthetic campaign payloads for local runs
// and smoke checks against a running instance.
package feedgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/okian/centum/internal/domain/model"
)

// Config controls payload generation.
type Config struct {
	// Days is how many calendar days to record, starting at day 1.
	Days int
	// Participants is how many participants to register.
	Participants int
	// Seed drives the deterministic random source.
	Seed int64
	// Start anchors challenge timestamps; zero means time.Now.
	Start time.Time
}

// Distribution constants for day outcomes and solved counts.
const (
	agiWeight        = 70 // percent of days that land agi
	missedWeight     = 20 // percent of days missed; remainder evaluating
	percentTotal     = 100
	strongSolvedMin  = 7
	strongSolvedSpan = 4 // 7..10
	weakSolvedSpan   = 7 // 0..6
	correctOddsNum   = 3 // 3-in-5 predictions correct on agi days
	correctOddsDen   = 5
	maxLatencyMs     = 2500
)

var cohorts = []model.Cohort{model.CohortLLM, model.CohortAgent}

// Generate builds a payload with cfg.Days recorded days, per-day
// challenges and per-participant performance points. The same seed
// yields the same structure; only ids differ between runs.
func Generate(cfg Config) *model.Payload {
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic seed for reproducible payloads
	start := cfg.Start
	if start.IsZero() {
		start = time.Now().UTC()
	}

	participants := make([]model.Participant, cfg.Participants)
	for i := range participants {
		participants[i] = model.Participant{
			ID:   uuid.NewString(),
			Name: fmt.Sprintf("contender-%02d", i+1),
			Type: cohorts[i%len(cohorts)],
		}
	}

	payload := &model.Payload{
		Campaign: model.Campaign{
			Name:       "synthetic campaign",
			CurrentDay: cfg.Days,
		},
		Participants: participants,
	}

	streaks := make([]int, len(participants))
	for day := 1; day <= cfg.Days; day++ {
		status := rollStatus(rng)
		record := model.DayRecord{Day: day, Status: status}

		ch := model.Challenge{
			ID:        uuid.NewString(),
			Day:       day,
			Title:     fmt.Sprintf("challenge %d", day),
			Category:  "reasoning",
			Question:  fmt.Sprintf("synthetic question %d", day),
			Timestamp: start.AddDate(0, 0, day-1),
		}

		bestSolved := -1
		for i := range participants {
			solved := rollSolved(rng, status)
			participants[i].Performance = append(participants[i].Performance, model.PerformancePoint{
				Day:    day,
				Solved: float64(solved),
			})

			correct := status == model.StatusAGI && rng.Intn(correctOddsDen) < correctOddsNum
			latency := float64(rng.Intn(maxLatencyMs))
			confidence := rng.Float64()
			ch.Predictions = append(ch.Predictions, model.Prediction{
				ParticipantID: participants[i].ID,
				IsCorrect:     correct,
				Confidence:    &confidence,
				LatencyMS:     &latency,
			})

			if status == model.StatusAGI {
				participants[i].AGIDays++
				streaks[i]++
				if streaks[i] > participants[i].LongestStreak {
					participants[i].LongestStreak = streaks[i]
				}
			} else {
				streaks[i] = 0
			}

			if solved > bestSolved {
				bestSolved = solved
				record.TopPerformer = participants[i].ID
			}
		}

		if status != model.StatusPending {
			correct := bestSolved
			record.Correct = &correct
		}

		payload.Days = append(payload.Days, record)
		payload.Challenges = append(payload.Challenges, ch)
	}

	payload.Participants = participants
	return payload
}

func rollStatus(rng *rand.Rand) model.DayStatus {
	switch roll := rng.Intn(percentTotal); {
	case roll < agiWeight:
		return model.StatusAGI
	case roll < agiWeight+missedWeight:
		return model.StatusMissed
	default:
		return model.StatusEvaluating
	}
}

// rollSolved skews solved counts high on agi days and low otherwise.
func rollSolved(rng *rand.Rand, status model.DayStatus) int {
	if status == model.StatusAGI {
		return strongSolvedMin + rng.Intn(strongSolvedSpan)
	}
	return rng.Intn(weakSolvedSpan)
}
