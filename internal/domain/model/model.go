// Package model contains domain models passed between layers.
package model

import "time"

// DayStatus enumerates the recorded outcome of a campaign day.
type DayStatus string

// Day status values as they appear in the feed.
const (
	StatusAGI        DayStatus = "agi"
	StatusEvaluating DayStatus = "evaluating"
	StatusPending    DayStatus = "pending"
	StatusMissed     DayStatus = "missed"
)

// Cohort groups participants for series aggregation and leaderboard filtering.
type Cohort string

// Known cohorts.
const (
	CohortLLM   Cohort = "LLM"
	CohortAgent Cohort = "Agent"
)

// DayRecord is one calendar day of the campaign as reported by the feed.
// Day is the identity key; duplicates are resolved by the calendar board.
type DayRecord struct {
	Day          int       `json:"day"`
	Status       DayStatus `json:"status"`
	Correct      *int      `json:"correct,omitempty"` // solved out of 10; nil when not yet evaluated
	TopPerformer string    `json:"top_performer,omitempty"`
	Note         string    `json:"note,omitempty"`
}

// PerformancePoint is one raw per-day performance sample for a participant.
// Points are not required to be contiguous or sorted on input.
type PerformancePoint struct {
	Day    int     `json:"day"`
	Solved float64 `json:"solved"` // 0..10 scale
}

// Participant is a registered model or agent competing in the campaign.
type Participant struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Type           Cohort             `json:"type"`
	AGIDays        int                `json:"agi_days"`
	LongestStreak  int                `json:"longest_streak"`
	LastSubmission *time.Time         `json:"last_submission,omitempty"`
	Performance    []PerformancePoint `json:"performance,omitempty"`
}

// Prediction is one participant's answer to a daily challenge. ParticipantID
// is a weak reference: a dangling id is valid input, not an error.
type Prediction struct {
	ParticipantID string   `json:"participant_id"`
	IsCorrect     bool     `json:"is_correct"`
	Confidence    *float64 `json:"confidence,omitempty"` // 0..1
	LatencyMS     *float64 `json:"latency_ms,omitempty"`
	Output        string   `json:"output,omitempty"`
}

// Challenge is a daily question with the predictions submitted against it.
type Challenge struct {
	ID            string       `json:"id"`
	Day           int          `json:"day"`
	Title         string       `json:"title"`
	Category      string       `json:"category"`
	Question      string       `json:"question"`
	CorrectAnswer string       `json:"correct_answer"`
	AnswerOptions []string     `json:"answer_options,omitempty"`
	Timestamp     time.Time    `json:"timestamp"`
	Predictions   []Prediction `json:"predictions,omitempty"`
}

// Campaign carries feed-level metadata: the current-day marker and the next
// challenge deadline used by the countdown display.
type Campaign struct {
	Name         string     `json:"name"`
	CurrentDay   int        `json:"current_day"`
	NextDeadline *time.Time `json:"next_deadline,omitempty"`
}

// Payload is the full record set delivered by the data-fetch collaborator.
// Absent or malformed sections decode to empty slices, never to an error.
type Payload struct {
	Campaign     Campaign      `json:"campaign"`
	Days         []DayRecord   `json:"days"`
	Challenges   []Challenge   `json:"challenges"`
	Participants []Participant `json:"participants"`
}
