// Package types contains common types used across the application
package types

// Streak captures the current and longest run of agi-status days.
type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// GoalProgress is the goal-completion view derived from a Streak.
// Fraction is min(longest, target)/target; Achieved keys off the current
// streak; Best never regresses below either run length.
type GoalProgress struct {
	Streak
	Best      int     `json:"best"`
	Target    int     `json:"target"`
	Fraction  float64 `json:"fraction"`
	Achieved  bool    `json:"achieved"`
	Remaining int     `json:"remaining"`
}

// Entry represents a leaderboard entry.
type Entry struct {
	Rank          int    `json:"rank"`
	ID            string `json:"id"`
	Name          string `json:"name"`
	Cohort        string `json:"cohort"`
	AGIDays       int    `json:"agi_days"`
	LongestStreak int    `json:"longest_streak"`
	Achieved      bool   `json:"achieved"`
}

// Score summarizes prediction correctness for one challenge.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ResolvedPrediction pairs a prediction with its resolved participant
// identity. Name and Cohort fall back to the placeholder identity when the
// referenced participant is unknown.
type ResolvedPrediction struct {
	ParticipantID string   `json:"participant_id"`
	Name          string   `json:"name"`
	Cohort        string   `json:"cohort"`
	IsCorrect     bool     `json:"is_correct"`
	Confidence    *float64 `json:"confidence,omitempty"`
	LatencyMS     *float64 `json:"latency_ms,omitempty"`
	Output        string   `json:"output,omitempty"`
}

// ChallengeView is one challenge with its score and resolved predictions.
type ChallengeView struct {
	ID            string               `json:"id"`
	Day           int                  `json:"day"`
	Title         string               `json:"title"`
	Category      string               `json:"category"`
	Question      string               `json:"question"`
	CorrectAnswer string               `json:"correct_answer"`
	AnswerOptions []string             `json:"answer_options,omitempty"`
	Score         Score                `json:"score"`
	Predictions   []ResolvedPrediction `json:"predictions,omitempty"`
}

// Point is one aggregated sample in a chart series. Value lies in [0, 10].
type Point struct {
	Day   int     `json:"day"`
	Value float64 `json:"value"`
}

// Line is one chart-ready series: a cohort aggregate or an individual
// participant's own performance points.
type Line struct {
	Label  string  `json:"label"`
	Cohort string  `json:"cohort"`
	Points []Point `json:"points"`
}

// CalendarCell is one of the 100 calendar slots with its derived intensity.
// Recorded is false for days the feed has not reported; those carry the
// pending placeholder status and no accuracy or note data.
type CalendarCell struct {
	Day          int     `json:"day"`
	Status       string  `json:"status"`
	Correct      *int    `json:"correct,omitempty"`
	TopPerformer string  `json:"top_performer,omitempty"`
	Note         string  `json:"note,omitempty"`
	Intensity    float64 `json:"intensity"`
	Recorded     bool    `json:"recorded"`
}
