// Package challenge scores daily challenges and resolves weak participant
// references in their predictions.
package challenge

import (
	"github.com/okian/centum/internal/domain/model"
	"github.com/okian/centum/internal/domain/types"
)

// PlaceholderName labels predictions whose participant id resolves to no
// known participant.
const PlaceholderName = "Unknown"

// Score counts prediction correctness for one challenge. Total includes
// every prediction; unresolved correctness counts as incorrect.
func Score(c model.Challenge) types.Score {
	s := types.Score{Total: len(c.Predictions)}
	for _, p := range c.Predictions {
		if p.IsCorrect {
			s.Correct++
		}
	}
	return s
}

// Active applies the display-default challenge filter: when a current-day
// marker is set and at least one challenge matches it, only same-day
// challenges are returned; otherwise all challenges are. This is the
// literal fallback behavior, not a recency rule.
func Active(challenges []model.Challenge, currentDay int) []model.Challenge {
	if currentDay < 1 {
		return challenges
	}
	var today []model.Challenge
	for _, c := range challenges {
		if c.Day == currentDay {
			today = append(today, c)
		}
	}
	if len(today) == 0 {
		return challenges
	}
	return today
}

// Resolver is a total function from participant id to a participant.
// Unknown ids resolve to a synthetic placeholder identity, so callers
// never handle a missing case.
type Resolver struct {
	byID map[string]model.Participant
}

// NewResolver indexes the participant set for lookup-or-placeholder
// resolution.
func NewResolver(participants []model.Participant) *Resolver {
	byID := make(map[string]model.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}
	return &Resolver{byID: byID}
}

// Resolve returns the participant for id, or the placeholder identity when
// the reference dangles.
func (r *Resolver) Resolve(id string) model.Participant {
	if p, ok := r.byID[id]; ok {
		return p
	}
	return model.Participant{Name: PlaceholderName, Type: model.CohortLLM}
}

// View assembles the chart-ready shape for one challenge: its score plus
// every prediction with a resolved identity.
func (r *Resolver) View(c model.Challenge) types.ChallengeView {
	v := types.ChallengeView{
		ID:            c.ID,
		Day:           c.Day,
		Title:         c.Title,
		Category:      c.Category,
		Question:      c.Question,
		CorrectAnswer: c.CorrectAnswer,
		AnswerOptions: c.AnswerOptions,
		Score:         Score(c),
	}
	for _, p := range c.Predictions {
		who := r.Resolve(p.ParticipantID)
		v.Predictions = append(v.Predictions, types.ResolvedPrediction{
			ParticipantID: p.ParticipantID,
			Name:          who.Name,
			Cohort:        string(who.Type),
			IsCorrect:     p.IsCorrect,
			Confidence:    p.Confidence,
			LatencyMS:     p.LatencyMS,
			Output:        p.Output,
		})
	}
	return v
}
