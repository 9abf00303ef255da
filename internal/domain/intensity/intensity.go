// Package intensity maps a day's status and accuracy to the visual
// intensity scalar the renderer uses as a color alpha.
package intensity

import (
	"math"

	"github.com/okian/centum/internal/domain/model"
)

// Output bounds. The result is always clamped into this range so every
// cell stays visible without saturating.
const (
	MinAlpha = 0.12
	MaxAlpha = 0.95
)

// Per-status base levels and accuracy deltas.
const (
	agiBase         = 0.55
	agiDelta        = 0.40
	evaluatingBase  = 0.35
	evaluatingDelta = 0.35
	pendingBase     = 0.18
	pendingDelta    = 0.25
	missedBase      = 0.30
	missedDelta     = 0.45
)

const accuracyScale = 10

// Alpha derives the intensity scalar for a status and optional accuracy
// (correct out of 10). Higher accuracy raises the intensity for agi,
// evaluating and pending days; for missed days it attenuates the delta
// term instead, so a narrow miss renders softer than a wide one.
func Alpha(status model.DayStatus, correct *int) float64 {
	var base, delta float64
	switch status {
	case model.StatusAGI:
		base, delta = agiBase, agiDelta
	case model.StatusEvaluating:
		base, delta = evaluatingBase, evaluatingDelta
	case model.StatusMissed:
		base, delta = missedBase, missedDelta
	case model.StatusPending:
		base, delta = pendingBase, pendingDelta
	default:
		// Unknown statuses render like pending slots.
		base, delta = pendingBase, pendingDelta
	}

	alpha := base
	if correct != nil {
		ratio := math.Max(0, math.Min(1, float64(*correct)/accuracyScale))
		if status == model.StatusMissed {
			alpha = base + delta*(1-ratio)
		} else {
			alpha = base + delta*ratio
		}
	}

	return math.Max(MinAlpha, math.Min(MaxAlpha, alpha))
}
