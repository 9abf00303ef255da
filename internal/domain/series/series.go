// Package series aggregates two heterogeneous per-day performance signals
// into chart-ready time series.
package series

import (
	"math"
	"sort"

	"github.com/okian/centum/internal/domain/model"
	"github.com/okian/centum/internal/domain/types"
)

// DefaultTopLines is how many top-ranked individual lines the dashboard
// charts alongside the cohort aggregates.
const DefaultTopLines = 4

// maxValue caps every sample on the shared 0-10 scale.
const maxValue = 10

// Cohort merges direct performance points and challenge-derived points for
// one cohort into a per-day averaged series. Each performance point
// contributes its clamped solved count; each prediction contributes 10 or
// 0 on the day of its challenge. Raw telemetry and challenge outcomes are
// both partial observations of the same daily competence signal, so a day
// value is the mean of all evidence observed for that day. Days with no
// contributions are omitted, not zero-filled. Output is ascending by day
// and rounded to two decimals.
func Cohort(participants []model.Participant, challenges []model.Challenge, cohort model.Cohort) []types.Point {
	sums := make(map[int]float64)
	counts := make(map[int]int)

	byID := make(map[string]model.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
		if p.Type != cohort {
			continue
		}
		for _, pt := range p.Performance {
			sums[pt.Day] += clamp(pt.Solved)
			counts[pt.Day]++
		}
	}

	for _, c := range challenges {
		for _, pred := range c.Predictions {
			p, ok := byID[pred.ParticipantID]
			if !ok || p.Type != cohort {
				continue
			}
			if pred.IsCorrect {
				sums[c.Day] += maxValue
			}
			counts[c.Day]++
		}
	}

	points := make([]types.Point, 0, len(counts))
	for day, n := range counts {
		points = append(points, types.Point{Day: day, Value: round2(sums[day] / float64(n))})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Day < points[j].Day })
	return points
}

// Individual builds one participant's own line from their performance
// points only: sorted by day, clamped to the shared scale, left
// unaggregated.
func Individual(p model.Participant) types.Line {
	points := make([]types.Point, 0, len(p.Performance))
	for _, pt := range p.Performance {
		points = append(points, types.Point{Day: pt.Day, Value: round2(clamp(pt.Solved))})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Day < points[j].Day })
	return types.Line{Label: p.Name, Cohort: string(p.Type), Points: points}
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(maxValue, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
