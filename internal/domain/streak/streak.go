// Package streak computes consecutive-success runs and goal progress from
// the canonical day sequence.
package streak

import (
	"github.com/okian/centum/internal/domain/model"
	"github.com/okian/centum/internal/domain/types"
)

// GoalTarget is the number of consecutive agi-status days that completes
// the campaign.
const GoalTarget = 100

// Result holds the derived run lengths. Longest is always >= Current.
type Result struct {
	Current int
	Longest int
}

// Compute scans the day-ascending canonical sequence and derives the
// current and longest agi run. Only an explicitly recorded non-agi day
// breaks a run; gaps in day numbers do not, because the canonical sequence
// contains only days that have been recorded.
func Compute(days []model.DayRecord) Result {
	var res Result
	run := 0
	for _, d := range days {
		if d.Status == model.StatusAGI {
			run++
			if run > res.Longest {
				res.Longest = run
			}
		} else {
			run = 0
		}
	}
	// The trailing run is the current streak; zero when the last recorded
	// day is not agi.
	res.Current = run
	return res
}

// Progress derives the goal-completion view from a streak result.
// Achieved keys off the current run; Best uses the larger of the two runs
// so the displayed progress never regresses when a streak breaks at the
// goal boundary.
func Progress(r Result) types.GoalProgress {
	best := r.Longest
	if r.Current > best {
		best = r.Current
	}

	capped := r.Longest
	if capped > GoalTarget {
		capped = GoalTarget
	}

	remaining := GoalTarget - best
	if remaining < 0 {
		remaining = 0
	}

	return types.GoalProgress{
		Streak:    types.Streak{Current: r.Current, Longest: r.Longest},
		Best:      best,
		Target:    GoalTarget,
		Fraction:  float64(capped) / float64(GoalTarget),
		Achieved:  r.Current >= GoalTarget,
		Remaining: remaining,
	}
}
