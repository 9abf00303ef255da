// Package rank orders participants into the leaderboard.
package rank

import (
	"sort"

	"github.com/okian/centum/internal/domain/model"
	"github.com/okian/centum/internal/domain/streak"
	"github.com/okian/centum/internal/domain/types"
)

// Rank orders participants by AGI days descending. The sort is stable:
// ties preserve original input order, so identical input always yields the
// identical ranking. The goal-achieved flag marks participants whose
// longest streak reached the target but never affects the ordering.
func Rank(participants []model.Participant) []types.Entry {
	ordered := make([]model.Participant, len(participants))
	copy(ordered, participants)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AGIDays > ordered[j].AGIDays
	})

	entries := make([]types.Entry, len(ordered))
	for i, p := range ordered {
		entries[i] = types.Entry{
			Rank:          i + 1,
			ID:            p.ID,
			Name:          p.Name,
			Cohort:        string(p.Type),
			AGIDays:       p.AGIDays,
			LongestStreak: p.LongestStreak,
			Achieved:      p.LongestStreak >= streak.GoalTarget,
		}
	}
	return entries
}
