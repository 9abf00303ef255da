// Package calendar canonicalizes raw calendar-day records into a single
// per-day lookup with a day-ascending sequence view.
package calendar

import (
	"sort"

	"github.com/okian/centum/internal/domain/model"
)

// TotalDays is the number of slots the calendar surface presents. The
// backing data stays sparse; unrecorded days resolve to a placeholder.
const TotalDays = 100

// Board is the canonical calendar state for one snapshot. It is built once
// at snapshot install time and read-only afterwards.
type Board struct {
	byDay map[int]model.DayRecord
	days  []model.DayRecord
}

// Normalize deduplicates and canonicalizes raw day records.
// Records with a day below 1 are malformed feed entries and dropped
// silently. Duplicate days resolve last-seen-wins with respect to input
// order. Normalizing an already-normalized sequence yields the same board.
func Normalize(records []model.DayRecord) *Board {
	byDay := make(map[int]model.DayRecord, len(records))
	for _, r := range records {
		if r.Day < 1 {
			continue
		}
		byDay[r.Day] = r
	}

	days := make([]model.DayRecord, 0, len(byDay))
	for _, r := range byDay {
		days = append(days, r)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	return &Board{byDay: byDay, days: days}
}

// Day returns the canonical record for day n. The second return is false
// when n is outside 1..TotalDays or the feed has not recorded that day.
func (b *Board) Day(n int) (model.DayRecord, bool) {
	if n < 1 || n > TotalDays {
		return model.DayRecord{}, false
	}
	r, ok := b.byDay[n]
	return r, ok
}

// Days returns the recorded records in ascending day order. Callers must
// not mutate the returned slice.
func (b *Board) Days() []model.DayRecord {
	return b.days
}

// Len returns the number of recorded days.
func (b *Board) Len() int {
	return len(b.days)
}

// Placeholder returns the implicit record for an unrecorded day slot: a
// pending-status day carrying no accuracy or note data.
func Placeholder(day int) model.DayRecord {
	return model.DayRecord{Day: day, Status: model.StatusPending}
}
