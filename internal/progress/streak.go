package progress

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// Streak counts consecutive calendar days of activity ending today or
// yesterday. It is recomputed from the activity-date log on every call,
// never cached, because "today" moves on its own.
//
// Rules: duplicate dates collapse; if the most recent activity is older than
// yesterday the streak is 0; otherwise a gap of exactly one day between
// entries continues the count and any larger gap stops it.
func Streak(activityDates []string, now time.Time) int {
	if len(activityDates) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(activityDates))
	days := make([]time.Time, 0, len(activityDates))
	for _, raw := range activityDates {
		if seen[raw] {
			continue
		}
		seen[raw] = true
		d, err := time.ParseInLocation(dateLayout, raw, now.Location())
		if err != nil {
			continue // malformed entries are ignored
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	latest := days[0]
	if !latest.Equal(today) && !latest.Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, -1).Equal(days[i]) {
			streak++
			continue
		}
		break
	}
	return streak
}
