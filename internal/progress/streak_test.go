package progress

import (
	"testing"
	"time"
)

func TestStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(dateLayout)
	}

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"no activity", nil, 0},
		{"only today", []string{day(0)}, 1},
		{"only yesterday", []string{day(-1)}, 1},
		{"three consecutive ending today", []string{day(0), day(-1), day(-2)}, 3},
		{"three consecutive ending yesterday", []string{day(-1), day(-2), day(-3)}, 3},
		{"latest too old", []string{day(-2), day(-3)}, 0},
		{"gap breaks the count", []string{day(0), day(-2), day(-3)}, 1},
		{"duplicates collapse", []string{day(0), day(0), day(-1)}, 2},
		{"unsorted input", []string{day(-2), day(0), day(-1)}, 3},
		{"malformed entries ignored", []string{day(0), "não-é-data", day(-1)}, 2},
		{"all malformed", []string{"x", "y"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.dates, now); got != tt.want {
				t.Errorf("Streak(%v) = %d, want %d", tt.dates, got, tt.want)
			}
		})
	}
}

func TestStreakIsPureDerivation(t *testing.T) {
	// The same log yields different streaks as "now" moves: nothing about
	// the streak is stored.
	dates := []string{"2026-03-09", "2026-03-08"}

	onTheDay := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	if got := Streak(dates, onTheDay); got != 2 {
		t.Errorf("streak the day after = %d, want 2", got)
	}

	twoDaysLater := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)
	if got := Streak(dates, twoDaysLater); got != 0 {
		t.Errorf("streak two days later = %d, want 0", got)
	}
}
