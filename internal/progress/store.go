// Package progress tracks durable cross-session learning progress: completed
// lessons, XP, derived level, activity streak and achievements.
package progress

import "time"

// XPPerLesson is the fixed reward for completing a lesson, granted exactly
// once per lesson id.
const XPPerLesson = 50

// Unlocked records one achievement unlock. The timestamp is set on first
// unlock and never changes afterwards.
type Unlocked struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// State is the persisted progress of one learner. Level and streak are
// derived on read, never stored.
type State struct {
	CompletedLessons []string   `json:"completed_lessons"`
	XP               int        `json:"xp"`
	Achievements     []Unlocked `json:"achievements"`
	ActivityDates    []string   `json:"activity_dates"` // YYYY-MM-DD, may repeat
}

// Completed returns the completed-lesson set.
func (s *State) Completed() map[string]bool {
	out := make(map[string]bool, len(s.CompletedLessons))
	for _, id := range s.CompletedLessons {
		out[id] = true
	}
	return out
}

// hasAchievement reports whether the achievement id is already unlocked.
func (s *State) hasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Store persists learner state. Load is best-effort: a learner with no saved
// state yields a zero State, not an error.
type Store interface {
	Load(learnerID string) (State, error)
	Save(learnerID string, st State) error
	Close() error
}
