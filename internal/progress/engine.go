package progress

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sqlacademy-labs/sqlacademy/internal/curriculum"
)

// Engine tracks XP, streaks and achievements per learner on top of a Store.
//
// All mutation happens under one mutex: handlers may run on concurrent OS
// threads and the idempotence invariants depend on serialized access.
type Engine struct {
	mu      sync.Mutex
	store   Store
	modules []curriculum.Module
	catalog []Achievement
	logger  *slog.Logger
	now     func() time.Time

	cache map[string]*State
}

// NewEngine builds an engine over the given store and curriculum.
func NewEngine(store Store, modules []curriculum.Module, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:   store,
		modules: modules,
		catalog: buildCatalog(modules),
		logger:  logger,
		now:     time.Now,
		cache:   make(map[string]*State),
	}
}

// state returns the cached state for a learner, loading it from the store on
// first access. Load failures degrade to an empty state: persisted values
// are best-effort by contract.
func (e *Engine) state(learnerID string) *State {
	if st, ok := e.cache[learnerID]; ok {
		return st
	}
	st, err := e.store.Load(learnerID)
	if err != nil {
		e.logger.Warn("failed to load learner state, starting empty",
			"learner", learnerID, "error", err)
		st = State{}
	}
	e.cache[learnerID] = &st
	return &st
}

// CompleteLesson records a lesson completion. It is idempotent: completing
// an already-completed lesson changes nothing and unlocks nothing. On a
// first completion it updates the completed set, activity log and XP, then
// evaluates every achievement predicate against the already-updated state,
// all before returning. Newly unlocked achievements are returned.
func (e *Engine) CompleteLesson(learnerID, lessonID string) ([]Achievement, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.state(learnerID)
	if st.Completed()[lessonID] {
		return nil, nil
	}

	// Keep the cached state consistent with the store: if Save fails the
	// mutation is rolled back so a retry is not a silent no-op.
	snapshot := *st

	now := e.now()
	st.CompletedLessons = append(st.CompletedLessons, lessonID)
	st.ActivityDates = append(st.ActivityDates, now.Format(dateLayout))
	st.XP += XPPerLesson

	unlocked := e.evaluateAchievements(st, now)

	if err := e.store.Save(learnerID, *st); err != nil {
		*st = snapshot
		return nil, fmt.Errorf("failed to persist progress: %w", err)
	}

	e.logger.Info("lesson completed",
		"learner", learnerID, "lesson", lessonID, "xp", st.XP, "level", Level(st.XP))
	return unlocked, nil
}

// evaluateAchievements runs every predicate and unlocks the ones newly
// satisfied. Already-unlocked achievements are left untouched, preserving
// their original timestamps. Caller holds the mutex.
func (e *Engine) evaluateAchievements(st *State, now time.Time) []Achievement {
	view := progressView{
		completed:    st.Completed(),
		totalLessons: totalLessons(e.modules),
		streak:       Streak(st.ActivityDates, now),
	}

	var unlocked []Achievement
	for _, a := range e.catalog {
		if st.hasAchievement(a.ID) || !a.predicate(view) {
			continue
		}
		st.Achievements = append(st.Achievements, Unlocked{ID: a.ID, UnlockedAt: now})
		unlocked = append(unlocked, a)
		e.logger.Info("achievement unlocked", "achievement", a.ID)
	}
	return unlocked
}

// CompletedSet returns the learner's completed-lesson set.
func (e *Engine) CompletedSet(learnerID string) map[string]bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state(learnerID).Completed()
}

// AchievementInfo pairs a catalog entry with its unlock state for display.
type AchievementInfo struct {
	Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// Summary is the derived progress snapshot served to the dashboard.
type Summary struct {
	XP                  int               `json:"xp"`
	Level               int               `json:"level"`
	LevelTitle          string            `json:"level_title"`
	NextLevelXP         int               `json:"next_level_xp"`
	ProgressToNextLevel float64           `json:"progress_to_next_level"`
	Streak              int               `json:"streak"`
	CompletedLessons    []string          `json:"completed_lessons"`
	Achievements        []AchievementInfo `json:"achievements"`
}

// Summarize derives the full progress snapshot for a learner. Level and
// streak are computed here, on read, from the persisted state.
func (e *Engine) Summarize(learnerID string) Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.state(learnerID)
	level := Level(st.XP)
	nextXP, percent := levelProgress(st.XP)

	achievements := make([]AchievementInfo, 0, len(e.catalog))
	for _, a := range e.catalog {
		info := AchievementInfo{Achievement: a}
		for _, u := range st.Achievements {
			if u.ID == a.ID {
				info.Unlocked = true
				t := u.UnlockedAt
				info.UnlockedAt = &t
				break
			}
		}
		achievements = append(achievements, info)
	}

	completed := make([]string, len(st.CompletedLessons))
	copy(completed, st.CompletedLessons)

	return Summary{
		XP:                  st.XP,
		Level:               level,
		LevelTitle:          LevelTitle(level),
		NextLevelXP:         nextXP,
		ProgressToNextLevel: percent,
		Streak:              Streak(st.ActivityDates, e.now()),
		CompletedLessons:    completed,
		Achievements:        achievements,
	}
}

func totalLessons(modules []curriculum.Module) int {
	n := 0
	for _, m := range modules {
		n += len(m.Lessons)
	}
	return n
}
