package lessons

import (
	"log/slog"
	"sync"

	"github.com/sqlacademy-labs/sqlacademy/internal/curriculum"
	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
	"github.com/sqlacademy-labs/sqlacademy/internal/session"
)

// registry holds the current lesson session per learner. A learner works
// one lesson at a time; opening a different lesson drops the previous
// session and its attempt state.
type registry struct {
	mu       sync.Mutex
	sandbox  *sandbox.Sandbox
	recorder session.Recorder
	logger   *slog.Logger
	active   map[string]*session.Session
}

func newRegistry(sb *sandbox.Sandbox, rec session.Recorder, logger *slog.Logger) *registry {
	return &registry{
		sandbox:  sb,
		recorder: rec,
		logger:   logger,
		active:   make(map[string]*session.Session),
	}
}

// open returns the learner's session for the given lesson, creating a
// fresh one when none exists or the learner switched lessons.
func (r *registry) open(learnerID string, lesson curriculum.Lesson) *session.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.active[learnerID]; ok && sess.Lesson().ID == lesson.ID {
		return sess
	}
	sess := session.New(lesson, learnerID, r.sandbox, r.recorder, r.logger)
	r.active[learnerID] = sess
	return sess
}

// current returns the learner's session only if it matches the given
// lesson.
func (r *registry) current(learnerID, lessonID string) (*session.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.active[learnerID]
	if !ok || sess.Lesson().ID != lessonID {
		return nil, false
	}
	return sess, true
}
