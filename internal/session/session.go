// Package session coordinates one lesson visit: running learner attempts
// through the sandbox, verifying them against the canonical solution and
// triggering completion side effects.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sqlacademy-labs/sqlacademy/internal/curriculum"
	"github.com/sqlacademy-labs/sqlacademy/internal/progress"
	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
	"github.com/sqlacademy-labs/sqlacademy/internal/verify"
)

// revealThreshold is the attempt count at which the solution may be shown.
const revealThreshold = 3

// State is the attempt state machine: Idle → Running → {Success, Failed,
// Errored}, returning to Idle before the next run.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateSuccess State = "success"
	StateFailed  State = "failed"
	StateErrored State = "errored"
)

// Recorder receives completion side effects. Satisfied by
// *progress.Engine.
type Recorder interface {
	CompleteLesson(learnerID, lessonID string) ([]progress.Achievement, error)
}

// Session is the ephemeral per-lesson-visit state. It is created when a
// lesson is opened and discarded when navigating away; nothing here is
// persisted. Handlers for the same learner run concurrently, so the mutex
// serializes attempts and keeps the attempt count consistent.
type Session struct {
	lesson    curriculum.Lesson
	learnerID string
	sandbox   *sandbox.Sandbox
	recorder  Recorder
	logger    *slog.Logger

	mu         sync.Mutex
	state      State
	editor     string
	attempts   int
	hintShown  bool
	lastResult *sandbox.Result
	lastError  string
}

// Outcome reports one run to the caller.
type Outcome struct {
	State        State                  `json:"state"`
	Result       *sandbox.Result        `json:"result,omitempty"`
	ErrorMessage string                 `json:"error,omitempty"`
	Mismatch     *verify.Outcome        `json:"mismatch,omitempty"`
	Attempts     int                    `json:"attempts"`
	CanReveal    bool                   `json:"can_reveal_solution"`
	Unlocked     []progress.Achievement `json:"unlocked_achievements,omitempty"`
}

// New opens a session for one lesson with the editor pre-filled with the
// starter query.
func New(lesson curriculum.Lesson, learnerID string, sb *sandbox.Sandbox, rec Recorder, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		lesson:    lesson,
		learnerID: learnerID,
		sandbox:   sb,
		recorder:  rec,
		logger:    logger,
		state:     StateIdle,
		editor:    lesson.StarterQuery,
	}
}

// Run executes one verification attempt with the given query text. Runs on
// the same session are serialized; a second request arriving mid-run waits
// for the first to finish.
func (s *Session) Run(ctx context.Context, queryText string) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateRunning
	s.editor = queryText
	s.lastResult = nil
	s.lastError = ""

	learnerResult, err := s.sandbox.Execute(ctx, queryText)
	if err != nil {
		var qerr *sandbox.QueryError
		if !errors.As(err, &qerr) {
			qerr = &sandbox.QueryError{Kind: sandbox.KindExecution, Message: err.Error()}
		}
		s.state = StateErrored
		s.attempts++
		s.lastError = qerr.Message
		return s.outcome(), nil
	}
	s.lastResult = learnerResult

	// The canonical solution is assumed valid; a failure here is an
	// authoring defect, not a learner-facing case.
	solutionResult, err := s.sandbox.Execute(ctx, s.lesson.Solution)
	if err != nil {
		s.state = StateErrored
		s.logger.Error("canonical solution failed to execute",
			"lesson", s.lesson.ID, "error", err)
		return Outcome{}, fmt.Errorf("canonical solution for lesson %s failed: %w", s.lesson.ID, err)
	}

	verdict := verify.Compare(learnerResult, solutionResult)
	if verdict.Equivalent {
		s.state = StateSuccess
		out := s.outcome()
		if s.recorder != nil {
			unlocked, err := s.recorder.CompleteLesson(s.learnerID, s.lesson.ID)
			if err != nil {
				return Outcome{}, fmt.Errorf("failed to record completion: %w", err)
			}
			out.Unlocked = unlocked
		}
		return out, nil
	}

	s.state = StateFailed
	s.attempts++
	out := s.outcome()
	out.Mismatch = &verdict
	return out, nil
}

// outcome is called with s.mu held.
func (s *Session) outcome() Outcome {
	return Outcome{
		State:        s.state,
		Result:       s.lastResult,
		ErrorMessage: s.lastError,
		Attempts:     s.attempts,
		CanReveal:    s.attempts >= revealThreshold,
	}
}

// ToggleHint flips hint visibility and returns the new value. Hint
// visibility is independent of the attempt state machine.
func (s *Session) ToggleHint() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hintShown = !s.hintShown
	return s.hintShown
}

// HintShown reports whether the hint is currently visible.
func (s *Session) HintShown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hintShown
}

// CanRevealSolution reports whether enough failed attempts have accumulated
// to offer the solution.
func (s *Session) CanRevealSolution() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts >= revealThreshold
}

// RevealSolution overwrites the editor with the canonical solution text. It
// does not mark the lesson complete; only a matching Run does. Returns
// false while the attempt threshold has not been reached.
func (s *Session) RevealSolution() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempts < revealThreshold {
		return "", false
	}
	s.editor = s.lesson.Solution
	return s.editor, true
}

// Editor returns the current editor text.
func (s *Session) Editor() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor
}

// State returns the current attempt state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Attempts returns the failed/errored attempt count.
func (s *Session) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// Lesson returns the lesson this session is attached to.
func (s *Session) Lesson() curriculum.Lesson { return s.lesson }
