// Package lessons serves the curriculum and the per-lesson attempt
// workflow.
package lessons

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sqlacademy-labs/sqlacademy/internal/curriculum"
	"github.com/sqlacademy-labs/sqlacademy/internal/progress"
	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
	"github.com/sqlacademy-labs/sqlacademy/internal/session"
	"github.com/sqlacademy-labs/sqlacademy/internal/ui/features/common"
	"github.com/sqlacademy-labs/sqlacademy/internal/ui/learner"
)

// Handlers serves the lesson endpoints.
type Handlers struct {
	engine   *progress.Engine
	registry *registry
	logger   *slog.Logger
}

// NewHandlers creates the lesson handlers.
func NewHandlers(sb *sandbox.Sandbox, engine *progress.Engine, logger *slog.Logger) *Handlers {
	return &Handlers{
		engine:   engine,
		registry: newRegistry(sb, engine, logger),
		logger:   logger,
	}
}

// Curriculum returns all modules with per-learner locking and completion.
func (h *Handlers) Curriculum(w http.ResponseWriter, r *http.Request) {
	learnerID := learner.ID(r)
	completed := h.engine.CompletedSet(learnerID)

	modules := curriculum.Modules()
	views := make([]moduleView, 0, len(modules))
	for i, m := range modules {
		mv := moduleView{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Level:       string(m.Level),
			Icon:        m.Icon,
			Locked:      !curriculum.IsModuleUnlocked(i, completed),
			Progress:    curriculum.ModuleProgress(m.ID, completed),
			Lessons:     make([]lessonView, 0, len(m.Lessons)),
		}
		for _, l := range m.Lessons {
			mv.Lessons = append(mv.Lessons, lessonView{
				ID:        l.ID,
				Title:     l.Title,
				Order:     l.Order,
				Completed: completed[l.ID],
			})
		}
		views = append(views, mv)
	}

	common.JSON(w, http.StatusOK, curriculumResponse{Modules: views})
}

// Open returns one lesson and (re)opens the learner's session for it.
func (h *Handlers) Open(w http.ResponseWriter, r *http.Request) {
	lesson, ok := h.findLesson(w, r)
	if !ok {
		return
	}

	learnerID := learner.ID(r)
	sess := h.registry.open(learnerID, *lesson)
	completed := h.engine.CompletedSet(learnerID)

	detail := lessonDetail{
		ID:          lesson.ID,
		ModuleID:    lesson.ModuleID,
		Title:       lesson.Title,
		Description: lesson.Description,
		Content:     lesson.Content,
		Editor:      sess.Editor(),
		Order:       lesson.Order,
		State:       string(sess.State()),
		Attempts:    sess.Attempts(),
		HintShown:   sess.HintShown(),
		CanReveal:   sess.CanRevealSolution(),
		Completed:   completed[lesson.ID],
	}
	if lesson.Quiz.Question != "" {
		quiz := lesson.Quiz
		detail.Quiz = &quiz
	}

	common.JSON(w, http.StatusOK, detail)
}

// Attempt runs the learner's query through the verification pipeline.
func (h *Handlers) Attempt(w http.ResponseWriter, r *http.Request) {
	lesson, ok := h.findLesson(w, r)
	if !ok {
		return
	}

	var req attemptRequest
	if !common.Decode(w, r, &req) {
		return
	}

	learnerID := learner.ID(r)
	sess := h.registry.open(learnerID, *lesson)

	outcome, err := sess.Run(r.Context(), req.Query)
	if err != nil {
		h.logger.Error("canonical solution failed", "lesson", lesson.ID, "error", err)
		common.Error(w, http.StatusInternalServerError, "erro interno ao verificar a consulta")
		return
	}

	common.JSON(w, http.StatusOK, outcome)
}

// Hint toggles hint visibility for the current session.
func (h *Handlers) Hint(w http.ResponseWriter, r *http.Request) {
	lesson, ok := h.findLesson(w, r)
	if !ok {
		return
	}

	sess := h.registry.open(learner.ID(r), *lesson)
	resp := hintResponse{Shown: sess.ToggleHint()}
	if resp.Shown {
		resp.Hint = lesson.Hint
	}
	common.JSON(w, http.StatusOK, resp)
}

// Solution reveals the canonical solution once enough attempts were made.
func (h *Handlers) Solution(w http.ResponseWriter, r *http.Request) {
	lesson, ok := h.findLesson(w, r)
	if !ok {
		return
	}

	sess, ok := h.registry.current(learner.ID(r), lesson.ID)
	if !ok {
		common.Error(w, http.StatusConflict, "nenhuma sessão ativa para esta lição")
		return
	}

	solution, ok := sess.RevealSolution()
	if !ok {
		common.Error(w, http.StatusForbidden, "a solução só é liberada após três tentativas")
		return
	}
	common.JSON(w, http.StatusOK, solutionResponse{Solution: solution})
}

func (h *Handlers) findLesson(w http.ResponseWriter, r *http.Request) (*curriculum.Lesson, bool) {
	moduleID := chi.URLParam(r, "moduleID")
	lessonID := chi.URLParam(r, "lessonID")

	lesson, ok := curriculum.FindLesson(moduleID, lessonID)
	if !ok {
		common.Error(w, http.StatusNotFound, "lição não encontrada")
		return nil, false
	}
	return lesson, true
}

var _ session.Recorder = (*progress.Engine)(nil)
