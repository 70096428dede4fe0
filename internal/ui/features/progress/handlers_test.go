package progress

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlacademy-labs/sqlacademy/internal/curriculum"
	progressengine "github.com/sqlacademy-labs/sqlacademy/internal/progress"
	"github.com/sqlacademy-labs/sqlacademy/internal/testutil"
	"github.com/sqlacademy-labs/sqlacademy/internal/ui/learner"
)

func setupRouter(t *testing.T) (chi.Router, *progressengine.Engine) {
	t.Helper()
	store := progressengine.NewSQLiteStore()
	require.NoError(t, store.Open(":memory:"))
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate())

	engine := progressengine.NewEngine(store, curriculum.Modules(), testutil.NewTestLogger(t))

	r := chi.NewRouter()
	SetupRoutes(r, NewHandlers(engine))
	return r, engine
}

func fetchSummary(t *testing.T, r chi.Router, learnerID string) progressengine.Summary {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/progress", nil)
	req = req.WithContext(learner.WithID(req.Context(), learnerID))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var s progressengine.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	return s
}

func TestSummaryForNewLearner(t *testing.T) {
	r, _ := setupRouter(t)

	s := fetchSummary(t, r, "novato")
	assert.Equal(t, 0, s.XP)
	assert.Equal(t, 1, s.Level)
	assert.NotEmpty(t, s.LevelTitle)
	assert.Equal(t, 0, s.Streak)
	assert.Empty(t, s.CompletedLessons)
	assert.NotEmpty(t, s.Achievements, "the full catalog is always listed")
	for _, a := range s.Achievements {
		assert.False(t, a.Unlocked)
	}
}

func TestSummaryAfterCompletion(t *testing.T) {
	r, engine := setupRouter(t)

	lesson := curriculum.Modules()[0].Lessons[0]
	_, err := engine.CompleteLesson("aluno", lesson.ID)
	require.NoError(t, err)

	s := fetchSummary(t, r, "aluno")
	assert.Equal(t, progressengine.XPPerLesson, s.XP)
	assert.Equal(t, []string{lesson.ID}, s.CompletedLessons)
	assert.Equal(t, 1, s.Streak, "completing today starts a one-day streak")

	unlocked := false
	for _, a := range s.Achievements {
		if a.ID == "first-query" && a.Unlocked {
			unlocked = true
		}
	}
	assert.True(t, unlocked)
}
