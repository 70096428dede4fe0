package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlacademy-labs/sqlacademy/internal/curriculum"
	"github.com/sqlacademy-labs/sqlacademy/internal/fixture"
	"github.com/sqlacademy-labs/sqlacademy/internal/progress"
	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
	"github.com/sqlacademy-labs/sqlacademy/internal/testutil"
)

type fakeRecorder struct {
	calls []string
}

func (f *fakeRecorder) CompleteLesson(learnerID, lessonID string) ([]progress.Achievement, error) {
	f.calls = append(f.calls, learnerID+"/"+lessonID)
	return []progress.Achievement{{ID: "first-query"}}, nil
}

var testLesson = curriculum.Lesson{
	ID:           "l-test",
	ModuleID:     "mod-test",
	Title:        "Teste",
	StarterQuery: "-- escreva sua consulta aqui\n",
	Solution:     "SELECT id, nome FROM clientes ORDER BY id LIMIT 3",
	Hint:         "Use ORDER BY id.",
}

func setupSession(t *testing.T) (*Session, *fakeRecorder) {
	t.Helper()
	logger := testutil.NewTestLogger(t)
	fx := fixture.New(logger)
	ctx := context.Background()
	require.NoError(t, fx.Open(ctx))
	t.Cleanup(func() { _ = fx.Close() })
	require.NoError(t, fx.Initialize(ctx))

	rec := &fakeRecorder{}
	sb := sandbox.New(fx.DB(), logger)
	return New(testLesson, "learner", sb, rec, logger), rec
}

func TestNewSessionStartsIdle(t *testing.T) {
	sess, _ := setupSession(t)

	assert.Equal(t, StateIdle, sess.State())
	assert.Equal(t, testLesson.StarterQuery, sess.Editor())
	assert.Equal(t, 0, sess.Attempts())
	assert.False(t, sess.HintShown())
	assert.False(t, sess.CanRevealSolution())
}

func TestRunCorrectQuery(t *testing.T) {
	sess, rec := setupSession(t)

	out, err := sess.Run(context.Background(), testLesson.Solution)
	require.NoError(t, err)

	assert.Equal(t, StateSuccess, out.State)
	assert.Nil(t, out.Mismatch)
	require.NotNil(t, out.Result)
	assert.Len(t, out.Result.Rows, 3)
	// A correct first try consumes no attempt.
	assert.Equal(t, 0, out.Attempts)
	assert.Equal(t, []string{"learner/l-test"}, rec.calls)
	require.Len(t, out.Unlocked, 1)
	assert.Equal(t, "first-query", out.Unlocked[0].ID)
}

func TestRunWrongQueryCountsAttempt(t *testing.T) {
	sess, rec := setupSession(t)

	out, err := sess.Run(context.Background(), "SELECT id, nome FROM clientes ORDER BY id LIMIT 1")
	require.NoError(t, err)

	assert.Equal(t, StateFailed, out.State)
	assert.Equal(t, 1, out.Attempts)
	require.NotNil(t, out.Mismatch)
	assert.False(t, out.Mismatch.Equivalent)
	assert.Empty(t, rec.calls, "a failed attempt must not record completion")
}

func TestRunBrokenQueryCountsAttempt(t *testing.T) {
	sess, _ := setupSession(t)

	out, err := sess.Run(context.Background(), "SELEC id FROM clientes")
	require.NoError(t, err, "learner errors are outcomes, not Go errors")

	assert.Equal(t, StateErrored, out.State)
	assert.Equal(t, 1, out.Attempts)
	assert.NotEmpty(t, out.ErrorMessage)
	assert.Nil(t, out.Result)
}

func TestRunBrokenSolutionIsAnAuthoringError(t *testing.T) {
	sess, _ := setupSession(t)
	sess.lesson.Solution = "SELECT * FROM tabela_inexistente"

	_, err := sess.Run(context.Background(), "SELECT id FROM clientes")
	require.Error(t, err, "a broken canonical solution must surface as a Go error")
}

func TestRevealSolutionGating(t *testing.T) {
	sess, _ := setupSession(t)
	ctx := context.Background()

	wrong := "SELECT id FROM clientes LIMIT 1"
	for i := 0; i < revealThreshold-1; i++ {
		_, err := sess.Run(ctx, wrong)
		require.NoError(t, err)
		assert.False(t, sess.CanRevealSolution(), "reveal must stay locked at %d attempts", i+1)
	}
	if _, ok := sess.RevealSolution(); ok {
		t.Fatal("solution revealed before the attempt threshold")
	}

	_, err := sess.Run(ctx, wrong)
	require.NoError(t, err)
	assert.True(t, sess.CanRevealSolution())

	solution, ok := sess.RevealSolution()
	require.True(t, ok)
	assert.Equal(t, testLesson.Solution, solution)
}

func TestToggleHint(t *testing.T) {
	sess, _ := setupSession(t)

	assert.True(t, sess.ToggleHint())
	assert.True(t, sess.HintShown())
	assert.False(t, sess.ToggleHint())
	assert.False(t, sess.HintShown())
}

func TestEditorTracksLastQuery(t *testing.T) {
	sess, _ := setupSession(t)

	query := "SELECT nome FROM clientes"
	_, err := sess.Run(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, query, sess.Editor())
}

func TestConcurrentRunsSerializeAttempts(t *testing.T) {
	sess, _ := setupSession(t)

	// A double-clicked run button fires overlapping requests; every wrong
	// run must land in the attempt count exactly once.
	const runs = 8
	var wg sync.WaitGroup
	for range runs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := sess.Run(context.Background(), "SELECT id FROM clientes ORDER BY id LIMIT 1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, runs, sess.Attempts())
	assert.Equal(t, StateFailed, sess.State())
	assert.True(t, sess.CanRevealSolution())
}
