package learner

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlacademy-labs/sqlacademy/internal/testutil"
)

func TestMiddlewareAssignsID(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	var seen string

	handler := Middleware(store, testutil.NewTestLogger(t))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = ID(r)
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err, "learner id should be a uuid")
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"), "first visit should set the session cookie")
}

func TestMiddlewareKeepsExistingID(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	var ids []string

	handler := Middleware(store, testutil.NewTestLogger(t))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ids = append(ids, ID(r))
		}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Len(t, first.Result().Cookies(), 1)

	// Replay the cookie: the same learner id must come back.
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.AddCookie(first.Result().Cookies()[0])
	handler.ServeHTTP(httptest.NewRecorder(), second)

	require.Len(t, ids, 2)
	assert.Equal(t, ids[0], ids[1])
}

func TestIDWithoutMiddleware(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ID(r))

	r = r.WithContext(WithID(r.Context(), "learner-1"))
	assert.Equal(t, "learner-1", ID(r))
}
