package playground

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlacademy-labs/sqlacademy/internal/fixture"
	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
	"github.com/sqlacademy-labs/sqlacademy/internal/testutil"
)

func setupRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := testutil.NewTestLogger(t)
	ctx := context.Background()

	fx := fixture.New(logger)
	require.NoError(t, fx.Open(ctx))
	t.Cleanup(func() { _ = fx.Close() })
	require.NoError(t, fx.Initialize(ctx))

	r := chi.NewRouter()
	SetupRoutes(r, NewHandlers(sandbox.New(fx.DB(), logger), logger))
	return r
}

func query(t *testing.T, r chi.Router, q string) queryResponse {
	t.Helper()
	body, _ := json.Marshal(queryRequest{Query: q})
	req := httptest.NewRequest(http.MethodPost, "/api/playground/query", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp queryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestQueryReturnsData(t *testing.T) {
	r := setupRouter(t)

	resp := query(t, r, "SELECT id, nome FROM clientes ORDER BY id LIMIT 2")
	require.NotNil(t, resp.Data)
	assert.Empty(t, resp.Error)
	assert.Equal(t, []string{"id", "nome"}, resp.Data.Columns)
	assert.Len(t, resp.Data.Rows, 2)
}

func TestQueryErrorIsPartOfTheUnion(t *testing.T) {
	r := setupRouter(t)

	resp := query(t, r, "DROP TABLE clientes")
	assert.Nil(t, resp.Data)
	assert.Equal(t, "Neste ambiente de demonstração, apenas consultas SELECT são permitidas.", resp.Error)

	resp = query(t, r, "SELECT * FROM nada")
	assert.Nil(t, resp.Data)
	assert.Contains(t, resp.Error, "tabela")
}

func TestQueryBadBody(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/playground/query", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
