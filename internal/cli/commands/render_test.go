package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
)

func sampleResult() *sandbox.Result {
	return &sandbox.Result{
		Columns: []string{"id", "nome"},
		Rows: []sandbox.Row{
			{"id": 1, "nome": "Ana"},
			{"id": 2, "nome": "Bruno, o Breve"},
		},
	}
}

func TestRenderTable(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, renderResult(&sb, sampleResult(), "table"))

	out := sb.String()
	assert.Contains(t, out, "Ana")
	// StyleLight upper-cases headers.
	assert.Contains(t, out, "NOME")
	assert.Contains(t, out, "(2 rows)")
}

func TestRenderTableEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, renderResult(&sb, &sandbox.Result{Columns: []string{"id"}}, "table"))
	assert.Contains(t, sb.String(), "(0 rows)")
}

func TestRenderJSON(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, renderResult(&sb, sampleResult(), "json"))

	assert.Contains(t, sb.String(), `"nome": "Ana"`)
}

func TestRenderCSV(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, renderResult(&sb, sampleResult(), "csv"))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,nome", lines[0])
	// Values containing commas are quoted.
	assert.Contains(t, lines[2], `"Bruno, o Breve"`)
}

func TestRenderMarkdown(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, renderResult(&sb, sampleResult(), "md"))

	out := sb.String()
	assert.Contains(t, out, "| id | nome |")
	assert.Contains(t, out, "| --- | --- |")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "NULL", formatValue(nil))
	assert.Equal(t, "42", formatValue(42))
	assert.Equal(t, "abc", formatValue("abc"))
}

func TestEscapeCSV(t *testing.T) {
	assert.Equal(t, "plain", escapeCSV("plain"))
	assert.Equal(t, `"a,b"`, escapeCSV("a,b"))
	assert.Equal(t, `"diz ""oi"""`, escapeCSV(`diz "oi"`))
}
