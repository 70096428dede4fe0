// Package verify decides whether a learner's result set is an acceptable
// match for the canonical solution's result set, and classifies the mismatch
// when it is not.
//
// Comparison is order-sensitive on purpose: a logically-correct query that
// produces rows in a different order is reported as a mismatch. Sorting
// before comparing would change which existing lessons pass.
package verify

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
)

// Kind classifies why two result sets were judged different.
type Kind string

const (
	// KindMatch means the results are equivalent.
	KindMatch Kind = "match"
	// KindEmpty means the learner result has no rows.
	KindEmpty Kind = "empty"
	// KindRowCount means the row counts differ.
	KindRowCount Kind = "row_count"
	// KindColumns means the selected column names differ.
	KindColumns Kind = "columns"
	// KindValues means counts and columns agree but values or ordering do not.
	KindValues Kind = "values"
)

// Outcome is the verdict for one comparison.
type Outcome struct {
	Equivalent bool   `json:"equivalent"`
	Kind       Kind   `json:"kind"`
	Message    string `json:"message,omitempty"`
}

// Compare normalizes both result sets and checks deep, order-sensitive
// equality. got is the learner's result; want is the canonical solution's.
func Compare(got, want *sandbox.Result) Outcome {
	gotRows := normalizeRows(got)
	wantRows := normalizeRows(want)

	if len(gotRows) == len(wantRows) && len(gotRows) > 0 && reflect.DeepEqual(gotRows, wantRows) {
		return Outcome{Equivalent: true, Kind: KindMatch}
	}

	return classify(got, want, gotRows, wantRows)
}

// classify produces one mismatch message, in priority order.
func classify(got, want *sandbox.Result, gotRows, wantRows []map[string]any) Outcome {
	if len(gotRows) == 0 {
		return Outcome{
			Kind:    KindEmpty,
			Message: "Sua consulta não retornou nenhuma linha. Verifique os filtros e os nomes das tabelas.",
		}
	}

	if len(gotRows) != len(wantRows) {
		return Outcome{
			Kind: KindRowCount,
			Message: fmt.Sprintf("Sua consulta retornou %d linha(s), mas o esperado são %d.",
				len(gotRows), len(wantRows)),
		}
	}

	if !sameColumnSet(got.Columns, want.Columns) {
		return Outcome{
			Kind:    KindColumns,
			Message: "As colunas não correspondem ao esperado. Verifique as colunas selecionadas e seus aliases.",
		}
	}

	return Outcome{
		Kind:    KindValues,
		Message: "Os valores ou a ordem das linhas não correspondem ao esperado.",
	}
}

// normalizeRows applies the equivalence normalization to every row: column
// names are lower-cased and trimmed, numeric values rounded to 2 decimal
// places, strings trimmed. Other types pass through unchanged.
func normalizeRows(res *sandbox.Result) []map[string]any {
	if res == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(res.Rows))
	for _, row := range res.Rows {
		norm := make(map[string]any, len(row))
		for col, val := range row {
			norm[strings.ToLower(strings.TrimSpace(col))] = normalizeValue(val)
		}
		out = append(out, norm)
	}
	return out
}

// normalizeValue folds all numeric widths into a float64 rounded to 2
// decimal places so that 10.004 and 10.00 compare equal, and DECIMAL vs
// INTEGER representations of the same quantity do too.
func normalizeValue(v any) any {
	switch n := v.(type) {
	case float64:
		return round2(n)
	case float32:
		return round2(float64(n))
	case int:
		return round2(float64(n))
	case int8:
		return round2(float64(n))
	case int16:
		return round2(float64(n))
	case int32:
		return round2(float64(n))
	case int64:
		return round2(float64(n))
	case uint:
		return round2(float64(n))
	case uint8:
		return round2(float64(n))
	case uint16:
		return round2(float64(n))
	case uint32:
		return round2(float64(n))
	case uint64:
		return round2(float64(n))
	case string:
		return strings.TrimSpace(n)
	case interface{ Float64() float64 }:
		// DECIMAL columns surface as a driver type carrying precision.
		return round2(n.Float64())
	default:
		return v
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sameColumnSet compares column names as sorted, lower-cased sets.
func sameColumnSet(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	g := lowerSorted(got)
	w := lowerSorted(want)
	for i := range g {
		if g[i] != w[i] {
			return false
		}
	}
	return true
}

func lowerSorted(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = strings.ToLower(strings.TrimSpace(c))
	}
	sort.Strings(out)
	return out
}
