package verify

import (
	"testing"

	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
)

func result(cols []string, rows ...sandbox.Row) *sandbox.Result {
	return &sandbox.Result{Columns: cols, Rows: rows}
}

func TestCompareMatch(t *testing.T) {
	tests := []struct {
		name string
		got  *sandbox.Result
		want *sandbox.Result
	}{
		{
			"identical",
			result([]string{"id", "nome"}, sandbox.Row{"id": 1, "nome": "Ana"}),
			result([]string{"id", "nome"}, sandbox.Row{"id": 1, "nome": "Ana"}),
		},
		{
			"column case and padding ignored",
			result([]string{"ID"}, sandbox.Row{"ID": 1}),
			result([]string{" id "}, sandbox.Row{" id ": 1}),
		},
		{
			"numeric widths fold together",
			result([]string{"total"}, sandbox.Row{"total": int64(10)}),
			result([]string{"total"}, sandbox.Row{"total": float64(10.004)}),
		},
		{
			"strings trimmed",
			result([]string{"nome"}, sandbox.Row{"nome": " Ana "}),
			result([]string{"nome"}, sandbox.Row{"nome": "Ana"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Compare(tt.got, tt.want)
			if !out.Equivalent {
				t.Errorf("Compare() = %+v, want equivalent", out)
			}
			if out.Kind != KindMatch {
				t.Errorf("kind = %q, want %q", out.Kind, KindMatch)
			}
		})
	}
}

func TestCompareBothEmptyIsNotMatch(t *testing.T) {
	// Two empty results never match: an empty expected result would make
	// any broken query pass.
	out := Compare(result([]string{"id"}), result([]string{"id"}))
	if out.Equivalent {
		t.Fatal("two empty results must not be equivalent")
	}
	if out.Kind != KindEmpty {
		t.Errorf("kind = %q, want %q", out.Kind, KindEmpty)
	}
}

func TestCompareOrderSensitive(t *testing.T) {
	got := result([]string{"id"}, sandbox.Row{"id": 2}, sandbox.Row{"id": 1})
	want := result([]string{"id"}, sandbox.Row{"id": 1}, sandbox.Row{"id": 2})

	out := Compare(got, want)
	if out.Equivalent {
		t.Fatal("row order must matter")
	}
	if out.Kind != KindValues {
		t.Errorf("kind = %q, want %q", out.Kind, KindValues)
	}
}

func TestClassifyPriority(t *testing.T) {
	want := result([]string{"id", "nome"},
		sandbox.Row{"id": 1, "nome": "Ana"},
		sandbox.Row{"id": 2, "nome": "Bruno"},
	)

	tests := []struct {
		name string
		got  *sandbox.Result
		kind Kind
	}{
		{
			"empty beats everything",
			result([]string{"outra"}),
			KindEmpty,
		},
		{
			"row count beats columns",
			result([]string{"outra"}, sandbox.Row{"outra": 1}),
			KindRowCount,
		},
		{
			"columns beats values",
			result([]string{"id", "cidade"},
				sandbox.Row{"id": 1, "cidade": "SP"},
				sandbox.Row{"id": 2, "cidade": "RJ"},
			),
			KindColumns,
		},
		{
			"values is the fallback",
			result([]string{"id", "nome"},
				sandbox.Row{"id": 1, "nome": "Ana"},
				sandbox.Row{"id": 2, "nome": "Carla"},
			),
			KindValues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Compare(tt.got, want)
			if out.Equivalent {
				t.Fatal("expected a mismatch")
			}
			if out.Kind != tt.kind {
				t.Errorf("kind = %q, want %q", out.Kind, tt.kind)
			}
			if out.Message == "" {
				t.Error("mismatch must carry a message")
			}
		})
	}
}

func TestColumnOrderDoesNotMatter(t *testing.T) {
	got := result([]string{"nome", "id"}, sandbox.Row{"nome": "Ana", "id": 1})
	want := result([]string{"id", "nome"}, sandbox.Row{"id": 1, "nome": "Ana"})

	out := Compare(got, want)
	if !out.Equivalent {
		t.Errorf("column projection order must not matter, got %+v", out)
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"float rounds", 10.004, 10.0},
		{"float rounds up", 10.006, 10.01},
		{"int folds", int32(7), 7.0},
		{"uint folds", uint8(7), 7.0},
		{"string trims", "  abc ", "abc"},
		{"nil passes through", nil, nil},
		{"bool passes through", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeValue(tt.in); got != tt.want {
				t.Errorf("normalizeValue(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
