package treepath

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterMatch(t *testing.T) {
	t.Parallel()

	stateCA := Filter{{Key: "state", Value: "CA"}}

	tests := []struct {
		name   string
		filter Filter
		value  any
		want   bool
	}{
		{
			name:   "matching string",
			filter: stateCA,
			value:  map[string]any{"state": "CA", "city": "LA"},
			want:   true,
		},
		{
			name:   "different string",
			filter: stateCA,
			value:  map[string]any{"state": "TX"},
			want:   false,
		},
		{
			name:   "missing key",
			filter: stateCA,
			value:  map[string]any{"city": "LA"},
			want:   false,
		},
		{
			name:   "null value",
			filter: stateCA,
			value:  map[string]any{"state": nil},
			want:   false,
		},
		{
			name:   "not a mapping",
			filter: stateCA,
			value:  "CA",
			want:   false,
		},
		{
			name:   "all clauses must hold",
			filter: Filter{{Key: "state", Value: "CA"}, {Key: "zip", Value: "94599"}},
			value:  map[string]any{"state": "CA", "zip": "94105"},
			want:   false,
		},
		{
			name:   "json number",
			filter: Filter{{Key: "age", Value: "26"}},
			value:  map[string]any{"age": json.Number("26")},
			want:   true,
		},
		{
			name:   "int",
			filter: Filter{{Key: "age", Value: "26"}},
			value:  map[string]any{"age": 26},
			want:   true,
		},
		{
			name:   "uint64",
			filter: Filter{{Key: "age", Value: "26"}},
			value:  map[string]any{"age": uint64(26)},
			want:   true,
		},
		{
			name:   "whole float",
			filter: Filter{{Key: "age", Value: "26"}},
			value:  map[string]any{"age": 26.0},
			want:   true,
		},
		{
			name:   "fractional float",
			filter: Filter{{Key: "ratio", Value: "0.25"}},
			value:  map[string]any{"ratio": 0.25},
			want:   true,
		},
		{
			name:   "bool",
			filter: Filter{{Key: "active", Value: "true"}},
			value:  map[string]any{"active": true},
			want:   true,
		},
		{
			name:   "container value",
			filter: Filter{{Key: "tags", Value: "[]"}},
			value:  map[string]any{"tags": []any{}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.Match(tt.value); got != tt.want {
				t.Fatalf("%v.Match(%v) = %v, want %v", tt.filter, tt.value, got, tt.want)
			}
		})
	}
}

func TestFilterMatchesAll(t *testing.T) {
	t.Parallel()

	seq := []any{
		map[string]any{"state": "CA", "city": "LA"},
		"CA",
		map[string]any{"state": "TX", "city": "Irving"},
		map[string]any{"state": "CA", "city": "San Ramon"},
	}

	got := Filter{{Key: "state", Value: "CA"}}.matches(seq)
	if diff := cmp.Diff([]int{0, 3}, got); diff != "" {
		t.Fatalf("matches() mismatch (-want +got):\n%s", diff)
	}

	first, ok := Filter{{Key: "state", Value: "CA"}}.first(seq)
	if !ok {
		t.Fatal("first() found no match")
	}
	if diff := cmp.Diff(seq[0], first); diff != "" {
		t.Fatalf("first() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveOne(t *testing.T) {
	t.Parallel()

	seq := []any{"a", "b"}

	tests := []struct {
		name   string
		sel    Selector
		want   any
		wantOK bool
	}{
		{name: "first", sel: FirstElement{}, want: "a", wantOK: true},
		{name: "index in range", sel: Index(1), want: "b", wantOK: true},
		{name: "index out of range", sel: Index(2), want: nil, wantOK: false},
		{name: "filter is not single", sel: Filter{{Key: "k", Value: "v"}}, want: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := resolveOne(seq, tt.sel)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("resolveOne(%v) = %v, %v, want %v, %v", tt.sel, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if _, ok := resolveOne(nil, FirstElement{}); ok {
		t.Fatal("resolveOne() on an empty sequence should find nothing")
	}
}
