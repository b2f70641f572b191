package el

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"
)

func TestTruthy(t *testing.T) {
	var nilMap map[string]any
	var nilPtr *int
	tests := []struct {
		v    any
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0, false},
		{int64(-1), true},
		{uint8(0), false},
		{0.0, false},
		{math.NaN(), false},
		{0.1, true},
		{"", false},
		{"0", true},
		{nilMap, false},
		{nilPtr, false},
		{map[string]any{}, true},
		{[]any{}, true},
		{struct{}{}, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T(%v)", tt.v, tt.v), func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	if got := Select(true, "yes", "no"); got != "yes" {
		t.Errorf("Select(true) = %v", got)
	}
	if got := Select(0, "yes", "no"); got != "no" {
		t.Errorf("Select(0) = %v", got)
	}
	if got := Select("", "yes"); got != "" {
		t.Errorf("Select(\"\") without false branch = %v, want empty string", got)
	}
}

func TestDispatch(t *testing.T) {
	cases := map[string]any{"a": "A", "1": "one", "default": "D"}
	tests := []struct {
		key  any
		want any
	}{
		{"a", "A"},
		{1, "one"},
		{"zzz", "D"},
	}
	for _, tt := range tests {
		if got := Dispatch(tt.key, cases); got != tt.want {
			t.Errorf("Dispatch(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestDispatch_NoDefault(t *testing.T) {
	logs := observe(t)

	if got := Dispatch("x", map[string]any{"a": 1}); got != "" {
		t.Errorf("Dispatch() = %v, want empty string", got)
	}
	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if got := warnings[0].ContextMap()["error"]; got != ErrNoCase.Error() {
		t.Errorf("error field = %v, want %v", got, ErrNoCase)
	}
}

type todo struct {
	Title string
	Done  bool
	Rank  int
}

func TestFilterBy(t *testing.T) {
	maps := []map[string]any{
		{"s": "a", "n": 1.0},
		{"s": "b", "n": 2.0},
		{"s": "a", "n": 3.0},
	}
	todos := []todo{
		{Title: "x", Done: true, Rank: 1},
		{Title: "y", Done: false, Rank: 2},
		{Title: "z", Done: true, Rank: 3},
	}

	tests := []struct {
		name  string
		items any
		cond  any
		want  []any
	}{
		{
			name:  "map condition on maps",
			items: maps,
			cond:  map[string]any{"s": "a"},
			want:  []any{maps[0], maps[2]},
		},
		{
			name:  "numbers compare by value",
			items: maps,
			cond:  map[string]any{"n": 2},
			want:  []any{maps[1]},
		},
		{
			name:  "map condition on struct fields",
			items: todos,
			cond:  map[string]any{"Done": true},
			want:  []any{todos[0], todos[2]},
		},
		{
			name:  "field names are case-insensitive",
			items: todos,
			cond:  map[string]string{"title": "y"},
			want:  []any{todos[1]},
		},
		{
			name:  "strict equality",
			items: maps,
			cond:  map[string]any{"n": "1"},
			want:  []any{},
		},
		{
			name:  "predicate",
			items: []int{1, 2, 3, 4},
			cond:  func(v any) bool { return v.(int)%2 == 0 },
			want:  []any{2, 4},
		},
		{
			name:  "indexed predicate",
			items: []string{"a", "b", "c"},
			cond:  func(_ any, i int) bool { return i > 0 },
			want:  []any{"b", "c"},
		},
		{
			name:  "unsupported condition",
			items: []int{1},
			cond:  "nope",
			want:  []any{},
		},
		{
			name:  "not a slice",
			items: "abc",
			cond:  func(any) bool { return true },
			want:  []any{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBy(tt.items, tt.cond)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterBy() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type pairs []string

func (p pairs) Range(fn func(key string, value any) bool) {
	for _, k := range p {
		if !fn(k, k+"!") {
			return
		}
	}
}

func TestIterate(t *testing.T) {
	describe := func(v, k any, i int) any { return fmt.Sprintf("%v:%v:%d", k, v, i) }

	tests := []struct {
		name  string
		data  any
		bound []any
		want  any
	}{
		{
			name: "slice joins results",
			data: []string{"a", "b"},
			want: "0:a:01:b:1",
		},
		{
			name: "map in sorted key order",
			data: map[string]int{"b": 2, "a": 1, "c": 3},
			want: []any{"a:1:0", "b:2:1", "c:3:2"},
		},
		{
			name:  "integer range",
			data:  2,
			bound: []any{5},
			want:  []any{"0:2:0", "1:3:1", "2:4:2"},
		},
		{
			name:  "float range",
			data:  0.5,
			bound: []any{2.0},
			want:  []any{"0:0.5:0", "1:1.5:1"},
		},
		{
			name:  "empty range",
			data:  5,
			bound: []any{5},
			want:  []any{},
		},
		{
			name:  "unsigned range",
			data:  uint8(1),
			bound: []any{uint64(3)},
			want:  []any{"0:1:0", "1:2:1"},
		},
		{
			name:  "unsigned bounds beyond int",
			data:  uint64(math.MaxUint64 - 2),
			bound: []any{uint64(math.MaxUint64)},
			want:  []any{},
		},
		{
			name: "number without bound",
			data: 3,
			want: []any{},
		},
		{
			name: "string unchanged",
			data: "hello",
			want: "hello",
		},
		{
			name: "ranger",
			data: pairs{"x", "y"},
			want: []any{"x:x!:0", "y:y!:1"},
		},
		{
			name: "struct",
			data: todo{},
			want: []any{},
		},
		{
			name: "nil",
			data: nil,
			want: []any{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Iterate(tt.data, describe, tt.bound...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Iterate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIterate_BuildsChildren(t *testing.T) {
	items := []string{"a", "b"}
	got := Ul("", Iterate(items, func(v, _ any, _ int) any {
		return Li("", v)
	}))
	if want := "<ul ><li >a</li><li >b</li></ul>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIterate_NilFunc(t *testing.T) {
	if diff := cmp.Diff([]any{}, Iterate([]int{1}, nil)); diff != "" {
		t.Errorf("Iterate(nil fn) mismatch (-want +got):\n%s", diff)
	}
}

func TestEach(t *testing.T) {
	got := Each([]int{1, 2, 3}, func(n, i int) string { return fmt.Sprintf("%d=%d;", i, n) })
	if got != "0=1;1=2;2=3;" {
		t.Errorf("Each() = %q", got)
	}
}
