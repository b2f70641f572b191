package el

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Truthy reports whether v counts as true in a condition. nil, false, zero
// numbers, NaN, the empty string and nil pointers, maps, slices and funcs are
// false; everything else is true, including empty non-nil slices and maps.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// Select returns whenTrue if cond is truthy, otherwise the first whenFalse
// value or "".
func Select(cond any, whenTrue any, whenFalse ...any) any {
	if Truthy(cond) {
		return whenTrue
	}
	if len(whenFalse) > 0 {
		return whenFalse[0]
	}
	return ""
}

// Dispatch returns cases[key], falling back to cases["default"]. When
// neither exists a warning is logged and "" is returned.
func Dispatch(key any, cases map[string]any) any {
	k := toString(key)
	if v, ok := cases[k]; ok {
		return v
	}
	if v, ok := cases["default"]; ok {
		return v
	}
	zap.L().Warn(fmt.Sprintf("no case for %q and no default case provided", k),
		zap.Error(ErrNoCase))
	return ""
}

// FilterBy keeps the items of a slice that satisfy condition.
//
// condition is either a predicate (func(any) bool or func(any, int) bool) or
// a map of field names to values. A map condition matches items whose
// map entries or exported struct fields are strictly equal to every value in
// the condition. items that are not a slice, and conditions of any other
// type, produce an empty result.
func FilterBy(items any, condition any) []any {
	out := []any{}
	if !isSequence(items) {
		return out
	}
	seq := sequence(items)

	var keep func(item any, i int) bool
	switch c := condition.(type) {
	case func(any) bool:
		if c == nil {
			return out
		}
		keep = func(item any, _ int) bool { return c(item) }
	case func(any, int) bool:
		keep = c
	case map[string]any:
		keep = func(item any, _ int) bool { return matches(item, c) }
	default:
		fields, ok := stringMap(condition)
		if !ok {
			return out
		}
		keep = func(item any, _ int) bool { return matches(item, fields) }
	}
	if keep == nil {
		return out
	}

	for i, item := range seq {
		if keep(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// stringMap converts maps with string keys (map[string]string and friends).
func stringMap(v any) (map[string]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func matches(item any, cond map[string]any) bool {
	for key, want := range cond {
		got, ok := field(item, key)
		if !ok {
			if want != nil {
				return false
			}
			continue
		}
		if !strictEqual(got, want) {
			return false
		}
	}
	return true
}

// field reads key from a string-keyed map or an exported struct field.
func field(item any, key string) (any, bool) {
	rv := reflect.ValueOf(item)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		f := rv.FieldByName(key)
		if !f.IsValid() {
			f = rv.FieldByNameFunc(func(name string) bool { return strings.EqualFold(name, key) })
		}
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

// strictEqual compares without coercion, except that numbers of different Go
// types compare by value.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if isNumber(a) && isNumber(b) {
		return cast.ToFloat64(a) == cast.ToFloat64(b)
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func isNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isInteger(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// IterFunc is called by Iterate for each element. For slices key and index
// are both the position; for maps key is the map key and index the ordinal.
type IterFunc func(value, key any, index int) any

// Ranger is a keyed collection Iterate walks like a map, such as
// *elcmp.Registry. Range visits entries in a stable order until fn returns
// false.
type Ranger interface {
	Range(fn func(key string, value any) bool)
}

// Iterate maps fn over data.
//
//   - slices and arrays: results are resolved like children and joined into
//     one string
//   - maps and Rangers: []any of results in sorted key order
//   - a number with a numeric bound: []any of results for each value in
//     [data, bound)
//   - strings: returned unchanged
//
// Everything else, including a nil fn, yields an empty []any.
func Iterate(data any, fn IterFunc, bound ...any) any {
	if s, ok := data.(string); ok {
		return s
	}
	if fn == nil || data == nil {
		return []any{}
	}

	if r, ok := data.(Ranger); ok {
		out := []any{}
		i := 0
		r.Range(func(key string, value any) bool {
			out = append(out, fn(value, key, i))
			i++
			return true
		})
		return out
	}

	if isSequence(data) {
		var b strings.Builder
		for i, item := range sequence(data) {
			b.WriteString(resolve(fn(item, i, i)))
		}
		return b.String()
	}

	if isNumber(data) {
		if len(bound) == 0 || !isNumber(bound[0]) {
			return []any{}
		}
		return iterateRange(data, bound[0], fn)
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Map {
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		out := make([]any, 0, len(keys))
		for i, k := range keys {
			out = append(out, fn(rv.MapIndex(k).Interface(), k.Interface(), i))
		}
		return out
	}
	return []any{}
}

func iterateRange(start, end any, fn IterFunc) []any {
	out := []any{}
	if isInteger(start) && isInteger(end) {
		from, okFrom := intValue(start)
		to, okTo := intValue(end)
		if !okFrom || !okTo {
			return out
		}
		for v := from; v < to; v++ {
			i := v - from
			out = append(out, fn(v, i, i))
		}
		return out
	}
	from, to := cast.ToFloat64(start), cast.ToFloat64(end)
	if math.IsInf(from, 0) || math.IsInf(to, 0) || math.IsNaN(from) {
		return out
	}
	for i := 0; from+float64(i) < to; i++ {
		out = append(out, fn(from+float64(i), i, i))
	}
	return out
}

// intValue converts an integer of any Go type to int, reporting false when
// it does not fit.
func intValue(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// Each renders fn for every item and joins the results.
func Each[T any](items []T, fn func(item T, i int) string) string {
	var b strings.Builder
	for i, item := range items {
		b.WriteString(fn(item, i))
	}
	return b.String()
}
