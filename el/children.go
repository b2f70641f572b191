package el

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// isSequence reports whether v is a slice or array other than []byte.
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]byte); ok {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// sequence returns v as a list of children. Non-sequences become a single
// element list.
func sequence(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out
	}
	if !isSequence(v) {
		return []any{v}
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// maxNesting bounds how deep resolve follows nested slices and function
// results.
const maxNesting = 512

// resolve turns one child into markup. Functions are invoked, slices are
// flattened and nil renders nothing.
func resolve(v any) string {
	var r resolver
	return r.resolve(v)
}

// resolver tracks the slices on the current flattening path so a slice that
// contains itself is cut off instead of recursing forever.
type resolver struct {
	depth int
	path  map[sliceKey]bool
}

type sliceKey struct {
	ptr uintptr
	len int
}

func (r *resolver) resolve(v any) string {
	r.depth++
	defer func() { r.depth-- }()
	if r.depth > maxNesting {
		zap.L().Error(fmt.Sprintf("children nested deeper than %d levels", maxNesting),
			zap.Error(ErrBuildFailed))
		return ""
	}

	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case func() string:
		if c == nil {
			return ""
		}
		return c()
	case func() any:
		if c == nil {
			return ""
		}
		return r.resolve(c())
	case fmt.Stringer:
		return c.String()
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Func:
		if rv.IsNil() || rv.Type().NumIn() != 0 || rv.Type().NumOut() == 0 {
			return ""
		}
		return r.resolve(rv.Call(nil)[0].Interface())
	case isSequence(v):
		if rv.Kind() == reflect.Slice && rv.Len() > 0 {
			key := sliceKey{ptr: rv.Pointer(), len: rv.Len()}
			if r.path[key] {
				zap.L().Error("child slice contains itself", zap.Error(ErrBuildFailed))
				return ""
			}
			if r.path == nil {
				r.path = make(map[sliceKey]bool)
			}
			r.path[key] = true
			defer delete(r.path, key)
		}
		var b strings.Builder
		for _, child := range sequence(v) {
			b.WriteString(r.resolve(child))
		}
		return b.String()
	}
	return toString(v)
}

// toString coerces a scalar the way string concatenation would.
func toString(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
