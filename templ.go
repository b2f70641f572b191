package elcmp

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"go.uber.org/zap"
)

// Templ returns a templ.Component that renders name with data, so elcmp
// components can be embedded in templ templates:
//
//	@engine.Templ("sidebar", elcmp.Context{"user": user})
func (e *Engine) Templ(name string, data Context) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, e.Render(ctx, name, data).String())
		return err
	})
}

// FromTempl wraps a templ component as a Component.
func FromTempl(tc templ.Component) Component {
	if tc == nil {
		return nil
	}
	return FromTemplFunc(func(Context) templ.Component { return tc })
}

// FromTemplFunc wraps a function that builds a templ component from the
// render Context. A templ render error is logged and renders as empty markup.
func FromTemplFunc(fn func(ctx Context) templ.Component) Component {
	if fn == nil {
		return nil
	}
	return ComponentFunc(func(ctx Context, _ ChildRenderer) Result {
		tc := fn(ctx)
		if tc == nil {
			return Empty()
		}
		var b strings.Builder
		if err := tc.Render(context.Background(), &b); err != nil {
			zap.L().Error(fmt.Sprintf("error rendering templ component: %v", err), zap.Error(err))
			return HTML("")
		}
		return HTML(b.String())
	})
}
