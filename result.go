package elcmp

// Kind identifies what a Result holds.
type Kind uint8

const (
	// KindEmpty is the result of rendering a missing component or child.
	KindEmpty Kind = iota
	// KindHTML holds a markup string.
	KindHTML
	// KindValue holds a structured value produced by a component instead of
	// markup.
	KindValue
	// KindComponent holds an unrendered component, returned when a render is
	// requested without a Context.
	KindComponent
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindHTML:
		return "html"
	case KindValue:
		return "value"
	case KindComponent:
		return "component"
	}
	return "unknown"
}

// Result is the outcome of rendering a component.
//
// Result implements fmt.Stringer and yields its markup, so it can be passed
// directly as a child to the el builders:
//
//	el.Div("", []any{child("header"), child("body")})
//
// Only KindHTML results produce markup; every other kind renders as "".
// The zero Result is empty.
type Result struct {
	kind      Kind
	html      string
	value     any
	component Component
}

// HTML creates a markup result.
func HTML(s string) Result {
	return Result{kind: KindHTML, html: s}
}

// Value creates a result carrying a non-markup value.
func Value(v any) Result {
	return Result{kind: KindValue, value: v}
}

// ComponentResult creates a result carrying an unrendered component.
func ComponentResult(c Component) Result {
	return Result{kind: KindComponent, component: c}
}

// Empty creates an empty result.
func Empty() Result {
	return Result{}
}

// Kind returns what the result holds.
func (r Result) Kind() Kind {
	return r.kind
}

// String returns the markup of an HTML result and "" otherwise.
func (r Result) String() string {
	return r.html
}

// Value returns the value of a KindValue result.
func (r Result) Value() any {
	return r.value
}

// Component returns the component of a KindComponent result.
func (r Result) Component() Component {
	return r.component
}

// IsEmpty reports whether the result is KindEmpty.
func (r Result) IsEmpty() bool {
	return r.kind == KindEmpty
}

// IsHTML reports whether the result is KindHTML.
func (r Result) IsHTML() bool {
	return r.kind == KindHTML
}
