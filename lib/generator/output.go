package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

// Source renders and formats the generated file.
func (g *Generator) Source() ([]byte, error) {
	pkg, err := g.packageName()
	if err != nil {
		return nil, err
	}
	tags, err := g.Tags()
	if err != nil {
		return nil, err
	}

	code, err := renderTemplate(pkg, tags)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	formatted, err := format.Source(code)
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}
	return formatted, nil
}

func renderTemplate(pkg string, tags []TagInfo) ([]byte, error) {
	tmpl, err := template.New("tags").Parse(tagsTemplate)
	if err != nil {
		return nil, err
	}

	data := struct {
		Header  string
		Package string
		Tags    []TagInfo
	}{
		Header:  Header,
		Package: pkg,
		Tags:    tags,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFile(path string, code []byte) error {
	if err := os.WriteFile(path, code, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Generated functions call the unexported sequence helper, so the output
// only compiles inside package el.
const tagsTemplate = `{{.Header}}

package {{.Package}}
{{range .Tags}}
// {{.Func}} renders a <{{.Tag}}> element.
func {{.Func}}(attrs any, children any, events ...Events) string {
	return El("{{.Tag}}", attrs, sequence(children), events...)
}
{{end}}`
