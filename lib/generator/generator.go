// Package generator emits the element shorthand functions of package el.
package generator

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/pthm/elcmp/el"
)

// Header marks files written by the generator.
const Header = "// Code generated by elcmp generate. DO NOT EDIT."

// Options configures the generator.
type Options struct {
	// Output is the file to write. Its directory is scanned for existing
	// declarations so generated names never collide with them.
	Output string
	// Package overrides the package clause. Defaults to the package already
	// declared in the output directory, then to the directory name.
	Package string
	// Tags lists the elements to generate. Defaults to el.Catalogue.
	Tags   []string
	DryRun bool
	// Log receives progress lines. Defaults to os.Stdout.
	Log io.Writer
}

// Generator generates shorthand element functions.
type Generator struct {
	opts Options
	fset *token.FileSet
}

// New creates a new generator.
func New(opts Options) *Generator {
	if len(opts.Tags) == 0 {
		opts.Tags = el.Catalogue
	}
	if opts.Log == nil {
		opts.Log = os.Stdout
	}
	return &Generator{
		opts: opts,
		fset: token.NewFileSet(),
	}
}

// TagInfo describes one generated function.
type TagInfo struct {
	Tag  string
	Func string
}

// overrides name tags whose default exported name is unidiomatic.
var overrides = map[string]string{
	"main": "MainEl",
	"html": "HTML",
}

// FuncName returns the exported function name for tag: the tag with its
// first letter upper-cased, "-" and ":" separated words joined in camel case.
func FuncName(tag string) string {
	if name, ok := overrides[tag]; ok {
		return name
	}
	var b strings.Builder
	upper := true
	for _, r := range tag {
		if r == '-' || r == ':' || r == '_' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Generate writes the shorthand file to Options.Output.
func (g *Generator) Generate() error {
	if g.opts.Output == "" {
		return fmt.Errorf("generate: no output file")
	}
	code, err := g.Source()
	if err != nil {
		return err
	}

	fmt.Fprintf(g.opts.Log, "generating %s (%d elements)\n", g.opts.Output, len(g.opts.Tags))
	if g.opts.DryRun {
		return nil
	}
	return writeFile(g.opts.Output, code)
}

// Clean removes Options.Output when it was written by the generator.
func (g *Generator) Clean() error {
	data, err := os.ReadFile(g.opts.Output)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !strings.HasPrefix(string(data), Header) {
		return fmt.Errorf("clean: %s was not generated by elcmp", g.opts.Output)
	}

	fmt.Fprintf(g.opts.Log, "removing %s\n", g.opts.Output)
	if g.opts.DryRun {
		return nil
	}
	return os.Remove(g.opts.Output)
}

// Tags resolves the function names for the configured tags, skipping
// duplicates and suffixing "El" where a name is already declared in the
// output package.
func (g *Generator) Tags() ([]TagInfo, error) {
	taken, _, err := g.scanPackage()
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var infos []TagInfo
	for _, tag := range g.opts.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true

		name := FuncName(tag)
		if !token.IsIdentifier(name) {
			return nil, fmt.Errorf("tag %q does not map to a Go identifier", tag)
		}
		for taken[name] {
			name += "El"
		}
		taken[name] = true
		infos = append(infos, TagInfo{Tag: tag, Func: name})
	}
	return infos, nil
}

// packageName picks the package clause for the output file.
func (g *Generator) packageName() (string, error) {
	if g.opts.Package != "" {
		return g.opts.Package, nil
	}
	_, pkg, err := g.scanPackage()
	if err != nil {
		return "", err
	}
	if pkg != "" {
		return pkg, nil
	}
	dir, err := filepath.Abs(g.outputDir())
	if err != nil {
		return "", err
	}
	return sanitizePackage(filepath.Base(dir)), nil
}

func (g *Generator) outputDir() string {
	if g.opts.Output == "" {
		return "."
	}
	return filepath.Dir(g.opts.Output)
}

// scanPackage parses the non-test, non-generated files next to the output
// and returns their top-level names and package name.
func (g *Generator) scanPackage() (map[string]bool, string, error) {
	taken := map[string]bool{}
	dir := g.outputDir()
	out := filepath.Base(g.opts.Output)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return taken, "", nil
		}
		return nil, "", err
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || name == out {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var pkg string
	for _, name := range names {
		file, err := parser.ParseFile(g.fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, "", fmt.Errorf("parse %s: %w", name, err)
		}
		if pkg == "" {
			pkg = file.Name.Name
		}
		collectDecls(file, taken)
	}
	return taken, pkg, nil
}

// collectDecls records the package-level identifiers declared in file.
func collectDecls(file *ast.File, taken map[string]bool) {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				taken[d.Name.Name] = true
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					taken[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						taken[n.Name] = true
					}
				}
			}
		}
	}
}

func sanitizePackage(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || (unicode.IsDigit(r) && b.Len() > 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "main"
	}
	return b.String()
}
