// Package gen synthesizes companion source for classified
// declarations: a fluent builder type per //structkit:builder
// declaration and a structured rendering function per
// //structkit:debug declaration.
package gen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/structkit/structkit/internal/decl"
)

// Generator accumulates generated source fragments
type Generator struct {
	buf     bytes.Buffer
	indent  int
	imports map[string]bool
}

func newGenerator() *Generator {
	return &Generator{imports: make(map[string]bool)}
}

// writeLine writes one indented line to the output buffer
func (g *Generator) writeLine(format string, args ...interface{}) {
	g.buf.WriteString(strings.Repeat("\t", g.indent))
	fmt.Fprintf(&g.buf, format, args...)
	g.buf.WriteByte('\n')
}

// blank writes an empty line
func (g *Generator) blank() {
	g.buf.WriteByte('\n')
}

// addImport records an import path needed by the generated code
func (g *Generator) addImport(path string) {
	g.imports[path] = true
}

// importPaths returns the recorded imports in sorted order
func (g *Generator) importPaths() []string {
	paths := make([]string, 0, len(g.imports))
	for p := range g.imports {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// typeParamList renders the bracketed type-parameter declaration list,
// or the empty string for non-generic declarations.
func typeParamList(params []decl.TypeParam) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+" "+p.Constraint)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// typeArgList renders the bracketed type-argument list, or the empty
// string for non-generic declarations.
func typeArgList(params []decl.TypeParam) string {
	if len(params) == 0 {
		return ""
	}
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Name)
	}
	return "[" + strings.Join(names, ", ") + "]"
}
