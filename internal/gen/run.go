package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/token"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"github.com/structkit/structkit/internal/decl"
	"github.com/structkit/structkit/internal/diag"
)

// Options configures a generation run.
type Options struct {
	// Markers lists the zero-sized marker wrapper names exempting type
	// parameters from bound inference.
	Markers []string
	Logger  *zap.Logger
}

func (o Options) markerSet() map[string]bool {
	set := make(map[string]bool, len(o.Markers))
	for _, m := range o.Markers {
		set[m] = true
	}
	return set
}

// Source runs the full pipeline over one parsed file: read the
// opted-in declarations, classify their fields and synthesize the
// companion source. It returns nil output when the file contains no
// opted-in declarations or when any error-severity diagnostic was
// raised; diagnostics are returned either way.
func Source(fset *token.FileSet, file *ast.File, opts Options) ([]byte, []diag.Diagnostic) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	markers := opts.markerSet()

	decls, diags := decl.File(fset, file)

	g := newGenerator()
	fragments := 0
	for _, d := range decls {
		plans, planDiags := planFields(d)
		diags = append(diags, planDiags...)
		if diag.HasErrors(planDiags) {
			continue
		}

		for _, dir := range d.Directives {
			switch dir.Name {
			case "builder":
				g.generateBuilder(d, plans)
				fragments++
			case "debug":
				debugDiags := g.generateDebug(d, plans, markers)
				diags = append(diags, debugDiags...)
				if !diag.HasErrors(debugDiags) {
					fragments++
				}
			}
			logger.Debug("processed declaration",
				zap.String("type", d.Name),
				zap.String("generator", dir.Name))
		}
	}

	if diag.HasErrors(diags) || fragments == 0 {
		return nil, diags
	}

	src := assemble(file.Name.Name, g)
	formatted, err := imports.Process("", src, nil)
	if err != nil {
		diags = append(diags, diag.Errorf("gen", diag.CodeUnformattable,
			diag.Location{}, "generated source does not format: %v", err))
		return nil, diags
	}
	return formatted, diags
}

// assemble wraps the generated fragments in a complete source file.
func assemble(pkg string, g *Generator) []byte {
	var out bytes.Buffer
	out.WriteString("// Code generated by structkit. DO NOT EDIT.\n\n")
	fmt.Fprintf(&out, "package %s\n\n", pkg)

	if paths := g.importPaths(); len(paths) > 0 {
		out.WriteString("import (\n")
		for _, p := range paths {
			fmt.Fprintf(&out, "\t%q\n", p)
		}
		out.WriteString(")\n\n")
	}

	out.Write(g.buf.Bytes())
	return out.Bytes()
}
