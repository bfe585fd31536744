package gen

import (
	"strings"

	"github.com/structkit/structkit/internal/classify"
	"github.com/structkit/structkit/internal/decl"
	"github.com/structkit/structkit/internal/diag"
)

// defaultVerb is the rendering applied to fields without a format
// annotation.
const defaultVerb = "%v"

// generateDebug emits the structured rendering function for one
// declaration. All validation happens before anything is written so a
// failed declaration contributes no partial fragment.
func (g *Generator) generateDebug(d decl.Declaration, plans []fieldPlan, markers map[string]bool) []diag.Diagnostic {
	formats := debugFormats(d)

	bounds, derr := inferBounds(d, markers)
	if derr != nil {
		return []diag.Diagnostic{*derr}
	}

	params := debugParamList(bounds)
	args := typeArgList(d.TypeParams)
	fn := "Debug" + d.Name

	if strings.Contains(params, stringerBound) {
		g.addImport("fmt")
	}

	g.writeLine("// %s renders %s one field per entry, in declaration order.", fn, d.Name)
	for _, q := range bounds.quals {
		g.writeLine("// %s must implement fmt.Stringer.", q)
	}
	g.writeLine("func %s%s(v %s%s) string {", fn, params, d.Name, args)
	g.indent++
	g.addImport("strings")
	g.writeLine("var sb strings.Builder")
	g.writeLine("sb.WriteString(%q)", d.Name+"{")

	for i, p := range plans {
		if i > 0 {
			g.writeLine("sb.WriteString(\", \")")
		}
		g.writeField(p, formats[p.field.Name])
	}

	g.writeLine("sb.WriteString(\"}\")")
	g.writeLine("return sb.String()")
	g.indent--
	g.writeLine("}")
	g.blank()
	return nil
}

// writeField emits the rendering statement(s) for one field.
func (g *Generator) writeField(p fieldPlan, format string) {
	if format == "" {
		format = defaultVerb
	}
	label := p.field.Name + ": "

	if p.class.Kind == classify.Optional {
		g.writeLine("if v.%s != nil {", p.field.Name)
		g.indent++
		g.addImport("fmt")
		g.writeLine("fmt.Fprintf(&sb, %q, *v.%s)", label+format, p.field.Name)
		g.indent--
		g.writeLine("} else {")
		g.indent++
		g.writeLine("sb.WriteString(%q)", label+"nil")
		g.indent--
		g.writeLine("}")
		return
	}

	g.addImport("fmt")
	g.writeLine("fmt.Fprintf(&sb, %q, v.%s)", label+format, p.field.Name)
}

// debugFormats collects per-field format overrides. The reader
// guarantees debug payloads are bare literals.
func debugFormats(d decl.Declaration) map[string]string {
	formats := make(map[string]string)
	for _, f := range d.Fields {
		if ann, ok := f.Annotation(decl.KeyDebug); ok {
			formats[f.Name] = ann.Literal
		}
	}
	return formats
}

// debugParamList renders the generated function's type parameters,
// honoring a custom bound override when present.
func debugParamList(b boundInfo) string {
	if b.custom != "" {
		return "[" + b.custom + "]"
	}
	return typeParamList(b.params)
}
