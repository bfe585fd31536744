package gen

import (
	"github.com/structkit/structkit/internal/classify"
	"github.com/structkit/structkit/internal/decl"
	"github.com/structkit/structkit/internal/diag"
	"github.com/structkit/structkit/internal/util/strutil"
)

// fieldPlan pairs a field with its derived classification.
type fieldPlan struct {
	field decl.Field
	class classify.Classification
}

// planFields classifies every field of a declaration. Classification
// errors abort the plan; they are never downgraded to Required.
func planFields(d decl.Declaration) ([]fieldPlan, []diag.Diagnostic) {
	var (
		plans []fieldPlan
		diags []diag.Diagnostic
	)
	for _, f := range d.Fields {
		c, derr := classify.Field(f)
		if derr != nil {
			diags = append(diags, *derr)
			continue
		}
		plans = append(plans, fieldPlan{field: f, class: c})
	}
	return plans, diags
}

// generateBuilder emits the satellite builder type for one
// declaration: the builder struct, its constructor, one fluent setter
// per field and the fallible Build method.
func (g *Generator) generateBuilder(d decl.Declaration, plans []fieldPlan) {
	params := typeParamList(d.TypeParams)
	args := typeArgList(d.TypeParams)
	builder := d.Name + "Builder"
	target := d.Name + args

	// Satellite type. Every field is stored absently-representable:
	// pointers for scalar state, the slice itself for repeated state.
	g.writeLine("// %s accumulates the fields of %s before assembly.", builder, d.Name)
	g.writeLine("// The zero value is not meaningful; use New%s.", builder)
	g.writeLine("type %s%s struct {", builder, params)
	g.indent++
	for _, p := range plans {
		g.writeLine("%s %s", p.field.Name, builderFieldType(p))
	}
	g.indent--
	g.writeLine("}")
	g.blank()

	g.writeLine("// New%s returns a builder for %s with every field unset.", builder, d.Name)
	g.writeLine("func New%s%s() *%s%s {", builder, params, builder, args)
	g.indent++
	g.writeLine("return &%s%s{}", builder, args)
	g.indent--
	g.writeLine("}")
	g.blank()

	for _, p := range plans {
		g.generateSetter(builder, args, p)
	}

	g.generateBuild(builder, args, target, plans)
}

// builderFieldType is the storage type of one builder field.
func builderFieldType(p fieldPlan) string {
	switch p.class.Kind {
	case classify.Optional:
		return p.field.Type.String()
	case classify.Repeated:
		return p.field.Type.String()
	default:
		return "*" + p.field.Type.String()
	}
}

func (g *Generator) generateSetter(builder, args string, p fieldPlan) {
	recv := "b *" + builder + args
	ret := "*" + builder + args

	switch p.class.Kind {
	case classify.Repeated:
		setter := strutil.ToPascalCase(p.class.Setter)
		g.writeLine("// %s appends one element to the %s field.", setter, p.field.Name)
		g.writeLine("func (%s) %s(v %s) %s {", recv, setter, p.class.Inner, ret)
		g.indent++
		g.writeLine("b.%s = append(b.%s, v)", p.field.Name, p.field.Name)

	case classify.Optional:
		setter := strutil.ToPascalCase(p.field.Name)
		g.writeLine("// %s sets the %s field.", setter, p.field.Name)
		g.writeLine("func (%s) %s(v %s) %s {", recv, setter, p.class.Inner, ret)
		g.indent++
		g.writeLine("b.%s = &v", p.field.Name)

	default:
		setter := strutil.ToPascalCase(p.field.Name)
		g.writeLine("// %s sets the %s field.", setter, p.field.Name)
		g.writeLine("func (%s) %s(v %s) %s {", recv, setter, p.field.Type, ret)
		g.indent++
		g.writeLine("b.%s = &v", p.field.Name)
	}

	g.writeLine("return b")
	g.indent--
	g.writeLine("}")
	g.blank()
}

func (g *Generator) generateBuild(builder, args, target string, plans []fieldPlan) {
	g.writeLine("// Build assembles the target value. It fails if a required field")
	g.writeLine("// was never set; optional fields pass through unset and repeated")
	g.writeLine("// fields default to an empty collection.")
	g.writeLine("func (b *%s%s) Build() (%s, error) {", builder, args, target)
	g.indent++
	g.writeLine("var out %s", target)

	for _, p := range plans {
		if p.class.Kind == classify.Required {
			g.addImport("fmt")
			g.writeLine("if b.%s == nil {", p.field.Name)
			g.indent++
			g.writeLine("return out, fmt.Errorf(\"field not set: %s\")", p.field.Name)
			g.indent--
			g.writeLine("}")
		}
	}

	for _, p := range plans {
		switch p.class.Kind {
		case classify.Repeated:
			g.writeLine("out.%s = append(%s{}, b.%s...)", p.field.Name, p.field.Type, p.field.Name)
		case classify.Optional:
			g.writeLine("out.%s = b.%s", p.field.Name, p.field.Name)
		default:
			g.writeLine("out.%s = *b.%s", p.field.Name, p.field.Name)
		}
	}

	g.writeLine("return out, nil")
	g.indent--
	g.writeLine("}")
	g.blank()
}
