package decl

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/structkit/structkit/internal/diag"
)

// File scans a parsed source file for type declarations carrying
// //structkit: directives and reads each one into the declaration IR.
//
// Unsupported shapes (non-structs, structs with embedded fields) are
// reported as warnings and produce no declaration, matching the no-op
// contract for misshapen input. Malformed directives and annotations
// are hard errors.
func File(fset *token.FileSet, file *ast.File) ([]Declaration, []diag.Diagnostic) {
	var (
		decls []Declaration
		diags []diag.Diagnostic
	)

	for _, d := range file.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, s := range gen.Specs {
			spec, ok := s.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := spec.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}
			directives, dirDiags := readDirectives(fset, doc)
			diags = append(diags, dirDiags...)
			if len(directives) == 0 {
				continue
			}

			decl, declDiags, supported := readDeclaration(fset, spec, directives)
			diags = append(diags, declDiags...)
			if supported {
				decls = append(decls, decl)
			}
		}
	}
	return decls, diags
}

// readDirectives extracts //structkit: lines from a doc comment group.
func readDirectives(fset *token.FileSet, doc *ast.CommentGroup) ([]Directive, []diag.Diagnostic) {
	if doc == nil {
		return nil, nil
	}
	var (
		directives []Directive
		diags      []diag.Diagnostic
	)
	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, directivePrefix) {
			continue
		}
		dir, derr := parseDirective(c.Text, location(fset, c.Pos()))
		if derr != nil {
			diags = append(diags, *derr)
			continue
		}
		directives = append(directives, dir)
	}
	return directives, diags
}

// readDeclaration reads one opted-in type spec. The third result is
// false when the declaration shape is unsupported.
func readDeclaration(fset *token.FileSet, spec *ast.TypeSpec, directives []Directive) (Declaration, []diag.Diagnostic, bool) {
	loc := location(fset, spec.Pos())

	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return Declaration{}, []diag.Diagnostic{unsupported(loc, "%s is not a struct", spec.Name.Name)}, false
	}

	decl := Declaration{
		Name:       spec.Name.Name,
		TypeParams: readTypeParams(fset, spec.TypeParams),
		Directives: directives,
		Loc:        loc,
	}

	var diags []diag.Diagnostic
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return Declaration{}, []diag.Diagnostic{unsupported(loc,
				"%s has an embedded field; only named fields are supported", spec.Name.Name)}, false
		}

		var annotations []Annotation
		if field.Tag != nil {
			var tagDiags []diag.Diagnostic
			annotations, tagDiags = parseTag(field.Tag.Value, location(fset, field.Tag.Pos()))
			diags = append(diags, tagDiags...)
		}

		typ := buildTypeRef(fset, field.Type)
		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}
			decl.Fields = append(decl.Fields, Field{
				Name:        name.Name,
				Type:        typ,
				Annotations: annotations,
				Loc:         location(fset, name.Pos()),
			})
		}
	}
	return decl, diags, true
}

func readTypeParams(fset *token.FileSet, params *ast.FieldList) []TypeParam {
	if params == nil {
		return nil
	}
	var out []TypeParam
	for _, p := range params.List {
		constraint := render(fset, p.Type)
		for _, name := range p.Names {
			out = append(out, TypeParam{Name: name.Name, Constraint: constraint})
		}
	}
	return out
}

func unsupported(loc diag.Location, format string, args ...interface{}) diag.Diagnostic {
	d := diag.Errorf("reader", diag.CodeUnsupportedShape, loc, "unsupported declaration shape: "+format, args...)
	d.Severity = diag.Warning
	return d
}

func location(fset *token.FileSet, pos token.Pos) diag.Location {
	p := fset.Position(pos)
	return diag.Location{File: p.Filename, Line: p.Line, Column: p.Column}
}
