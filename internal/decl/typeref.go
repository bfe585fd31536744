package decl

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
)

// render prints an expression back to source text.
func render(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return ""
	}
	return buf.String()
}

// buildTypeRef converts a parsed type expression into a TypeRef.
// Shapes the classifiers care about (identifiers, pointers, slices,
// single-level generics) are decomposed; everything else is opaque and
// carried as raw source text.
func buildTypeRef(fset *token.FileSet, expr ast.Expr) TypeRef {
	raw := render(fset, expr)

	switch e := expr.(type) {
	case *ast.Ident:
		return TypeRef{Kind: RefPlain, Name: e.Name, raw: raw}

	case *ast.SelectorExpr:
		if base, ok := e.X.(*ast.Ident); ok {
			return TypeRef{Kind: RefPlain, Name: base.Name + "." + e.Sel.Name, raw: raw}
		}
		return TypeRef{Kind: RefOpaque, raw: raw}

	case *ast.StarExpr:
		return TypeRef{
			Kind: RefPointer,
			Args: []TypeRef{buildTypeRef(fset, e.X)},
			raw:  raw,
		}

	case *ast.ArrayType:
		if e.Len != nil {
			// Fixed-size arrays are not the collection shape.
			return TypeRef{Kind: RefOpaque, raw: raw}
		}
		return TypeRef{
			Kind: RefSlice,
			Args: []TypeRef{buildTypeRef(fset, e.Elt)},
			raw:  raw,
		}

	case *ast.IndexExpr:
		base := buildTypeRef(fset, e.X)
		if base.Kind != RefPlain {
			return TypeRef{Kind: RefOpaque, raw: raw}
		}
		return TypeRef{
			Kind: RefGeneric,
			Name: base.Name,
			Args: []TypeRef{buildTypeRef(fset, e.Index)},
			raw:  raw,
		}

	case *ast.IndexListExpr:
		base := buildTypeRef(fset, e.X)
		if base.Kind != RefPlain {
			return TypeRef{Kind: RefOpaque, raw: raw}
		}
		args := make([]TypeRef, 0, len(e.Indices))
		for _, idx := range e.Indices {
			args = append(args, buildTypeRef(fset, idx))
		}
		return TypeRef{Kind: RefGeneric, Name: base.Name, Args: args, raw: raw}

	default:
		return TypeRef{Kind: RefOpaque, raw: raw}
	}
}
