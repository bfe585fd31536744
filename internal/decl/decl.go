// Package decl reads annotated type declarations from parsed Go source
// and turns them into the declaration IR consumed by the generators.
// It is purely structural: no type-checking beyond shape matching ever
// happens here.
package decl

import (
	"strings"

	"github.com/structkit/structkit/internal/diag"
)

// RefKind represents the shape of a type reference
type RefKind int

const (
	RefPlain RefKind = iota // identifier or qualified identifier
	RefPointer              // *T, the optional wrapper
	RefSlice                // []T, the collection shape
	RefGeneric              // Name[A, B, ...]
	RefOpaque               // anything else, carried verbatim
)

// TypeRef is a recursive descriptor of a declared field type. Only one
// level of nesting is ever unwrapped by the generators; deeper levels
// stay representable but opaque.
type TypeRef struct {
	Kind RefKind
	Name string    // for RefPlain and RefGeneric; may be qualified ("pkg.Name")
	Args []TypeRef // element type(s) for pointer, slice and generic shapes

	raw string // printed source text, used verbatim in generated code
}

// String returns the exact source rendering of the type.
func (t TypeRef) String() string { return t.raw }

// Qualified reports whether the reference is a multi-segment path.
func (t TypeRef) Qualified() bool { return strings.Contains(t.Name, ".") }

// Base returns the first path segment of the reference name.
func (t TypeRef) Base() string {
	if i := strings.IndexByte(t.Name, '.'); i >= 0 {
		return t.Name[:i]
	}
	return t.Name
}

// Pair is one name=value entry of an annotation payload.
type Pair struct {
	Name  string
	Value string
}

// Annotation is a struct-tag marker attached to a field. Exactly one
// payload shape is populated: Literal for the bare-literal form
// (`debug:"0b%08b"`), Pairs for the name=value list form
// (`builder:"each=tag"`).
type Annotation struct {
	Key     string
	Literal string
	Pairs   []Pair
	Loc     diag.Location
}

// Directive is a declaration-level //structkit: marker.
type Directive struct {
	Name string
	Args []Pair
	Loc  diag.Location
}

// Arg returns the value of the named directive argument.
func (d Directive) Arg(name string) (string, bool) {
	for _, p := range d.Args {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// TypeParam is one generic parameter of a declaration, with its
// constraint kept as source text.
type TypeParam struct {
	Name       string
	Constraint string
}

// Field is one named slot of a declaration.
type Field struct {
	Name        string
	Type        TypeRef
	Annotations []Annotation
	Loc         diag.Location
}

// Annotation returns the field annotation with the given key.
func (f Field) Annotation(key string) (Annotation, bool) {
	for _, a := range f.Annotations {
		if a.Key == key {
			return a, true
		}
	}
	return Annotation{}, false
}

// Declaration is the structural description of one opted-in type:
// name, generics, ordered fields and the directives that selected it.
// Immutable once read.
type Declaration struct {
	Name       string
	TypeParams []TypeParam
	Fields     []Field
	Directives []Directive
	Loc        diag.Location
}

// Directive returns the declaration directive with the given name.
func (d Declaration) Directive(name string) (Directive, bool) {
	for _, dir := range d.Directives {
		if dir.Name == name {
			return dir, true
		}
	}
	return Directive{}, false
}
