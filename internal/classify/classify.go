// Package classify derives the synthesis category of each declaration
// field from its declared-type shape and annotations.
package classify

import (
	"go/token"

	"github.com/structkit/structkit/internal/decl"
	"github.com/structkit/structkit/internal/diag"
)

// Kind is the synthesis category of a field.
type Kind int

const (
	// Required fields must be set before assembly.
	Required Kind = iota
	// Optional fields are pointer-shaped and pass through unset.
	Optional
	// Repeated fields accumulate elements through a singular setter.
	Repeated
)

func (k Kind) String() string {
	switch k {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Repeated:
		return "repeated"
	default:
		return "unknown"
	}
}

// Classification is the derived category of one field plus the
// metadata extracted alongside it: the element type unwrapped exactly
// one level for Optional and Repeated fields, and the singular setter
// name for Repeated fields. Deeper nesting stays inside Inner, opaque.
type Classification struct {
	Kind   Kind
	Inner  decl.TypeRef
	Setter string
}

// Field classifies one field. The decision order is fixed: a builder
// annotation dominates, then the optional pointer shape, then
// Required. A builder annotation whose payload does not parse as a
// single each=name entry is a hard error, never downgraded.
func Field(f decl.Field) (Classification, *diag.Diagnostic) {
	if ann, ok := f.Annotation(decl.KeyBuilder); ok {
		return classifyRepeated(f, ann)
	}

	if f.Type.Kind == decl.RefPointer {
		return Classification{Kind: Optional, Inner: f.Type.Args[0]}, nil
	}

	return Classification{Kind: Required}, nil
}

func classifyRepeated(f decl.Field, ann decl.Annotation) (Classification, *diag.Diagnostic) {
	if len(ann.Pairs) == 0 {
		d := diag.Errorf("classifier", diag.CodeUnknownAnnotationKey, ann.Loc,
			"field %q: builder annotation requires an each=\"name\" payload", f.Name)
		return Classification{}, &d
	}
	if len(ann.Pairs) > 1 {
		d := diag.Errorf("classifier", diag.CodeConflictingAnnotation, ann.Loc,
			"field %q: builder annotation has %d entries, expected a single each=\"name\"", f.Name, len(ann.Pairs))
		return Classification{}, &d
	}

	pair := ann.Pairs[0]
	if pair.Name != "each" {
		d := diag.Errorf("classifier", diag.CodeUnknownAnnotationKey, ann.Loc,
			"field %q: unknown builder annotation key %q, expected \"each\"", f.Name, pair.Name)
		return Classification{}, &d
	}
	if !token.IsIdentifier(pair.Value) {
		d := diag.Errorf("classifier", diag.CodeBadSetterName, ann.Loc,
			"field %q: each setter name %q is not a valid identifier", f.Name, pair.Value)
		return Classification{}, &d
	}

	inner, ok := elementType(f.Type)
	if !ok {
		d := diag.Errorf("classifier", diag.CodeRepeatedNotSlice, ann.Loc,
			"field %q: builder each requires a slice-shaped type, got %s", f.Name, f.Type)
		return Classification{}, &d
	}

	return Classification{Kind: Repeated, Inner: inner, Setter: pair.Value}, nil
}

// elementType unwraps one level of the collection shape. Slices are
// the only collection the generated setters can append to.
func elementType(t decl.TypeRef) (decl.TypeRef, bool) {
	if t.Kind == decl.RefSlice {
		return t.Args[0], true
	}
	return decl.TypeRef{}, false
}
