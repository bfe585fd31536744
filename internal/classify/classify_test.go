package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structkit/structkit/internal/decl"
	"github.com/structkit/structkit/internal/diag"
)

func plain(name string) decl.TypeRef {
	return decl.TypeRef{Kind: decl.RefPlain, Name: name}
}

func pointer(inner decl.TypeRef) decl.TypeRef {
	return decl.TypeRef{Kind: decl.RefPointer, Args: []decl.TypeRef{inner}}
}

func slice(inner decl.TypeRef) decl.TypeRef {
	return decl.TypeRef{Kind: decl.RefSlice, Args: []decl.TypeRef{inner}}
}

func eachAnnotation(pairs ...decl.Pair) []decl.Annotation {
	return []decl.Annotation{{Key: decl.KeyBuilder, Pairs: pairs}}
}

func TestField_Required(t *testing.T) {
	c, derr := Field(decl.Field{Name: "name", Type: plain("string")})
	require.Nil(t, derr)
	assert.Equal(t, Required, c.Kind)

	// An unannotated slice is a required field, not a collection.
	c, derr = Field(decl.Field{Name: "tags", Type: slice(plain("string"))})
	require.Nil(t, derr)
	assert.Equal(t, Required, c.Kind)
}

func TestField_Optional(t *testing.T) {
	c, derr := Field(decl.Field{Name: "retries", Type: pointer(plain("uint32"))})
	require.Nil(t, derr)
	assert.Equal(t, Optional, c.Kind)
	assert.Equal(t, "uint32", c.Inner.Name)
}

func TestField_OptionalUnwrapsOneLevel(t *testing.T) {
	// Pointer-to-pointer unwraps once; the inner pointer stays opaque
	// to the caller.
	c, derr := Field(decl.Field{Name: "p", Type: pointer(pointer(plain("int")))})
	require.Nil(t, derr)
	assert.Equal(t, Optional, c.Kind)
	assert.Equal(t, decl.RefPointer, c.Inner.Kind)
}

func TestField_Repeated(t *testing.T) {
	f := decl.Field{
		Name:        "tags",
		Type:        slice(plain("string")),
		Annotations: eachAnnotation(decl.Pair{Name: "each", Value: "tag"}),
	}
	c, derr := Field(f)
	require.Nil(t, derr)
	assert.Equal(t, Repeated, c.Kind)
	assert.Equal(t, "tag", c.Setter)
	assert.Equal(t, "string", c.Inner.Name)
}

func TestField_AnnotationDominatesShape(t *testing.T) {
	// A builder-annotated pointer field is never reclassified as
	// Optional; the malformed combination is a hard error.
	f := decl.Field{
		Name:        "tags",
		Type:        pointer(slice(plain("string"))),
		Annotations: eachAnnotation(decl.Pair{Name: "each", Value: "tag"}),
	}
	_, derr := Field(f)
	require.NotNil(t, derr)
	assert.Equal(t, diag.CodeRepeatedNotSlice, derr.Code)
}

func TestField_MalformedBuilderAnnotations(t *testing.T) {
	tests := []struct {
		name     string
		field    decl.Field
		wantCode string
	}{
		{
			name: "wrong key",
			field: decl.Field{
				Name:        "tags",
				Type:        slice(plain("string")),
				Annotations: eachAnnotation(decl.Pair{Name: "eachh", Value: "x"}),
			},
			wantCode: diag.CodeUnknownAnnotationKey,
		},
		{
			name: "conflicting keys",
			field: decl.Field{
				Name: "tags",
				Type: slice(plain("string")),
				Annotations: eachAnnotation(
					decl.Pair{Name: "each", Value: "tag"},
					decl.Pair{Name: "other", Value: "x"},
				),
			},
			wantCode: diag.CodeConflictingAnnotation,
		},
		{
			name: "literal payload",
			field: decl.Field{
				Name:        "tags",
				Type:        slice(plain("string")),
				Annotations: []decl.Annotation{{Key: decl.KeyBuilder, Literal: "tag"}},
			},
			wantCode: diag.CodeUnknownAnnotationKey,
		},
		{
			name: "setter not an identifier",
			field: decl.Field{
				Name:        "tags",
				Type:        slice(plain("string")),
				Annotations: eachAnnotation(decl.Pair{Name: "each", Value: "1tag"}),
			},
			wantCode: diag.CodeBadSetterName,
		},
		{
			name: "non-slice type",
			field: decl.Field{
				Name:        "tags",
				Type:        plain("string"),
				Annotations: eachAnnotation(decl.Pair{Name: "each", Value: "tag"}),
			},
			wantCode: diag.CodeRepeatedNotSlice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, derr := Field(tt.field)
			require.NotNil(t, derr, "malformed annotation must be a hard error")
			assert.Equal(t, tt.wantCode, derr.Code)
			assert.Equal(t, diag.Error, derr.Severity)
		})
	}
}
