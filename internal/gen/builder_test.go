package gen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structkit/structkit/internal/diag"
)

// generate runs the whole pipeline over one source string.
func generate(t *testing.T, source string) (string, []diag.Diagnostic) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "input.go", source, parser.ParseComments)
	require.NoError(t, err)
	out, diags := Source(fset, file, Options{Markers: []string{"Phantom"}})
	return string(out), diags
}

func TestBuilder_Golden(t *testing.T) {
	source := `package lexer

//structkit:builder
type Token struct {
	kind string
}
`
	want := `// Code generated by structkit. DO NOT EDIT.

package lexer

import (
	"fmt"
)

// TokenBuilder accumulates the fields of Token before assembly.
// The zero value is not meaningful; use NewTokenBuilder.
type TokenBuilder struct {
	kind *string
}

// NewTokenBuilder returns a builder for Token with every field unset.
func NewTokenBuilder() *TokenBuilder {
	return &TokenBuilder{}
}

// Kind sets the kind field.
func (b *TokenBuilder) Kind(v string) *TokenBuilder {
	b.kind = &v
	return b
}

// Build assembles the target value. It fails if a required field
// was never set; optional fields pass through unset and repeated
// fields default to an empty collection.
func (b *TokenBuilder) Build() (Token, error) {
	var out Token
	if b.kind == nil {
		return out, fmt.Errorf("field not set: kind")
	}
	out.kind = *b.kind
	return out, nil
}
`
	got, diags := generate(t, source)
	require.Empty(t, diags)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generated source mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_FieldCategories(t *testing.T) {
	source := `package demo

//structkit:builder
type Client struct {
	name    string
	retries *uint32
	tags    []string ` + "`builder:\"each=tag\"`" + `
}
`
	got, diags := generate(t, source)
	require.Empty(t, diags)

	// Required: stored behind a pointer, checked at assembly. Field
	// names are column-aligned in the formatted output.
	assert.Contains(t, got, "name    *string")
	assert.Contains(t, got, `return out, fmt.Errorf("field not set: name")`)

	// Optional: inner-typed setter, pointer passes through.
	assert.Contains(t, got, "func (b *ClientBuilder) Retries(v uint32) *ClientBuilder {")
	assert.Contains(t, got, "out.retries = b.retries")

	// Repeated: singular setter appends; assembly copies into a
	// non-nil slice; no bulk setter exists.
	assert.Contains(t, got, "func (b *ClientBuilder) Tag(v string) *ClientBuilder {")
	assert.Contains(t, got, "b.tags = append(b.tags, v)")
	assert.Contains(t, got, "out.tags = append([]string{}, b.tags...)")
	assert.NotContains(t, got, "func (b *ClientBuilder) Tags(")

	// No presence check for optional or repeated fields.
	assert.NotContains(t, got, `"field not set: retries"`)
	assert.NotContains(t, got, `"field not set: tags"`)
}

func TestBuilder_GenericDeclaration(t *testing.T) {
	source := `package demo

//structkit:builder
type Pair[K comparable, V any] struct {
	key   K
	value V
}
`
	got, diags := generate(t, source)
	require.Empty(t, diags)

	assert.Contains(t, got, "type PairBuilder[K comparable, V any] struct {")
	assert.Contains(t, got, "func NewPairBuilder[K comparable, V any]() *PairBuilder[K, V] {")
	assert.Contains(t, got, "func (b *PairBuilder[K, V]) Key(v K) *PairBuilder[K, V] {")
	assert.Contains(t, got, "func (b *PairBuilder[K, V]) Build() (Pair[K, V], error) {")
}

func TestBuilder_MalformedAnnotationProducesNoOutput(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		wantCode string
	}{
		{"wrong key", "`builder:\"eachh=x\"`", diag.CodeUnknownAnnotationKey},
		{"conflicting keys", "`builder:\"each=x,other=y\"`", diag.CodeConflictingAnnotation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := `package demo

//structkit:builder
type T struct {
	tags []string ` + tt.tag + `
}
`
			got, diags := generate(t, source)
			assert.Empty(t, got, "malformed annotation must not degrade into output")
			require.True(t, diag.HasErrors(diags))
			assert.Equal(t, tt.wantCode, diags[0].Code)
		})
	}
}

func TestBuilder_UnsupportedShapeIsNoOp(t *testing.T) {
	source := `package demo

//structkit:builder
type Mode int
`
	got, diags := generate(t, source)
	assert.Empty(t, got)
	assert.False(t, diag.HasErrors(diags), "unsupported shape stays a warning")
	require.Len(t, diags, 1)
	assert.Equal(t, diag.Warning, diags[0].Severity)
}

func TestBuilder_FieldOrderPreserved(t *testing.T) {
	source := `package demo

//structkit:builder
type Ordered struct {
	c string
	a string
	b string
}
`
	got, diags := generate(t, source)
	require.Empty(t, diags)

	ci := strings.Index(got, "// C sets")
	ai := strings.Index(got, "// A sets")
	bi := strings.Index(got, "// B sets")
	require.True(t, ci >= 0 && ai >= 0 && bi >= 0)
	assert.True(t, ci < ai && ai < bi, "setters must follow declaration order")
}
