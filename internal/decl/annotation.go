package decl

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/structkit/structkit/internal/diag"
)

// Annotation keys recognized in struct tags.
const (
	KeyBuilder = "builder"
	KeyDebug   = "debug"
)

// recognizedKeys is checked in a fixed order so diagnostics are stable.
var recognizedKeys = []string{KeyBuilder, KeyDebug}

// parseTag extracts recognized annotations from a raw struct-tag
// literal. Each key fixes its payload shape: a bare literal or a
// name=value list. Anything else is a hard error.
func parseTag(raw string, loc diag.Location) ([]Annotation, []diag.Diagnostic) {
	unquoted, err := strconv.Unquote(raw)
	if err != nil {
		return nil, []diag.Diagnostic{
			diag.Errorf("reader", diag.CodeMalformedTag, loc, "malformed struct tag %s", raw),
		}
	}

	var (
		annotations []Annotation
		diags       []diag.Diagnostic
	)
	tag := reflect.StructTag(unquoted)
	for _, key := range recognizedKeys {
		value, ok := tag.Lookup(key)
		if !ok {
			continue
		}
		ann, err := parsePayload(key, value, loc)
		if err != nil {
			diags = append(diags, *err)
			continue
		}
		annotations = append(annotations, ann)
	}
	return annotations, diags
}

// parsePayload parses one annotation value into its payload shape.
// The shape follows the key, not the value: debug carries a bare
// format literal, which may itself contain '='; builder carries
// name=value pairs.
func parsePayload(key, value string, loc diag.Location) (Annotation, *diag.Diagnostic) {
	if value == "" {
		d := diag.Errorf("reader", diag.CodeEmptyAnnotationValue, loc,
			"annotation %q has an empty payload", key)
		return Annotation{}, &d
	}

	if key == KeyDebug {
		return Annotation{Key: key, Literal: value, Loc: loc}, nil
	}

	var pairs []Pair
	for _, entry := range strings.Split(value, ",") {
		name, val, found := strings.Cut(entry, "=")
		if !found || name == "" || val == "" {
			d := diag.Errorf("reader", diag.CodeMalformedTag, loc,
				"annotation %q: entry %q is not a name=value pair", key, entry)
			return Annotation{}, &d
		}
		pairs = append(pairs, Pair{Name: name, Value: val})
	}
	return Annotation{Key: key, Pairs: pairs, Loc: loc}, nil
}

// Directive names and their recognized arguments.
const directivePrefix = "//structkit:"

var directiveArgs = map[string][]string{
	"builder": {},
	"debug":   {"bound"},
}

// parseDirective parses one //structkit: comment line.
func parseDirective(line string, loc diag.Location) (Directive, *diag.Diagnostic) {
	rest := strings.TrimPrefix(line, directivePrefix)

	name := rest
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		name, rest = rest[:i], rest[i+1:]
	} else {
		rest = ""
	}

	allowed, ok := directiveArgs[name]
	if !ok {
		d := diag.Errorf("reader", diag.CodeUnknownDirective, loc,
			"unknown directive %q", "structkit:"+name)
		return Directive{}, &d
	}

	dir := Directive{Name: name, Loc: loc}
	for rest = strings.TrimLeft(rest, " "); rest != ""; rest = strings.TrimLeft(rest, " ") {
		key, tail, found := strings.Cut(rest, "=")
		if !found || key == "" {
			d := malformedDirective(name, loc, "expected key=\"value\" arguments")
			return Directive{}, &d
		}
		quoted, err := strconv.QuotedPrefix(tail)
		if err != nil {
			d := malformedDirective(name, loc, fmt.Sprintf("argument %q must be a quoted string", key))
			return Directive{}, &d
		}
		value, err := strconv.Unquote(quoted)
		if err != nil {
			d := malformedDirective(name, loc, fmt.Sprintf("argument %q must be a quoted string", key))
			return Directive{}, &d
		}
		if !argAllowed(allowed, key) {
			d := diag.Errorf("reader", diag.CodeUnknownAnnotationKey, loc,
				"directive structkit:%s does not accept argument %q", name, key)
			return Directive{}, &d
		}
		dir.Args = append(dir.Args, Pair{Name: key, Value: value})
		rest = tail[len(quoted):]
	}
	return dir, nil
}

func malformedDirective(name string, loc diag.Location, reason string) diag.Diagnostic {
	return diag.Errorf("reader", diag.CodeMalformedDirective, loc,
		"malformed directive structkit:%s: %s", name, reason)
}

func argAllowed(allowed []string, key string) bool {
	for _, a := range allowed {
		if a == key {
			return true
		}
	}
	return false
}
