package gen

import (
	"strings"

	"github.com/structkit/structkit/internal/decl"
	"github.com/structkit/structkit/internal/diag"
)

// stringerBound is the capability every rendered type parameter must
// carry unless exempted.
const stringerBound = "fmt.Stringer"

// paramUsage tracks how one type parameter appears across the fields.
type paramUsage struct {
	plain     bool // used directly as (part of) a field type
	marker    bool // used inside a recognized marker wrapper
	qualified bool // used only as the base of a qualified reference
}

// boundInfo is the outcome of bound inference for one declaration.
type boundInfo struct {
	params []decl.TypeParam // constraint-rewritten parameter list
	quals  []string         // qualified references carrying the requirement instead
	custom string           // explicit bound text replacing inference, "" if none
}

// inferBounds decides which type parameters of a debug declaration
// need the rendering capability. A parameter is exempt when it is used
// only inside a marker wrapper, or appears solely as the base of a
// qualified reference (the requirement then follows the reference),
// or when the declaration carries an explicit bound override.
func inferBounds(d decl.Declaration, markers map[string]bool) (boundInfo, *diag.Diagnostic) {
	if dir, ok := d.Directive("debug"); ok {
		if bound, ok := dir.Arg("bound"); ok {
			if strings.TrimSpace(bound) == "" {
				derr := diag.Errorf("gen", diag.CodeBadCustomBound, dir.Loc,
					"%s: debug bound override is empty", d.Name)
				return boundInfo{}, &derr
			}
			return boundInfo{custom: bound}, nil
		}
	}

	paramSet := make(map[string]bool, len(d.TypeParams))
	for _, p := range d.TypeParams {
		paramSet[p.Name] = true
	}

	usages := make(map[string]*paramUsage, len(d.TypeParams))
	for _, p := range d.TypeParams {
		usages[p.Name] = &paramUsage{}
	}

	var quals []string
	for _, f := range d.Fields {
		quals = scanUsage(f.Type, paramSet, markers, false, usages, quals)
	}

	info := boundInfo{params: make([]decl.TypeParam, 0, len(d.TypeParams))}
	info.quals = quals
	for _, p := range d.TypeParams {
		u := usages[p.Name]
		exempt := !u.plain && (u.marker || u.qualified)
		if exempt {
			info.params = append(info.params, p)
			continue
		}
		info.params = append(info.params, decl.TypeParam{
			Name:       p.Name,
			Constraint: addBound(p.Constraint),
		})
	}
	return info, nil
}

// scanUsage walks one type reference recording parameter usages.
func scanUsage(t decl.TypeRef, params, markers map[string]bool, inMarker bool, usages map[string]*paramUsage, quals []string) []string {
	switch t.Kind {
	case decl.RefPlain:
		if t.Qualified() {
			if params[t.Base()] {
				usages[t.Base()].qualified = true
				quals = appendUnique(quals, t.Name)
			}
			return quals
		}
		if params[t.Name] {
			if inMarker {
				usages[t.Name].marker = true
			} else {
				usages[t.Name].plain = true
			}
		}
		return quals

	case decl.RefPointer, decl.RefSlice:
		for _, arg := range t.Args {
			quals = scanUsage(arg, params, markers, inMarker, usages, quals)
		}
		return quals

	case decl.RefGeneric:
		inner := inMarker || markers[t.Name]
		for _, arg := range t.Args {
			quals = scanUsage(arg, params, markers, inner, usages, quals)
		}
		return quals

	default:
		return quals
	}
}

// addBound folds the rendering capability into an existing constraint.
func addBound(constraint string) string {
	switch constraint {
	case "any", "interface{}":
		return stringerBound
	default:
		return "interface{ " + constraint + "; " + stringerBound + " }"
	}
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
