// Package cartocss is the minimal reader satisfying the translator's
// "parsed cartographic stylesheet" input boundary: it builds
// cssrule.Stylesheet values from a small, structurally-typed
// declarative document rather than from the dialect's full grammar
// (out of scope - spec.md keeps the parser external). A Document can
// be built directly by Go call sites (tests, cmd/) or decoded from
// YAML via yamldoc.go.
package cartocss

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/predicate"
	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/selector"
	"github.com/geocart/cartosld/value"
)

// Document is the whole declarative stylesheet: an ordered list of
// rules, cascade order preserved exactly as given.
type Document struct {
	Rules []RuleDoc
}

// RuleDoc is one rule: a selector tree, a property bag keyed by a
// small string encoding (see parsePropertyKey), and the free-text
// comment @title/@abstract extraction scans.
type RuleDoc struct {
	Selector   SelectorDoc
	Properties map[string][]string
	Comment    string
}

// SelectorDoc mirrors the selector algebra's node shapes directly,
// rather than a string grammar: a document author builds the same
// tree selector.Selector values would form, just spelled as nested
// structs (or YAML maps) instead of Go literals.
type SelectorDoc struct {
	Accept bool
	Reject bool

	TypeName string
	IDs      []string
	ZIndex   *int

	ScaleMin *float64
	ScaleMax *float64

	Data *DataDoc

	And []SelectorDoc
	Or  []SelectorDoc
	Not *SelectorDoc
}

// DataDoc is one attribute predicate: a comparison, a between-range,
// or a feature-id membership test, matching predicate.Predicate's
// concrete shapes one level deep (composing predicates with their own
// And/Or/Not is left to nesting Data atoms under SelectorDoc.And/Or).
type DataDoc struct {
	Property string
	Op       string // one of =, <>, <, <=, >, >=, LIKE, BETWEEN, IDIN
	Value    string
	Low      string
	High     string
	IDs      []string
}

// Build compiles a Document into a cssrule.Stylesheet, preserving rule
// order. It is the single entry point every front end (direct Go
// construction, the YAML decoder) converges on.
func Build(doc Document) (cssrule.Stylesheet, error) {
	rules := make([]cssrule.CssRule, 0, len(doc.Rules))
	for i, rd := range doc.Rules {
		sel, err := buildSelector(rd.Selector)
		if err != nil {
			return cssrule.Stylesheet{}, fmt.Errorf("rule %d: %w", i, err)
		}
		props, err := buildProperties(rd.Properties)
		if err != nil {
			return cssrule.Stylesheet{}, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, cssrule.New(sel, props, rd.Comment))
	}
	return cssrule.Stylesheet{Rules: rules}, nil
}

func buildSelector(d SelectorDoc) (selector.Selector, error) {
	switch {
	case d.Accept:
		return selector.Accept, nil
	case d.Reject:
		return selector.Reject, nil
	}

	var parts []selector.Selector

	if d.TypeName != "" {
		parts = append(parts, selector.TypeName{Name: d.TypeName})
	}
	if len(d.IDs) > 0 {
		parts = append(parts, selector.NewID(d.IDs...))
	}
	if d.ZIndex != nil {
		parts = append(parts, selector.ZIndex{Z: *d.ZIndex})
	}
	if d.ScaleMin != nil || d.ScaleMax != nil {
		sr := selector.FullScaleRange
		if d.ScaleMin != nil {
			sr.Min = *d.ScaleMin
		}
		if d.ScaleMax != nil {
			sr.Max = *d.ScaleMax
		}
		parts = append(parts, sr)
	}
	if d.Data != nil {
		pred, err := buildPredicate(*d.Data)
		if err != nil {
			return nil, err
		}
		parts = append(parts, selector.Data{Predicate: pred})
	}
	for _, child := range d.And {
		s, err := buildSelector(child)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}

	if len(d.Or) > 0 {
		var orParts []selector.Selector
		for _, child := range d.Or {
			s, err := buildSelector(child)
			if err != nil {
				return nil, err
			}
			orParts = append(orParts, s)
		}
		parts = append(parts, selector.Or(orParts...))
	}

	if d.Not != nil {
		s, err := buildSelector(*d.Not)
		if err != nil {
			return nil, err
		}
		parts = append(parts, selector.Negate(s))
	}

	if len(parts) == 0 {
		return selector.Accept, nil
	}
	return selector.And(parts...), nil
}

func buildPredicate(d DataDoc) (predicate.Predicate, error) {
	if d.Op == "IDIN" {
		return predicate.IDIn{IDs: d.IDs}, nil
	}
	if d.Op == "BETWEEN" {
		return predicate.Between{
			Property: d.Property,
			Low:      parseValue(d.Low),
			High:     parseValue(d.High),
		}, nil
	}

	op, ok := parseOp(d.Op)
	if !ok {
		return nil, fmt.Errorf("unknown comparison operator %q", d.Op)
	}
	return predicate.Compare{Property: d.Property, Op: op, Value: parseValue(d.Value)}, nil
}

func parseOp(s string) (predicate.Op, bool) {
	switch s {
	case "=", "":
		return predicate.Eq, true
	case "<>", "!=":
		return predicate.Ne, true
	case "<":
		return predicate.Lt, true
	case "<=":
		return predicate.Le, true
	case ">":
		return predicate.Gt, true
	case ">=":
		return predicate.Ge, true
	case "LIKE", "like":
		return predicate.Like, true
	default:
		return 0, false
	}
}

// buildProperties decodes the flat string-keyed property map into a
// cssrule.PropertyBag. A key is either a bare property name (meaning
// the root pseudo-class) or "pseudo/property" or "pseudo:index/property"
// for a repeated-symbolizer layer, e.g. "symbol:2/fill-opacity".
func buildProperties(raw map[string][]string) (cssrule.PropertyBag, error) {
	bag := cssrule.PropertyBag{}
	for key, literals := range raw {
		pc, name, err := parsePropertyKey(key)
		if err != nil {
			return nil, err
		}
		values := make([]value.Value, len(literals))
		for i, lit := range literals {
			values[i] = parseValue(lit)
		}
		bag[cssrule.PropertyKey{PseudoClass: pc, Name: name}] = values
	}
	return bag, nil
}

func parsePropertyKey(key string) (pseudoclass.PseudoClass, cssrule.PropertyName, error) {
	slash := strings.IndexByte(key, '/')
	if slash < 0 {
		return pseudoclass.RootClass, cssrule.PropertyName(key), nil
	}

	pseudoPart, propertyPart := key[:slash], key[slash+1:]
	colon := strings.IndexByte(pseudoPart, ':')
	if colon < 0 {
		return pseudoclass.New(pseudoPart), cssrule.PropertyName(propertyPart), nil
	}

	index, err := strconv.Atoi(pseudoPart[colon+1:])
	if err != nil {
		return pseudoclass.PseudoClass{}, "", fmt.Errorf("invalid pseudo-class index in %q: %w", key, err)
	}
	return pseudoclass.NewIndexed(pseudoPart[:colon], index), cssrule.PropertyName(propertyPart), nil
}

// parseValue recognizes the function-call syntax (name(arg, arg, ...))
// used by symbol(...), url(...), and color-map-entry(...); anything
// else is a bare literal token.
func parseValue(s string) value.Value {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return value.Literal(s)
	}

	name := s[:open]
	inner := s[open+1 : len(s)-1]
	var params []value.Value
	if inner != "" {
		for _, arg := range strings.Split(inner, ",") {
			params = append(params, parseValue(arg))
		}
	}
	return value.Function{Name: name, Params: params}
}
