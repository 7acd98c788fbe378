// Package extract pulls narrow facts out of a selector tree: the set
// of type names it references, the single scale range it admits, and
// a best-effort feature-type sketch built from the attributes it
// touches.
package extract

import (
	"strconv"

	"github.com/geocart/cartosld/featuretype"
	"github.com/geocart/cartosld/predicate"
	"github.com/geocart/cartosld/selector"
)

// TypeNames returns the set of TypeName values s references. A
// selector with no TypeName atom at all contributes the default
// wildcard, matching the "no explicit type name means any type"
// reading of the algebra.
func TypeNames(s selector.Selector) map[string]struct{} {
	out := make(map[string]struct{})
	found := false
	selector.Walk(s, func(n selector.Selector) {
		if tn, ok := n.(selector.TypeName); ok && !tn.IsDefault() {
			out[tn.Name] = struct{}{}
			found = true
		}
	})
	if !found {
		out[selector.DefaultTypeNameValue] = struct{}{}
	}
	return out
}

// ScaleRange returns the single scale range s admits, and false if s
// imposes no scale constraint at all, or imposes one that cannot be
// expressed as a single range (a disjunction of distinct ranges,
// handled instead by the flattening stage upstream of this call).
func ScaleRange(s selector.Selector) (selector.ScaleRange, bool) {
	switch v := s.(type) {
	case selector.ScaleRange:
		return v, true
	case selector.AndNode:
		acc := selector.FullScaleRange
		any := false
		for _, c := range v.Children {
			if r, ok := ScaleRange(c); ok {
				if !any {
					acc = r
					any = true
					continue
				}
				merged, ok := acc.Intersect(r)
				if !ok {
					return selector.ScaleRange{}, false
				}
				acc = merged
			}
		}
		if !any {
			return selector.ScaleRange{}, false
		}
		return acc, true
	default:
		return selector.ScaleRange{}, false
	}
}

// HasScaleRange reports whether s admits a single expressible scale
// range, mirroring the check the scale-range flattening stage uses to
// classify Or children as "scale-bearing" versus "other".
func HasScaleRange(s selector.Selector) bool {
	_, ok := ScaleRange(s)
	return ok
}

// FeatureTypeSketch infers a minimal feature-type descriptor from the
// attributes referenced in s's Data predicates: their names and a
// coarse kind guessed from the comparison operands.
func FeatureTypeSketch(s selector.Selector) *featuretype.Type {
	attrs := make(map[string]featuretype.Kind)
	selector.Walk(s, func(n selector.Selector) {
		d, ok := n.(selector.Data)
		if !ok {
			return
		}
		walkPredicate(d.Predicate, attrs)
	})

	ft := &featuretype.Type{}
	for name, kind := range attrs {
		ft.Attributes = append(ft.Attributes, featuretype.Attribute{Name: name, Kind: kind})
	}
	return ft
}

func walkPredicate(p predicate.Predicate, attrs map[string]featuretype.Kind) {
	switch v := p.(type) {
	case predicate.Compare:
		mergeKind(attrs, v.Property, guessKind(v.Op, v.Value))
	case predicate.Between:
		mergeKind(attrs, v.Property, featuretype.NumberKind)
	case predicate.And:
		walkPredicate(v.Left, attrs)
		walkPredicate(v.Right, attrs)
	case predicate.Or:
		walkPredicate(v.Left, attrs)
		walkPredicate(v.Right, attrs)
	case predicate.Not:
		walkPredicate(v.Operand, attrs)
	}
}

func guessKind(op predicate.Op, v interface{ ToLiteral() string }) featuretype.Kind {
	if op == predicate.Like {
		return featuretype.StringKind
	}
	if _, ok := parseFloat(v.ToLiteral()); ok {
		return featuretype.NumberKind
	}
	return featuretype.StringKind
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// mergeKind widens an attribute's recorded kind to Unknown if two
// predicates disagree about it, rather than silently picking one.
func mergeKind(attrs map[string]featuretype.Kind, name string, kind featuretype.Kind) {
	if existing, ok := attrs[name]; ok && existing != kind {
		attrs[name] = featuretype.Unknown
		return
	}
	attrs[name] = kind
}
