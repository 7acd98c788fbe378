// Package cssrule holds the input data model the translator consumes:
// the cascading CssRule/Stylesheet pair produced by the (external)
// cartographic-stylesheet parser.
package cssrule

import (
	"sort"
	"strings"

	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/selector"
	"github.com/geocart/cartosld/value"
)

// PropertyName is a recognized cartographic property key. It is a
// closed enumeration for the reserved keys the translator interprets
// directly, with a plain-string fallback for vendor/extension keys -
// see the design notes on stringly-typed property maps.
type PropertyName string

// Reserved property names that, at the ROOT pseudo-class, trigger a
// symbolizer.
const (
	PropFill           PropertyName = "fill"
	PropStroke         PropertyName = "stroke"
	PropMark           PropertyName = "mark"
	PropLabel          PropertyName = "label"
	PropRasterChannels PropertyName = "raster-channels"
)

// SymbolizerTriggers lists the ROOT-level properties whose presence
// triggers generation of a symbolizer.
var SymbolizerTriggers = []PropertyName{PropFill, PropStroke, PropMark, PropLabel, PropRasterChannels}

// PropertyKey identifies one entry of a rule's property bag: a
// pseudo-class namespace plus a property name.
type PropertyKey struct {
	PseudoClass pseudoclass.PseudoClass
	Name        PropertyName
}

// PropertyBag maps (pseudo-class, property name) to the list of
// values assigned to it. A multi-element list represents repetition:
// the i-th symbolizer takes the i-th value, with scalar broadcast
// when one property has a single value and another has many.
type PropertyBag map[PropertyKey][]value.Value

// Clone returns a shallow copy of the bag (the []value.Value slices
// are shared, since values are immutable once parsed).
func (b PropertyBag) Clone() PropertyBag {
	out := make(PropertyBag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Get returns the values assigned to name at pc.
func (b PropertyBag) Get(pc pseudoclass.PseudoClass, name PropertyName) []value.Value {
	return b[PropertyKey{PseudoClass: pc, Name: name}]
}

// Has reports whether pc/name has at least one assigned value.
func (b PropertyBag) Has(pc pseudoclass.PseudoClass, name PropertyName) bool {
	return len(b.Get(pc, name)) > 0
}

// HasAny reports whether any of names is present at pc.
func (b PropertyBag) HasAny(pc pseudoclass.PseudoClass, names []PropertyName) bool {
	for _, n := range names {
		if b.Has(pc, n) {
			return true
		}
	}
	return false
}

// Select returns the subset of b whose property name matches any of
// names or has that string as a prefix followed by '-' (e.g. "fill"
// selects "fill", "fill-opacity", "fill-geometry", ...), restricted to
// pc.
func (b PropertyBag) Select(pc pseudoclass.PseudoClass, names ...PropertyName) map[PropertyName][]value.Value {
	out := make(map[PropertyName][]value.Value)
	for key, v := range b {
		if key.PseudoClass != pc {
			continue
		}
		for _, n := range names {
			if key.Name == n || strings.HasPrefix(string(key.Name), string(n)+"-") {
				out[key.Name] = v
				break
			}
		}
	}
	return out
}

// CssRule is a single cascading rule: a selector, a property bag, and
// an optional source comment used for @title/@abstract extraction.
type CssRule struct {
	Selector   selector.Selector
	Properties PropertyBag
	Comment    string
}

// New builds a CssRule, defaulting a nil property bag to empty.
func New(sel selector.Selector, props PropertyBag, comment string) CssRule {
	if props == nil {
		props = PropertyBag{}
	}
	return CssRule{Selector: sel, Properties: props, Comment: comment}
}

// HasSymbolizerProperty reports whether the ROOT pseudo-class carries
// at least one reserved visual property.
func (r CssRule) HasSymbolizerProperty() bool {
	return r.Properties.HasAny(pseudoclass.RootClass, SymbolizerTriggers)
}

// HasProperty reports whether pc/name is present.
func (r CssRule) HasProperty(pc pseudoclass.PseudoClass, name PropertyName) bool {
	return r.Properties.Has(pc, name)
}

// HasAnyProperty reports whether any of names is present at pc.
func (r CssRule) HasAnyProperty(pc pseudoclass.PseudoClass, names []PropertyName) bool {
	return r.Properties.HasAny(pc, names)
}

// GetZIndexes returns the set of z-indexes r's selector explicitly
// mentions. A rule with no ZIndex atom contributes to every band and
// returns an empty set.
func (r CssRule) GetZIndexes() map[int]struct{} {
	out := make(map[int]struct{})
	selector.Walk(r.Selector, func(s selector.Selector) {
		if z, ok := s.(selector.ZIndex); ok {
			out[z.Z] = struct{}{}
		}
	})
	return out
}

// GetSubRuleByZIndex restricts r to the given z-index band: ZIndex
// atoms matching z are dropped (they are now implied by the band),
// ZIndex atoms for another value make the whole rule inapplicable
// (nil is returned), and a rule with no ZIndex atom at all passes
// through unchanged, since it applies to every band.
func (r CssRule) GetSubRuleByZIndex(z int) *CssRule {
	zindexes := r.GetZIndexes()
	if len(zindexes) == 0 {
		sub := r
		return &sub
	}
	if _, ok := zindexes[z]; !ok {
		return nil
	}

	stripped := selector.Transform(r.Selector, func(s selector.Selector) (selector.Selector, bool) {
		if zi, ok := s.(selector.ZIndex); ok {
			if zi.Z == z {
				return selector.Accept, true
			}
			return selector.Reject, true
		}
		return s, false
	})
	stripped = selector.Simplify(stripped, nil)
	sub := New(stripped, r.Properties, r.Comment)
	return &sub
}

// Specificity returns the specificity of r's selector.
func (r CssRule) Specificity() selector.Specificity { return r.Selector.Specificity() }

// Stylesheet is an ordered list of cascading rules, as produced by
// the (external) cartographic-stylesheet parser.
type Stylesheet struct {
	Rules []CssRule
}

// SortBySpecificityDescending returns a copy of rules ordered by
// descending specificity, stable on ties (source order preserved).
func SortBySpecificityDescending(rules []CssRule) []CssRule {
	out := make([]CssRule, len(rules))
	copy(out, rules)
	sort.SliceStable(out, func(i, j int) bool {
		return selector.Compare(out[i].Specificity(), out[j].Specificity()) > 0
	})
	return out
}
