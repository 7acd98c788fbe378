// Package typegroup splits a z-index band into per-feature-type groups
// so that each emitted SLD FeatureTypeStyle only carries rules that
// can actually match its type.
package typegroup

import (
	"sort"

	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/extract"
	"github.com/geocart/cartosld/selector"
)

// Group is the rule set that applies to a single feature type name.
// Name is the wildcard value when the band references no explicit
// type name at all.
type Group struct {
	Name  string
	Rules []cssrule.CssRule
}

// Partition splits band into per-type-name groups, in stable
// insertion order of first appearance. When the only type name
// present across the whole band is the default wildcard, a single
// group carrying the band verbatim is returned, since there is
// nothing to disambiguate. Otherwise the wildcard is dropped from
// consideration - a rule with no explicit type restriction is
// conjoined with each concrete type name in turn rather than also
// producing its own "default" group, which would double-draw it.
func Partition(band []cssrule.CssRule) []Group {
	names := collectNames(band)
	if len(names) == 1 && names[0] == selector.DefaultTypeNameValue {
		return []Group{{Name: selector.DefaultTypeNameValue, Rules: band}}
	}

	var concrete []string
	for _, n := range names {
		if n != selector.DefaultTypeNameValue {
			concrete = append(concrete, n)
		}
	}

	groups := make([]Group, 0, len(concrete))
	for _, name := range concrete {
		var rules []cssrule.CssRule
		for _, r := range band {
			combined := selector.And(selector.TypeName{Name: name}, r.Selector)
			if selector.IsReject(combined) {
				continue
			}
			rules = append(rules, cssrule.New(combined, r.Properties, r.Comment))
		}
		if len(rules) > 0 {
			groups = append(groups, Group{Name: name, Rules: rules})
		}
	}
	return groups
}

// collectNames returns the type names referenced anywhere in band, in
// first-seen order.
func collectNames(band []cssrule.CssRule) []string {
	seen := make(map[string]struct{})
	var order []string
	for _, r := range band {
		names := extract.TypeNames(r.Selector)
		sorted := make([]string, 0, len(names))
		for name := range names {
			sorted = append(sorted, name)
		}
		sort.Strings(sorted)
		for _, name := range sorted {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				order = append(order, name)
			}
		}
	}
	return order
}
