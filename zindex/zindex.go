// Package zindex partitions a flat rule list into drawing-order bands.
package zindex

import (
	"sort"

	"github.com/geocart/cartosld/cssrule"
)

// Band is one z-index drawing layer: the z-index itself and the
// sub-rules restricted to it.
type Band struct {
	Z     int
	Rules []cssrule.CssRule
}

// Partition splits rules into bands ordered by ascending z-index. A
// rule with no explicit z-index contributes a sub-rule to every band
// that exists; a band is only emitted at all if at least one of its
// sub-rules carries a symbolizer-producing property, so purely
// structural z-indexes (used only to order rules that never draw
// anything) do not produce empty output.
func Partition(rules []cssrule.CssRule) []Band {
	zset := make(map[int]struct{})
	for _, r := range rules {
		for z := range r.GetZIndexes() {
			zset[z] = struct{}{}
		}
	}
	if len(zset) == 0 {
		zset[0] = struct{}{}
	}

	zs := make([]int, 0, len(zset))
	for z := range zset {
		zs = append(zs, z)
	}
	sort.Ints(zs)

	var bands []Band
	for _, z := range zs {
		var subRules []cssrule.CssRule
		hasSymbolizer := false
		for _, r := range rules {
			sub := r.GetSubRuleByZIndex(z)
			if sub == nil {
				continue
			}
			subRules = append(subRules, *sub)
			if sub.HasSymbolizerProperty() {
				hasSymbolizer = true
			}
		}
		if !hasSymbolizer {
			continue
		}
		bands = append(bands, Band{Z: z, Rules: subRules})
	}
	return bands
}
