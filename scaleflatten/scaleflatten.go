// Package scaleflatten splits rules whose selector is a top-level Or
// of scale ranges into one sibling rule per range, since the SLD
// output model cannot express a disjunction of scale ranges within a
// single rule.
package scaleflatten

import (
	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/extract"
	"github.com/geocart/cartosld/selector"
)

// Flatten rewrites rules, replacing any Or-selector rule with one
// sibling per scale-bearing branch plus, when any non-scale-bearing
// branch exists, one rule for them (their Or, or the lone branch
// itself when only one is left). Rules
// whose selector is not an Or pass through unchanged.
func Flatten(rules []cssrule.CssRule) []cssrule.CssRule {
	out := make([]cssrule.CssRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, flattenRule(r)...)
	}
	return out
}

func flattenRule(r cssrule.CssRule) []cssrule.CssRule {
	or, ok := r.Selector.(selector.OrNode)
	if !ok {
		return []cssrule.CssRule{r}
	}

	var scaleBearing []selector.Selector
	var other []selector.Selector
	for _, child := range or.Children {
		if extract.HasScaleRange(child) {
			scaleBearing = append(scaleBearing, child)
		} else {
			other = append(other, child)
		}
	}

	out := make([]cssrule.CssRule, 0, len(scaleBearing)+1)
	for _, s := range scaleBearing {
		out = append(out, cssrule.New(s, r.Properties, r.Comment))
	}
	if len(other) > 0 {
		out = append(out, cssrule.New(selector.Or(other...), r.Properties, r.Comment))
	}
	return out
}
