// Package translate orchestrates the whole compilation pipeline: a
// cascading Stylesheet goes in, a rendered SLD Style comes out.
package translate

import (
	"github.com/geocart/cartosld/coverage"
	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/extract"
	"github.com/geocart/cartosld/featuretype"
	"github.com/geocart/cartosld/powerset"
	"github.com/geocart/cartosld/scaleflatten"
	"github.com/geocart/cartosld/selector"
	"github.com/geocart/cartosld/sld"
	"github.com/geocart/cartosld/typegroup"
	"github.com/geocart/cartosld/zindex"
)

// Translator compiles Stylesheets into Styles. It holds no mutable
// state between calls: a translation is a pure function of the
// stylesheet and the combination cap, with the optional Catalog as
// the only external collaborator. MaxCombinations is a plain field
// rather than something Translate resolves from the environment
// itself - the caller (config.Config) resolves environment overrides
// once, at config-load time, and passes the result in here.
type Translator struct {
	// MaxCombinations bounds the power-set combiner's output per
	// feature-type group. Zero means powerset.DefaultMaxCombinations.
	MaxCombinations int
	// Catalog supplies authoritative feature-type attribute
	// information, consulted ahead of the heuristic guesser. Nil is a
	// valid value: the heuristic guesser alone is still used.
	Catalog featuretype.Source
	// StyleName is copied verbatim into the emitted Style/UserStyle.
	StyleName string
}

// New returns a Translator using the default combination cap.
func New() *Translator { return &Translator{} }

// Translate compiles stylesheet into a Style. It never returns a
// partial Style: the first synthesis error aborts the whole run.
func (t *Translator) Translate(stylesheet cssrule.Stylesheet) (sld.Style, error) {
	maxCombinations := t.MaxCombinations
	if maxCombinations <= 0 {
		maxCombinations = powerset.DefaultMaxCombinations
	}

	style := sld.Style{Name: t.StyleName}

	for _, band := range zindex.Partition(stylesheet.Rules) {
		for _, group := range typegroup.Partition(band.Rules) {
			fts, err := t.buildFeatureTypeStyle(group, maxCombinations)
			if err != nil {
				return sld.Style{}, err
			}
			if fts == nil {
				continue
			}
			style.FeatureTypeStyles = append(style.FeatureTypeStyles, *fts)
		}
	}

	return style, nil
}

func (t *Translator) buildFeatureTypeStyle(group typegroup.Group, maxCombinations int) (*sld.FeatureTypeStyle, error) {
	ft := t.resolveFeatureType(group)

	simplified := make([]cssrule.CssRule, len(group.Rules))
	for i, r := range group.Rules {
		simplified[i] = cssrule.New(selector.Simplify(r.Selector, ft), r.Properties, r.Comment)
	}

	flattened := scaleflatten.Flatten(simplified)
	ordered := cssrule.SortBySpecificityDescending(flattened)

	combined := powerset.Build(ordered, maxCombinations)
	combinedOrdered := cssrule.SortBySpecificityDescending(combined)

	derived := coverage.New().Apply(combinedOrdered, ruleScaleRange)

	var rules []sld.Rule
	for _, dr := range derived {
		rule, ok, err := buildSldRule(dr)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		rules = append(rules, rule)
	}
	if len(rules) == 0 {
		return nil, nil
	}

	var names []string
	if group.Name != selector.DefaultTypeNameValue {
		names = []string{group.Name}
	}
	return &sld.FeatureTypeStyle{FeatureTypeNames: names, Rules: rules}, nil
}

// resolveFeatureType merges the catalog's authoritative attributes (if
// a catalog is configured and knows this type) with the heuristic
// sketch built from every Data atom referenced across the group, with
// the catalog taking precedence on overlapping attribute names.
func (t *Translator) resolveFeatureType(group typegroup.Group) *featuretype.Type {
	sketch := &featuretype.Type{Name: group.Name}
	for _, r := range group.Rules {
		guessed := extract.FeatureTypeSketch(r.Selector)
		sketch = sketch.Merge(guessed)
	}

	if t.Catalog == nil || group.Name == selector.DefaultTypeNameValue {
		return sketch
	}
	authoritative, err := t.Catalog.FeatureType(group.Name)
	if err != nil || authoritative == nil {
		return sketch
	}
	return authoritative.Merge(sketch)
}

func ruleScaleRange(r cssrule.CssRule) selector.ScaleRange {
	if sr, ok := extract.ScaleRange(r.Selector); ok {
		return sr
	}
	return selector.FullScaleRange
}
