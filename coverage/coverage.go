// Package coverage guarantees that, across all rules emitted for one
// feature-type group, no two rules can match the same feature at the
// same scale: each rule is cut down to the part of its domain not
// already claimed by a higher-specificity rule.
package coverage

import (
	"sort"

	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/selector"
)

// Domain is the (scale range, filter) region a rule occupies. A rule
// with no scale constraint occupies selector.FullScaleRange. Filter
// holds only the feature-predicate residue - any TypeName/ScaleRange
// atom embedded in the rule's own selector is stripped out and
// tracked separately in ScaleRange, so the two axes can be cut and
// recombined independently.
type Domain struct {
	ScaleRange selector.ScaleRange
	Filter     selector.Selector
}

// covered is one already-claimed sub-domain of the accumulator.
type covered struct {
	scaleRange selector.ScaleRange
	filter     selector.Selector
}

// selector rebuilds c's scale bound and feature filter into the one
// selector a derived cssrule.CssRule carries, so that extract.ScaleRange
// can recover the bound downstream without it ever having been
// entangled with the feature predicate.
func (c covered) selector() selector.Selector {
	if c.scaleRange.IsFull() {
		return c.filter
	}
	return selector.And(c.scaleRange, c.filter)
}

// Subtractor accumulates claimed domains and cuts each newly
// submitted rule down to its unclaimed remainder.
type Subtractor struct {
	claimed []covered
}

// New returns an empty Subtractor.
func New() *Subtractor { return &Subtractor{} }

// Apply processes rules in the order given - callers must supply them
// already sorted by descending specificity - subtracting, from each
// rule's domain, everything already claimed by an earlier rule, and
// returns one derived CssRule per surviving non-empty sub-domain.
func (s *Subtractor) Apply(rules []cssrule.CssRule, scaleRangeOf func(cssrule.CssRule) selector.ScaleRange) []cssrule.CssRule {
	var out []cssrule.CssRule
	for _, r := range rules {
		domain := Domain{ScaleRange: scaleRangeOf(r), Filter: featureFilter(r.Selector)}
		for _, sub := range s.visible(domain) {
			out = append(out, cssrule.New(sub.selector(), r.Properties, r.Comment))
		}
		s.claim(domain)
	}
	return out
}

// featureFilter strips every TypeName and ScaleRange atom out of s,
// leaving only the feature-attribute predicate the selector imposes.
// Those two axes are tracked separately as a Domain's ScaleRange (and,
// upstream, the rule's resolved feature type), so folding them into
// the filter here would make them unrecoverable once a claimed
// filter gets negated into a later rule's domain.
func featureFilter(s selector.Selector) selector.Selector {
	switch v := s.(type) {
	case selector.AndNode:
		children := make([]selector.Selector, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, featureFilter(c))
		}
		return selector.And(children...)
	case selector.OrNode:
		children := make([]selector.Selector, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, featureFilter(c))
		}
		return selector.Or(children...)
	case selector.Not:
		return selector.Negate(featureFilter(v.Operand))
	case selector.TypeName, selector.ScaleRange:
		return selector.Accept
	default:
		return s
	}
}

// visible computes the portions of d not already in s.claimed, by
// splitting d's scale range at every boundary present in the
// accumulator and, for each surviving scale sub-interval, excluding
// the disjunction of filters already covering it.
func (s *Subtractor) visible(d Domain) []covered {
	boundaries := map[float64]struct{}{d.ScaleRange.Min: {}, d.ScaleRange.Max: {}}
	for _, c := range s.claimed {
		lo, hi := intersectBounds(d.ScaleRange, c.scaleRange)
		if lo < hi {
			boundaries[lo] = struct{}{}
			boundaries[hi] = struct{}{}
		}
	}

	cuts := make([]float64, 0, len(boundaries))
	for b := range boundaries {
		if b >= d.ScaleRange.Min && b <= d.ScaleRange.Max {
			cuts = append(cuts, b)
		}
	}
	sort.Float64s(cuts)

	var out []covered
	for i := 0; i+1 < len(cuts); i++ {
		lo, hi := cuts[i], cuts[i+1]
		if lo >= hi {
			continue
		}
		interval := selector.ScaleRange{Min: lo, Max: hi}

		var coveringFilters []selector.Selector
		for _, c := range s.claimed {
			if clo, chi := intersectBounds(interval, c.scaleRange); clo < chi {
				coveringFilters = append(coveringFilters, c.filter)
			}
		}

		filter := d.Filter
		if len(coveringFilters) > 0 {
			filter = selector.And(filter, selector.Negate(selector.Or(coveringFilters...)))
		}
		if selector.IsReject(filter) {
			continue
		}
		out = append(out, covered{scaleRange: interval, filter: filter})
	}
	return out
}

// claim unions d into the accumulator.
func (s *Subtractor) claim(d Domain) {
	s.claimed = append(s.claimed, covered{scaleRange: d.ScaleRange, filter: d.Filter})
}

func intersectBounds(a, b selector.ScaleRange) (float64, float64) {
	lo := a.Min
	if b.Min > lo {
		lo = b.Min
	}
	hi := a.Max
	if b.Max < hi {
		hi = b.Max
	}
	return lo, hi
}
