// Package powerset combines cascading rules that may apply
// simultaneously into the disjoint set of merged rules the SLD output
// model actually needs: one rule per distinct combination of
// cascading rules that can be simultaneously true for some feature.
package powerset

import (
	"sort"
	"strings"

	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/selector"
)

// DefaultMaxCombinations is the combination cap used when the caller
// does not override it (e.g. via the CARTOSLD_MAX_COMBINATIONS
// environment variable read at the config layer).
const DefaultMaxCombinations = 10000

// Build enumerates subsets of rules - which must already be sorted by
// descending specificity, e.g. via cssrule.SortBySpecificityDescending
// - and keeps the cap highest-priority ones, priority being combined
// specificity descending, then source position (the subset's index
// tuple into rules) ascending, then subset cardinality ascending. A
// subset survives if its conjoined selector is satisfiable and some
// feature can match it exclusively (the intersection with the
// negation of every rule outside the subset is also satisfiable).
// Every singleton subset is always kept regardless of the cap: a rule
// that never combines with anything else must still get a chance to
// stand alone.
func Build(rules []cssrule.CssRule, cap int) []cssrule.CssRule {
	if cap <= 0 {
		cap = DefaultMaxCombinations
	}
	n := len(rules)

	var singles []cssrule.CssRule
	for i := 0; i < n; i++ {
		if r, ok := combine(rules, []int{i}); ok {
			singles = append(singles, r)
		}
	}

	type candidate struct {
		rule    cssrule.CssRule
		indices []int
	}
	var rest []candidate
	for size := 2; size <= n; size++ {
		enumerateCombinations(n, size, func(indices []int) bool {
			if r, ok := combine(rules, indices); ok {
				rest = append(rest, candidate{rule: r, indices: indices})
			}
			return true
		})
	}

	sort.SliceStable(rest, func(i, j int) bool {
		a, b := rest[i], rest[j]
		if c := selector.Compare(a.rule.Specificity(), b.rule.Specificity()); c != 0 {
			return c > 0
		}
		if c := compareIndices(a.indices, b.indices); c != 0 {
			return c < 0
		}
		return len(a.indices) < len(b.indices)
	})

	out := append([]cssrule.CssRule(nil), singles...)
	for _, c := range rest {
		if len(out) >= len(singles)+cap {
			break
		}
		out = append(out, c.rule)
	}
	return out
}

// compareIndices orders two ascending index tuples lexicographically,
// treating a tuple as smaller than an extension of itself.
func compareIndices(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if d := a[i] - b[i]; d != 0 {
			return d
		}
	}
	return len(a) - len(b)
}

// combine builds the merged rule for the subset named by indices
// (ascending, into rules), or reports ok=false if the subset is
// unsatisfiable or no feature can match it exclusively (its
// conjunction with the negation of every rule outside it is Reject).
func combine(rules []cssrule.CssRule, indices []int) (cssrule.CssRule, bool) {
	in := make(map[int]bool, len(indices))
	for _, i := range indices {
		in[i] = true
	}

	combined := selector.Accept
	for _, i := range indices {
		combined = selector.And(combined, rules[i].Selector)
	}
	if selector.IsReject(combined) {
		return cssrule.CssRule{}, false
	}

	anti := selector.Accept
	for j := range rules {
		if in[j] {
			continue
		}
		anti = selector.And(anti, selector.Negate(rules[j].Selector))
	}
	if selector.IsReject(selector.And(combined, anti)) {
		return cssrule.CssRule{}, false
	}

	props := cssrule.PropertyBag{}
	var comments []string
	// Apply lowest-specificity members first so that, key by key,
	// the highest-specificity member in the subset wins the cascade.
	for k := len(indices) - 1; k >= 0; k-- {
		r := rules[indices[k]]
		for key, v := range r.Properties {
			props[key] = v
		}
		if r.Comment != "" {
			comments = append(comments, r.Comment)
		}
	}

	return cssrule.New(combined, props, strings.Join(comments, "\n")), true
}

// enumerateCombinations calls yield with every size-length increasing
// sequence of indices drawn from [0,n) in lexicographic order,
// stopping early if yield returns false.
func enumerateCombinations(n, size int, yield func([]int) bool) {
	if size > n {
		return
	}
	indices := make([]int, size)
	for i := range indices {
		indices[i] = i
	}

	for {
		if !yield(append([]int(nil), indices...)) {
			return
		}

		pos := size - 1
		for pos >= 0 && indices[pos] == n-size+pos {
			pos--
		}
		if pos < 0 {
			return
		}
		indices[pos]++
		for i := pos + 1; i < size; i++ {
			indices[i] = indices[i-1] + 1
		}
	}
}
