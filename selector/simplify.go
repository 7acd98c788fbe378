package selector

import (
	"strconv"

	"github.com/geocart/cartosld/featuretype"
	"github.com/geocart/cartosld/predicate"
)

// Simplify rewrites s against an optional feature type context,
// folding Data atoms that become empty or tautological once the
// referenced attribute's coarse type (and, for numeric attributes,
// simple interval reasoning across conjoined comparisons) is known.
// ft is threaded as a parameter rather than mutated onto shared
// selector nodes, per the design notes on cyclic back-references.
func Simplify(s Selector, ft *featuretype.Type) Selector {
	switch v := s.(type) {
	case AndNode:
		children := make([]Selector, len(v.Children))
		for i, c := range v.Children {
			children[i] = Simplify(c, ft)
		}
		return foldConjunction(And(children...))
	case OrNode:
		children := make([]Selector, len(v.Children))
		for i, c := range v.Children {
			children[i] = Simplify(c, ft)
		}
		return Or(children...)
	case Not:
		return Negate(Simplify(v.Operand, ft))
	case Data:
		return simplifyDataAtom(v.WithFeatureType(ft))
	default:
		return s
	}
}

// simplifyDataAtom folds an individual Data atom using only
// information local to that atom: an inverted Between range, or a
// scalar comparison against an attribute known to be a geometry.
func simplifyDataAtom(d Data) Selector {
	switch p := d.Predicate.(type) {
	case predicate.Between:
		if lo, lok := parseFloat(p.Low.ToLiteral()); lok {
			if hi, hok := parseFloat(p.High.ToLiteral()); hok && lo > hi {
				return Reject
			}
		}
	case predicate.Compare:
		if d.FeatureType != nil {
			if attr, ok := d.FeatureType.Attribute(p.Property); ok && attr.Kind == featuretype.GeometryKind {
				return Reject
			}
		}
	}
	return d
}

// foldConjunction looks for pairs of Data atoms, conjoined by And,
// that compare the same property and are mutually exclusive - e.g.
// population > 1000 AND population < 500 - collapsing the whole
// conjunction to Reject. This is a documented subset of full interval
// arithmetic: only direct Compare-vs-Compare pairs are folded (numeric
// literals by interval reasoning, non-numeric literals only when two
// equalities name different values), not predicates nested inside a
// Data's own boolean structure.
func foldConjunction(s Selector) Selector {
	a, ok := s.(AndNode)
	if !ok {
		return s
	}

	var compares []predicate.Compare
	for _, c := range a.Children {
		if d, ok := c.(Data); ok {
			if cmp, ok := d.Predicate.(predicate.Compare); ok {
				compares = append(compares, cmp)
			}
		}
	}

	for i := 0; i < len(compares); i++ {
		for j := i + 1; j < len(compares); j++ {
			if contradicts(compares[i], compares[j]) {
				return Reject
			}
		}
	}

	return s
}

// contradicts reports whether two comparisons on the same property
// can never both hold.
func contradicts(a, b predicate.Compare) bool {
	if a.Property != b.Property {
		return false
	}
	av, aok := parseFloat(a.Value.ToLiteral())
	bv, bok := parseFloat(b.Value.ToLiteral())
	if !aok || !bok {
		if a.Op == predicate.Eq && b.Op == predicate.Eq {
			return a.Value.ToLiteral() != b.Value.ToLiteral()
		}
		return false
	}

	switch {
	case a.Op == predicate.Eq && b.Op == predicate.Ne,
		a.Op == predicate.Ne && b.Op == predicate.Eq:
		return av == bv
	case a.Op == predicate.Eq:
		return !satisfies(b.Op, av, bv)
	case b.Op == predicate.Eq:
		return !satisfies(a.Op, bv, av)
	}

	lower, lowerClosed, hasLower := numericBound(a.Op, av, true)
	if !hasLower {
		lower, lowerClosed, hasLower = numericBound(b.Op, bv, true)
	}
	upper, upperClosed, hasUpper := numericBound(a.Op, av, false)
	if !hasUpper {
		upper, upperClosed, hasUpper = numericBound(b.Op, bv, false)
	}
	if !hasLower || !hasUpper {
		return false
	}
	if lower > upper {
		return true
	}
	if lower == upper && !(lowerClosed && upperClosed) {
		return true
	}
	return false
}

// numericBound reports whether op (applied with operand value)
// constrains the given side (lower=true for a minimum, lower=false
// for a maximum), and whether that bound is closed (inclusive).
func numericBound(op predicate.Op, value float64, lower bool) (bound float64, closed bool, ok bool) {
	if lower {
		switch op {
		case predicate.Gt:
			return value, false, true
		case predicate.Ge:
			return value, true, true
		}
	} else {
		switch op {
		case predicate.Lt:
			return value, false, true
		case predicate.Le:
			return value, true, true
		}
	}
	return 0, false, false
}

func satisfies(op predicate.Op, target, value float64) bool {
	switch op {
	case predicate.Lt:
		return target < value
	case predicate.Le:
		return target <= value
	case predicate.Gt:
		return target > value
	case predicate.Ge:
		return target >= value
	case predicate.Eq:
		return target == value
	case predicate.Ne:
		return target != value
	default:
		return true
	}
}

func parseFloat(literal string) (float64, bool) {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

