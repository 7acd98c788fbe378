// Package selector implements the boolean algebra of selectors
// described in the data model: feature predicates, type-name
// constraints, scale-range constraints, and z-index pseudo-classes,
// combined with AND/OR/NOT and simplified to Accept/Reject.
package selector

import (
	"math"
	"sort"

	"github.com/geocart/cartosld/featuretype"
	"github.com/geocart/cartosld/predicate"
)

// Selector is any node of the selector algebra.
type Selector interface {
	isSelector()
	// Specificity returns the lexicographic complexity tuple used to
	// rank selectors (and the rules that carry them).
	Specificity() Specificity
}

// Specificity is the lexicographic tuple over selector contents:
// (TypeName count, Id count, Data atom count, ScaleRange atom count,
// pseudo-class count). ZIndex is the algebra's only pseudo-class
// selector, so PseudoClasses counts ZIndex atoms.
type Specificity struct {
	TypeNames    int
	IDs          int
	DataAtoms    int
	ScaleRanges  int
	PseudoClasses int
}

func (a Specificity) add(b Specificity) Specificity {
	return Specificity{
		TypeNames:     a.TypeNames + b.TypeNames,
		IDs:           a.IDs + b.IDs,
		DataAtoms:     a.DataAtoms + b.DataAtoms,
		ScaleRanges:   a.ScaleRanges + b.ScaleRanges,
		PseudoClasses: a.PseudoClasses + b.PseudoClasses,
	}
}

// Compare orders two Specificity tuples lexicographically, returning
// a negative number, zero, or a positive number as a is less than,
// equal to, or greater than b.
func Compare(a, b Specificity) int {
	if d := a.TypeNames - b.TypeNames; d != 0 {
		return d
	}
	if d := a.IDs - b.IDs; d != 0 {
		return d
	}
	if d := a.DataAtoms - b.DataAtoms; d != 0 {
		return d
	}
	if d := a.ScaleRanges - b.ScaleRanges; d != 0 {
		return d
	}
	return a.PseudoClasses - b.PseudoClasses
}

// acceptType and rejectType are the AND/OR identity singletons.
type acceptType struct{}
type rejectType struct{}

func (acceptType) isSelector()               {}
func (acceptType) Specificity() Specificity  { return Specificity{} }
func (rejectType) isSelector()               {}
func (rejectType) Specificity() Specificity  { return Specificity{} }

// Accept matches every feature at every scale; Reject matches none.
var (
	Accept Selector = acceptType{}
	Reject Selector = rejectType{}
)

// IsAccept and IsReject test a selector against the two identities.
func IsAccept(s Selector) bool { _, ok := s.(acceptType); return ok }
func IsReject(s Selector) bool { _, ok := s.(rejectType); return ok }

// DefaultTypeNameValue is the wildcard type-name, matching any
// feature type. TypeName{} (the zero value) is the default.
const DefaultTypeNameValue = ""

// TypeName constrains the selector to a named feature type.
type TypeName struct {
	Name string
}

func (TypeName) isSelector() {}

// IsDefault reports whether tn is the wildcard type name.
func (tn TypeName) IsDefault() bool { return tn.Name == DefaultTypeNameValue }

// Specificity returns one TypeName atom, unless tn is the wildcard,
// which imposes no real constraint.
func (tn TypeName) Specificity() Specificity {
	if tn.IsDefault() {
		return Specificity{}
	}
	return Specificity{TypeNames: 1}
}

// DefaultTypeName is the wildcard TypeName selector.
var DefaultTypeName = TypeName{Name: DefaultTypeNameValue}

// ID constrains the selector to feature-id membership.
type ID struct {
	IDs map[string]struct{}
}

// NewID builds an ID selector from a list of feature ids.
func NewID(ids ...string) ID {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return ID{IDs: set}
}

func (ID) isSelector() {}

// Specificity returns one Id atom.
func (id ID) Specificity() Specificity { return Specificity{IDs: 1} }

// SortedIDs returns id's members in a deterministic order.
func (id ID) SortedIDs() []string {
	out := make([]string, 0, len(id.IDs))
	for k := range id.IDs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ScaleRange is a semi-open interval [Min, Max) on the denominator
// scale. Max may be +Inf for an unbounded upper end.
type ScaleRange struct {
	Min, Max float64
}

// FullScaleRange matches every scale.
var FullScaleRange = ScaleRange{Min: 0, Max: math.Inf(1)}

func (ScaleRange) isSelector() {}

// Specificity returns one ScaleRange atom.
func (ScaleRange) Specificity() Specificity { return Specificity{ScaleRanges: 1} }

// Empty reports whether the interval admits no scale.
func (r ScaleRange) Empty() bool { return !(r.Min < r.Max) }

// IsFull reports whether r matches every scale.
func (r ScaleRange) IsFull() bool { return r.Min <= 0 && math.IsInf(r.Max, 1) }

// Intersect computes the overlap of two scale ranges. ok is false
// when the ranges are disjoint.
func (r ScaleRange) Intersect(o ScaleRange) (ScaleRange, bool) {
	min := math.Max(r.Min, o.Min)
	max := math.Min(r.Max, o.Max)
	if min < max {
		return ScaleRange{Min: min, Max: max}, true
	}
	return ScaleRange{}, false
}

// ZIndex is a pseudo-class selector on the rule's drawing order band.
type ZIndex struct {
	Z int
}

func (ZIndex) isSelector() {}

// Specificity returns one pseudo-class atom.
func (ZIndex) Specificity() Specificity { return Specificity{PseudoClasses: 1} }

// Data is an arbitrary feature-attribute predicate, optionally bound
// to a feature type so range predicates can be simplified.
type Data struct {
	Predicate   predicate.Predicate
	FeatureType *featuretype.Type
}

func (Data) isSelector() {}

// Specificity returns one Data atom, regardless of the predicate's
// internal boolean complexity.
func (Data) Specificity() Specificity { return Specificity{DataAtoms: 1} }

// WithFeatureType returns a copy of d bound to ft, used to attach a
// context parameter for simplification rather than mutating shared
// selector nodes (see design notes on cyclic back-references).
func (d Data) WithFeatureType(ft *featuretype.Type) Data {
	d.FeatureType = ft
	return d
}

// AndNode is the conjunction of its children.
type AndNode struct {
	Children []Selector
}

func (AndNode) isSelector() {}

// Specificity sums the children's specificities.
func (a AndNode) Specificity() Specificity {
	total := Specificity{}
	for _, c := range a.Children {
		total = total.add(c.Specificity())
	}
	return total
}

// OrNode is the disjunction of its children.
type OrNode struct {
	Children []Selector
}

func (OrNode) isSelector() {}

// Specificity mirrors CSS :is()/:where(): the specificity of an Or is
// the specificity of its most specific branch, since that is the
// branch that determines how narrowly a match can occur.
func (o OrNode) Specificity() Specificity {
	if len(o.Children) == 0 {
		return Specificity{}
	}
	best := o.Children[0].Specificity()
	for _, c := range o.Children[1:] {
		if s := c.Specificity(); Compare(s, best) > 0 {
			best = s
		}
	}
	return best
}

// Not negates a selector.
type Not struct {
	Operand Selector
}

func (Not) isSelector() {}

// Specificity passes through the operand's specificity unchanged: a
// negation adds no new atoms of its own.
func (n Not) Specificity() Specificity { return n.Operand.Specificity() }
