// Package ogcfilter models the minimal OGC Filter Encoding expression
// tree the translator emits, and compiles a simplified selector down
// to it.
package ogcfilter

import (
	"github.com/geocart/cartosld/ogcexpr"
	"github.com/geocart/cartosld/predicate"
	"github.com/geocart/cartosld/selector"
)

// Filter is any node of the compiled filter tree. The two sentinel
// values Include and Exclude stand in for a selector that simplified
// to Accept or Reject respectively.
type Filter interface {
	isFilter()
}

type includeFilter struct{}
type excludeFilter struct{}

func (includeFilter) isFilter() {}
func (excludeFilter) isFilter() {}

// Include matches every feature; Exclude matches none.
var (
	Include Filter = includeFilter{}
	Exclude Filter = excludeFilter{}
)

// PropertyIsEqualTo and its siblings compare a property against a
// literal or computed expression.
type PropertyIsEqualTo struct{ Property, Value ogcexpr.Expression }
type PropertyIsNotEqualTo struct{ Property, Value ogcexpr.Expression }
type PropertyIsLessThan struct{ Property, Value ogcexpr.Expression }
type PropertyIsLessThanOrEqualTo struct{ Property, Value ogcexpr.Expression }
type PropertyIsGreaterThan struct{ Property, Value ogcexpr.Expression }
type PropertyIsGreaterThanOrEqualTo struct{ Property, Value ogcexpr.Expression }
type PropertyIsLike struct{ Property, Pattern ogcexpr.Expression }
type PropertyIsBetween struct {
	Property        ogcexpr.Expression
	Lower, Upper    ogcexpr.Expression
}

func (PropertyIsEqualTo) isFilter()               {}
func (PropertyIsNotEqualTo) isFilter()            {}
func (PropertyIsLessThan) isFilter()              {}
func (PropertyIsLessThanOrEqualTo) isFilter()     {}
func (PropertyIsGreaterThan) isFilter()           {}
func (PropertyIsGreaterThanOrEqualTo) isFilter()  {}
func (PropertyIsLike) isFilter()                  {}
func (PropertyIsBetween) isFilter()               {}

// FeatureID matches features by identifier.
type FeatureID struct{ IDs []string }

func (FeatureID) isFilter() {}

// And, Or, Not are the logical combinators.
type And struct{ Children []Filter }
type Or struct{ Children []Filter }
type Not struct{ Operand Filter }

func (And) isFilter() {}
func (Or) isFilter()  {}
func (Not) isFilter() {}

// Compile translates a simplified selector into a Filter tree.
// TypeName and ScaleRange atoms are stripped: by the time a selector
// reaches this stage, type-name partitioning and scale-range
// flattening have already accounted for them, and the output FTS/Rule
// carries them as separate attributes rather than filter predicates.
func Compile(s selector.Selector) Filter {
	if s == nil {
		return Include
	}
	return compileSelector(s)
}

func compileSelector(s selector.Selector) Filter {
	switch v := s.(type) {
	case selector.AndNode:
		var children []Filter
		for _, c := range v.Children {
			if isStructural(c) {
				continue
			}
			children = append(children, compileSelector(c))
		}
		return reduceAnd(children)
	case selector.OrNode:
		var children []Filter
		for _, c := range v.Children {
			children = append(children, compileSelector(c))
		}
		return reduceOr(children)
	case selector.Not:
		return Not{Operand: compileSelector(v.Operand)}
	case selector.Data:
		return compilePredicate(v.Predicate)
	case selector.ID:
		return FeatureID{IDs: v.SortedIDs()}
	default:
		// TypeName, ScaleRange, ZIndex: structural, handled upstream.
		if selector.IsReject(s) {
			return Exclude
		}
		return Include
	}
}

func isStructural(s selector.Selector) bool {
	switch s.(type) {
	case selector.TypeName, selector.ScaleRange, selector.ZIndex:
		return true
	default:
		return selector.IsAccept(s)
	}
}

func reduceAnd(children []Filter) Filter {
	var kept []Filter
	for _, c := range children {
		if _, ok := c.(includeFilter); ok {
			continue
		}
		if _, ok := c.(excludeFilter); ok {
			return Exclude
		}
		kept = append(kept, c)
	}
	switch len(kept) {
	case 0:
		return Include
	case 1:
		return kept[0]
	default:
		return And{Children: kept}
	}
}

func reduceOr(children []Filter) Filter {
	var kept []Filter
	for _, c := range children {
		if _, ok := c.(excludeFilter); ok {
			continue
		}
		if _, ok := c.(includeFilter); ok {
			return Include
		}
		kept = append(kept, c)
	}
	switch len(kept) {
	case 0:
		return Exclude
	case 1:
		return kept[0]
	default:
		return Or{Children: kept}
	}
}

func compilePredicate(p predicate.Predicate) Filter {
	switch v := p.(type) {
	case predicate.Compare:
		prop := ogcexpr.PropertyName{Name: v.Property}
		val := v.Value.ToExpression()
		switch v.Op {
		case predicate.Eq:
			return PropertyIsEqualTo{Property: prop, Value: val}
		case predicate.Ne:
			return PropertyIsNotEqualTo{Property: prop, Value: val}
		case predicate.Lt:
			return PropertyIsLessThan{Property: prop, Value: val}
		case predicate.Le:
			return PropertyIsLessThanOrEqualTo{Property: prop, Value: val}
		case predicate.Gt:
			return PropertyIsGreaterThan{Property: prop, Value: val}
		case predicate.Ge:
			return PropertyIsGreaterThanOrEqualTo{Property: prop, Value: val}
		case predicate.Like:
			return PropertyIsLike{Property: prop, Pattern: val}
		default:
			return Include
		}
	case predicate.Between:
		return PropertyIsBetween{
			Property: ogcexpr.PropertyName{Name: v.Property},
			Lower:    v.Low.ToExpression(),
			Upper:    v.High.ToExpression(),
		}
	case predicate.IDIn:
		return FeatureID{IDs: v.IDs}
	case predicate.And:
		return reduceAnd([]Filter{compilePredicate(v.Left), compilePredicate(v.Right)})
	case predicate.Or:
		return reduceOr([]Filter{compilePredicate(v.Left), compilePredicate(v.Right)})
	case predicate.Not:
		return Not{Operand: compilePredicate(v.Operand)}
	default:
		return Include
	}
}
