package sld

import (
	"github.com/geocart/cartosld/ogcexpr"
	"github.com/geocart/cartosld/ogcfilter"
)

// FilterXML renders a compiled filter to its OGC Filter Encoding XML
// fragment, suitable as a Rule's Filter.XMLContent. Callers should
// omit the Filter element entirely for ogcfilter.Include (an
// unconstrained rule has no filter at all) and should not reach this
// function for ogcfilter.Exclude - an unsatisfiable rule is dropped
// upstream rather than serialized as a filter that matches nothing.
func FilterXML(f ogcfilter.Filter) string {
	switch v := f.(type) {
	case ogcfilter.PropertyIsEqualTo:
		return binaryOp("PropertyIsEqualTo", v.Property, v.Value)
	case ogcfilter.PropertyIsNotEqualTo:
		return binaryOp("PropertyIsNotEqualTo", v.Property, v.Value)
	case ogcfilter.PropertyIsLessThan:
		return binaryOp("PropertyIsLessThan", v.Property, v.Value)
	case ogcfilter.PropertyIsLessThanOrEqualTo:
		return binaryOp("PropertyIsLessThanOrEqualTo", v.Property, v.Value)
	case ogcfilter.PropertyIsGreaterThan:
		return binaryOp("PropertyIsGreaterThan", v.Property, v.Value)
	case ogcfilter.PropertyIsGreaterThanOrEqualTo:
		return binaryOp("PropertyIsGreaterThanOrEqualTo", v.Property, v.Value)
	case ogcfilter.PropertyIsLike:
		return binaryOp("PropertyIsLike", v.Property, v.Pattern)
	case ogcfilter.PropertyIsBetween:
		return "<ogc:PropertyIsBetween>" + ExpressionXML(v.Property) +
			"<ogc:LowerBoundary>" + ExpressionXML(v.Lower) + "</ogc:LowerBoundary>" +
			"<ogc:UpperBoundary>" + ExpressionXML(v.Upper) + "</ogc:UpperBoundary>" +
			"</ogc:PropertyIsBetween>"
	case ogcfilter.FeatureID:
		s := ""
		for _, id := range v.IDs {
			s += `<ogc:FeatureId fid="` + escapeText(id) + `"/>`
		}
		return s
	case ogcfilter.And:
		return wrapChildren("And", v.Children)
	case ogcfilter.Or:
		return wrapChildren("Or", v.Children)
	case ogcfilter.Not:
		return "<ogc:Not>" + FilterXML(v.Operand) + "</ogc:Not>"
	default:
		// Include/Exclude: callers are expected to have already
		// special-cased these before calling FilterXML.
		return ""
	}
}

func binaryOp(name string, lhs, rhs ogcexpr.Expression) string {
	return "<ogc:" + name + ">" + ExpressionXML(lhs) + ExpressionXML(rhs) + "</ogc:" + name + ">"
}

func wrapChildren(name string, children []ogcfilter.Filter) string {
	s := "<ogc:" + name + ">"
	for _, c := range children {
		s += FilterXML(c)
	}
	return s + "</ogc:" + name + ">"
}
