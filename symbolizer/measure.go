// Package symbolizer synthesizes SLD symbolizers from a derived rule's
// property bag: polygon, line, point, text, and raster.
package symbolizer

import (
	"strconv"
	"strings"

	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/ogcexpr"
	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/value"
)

// RepeatCount returns the maximum list length among the named
// properties at pc - the number of times the symbolizer fires for
// this rule - or 1 when none of them has a value.
func RepeatCount(props cssrule.PropertyBag, pc pseudoclass.PseudoClass, names ...cssrule.PropertyName) int {
	max := 0
	for _, name := range names {
		if n := len(props.Get(pc, name)); n > max {
			max = n
		}
	}
	if max == 0 {
		return 1
	}
	return max
}

// ValueAt returns the i-th value of values, or the sole value when
// values has exactly one element (scalar broadcast), or nil if i is
// out of range and there is no broadcast value to fall back on.
func ValueAt(values []value.Value, i int) value.Value {
	switch {
	case len(values) == 0:
		return nil
	case len(values) == 1:
		return values[0]
	case i < len(values):
		return values[i]
	default:
		return nil
	}
}

// Measure parses a dimensioned literal from values at index i,
// stripping defaultUnit's suffix when present so that "12px" and "12"
// compile to the same numeric literal when defaultUnit is "px"; any
// other unit suffix is preserved verbatim, since it names a unit the
// default-unit stripping rule does not apply to.
func Measure(values []value.Value, i int, defaultUnit string) ogcexpr.Expression {
	v := ValueAt(values, i)
	if v == nil {
		return nil
	}
	return stripDefaultUnit(v.ToExpression(), v.ToLiteral(), defaultUnit)
}

func stripDefaultUnit(expr ogcexpr.Expression, literal, defaultUnit string) ogcexpr.Expression {
	lit, ok := expr.(ogcexpr.Literal)
	if !ok {
		return expr
	}
	if defaultUnit == "" || !strings.HasSuffix(lit.Value, defaultUnit) {
		return expr
	}
	numeric := strings.TrimSuffix(lit.Value, defaultUnit)
	if _, err := strconv.ParseFloat(numeric, 64); err != nil {
		return expr
	}
	return ogcexpr.Literal{Value: numeric}
}

// LiteralAt returns ValueAt(values, i)'s literal form, or "" if there
// is no value at that index.
func LiteralAt(values []value.Value, i int) string {
	v := ValueAt(values, i)
	if v == nil {
		return ""
	}
	return v.ToLiteral()
}

// DoubleArray projects values to float64s, normalizing any percentage
// literal ("50%") to the [0,1] range.
func DoubleArray(values []value.Value) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		out = append(out, normalizePercent(v.ToLiteral()))
	}
	return out
}

// FloatArray is DoubleArray's float32 counterpart, used where the
// output schema calls for single precision.
func FloatArray(values []value.Value) []float32 {
	doubles := DoubleArray(values)
	out := make([]float32, len(doubles))
	for i, d := range doubles {
		out[i] = float32(d)
	}
	return out
}

// StringArray projects values to their literal string form.
func StringArray(values []value.Value) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.ToLiteral())
	}
	return out
}

func normalizePercent(literal string) float64 {
	if strings.HasSuffix(literal, "%") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(literal, "%"), 64)
		if err != nil {
			return 0
		}
		return n / 100
	}
	n, _ := strconv.ParseFloat(literal, 64)
	return n
}

// IndexedPseudoClassValues merges, in precedence order (later entries
// override earlier ones when present): the "symbol" pseudo-class, its
// :nth(i) variant, the caller's own pseudoName pseudo-class, and its
// :nth(i) variant. This lets a rule set a default fill/stroke for
// every embedded symbol via :symbol, then narrow it for a specific
// graphic role (mark, stroke, shield) or repetition index.
func IndexedPseudoClassValues(props cssrule.PropertyBag, pseudoName string, index int, name cssrule.PropertyName) []value.Value {
	var result []value.Value
	layers := []pseudoclass.PseudoClass{
		pseudoclass.New(pseudoclass.Symbol),
		pseudoclass.NewIndexed(pseudoclass.Symbol, index),
		pseudoclass.New(pseudoName),
		pseudoclass.NewIndexed(pseudoName, index),
	}
	for _, pc := range layers {
		if v := props.Get(pc, name); len(v) > 0 {
			result = v
		}
	}
	return result
}
