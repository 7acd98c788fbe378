// Package value implements the tagged Value variant described in the
// data model: literal tokens, named function constructors, comma/space
// separated multi-values, and already-promoted OGC expressions.
package value

import "github.com/geocart/cartosld/ogcexpr"

// Value is any cartographic property value.
type Value interface {
	// ToLiteral yields the textual form of the value.
	ToLiteral() string
	// ToExpression yields an OGC expression, literal-wrapped when
	// the value carries no richer structure.
	ToExpression() ogcexpr.Expression
	isValue()
}

// Literal is a bare textual token: a number, a color, an identifier,
// or a dimensioned quantity such as 12px, 30deg, 50%.
type Literal string

func (Literal) isValue() {}

// ToLiteral returns the token verbatim.
func (l Literal) ToLiteral() string { return string(l) }

// ToExpression wraps the token as an OGC literal expression.
func (l Literal) ToExpression() ogcexpr.Expression { return ogcexpr.Literal{Value: string(l)} }

// Function is a named constructor, e.g. symbol(circle), url(...),
// color-map-entry(color, quantity[, opacity]).
type Function struct {
	Name   string
	Params []Value
}

// Well-known function names recognized by the symbolizer synthesizers.
const (
	FuncSymbol        = "symbol"
	FuncURL           = "url"
	FuncColorMapEntry = "color-map-entry"
)

func (Function) isValue() {}

// ToLiteral renders the function call form, e.g. "symbol(circle)".
func (f Function) ToLiteral() string {
	s := f.Name + "("
	for i, p := range f.Params {
		if i > 0 {
			s += ","
		}
		s += p.ToLiteral()
	}
	return s + ")"
}

// ToExpression turns the function into an OGC function expression.
func (f Function) ToExpression() ogcexpr.Expression {
	args := make([]ogcexpr.Expression, len(f.Params))
	for i, p := range f.Params {
		args[i] = p.ToExpression()
	}
	return ogcexpr.Function{Name: f.Name, Args: args}
}

// MultiValue is a comma- or space-separated list, used for repeated
// symbolizers, dash arrays, color maps, and concatenated labels.
type MultiValue struct {
	Values []Value
}

func (MultiValue) isValue() {}

// ToLiteral joins the member literals with a comma.
func (m MultiValue) ToLiteral() string {
	s := ""
	for i, v := range m.Values {
		if i > 0 {
			s += ","
		}
		s += v.ToLiteral()
	}
	return s
}

// ToExpression promotes the first member; callers that need every
// member (label concatenation, repeated symbolizers) walk m.Values
// directly instead of calling ToExpression.
func (m MultiValue) ToExpression() ogcexpr.Expression {
	if len(m.Values) == 0 {
		return ogcexpr.Literal{}
	}
	return m.Values[0].ToExpression()
}

// PromotedExpression is a Value already promoted to an opaque OGC
// expression by the (external) parser - a property reference, an
// arithmetic expression, or a function call recognized ahead of
// translation.
type PromotedExpression struct {
	Expr ogcexpr.Expression
}

func (PromotedExpression) isValue() {}

// ToLiteral renders the expression's debug string; promoted
// expressions rarely need a literal form, this exists to satisfy the
// interface and to support measure-unit stripping when the underlying
// expression happens to be a literal.
func (p PromotedExpression) ToLiteral() string { return p.Expr.String() }

// ToExpression returns the wrapped expression unchanged.
func (p PromotedExpression) ToExpression() ogcexpr.Expression { return p.Expr }

// AsMultiValue returns v's members when v is a MultiValue, or a
// single-element slice containing v otherwise. Mirrors the source's
// getMultiValue helper.
func AsMultiValue(v Value) []Value {
	if v == nil {
		return []Value{nil}
	}
	if m, ok := v.(MultiValue); ok {
		return m.Values
	}
	return []Value{v}
}
