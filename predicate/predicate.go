// Package predicate models the arbitrary feature-attribute predicates
// that a selector.Data atom carries: attribute comparisons and their
// boolean composition, prior to compilation into an OGC filter.
package predicate

import "github.com/geocart/cartosld/value"

// Op is a comparison operator.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
	Like
)

func (o Op) String() string {
	switch o {
	case Eq:
		return "="
	case Ne:
		return "<>"
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Like:
		return "LIKE"
	default:
		return "?"
	}
}

// Negate returns the operator's logical negation, used when
// simplifying Not(Compare(...)).
func (o Op) Negate() (Op, bool) {
	switch o {
	case Eq:
		return Ne, true
	case Ne:
		return Eq, true
	case Lt:
		return Ge, true
	case Le:
		return Gt, true
	case Gt:
		return Le, true
	case Ge:
		return Lt, true
	default:
		return o, false
	}
}

// Predicate is a boolean-valued attribute predicate.
type Predicate interface {
	isPredicate()
}

// Compare is a single attribute comparison, e.g. type = 'primary'.
type Compare struct {
	Property string
	Op       Op
	Value    value.Value
}

func (Compare) isPredicate() {}

// Between is an inclusive range test, e.g. population BETWEEN 0 AND 1000.
type Between struct {
	Property  string
	Low, High value.Value
}

func (Between) isPredicate() {}

// IDIn is a feature-id membership test.
type IDIn struct {
	IDs []string
}

func (IDIn) isPredicate() {}

// And is the conjunction of two predicates.
type And struct{ Left, Right Predicate }

func (And) isPredicate() {}

// Or is the disjunction of two predicates.
type Or struct{ Left, Right Predicate }

func (Or) isPredicate() {}

// Not negates a predicate.
type Not struct{ Operand Predicate }

func (Not) isPredicate() {}
