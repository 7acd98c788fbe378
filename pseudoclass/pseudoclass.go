// Package pseudoclass models the named, optionally-indexed
// sub-namespace a rule's properties can be grouped under, e.g.
// :symbol(2) for the second repeated symbolizer.
package pseudoclass

import "strconv"

// Reserved pseudo-class names.
const (
	Root   = "root"
	Symbol = "symbol"
	Mark   = "mark"
	Stroke = "stroke"
	Fill   = "fill"
	Shield = "shield"
)

// PseudoClass is a (name, index?) pair. Index 0 means "no index".
type PseudoClass struct {
	Name  string
	Index int
}

// New returns the non-indexed pseudo-class with the given name.
func New(name string) PseudoClass { return PseudoClass{Name: name} }

// NewIndexed returns the 1-based indexed pseudo-class with the given
// name, e.g. NewIndexed("symbol", 2) for :symbol(2).
func NewIndexed(name string, index int) PseudoClass {
	return PseudoClass{Name: name, Index: index}
}

// RootClass is the default container for top-level properties.
var RootClass = New(Root)

// Indexed reports whether pc carries an explicit index.
func (pc PseudoClass) Indexed() bool { return pc.Index > 0 }

// String renders pc for debugging/logging, e.g. "symbol:nth(2)".
func (pc PseudoClass) String() string {
	if !pc.Indexed() {
		return pc.Name
	}
	return pc.Name + ":nth(" + strconv.Itoa(pc.Index) + ")"
}
