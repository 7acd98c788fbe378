// Package featuretype describes the coarse attribute typing the
// translator needs to simplify Data selectors and to know whether a
// property expression refers to a string, a number, or a geometry.
// The real introspection library is an external collaborator (spec.md
// S1); this package only carries the minimal descriptor shape plus a
// Source interface that a concrete catalog (see pgcatalog.go) can
// satisfy.
package featuretype

// Kind is the coarse type of a feature attribute.
type Kind int

const (
	// Unknown means the attribute's type could not be determined.
	Unknown Kind = iota
	StringKind
	NumberKind
	GeometryKind
	BooleanKind
)

func (k Kind) String() string {
	switch k {
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case GeometryKind:
		return "geometry"
	case BooleanKind:
		return "boolean"
	default:
		return "unknown"
	}
}

// Attribute is a single named, typed feature attribute.
type Attribute struct {
	Name string
	Kind Kind
}

// Type is a minimal feature-type descriptor: a name and its known
// attributes. It is intentionally much smaller than a real
// org.opengis.feature.type.FeatureType - only what range-based Data
// simplification needs.
type Type struct {
	Name       string
	Attributes []Attribute
}

// Attribute looks up an attribute by name, returning ok=false when
// the type has no information about it.
func (t *Type) Attribute(name string) (Attribute, bool) {
	if t == nil {
		return Attribute{}, false
	}
	for _, a := range t.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Merge layers other's attributes on top of t, with t's own entries
// taking precedence over anything sharing a name. Used to combine an
// authoritative catalog Source with the heuristic guesser's output.
func (t *Type) Merge(other *Type) *Type {
	if t == nil {
		return other
	}
	if other == nil {
		return t
	}
	merged := &Type{Name: t.Name, Attributes: append([]Attribute{}, t.Attributes...)}
	for _, a := range other.Attributes {
		if _, ok := merged.Attribute(a.Name); !ok {
			merged.Attributes = append(merged.Attributes, a)
		}
	}
	return merged
}

// Source is implemented by anything that can produce authoritative
// attribute information for a named feature type - a database
// catalog, a WFS DescribeFeatureType call, or (in tests) a canned map.
type Source interface {
	FeatureType(name string) (*Type, error)
}
