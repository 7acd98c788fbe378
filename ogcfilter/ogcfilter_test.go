package ogcfilter

import (
	"testing"

	"github.com/geocart/cartosld/predicate"
	"github.com/geocart/cartosld/selector"
	"github.com/geocart/cartosld/value"
)

func TestCompileAcceptIsInclude(t *testing.T) {
	if Compile(selector.Accept) != Include {
		t.Fatal("expected Accept to compile to Include")
	}
}

func TestCompileRejectIsExclude(t *testing.T) {
	if Compile(selector.Reject) != Exclude {
		t.Fatal("expected Reject to compile to Exclude")
	}
}

func TestCompileStripsStructuralAtoms(t *testing.T) {
	s := selector.And(
		selector.TypeName{Name: "roads"},
		selector.ScaleRange{Min: 0, Max: 100},
		selector.Data{Predicate: predicate.Compare{Property: "type", Op: predicate.Eq, Value: value.Literal("primary")}},
	)
	f := Compile(s)
	eq, ok := f.(PropertyIsEqualTo)
	if !ok {
		t.Fatalf("expected the TypeName/ScaleRange atoms stripped to a bare comparison, got %#v", f)
	}
	if eq.Property.String() != "[type]" {
		t.Fatalf("got %#v", eq)
	}
}

func TestCompileDataComparisonOperators(t *testing.T) {
	cases := []struct {
		op   predicate.Op
		want interface{ isFilter() }
	}{
		{predicate.Eq, PropertyIsEqualTo{}},
		{predicate.Ne, PropertyIsNotEqualTo{}},
		{predicate.Lt, PropertyIsLessThan{}},
		{predicate.Le, PropertyIsLessThanOrEqualTo{}},
		{predicate.Gt, PropertyIsGreaterThan{}},
		{predicate.Ge, PropertyIsGreaterThanOrEqualTo{}},
		{predicate.Like, PropertyIsLike{}},
	}
	for _, c := range cases {
		f := Compile(selector.Data{Predicate: predicate.Compare{Property: "x", Op: c.op, Value: value.Literal("1")}})
		if got, want := typeName(f), typeName(c.want); got != want {
			t.Errorf("op %v: got filter type %s, want %s", c.op, got, want)
		}
	}
}

func typeName(f interface{}) string {
	switch f.(type) {
	case PropertyIsEqualTo:
		return "PropertyIsEqualTo"
	case PropertyIsNotEqualTo:
		return "PropertyIsNotEqualTo"
	case PropertyIsLessThan:
		return "PropertyIsLessThan"
	case PropertyIsLessThanOrEqualTo:
		return "PropertyIsLessThanOrEqualTo"
	case PropertyIsGreaterThan:
		return "PropertyIsGreaterThan"
	case PropertyIsGreaterThanOrEqualTo:
		return "PropertyIsGreaterThanOrEqualTo"
	case PropertyIsLike:
		return "PropertyIsLike"
	default:
		return "unknown"
	}
}

func TestCompileIDSelectorYieldsFeatureID(t *testing.T) {
	f := Compile(selector.NewID("a", "b"))
	id, ok := f.(FeatureID)
	if !ok || len(id.IDs) != 2 {
		t.Fatalf("expected a FeatureID with 2 members, got %#v", f)
	}
}

func TestCompileOrReducesSingleChild(t *testing.T) {
	f := Compile(selector.Or(selector.Data{Predicate: predicate.Compare{Property: "x", Op: predicate.Eq, Value: value.Literal("1")}}))
	if _, ok := f.(PropertyIsEqualTo); !ok {
		t.Fatalf("expected a single-child Or to reduce to its one filter, got %#v", f)
	}
}
