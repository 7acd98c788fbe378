package selector

import "testing"

func TestAndDropsRedundantDefaultTypeName(t *testing.T) {
	s := And(DefaultTypeName, TypeName{Name: "roads"})
	tn, ok := s.(TypeName)
	if !ok || tn.Name != "roads" {
		t.Fatalf("expected TypeName roads, got %#v", s)
	}
}

func TestAndConflictingTypeNamesRejects(t *testing.T) {
	s := And(TypeName{Name: "roads"}, TypeName{Name: "water"})
	if !IsReject(s) {
		t.Fatalf("expected Reject, got %#v", s)
	}
}

func TestAndIntersectsScaleRanges(t *testing.T) {
	s := And(ScaleRange{Min: 0, Max: 100}, ScaleRange{Min: 50, Max: 200})
	sr, ok := s.(ScaleRange)
	if !ok || sr.Min != 50 || sr.Max != 100 {
		t.Fatalf("expected [50,100), got %#v", s)
	}
}

func TestAndDisjointScaleRangesRejects(t *testing.T) {
	s := And(ScaleRange{Min: 0, Max: 10}, ScaleRange{Min: 20, Max: 30})
	if !IsReject(s) {
		t.Fatalf("expected Reject, got %#v", s)
	}
}

func TestAndIntersectsIDs(t *testing.T) {
	s := And(NewID("a", "b"), NewID("b", "c"))
	id, ok := s.(ID)
	if !ok {
		t.Fatalf("expected ID, got %#v", s)
	}
	if _, ok := id.IDs["b"]; !ok || len(id.IDs) != 1 {
		t.Fatalf("expected {b}, got %#v", id.IDs)
	}
}

func TestOrWithAcceptShortCircuits(t *testing.T) {
	if !IsAccept(Or(Accept, TypeName{Name: "roads"})) {
		t.Fatal("expected Accept")
	}
}

func TestNegateDoubleNegationCancels(t *testing.T) {
	s := Negate(Negate(TypeName{Name: "roads"}))
	tn, ok := s.(TypeName)
	if !ok || tn.Name != "roads" {
		t.Fatalf("expected TypeName roads, got %#v", s)
	}
}

func TestDisjoint(t *testing.T) {
	if !Disjoint(TypeName{Name: "roads"}, TypeName{Name: "water"}) {
		t.Fatal("expected disjoint type names to be disjoint")
	}
	if Disjoint(TypeName{Name: "roads"}, ScaleRange{Min: 0, Max: 100}) {
		t.Fatal("expected unrelated atoms not to be disjoint")
	}
}

func TestCompareSpecificityOrdersByTypeNameFirst(t *testing.T) {
	a := Specificity{TypeNames: 1}
	b := Specificity{IDs: 5}
	if Compare(a, b) <= 0 {
		t.Fatalf("expected a > b, got compare=%d", Compare(a, b))
	}
}

func TestAndFlattensNestedAnd(t *testing.T) {
	inner := And(TypeName{Name: "roads"}, NewID("a"))
	s := And(inner, ScaleRange{Min: 0, Max: 10})
	a, ok := s.(AndNode)
	if !ok {
		t.Fatalf("expected And, got %#v", s)
	}
	if len(a.Children) != 3 {
		t.Fatalf("expected 3 flattened children, got %d: %#v", len(a.Children), a.Children)
	}
}
