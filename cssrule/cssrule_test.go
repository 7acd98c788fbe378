package cssrule

import (
	"testing"

	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/selector"
	"github.com/geocart/cartosld/value"
)

func TestHasSymbolizerProperty(t *testing.T) {
	r := New(selector.Accept, PropertyBag{
		{PseudoClass: pseudoclass.RootClass, Name: PropFill}: {value.Literal("#fff")},
	}, "")
	if !r.HasSymbolizerProperty() {
		t.Fatal("expected fill to trigger a symbolizer")
	}

	r2 := New(selector.Accept, PropertyBag{
		{PseudoClass: pseudoclass.RootClass, Name: "line-join"}: {value.Literal("round")},
	}, "")
	if r2.HasSymbolizerProperty() {
		t.Fatal("did not expect a non-trigger property to count")
	}
}

func TestGetSubRuleByZIndexStripsMatchingBand(t *testing.T) {
	r := New(selector.And(selector.ZIndex{Z: 1}, selector.TypeName{Name: "roads"}), PropertyBag{}, "")
	sub := r.GetSubRuleByZIndex(1)
	if sub == nil {
		t.Fatal("expected a sub-rule for the matching band")
	}
	if tn, ok := sub.Selector.(selector.TypeName); !ok || tn.Name != "roads" {
		t.Fatalf("expected the ZIndex atom stripped, got %#v", sub.Selector)
	}
}

func TestGetSubRuleByZIndexOtherBandIsNil(t *testing.T) {
	r := New(selector.ZIndex{Z: 1}, PropertyBag{}, "")
	if sub := r.GetSubRuleByZIndex(2); sub != nil {
		t.Fatalf("expected nil for a non-matching band, got %#v", sub)
	}
}

func TestGetSubRuleByZIndexNoZIndexPassesThrough(t *testing.T) {
	r := New(selector.TypeName{Name: "roads"}, PropertyBag{}, "")
	sub := r.GetSubRuleByZIndex(5)
	if sub == nil {
		t.Fatal("expected a rule with no ZIndex atom to pass through for any band")
	}
}

func TestSortBySpecificityDescendingStableOnTies(t *testing.T) {
	a := New(selector.Accept, PropertyBag{}, "a")
	b := New(selector.Accept, PropertyBag{}, "b")
	out := SortBySpecificityDescending([]CssRule{a, b})
	if out[0].Comment != "a" || out[1].Comment != "b" {
		t.Fatalf("expected stable order preserved on ties, got %v, %v", out[0].Comment, out[1].Comment)
	}
}

func TestSortBySpecificityDescendingOrdersBySpecificity(t *testing.T) {
	low := New(selector.Accept, PropertyBag{}, "low")
	high := New(selector.NewID("a"), PropertyBag{}, "high")
	out := SortBySpecificityDescending([]CssRule{low, high})
	if out[0].Comment != "high" {
		t.Fatalf("expected the more specific rule first, got %v", out[0].Comment)
	}
}

func TestPropertyBagSelectMatchesPrefix(t *testing.T) {
	bag := PropertyBag{
		{PseudoClass: pseudoclass.RootClass, Name: "fill"}:         {value.Literal("#fff")},
		{PseudoClass: pseudoclass.RootClass, Name: "fill-opacity"}: {value.Literal("0.5")},
		{PseudoClass: pseudoclass.RootClass, Name: "stroke"}:       {value.Literal("#000")},
	}
	got := bag.Select(pseudoclass.RootClass, "fill")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for fill prefix, got %d: %v", len(got), got)
	}
}
