package scaleflatten

import (
	"testing"

	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/selector"
)

func TestFlattenPassesThroughNonOrSelectors(t *testing.T) {
	rules := []cssrule.CssRule{cssrule.New(selector.TypeName{Name: "roads"}, cssrule.PropertyBag{}, "")}
	out := Flatten(rules)
	if len(out) != 1 {
		t.Fatalf("expected a single unchanged rule, got %#v", out)
	}
}

func TestFlattenSplitsScaleBearingOrBranches(t *testing.T) {
	or := selector.Or(
		selector.ScaleRange{Min: 0, Max: 100},
		selector.ScaleRange{Min: 100, Max: 200},
	)
	rules := []cssrule.CssRule{cssrule.New(or, cssrule.PropertyBag{}, "")}
	out := Flatten(rules)
	if len(out) != 2 {
		t.Fatalf("expected one sibling per scale-bearing branch, got %d: %#v", len(out), out)
	}
}

func TestFlattenCombinesNonScaleBranchesIntoOneRule(t *testing.T) {
	or := selector.Or(
		selector.ScaleRange{Min: 0, Max: 100},
		selector.TypeName{Name: "roads"},
		selector.TypeName{Name: "water"},
	)
	rules := []cssrule.CssRule{cssrule.New(or, cssrule.PropertyBag{}, "")}
	out := Flatten(rules)
	if len(out) != 2 {
		t.Fatalf("expected one scale-bearing sibling plus one combined non-scale sibling, got %d: %#v", len(out), out)
	}
}
