package typegroup

import (
	"testing"

	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/selector"
)

func TestPartitionWildcardOnlyIsSingleGroup(t *testing.T) {
	rules := []cssrule.CssRule{cssrule.New(selector.Accept, cssrule.PropertyBag{}, "")}
	groups := Partition(rules)
	if len(groups) != 1 || groups[0].Name != selector.DefaultTypeNameValue {
		t.Fatalf("expected a single wildcard group, got %#v", groups)
	}
}

func TestPartitionSplitsByConcreteTypeName(t *testing.T) {
	rules := []cssrule.CssRule{
		cssrule.New(selector.TypeName{Name: "roads"}, cssrule.PropertyBag{}, ""),
		cssrule.New(selector.TypeName{Name: "water"}, cssrule.PropertyBag{}, ""),
	}
	groups := Partition(rules)
	if len(groups) != 2 {
		t.Fatalf("expected two groups, got %#v", groups)
	}
	names := map[string]bool{groups[0].Name: true, groups[1].Name: true}
	if !names["roads"] || !names["water"] {
		t.Fatalf("expected groups for roads and water, got %v", names)
	}
}

func TestPartitionConjoinsWildcardRuleIntoEachConcreteGroup(t *testing.T) {
	rules := []cssrule.CssRule{
		cssrule.New(selector.TypeName{Name: "roads"}, cssrule.PropertyBag{}, "typed"),
		cssrule.New(selector.Accept, cssrule.PropertyBag{}, "wild"),
	}
	groups := Partition(rules)
	if len(groups) != 1 || groups[0].Name != "roads" {
		t.Fatalf("expected a single roads group, got %#v", groups)
	}
	if len(groups[0].Rules) != 2 {
		t.Fatalf("expected the wildcard rule conjoined into the roads group, got %d rules", len(groups[0].Rules))
	}
}

func TestPartitionDropsGroupsWithNoSurvivingRules(t *testing.T) {
	rules := []cssrule.CssRule{
		cssrule.New(selector.And(selector.TypeName{Name: "roads"}, selector.TypeName{Name: "water"}), cssrule.PropertyBag{}, ""),
		cssrule.New(selector.TypeName{Name: "roads"}, cssrule.PropertyBag{}, ""),
	}
	groups := Partition(rules)
	for _, g := range groups {
		if g.Name == "water" {
			t.Fatalf("expected no water group since its only rule is unsatisfiable, got %#v", groups)
		}
	}
}
