package translate

import (
	"strings"
	"testing"

	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/selector"
	"github.com/geocart/cartosld/value"
)

func fillBag(color string) cssrule.PropertyBag {
	return cssrule.PropertyBag{
		{PseudoClass: pseudoclass.RootClass, Name: cssrule.PropFill}: {value.Literal(color)},
	}
}

func TestTranslateSingleTypeProducesOneFeatureTypeStyle(t *testing.T) {
	stylesheet := cssrule.Stylesheet{Rules: []cssrule.CssRule{
		cssrule.New(selector.TypeName{Name: "roads"}, fillBag("#ff0000"), ""),
	}}

	style, err := New().Translate(stylesheet)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if len(style.FeatureTypeStyles) != 1 {
		t.Fatalf("expected one FeatureTypeStyle, got %d", len(style.FeatureTypeStyles))
	}
	fts := style.FeatureTypeStyles[0]
	if len(fts.FeatureTypeNames) != 1 || fts.FeatureTypeNames[0] != "roads" {
		t.Fatalf("expected the roads feature type name carried through, got %#v", fts.FeatureTypeNames)
	}
	if len(fts.Rules) != 1 {
		t.Fatalf("expected one rule, got %d", len(fts.Rules))
	}
	if !strings.Contains(string(fts.Rules[0].PolygonSymbolizer[0].XMLContent), "#ff0000") {
		t.Fatalf("expected the fill color rendered, got %s", fts.Rules[0].PolygonSymbolizer[0].XMLContent)
	}
}

func TestTranslateNoSymbolizerPropertyProducesNoOutput(t *testing.T) {
	stylesheet := cssrule.Stylesheet{Rules: []cssrule.CssRule{
		cssrule.New(selector.TypeName{Name: "roads"}, cssrule.PropertyBag{}, ""),
	}}

	style, err := New().Translate(stylesheet)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if len(style.FeatureTypeStyles) != 0 {
		t.Fatalf("expected no feature type styles, got %d", len(style.FeatureTypeStyles))
	}
}

func TestTranslateZIndexOrdersBands(t *testing.T) {
	stylesheet := cssrule.Stylesheet{Rules: []cssrule.CssRule{
		cssrule.New(selector.And(selector.ZIndex{Z: 2}, selector.TypeName{Name: "roads"}), fillBag("#2"), ""),
		cssrule.New(selector.And(selector.ZIndex{Z: 1}, selector.TypeName{Name: "roads"}), fillBag("#1"), ""),
	}}

	style, err := New().Translate(stylesheet)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if len(style.FeatureTypeStyles) != 2 {
		t.Fatalf("expected two feature type styles (one per band), got %d", len(style.FeatureTypeStyles))
	}
	first := string(style.FeatureTypeStyles[0].Rules[0].PolygonSymbolizer[0].XMLContent)
	second := string(style.FeatureTypeStyles[1].Rules[0].PolygonSymbolizer[0].XMLContent)
	if !strings.Contains(first, "#1") || !strings.Contains(second, "#2") {
		t.Fatalf("expected the z=1 band before the z=2 band, got %s then %s", first, second)
	}
}

func TestTranslateRejectedRuleProducesNothing(t *testing.T) {
	stylesheet := cssrule.Stylesheet{Rules: []cssrule.CssRule{
		cssrule.New(selector.Reject, fillBag("#fff"), ""),
	}}

	style, err := New().Translate(stylesheet)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if len(style.FeatureTypeStyles) != 0 {
		t.Fatalf("expected no output for an unsatisfiable rule, got %d", len(style.FeatureTypeStyles))
	}
}
