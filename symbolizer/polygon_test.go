package symbolizer

import (
	"strings"
	"testing"

	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/value"
)

func TestPolygonNoFillYieldsNothing(t *testing.T) {
	out, err := Polygon(cssrule.PropertyBag{})
	if err != nil {
		t.Fatalf("Polygon: %v", err)
	}
	if out != nil {
		t.Fatalf("expected no symbolizers without a fill property, got %#v", out)
	}
}

func TestPolygonSolidFillFoldsStroke(t *testing.T) {
	bag := cssrule.PropertyBag{
		{PseudoClass: pseudoclass.RootClass, Name: cssrule.PropFill}:   {value.Literal("#ff0000")},
		{PseudoClass: pseudoclass.RootClass, Name: cssrule.PropStroke}: {value.Literal("#000000")},
	}
	out, err := Polygon(bag)
	if err != nil {
		t.Fatalf("Polygon: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one symbolizer, got %d", len(out))
	}
	body := string(out[0].XMLContent)
	if !strings.Contains(body, "#ff0000") || !strings.Contains(body, "#000000") {
		t.Fatalf("expected both fill and stroke colors present, got %s", body)
	}
}

func TestPolygonRepeatsPerFillValue(t *testing.T) {
	bag := cssrule.PropertyBag{
		{PseudoClass: pseudoclass.RootClass, Name: cssrule.PropFill}: {value.Literal("#fff"), value.Literal("#000")},
	}
	out, err := Polygon(bag)
	if err != nil {
		t.Fatalf("Polygon: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected two symbolizers, got %d", len(out))
	}
}

func TestPolygonGraphicFillBuildsMark(t *testing.T) {
	bag := cssrule.PropertyBag{
		{PseudoClass: pseudoclass.RootClass, Name: cssrule.PropFill}: {value.Function{Name: value.FuncSymbol, Params: []value.Value{value.Literal("circle")}}},
	}
	out, err := Polygon(bag)
	if err != nil {
		t.Fatalf("Polygon: %v", err)
	}
	if len(out) != 1 || !strings.Contains(string(out[0].XMLContent), "circle") {
		t.Fatalf("expected a mark graphic fill, got %#v", out)
	}
}
