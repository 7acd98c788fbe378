package cartocss

import "testing"

func TestBuildSimpleRule(t *testing.T) {
	doc := Document{
		Rules: []RuleDoc{
			{
				Selector:   SelectorDoc{TypeName: "roads"},
				Properties: map[string][]string{"fill": {"#ff0000"}},
				Comment:    "@title: Roads",
			},
		},
	}

	sheet, err := Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	if !sheet.Rules[0].HasSymbolizerProperty() {
		t.Fatal("expected the fill property to register as a symbolizer trigger")
	}
}

func TestBuildDataPredicate(t *testing.T) {
	doc := Document{
		Rules: []RuleDoc{
			{
				Selector: SelectorDoc{
					TypeName: "roads",
					Data:     &DataDoc{Property: "kind", Op: "=", Value: "primary"},
				},
				Properties: map[string][]string{"stroke": {"#000"}},
			},
		},
	}

	sheet, err := Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	spec := sheet.Rules[0].Specificity()
	if spec.TypeNames != 1 || spec.DataAtoms != 1 {
		t.Fatalf("unexpected specificity: %+v", spec)
	}
}

func TestParsePropertyKeyIndexedPseudoClass(t *testing.T) {
	pc, name, err := parsePropertyKey("symbol:2/fill-opacity")
	if err != nil {
		t.Fatalf("parsePropertyKey: %v", err)
	}
	if pc.Name != "symbol" || pc.Index != 2 || name != "fill-opacity" {
		t.Fatalf("unexpected parse: pc=%+v name=%v", pc, name)
	}
}

func TestParseValueFunctionCall(t *testing.T) {
	v := parseValue("symbol(circle)")
	lit := v.ToLiteral()
	if lit != "symbol(circle)" {
		t.Fatalf("unexpected literal: %q", lit)
	}
}

func TestParseYAML(t *testing.T) {
	input := []byte(`
rules:
  - selector:
      type: roads
      data:
        property: kind
        op: "="
        value: primary
    properties:
      stroke: ["#000"]
      stroke-width: ["2px"]
    comment: "@title: Primary roads"
`)
	sheet, err := ParseYAML(input)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
}
