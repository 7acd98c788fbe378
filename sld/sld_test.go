package sld

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestNewDocumentCarriesNamespaces(t *testing.T) {
	doc := NewDocument(Style{Name: "demo"})
	if doc.XmlnsSLD == "" || doc.XmlnsOGC == "" || doc.XmlnsXlink == "" {
		t.Fatalf("expected all three namespaces set, got %#v", doc)
	}
	if doc.NamedLayer.UserStyle.Name != "demo" {
		t.Fatalf("expected the style name carried through, got %q", doc.NamedLayer.UserStyle.Name)
	}
}

func TestDocumentMarshalsExpectedRootElement(t *testing.T) {
	doc := NewDocument(Style{Name: "demo"})
	out, err := xml.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), "<StyledLayerDescriptor") {
		t.Fatalf("expected a StyledLayerDescriptor root element, got %s", out)
	}
}

func TestRenderConcatenatesNonNilParts(t *testing.T) {
	fill := &Fill{CSSParams: []CSSParameter{{Name: "fill", Value: "#ff0000"}}}
	sym := Render(fill, (*Stroke)(nil))
	if !strings.Contains(string(sym.XMLContent), "<Fill>") {
		t.Fatalf("expected a Fill element, got %s", sym.XMLContent)
	}
	if strings.Contains(string(sym.XMLContent), "<Stroke>") {
		t.Fatalf("expected the nil Stroke part skipped, got %s", sym.XMLContent)
	}
}

func TestRenderEmptyPartsYieldsEmptySymbolizer(t *testing.T) {
	sym := Render()
	if len(sym.XMLContent) != 0 {
		t.Fatalf("expected no content, got %s", sym.XMLContent)
	}
}
