package sld

import (
	"testing"

	"github.com/geocart/cartosld/ogcexpr"
)

func TestExpressionXMLLiteral(t *testing.T) {
	if got := ExpressionXML(ogcexpr.Literal{Value: "a & b"}); got != "a &amp; b" {
		t.Fatalf("got %q", got)
	}
}

func TestExpressionXMLPropertyName(t *testing.T) {
	got := ExpressionXML(ogcexpr.PropertyName{Name: "name"})
	want := "<ogc:PropertyName>name</ogc:PropertyName>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExpressionXMLFunctionConcatenatesArgs(t *testing.T) {
	e := ogcexpr.Concatenate(ogcexpr.Literal{Value: "x="}, ogcexpr.PropertyName{Name: "name"})
	got := ExpressionXML(e)
	want := "x=<ogc:PropertyName>name</ogc:PropertyName>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
