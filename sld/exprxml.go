package sld

import (
	"bytes"
	"encoding/xml"

	"github.com/geocart/cartosld/ogcexpr"
)

// ExpressionXML renders an OGC expression to the inner XML fragment
// suitable for embedding inside a Label or Priority element: a
// literal becomes escaped text, a property reference becomes
// <ogc:PropertyName>, and a function's arguments are concatenated in
// order (Concatenate has no wrapper element of its own in the output
// - its children are simply placed in sequence, which is what the
// label box renders as one run of text).
func ExpressionXML(e ogcexpr.Expression) string {
	switch v := e.(type) {
	case ogcexpr.Literal:
		return escapeText(v.Value)
	case ogcexpr.PropertyName:
		return "<ogc:PropertyName>" + escapeText(v.Name) + "</ogc:PropertyName>"
	case ogcexpr.Function:
		var buf bytes.Buffer
		for _, a := range v.Args {
			buf.WriteString(ExpressionXML(a))
		}
		return buf.String()
	default:
		return ""
	}
}

func escapeText(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
