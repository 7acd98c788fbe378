package sld

import (
	"bytes"
	"encoding/xml"
)

// Render concatenates the XML encoding of each non-nil part into a
// Symbolizer body. Each part is expected to marshal to one top-level
// element (Fill, Stroke, Graphic, Geometry, ...), matching the flat
// child-element sequence SLD symbolizers expect. A nil pointer part
// is skipped, since encoding/xml marshals it to nothing.
func Render(parts ...interface{}) Symbolizer {
	var buf bytes.Buffer
	for _, p := range parts {
		if p == nil {
			continue
		}
		b, err := xml.Marshal(p)
		if err != nil || len(b) == 0 {
			continue
		}
		buf.Write(b)
	}
	return Symbolizer{XMLContent: buf.Bytes()}
}

// Geometry wraps a property-name expression as a symbolizer's
// Geometry override, used by the optional *-geometry properties.
type Geometry struct {
	PropertyName string `xml:"ogc:PropertyName"`
}

// Label carries a pre-rendered OGC expression fragment for a text
// symbolizer's label, built via ExpressionXML.
type Label struct {
	XMLName xml.Name `xml:"Label"`
	Inner   string   `xml:",innerxml"`
}

// Priority carries a pre-rendered OGC expression fragment for a text
// symbolizer's label placement priority.
type Priority struct {
	XMLName xml.Name `xml:"Priority"`
	Inner   string   `xml:",innerxml"`
}
