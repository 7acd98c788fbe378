// Package sld is the write-side OGC Styled Layer Descriptor /
// Symbology Encoding model the translator renders its output into.
package sld

import "encoding/xml"

//########### Document root ###########//

// Document is the SLD document the translator produces, ready for
// xml.Marshal.
type Document struct {
	XMLName    xml.Name   `xml:"StyledLayerDescriptor"`
	Version    string     `xml:"version,attr"`
	XmlnsSLD   string     `xml:"xmlns,attr"`
	XmlnsOGC   string     `xml:"xmlns:ogc,attr"`
	XmlnsXlink string     `xml:"xmlns:xlink,attr"`
	NamedLayer NamedLayer `xml:"NamedLayer"`
}

// NamedLayer wraps the single UserStyle the translator emits.
type NamedLayer struct {
	Name      string    `xml:"Name,omitempty"`
	UserStyle UserStyle `xml:"UserStyle"`
}

// UserStyle carries the style's name and its ordered feature-type styles.
type UserStyle struct {
	Name              string             `xml:"Name,omitempty"`
	FeatureTypeStyles []FeatureTypeStyle `xml:"FeatureTypeStyle"`
}

// NewDocument wraps style in a Document ready for marshaling.
func NewDocument(style Style) Document {
	return Document{
		Version:    "1.0.0",
		XmlnsSLD:   "http://www.opengis.net/sld",
		XmlnsOGC:   "http://www.opengis.net/ogc",
		XmlnsXlink: "http://www.w3.org/1999/xlink",
		NamedLayer: NamedLayer{
			UserStyle: UserStyle{
				Name:              style.Name,
				FeatureTypeStyles: style.FeatureTypeStyles,
			},
		},
	}
}

// Style is the translator's in-memory output tree, shaped by the OGC
// SLD model: a name and an ordered list of feature-type styles. It is
// kept separate from Document so callers that only need the tree (for
// testing the translator's invariants) are not forced through XML.
type Style struct {
	Name              string
	FeatureTypeStyles []FeatureTypeStyle
}

//########### FeatureTypeStyle / Rule ###########//

// FeatureTypeStyle groups the rules that apply to one feature type at
// one drawing-order band. FeatureTypeNames is empty for the default
// (unqualified) group.
type FeatureTypeStyle struct {
	FeatureTypeNames []string `xml:"FeatureTypeName,omitempty"`
	Rules            []Rule   `xml:"Rule"`
}

// Rule describes one SLD rule: a filter, an optional scale range, an
// optional title/abstract, and the symbolizers it carries.
type Rule struct {
	Name              string       `xml:"Name,omitempty"`
	Title             string       `xml:"Title,omitempty"`
	Abstract          string       `xml:"Abstract,omitempty"`
	MinScale          *float64     `xml:"MinScaleDenominator,omitempty"`
	MaxScale          *float64     `xml:"MaxScaleDenominator,omitempty"`
	Filter            *Filter      `xml:"Filter,omitempty"`
	PolygonSymbolizer []Symbolizer `xml:"PolygonSymbolizer,omitempty"`
	LineSymbolizer    []Symbolizer `xml:"LineSymbolizer,omitempty"`
	PointSymbolizer   []Symbolizer `xml:"PointSymbolizer,omitempty"`
	TextSymbolizer    []Symbolizer `xml:"TextSymbolizer,omitempty"`
	RasterSymbolizer  []Symbolizer `xml:"RasterSymbolizer,omitempty"`
}

// Filter carries a pre-rendered OGC Filter Encoding fragment. The
// translator builds it from ogcfilter.Filter; rendering that tree to
// literal XML is a serializer concern, kept out of the core the same
// way the external interfaces section splits core from parser/serializer.
type Filter struct {
	XMLContent []byte `xml:",innerxml"`
}

// Symbolizer carries a pre-rendered symbolizer body assembled by
// package symbolizer's synthesizers.
type Symbolizer struct {
	XMLContent []byte `xml:",innerxml"`
}

//VendorOption contains the name and value of a VendorOption from an SLD
type VendorOption struct {
	OptionName string `xml:"name,attr"`
	Value      string `xml:",chardata"`
}
