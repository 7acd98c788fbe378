package sld

// This file holds the typed symbolizer bodies the synthesizers in
// package symbolizer assemble before rendering them to the raw
// XMLContent a Symbolizer carries. Keeping them typed (rather than
// building XML strings by hand) lets the synthesizer tests assert on
// structure instead of string matching.

// CSSParameter is an SLD "well-known name" parameter - the building
// block of Fill, Stroke, and font/label property blocks.
type CSSParameter struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// Fill is a solid-color or graphic-filled area.
type Fill struct {
	GraphicFill *GraphicFill   `xml:"GraphicFill,omitempty"`
	CSSParams   []CSSParameter `xml:"CssParameter,omitempty"`
}

// GraphicFill wraps a repeated Graphic used to tile a fill.
type GraphicFill struct {
	Graphic Graphic `xml:"Graphic"`
}

// Stroke is a line or outline paint, solid or graphic-stroked/filled.
type Stroke struct {
	GraphicFill   *GraphicFill   `xml:"GraphicFill,omitempty"`
	GraphicStroke *GraphicStroke `xml:"GraphicStroke,omitempty"`
	CSSParams     []CSSParameter `xml:"CssParameter,omitempty"`
}

// GraphicStroke repeats a Graphic along a line.
type GraphicStroke struct {
	Graphic Graphic `xml:"Graphic"`
}

// Graphic is a well-known mark or an external graphic, with common
// size/rotation/opacity modifiers.
type Graphic struct {
	Mark            *Mark            `xml:"Mark,omitempty"`
	ExternalGraphic *ExternalGraphic `xml:"ExternalGraphic,omitempty"`
	Opacity         string           `xml:"Opacity,omitempty"`
	Size            string           `xml:"Size,omitempty"`
	Rotation        string           `xml:"Rotation,omitempty"`
}

// Mark is a well-known symbol name with its own fill/stroke.
type Mark struct {
	WellKnownName string  `xml:"WellKnownName"`
	Fill          *Fill   `xml:"Fill,omitempty"`
	Stroke        *Stroke `xml:"Stroke,omitempty"`
}

// ExternalGraphic references an external image by URL and mime type.
type ExternalGraphic struct {
	OnlineResource OnlineResource `xml:"OnlineResource"`
	Format         string         `xml:"Format"`
}

// OnlineResource is an xlink:href pointer to an external resource.
type OnlineResource struct {
	Href string `xml:"xlink:href,attr"`
}

// Font is a text symbolizer's font description.
type Font struct {
	CSSParams []CSSParameter `xml:"CssParameter,omitempty"`
}

// Halo is a text symbolizer's background halo.
type Halo struct {
	Radius string `xml:"Radius,omitempty"`
	Fill   *Fill  `xml:"Fill,omitempty"`
}

// LabelPlacement selects point or line placement for a text symbolizer.
type LabelPlacement struct {
	PointPlacement *PointPlacement `xml:"PointPlacement,omitempty"`
	LinePlacement  *LinePlacement  `xml:"LinePlacement,omitempty"`
}

// PointPlacement anchors a label relative to the feature's point.
type PointPlacement struct {
	AnchorPoint  *AnchorPoint  `xml:"AnchorPoint,omitempty"`
	Displacement *Displacement `xml:"Displacement,omitempty"`
	Rotation     string        `xml:"Rotation,omitempty"`
}

// AnchorPoint is a fractional (x, y) anchor within the label box.
type AnchorPoint struct {
	AnchorPointX string `xml:"AnchorPointX"`
	AnchorPointY string `xml:"AnchorPointY"`
}

// Displacement offsets a label from its anchor, in pixels.
type Displacement struct {
	DisplacementX string `xml:"DisplacementX"`
	DisplacementY string `xml:"DisplacementY"`
}

// LinePlacement offsets a label along the feature's line geometry.
type LinePlacement struct {
	PerpendicularOffset string `xml:"PerpendicularOffset"`
}

// ChannelSelection binds raster bands to grayscale or RGB channels.
type ChannelSelection struct {
	GrayChannel  *SelectedChannel  `xml:"GrayChannel,omitempty"`
	RedChannel   *SelectedChannel  `xml:"RedChannel,omitempty"`
	GreenChannel *SelectedChannel  `xml:"GreenChannel,omitempty"`
	BlueChannel  *SelectedChannel  `xml:"BlueChannel,omitempty"`
}

// SelectedChannel names a source band and its contrast enhancement.
type SelectedChannel struct {
	SourceChannelName    string                `xml:"SourceChannelName"`
	ContrastEnhancement  *ContrastEnhancement  `xml:"ContrastEnhancement,omitempty"`
}

// ContrastEnhancement selects a histogram/normalize stretch and gamma.
type ContrastEnhancement struct {
	Histogram      *struct{} `xml:"Histogram,omitempty"`
	Normalize      *struct{} `xml:"Normalize,omitempty"`
	GammaValue     string    `xml:"GammaValue,omitempty"`
}

// ColorMap is a raster palette of ramp/intervals/values entries.
type ColorMap struct {
	Type    string             `xml:"type,attr,omitempty"`
	Entries []ColorMapEntry `xml:"ColorMapEntry"`
}

// ColorMapEntry is a single color/quantity/opacity/label entry.
type ColorMapEntry struct {
	Color    string `xml:"color,attr"`
	Quantity string `xml:"quantity,attr,omitempty"`
	Opacity  string `xml:"opacity,attr,omitempty"`
	Label    string `xml:"label,attr,omitempty"`
}
