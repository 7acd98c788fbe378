package symbolizer

import (
	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/sld"
	"github.com/geocart/cartosld/value"
)

// Line synthesizes one line symbolizer per repetition of the stroke
// property, skipping rules whose stroke was already folded into a
// polygon symbolizer.
func Line(props cssrule.PropertyBag) ([]sld.Symbolizer, error) {
	if !props.Has(pseudoclass.RootClass, cssrule.PropStroke) {
		return nil, nil
	}
	if props.Has(pseudoclass.RootClass, cssrule.PropFill) && !hasAnyLineVendorOption(props) {
		// folded into Polygon's stroke instead.
		return nil, nil
	}

	n := RepeatCount(props, pseudoclass.RootClass, cssrule.PropStroke)
	out := make([]sld.Symbolizer, 0, n)
	for i := 0; i < n; i++ {
		stroke, err := buildLineStroke(props, i)
		if err != nil {
			return nil, err
		}
		if stroke == nil {
			continue
		}

		var geometry *sld.Geometry
		if gv := ValueAt(props.Get(pseudoclass.RootClass, "stroke-geometry"), i); gv != nil {
			geometry = &sld.Geometry{PropertyName: gv.ToLiteral()}
		}

		out = append(out, sld.Render(append([]interface{}{stroke, geometry}, vendorOptionArgs(vendorOptions(props, lineVendorOptions))...)...))
	}
	return out, nil
}

// buildLineStroke builds the i-th stroke, graphic or solid, for a
// full LineSymbolizer (width/linecap/linejoin/dasharray/dashoffset
// included).
func buildLineStroke(props cssrule.PropertyBag, i int) (*sld.Stroke, error) {
	strokeVal := ValueAt(props.Get(pseudoclass.RootClass, cssrule.PropStroke), i)
	if strokeVal == nil {
		return nil, nil
	}
	if _, ok := strokeVal.(value.Function); ok {
		return solidOrGraphicStroke(props, i), nil
	}
	return buildSolidStroke(strokeParams{
		color:      strokeVal.ToLiteral(),
		opacity:    LiteralAt(props.Get(pseudoclass.RootClass, "stroke-opacity"), i),
		width:      LiteralAt(props.Get(pseudoclass.RootClass, "stroke-width"), i),
		linecap:    LiteralAt(props.Get(pseudoclass.RootClass, "stroke-linecap"), i),
		linejoin:   LiteralAt(props.Get(pseudoclass.RootClass, "stroke-linejoin"), i),
		dasharray:  LiteralAt(props.Get(pseudoclass.RootClass, "stroke-dasharray"), i),
		dashoffset: LiteralAt(props.Get(pseudoclass.RootClass, "stroke-dashoffset"), i),
	}), nil
}

// solidOrGraphicStroke builds the simpler stroke used when a stroke
// is folded into a Polygon symbolizer's outline, or when the stroke
// value itself is a graphic function (stroke-repeat controls whether
// the graphic is repeated along the line or stippled as a fill).
func solidOrGraphicStroke(props cssrule.PropertyBag, i int) *sld.Stroke {
	strokeVal := ValueAt(props.Get(pseudoclass.RootClass, cssrule.PropStroke), i)
	if strokeVal == nil {
		return nil
	}
	if _, ok := strokeVal.(value.Function); ok {
		g, err := buildGraphic(props, string(cssrule.PropStroke), strokeVal, pseudoclass.Stroke, i+1, graphicOptions{})
		if err != nil {
			return nil
		}
		stipple := LiteralAt(props.Get(pseudoclass.RootClass, "stroke-repeat"), i) == "stipple"
		return buildGraphicStroke(g, stipple)
	}
	return buildSolidStroke(strokeParams{
		color:   strokeVal.ToLiteral(),
		opacity: LiteralAt(props.Get(pseudoclass.RootClass, "stroke-opacity"), i),
		width:   LiteralAt(props.Get(pseudoclass.RootClass, "stroke-width"), i),
	})
}
