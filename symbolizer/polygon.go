package symbolizer

import (
	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/sld"
	"github.com/geocart/cartosld/value"
)

// Polygon synthesizes one polygon symbolizer per repetition of the
// fill property. A stroke is folded into the same symbolizer when the
// rule also carries a stroke property and no line-specific vendor
// option is present - the latter signals that the stroke needs its
// own, independently-controlled LineSymbolizer.
func Polygon(props cssrule.PropertyBag) ([]sld.Symbolizer, error) {
	if !props.Has(pseudoclass.RootClass, cssrule.PropFill) {
		return nil, nil
	}

	foldStroke := props.Has(pseudoclass.RootClass, cssrule.PropStroke) && !hasAnyLineVendorOption(props)
	n := RepeatCount(props, pseudoclass.RootClass, cssrule.PropFill)

	out := make([]sld.Symbolizer, 0, n)
	for i := 0; i < n; i++ {
		fillVal := ValueAt(props.Get(pseudoclass.RootClass, cssrule.PropFill), i)
		if fillVal == nil {
			continue
		}

		var fill *sld.Fill
		if _, ok := fillVal.(value.Function); ok {
			g, err := buildGraphic(props, string(cssrule.PropFill), fillVal, pseudoclass.Fill, i+1, graphicOptions{})
			if err != nil {
				return nil, err
			}
			fill = buildGraphicFill(g)
		} else {
			fill = buildSolidFill(fillVal.ToLiteral(), LiteralAt(props.Get(pseudoclass.RootClass, "fill-opacity"), i))
		}

		var stroke *sld.Stroke
		if foldStroke {
			stroke = solidOrGraphicStroke(props, i)
		}

		var geometry *sld.Geometry
		if gv := ValueAt(props.Get(pseudoclass.RootClass, "fill-geometry"), i); gv != nil {
			geometry = &sld.Geometry{PropertyName: gv.ToLiteral()}
		}

		out = append(out, sld.Render(append([]interface{}{fill, stroke, geometry}, vendorOptionArgs(vendorOptions(props, polygonVendorOptions))...)...))
	}
	return out, nil
}

func hasAnyLineVendorOption(props cssrule.PropertyBag) bool {
	for key := range lineVendorOptions {
		if props.Has(pseudoclass.RootClass, key) {
			return true
		}
	}
	return false
}

func vendorOptionArgs(opts []sld.VendorOption) []interface{} {
	out := make([]interface{}, len(opts))
	for i, o := range opts {
		out[i] = o
	}
	return out
}
