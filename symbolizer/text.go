package symbolizer

import (
	"strings"

	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/cartoerr"
	"github.com/geocart/cartosld/ogcexpr"
	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/sld"
	"github.com/geocart/cartosld/value"
)

var fontProperties = []cssrule.PropertyName{"font-family", "font-style", "font-weight", "font-size"}
var haloPrefix = cssrule.PropertyName("halo")

// Text synthesizes one text symbolizer per repetition of the label
// property.
func Text(props cssrule.PropertyBag) ([]sld.Symbolizer, error) {
	if !props.Has(pseudoclass.RootClass, cssrule.PropLabel) {
		return nil, nil
	}
	n := RepeatCount(props, pseudoclass.RootClass, cssrule.PropLabel)

	out := make([]sld.Symbolizer, 0, n)
	for i := 0; i < n; i++ {
		labelVal := ValueAt(props.Get(pseudoclass.RootClass, cssrule.PropLabel), i)
		if labelVal == nil {
			continue
		}
		label := &sld.Label{Inner: sld.ExpressionXML(labelExpression(labelVal))}

		placement, err := buildLabelPlacement(props, i)
		if err != nil {
			return nil, err
		}

		var priority *sld.Priority
		if pv := ValueAt(props.Get(pseudoclass.RootClass, "-gt-label-priority"), i); pv != nil {
			priority = &sld.Priority{Inner: sld.ExpressionXML(pv.ToExpression())}
		}

		font := buildFont(props, i)
		halo := buildHalo(props, i)

		var shield *sld.Graphic
		if sv := ValueAt(props.Get(pseudoclass.RootClass, "shield"), i); sv != nil {
			g, err := buildGraphic(props, "shield", sv, pseudoclass.Shield, i+1, graphicOptions{})
			if err != nil {
				return nil, err
			}
			shield = g
		}

		var geometry *sld.Geometry
		if gv := ValueAt(props.Get(pseudoclass.RootClass, "label-geometry"), i); gv != nil {
			geometry = &sld.Geometry{PropertyName: gv.ToLiteral()}
		}

		parts := []interface{}{label, font, placement, halo, priority, geometry, shield}
		parts = append(parts, vendorOptionArgs(vendorOptions(props, textVendorOptions))...)
		out = append(out, sld.Render(parts...))
	}
	return out, nil
}

// labelExpression folds a MultiValue label into Concatenate(...).
func labelExpression(v value.Value) ogcexpr.Expression {
	members := value.AsMultiValue(v)
	if len(members) == 1 {
		return members[0].ToExpression()
	}
	exprs := make([]ogcexpr.Expression, len(members))
	for i, m := range members {
		exprs[i] = m.ToExpression()
	}
	return ogcexpr.Concatenate(exprs...)
}

// buildLabelPlacement decides point vs line placement: a one-element
// label-offset selects line placement with that perpendicular offset;
// a two-element offset, or any label-anchor, selects point placement.
func buildLabelPlacement(props cssrule.PropertyBag, i int) (*sld.LabelPlacement, error) {
	offsetValues := props.Get(pseudoclass.RootClass, "label-offset")
	anchorValues := props.Get(pseudoclass.RootClass, "label-anchor")

	offset := anyMultiMembers(offsetValues, i)

	if len(offset) == 1 && len(anchorValues) == 0 {
		return &sld.LabelPlacement{LinePlacement: &sld.LinePlacement{
			PerpendicularOffset: offset[0].ToLiteral(),
		}}, nil
	}

	point := &sld.PointPlacement{Rotation: LiteralAt(props.Get(pseudoclass.RootClass, "label-rotation"), i)}

	if len(anchorValues) > 0 {
		anchor := anyMultiMembers(anchorValues, i)
		if len(anchor) != 2 {
			return nil, cartoerr.Invalid("label-anchor", literalsJoined(anchor), "expected exactly two numbers")
		}
		point.AnchorPoint = &sld.AnchorPoint{AnchorPointX: anchor[0].ToLiteral(), AnchorPointY: anchor[1].ToLiteral()}
	}
	if len(offset) == 2 {
		point.Displacement = &sld.Displacement{DisplacementX: offset[0].ToLiteral(), DisplacementY: offset[1].ToLiteral()}
	} else if len(offset) != 0 {
		return nil, cartoerr.Invalid("label-offset", literalsJoined(offset), "expected one or two numbers")
	}

	if point.AnchorPoint == nil && point.Displacement == nil && point.Rotation == "" {
		return nil, nil
	}
	return &sld.LabelPlacement{PointPlacement: point}, nil
}

func anyMultiMembers(values []value.Value, i int) []value.Value {
	v := ValueAt(values, i)
	if v == nil {
		return nil
	}
	return value.AsMultiValue(v)
}

func literalsJoined(values []value.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.ToLiteral()
	}
	return strings.Join(parts, " ")
}

// buildFont emits a Font block only if a font-related property
// beyond font-fill is present for this repetition, matching the
// source's "don't emit an empty font block" behavior.
func buildFont(props cssrule.PropertyBag, i int) *sld.Font {
	var params []sld.CSSParameter
	for _, name := range fontProperties {
		if v := LiteralAt(props.Get(pseudoclass.RootClass, name), i); v != "" {
			params = append(params, sld.CSSParameter{Name: string(name), Value: v})
		}
	}
	if len(params) == 0 {
		return nil
	}
	if fill := LiteralAt(props.Get(pseudoclass.RootClass, "font-fill"), i); fill != "" {
		params = append(params, sld.CSSParameter{Name: "font-fill", Value: fill})
	}
	return &sld.Font{CSSParams: params}
}

// buildHalo emits a Halo block if any halo-* property is present.
func buildHalo(props cssrule.PropertyBag, i int) *sld.Halo {
	selected := props.Select(pseudoclass.RootClass, haloPrefix)
	if len(selected) == 0 {
		return nil
	}
	halo := &sld.Halo{Radius: LiteralAt(props.Get(pseudoclass.RootClass, "halo-radius"), i)}
	color := LiteralAt(props.Get(pseudoclass.RootClass, "halo-color"), i)
	opacity := LiteralAt(props.Get(pseudoclass.RootClass, "halo-opacity"), i)
	halo.Fill = buildSolidFill(color, opacity)
	return halo
}
