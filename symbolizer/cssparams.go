package symbolizer

import "github.com/geocart/cartosld/sld"

// buildSolidFill renders a plain color fill, or nil if color is empty
// (no fill property was present for this repetition).
func buildSolidFill(color, opacity string) *sld.Fill {
	if color == "" {
		return nil
	}
	params := []sld.CSSParameter{{Name: "fill", Value: color}}
	if opacity != "" {
		params = append(params, sld.CSSParameter{Name: "fill-opacity", Value: opacity})
	}
	return &sld.Fill{CSSParams: params}
}

// buildGraphicFill wraps g as a repeated graphic fill.
func buildGraphicFill(g *sld.Graphic) *sld.Fill {
	if g == nil {
		return nil
	}
	return &sld.Fill{GraphicFill: &sld.GraphicFill{Graphic: *g}}
}

type strokeParams struct {
	color, opacity, width, linecap, linejoin, dasharray, dashoffset string
}

// buildSolidStroke renders a plain color/graphic-agnostic stroke, or
// nil if color is empty.
func buildSolidStroke(p strokeParams) *sld.Stroke {
	if p.color == "" {
		return nil
	}
	params := []sld.CSSParameter{{Name: "stroke", Value: p.color}}
	if p.opacity != "" {
		params = append(params, sld.CSSParameter{Name: "stroke-opacity", Value: p.opacity})
	}
	if p.width != "" {
		params = append(params, sld.CSSParameter{Name: "stroke-width", Value: p.width})
	}
	if p.linecap != "" {
		params = append(params, sld.CSSParameter{Name: "stroke-linecap", Value: p.linecap})
	}
	if p.linejoin != "" {
		params = append(params, sld.CSSParameter{Name: "stroke-linejoin", Value: p.linejoin})
	}
	if p.dasharray != "" {
		params = append(params, sld.CSSParameter{Name: "stroke-dasharray", Value: p.dasharray})
	}
	if p.dashoffset != "" {
		params = append(params, sld.CSSParameter{Name: "stroke-dashoffset", Value: p.dashoffset})
	}
	return &sld.Stroke{CSSParams: params}
}

// buildGraphicStroke wraps g as a repeated or stippled graphic stroke.
func buildGraphicStroke(g *sld.Graphic, stipple bool) *sld.Stroke {
	if g == nil {
		return nil
	}
	if stipple {
		return &sld.Stroke{GraphicFill: &sld.GraphicFill{Graphic: *g}}
	}
	return &sld.Stroke{GraphicStroke: &sld.GraphicStroke{Graphic: *g}}
}
