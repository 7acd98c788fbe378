package symbolizer

import (
	"github.com/geocart/cartosld/cartoerr"
	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/sld"
	"github.com/geocart/cartosld/value"
)

// graphicOptions carries the modifiers every graphic-bearing property
// (mark, stroke, shield, graphic fill) applies the same way: size,
// rotation, and - for marks only - opacity.
type graphicOptions struct {
	size, rotation, opacity string
	mimeDefault             string
}

// buildGraphic implements the SubgraphicBuilder role: given a value
// that must be a Function, emits either a well-known mark (with its
// own fill/stroke recursively built from the indexed pseudo-class
// layers) or an external graphic, and applies size/rotation/opacity.
// property names the caller's property, for error messages.
func buildGraphic(props cssrule.PropertyBag, property string, v value.Value, pseudoName string, index int, opts graphicOptions) (*sld.Graphic, error) {
	fn, ok := v.(value.Function)
	if !ok {
		return nil, cartoerr.Invalid(property, v.ToLiteral(), "expected symbol(...) or url(...)")
	}

	g := &sld.Graphic{Size: opts.size, Rotation: opts.rotation, Opacity: opts.opacity}

	switch fn.Name {
	case value.FuncSymbol:
		if len(fn.Params) == 0 {
			return nil, cartoerr.Invalid(property, v.ToLiteral(), "symbol(...) requires a name argument")
		}
		mark := &sld.Mark{WellKnownName: fn.Params[0].ToLiteral()}
		mark.Fill = buildSolidFill(
			firstLiteral(IndexedPseudoClassValues(props, pseudoName, index, cssrule.PropFill)),
			firstLiteral(IndexedPseudoClassValues(props, pseudoName, index, "fill-opacity")),
		)
		mark.Stroke = buildSolidStroke(strokeParams{
			color:   firstLiteral(IndexedPseudoClassValues(props, pseudoName, index, cssrule.PropStroke)),
			opacity: firstLiteral(IndexedPseudoClassValues(props, pseudoName, index, "stroke-opacity")),
			width:   firstLiteral(IndexedPseudoClassValues(props, pseudoName, index, "stroke-width")),
		})
		// A mark/shield with no indexed fill or stroke layer still
		// resets to an explicit empty Fill/Stroke rather than omitting
		// the element, distinguishing "nothing configured" from "no
		// symbolizer at all" the way the source CssTranslator does.
		if mark.Fill == nil {
			mark.Fill = &sld.Fill{}
		}
		if mark.Stroke == nil {
			mark.Stroke = &sld.Stroke{}
		}
		g.Mark = mark
	case value.FuncURL:
		if len(fn.Params) == 0 {
			return nil, cartoerr.Invalid(property, v.ToLiteral(), "url(...) requires a location argument")
		}
		mime := opts.mimeDefault
		if mime == "" {
			mime = "image/jpeg"
		}
		if mimeValues := props.Get(pseudoclass.New(pseudoName), cssrule.PropertyName(property+"-mime")); len(mimeValues) > 0 {
			mime = mimeValues[0].ToLiteral()
		}
		g.ExternalGraphic = &sld.ExternalGraphic{
			OnlineResource: sld.OnlineResource{Href: fn.Params[0].ToLiteral()},
			Format:         mime,
		}
	default:
		return nil, cartoerr.Invalid(property, v.ToLiteral(), "expected symbol(...) or url(...)")
	}

	return g, nil
}

func firstLiteral(values []value.Value) string {
	if len(values) == 0 || values[0] == nil {
		return ""
	}
	return values[0].ToLiteral()
}
