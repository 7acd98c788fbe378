package translate

import (
	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/extract"
	"github.com/geocart/cartosld/ogcfilter"
	"github.com/geocart/cartosld/selector"
	"github.com/geocart/cartosld/sld"
	"github.com/geocart/cartosld/symbolizer"
)

// buildSldRule renders one derived rule into its SLD form, or reports
// ok=false when the rule's filter compiles to Exclude - an
// unsatisfiable rule is silently dropped rather than emitted as a
// rule that can never match.
func buildSldRule(r cssrule.CssRule) (sld.Rule, bool, error) {
	compiled := ogcfilter.Compile(r.Selector)
	if compiled == ogcfilter.Exclude {
		return sld.Rule{}, false, nil
	}

	out := sld.Rule{}
	out.Title, out.Abstract = titleAndAbstract(r.Comment)

	if compiled != ogcfilter.Include {
		out.Filter = &sld.Filter{XMLContent: []byte(sld.FilterXML(compiled))}
	}

	// A scale bound is omitted on whichever side is unconstrained:
	// min 0 or max +Inf carry no information an SLD consumer needs.
	if sr, ok := extract.ScaleRange(r.Selector); ok {
		if sr.Min > 0 {
			min := sr.Min
			out.MinScale = &min
		}
		if max := sr.Max; !isInfinite(max) {
			out.MaxScale = &max
		}
	}

	var err error
	if out.PolygonSymbolizer, err = symbolizer.Polygon(r.Properties); err != nil {
		return sld.Rule{}, false, err
	}
	if out.LineSymbolizer, err = symbolizer.Line(r.Properties); err != nil {
		return sld.Rule{}, false, err
	}
	if out.PointSymbolizer, err = symbolizer.Point(r.Properties); err != nil {
		return sld.Rule{}, false, err
	}
	if out.TextSymbolizer, err = symbolizer.Text(r.Properties); err != nil {
		return sld.Rule{}, false, err
	}
	if out.RasterSymbolizer, err = symbolizer.Raster(r.Properties); err != nil {
		return sld.Rule{}, false, err
	}

	return out, true, nil
}

func isInfinite(f float64) bool {
	return f >= selector.FullScaleRange.Max
}
