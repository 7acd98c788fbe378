package symbolizer

import (
	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/sld"
	"github.com/geocart/cartosld/value"
)

// Point synthesizes one point symbolizer per element of the mark
// multi-value, each built via the subgraphic builder and modified by
// mark-rotation, mark-size, and mark-opacity.
func Point(props cssrule.PropertyBag) ([]sld.Symbolizer, error) {
	markValues := props.Get(pseudoclass.RootClass, cssrule.PropMark)
	if len(markValues) == 0 {
		return nil, nil
	}
	members := value.AsMultiValue(wrapMulti(markValues))

	out := make([]sld.Symbolizer, 0, len(members))
	for i, m := range members {
		if m == nil {
			continue
		}
		opts := graphicOptions{
			size:     LiteralAt(props.Get(pseudoclass.RootClass, "mark-size"), i),
			rotation: LiteralAt(props.Get(pseudoclass.RootClass, "mark-rotation"), i),
			opacity:  LiteralAt(props.Get(pseudoclass.RootClass, "mark-opacity"), i),
		}
		g, err := buildGraphic(props, string(cssrule.PropMark), m, pseudoclass.Mark, i+1, opts)
		if err != nil {
			return nil, err
		}

		var geometry *sld.Geometry
		if gv := ValueAt(props.Get(pseudoclass.RootClass, "mark-geometry"), i); gv != nil {
			geometry = &sld.Geometry{PropertyName: gv.ToLiteral()}
		}

		out = append(out, sld.Render(append([]interface{}{g, geometry}, vendorOptionArgs(vendorOptions(props, pointVendorOptions))...)...))
	}
	return out, nil
}

// wrapMulti lets AsMultiValue treat a multi-element property list
// (one value.Value per repetition) the same way it treats a single
// MultiValue literal - the mark property can arrive either way
// depending on how the (external) parser represents "mark: a, b".
func wrapMulti(values []value.Value) value.Value {
	if len(values) == 1 {
		return values[0]
	}
	return value.MultiValue{Values: values}
}
