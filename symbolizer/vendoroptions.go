package symbolizer

import (
	"strings"

	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/sld"
)

// Vendor-option translation tables: cartographic key -> SLD option
// key, fixed per the external interfaces contract.
var (
	polygonVendorOptions = map[cssrule.PropertyName]string{
		"-gt-graphic-margin":               "graphic-margin",
		"-gt-fill-label-obstacle":          "labelObstacle",
		"-gt-fill-random":                  "random",
		"-gt-fill-random-seed":             "random-seed",
		"-gt-fill-random-tile-size":        "random-tile-size",
		"-gt-fill-random-symbol-count":     "random-symbol-count",
		"-gt-fill-random-space-around":     "random-space-around",
		"-gt-fill-random-rotation":         "random-rotation",
	}

	lineVendorOptions = map[cssrule.PropertyName]string{
		"-gt-stroke-label-obstacle": "labelObstacle",
	}

	pointVendorOptions = map[cssrule.PropertyName]string{
		"-gt-mark-label-obstacle": "labelObstacle",
	}

	textVendorOptions = map[cssrule.PropertyName]string{
		"-gt-label-padding":             "spaceAround",
		"-gt-label-group":               "group",
		"-gt-label-max-displacement":    "maxDisplacement",
		"-gt-label-min-group-distance":  "minGroupDistance",
		"-gt-label-repeat":              "repeat",
		"-gt-label-all-group":           "allGroup",
		"-gt-label-remove-overlaps":     "removeOverlaps",
		"-gt-label-allow-overruns":      "allowOverrun",
		"-gt-label-follow-line":         "followLine",
		"-gt-label-max-angle-delta":     "maxAngleDelta",
		"-gt-label-auto-wrap":           "autoWrap",
		"-gt-label-force-ltr":           "forceLeftToRight",
		"-gt-label-conflict-resolution": "conflictResolution",
		"-gt-label-fit-goodness":        "goodnessOfFit",
		"-gt-shield-resize":             "graphic-resize",
		"-gt-shield-margin":             "graphic-margin",
	}
)

type vendorOptionPair struct {
	cssKey cssrule.PropertyName
	sldKey string
}

// vendorOptions reads every key in table out of props at the root
// pseudo-class and renders the ones that are present, sorted by SLD
// option name so output is deterministic.
func vendorOptions(props cssrule.PropertyBag, table map[cssrule.PropertyName]string) []sld.VendorOption {
	var pairs []vendorOptionPair
	for cssKey, sldKey := range table {
		if props.Has(pseudoclass.RootClass, cssKey) {
			pairs = append(pairs, vendorOptionPair{cssKey: cssKey, sldKey: sldKey})
		}
	}
	sortPairsBySLDKey(pairs)

	out := make([]sld.VendorOption, 0, len(pairs))
	for _, p := range pairs {
		values := props.Get(pseudoclass.RootClass, p.cssKey)
		if len(values) == 0 {
			continue
		}
		out = append(out, sld.VendorOption{OptionName: p.sldKey, Value: values[0].ToLiteral()})
	}
	return out
}

func sortPairsBySLDKey(pairs []vendorOptionPair) {
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && strings.Compare(pairs[j-1].sldKey, pairs[j].sldKey) > 0; j-- {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
		}
	}
}
