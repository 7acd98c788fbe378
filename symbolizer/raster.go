package symbolizer

import (
	"strings"

	"github.com/geocart/cartosld/cartoerr"
	"github.com/geocart/cartosld/cssrule"
	"github.com/geocart/cartosld/pseudoclass"
	"github.com/geocart/cartosld/sld"
	"github.com/geocart/cartosld/value"
)

var validColorMapTypes = map[string]bool{"ramp": true, "intervals": true, "values": true}
var validContrastTypes = map[string]bool{"none": true, "histogram": true, "normalize": true}

// Raster synthesizes a single raster symbolizer - unlike the other
// kinds it never repeats, since a feature carries exactly one raster
// coverage.
func Raster(props cssrule.PropertyBag) ([]sld.Symbolizer, error) {
	channelValues := props.Get(pseudoclass.RootClass, cssrule.PropRasterChannels)
	if len(channelValues) == 0 {
		return nil, nil
	}
	channelNames := StringArray(firstMultiMembers(channelValues))
	if len(channelNames) == 0 {
		return nil, cartoerr.Invalid(string(cssrule.PropRasterChannels), "", "expected at least one channel name")
	}

	var selection *sld.ChannelSelection
	var topLevelContrast *sld.ContrastEnhancement

	if strings.EqualFold(channelNames[0], "auto") {
		enhancement, err := buildContrastEnhancement(props, 0)
		if err != nil {
			return nil, err
		}
		topLevelContrast = enhancement
	} else {
		switch len(channelNames) {
		case 1:
			ch, err := buildSelectedChannel(props, channelNames, 0)
			if err != nil {
				return nil, err
			}
			selection = &sld.ChannelSelection{GrayChannel: ch}
		case 3:
			red, err := buildSelectedChannel(props, channelNames, 0)
			if err != nil {
				return nil, err
			}
			green, err := buildSelectedChannel(props, channelNames, 1)
			if err != nil {
				return nil, err
			}
			blue, err := buildSelectedChannel(props, channelNames, 2)
			if err != nil {
				return nil, err
			}
			selection = &sld.ChannelSelection{RedChannel: red, GreenChannel: green, BlueChannel: blue}
		default:
			return nil, cartoerr.Invalid(string(cssrule.PropRasterChannels), strings.Join(channelNames, " "), "expected exactly 1 or 3 channel names")
		}
	}

	colorMap, err := buildColorMap(props)
	if err != nil {
		return nil, err
	}

	return []sld.Symbolizer{sld.Render(selection, topLevelContrast, colorMap)}, nil
}

func firstMultiMembers(values []value.Value) []value.Value {
	if len(values) == 1 {
		return value.AsMultiValue(values[0])
	}
	return values
}

func buildSelectedChannel(props cssrule.PropertyBag, names []string, i int) (*sld.SelectedChannel, error) {
	enhancement, err := buildContrastEnhancement(props, i)
	if err != nil {
		return nil, err
	}
	return &sld.SelectedChannel{SourceChannelName: names[i], ContrastEnhancement: enhancement}, nil
}

// buildContrastEnhancement applies the fixed broadcast semantics: when
// the raster-contrast-enhancement or raster-gamma array is shorter
// than i+1, channel 0's value is reused rather than leaving the
// channel unenhanced, as the source's asymmetric indexing did.
func buildContrastEnhancement(props cssrule.PropertyBag, i int) (*sld.ContrastEnhancement, error) {
	kindLiteral := broadcastAt(props.Get(pseudoclass.RootClass, "raster-contrast-enhancement"), i)
	gammaLiteral := broadcastAt(props.Get(pseudoclass.RootClass, "raster-gamma"), i)
	if kindLiteral == "" && gammaLiteral == "" {
		return nil, nil
	}
	if kindLiteral != "" && !validContrastTypes[kindLiteral] {
		return nil, cartoerr.Invalid("raster-contrast-enhancement", kindLiteral, "expected one of none, histogram, normalize")
	}

	ce := &sld.ContrastEnhancement{GammaValue: gammaLiteral}
	switch kindLiteral {
	case "histogram":
		ce.Histogram = &struct{}{}
	case "normalize":
		ce.Normalize = &struct{}{}
	}
	return ce, nil
}

// broadcastAt reuses values[0] whenever i falls outside values,
// rather than values' own singleton-only broadcast (see ValueAt).
func broadcastAt(values []value.Value, i int) string {
	if len(values) == 0 {
		return ""
	}
	if i < len(values) {
		return values[i].ToLiteral()
	}
	return values[0].ToLiteral()
}

func buildColorMap(props cssrule.PropertyBag) (*sld.ColorMap, error) {
	mapValues := props.Get(pseudoclass.RootClass, "raster-color-map")
	if len(mapValues) == 0 {
		return nil, nil
	}

	typeLiteral := LiteralAt(props.Get(pseudoclass.RootClass, "raster-color-map-type"), 0)
	if typeLiteral != "" && !validColorMapTypes[typeLiteral] {
		return nil, cartoerr.Invalid("raster-color-map-type", typeLiteral, "expected one of ramp, intervals, values")
	}

	entries := make([]sld.ColorMapEntry, 0, len(mapValues))
	for _, member := range firstMultiMembers(mapValues) {
		fn, ok := member.(value.Function)
		if !ok || fn.Name != value.FuncColorMapEntry {
			return nil, cartoerr.Invalid("raster-color-map", member.ToLiteral(), "expected color-map-entry(...)")
		}
		if len(fn.Params) != 2 && len(fn.Params) != 3 {
			return nil, cartoerr.Invalid("raster-color-map", member.ToLiteral(), "color-map-entry(...) takes 2 or 3 arguments")
		}
		entry := sld.ColorMapEntry{Color: fn.Params[0].ToLiteral(), Quantity: fn.Params[1].ToLiteral()}
		if len(fn.Params) == 3 {
			entry.Opacity = fn.Params[2].ToLiteral()
		}
		entries = append(entries, entry)
	}

	return &sld.ColorMap{Type: typeLiteral, Entries: entries}, nil
}
