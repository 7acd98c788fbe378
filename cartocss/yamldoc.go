package cartocss

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/geocart/cartosld/cssrule"
)

// yamlSelector mirrors SelectorDoc with yaml tags; kept distinct from
// SelectorDoc so the wire format's field names (short, lower-case) can
// diverge from the Go-facing struct without tagging every field twice.
type yamlSelector struct {
	Accept bool `yaml:"accept,omitempty"`
	Reject bool `yaml:"reject,omitempty"`

	Type string   `yaml:"type,omitempty"`
	IDs  []string `yaml:"id,omitempty"`
	Z    *int     `yaml:"z,omitempty"`

	ScaleMin *float64 `yaml:"scale_min,omitempty"`
	ScaleMax *float64 `yaml:"scale_max,omitempty"`

	Data *yamlData `yaml:"data,omitempty"`

	And []yamlSelector `yaml:"and,omitempty"`
	Or  []yamlSelector `yaml:"or,omitempty"`
	Not *yamlSelector  `yaml:"not,omitempty"`
}

type yamlData struct {
	Property string   `yaml:"property"`
	Op       string   `yaml:"op"`
	Value    string   `yaml:"value,omitempty"`
	Low      string   `yaml:"low,omitempty"`
	High     string   `yaml:"high,omitempty"`
	IDs      []string `yaml:"id,omitempty"`
}

type yamlRule struct {
	Selector   yamlSelector        `yaml:"selector"`
	Properties map[string][]string `yaml:"properties"`
	Comment    string              `yaml:"comment,omitempty"`
}

type yamlDocument struct {
	Rules []yamlRule `yaml:"rules"`
}

// ParseYAML decodes a YAML-authored stylesheet (a top-level "rules"
// sequence of {selector, properties, comment} maps) into a
// cssrule.Stylesheet. This is additive to direct Document
// construction, not a replacement: it exists so a stylesheet can be
// hand-authored without writing Go literals.
func ParseYAML(data []byte) (cssrule.Stylesheet, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return cssrule.Stylesheet{}, fmt.Errorf("decoding YAML stylesheet: %w", err)
	}
	return Build(toDocument(doc))
}

// ParseYAMLFile reads path and decodes it as ParseYAML does.
func ParseYAMLFile(path string) (cssrule.Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cssrule.Stylesheet{}, fmt.Errorf("reading stylesheet %q: %w", path, err)
	}
	return ParseYAML(data)
}

func toDocument(doc yamlDocument) Document {
	out := Document{Rules: make([]RuleDoc, len(doc.Rules))}
	for i, r := range doc.Rules {
		out.Rules[i] = RuleDoc{
			Selector:   toSelectorDoc(r.Selector),
			Properties: r.Properties,
			Comment:    r.Comment,
		}
	}
	return out
}

func toSelectorDoc(y yamlSelector) SelectorDoc {
	d := SelectorDoc{
		Accept:   y.Accept,
		Reject:   y.Reject,
		TypeName: y.Type,
		IDs:      y.IDs,
		ZIndex:   y.Z,
		ScaleMin: y.ScaleMin,
		ScaleMax: y.ScaleMax,
	}
	if y.Data != nil {
		d.Data = &DataDoc{
			Property: y.Data.Property,
			Op:       y.Data.Op,
			Value:    y.Data.Value,
			Low:      y.Data.Low,
			High:     y.Data.High,
			IDs:      y.Data.IDs,
		}
	}
	for _, c := range y.And {
		d.And = append(d.And, toSelectorDoc(c))
	}
	for _, c := range y.Or {
		d.Or = append(d.Or, toSelectorDoc(c))
	}
	if y.Not != nil {
		n := toSelectorDoc(*y.Not)
		d.Not = &n
	}
	return d
}
