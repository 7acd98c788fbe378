// Package mapping implements a featuretype.Source backed by a static
// table/column declaration file, adapted from the teacher's Imposm
// mapping reader: where the teacher parses a table/column declaration
// file to learn which columns an import produces, this package parses
// the same document shape to learn which columns a feature type
// exposes, for the translator's Data-selector simplification.
package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/geocart/cartosld/featuretype"
)

// Column is one declared table column: its name and its coarse type,
// using the same closed vocabulary the teacher's mapping files use
// for column types (string, integer, bool, geometry, ...).
type Column struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Table is one declared feature type: its columns, in declaration
// order.
type Table struct {
	Columns []Column `yaml:"columns"`
}

// Document is the root of a mapping file: a set of named tables.
type Document struct {
	Tables map[string]Table `yaml:"tables"`
}

// Catalog is a featuretype.Source backed by a parsed Document. It
// satisfies the same Source interface featuretype/pgcatalog.go
// implements against a live database, so a translator can be pointed
// at either a static file or a live connection interchangeably.
type Catalog struct {
	doc Document
}

// LoadCatalog reads and parses a YAML mapping file at path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping file %q: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding mapping file %q: %w", path, err)
	}
	return &Catalog{doc: doc}, nil
}

// TableNames returns the catalog's declared table names, in no
// particular order (callers needing determinism should sort).
func (c *Catalog) TableNames() []string {
	names := make([]string, 0, len(c.doc.Tables))
	for name := range c.doc.Tables {
		names = append(names, name)
	}
	return names
}

// FeatureType implements featuretype.Source: it returns the declared
// columns for name, coarsened to a Kind, or a Type with no attributes
// if name was never declared (absence is not an error - the heuristic
// guesser fills the gap).
func (c *Catalog) FeatureType(name string) (*featuretype.Type, error) {
	table, ok := c.doc.Tables[name]
	if !ok {
		return &featuretype.Type{Name: name}, nil
	}

	t := &featuretype.Type{Name: name}
	for _, col := range table.Columns {
		t.Attributes = append(t.Attributes, featuretype.Attribute{Name: col.Name, Kind: coarsenMappingType(col.Type)})
	}
	return t, nil
}

// coarsenMappingType maps the teacher's column-type vocabulary onto
// the translator's coarse Kind.
func coarsenMappingType(columnType string) featuretype.Kind {
	switch columnType {
	case "string":
		return featuretype.StringKind
	case "integer", "float", "direction":
		return featuretype.NumberKind
	case "bool", "boolint":
		return featuretype.BooleanKind
	case "geometry", "validated_geometry":
		return featuretype.GeometryKind
	default:
		return featuretype.Unknown
	}
}
