package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/geocart/cartosld/featuretype"
)

const sampleMapping = `
tables:
  roads:
    columns:
      - {name: osm_id, type: integer}
      - {name: name, type: string}
      - {name: geometry, type: geometry}
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	if err := os.WriteFile(path, []byte(sampleMapping), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadCatalogFeatureType(t *testing.T) {
	cat, err := LoadCatalog(writeSample(t))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	ft, err := cat.FeatureType("roads")
	if err != nil {
		t.Fatalf("FeatureType: %v", err)
	}
	attr, ok := ft.Attribute("name")
	if !ok || attr.Kind != featuretype.StringKind {
		t.Fatalf("expected string kind for name, got %+v ok=%v", attr, ok)
	}
	attr, ok = ft.Attribute("geometry")
	if !ok || attr.Kind != featuretype.GeometryKind {
		t.Fatalf("expected geometry kind for geometry, got %+v ok=%v", attr, ok)
	}
}

func TestFeatureTypeUnknownTable(t *testing.T) {
	cat, err := LoadCatalog(writeSample(t))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	ft, err := cat.FeatureType("missing")
	if err != nil {
		t.Fatalf("FeatureType: %v", err)
	}
	if len(ft.Attributes) != 0 {
		t.Fatalf("expected no attributes for an undeclared table, got %+v", ft.Attributes)
	}
}
