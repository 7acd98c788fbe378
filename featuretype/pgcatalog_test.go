package featuretype

import "testing"

func TestPgCatalogBuildQuery(t *testing.T) {
	c := &PgCatalog{}
	query, args := c.buildQuery("public", "roads")

	if query == "" {
		t.Fatal("expected a non-empty query")
	}
	if len(args) != 2 || args[0] != "public" || args[1] != "roads" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestCoarsenPgType(t *testing.T) {
	cases := map[string]Kind{
		"character varying": StringKind,
		"text":               StringKind,
		"integer":            NumberKind,
		"double precision":   NumberKind,
		"boolean":            BooleanKind,
		"geometry":           GeometryKind,
		"geography":          GeometryKind,
		"box3d":              Unknown,
	}
	for dataType, want := range cases {
		if got := coarsenPgType(dataType); got != want {
			t.Errorf("coarsenPgType(%q) = %v, want %v", dataType, got, want)
		}
	}
}
