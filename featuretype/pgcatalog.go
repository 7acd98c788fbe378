package featuretype

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PgCatalog is a Source backed by a live PostgreSQL/PostGIS database,
// answering FeatureType by querying information_schema.columns for
// the named table and coarsening each column's data_type into a Kind.
type PgCatalog struct {
	DB     *sql.DB
	Schema string // defaults to "public" when empty
}

// OpenPgCatalog opens a connection pool against dataSourceName using
// the registered lib/pq driver. The caller owns the returned DB's
// lifetime via PgCatalog.DB.Close.
func OpenPgCatalog(dataSourceName string) (*PgCatalog, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("opening postgres catalog: %w", err)
	}
	return &PgCatalog{DB: db}, nil
}

// FeatureType implements Source by querying information_schema.columns
// for tableName. A table with no rows (not found, or no columns) is
// not an error: it returns a Type with zero attributes, matching the
// heuristic guesser's contract of "unknown means absent, not fatal."
func (c *PgCatalog) FeatureType(tableName string) (*Type, error) {
	schema := c.Schema
	if schema == "" {
		schema = "public"
	}

	query, args := c.buildQuery(schema, tableName)
	rows, err := c.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying columns for %q: %w", tableName, err)
	}
	defer rows.Close()

	t := &Type{Name: tableName}
	for rows.Next() {
		var columnName, dataType string
		if err := rows.Scan(&columnName, &dataType); err != nil {
			return nil, fmt.Errorf("scanning column row for %q: %w", tableName, err)
		}
		t.Attributes = append(t.Attributes, Attribute{Name: columnName, Kind: coarsenPgType(dataType)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading columns for %q: %w", tableName, err)
	}
	return t, nil
}

// buildQuery is factored out of FeatureType so its SQL text and
// argument order can be asserted without a live database.
func (c *PgCatalog) buildQuery(schema, tableName string) (string, []interface{}) {
	const query = `SELECT column_name, data_type FROM information_schema.columns WHERE table_schema = $1 AND table_name = $2 ORDER BY ordinal_position`
	return query, []interface{}{schema, tableName}
}

// coarsenPgType maps a PostgreSQL information_schema.columns data_type
// string onto the translator's coarse Kind. PostGIS geometry columns
// report as "USER-DEFINED" with udt_name "geometry"; since this query
// only selects data_type, a column is recognized as a geometry only
// when data_type is exactly "geometry" or "geography", and
// "USER-DEFINED" or any other unlisted type falls back to Unknown
// rather than guessing wrong.
func coarsenPgType(dataType string) Kind {
	switch dataType {
	case "character varying", "character", "text", "citext", "uuid", "json", "jsonb":
		return StringKind
	case "smallint", "integer", "bigint", "decimal", "numeric", "real", "double precision",
		"smallserial", "serial", "bigserial":
		return NumberKind
	case "boolean":
		return BooleanKind
	case "geometry", "geography":
		return GeometryKind
	default:
		return Unknown
	}
}
