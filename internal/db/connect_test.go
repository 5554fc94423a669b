package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteBootstrapsSchema(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "grader.db")

	dbh, err := Open(ctx, DriverSQLite, dsn)
	require.NoError(t, err)
	defer dbh.Close()

	// Both tables exist, including the quoted "offset" column.
	_, err = dbh.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		"local", "AttemptGraded", "a1", "{}", 1)
	require.NoError(t, err)

	var off int64
	require.NoError(t, dbh.QueryRowContext(ctx,
		`SELECT "offset" FROM event_log WHERE key=$1`, "a1").Scan(&off))
	require.Positive(t, off)

	var n int
	require.NoError(t, dbh.QueryRowContext(ctx, `SELECT COUNT(*) FROM attempts`).Scan(&n))
	require.Zero(t, n)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Driver("oracle"), "")
	require.Error(t, err)
}

func TestSchemasQuoteOffsetColumn(t *testing.T) {
	require.Contains(t, schemaSQLite, `"offset" INTEGER PRIMARY KEY AUTOINCREMENT`)
	require.Contains(t, schemaPostgres, `"offset" BIGSERIAL PRIMARY KEY`)
}
