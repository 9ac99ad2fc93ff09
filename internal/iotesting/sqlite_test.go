package iotesting_test

import (
	"database/sql"
	"testing"

	"github.com/gnames/squadcheck/internal/iotesting"
	"github.com/gnames/squadcheck/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestNewSQLiteDB_Omit(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}

	for _, omitted := range schema.Tables() {
		t.Run(omitted, func(t *testing.T) {
			fx := iotesting.ValidFixture()
			fx.Omit = []string{omitted}
			path := iotesting.NewSQLiteDB(t, fx)

			db, err := sql.Open("sqlite", path)
			require.NoError(t, err)
			defer db.Close()

			for _, table := range schema.Tables() {
				var n int
				err = db.QueryRow(
					"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
					table,
				).Scan(&n)
				require.NoError(t, err)

				if table == omitted {
					assert.Equal(t, 0, n, "%s should not exist", table)
					continue
				}
				assert.Equal(t, 1, n, "%s should exist", table)

				var rows int
				err = db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&rows)
				require.NoError(t, err)
				assert.Positive(t, rows, "%s should be seeded", table)
			}
		})
	}
}
