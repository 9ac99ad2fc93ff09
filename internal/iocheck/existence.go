package iocheck

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gnames/squadcheck/pkg/db"
	"github.com/gnames/squadcheck/pkg/integrity"
	"github.com/gnames/squadcheck/pkg/schema"
)

// tableExists passes when the system catalog has exactly one table with
// the given name. Schemas are not distinguished, a table with the same
// name in two schemas is a failure.
func tableExists(table string) integrity.Check {
	base := "table_exists"
	name := fmt.Sprintf("%s[%s]", base, table)
	return integrity.Check{
		Name:        name,
		Base:        base,
		Kind:        integrity.Existence,
		Description: fmt.Sprintf("table %s exists", table),
		Run: func(ctx context.Context, cur db.Cursor) integrity.Outcome {
			q := `SELECT COUNT(*)
	FROM information_schema.tables
	WHERE table_name = $1`
			if cur.Dialect() == db.SQLite {
				q = `SELECT COUNT(*)
	FROM sqlite_master
	WHERE type = 'table' AND name = ?`
			}

			n, err := count(ctx, cur, q, table)
			if err != nil {
				return queryFailed(name, err)
			}
			switch {
			case n == 0:
				return integrity.Failed("table '%s' does not exist", table)
			case n > 1:
				return integrity.Failed(
					"table '%s' is found %d times in the catalog, expected once",
					table, n,
				)
			}
			return integrity.Passed()
		},
	}
}

func atLeastOneHomeMatch() integrity.Check {
	name := "at_least_one_home_match"
	return integrity.Check{
		Name:        name,
		Base:        name,
		Kind:        integrity.Existence,
		Description: "at least one match is played at home",
		Run: func(ctx context.Context, cur db.Cursor) integrity.Outcome {
			q := fmt.Sprintf(`SELECT COUNT(*)
	FROM matches
	WHERE venue = '%s'`, schema.VenueHome)

			n, err := count(ctx, cur, q)
			if err != nil {
				return queryFailed(name, err)
			}
			if n < 1 {
				return integrity.Failed("there should be at least one home match")
			}
			return integrity.Passed()
		},
	}
}

func headCoachExists() integrity.Check {
	name := "head_coach_exists"
	return integrity.Check{
		Name:        name,
		Base:        name,
		Kind:        integrity.Existence,
		Description: "a staff member holds the Head Coach role",
		Run: func(ctx context.Context, cur db.Cursor) integrity.Outcome {
			q := fmt.Sprintf(`SELECT 1
	FROM staff
	WHERE role = '%s'
	LIMIT 1`, schema.RoleHeadCoach)

			var one int
			err := cur.QueryRow(ctx, q).Scan(&one)
			if errors.Is(err, sql.ErrNoRows) {
				return integrity.Failed("no %s found in staff", schema.RoleHeadCoach)
			}
			if err != nil {
				return queryFailed(name, err)
			}
			return integrity.Passed()
		},
	}
}
