package iocheck

import (
	"context"
	"fmt"

	"github.com/gnames/squadcheck/pkg/db"
	"github.com/gnames/squadcheck/pkg/integrity"
)

func matchesPKNotNull() integrity.Check {
	return notNull("matches_pk_not_null", "matches", "match_id")
}

func playersPKNotNull() integrity.Check {
	return notNull("players_pk_not_null", "players", "player_id")
}

func matchesMatchDateNotNull() integrity.Check {
	return notNull("matches_match_date_not_null", "matches", "match_date")
}

// notNull passes when the column has no NULL values. Table and column
// come from the catalog, never from user input.
func notNull(name, table, column string) integrity.Check {
	return integrity.Check{
		Name:        name,
		Base:        name,
		Kind:        integrity.NonNullity,
		Description: fmt.Sprintf("%s.%s has no NULL values", table, column),
		Run: func(ctx context.Context, cur db.Cursor) integrity.Outcome {
			q := fmt.Sprintf(`SELECT COUNT(*)
	FROM %s
	WHERE %s IS NULL`, table, column)

			n, err := count(ctx, cur, q)
			if err != nil {
				return queryFailed(name, err)
			}
			if n > 0 {
				return integrity.Failed("found %s in %s.%s",
					plural(n, "NULL value"), table, column)
			}
			return integrity.Passed()
		},
	}
}
