package iocheck

import (
	"context"
	"database/sql"

	"github.com/gnames/squadcheck/pkg/db"
	"github.com/gnames/squadcheck/pkg/integrity"
)

// appearancesFKPlayers finds orphan appearances with a left join. An
// appearance with NULL player_id is an orphan as well.
func appearancesFKPlayers() integrity.Check {
	name := "appearances_fk_players"
	return integrity.Check{
		Name:        name,
		Base:        name,
		Kind:        integrity.Referential,
		Description: "every appearance references an existing player",
		Run: func(ctx context.Context, cur db.Cursor) integrity.Outcome {
			q := `SELECT a.player_id
	FROM appearances a
	LEFT JOIN players p ON a.player_id = p.player_id
	WHERE p.player_id IS NULL
	ORDER BY a.player_id`

			rows, err := cur.Query(ctx, q)
			if err != nil {
				return queryFailed(name, err)
			}
			defer rows.Close()

			var orphans []string
			for rows.Next() {
				var id sql.NullInt64
				if err = rows.Scan(&id); err != nil {
					return queryFailed(name, err)
				}
				orphans = append(orphans, nullID(id))
			}
			if err = rows.Err(); err != nil {
				return queryFailed(name, err)
			}

			if n := int64(len(orphans)); n > 0 {
				return integrity.Failed(
					"found %s referencing non-existent players, player_ids: %s",
					plural(n, "appearance"), listItems(orphans),
				)
			}
			return integrity.Passed()
		},
	}
}
