package iocheck

import (
	"context"

	"github.com/gnames/squadcheck/pkg/db"
	"github.com/gnames/squadcheck/pkg/integrity"
)

// playersNeverPlayed reports how many players have no appearances. It
// is observational, it fails only if the count cannot be read.
func playersNeverPlayed() integrity.Check {
	name := "players_never_played"
	return integrity.Check{
		Name:        name,
		Base:        name,
		Kind:        integrity.Observational,
		Description: "reports the number of players without appearances",
		Run: func(ctx context.Context, cur db.Cursor) integrity.Outcome {
			q := `SELECT COUNT(*)
	FROM players p
	LEFT JOIN appearances a ON p.player_id = a.player_id
	WHERE a.match_id IS NULL`

			n, err := count(ctx, cur, q)
			if err != nil {
				return queryFailed(name, err)
			}
			if n < 0 {
				return integrity.Failed("invalid count of players: %d", n)
			}
			return integrity.PassedWithNote("%s never played", plural(n, "player"))
		},
	}
}
