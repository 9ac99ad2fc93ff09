package iocheck

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/gnames/squadcheck/pkg/db"
	"github.com/gnames/squadcheck/pkg/integrity"
	"github.com/gnames/squadcheck/pkg/schema"
)

// homeAndAwayMatches requires both venues. Other venue values are
// ignored, the catalog has no domain check for venue. An empty matches
// table fails.
func homeAndAwayMatches() integrity.Check {
	name := "home_and_away_matches"
	return integrity.Check{
		Name:        name,
		Base:        name,
		Kind:        integrity.Aggregate,
		Description: "there is at least one home and one away match",
		Run: func(ctx context.Context, cur db.Cursor) integrity.Outcome {
			q := fmt.Sprintf(`SELECT
	SUM(CASE WHEN venue = '%s' THEN 1 ELSE 0 END) AS homes,
	SUM(CASE WHEN venue = '%s' THEN 1 ELSE 0 END) AS aways
	FROM matches`, schema.VenueHome, schema.VenueAway)

			// SUM over no rows is NULL
			var homes, aways sql.NullInt64
			err := cur.QueryRow(ctx, q).Scan(&homes, &aways)
			if err != nil {
				return queryFailed(name, err)
			}

			var msgs []string
			if homes.Int64 < 1 {
				msgs = append(msgs, "no home matches found")
			}
			if aways.Int64 < 1 {
				msgs = append(msgs, "no away matches found")
			}
			if len(msgs) > 0 {
				return integrity.Failed("%s", strings.Join(msgs, ", "))
			}
			return integrity.Passed()
		},
	}
}

// validPositions compares distinct observed positions with the closed
// set. NULL positions are allowed.
func validPositions() integrity.Check {
	name := "valid_positions"
	return integrity.Check{
		Name: name,
		Base: name,
		Kind: integrity.Domain,
		Description: fmt.Sprintf("players.position is one of %s",
			strings.Join(schema.Positions(), ", ")),
		Run: func(ctx context.Context, cur db.Cursor) integrity.Outcome {
			q := `SELECT DISTINCT position
	FROM players
	WHERE position IS NOT NULL`

			rows, err := cur.Query(ctx, q)
			if err != nil {
				return queryFailed(name, err)
			}
			defer rows.Close()

			var invalid []string
			for rows.Next() {
				var pos string
				if err = rows.Scan(&pos); err != nil {
					return queryFailed(name, err)
				}
				if !schema.IsPosition(pos) {
					invalid = append(invalid, fmt.Sprintf("%q", pos))
				}
			}
			if err = rows.Err(); err != nil {
				return queryFailed(name, err)
			}

			if len(invalid) > 0 {
				slices.Sort(invalid)
				return integrity.Failed("invalid positions: %s",
					listItems(invalid))
			}
			return integrity.Passed()
		},
	}
}

// minutesPlayedWithinBounds checks non-null minutes against inclusive
// bounds.
func minutesPlayedWithinBounds() integrity.Check {
	name := "minutes_played_within_bounds"
	return integrity.Check{
		Name: name,
		Base: name,
		Kind: integrity.Range,
		Description: fmt.Sprintf("appearances.minutes_played is within [%d, %d]",
			schema.MinMinutes, schema.MaxMinutes),
		Run: func(ctx context.Context, cur db.Cursor) integrity.Outcome {
			q := fmt.Sprintf(`SELECT match_id, player_id, minutes_played
	FROM appearances
	WHERE minutes_played IS NOT NULL
	AND (minutes_played < %d OR minutes_played > %d)
	ORDER BY match_id, player_id`, schema.MinMinutes, schema.MaxMinutes)

			rows, err := cur.Query(ctx, q)
			if err != nil {
				return queryFailed(name, err)
			}
			defer rows.Close()

			var bad []string
			for rows.Next() {
				var matchID, playerID sql.NullInt64
				var minutes int64
				if err = rows.Scan(&matchID, &playerID, &minutes); err != nil {
					return queryFailed(name, err)
				}
				bad = append(bad, fmt.Sprintf("match %s player %s: %d min",
					nullID(matchID), nullID(playerID), minutes))
			}
			if err = rows.Err(); err != nil {
				return queryFailed(name, err)
			}

			if n := int64(len(bad)); n > 0 {
				return integrity.Failed("invalid minutes_played in %s: %s",
					plural(n, "appearance"), listItems(bad))
			}
			return integrity.Passed()
		},
	}
}

// forwardsHaveScoredGoals flags Forwards whose goals over all their
// appearances sum to exactly zero. Forwards without appearances do not
// take part in the join and are never flagged. A NULL sum, when all
// goals_scored are NULL, is not zero and is not flagged either.
func forwardsHaveScoredGoals() integrity.Check {
	name := "forwards_have_scored_goals"
	return integrity.Check{
		Name:        name,
		Base:        name,
		Kind:        integrity.Aggregate,
		Description: "every Forward with appearances scored at least one goal",
		Run: func(ctx context.Context, cur db.Cursor) integrity.Outcome {
			q := fmt.Sprintf(`SELECT a.player_id, SUM(a.goals_scored) AS total
	FROM players p
	JOIN appearances a ON p.player_id = a.player_id
	WHERE p.position = '%s'
	GROUP BY a.player_id
	ORDER BY a.player_id`, schema.PositionForward)

			rows, err := cur.Query(ctx, q)
			if err != nil {
				return queryFailed(name, err)
			}
			defer rows.Close()

			var bad []string
			for rows.Next() {
				var playerID, total sql.NullInt64
				if err = rows.Scan(&playerID, &total); err != nil {
					return queryFailed(name, err)
				}
				if total.Valid && total.Int64 == 0 {
					bad = append(bad, nullID(playerID))
				}
			}
			if err = rows.Err(); err != nil {
				return queryFailed(name, err)
			}

			if len(bad) > 0 {
				return integrity.Failed("forwards without goals, player_ids: %s",
					listItems(bad))
			}
			return integrity.Passed()
		},
	}
}
