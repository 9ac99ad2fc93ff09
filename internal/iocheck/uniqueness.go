package iocheck

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strconv"

	"github.com/gnames/squadcheck/pkg/db"
	"github.com/gnames/squadcheck/pkg/integrity"
)

func playersPKUnique() integrity.Check {
	name := "players_pk_unique"
	return integrity.Check{
		Name:        name,
		Base:        name,
		Kind:        integrity.Uniqueness,
		Description: "players.player_id is unique",
		Run: func(ctx context.Context, cur db.Cursor) integrity.Outcome {
			q := `SELECT player_id, COUNT(*)
	FROM players
	GROUP BY player_id
	HAVING COUNT(*) > 1
	ORDER BY player_id`

			rows, err := cur.Query(ctx, q)
			if err != nil {
				return queryFailed(name, err)
			}
			defer rows.Close()

			var dups []string
			for rows.Next() {
				var id sql.NullInt64
				var n int64
				if err = rows.Scan(&id, &n); err != nil {
					return queryFailed(name, err)
				}
				dups = append(dups,
					fmt.Sprintf("%s (%s)", nullID(id), plural(n, "row")))
			}
			if err = rows.Err(); err != nil {
				return queryFailed(name, err)
			}

			if len(dups) > 0 {
				return integrity.Failed("duplicate player_ids found: %s",
					listItems(dups))
			}
			return integrity.Passed()
		},
	}
}

// uniqueShirtNumbers ignores NULL shirt numbers, any number of players
// may have none.
func uniqueShirtNumbers() integrity.Check {
	name := "unique_shirt_numbers"
	return integrity.Check{
		Name:        name,
		Base:        name,
		Kind:        integrity.Uniqueness,
		Description: "non-null players.shirt_number values are unique",
		Run: func(ctx context.Context, cur db.Cursor) integrity.Outcome {
			q := `SELECT shirt_number
	FROM players
	WHERE shirt_number IS NOT NULL`

			rows, err := cur.Query(ctx, q)
			if err != nil {
				return queryFailed(name, err)
			}
			defer rows.Close()

			seen := make(map[int64]int64)
			for rows.Next() {
				var num int64
				if err = rows.Scan(&num); err != nil {
					return queryFailed(name, err)
				}
				seen[num]++
			}
			if err = rows.Err(); err != nil {
				return queryFailed(name, err)
			}

			var nums []int64
			for k, v := range seen {
				if v > 1 {
					nums = append(nums, k)
				}
			}
			if len(nums) == 0 {
				return integrity.Passed()
			}

			slices.Sort(nums)
			dups := make([]string, len(nums))
			for i, v := range nums {
				dups[i] = fmt.Sprintf("%s (%s)",
					strconv.FormatInt(v, 10), plural(seen[v], "player"))
			}
			return integrity.Failed("shirt numbers must be unique, duplicates: %s",
				listItems(dups))
		},
	}
}
