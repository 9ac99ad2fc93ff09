package iocheck_test

import (
	"context"
	"testing"

	"github.com/gnames/squadcheck/internal/iocheck"
	"github.com/gnames/squadcheck/internal/iodb"
	"github.com/gnames/squadcheck/internal/iotesting"
	"github.com/gnames/squadcheck/pkg/integrity"
	"github.com/gnames/squadcheck/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	checks := iocheck.Catalog()
	assert.Len(t, checks, 17, "14 checks, table existence has 4 instances")

	names := make(map[string]struct{})
	for _, v := range checks {
		_, dup := names[v.Name]
		assert.False(t, dup, "duplicate check name %s", v.Name)
		names[v.Name] = struct{}{}

		assert.NotEmpty(t, v.Base, v.Name)
		assert.NotEmpty(t, v.Description, v.Name)
		assert.NotNil(t, v.Run, v.Name)
		assert.NotEqual(t, integrity.UnknownKind, v.Kind, v.Name)
	}

	var bases []string
	for _, v := range checks {
		if len(bases) == 0 || bases[len(bases)-1] != v.Base {
			bases = append(bases, v.Base)
		}
	}
	assert.Equal(t, []string{
		"table_exists",
		"players_pk_unique",
		"matches_pk_not_null",
		"players_pk_not_null",
		"appearances_fk_players",
		"matches_match_date_not_null",
		"home_and_away_matches",
		"unique_shirt_numbers",
		"valid_positions",
		"minutes_played_within_bounds",
		"forwards_have_scored_goals",
		"at_least_one_home_match",
		"head_coach_exists",
		"players_never_played",
	}, bases)

	for i, table := range schema.Tables() {
		assert.Equal(t, "table_exists["+table+"]", checks[i].Name)
	}
}

// runCatalog runs the whole catalog against a SQLite copy of the
// fixture and returns results by check name.
func runCatalog(t *testing.T, fx iotesting.Fixture) map[string]integrity.Result {
	t.Helper()
	path := iotesting.NewSQLiteDB(t, fx)
	cfg := iotesting.SQLiteConfig(path)

	op := iodb.NewOperator()
	ctx := context.Background()
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	rep, err := iocheck.NewRunner(op, iocheck.OptTarget(cfg.Target())).
		Run(ctx, iocheck.Catalog())
	require.NoError(t, err)
	require.Equal(t, len(iocheck.Catalog()), rep.Total())

	res := make(map[string]integrity.Result)
	for _, v := range rep.Results {
		res[v.Name] = v
	}
	return res
}

type expect struct {
	status integrity.Status
	// diagnostic substrings
	diag []string
}

func TestChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}

	tests := []struct {
		msg    string
		mutate func(*iotesting.Fixture)
		// checks not listed must pass
		want map[string]expect
	}{
		{
			msg:    "valid squad",
			mutate: func(*iotesting.Fixture) {},
		},
		{
			msg: "missing appearances table",
			mutate: func(fx *iotesting.Fixture) {
				fx.Omit = []string{schema.TableAppearances}
			},
			want: map[string]expect{
				"table_exists[appearances]": {integrity.Fail,
					[]string{"table 'appearances' does not exist"}},
				"appearances_fk_players": {integrity.Error,
					[]string{"query failed", "appearances"}},
				"minutes_played_within_bounds": {integrity.Error,
					[]string{"query failed"}},
				"forwards_have_scored_goals": {integrity.Error,
					[]string{"query failed"}},
				"players_never_played": {integrity.Error,
					[]string{"query failed"}},
			},
		},
		{
			msg: "duplicate player_id",
			mutate: func(fx *iotesting.Fixture) {
				fx.ExtraSQL = []string{
					"INSERT INTO players (player_id, name) VALUES (1, 'Alice Clone')",
				}
			},
			want: map[string]expect{
				"players_pk_unique": {integrity.Fail, []string{"1 (2 rows)"}},
			},
		},
		{
			msg: "NULL player_id",
			mutate: func(fx *iotesting.Fixture) {
				fx.ExtraSQL = []string{
					"INSERT INTO players (player_id, name) VALUES (NULL, 'Ghost')",
				}
			},
			want: map[string]expect{
				"players_pk_not_null": {integrity.Fail,
					[]string{"found 1 NULL value in players.player_id"}},
			},
		},
		{
			msg: "NULL match_id and match_date",
			mutate: func(fx *iotesting.Fixture) {
				fx.ExtraSQL = []string{
					`INSERT INTO matches (match_id, match_date, opponent, venue)
	VALUES (NULL, NULL, 'Ghosts', 'Away')`,
				}
			},
			want: map[string]expect{
				"matches_pk_not_null": {integrity.Fail,
					[]string{"matches.match_id"}},
				"matches_match_date_not_null": {integrity.Fail,
					[]string{"matches.match_date"}},
			},
		},
		{
			msg: "orphan appearance",
			mutate: func(fx *iotesting.Fixture) {
				fx.Appearances = append(fx.Appearances, schema.Appearance{
					AppearanceID: 9, MatchID: 1, PlayerID: 99,
					MinutesPlayed: iotesting.Int(10), GoalsScored: iotesting.Int(0),
				})
			},
			want: map[string]expect{
				"appearances_fk_players": {integrity.Fail,
					[]string{"1 appearance", "99"}},
			},
		},
		{
			msg: "only home matches",
			mutate: func(fx *iotesting.Fixture) {
				fx.Matches[1].Venue = schema.VenueHome
			},
			want: map[string]expect{
				"home_and_away_matches": {integrity.Fail,
					[]string{"no away matches found"}},
			},
		},
		{
			msg: "no matches at all",
			mutate: func(fx *iotesting.Fixture) {
				fx.Matches = nil
			},
			want: map[string]expect{
				"home_and_away_matches": {integrity.Fail,
					[]string{"no home matches found", "no away matches found"}},
				"at_least_one_home_match": {integrity.Fail,
					[]string{"at least one home match"}},
			},
		},
		{
			msg: "Derby venue next to Home and Away",
			mutate: func(fx *iotesting.Fixture) {
				fx.Matches = append(fx.Matches, schema.Match{
					MatchID: 4, MatchDate: iotesting.Date("2025-08-31"),
					Opponent: "Town", Venue: "Derby",
				})
			},
		},
		{
			msg: "two NULL shirt numbers",
			mutate: func(fx *iotesting.Fixture) {
				fx.Players = append(fx.Players, schema.Player{
					PlayerID: 7, Name: "Gus",
					Position: iotesting.Str(schema.PositionDefender),
				})
			},
		},
		{
			msg: "duplicate shirt number",
			mutate: func(fx *iotesting.Fixture) {
				fx.Players[1].ShirtNumber = iotesting.Int(9)
			},
			want: map[string]expect{
				"unique_shirt_numbers": {integrity.Fail,
					[]string{"9 (2 players)"}},
			},
		},
		{
			msg: "invalid position",
			mutate: func(fx *iotesting.Fixture) {
				fx.Players[2].Position = iotesting.Str("Striker")
			},
			want: map[string]expect{
				"valid_positions": {integrity.Fail, []string{`"Striker"`}},
			},
		},
		{
			msg: "minutes at both bounds",
			mutate: func(fx *iotesting.Fixture) {
				fx.Appearances[2].MinutesPlayed = iotesting.Int(0)
				fx.Appearances[6].MinutesPlayed = iotesting.Int(120)
			},
		},
		{
			msg: "minutes out of bounds",
			mutate: func(fx *iotesting.Fixture) {
				fx.Appearances[0].MinutesPlayed = iotesting.Int(130)
				fx.Appearances[1].MinutesPlayed = iotesting.Int(-5)
				fx.Appearances[2].MinutesPlayed = iotesting.Int(0)
			},
			want: map[string]expect{
				"minutes_played_within_bounds": {integrity.Fail, []string{
					"2 appearances",
					"match 1 player 1: 130 min",
					"match 1 player 2: -5 min",
				}},
			},
		},
		{
			msg: "forward without goals",
			mutate: func(fx *iotesting.Fixture) {
				fx.Appearances[3].GoalsScored = iotesting.Int(0)
				fx.Appearances[6].GoalsScored = iotesting.Int(0)
			},
			want: map[string]expect{
				"forwards_have_scored_goals": {integrity.Fail,
					[]string{"player_ids: 4"}},
			},
		},
		{
			msg: "forward with unknown goals is not flagged",
			mutate: func(fx *iotesting.Fixture) {
				fx.Appearances = append(fx.Appearances, schema.Appearance{
					AppearanceID: 9, MatchID: 2, PlayerID: 5,
					MinutesPlayed: iotesting.Int(10),
				})
			},
		},
		{
			msg: "no appearances for all forwards",
			mutate: func(fx *iotesting.Fixture) {
				fx.Appearances = nil
			},
		},
		{
			msg: "no head coach",
			mutate: func(fx *iotesting.Fixture) {
				fx.Staff = fx.Staff[1:]
			},
			want: map[string]expect{
				"head_coach_exists": {integrity.Fail,
					[]string{"no Head Coach found in staff"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			fx := iotesting.ValidFixture()
			tt.mutate(&fx)
			res := runCatalog(t, fx)

			for name, r := range res {
				exp, ok := tt.want[name]
				if !ok {
					assert.Equal(t, integrity.Pass, r.Status,
						"%s: %s", name, r.Diagnostic)
					continue
				}
				assert.Equal(t, exp.status, r.Status, name)
				for _, v := range exp.diag {
					assert.Contains(t, r.Diagnostic, v, name)
				}
			}
		})
	}
}

func TestPlayersNeverPlayed(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}

	res := runCatalog(t, iotesting.ValidFixture())
	r := res["players_never_played"]
	assert.Equal(t, integrity.Pass, r.Status)
	assert.Equal(t, "2 players never played", r.Note)

	fx := iotesting.ValidFixture()
	fx.Appearances = nil
	res = runCatalog(t, fx)
	r = res["players_never_played"]
	assert.Equal(t, integrity.Pass, r.Status)
	assert.Equal(t, "6 players never played", r.Note)
}

func TestLongDiagnosticIsCapped(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}

	fx := iotesting.ValidFixture()
	for i := range 30 {
		fx.Appearances = append(fx.Appearances, schema.Appearance{
			AppearanceID: 100 + i, MatchID: 1, PlayerID: 1000 + i,
		})
	}
	res := runCatalog(t, fx)
	r := res["appearances_fk_players"]
	assert.Equal(t, integrity.Fail, r.Status)
	assert.Contains(t, r.Diagnostic, "30 appearances")
	assert.Contains(t, r.Diagnostic, "1019, ... and 10 more")
	assert.NotContains(t, r.Diagnostic, "1020")
}
