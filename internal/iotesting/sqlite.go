package iotesting

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/squadcheck/pkg/config"
	"github.com/gnames/squadcheck/pkg/schema"
	_ "modernc.org/sqlite"
)

// sqliteDDL creates the observed relations without constraints, so that
// fixtures can hold rows the catalog is meant to detect.
var sqliteDDL = map[string]string{
	schema.TablePlayers: `CREATE TABLE players (
	player_id INTEGER,
	name TEXT,
	shirt_number INTEGER,
	position TEXT
)`,
	schema.TableMatches: `CREATE TABLE matches (
	match_id INTEGER,
	match_date TEXT,
	opponent TEXT,
	venue TEXT
)`,
	schema.TableAppearances: `CREATE TABLE appearances (
	appearance_id INTEGER,
	match_id INTEGER,
	player_id INTEGER,
	minutes_played INTEGER,
	goals_scored INTEGER
)`,
	schema.TableStaff: `CREATE TABLE staff (
	staff_id INTEGER,
	name TEXT,
	role TEXT
)`,
}

// NewSQLiteDB writes the fixture into a new SQLite file in a temporary
// directory and returns its path. The directory is removed when the
// test finishes.
func NewSQLiteDB(t *testing.T, fx Fixture) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "football.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer db.Close()

	for _, table := range schema.Tables() {
		if !fx.Creates(table) {
			continue
		}
		if _, err = db.Exec(sqliteDDL[table]); err != nil {
			t.Fatalf("Failed to create table %s: %v", table, err)
		}
	}

	exec := func(q string, args ...any) {
		t.Helper()
		if _, err := db.Exec(q, args...); err != nil {
			t.Fatalf("Failed to seed fixture with %q: %v", q, err)
		}
	}

	if fx.Creates(schema.TablePlayers) {
		for _, v := range fx.Players {
			exec(`INSERT INTO players (player_id, name, shirt_number, position)
	VALUES (?, ?, ?, ?)`,
				v.PlayerID, v.Name, nullInt(v.ShirtNumber), nullStr(v.Position))
		}
	}
	if fx.Creates(schema.TableMatches) {
		for _, v := range fx.Matches {
			exec(`INSERT INTO matches (match_id, match_date, opponent, venue)
	VALUES (?, ?, ?, ?)`,
				v.MatchID, v.MatchDate.Format(time.DateOnly), v.Opponent, v.Venue)
		}
	}
	if fx.Creates(schema.TableAppearances) {
		for _, v := range fx.Appearances {
			exec(`INSERT INTO appearances
	(appearance_id, match_id, player_id, minutes_played, goals_scored)
	VALUES (?, ?, ?, ?, ?)`,
				v.AppearanceID, v.MatchID, v.PlayerID,
				nullInt(v.MinutesPlayed), nullInt(v.GoalsScored))
		}
	}
	if fx.Creates(schema.TableStaff) {
		for _, v := range fx.Staff {
			exec(`INSERT INTO staff (staff_id, name, role) VALUES (?, ?, ?)`,
				v.StaffID, v.Name, v.Role)
		}
	}
	for _, q := range fx.ExtraSQL {
		exec(q)
	}

	return path
}

// SQLiteConfig returns database settings pointing to a SQLite file.
func SQLiteConfig(path string) *config.DatabaseConfig {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabaseDatabase(path),
	})
	return &cfg.Database
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func nullStr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
