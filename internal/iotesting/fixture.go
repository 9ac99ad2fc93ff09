// Package iotesting provides shared test utilities: fixture databases
// with a known content for the integrity catalog.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"time"

	"github.com/gnames/squadcheck/pkg/schema"
)

// Fixture describes the content of a test database.
type Fixture struct {
	Players     []schema.Player
	Matches     []schema.Match
	Appearances []schema.Appearance
	Staff       []schema.StaffMember

	// Omit lists tables that are not created at all.
	Omit []string

	// ExtraSQL runs after the seed, for rows models cannot express,
	// such as NULL primary keys.
	ExtraSQL []string
}

// Creates returns true if the table is part of the fixture.
func (f Fixture) Creates(table string) bool {
	for _, v := range f.Omit {
		if v == table {
			return false
		}
	}
	return true
}

// Int returns a pointer to an int, for nullable columns.
func Int(i int) *int {
	return &i
}

// Str returns a pointer to a string, for nullable columns.
func Str(s string) *string {
	return &s
}

// Date parses a YYYY-MM-DD date, it panics on malformed input.
func Date(s string) time.Time {
	res, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return res
}

// ValidFixture returns a small squad for which every check of the
// catalog passes. Two players never played: a Forward without
// appearances (Eve) and a player without position (Finn).
func ValidFixture() Fixture {
	return Fixture{
		Players: []schema.Player{
			{PlayerID: 1, Name: "Alice", ShirtNumber: Int(1),
				Position: Str(schema.PositionGoalkeeper)},
			{PlayerID: 2, Name: "Bob", ShirtNumber: Int(4),
				Position: Str(schema.PositionDefender)},
			{PlayerID: 3, Name: "Carl", ShirtNumber: Int(8),
				Position: Str(schema.PositionMidfielder)},
			{PlayerID: 4, Name: "Dan", ShirtNumber: Int(9),
				Position: Str(schema.PositionForward)},
			{PlayerID: 5, Name: "Eve",
				Position: Str(schema.PositionForward)},
			{PlayerID: 6, Name: "Finn"},
		},
		Matches: []schema.Match{
			{MatchID: 1, MatchDate: Date("2025-08-10"),
				Opponent: "Rovers", Venue: schema.VenueHome},
			{MatchID: 2, MatchDate: Date("2025-08-17"),
				Opponent: "United", Venue: schema.VenueAway},
			{MatchID: 3, MatchDate: Date("2025-08-24"),
				Opponent: "City", Venue: schema.VenueHome},
		},
		Appearances: []schema.Appearance{
			{AppearanceID: 1, MatchID: 1, PlayerID: 1,
				MinutesPlayed: Int(90), GoalsScored: Int(0)},
			{AppearanceID: 2, MatchID: 1, PlayerID: 2,
				MinutesPlayed: Int(90), GoalsScored: Int(0)},
			{AppearanceID: 3, MatchID: 1, PlayerID: 3,
				MinutesPlayed: Int(75), GoalsScored: Int(0)},
			{AppearanceID: 4, MatchID: 1, PlayerID: 4,
				MinutesPlayed: Int(90), GoalsScored: Int(1)},
			{AppearanceID: 5, MatchID: 2, PlayerID: 1,
				MinutesPlayed: Int(90), GoalsScored: Int(0)},
			{AppearanceID: 6, MatchID: 2, PlayerID: 4,
				MinutesPlayed: Int(60), GoalsScored: Int(0)},
			{AppearanceID: 7, MatchID: 3, PlayerID: 4,
				MinutesPlayed: Int(120), GoalsScored: Int(2)},
			{AppearanceID: 8, MatchID: 3, PlayerID: 3},
		},
		Staff: []schema.StaffMember{
			{StaffID: 1, Name: "Grace", Role: schema.RoleHeadCoach},
			{StaffID: 2, Name: "Hank", Role: "Assistant Coach"},
		},
	}
}
