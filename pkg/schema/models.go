// Package schema describes the sports-statistics schema observed by
// squadcheck. squadcheck never creates or migrates this schema; the models
// document the expected shape of the four relations and are used by test
// fixtures to build databases to check.
package schema

import (
	"time"
)

// Names of the relations the catalog inspects.
const (
	TablePlayers     = "players"
	TableMatches     = "matches"
	TableAppearances = "appearances"
	TableStaff       = "staff"
)

// Tables returns the relation names in the order they are checked.
func Tables() []string {
	return []string{TablePlayers, TableMatches, TableAppearances, TableStaff}
}

// Player is a member of the squad.
type Player struct {
	// PlayerID is the unique identifier of a player.
	PlayerID int `gorm:"column:player_id;primaryKey;autoIncrement:false"`

	// Name of the player.
	Name string `gorm:"column:name;size:100;not null"`

	// ShirtNumber is optional, but unique when present.
	ShirtNumber *int `gorm:"column:shirt_number"`

	// Position is one of Positions(), or NULL.
	Position *string `gorm:"column:position;size:20"`
}

// TableName returns the PostgreSQL table name for this model.
func (Player) TableName() string { return TablePlayers }

// Match is a fixture played by the tracked team.
type Match struct {
	// MatchID is the unique identifier of a match.
	MatchID int `gorm:"column:match_id;primaryKey;autoIncrement:false"`

	// MatchDate is the day the match was played.
	MatchDate time.Time `gorm:"column:match_date;type:date;not null"`

	// Opponent is the name of the other team.
	Opponent string `gorm:"column:opponent;size:100"`

	// Venue is VenueHome or VenueAway from the tracked team's perspective.
	Venue string `gorm:"column:venue;size:10"`
}

// TableName returns the PostgreSQL table name for this model.
func (Match) TableName() string { return TableMatches }

// Appearance records one player participating in one match.
type Appearance struct {
	AppearanceID int `gorm:"column:appearance_id;primaryKey;autoIncrement:false"`

	MatchID int `gorm:"column:match_id;index"`

	PlayerID int `gorm:"column:player_id;index"`

	// MinutesPlayed is expected within [MinMinutes, MaxMinutes] when set.
	MinutesPlayed *int `gorm:"column:minutes_played"`

	// GoalsScored is a non-negative number of goals.
	GoalsScored *int `gorm:"column:goals_scored"`
}

// TableName returns the PostgreSQL table name for this model.
func (Appearance) TableName() string { return TableAppearances }

// StaffMember is a non-playing member of the club.
type StaffMember struct {
	StaffID int `gorm:"column:staff_id;primaryKey;autoIncrement:false"`

	Name string `gorm:"column:name;size:100;not null"`

	// Role, for example RoleHeadCoach.
	Role string `gorm:"column:role;size:50"`
}

// TableName returns the PostgreSQL table name for this model.
func (StaffMember) TableName() string { return TableStaff }
