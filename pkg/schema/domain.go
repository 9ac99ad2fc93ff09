package schema

// Closed set of player positions.
const (
	PositionGoalkeeper = "Goalkeeper"
	PositionDefender   = "Defender"
	PositionMidfielder = "Midfielder"
	PositionForward    = "Forward"
)

// Venue classifications of a match.
const (
	VenueHome = "Home"
	VenueAway = "Away"
)

// RoleHeadCoach is the staff role that has to be present.
const RoleHeadCoach = "Head Coach"

// Bounds of appearances.minutes_played, both inclusive.
const (
	MinMinutes = 0
	MaxMinutes = 120
)

// Positions returns the valid values of players.position.
func Positions() []string {
	return []string{
		PositionGoalkeeper,
		PositionDefender,
		PositionMidfielder,
		PositionForward,
	}
}

// IsPosition returns true if s belongs to the closed set of positions.
func IsPosition(s string) bool {
	switch s {
	case PositionGoalkeeper, PositionDefender,
		PositionMidfielder, PositionForward:
		return true
	}
	return false
}
