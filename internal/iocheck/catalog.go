// Package iocheck holds the integrity catalog of the sports-statistics
// schema and the runner that executes it over a database connection.
//
// Every check is a read-only query followed by a predicate over its
// result. Checks are independent: each runs in its own cursor scope and
// none depends on the outcome or the order of another.
package iocheck

import (
	"github.com/gnames/squadcheck/pkg/integrity"
	"github.com/gnames/squadcheck/pkg/schema"
)

// Catalog returns all checks in their reporting order.
func Catalog() []integrity.Check {
	var res []integrity.Check
	for _, table := range schema.Tables() {
		res = append(res, tableExists(table))
	}
	res = append(res,
		playersPKUnique(),
		matchesPKNotNull(),
		playersPKNotNull(),
		appearancesFKPlayers(),
		matchesMatchDateNotNull(),
		homeAndAwayMatches(),
		uniqueShirtNumbers(),
		validPositions(),
		minutesPlayedWithinBounds(),
		forwardsHaveScoredGoals(),
		atLeastOneHomeMatch(),
		headCoachExists(),
		playersNeverPlayed(),
	)
	return res
}
