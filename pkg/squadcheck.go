// Package squadcheck verifies referential and domain integrity of a
// sports-statistics database (players, matches, appearances, staff).
//
// The pure parts of the application (configuration, the integrity model,
// schema description) live under pkg/. Implementations that talk to a
// database, the file system or a terminal live under internal/io*.
package squadcheck

var (
	// Version of squadcheck, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
