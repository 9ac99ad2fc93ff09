// Package integrity defines the vocabulary of a check run: checks, their
// outcomes, and the report assembled from them. Checks themselves and the
// runner that executes them live in internal/iocheck.
package integrity

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnames/squadcheck/pkg/db"
)

// Kind groups checks by the predicate logic they apply.
type Kind int

const (
	UnknownKind Kind = iota
	// Existence checks that a table or a row with given attributes exists.
	Existence
	// Uniqueness checks that a key value is not duplicated.
	Uniqueness
	// NonNullity checks that a required column has no NULLs.
	NonNullity
	// Referential checks that dependent rows have no orphans.
	Referential
	// Range checks that values are within bounds.
	Range
	// Domain checks that values belong to a closed set.
	Domain
	// Aggregate checks a threshold over grouped or summed values.
	Aggregate
	// Observational checks report a value without asserting on it.
	Observational
)

var kindNames = map[Kind]string{
	UnknownKind:   "unknown",
	Existence:     "existence",
	Uniqueness:    "uniqueness",
	NonNullity:    "non_nullity",
	Referential:   "referential",
	Range:         "range",
	Domain:        "domain",
	Aggregate:     "aggregate",
	Observational: "observational",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[UnknownKind]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// NewKind converts a name to Kind. Hyphens and case are ignored, so
// "Non-Nullity" and "non_nullity" are the same kind.
func NewKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	for k, v := range kindNames {
		if k != UnknownKind && v == s {
			return k, nil
		}
	}
	return UnknownKind, UnknownKindError(s)
}

// Status is the verdict of a single check.
type Status int

const (
	// Pass means the predicate held.
	Pass Status = iota
	// Fail means the predicate did not hold.
	Fail
	// Error means the check could not be evaluated, for example because
	// its query failed.
	Error
)

// String returns the upper-case label used in reports.
func (s Status) String() string {
	switch s {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

// Outcome is what a check returns.
type Outcome struct {
	Status Status

	// Diagnostic explains a failure or an error, embedding offending rows
	// or counts. Empty for passing checks.
	Diagnostic string

	// Note carries informational output of a passing check.
	Note string

	// Err is the underlying error for Status Error.
	Err error
}

// Passed returns a passing outcome.
func Passed() Outcome {
	return Outcome{Status: Pass}
}

// PassedWithNote returns a passing outcome with an informational note.
func PassedWithNote(format string, args ...any) Outcome {
	return Outcome{Status: Pass, Note: fmt.Sprintf(format, args...)}
}

// Failed returns an outcome of a predicate that did not hold.
func Failed(format string, args ...any) Outcome {
	return Outcome{Status: Fail, Diagnostic: fmt.Sprintf(format, args...)}
}

// Errored returns an outcome of a check that could not be evaluated.
// The diagnostic is a human-readable description of err.
func Errored(diagnostic string, err error) Outcome {
	return Outcome{Status: Error, Diagnostic: diagnostic, Err: err}
}

// Check is a named, independent predicate over the live data.
type Check struct {
	// Name identifies the check, parameterized checks carry the parameter
	// in brackets, e.g. "table_exists[players]".
	Name string

	// Base is the name without the parameter. It equals Name for
	// checks without parameters.
	Base string

	Kind Kind

	// Description is a one-line statement of the invariant.
	Description string

	// Run evaluates the check. It must not mutate data.
	Run func(context.Context, db.Cursor) Outcome
}

// Runner executes checks one after another, each in its own cursor scope.
type Runner interface {
	// Run executes checks and returns the report. A failing check never
	// prevents the following checks from running; the error is reserved
	// for conditions that make the whole run meaningless.
	Run(ctx context.Context, checks []Check) (*Report, error)
}
