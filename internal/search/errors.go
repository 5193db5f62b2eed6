package search

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery reports a malformed `<pattern>[@<range>]` term.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidSearchTerm reports a show term that is not `[<input>:]<package>`.
	ErrInvalidSearchTerm = errors.New("invalid search term")

	// ErrNoMatches means the engine returned zero results.
	ErrNoMatches = errors.New("no packages matched this search term")

	// ErrInvariant means consolidation or aggregation produced nothing from a
	// non-empty input. This is a bug in pkgq, not an absence of matches.
	ErrInvariant = errors.New("internal invariant violated")

	// ErrMissingManifest means SearchParams lacks a mandatory manifest source.
	ErrMissingManifest = errors.New("missing manifest")
)

// ExitError is returned when the engine process exits non-zero. Code is -1
// when the process did not report an exit code.
type ExitError struct {
	Tool string
	Code int
}

func (e *ExitError) Error() string {
	tool := e.Tool
	if tool == "" {
		tool = "pkgdb"
	}
	return fmt.Sprintf("%s exited with status code: %d", tool, e.Code)
}

// NoMatchesError wraps ErrNoMatches with the term that produced no results.
func NoMatchesError(term string) error {
	return fmt.Errorf("%w: %s", ErrNoMatches, term)
}
