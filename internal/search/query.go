package search

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	// VersionSeparator splits a search term into pattern and version range.
	VersionSeparator = "@"
	// InputSeparator splits a show term into input and package.
	InputSeparator = ":"
)

// MatchMode selects how the engine matches a pattern.
type MatchMode uint8

const (
	// MatchNameOrDescription treats the pattern as a regex over package names
	// and descriptions.
	MatchNameOrDescription MatchMode = iota
	// MatchNameOnly matches package names exactly.
	MatchNameOnly
)

const (
	StrategyMatch     = "match"
	StrategyMatchName = "match-name"
)

// ParseMatchMode maps a configured strategy name to a MatchMode. An empty
// strategy selects MatchNameOrDescription.
func ParseMatchMode(strategy string) (MatchMode, error) {
	switch strings.TrimSpace(strategy) {
	case "", StrategyMatch:
		return MatchNameOrDescription, nil
	case StrategyMatchName:
		return MatchNameOnly, nil
	default:
		return 0, fmt.Errorf("unknown search strategy %q (expected: %s|%s)", strategy, StrategyMatch, StrategyMatchName)
	}
}

func (m MatchMode) String() string {
	if m == MatchNameOnly {
		return StrategyMatchName
	}
	return StrategyMatch
}

// Query is a parsed search term.
type Query struct {
	Pattern string
	Mode    MatchMode
	// Semver is nil when the term carried no version range.
	Semver *semver.Constraints
	// Range is the version range as written by the user.
	Range string
}

// NewQuery parses `<pattern>[@<version-range>]`. Only the first "@" splits the
// term. Version ranges use the node-semver grammar, e.g. `>=16`, `9.1`,
// `^1.2 || 2.x`.
func NewQuery(term string, mode MatchMode) (Query, error) {
	pattern, rng, hasRange := strings.Cut(term, VersionSeparator)
	if pattern == "" {
		return Query{}, fmt.Errorf("%w: empty pattern in %q", ErrInvalidQuery, term)
	}
	q := Query{Pattern: pattern, Mode: mode}
	if !hasRange {
		return q, nil
	}
	if strings.TrimSpace(rng) == "" {
		return Query{}, fmt.Errorf("%w: empty version range in %q", ErrInvalidQuery, term)
	}
	c, err := semver.NewConstraint(rng)
	if err != nil {
		return Query{}, fmt.Errorf("%w: version range %q: %v", ErrInvalidQuery, rng, err)
	}
	q.Semver = c
	q.Range = rng
	return q, nil
}

// ShowTerm is a parsed `[<input>:]<package>` term.
type ShowTerm struct {
	// Input is empty when the term named no input.
	Input   string
	Package string
}

// ParseShowTerm splits term on ":" into at most two segments.
func ParseShowTerm(term string) (ShowTerm, error) {
	parts := strings.Split(term, InputSeparator)
	switch len(parts) {
	case 1:
		return ShowTerm{Package: parts[0]}, nil
	case 2:
		return ShowTerm{Input: parts[0], Package: parts[1]}, nil
	default:
		return ShowTerm{}, fmt.Errorf("%w: %s", ErrInvalidSearchTerm, term)
	}
}

// NewShowQuery parses a show term and builds the query for its package segment.
func NewShowQuery(term string, mode MatchMode) (ShowTerm, Query, error) {
	st, err := ParseShowTerm(term)
	if err != nil {
		return ShowTerm{}, Query{}, err
	}
	q, err := NewQuery(st.Package, mode)
	if err != nil {
		return ShowTerm{}, Query{}, err
	}
	return st, q, nil
}

// MarshalJSON encodes the query the way the engine expects it:
// {"match": p} or {"match-name": p}, plus "semver" when a range was given.
func (q Query) MarshalJSON() ([]byte, error) {
	out := map[string]string{}
	if q.Mode == MatchNameOnly {
		out[StrategyMatchName] = q.Pattern
	} else {
		out[StrategyMatch] = q.Pattern
	}
	if q.Range != "" {
		out["semver"] = q.Range
	}
	return json.Marshal(out)
}
