package listing

import (
	"fmt"
	"strings"

	"github.com/gopak/pkgq/internal/search"
)

// Show is the aggregated view of the top ranked package.
type Show struct {
	Package     string
	Description *string
	// Run is the contiguous prefix of results sharing Package's label.
	Run []search.SearchResult
}

// Aggregate collects the leading run of results labelled like the top result.
// The scan stops at the first result with another label; later results with
// the same label are not considered.
func Aggregate(results []search.SearchResult) (Show, error) {
	if len(results) == 0 {
		return Show{}, fmt.Errorf("%w: no packages found", search.ErrInvariant)
	}
	pkg := results[0].Label()
	end := 0
	for end < len(results) && results[end].Label() == pkg {
		end++
	}
	run := results[:end]
	if len(run) == 0 {
		return Show{}, fmt.Errorf("%w: no packages found", search.ErrInvariant)
	}
	return Show{
		Package:     pkg,
		Description: flatten(run[0].Description),
		Run:         run,
	}, nil
}

// Top is "<package>@<version>" for the top result, or the bare package when it
// has no version.
func (s Show) Top() string {
	if len(s.Run) == 0 {
		return s.Package
	}
	top := s.Run[0]
	if top.Version == nil {
		return top.Label()
	}
	return top.Label() + search.VersionSeparator + *top.Version
}

// Versions lists every versioned entry of the run as "<package>@<version>".
// Catalog "latest" aliases are skipped as duplicates.
func (s Show) Versions() []string {
	var out []string
	for _, r := range s.Run {
		if r.IsLatestAlias() {
			continue
		}
		if r.Version == nil {
			continue
		}
		out = append(out, r.Label()+search.VersionSeparator+*r.Version)
	}
	return out
}

// AllVersions joins Versions with ", ".
func (s Show) AllVersions() string { return strings.Join(s.Versions(), ", ") }

// FilterInput keeps the results produced by input, preserving rank. An empty
// input keeps everything.
func FilterInput(results []search.SearchResult, input string) []search.SearchResult {
	if input == "" {
		return results
	}
	out := make([]search.SearchResult, 0, len(results))
	for _, r := range results {
		if r.Input == input {
			out = append(out, r)
		}
	}
	return out
}
