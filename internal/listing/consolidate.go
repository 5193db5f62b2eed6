// Package listing consolidates ranked engine results into what pkgq prints.
// Rank is never recomputed here; results are only projected, filtered and
// flagged.
package listing

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gopak/pkgq/internal/search"
)

// DisplayItem is the rendering view of one search result.
type DisplayItem struct {
	Input       string
	Package     string
	Description *string
	// Disambiguate is set when Package is produced by more than one input and
	// must be printed as "<input>:<package>".
	Disambiguate bool
}

// Label is the text printed for the item.
func (d DisplayItem) Label() string {
	if d.Disambiguate {
		return d.Input + search.InputSeparator + d.Package
	}
	return d.Package
}

// Project maps a raw result to a DisplayItem.
func Project(r search.SearchResult) DisplayItem {
	return DisplayItem{
		Input:       r.Input,
		Package:     r.Label(),
		Description: flatten(r.Description),
	}
}

func flatten(desc *string) *string {
	if desc == nil {
		return nil
	}
	s := strings.ReplaceAll(*desc, "\n", " ")
	return &s
}

// Consolidate deduplicates and disambiguates ranked results.
//
// The first ranked occurrence of every (package, input) pair survives; later
// versions of the same pair are dropped. A package produced by several inputs
// appears once per input, each flagged for disambiguation.
func Consolidate(results []search.SearchResult) ([]DisplayItem, error) {
	items := make([]DisplayItem, 0, len(results))
	for _, r := range results {
		items = append(items, Project(r))
	}

	inputsByPackage := map[string]map[string]struct{}{}
	for _, d := range items {
		inputs, ok := inputsByPackage[d.Package]
		if !ok {
			inputs = map[string]struct{}{}
			inputsByPackage[d.Package] = inputs
		}
		inputs[d.Input] = struct{}{}
	}

	remaining := make(map[string]map[string]struct{}, len(inputsByPackage))
	for pkg, inputs := range inputsByPackage {
		cp := make(map[string]struct{}, len(inputs))
		for in := range inputs {
			cp[in] = struct{}{}
		}
		remaining[pkg] = cp
	}

	out := make([]DisplayItem, 0, len(remaining))
	for _, d := range items {
		d.Disambiguate = len(inputsByPackage[d.Package]) > 1
		inputs, ok := remaining[d.Package]
		if !ok {
			continue
		}
		if _, ok := inputs[d.Input]; ok {
			delete(inputs, d.Input)
			out = append(out, d)
		}
		if len(inputs) == 0 {
			delete(remaining, d.Package)
		}
	}

	if len(results) > 0 && len(out) == 0 {
		return nil, fmt.Errorf("%w: deduplicating %d search results produced nothing", search.ErrInvariant, len(results))
	}
	return out, nil
}

// ColumnWidth is the display width every label is padded to: the widest
// "<input>:<package>" for disambiguated items, the widest package otherwise.
func ColumnWidth(items []DisplayItem) int {
	width := 0
	for _, d := range items {
		n := text.RuneWidthWithoutEscSequences(d.Package)
		if d.Disambiguate {
			n += text.RuneWidthWithoutEscSequences(d.Input) + len(search.InputSeparator)
		}
		if n > width {
			width = n
		}
	}
	return width
}
