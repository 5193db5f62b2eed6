// Package console renders search and show results for a terminal.
package console

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gopak/pkgq/internal/listing"
	"github.com/gopak/pkgq/internal/search"
)

// NoDescription stands in for a missing package description.
const NoDescription = "<no description provided>"

// SearchHint follows a text listing on the hint stream.
const SearchHint = "\nUse `pkgq show {package}` to see available versions"

const columnGap = "  "

// RenderSearch writes one line per item, labels padded to a shared column,
// then the usage hint to hint. out is flushed before the hint is written.
func RenderSearch(out, hint io.Writer, items []listing.DisplayItem) error {
	width := listing.ColumnWidth(items)
	w := bufio.NewWriter(out)
	for _, d := range items {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", text.Pad(d.Label(), width, ' '), columnGap, description(d.Description)); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("couldn't flush search results: %w", err)
	}
	_, err := fmt.Fprintln(hint, SearchHint)
	return err
}

// RenderSearchJSON writes the raw results as one JSON array on a single line.
func RenderSearchJSON(out io.Writer, results []search.SearchResult) error {
	if results == nil {
		results = []search.SearchResult{}
	}
	b, err := json.Marshal(results)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = out.Write(b)
	return err
}

func description(d *string) string {
	if d == nil {
		return NoDescription
	}
	return *d
}
