package manager

import (
	"context"

	"github.com/gopak/pkgq/internal/listing"
	"github.com/gopak/pkgq/internal/logging"
	"github.com/gopak/pkgq/internal/search"
	"github.com/gopak/pkgq/internal/ui/console"
)

type SearchOptions struct {
	// JSON prints the raw results instead of the consolidated listing.
	JSON bool
	// Select prompts for one listed package and shows it.
	Select bool
}

// Search looks up term and renders the results. A failing engine exit status is
// returned after rendering whatever the engine produced.
func (m *Manager) Search(ctx context.Context, term string, opts SearchOptions) error {
	logging.Debugf("performing search for term: %s", term)
	q, err := search.NewQuery(term, m.mode)
	if err != nil {
		return err
	}
	resp, err := m.invoke(ctx, q)
	if err != nil {
		return err
	}

	if opts.JSON {
		logging.Debug("printing search results as JSON")
		if err := console.RenderSearchJSON(m.out, resp.Results); err != nil {
			return err
		}
		return exitStatus(resp)
	}

	if len(resp.Results) == 0 {
		return search.NoMatchesError(term)
	}
	items, err := listing.Consolidate(resp.Results)
	if err != nil {
		return err
	}
	if err := console.RenderSearch(m.out, m.errOut, items); err != nil {
		return err
	}
	if err := exitStatus(resp); err != nil {
		return err
	}

	if !opts.Select {
		return nil
	}
	labels := make([]string, 0, len(items))
	for _, d := range items {
		labels = append(labels, d.Label())
	}
	choice, err := console.SelectLabel(m.picker, labels)
	if err != nil {
		return err
	}
	return m.Show(ctx, choice, ShowOptions{})
}
