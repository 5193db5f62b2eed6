package manager

import (
	"context"

	"github.com/gopak/pkgq/internal/listing"
	"github.com/gopak/pkgq/internal/logging"
	"github.com/gopak/pkgq/internal/search"
	"github.com/gopak/pkgq/internal/ui/console"
)

type ShowOptions struct {
	// All lists every version instead of the top one.
	All bool
	// Table renders every version as a table. Implies All.
	Table bool
}

// Show prints the top ranked package matching term. When term names an input
// only that input's results are considered.
func (m *Manager) Show(ctx context.Context, term string, opts ShowOptions) error {
	st, q, err := search.NewShowQuery(term, m.mode)
	if err != nil {
		return err
	}
	resp, err := m.invoke(ctx, q)
	if err != nil {
		return err
	}

	results := listing.FilterInput(resp.Results, st.Input)
	if len(results) == 0 {
		return search.NoMatchesError(term)
	}
	s, err := listing.Aggregate(results)
	if err != nil {
		return err
	}
	logging.Debugf("showing %s from %d results", s.Package, len(s.Run))
	if opts.Table {
		err = console.RenderShowTable(m.out, s)
	} else {
		err = console.RenderShow(m.out, s, opts.All)
	}
	if err != nil {
		return err
	}
	return exitStatus(resp)
}
