// Package manager runs one search or show invocation end to end: build the
// query, call the engine, consolidate, render, then report the engine's exit
// status.
package manager

import (
	"context"
	"io"
	"os"

	"github.com/gopak/pkgq/internal/logging"
	"github.com/gopak/pkgq/internal/manifest"
	"github.com/gopak/pkgq/internal/search"
	"github.com/gopak/pkgq/internal/ui/console"
)

// Invoker runs a query against the package database engine.
type Invoker interface {
	Search(ctx context.Context, params search.SearchParams) (search.Response, error)
}

type Manager struct {
	invoker Invoker
	sources manifest.Sources
	mode    search.MatchMode
	out     io.Writer
	errOut  io.Writer
	picker  console.Picker
}

func New(inv Invoker, sources manifest.Sources, mode search.MatchMode) *Manager {
	return &Manager{
		invoker: inv,
		sources: sources,
		mode:    mode,
		out:     os.Stdout,
		errOut:  os.Stderr,
		picker:  console.SurveyPicker{},
	}
}

// WithOutput sets the result stream and the hint stream.
func (m *Manager) WithOutput(out, errOut io.Writer) *Manager {
	m.out = out
	m.errOut = errOut
	return m
}

func (m *Manager) WithPicker(p console.Picker) *Manager {
	m.picker = p
	return m
}

func (m *Manager) params(q search.Query) search.SearchParams {
	return search.SearchParams{
		Manifest:       m.sources.Manifest,
		GlobalManifest: m.sources.GlobalManifest,
		Lockfile:       m.sources.Lockfile,
		Query:          q,
	}
}

func (m *Manager) invoke(ctx context.Context, q search.Query) (search.Response, error) {
	resp, err := m.invoker.Search(ctx, m.params(q))
	if err != nil {
		return search.Response{}, err
	}
	logging.Debugf("search call exit status: %d", resp.ExitCode)
	return resp, nil
}

// exitStatus is checked only once output has been written.
func exitStatus(resp search.Response) error {
	if resp.Success() {
		return nil
	}
	return &search.ExitError{Code: resp.ExitCode}
}
