// Package search holds the query and result model shared between pkgq and the
// package database engine.
package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Subtree classifies where in an input a result was found.
type Subtree string

const (
	SubtreePackages       Subtree = "packages"
	SubtreeLegacyPackages Subtree = "legacyPackages"
	SubtreeCatalog        Subtree = "catalog"
)

// LatestAlias is the catalog path segment that points at the newest version of
// a package. It duplicates a real version entry.
const LatestAlias = "latest"

// SearchResult is one ranked record produced by the engine. The raw JSON line
// is retained so structured output can reproduce fields pkgq does not model.
type SearchResult struct {
	Input       string   `json:"input"`
	AbsPath     []string `json:"absPath"`
	RelPath     []string `json:"relPath"`
	Subtree     Subtree  `json:"subtree"`
	System      string   `json:"system,omitempty"`
	Pname       string   `json:"pname,omitempty"`
	Version     *string  `json:"version"`
	Description *string  `json:"description"`
	License     *string  `json:"license,omitempty"`
	Broken      *bool    `json:"broken,omitempty"`
	Unfree      *bool    `json:"unfree,omitempty"`
	ID          int64    `json:"id,omitempty"`

	raw json.RawMessage
}

type plainResult SearchResult

// UnmarshalJSON decodes a result and keeps a copy of the original document.
func (r *SearchResult) UnmarshalJSON(b []byte) error {
	var p plainResult
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = SearchResult(p)
	r.raw = append(json.RawMessage(nil), b...)
	return nil
}

// MarshalJSON returns the original document when the result was decoded from
// engine output, otherwise the modelled fields.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	return json.Marshal(plainResult(r))
}

// Label is the displayable attribute path, e.g. "python310Packages.flask".
func (r SearchResult) Label() string { return strings.Join(r.RelPath, ".") }

// IsLatestAlias reports whether r is the catalog "latest" pointer.
func (r SearchResult) IsLatestAlias() bool {
	if r.Subtree != SubtreeCatalog || len(r.AbsPath) == 0 {
		return false
	}
	return r.AbsPath[len(r.AbsPath)-1] == LatestAlias
}

// SourceKind tags the populated variant of a ManifestSource.
type SourceKind uint8

const (
	SourceNone SourceKind = iota
	SourcePath
	SourceInline
)

// ManifestSource is either a filesystem path or an inline JSON document,
// never both.
type ManifestSource struct {
	kind   SourceKind
	path   string
	inline json.RawMessage
}

// PathSource refers to a manifest or lockfile on disk.
func PathSource(path string) ManifestSource {
	return ManifestSource{kind: SourcePath, path: path}
}

// InlineSource carries a manifest as a JSON document.
func InlineSource(doc json.RawMessage) ManifestSource {
	return ManifestSource{kind: SourceInline, inline: doc}
}

// Path returns the path variant.
func (m ManifestSource) Path() (string, bool) { return m.path, m.kind == SourcePath }

// Inline returns the inline document variant.
func (m ManifestSource) Inline() (json.RawMessage, bool) { return m.inline, m.kind == SourceInline }

func (m ManifestSource) IsZero() bool { return m.kind == SourceNone }

func (m ManifestSource) String() string {
	switch m.kind {
	case SourcePath:
		return m.path
	case SourceInline:
		return "<inline json>"
	default:
		return "<none>"
	}
}

// MarshalJSON encodes a path as a JSON string and an inline document as-is.
func (m ManifestSource) MarshalJSON() ([]byte, error) {
	switch m.kind {
	case SourcePath:
		return json.Marshal(m.path)
	case SourceInline:
		if !json.Valid(m.inline) {
			return nil, errors.New("inline manifest is not valid JSON")
		}
		return m.inline, nil
	default:
		return []byte("null"), nil
	}
}

// SearchParams is the single request handed to the engine.
type SearchParams struct {
	Manifest       ManifestSource  `json:"manifest"`
	GlobalManifest ManifestSource  `json:"global-manifest"`
	Lockfile       *ManifestSource `json:"lockfile,omitempty"`
	Query          Query           `json:"query"`
}

// Validate checks that the mandatory manifests are present.
func (p SearchParams) Validate() error {
	if p.Manifest.IsZero() {
		return fmt.Errorf("%w: manifest", ErrMissingManifest)
	}
	if p.GlobalManifest.IsZero() {
		return fmt.Errorf("%w: global manifest", ErrMissingManifest)
	}
	if p.Lockfile != nil && p.Lockfile.IsZero() {
		return fmt.Errorf("%w: lockfile", ErrMissingManifest)
	}
	if p.Query.Pattern == "" {
		return fmt.Errorf("%w: empty pattern", ErrInvalidQuery)
	}
	return nil
}

// Response is what the engine returned for one SearchParams: the ranked
// results and the process exit code (-1 when unavailable).
type Response struct {
	Results  []SearchResult
	ExitCode int
}

func (r Response) Success() bool { return r.ExitCode == 0 }
