// Package manifest resolves the manifest, global manifest and lockfile handed
// to the engine with every query.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/gopak/pkgq/internal/search"
)

const (
	ManifestName       = "manifest.toml"
	LockfileName       = "manifest.lock"
	GlobalManifestName = "global-manifest.toml"
)

// DefaultManifestPath is where an environment keeps its manifest, relative to
// the working directory.
var DefaultManifestPath = filepath.Join(".flox", "env", ManifestName)

const globalManifestTemplate = "version = 1\n"

// Sources are the manifest inputs of one query.
type Sources struct {
	Manifest       search.ManifestSource
	GlobalManifest search.ManifestSource
	Lockfile       *search.ManifestSource
}

// Options controls how Resolve builds Sources.
type Options struct {
	// ManifestPath defaults to DefaultManifestPath.
	ManifestPath string
	// GlobalManifestPath is created with a minimal manifest when missing.
	GlobalManifestPath string
	// Inline sends the manifest as a JSON document instead of a path and
	// drops the lockfile.
	Inline bool
}

func Resolve(opts Options) (Sources, error) {
	if opts.GlobalManifestPath == "" {
		return Sources{}, errors.New("global manifest path is required")
	}
	global, err := EnsureGlobal(opts.GlobalManifestPath)
	if err != nil {
		return Sources{}, err
	}

	path := opts.ManifestPath
	if path == "" {
		path = DefaultManifestPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Sources{}, err
	}
	if _, err := os.Stat(abs); err != nil {
		return Sources{}, fmt.Errorf("manifest %s: %w", path, err)
	}

	if opts.Inline {
		b, err := os.ReadFile(abs)
		if err != nil {
			return Sources{}, err
		}
		doc, err := ToJSON(b)
		if err != nil {
			return Sources{}, fmt.Errorf("couldn't convert manifest %s to JSON: %w", path, err)
		}
		return Sources{Manifest: search.InlineSource(doc), GlobalManifest: search.PathSource(global)}, nil
	}

	src := Sources{Manifest: search.PathSource(abs), GlobalManifest: search.PathSource(global)}
	if lock, ok := lockfileFor(abs); ok {
		l := search.PathSource(lock)
		src.Lockfile = &l
	}
	return src, nil
}

// lockfileFor returns the canonical path of the lockfile next to manifest, if
// one exists.
func lockfileFor(manifest string) (string, bool) {
	p, err := filepath.EvalSymlinks(filepath.Join(filepath.Dir(manifest), LockfileName))
	if err != nil {
		return "", false
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", false
	}
	return abs, true
}

// EnsureGlobal creates the global manifest if needed and returns its absolute
// path.
func EnsureGlobal(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err == nil {
		return abs, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, []byte(globalManifestTemplate), 0o644); err != nil {
		return "", err
	}
	return abs, nil
}

// ToJSON converts a TOML manifest to an equivalent JSON document.
func ToJSON(tomlDoc []byte) (json.RawMessage, error) {
	var v map[string]any
	if err := toml.Unmarshal(tomlDoc, &v); err != nil {
		return nil, err
	}
	if v == nil {
		v = map[string]any{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}
