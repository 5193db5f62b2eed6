package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
version = 1

[install]
hello.pkg-path = "hello"
python = { pkg-path = "python3", version = ">=3.10" }

[vars]
GREETING = "hi"
`

func TestToJSON(t *testing.T) {
	doc, err := ToJSON([]byte(sampleManifest))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": 1,
		"install": {
			"hello": {"pkg-path": "hello"},
			"python": {"pkg-path": "python3", "version": ">=3.10"}
		},
		"vars": {"GREETING": "hi"}
	}`, string(doc))

	doc, err = ToJSON(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(doc))

	_, err = ToJSON([]byte("[install\n"))
	assert.Error(t, err)
}

func TestResolve_PathWithLockfile(t *testing.T) {
	dir := t.TempDir()
	m := filepath.Join(dir, "env", ManifestName)
	require.NoError(t, os.MkdirAll(filepath.Dir(m), 0o755))
	require.NoError(t, os.WriteFile(m, []byte(sampleManifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "env", LockfileName), []byte("{}"), 0o644))
	global := filepath.Join(dir, "cfg", GlobalManifestName)

	src, err := Resolve(Options{ManifestPath: m, GlobalManifestPath: global})
	require.NoError(t, err)

	path, ok := src.Manifest.Path()
	require.True(t, ok)
	assert.Equal(t, m, path)
	require.NotNil(t, src.Lockfile)
	lock, ok := src.Lockfile.Path()
	require.True(t, ok)
	assert.Equal(t, LockfileName, filepath.Base(lock))

	g, ok := src.GlobalManifest.Path()
	require.True(t, ok)
	b, err := os.ReadFile(g)
	require.NoError(t, err, "global manifest should be created")
	assert.Equal(t, globalManifestTemplate, string(b))
}

func TestResolve_NoLockfile(t *testing.T) {
	dir := t.TempDir()
	m := filepath.Join(dir, ManifestName)
	require.NoError(t, os.WriteFile(m, []byte(sampleManifest), 0o644))

	src, err := Resolve(Options{ManifestPath: m, GlobalManifestPath: filepath.Join(dir, GlobalManifestName)})
	require.NoError(t, err)
	assert.Nil(t, src.Lockfile)
}

func TestResolve_Inline(t *testing.T) {
	dir := t.TempDir()
	m := filepath.Join(dir, ManifestName)
	require.NoError(t, os.WriteFile(m, []byte(sampleManifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, LockfileName), []byte("{}"), 0o644))

	src, err := Resolve(Options{ManifestPath: m, GlobalManifestPath: filepath.Join(dir, GlobalManifestName), Inline: true})
	require.NoError(t, err)
	doc, ok := src.Manifest.Inline()
	require.True(t, ok)
	assert.Contains(t, string(doc), `"GREETING":"hi"`)
	assert.Nil(t, src.Lockfile)
}

func TestResolve_MissingManifest(t *testing.T) {
	dir := t.TempDir()
	_, err := Resolve(Options{ManifestPath: filepath.Join(dir, "nope.toml"), GlobalManifestPath: filepath.Join(dir, "g.toml")})
	assert.Error(t, err)

	_, err = Resolve(Options{ManifestPath: filepath.Join(dir, "nope.toml")})
	assert.Error(t, err)
}

func TestEnsureGlobal_KeepsExisting(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, GlobalManifestName)
	require.NoError(t, os.WriteFile(p, []byte("version = 1\n[install]\n"), 0o644))
	got, err := EnsureGlobal(p)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[install]")
}
