package search

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuery(t *testing.T) {
	cases := []struct {
		term    string
		pattern string
		rng     string
	}{
		{"hello", "hello", ""},
		{"(hello|coreutils)", "(hello|coreutils)", ""},
		{"node@>=16", "node", ">=16"},
		{"coreutils@9.1", "coreutils", "9.1"},
		{"python@^3.10 || 2.x", "python", "^3.10 || 2.x"},
	}
	for _, c := range cases {
		q, err := NewQuery(c.term, MatchNameOrDescription)
		if err != nil {
			t.Fatalf("NewQuery(%q): %v", c.term, err)
		}
		if q.Pattern != c.pattern || q.Range != c.rng {
			t.Fatalf("NewQuery(%q) = {%q %q}, want {%q %q}", c.term, q.Pattern, q.Range, c.pattern, c.rng)
		}
		if c.rng == "" {
			assert.Nil(t, q.Semver)
		} else {
			assert.NotNil(t, q.Semver)
		}
	}
}

func TestNewQuery_SplitsOnFirstAt(t *testing.T) {
	_, err := NewQuery("a@1.0@2.0", MatchNameOrDescription)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidQuery))
}

func TestNewQuery_Invalid(t *testing.T) {
	for _, term := range []string{"", "@1.0", "node@", "node@=>banana"} {
		_, err := NewQuery(term, MatchNameOnly)
		if !errors.Is(err, ErrInvalidQuery) {
			t.Fatalf("NewQuery(%q) err = %v, want ErrInvalidQuery", term, err)
		}
	}
}

func TestNewQuery_ModeIsExplicit(t *testing.T) {
	q, err := NewQuery("hello", MatchNameOnly)
	require.NoError(t, err)
	assert.Equal(t, MatchNameOnly, q.Mode)

	b, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"match-name":"hello"}`, string(b))

	q, err = NewQuery("hello@>=2", MatchNameOrDescription)
	require.NoError(t, err)
	b, err = json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"match":"hello","semver":">=2"}`, string(b))
}

func TestParseMatchMode(t *testing.T) {
	m, err := ParseMatchMode("")
	require.NoError(t, err)
	assert.Equal(t, MatchNameOrDescription, m)

	m, err = ParseMatchMode("match-name")
	require.NoError(t, err)
	assert.Equal(t, MatchNameOnly, m)
	assert.Equal(t, "match-name", m.String())

	_, err = ParseMatchMode("fuzzy")
	assert.Error(t, err)
}

func TestParseShowTerm(t *testing.T) {
	st, err := ParseShowTerm("hello")
	require.NoError(t, err)
	assert.Equal(t, ShowTerm{Package: "hello"}, st)

	st, err = ParseShowTerm("nixpkgs:python3")
	require.NoError(t, err)
	assert.Equal(t, ShowTerm{Input: "nixpkgs", Package: "python3"}, st)

	_, err = ParseShowTerm("a:b:c")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSearchTerm))
	assert.Contains(t, err.Error(), "a:b:c")
}

func TestNewShowQuery_EmptyPackage(t *testing.T) {
	_, _, err := NewShowQuery("nixpkgs:", MatchNameOnly)
	assert.True(t, errors.Is(err, ErrInvalidQuery))

	st, q, err := NewShowQuery("flox:hello@2.12", MatchNameOnly)
	require.NoError(t, err)
	assert.Equal(t, "flox", st.Input)
	assert.Equal(t, "hello", q.Pattern)
	assert.Equal(t, "2.12", q.Range)
}
