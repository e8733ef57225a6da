package pathmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsny/pathmatch"
)

func TestStringify(t *testing.T) {
	t.Parallel()

	patterns := []string{
		"/user/:id",
		"/:path+",
		"/:lang?/about",
		`/release/(\d+)`,
		"/:attr{-:rest}?",
		"{abc}?",
		`/a\:b`,
	}

	for _, pattern := range patterns {
		pattern := pattern
		t.Run(pattern, func(t *testing.T) {
			t.Parallel()

			tokens, err := pathmatch.Parse(pattern)
			require.NoError(t, err)

			rendered := pathmatch.Stringify(tokens)
			reparsed, err := pathmatch.Parse(rendered)
			require.NoError(t, err, "rendered pattern %q must parse", rendered)
			assert.Equal(t, tokens, reparsed, "rendered pattern %q must parse to the same tokens", rendered)
		})
	}
}

func TestStringifyExact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		want    string
	}{
		{"/user/:id", "/user/:id"},
		{"/:path+", "/:path+"},
		{"/:attr{-:rest}?", "/:attr{-:rest}?"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()

			tokens, err := pathmatch.Parse(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pathmatch.Stringify(tokens))
		})
	}
}

// A parameter followed by a literal that would extend its name has to be
// rendered in a group.
func TestStringifyDisambiguation(t *testing.T) {
	t.Parallel()

	tokens := []pathmatch.Token{
		{Key: &pathmatch.Key{Name: "foo", Pattern: `[^\/#\?]+?`}},
		{Literal: "bar"},
	}

	rendered := pathmatch.Stringify(tokens)
	reparsed, err := pathmatch.Parse(rendered)
	require.NoError(t, err)
	require.Len(t, reparsed, 2)
	assert.Equal(t, "foo", reparsed[0].Key.Name)
	assert.Equal(t, "bar", reparsed[1].Literal)
}
