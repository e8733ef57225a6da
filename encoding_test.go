package pathmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kelsny/pathmatch"
)

func TestEncodePathComponent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a%2Fb%20c", pathmatch.EncodePathComponent("a/b c"))
	assert.Equal(t, "plain", pathmatch.EncodePathComponent("plain"))
}

func TestDecodePathComponent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a/b c", pathmatch.DecodePathComponent("a%2Fb%20c"))
	assert.Equal(t, "plain", pathmatch.DecodePathComponent("plain"))

	// Malformed input is passed through untouched.
	assert.Equal(t, "%", pathmatch.DecodePathComponent("%"))
	assert.Equal(t, "%zz", pathmatch.DecodePathComponent("%zz"))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"a/b", "hello world", "ü", "100%", "a?b#c"} {
		assert.Equal(t, s, pathmatch.DecodePathComponent(pathmatch.EncodePathComponent(s)))
	}
}
