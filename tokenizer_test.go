package pathmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []lexToken
	}{
		{
			name:  "literal run",
			input: "/ab",
			want: []lexToken{
				{kind: tokenChar, index: 0, value: "/"},
				{kind: tokenChar, index: 1, value: "a"},
				{kind: tokenChar, index: 2, value: "b"},
				{kind: tokenEnd, index: 3},
			},
		},
		{
			name:  "escaped character",
			input: `\:x`,
			want: []lexToken{
				{kind: tokenEscapedChar, index: 0, value: ":"},
				{kind: tokenChar, index: 2, value: "x"},
				{kind: tokenEnd, index: 3},
			},
		},
		{
			name:  "parameter name",
			input: ":user_1",
			want: []lexToken{
				{kind: tokenName, index: 0, value: "user_1"},
				{kind: tokenEnd, index: 7},
			},
		},
		{
			name:  "modifiers",
			input: "*+?",
			want: []lexToken{
				{kind: tokenModifier, index: 0, value: "*"},
				{kind: tokenModifier, index: 1, value: "+"},
				{kind: tokenModifier, index: 2, value: "?"},
				{kind: tokenEnd, index: 3},
			},
		},
		{
			name:  "inline pattern",
			input: `(\d+)`,
			want: []lexToken{
				{kind: tokenPattern, index: 0, value: `\d+`},
				{kind: tokenEnd, index: 5},
			},
		},
		{
			name:  "nested non-capturing group",
			input: `(a(?:b))`,
			want: []lexToken{
				{kind: tokenPattern, index: 0, value: "a(?:b)"},
				{kind: tokenEnd, index: 8},
			},
		},
		{
			name:  "group delimiters",
			input: "{a}",
			want: []lexToken{
				{kind: tokenOpen, index: 0, value: "{"},
				{kind: tokenChar, index: 1, value: "a"},
				{kind: tokenClose, index: 2, value: "}"},
				{kind: tokenEnd, index: 3},
			},
		},
		{
			name:  "colon before pattern is a literal",
			input: ":(x)",
			want: []lexToken{
				{kind: tokenChar, index: 0, value: ":"},
				{kind: tokenPattern, index: 1, value: "x"},
				{kind: tokenEnd, index: 4},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := lex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLexErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		err    error
		offset int
	}{
		{"bare colon", ":", MissingParameterNameError, 0},
		{"invalid name character", "/:-", MissingParameterNameError, 1},
		{"unbalanced after colon", "/:(", UnbalancedPatternError, 2},
		{"unbalanced pattern", "(foo", UnbalancedPatternError, 0},
		{"empty pattern", "()", MissingPatternError, 0},
		{"pattern starting with question mark", "(?", PatternQuestionMarkError, 1},
		{"nested capturing group", "(a(b))", CapturingGroupError, 2},
		{"dangling escape", `\`, DanglingEscapeError, 0},
		{"dangling escape in pattern", `(a\`, UnbalancedPatternError, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := lex(tt.input)

			var serr *SyntaxError
			require.ErrorAs(t, err, &serr)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.offset, serr.Offset)
		})
	}
}
