package pathmatch

import (
	"errors"
	"fmt"
)

// Syntax errors. Every malformed pattern aborts compilation with a
// *SyntaxError wrapping one of these sentinels.
var (
	MissingParameterNameError = errors.New("missing parameter name")
	MissingPatternError       = errors.New("missing pattern")
	UnbalancedPatternError    = errors.New("unbalanced pattern")
	CapturingGroupError       = errors.New("capturing groups are not allowed")
	PatternQuestionMarkError  = errors.New(`pattern cannot start with "?"`)
	DanglingEscapeError       = errors.New("dangling escape")
	UnexpectedTokenError      = errors.New("unexpected token")
)

// Build errors, raised by Builder.Build. They are per-call: the compiled
// Builder stays valid and the caller may retry with corrected parameters.
var (
	NotRepeatableError = errors.New("parameter does not repeat")
	EmptyListError     = errors.New("repeating parameter must not be empty")
	ValueMismatchError = errors.New("parameter value does not match its pattern")
	MissingValueError  = errors.New("missing required parameter")
)

// SyntaxError reports a malformed pattern string. Offset is the rune offset
// of the offending construct in the source pattern.
type SyntaxError struct {
	Err    error
	Offset int

	// Expected and Found carry token kind names when the parser hit a token
	// it could not consume. Both are empty for lexer errors.
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: %s at %d, expected %s", e.Err, e.Found, e.Offset, e.Expected)
	}

	return fmt.Sprintf("%s at %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
