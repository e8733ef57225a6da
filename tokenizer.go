package pathmatch

import (
	"strings"

	"golang.org/x/exp/utf8string"
)

// lex scans a pattern string into a flat token sequence terminated by an end
// token. It is a single left-to-right pass over runes; the first malformed
// construct aborts the whole scan with a positioned *SyntaxError.
func lex(input string) ([]lexToken, error) {
	var (
		source = utf8string.NewString(input)
		length = source.RuneCount()
		tokens = make([]lexToken, 0, length+1)
	)

	emit := func(kind tokenKind, index int, value string) {
		tokens = append(tokens, lexToken{kind: kind, index: index, value: value})
	}

	i := 0
	for i < length {
		c := source.At(i)

		switch c {
		case '*', '+', '?':
			emit(tokenModifier, i, string(c))
			i++

		case '\\':
			if i == length-1 {
				return nil, &SyntaxError{Err: DanglingEscapeError, Offset: i}
			}

			emit(tokenEscapedChar, i, string(source.At(i+1)))
			i += 2

		case '{':
			emit(tokenOpen, i, "{")
			i++

		case '}':
			emit(tokenClose, i, "}")
			i++

		case ':':
			j := i + 1
			for j < length && isNameRune(source.At(j)) {
				j++
			}

			if j == i+1 {
				// A ":" directly followed by "(" is a literal colon; the
				// inline pattern is scanned on its own in the next round.
				if j < length && source.At(j) == '(' {
					emit(tokenChar, i, ":")
					i++

					continue
				}

				return nil, &SyntaxError{Err: MissingParameterNameError, Offset: i}
			}

			emit(tokenName, i, source.Slice(i+1, j))
			i = j

		case '(':
			fragment, next, err := lexPattern(source, length, i)
			if err != nil {
				return nil, err
			}

			emit(tokenPattern, i, fragment)
			i = next

		default:
			emit(tokenChar, i, string(c))
			i++
		}
	}

	emit(tokenEnd, i, "")

	return tokens, nil
}

// lexPattern scans the balanced "(...)" fragment opening at index open. It
// returns the fragment without the outer parentheses and the rune index just
// past the closing parenthesis.
func lexPattern(source *utf8string.String, length, open int) (string, int, error) {
	var fragment strings.Builder

	j := open + 1
	if j < length && source.At(j) == '?' {
		return "", 0, &SyntaxError{Err: PatternQuestionMarkError, Offset: j}
	}

	depth := 1
	for j < length {
		c := source.At(j)

		if c == '\\' {
			if j == length-1 {
				return "", 0, &SyntaxError{Err: UnbalancedPatternError, Offset: open}
			}

			fragment.WriteRune(c)
			fragment.WriteRune(source.At(j + 1))
			j += 2

			continue
		}

		switch c {
		case ')':
			depth--
			if depth == 0 {
				j++

				if fragment.Len() == 0 {
					return "", 0, &SyntaxError{Err: MissingPatternError, Offset: open}
				}

				return fragment.String(), j, nil
			}

		case '(':
			depth++

			// Nested groups must be non-capturing, "(?:" or a lookaround.
			if j == length-1 || source.At(j+1) != '?' {
				return "", 0, &SyntaxError{Err: CapturingGroupError, Offset: j}
			}
		}

		fragment.WriteRune(c)
		j++
	}

	return "", 0, &SyntaxError{Err: UnbalancedPatternError, Offset: open}
}

func isNameRune(c rune) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z')
}
