package pathmatch

// lexToken is one unit of the scanned pattern string. index is the rune
// offset of the token in the source, used only for diagnostics.
type lexToken struct {
	kind  tokenKind
	index int
	value string
}

type tokenKind uint8

const (
	// tokenOpen represents a U+007B ({) code point opening a group.
	tokenOpen tokenKind = iota
	// tokenClose represents a U+007D (}) code point closing a group.
	tokenClose
	// tokenPattern represents an inline "(<regular expression>)" fragment.
	// The value carries the fragment verbatim, without the outer parentheses.
	tokenPattern
	// tokenName represents a ":<name>" parameter. The name is restricted to
	// [A-Za-z0-9_] code points.
	tokenName
	// tokenChar represents a code point without special syntactical meaning.
	tokenChar
	// tokenEscapedChar represents a code point escaped as "\<char>".
	tokenEscapedChar
	// tokenModifier represents one of the U+003F (?), U+002A (*) or
	// U+002B (+) code points.
	tokenModifier
	// tokenEnd represents the end of the pattern string.
	tokenEnd
)

func (k tokenKind) String() string {
	switch k {
	case tokenOpen:
		return "OPEN"
	case tokenClose:
		return "CLOSE"
	case tokenPattern:
		return "PATTERN"
	case tokenName:
		return "NAME"
	case tokenChar:
		return "CHAR"
	case tokenEscapedChar:
		return "ESCAPED_CHAR"
	case tokenModifier:
		return "MODIFIER"
	case tokenEnd:
		return "END"
	}

	return "UNKNOWN"
}
