package pathmatch

import "strings"

// Stringify renders a token list back into a pattern string that parses to
// an equivalent token list. Literal text is escaped, parameters whose bare
// rendering would re-parse differently are wrapped in a "{...}" group.
func Stringify(tokens []Token, opts ...Option) string {
	o := compileOptions(opts)
	defaultPattern := segmentPattern(o)

	var out strings.Builder

	for i, tok := range tokens {
		if tok.Key == nil {
			out.WriteString(escapePatternString(tok.Literal))

			continue
		}

		key := tok.Key
		named := key.Name != "" && !isOrdinalName(key.Name)
		bareName := named && key.Pattern == defaultPattern

		grouped := key.Suffix != "" ||
			key.Pattern == "" ||
			(key.Prefix != "" && !isPrefixRune(key.Prefix, o.prefixes))

		// A bare ":name" absorbs following identifier characters, and a
		// following "(...)" parameter would read as its inline pattern.
		if !grouped && bareName && i+1 < len(tokens) {
			grouped = absorbs(&tokens[i+1])
		}

		// With no prefix of its own, the parameter would adopt a trailing
		// prefix character from the preceding literal when re-parsed.
		if !grouped && key.Prefix == "" && i > 0 && tokens[i-1].Key == nil &&
			strings.ContainsRune(o.prefixes, lastRune(tokens[i-1].Literal)) {
			grouped = true
		}

		if grouped {
			out.WriteByte('{')
		}

		out.WriteString(escapePatternString(key.Prefix))

		if named {
			out.WriteByte(':')
			out.WriteString(key.Name)
		}

		if key.Pattern != "" && !bareName {
			out.WriteByte('(')
			out.WriteString(key.Pattern)
			out.WriteByte(')')
		}

		// Even inside a group a suffix starting with an identifier character
		// would extend a bare name, so break it with an escape.
		if bareName && key.Suffix != "" && isNameRune(firstRune(key.Suffix)) {
			out.WriteByte('\\')
		}

		out.WriteString(escapePatternString(key.Suffix))

		if grouped {
			out.WriteByte('}')
		}

		out.WriteString(key.Modifier)
	}

	return out.String()
}

// absorbs reports whether tok's rendering would merge into a preceding bare
// ":name" rendering.
func absorbs(tok *Token) bool {
	if tok.Key == nil {
		return tok.Literal != "" && isNameRune(firstRune(tok.Literal))
	}

	// An ordinal parameter with no prefix renders as "(...)".
	return tok.Key.Prefix == "" && tok.Key.Suffix == "" &&
		(tok.Key.Name == "" || isOrdinalName(tok.Key.Name))
}

func isOrdinalName(name string) bool {
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}

	return name != ""
}

func isPrefixRune(prefix, prefixes string) bool {
	return len(prefix) == len(string(firstRune(prefix))) &&
		strings.ContainsRune(prefixes, firstRune(prefix))
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}

	return 0
}
