package pathmatch

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// A Source is anything a matching expression can be compiled from: a route
// pattern string, a pre-built regular expression, or a list of either.
type Source interface {
	appendSource(route *strings.Builder, keys *[]Key, o *options) error
}

// Pattern is a route pattern string compile source, e.g. "/user/:id".
type Pattern string

func (p Pattern) appendSource(route *strings.Builder, keys *[]Key, o *options) error {
	tokens, err := parse(string(p), o)
	if err != nil {
		return err
	}

	tokensToRegexp(tokens, route, keys, o)

	return nil
}

// Regexp wraps a pre-built regular expression as a compile source. The
// expression is passed through unchanged; one key is harvested per
// capturing group in engine numbering order, named groups by name and
// anonymous ones by a per-expression ordinal. The engine numbers anonymous
// groups before named ones; harvested named keys resolve by group name at
// match time, so expressions mixing both still decode correctly.
func Regexp(re *regexp2.Regexp) Source {
	return regexpSource{re: re}
}

type regexpSource struct {
	re *regexp2.Regexp
}

func (s regexpSource) appendSource(route *strings.Builder, keys *[]Key, o *options) error {
	route.WriteString(s.re.String())

	// An anonymous group's reported name is its number.
	ordinal := 0
	for _, number := range s.re.GetGroupNumbers() {
		if number == 0 {
			continue
		}

		name := s.re.GroupNameFromNumber(number)
		if name == strconv.Itoa(number) {
			*keys = append(*keys, Key{Name: strconv.Itoa(ordinal)})
			ordinal++

			continue
		}

		*keys = append(*keys, Key{Name: name, byName: true})
	}

	return nil
}

// List combines sources into one alternation. Every source is compiled
// independently against the same growing key list, so ordinals and capture
// positions follow left-to-right appearance across the whole list.
func List(sources ...Source) Source {
	return listSource(sources)
}

type listSource []Source

func (l listSource) appendSource(route *strings.Builder, keys *[]Key, o *options) error {
	route.WriteString("(?:")

	for i, src := range l {
		if i > 0 {
			route.WriteByte('|')
		}

		if err := src.appendSource(route, keys, o); err != nil {
			return err
		}
	}

	route.WriteByte(')')

	return nil
}

// PathToRegexp compiles a source into a matchable regular expression and the
// ordered list of keys its capture groups correspond to, one key per group
// in positional order.
func PathToRegexp(src Source, opts ...Option) (*regexp2.Regexp, []Key, error) {
	o := compileOptions(opts)

	return pathToRegexp(src, o)
}

func pathToRegexp(src Source, o *options) (*regexp2.Regexp, []Key, error) {
	var (
		route strings.Builder
		keys  []Key
	)

	if err := src.appendSource(&route, &keys, o); err != nil {
		return nil, nil, err
	}

	re, err := regexp2.Compile(route.String(), regexFlags(o))
	if err != nil {
		return nil, nil, err
	}

	return re, keys, nil
}

func regexFlags(o *options) regexp2.RegexOptions {
	if o.sensitive {
		return regexp2.None
	}

	return regexp2.IgnoreCase
}

// tokensToRegexp renders a token list as a regular expression, appending
// every capturing Key to keys in positional order. The builder emits each
// repetition's prefix and suffix independently; here all repetitions of a
// key collapse into a single capture joined by suffix+prefix, re-split by
// the matcher on decode. Both sides must keep these semantics in lockstep.
func tokensToRegexp(tokens []Token, route *strings.Builder, keys *[]Key, o *options) {
	if o.start {
		route.WriteString(`\A`)
	}

	for i, tok := range tokens {
		if tok.Key == nil {
			route.WriteString(escapeRegexpString(o.encode(tok.Literal)))

			continue
		}

		key := tok.Key
		prefix := escapeRegexpString(o.encode(key.Prefix))
		suffix := escapeRegexpString(o.encode(key.Suffix))

		if key.Pattern == "" {
			// Degenerate group, text only: no capture.
			route.WriteString("(?:")
			route.WriteString(prefix)
			route.WriteString(suffix)
			route.WriteByte(')')
			route.WriteString(key.Modifier)

			continue
		}

		*keys = append(*keys, *key)

		if prefix == "" && suffix == "" {
			// A bare leading parameter also accepts one delimiter before it,
			// so ":foo" matches "/bar" as well as "bar".
			if i == 0 && o.start {
				route.WriteString("(?:[")
				route.WriteString(escapeRegexpString(o.delimiter))
				route.WriteString("])?")
			}

			// A repeating bare key captures the whole run, not the last
			// repetition; the matcher re-splits it on the empty joiner.
			if key.repeats() {
				route.WriteString("((?:")
				route.WriteString(key.Pattern)
				route.WriteByte(')')
				route.WriteString(key.Modifier)
				route.WriteByte(')')

				continue
			}

			route.WriteByte('(')
			route.WriteString(key.Pattern)
			route.WriteByte(')')
			route.WriteString(key.Modifier)

			continue
		}

		if key.repeats() {
			route.WriteString("(?:")
			route.WriteString(prefix)
			route.WriteString("((?:")
			route.WriteString(key.Pattern)
			route.WriteString(")(?:")
			route.WriteString(suffix)
			route.WriteString(prefix)
			route.WriteString("(?:")
			route.WriteString(key.Pattern)
			route.WriteString("))*)")
			route.WriteString(suffix)
			route.WriteByte(')')
			if key.Modifier == "*" {
				route.WriteByte('?')
			}

			continue
		}

		route.WriteString("(?:")
		route.WriteString(prefix)
		route.WriteByte('(')
		route.WriteString(key.Pattern)
		route.WriteByte(')')
		route.WriteString(suffix)
		route.WriteByte(')')
		route.WriteString(key.Modifier)
	}

	delimiter := "[" + escapeRegexpString(o.delimiter) + "]"

	endsWith := `\z`
	if o.endsWith != "" {
		endsWith = "[" + escapeRegexpString(o.endsWith) + `]|\z`
	}

	if o.end {
		if !o.strict {
			route.WriteString(delimiter)
			route.WriteByte('?')
		}

		if o.endsWith == "" {
			route.WriteString(`\z`)
		} else {
			route.WriteString("(?=")
			route.WriteString(endsWith)
			route.WriteByte(')')
		}

		return
	}

	if !o.strict {
		route.WriteString("(?:")
		route.WriteString(delimiter)
		route.WriteString("(?=")
		route.WriteString(endsWith)
		route.WriteString("))?")
	}

	if !endsOnDelimiter(tokens, o.delimiter) {
		route.WriteString("(?=")
		route.WriteString(delimiter)
		route.WriteByte('|')
		route.WriteString(endsWith)
		route.WriteByte(')')
	}
}

// endsOnDelimiter reports whether the token list structurally ends on a
// delimiter character, in which case an unanchored match already stops at a
// safe boundary.
func endsOnDelimiter(tokens []Token, delimiter string) bool {
	if len(tokens) == 0 {
		return true
	}

	last := tokens[len(tokens)-1]
	if last.Key != nil {
		return false
	}

	return strings.ContainsRune(delimiter, lastRune(last.Literal))
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}

	return last
}
