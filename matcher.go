package pathmatch

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Matcher tests concrete paths against a compiled source and extracts named
// parameter values. A Matcher is immutable after NewMatcher and safe for
// concurrent use: the engine keeps per-attempt state off the compiled
// pattern.
type Matcher struct {
	re     *regexp2.Regexp
	keys   []Key
	decode func(string) string
}

// Result is the outcome of a successful match.
type Result struct {
	// Path is the matched substring of the input.
	Path string

	// Index is the rune offset of the match start.
	Index int

	// Params maps parameter names to decoded values. Repeating parameters
	// decode to list values; unmatched optional parameters are absent.
	Params Params
}

// NewMatcher compiles a source into a Matcher.
func NewMatcher(src Source, opts ...Option) (*Matcher, error) {
	o := compileOptions(opts)

	re, keys, err := pathToRegexp(src, o)
	if err != nil {
		return nil, err
	}

	return &Matcher{re: re, keys: keys, decode: o.decode}, nil
}

// MustMatcher is like NewMatcher but panics on a malformed source.
func MustMatcher(src Source, opts ...Option) *Matcher {
	m, err := NewMatcher(src, opts...)
	if err != nil {
		panic("pathmatch: NewMatcher: " + err.Error())
	}

	return m
}

// Match tests path and returns the extracted parameters, or nil when the
// path does not match. Match never fails.
func (m *Matcher) Match(path string) *Result {
	match, err := m.re.FindStringMatch(path)
	if err != nil || match == nil {
		return nil
	}

	params := make(Params, len(m.keys))
	number := 0

	for i := range m.keys {
		key := &m.keys[i]

		// Anonymous captures are numbered left to right across the whole
		// compiled source; named groups sort after them and resolve by name.
		var group *regexp2.Group
		if key.byName {
			group = match.GroupByName(key.Name)
		} else {
			number++
			group = match.GroupByNumber(number)
		}

		if group == nil || len(group.Captures) == 0 {
			continue
		}

		captured := group.String()

		if key.repeats() {
			elements := strings.Split(captured, key.Prefix+key.Suffix)
			decoded := make([]string, len(elements))
			for j, element := range elements {
				decoded[j] = m.decode(element)
			}

			params[key.Name] = ListValue(decoded...)

			continue
		}

		params[key.Name] = StringValue(m.decode(captured))
	}

	return &Result{Path: match.String(), Index: match.Index, Params: params}
}
