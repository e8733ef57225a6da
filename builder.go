package pathmatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// Builder renders concrete paths from parameter sets, validating every value
// against its parameter's pattern. A Builder is immutable after Compile and
// safe for concurrent use.
type Builder struct {
	tokens   []Token
	patterns []*regexp2.Regexp
	encode   func(string) string
	validate bool
}

// Compile parses pattern and returns a Builder for it.
func Compile(pattern string, opts ...Option) (*Builder, error) {
	o := compileOptions(opts)

	tokens, err := parse(pattern, o)
	if err != nil {
		return nil, err
	}

	return newBuilder(tokens, o)
}

// MustCompile is like Compile but panics on a malformed pattern.
func MustCompile(pattern string, opts ...Option) *Builder {
	b, err := Compile(pattern, opts...)
	if err != nil {
		panic(`pathmatch: Compile(` + strconv.Quote(pattern) + `): ` + err.Error())
	}

	return b
}

func newBuilder(tokens []Token, o *options) (*Builder, error) {
	b := &Builder{
		tokens:   tokens,
		patterns: make([]*regexp2.Regexp, len(tokens)),
		encode:   o.encode,
		validate: o.validate,
	}

	// Validation expressions are compiled up front so an invalid inline
	// fragment surfaces here rather than on first build.
	for i, tok := range tokens {
		if tok.Key == nil {
			continue
		}

		re, err := regexp2.Compile(`\A(?:`+tok.Key.Pattern+`)\z`, regexFlags(o))
		if err != nil {
			return nil, err
		}

		b.patterns[i] = re
	}

	return b, nil
}

// Build renders the path for params. Parameter values are encoded, validated
// against their patterns, and appended between their prefix and suffix;
// literal tokens are appended verbatim. Build never mutates the Builder and
// may be called concurrently.
func (b *Builder) Build(params Params) (string, error) {
	var path strings.Builder

	for i, tok := range b.tokens {
		if tok.Key == nil {
			path.WriteString(tok.Literal)

			continue
		}

		key := tok.Key

		switch value := params[key.Name]; value.kind {
		case paramList:
			if !key.repeats() {
				return "", fmt.Errorf("%w: got a list for %q", NotRepeatableError, key.Name)
			}

			if len(value.list) == 0 {
				if key.optional() {
					continue
				}

				return "", fmt.Errorf("%w: %q", EmptyListError, key.Name)
			}

			for _, element := range value.list {
				segment := b.encode(element)
				if err := b.checkSegment(i, key, segment); err != nil {
					return "", err
				}

				path.WriteString(key.Prefix)
				path.WriteString(segment)
				path.WriteString(key.Suffix)
			}

		case paramScalar:
			segment := b.encode(value.value)
			if err := b.checkSegment(i, key, segment); err != nil {
				return "", err
			}

			path.WriteString(key.Prefix)
			path.WriteString(segment)
			path.WriteString(key.Suffix)

		case paramAbsent:
			if key.optional() {
				continue
			}

			shape := "a string"
			if key.repeats() {
				shape = "a list"
			}

			return "", fmt.Errorf("%w: expected %q to be %s", MissingValueError, key.Name, shape)
		}
	}

	return path.String(), nil
}

func (b *Builder) checkSegment(i int, key *Key, segment string) error {
	if !b.validate {
		return nil
	}

	ok, err := b.patterns[i].MatchString(segment)
	if err != nil || !ok {
		return fmt.Errorf("%w: expected %q to match %q, got %q",
			ValueMismatchError, key.Name, key.Pattern, segment)
	}

	return nil
}
