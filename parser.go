package pathmatch

import (
	"strconv"
	"strings"
)

// Key describes one named or positional capturing parameter of a pattern.
type Key struct {
	// Name is the declared identifier, or the decimal rendering of an
	// auto-incrementing ordinal (starting at 0, scoped to one parse) for
	// unnamed inline-pattern parameters.
	Name string

	// Prefix and Suffix are the literal text immediately surrounding the
	// parameter. When the parameter repeats they double as the join
	// delimiter between repetitions.
	Prefix string
	Suffix string

	// Pattern is the regular-expression fragment the parameter matches.
	// Empty for degenerate group keys that capture nothing.
	Pattern string

	// Modifier is "", "?", "*" or "+".
	Modifier string

	// byName marks a key harvested from a named group of a pass-through
	// expression. Such keys resolve by group name when matching; all other
	// keys resolve by anonymous capture position.
	byName bool
}

// Token is one element of a parsed pattern: a run of literal text, or a
// parameter when Key is non-nil.
type Token struct {
	Literal string
	Key     *Key
}

func (k *Key) repeats() bool  { return k.Modifier == "*" || k.Modifier == "+" }
func (k *Key) optional() bool { return k.Modifier == "?" || k.Modifier == "*" }

// Parse compiles a pattern string into its ordered token list, the shared
// intermediate representation consumed by Compile, PathToRegexp and
// NewMatcher.
func Parse(pattern string, opts ...Option) ([]Token, error) {
	return parse(pattern, compileOptions(opts))
}

func parse(pattern string, o *options) ([]Token, error) {
	stream, err := lex(pattern)
	if err != nil {
		return nil, err
	}

	p := &parser{
		stream:         stream,
		prefixes:       o.prefixes,
		defaultPattern: segmentPattern(o),
	}

	return p.run()
}

// segmentPattern is the pattern of a bare ":name" parameter: one or more
// runes excluding the delimiter set, non-greedy.
func segmentPattern(o *options) string {
	return "[^" + escapeRegexpString(o.delimiter) + "]+?"
}

type parser struct {
	stream         []lexToken
	prefixes       string
	defaultPattern string

	index   int
	ordinal int
	pending string
	result  []Token
}

func (p *parser) run() ([]Token, error) {
	for p.index < len(p.stream) {
		char := p.tryConsume(tokenChar)
		name := p.tryConsume(tokenName)
		pattern := p.tryConsume(tokenPattern)

		if name != nil || pattern != nil {
			prefix := ""
			if char != nil {
				prefix = char.value
			}

			// A preceding character that is not a configured prefix belongs
			// to the literal run instead.
			if prefix != "" && !strings.Contains(p.prefixes, prefix) {
				p.pending += prefix
				prefix = ""
			}

			p.flushPending()

			key := &Key{Prefix: prefix, Pattern: p.defaultPattern}
			if name != nil {
				key.Name = name.value
			} else {
				key.Name = p.nextOrdinal()
			}
			if pattern != nil {
				key.Pattern = pattern.value
			}
			key.Modifier = p.tryConsumeModifier()

			p.result = append(p.result, Token{Key: key})

			continue
		}

		literal := char
		if literal == nil {
			literal = p.tryConsume(tokenEscapedChar)
		}
		if literal != nil {
			p.pending += literal.value

			continue
		}

		p.flushPending()

		if open := p.tryConsume(tokenOpen); open != nil {
			key := &Key{}
			key.Prefix = p.consumeText()

			name := p.tryConsume(tokenName)
			pattern := p.tryConsume(tokenPattern)

			key.Suffix = p.consumeText()

			if err := p.mustConsume(tokenClose); err != nil {
				return nil, err
			}

			switch {
			case name != nil:
				key.Name = name.value
				key.Pattern = p.defaultPattern
				if pattern != nil {
					key.Pattern = pattern.value
				}
			case pattern != nil:
				key.Name = p.nextOrdinal()
				key.Pattern = pattern.value
			}
			key.Modifier = p.tryConsumeModifier()

			p.result = append(p.result, Token{Key: key})

			continue
		}

		if err := p.mustConsume(tokenEnd); err != nil {
			return nil, err
		}
	}

	return p.result, nil
}

func (p *parser) tryConsume(kind tokenKind) *lexToken {
	if p.index >= len(p.stream) {
		return nil
	}

	next := &p.stream[p.index]
	if next.kind != kind {
		return nil
	}

	p.index++

	return next
}

func (p *parser) tryConsumeModifier() string {
	if t := p.tryConsume(tokenModifier); t != nil {
		return t.value
	}

	return ""
}

func (p *parser) mustConsume(kind tokenKind) error {
	if p.tryConsume(kind) != nil {
		return nil
	}

	next := p.stream[p.index]

	return &SyntaxError{
		Err:      UnexpectedTokenError,
		Offset:   next.index,
		Expected: kind.String(),
		Found:    next.kind.String(),
	}
}

// consumeText collects a run of literal and escaped characters, used for the
// prefix and suffix text inside a "{...}" group.
func (p *parser) consumeText() string {
	var text strings.Builder

	for {
		t := p.tryConsume(tokenChar)
		if t == nil {
			t = p.tryConsume(tokenEscapedChar)
		}
		if t == nil {
			return text.String()
		}

		text.WriteString(t.value)
	}
}

func (p *parser) flushPending() {
	if p.pending == "" {
		return
	}

	p.result = append(p.result, Token{Literal: p.pending})
	p.pending = ""
}

func (p *parser) nextOrdinal() string {
	name := strconv.Itoa(p.ordinal)
	p.ordinal++

	return name
}
