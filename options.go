package pathmatch

// options is the per-compile configuration. A compiled artifact snapshots
// everything it needs, so independent calls never interfere.
type options struct {
	delimiter string
	prefixes  string
	endsWith  string
	sensitive bool
	strict    bool
	start     bool
	end       bool
	validate  bool
	encode    func(string) string
	decode    func(string) string
}

// Option configures a single compile call.
type Option func(*options)

func compileOptions(opts []Option) *options {
	o := &options{
		delimiter: "/#?",
		prefixes:  "./",
		start:     true,
		end:       true,
		validate:  true,
		encode:    identity,
		decode:    identity,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

func identity(value string) string { return value }

// WithDelimiter sets the character class separating path segments. It scopes
// the default parameter pattern and trailing-delimiter handling. The default
// is "/#?".
func WithDelimiter(delimiter string) Option {
	return func(o *options) { o.delimiter = delimiter }
}

// WithPrefixes sets the characters a parameter may adopt as its prefix from
// the preceding literal text. The default is "./".
func WithPrefixes(prefixes string) Option {
	return func(o *options) { o.prefixes = prefixes }
}

// CaseSensitive makes matching and validation case-sensitive. The default is
// case-insensitive.
func CaseSensitive() Option {
	return func(o *options) { o.sensitive = true }
}

// Strict disables the optional trailing delimiter a match normally permits.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// WithStart controls anchoring at the beginning of the path. The default is
// true.
func WithStart(start bool) Option {
	return func(o *options) { o.start = start }
}

// WithEnd controls anchoring at the end of the path. With end set to false
// the compiled expression matches a prefix of the path ending on a delimiter
// boundary, which is how sub-routers compose.
func WithEnd(end bool) Option {
	return func(o *options) { o.end = end }
}

// WithEndsWith sets an extra class of characters that may terminate a match,
// for example "?" to stop at a query string.
func WithEndsWith(endsWith string) Option {
	return func(o *options) { o.endsWith = endsWith }
}

// WithEncode sets the hook applied to parameter values before validation
// when building a path, and to literal text when generating the matching
// expression. The default is the identity. See EncodePathComponent.
func WithEncode(encode func(string) string) Option {
	return func(o *options) {
		if encode != nil {
			o.encode = encode
		}
	}
}

// WithDecode sets the hook applied to every captured value when matching.
// The default is the identity. See DecodePathComponent.
func WithDecode(decode func(string) string) Option {
	return func(o *options) {
		if decode != nil {
			o.decode = decode
		}
	}
}

// WithoutValidation makes Builder.Build skip checking values against their
// parameter patterns.
func WithoutValidation() Option {
	return func(o *options) { o.validate = false }
}
