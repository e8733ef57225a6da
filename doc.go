// Package pathmatch compiles route-pattern strings into path matchers and
// path builders.
//
// A pattern interleaves literal text with parameters:
//
//	/user/:id             named parameter, one segment
//	/file/:path+          repeating parameter, "/" joins repetitions
//	/:lang?/about         optional parameter
//	/release/(\d+)        unnamed parameter with an inline expression
//	/:attr{-:rest}?       group with its own prefix and suffix text
//
// A parameter name is one or more [A-Za-z0-9_] characters after ":". An
// inline "(...)" expression constrains the parameter; nested groups inside
// it must be non-capturing. The "?", "*" and "+" modifiers mark a parameter
// optional, zero-or-more and one-or-more. A "{prefix...suffix}" group sets
// the literal text around the parameter explicitly; otherwise a single
// preceding "." or "/" is taken as the prefix. When a parameter repeats, its
// prefix and suffix join the repetitions.
//
// NewMatcher compiles a pattern into a Matcher that tests paths and extracts
// parameter values; Compile produces the inverse Builder that renders a path
// from a parameter set, validating each value against its parameter's
// expression. Both derive from the same parsed token list ([Parse]) and
// agree exactly on syntax and semantics, so built paths match back into the
// parameters they were built from.
//
// Compiled artifacts are immutable and safe for concurrent use. Matching
// never fails: a path that does not match yields a nil Result. Malformed
// patterns abort compilation with a *SyntaxError carrying the offending
// offset; invalid parameter values surface per Build call and leave the
// Builder intact.
package pathmatch
