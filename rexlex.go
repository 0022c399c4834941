package rexlex

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexlex'.
func tracer() tracing.Trace {
	return tracing.Select("rexlex")
}

// --- Spans -----------------------------------------------------------------

// Span is a small type for locating a lexeme in an input text. It denotes a
// half-open range of byte offsets: a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Tokens ----------------------------------------------------------------

// Token is a classified lexeme. Kind is whatever the winning rule's action
// produced, Lexeme is the matched text, and Span is the exact byte range the
// match occupies in the input.
type Token[K any] struct {
	Kind   K
	Lexeme string
	Span   Span
}

func (t Token[K]) String() string {
	return fmt.Sprintf("%v(%q) %s", t.Kind, t.Lexeme, t.Span)
}

// Action produces the token kind for a matched lexeme. Returning false makes
// the lexer skip the match: the input is consumed, but no token is emitted.
//
// Actions may be closures carrying state. A token stream calls an action at
// most once per accepted match, never concurrently and never re-entrantly.
type Action[K any] func(lexeme string) (K, bool)

// Emit is a pre-defined action which classifies every match as kind k.
func Emit[K any](k K) Action[K] {
	return func(string) (K, bool) {
		return k, true
	}
}

// Drop is a pre-defined action which ignores every match.
func Drop[K any]() Action[K] {
	return func(string) (K, bool) {
		var none K
		return none, false
	}
}

// --- Pattern engines -------------------------------------------------------

// Pattern is a compiled regular expression, queried for matches anchored at a
// byte offset. Patterns are immutable once compiled and must be safe for
// concurrent MatchAt calls.
type Pattern interface {
	// MatchAt reports a match of the pattern starting exactly at pos, with
	// end being the byte offset just behind the match. A match starting
	// later than pos does not count. How far the match extends is governed
	// by the pattern's own semantics: quantifiers are greedy, but the
	// default engine, like most regex engines, prefers the leftmost branch
	// of an alternation even when a later branch would match more (`a|ab`
	// matches "a" in "ab"). The longest-match policy between rules is the
	// lexer's business, not the pattern's.
	MatchAt(input string, pos int) (end int, ok bool)
	// String returns the textual source the pattern was compiled from.
	String() string
}

// Compiler is a pattern engine, turning pattern sources into Patterns.
// Pattern sources use whatever syntax the engine defines.
//
// The default engine is GoRegexp; sub-package lexmach provides one backed by
// lexmachine. Engines exposing only search-anywhere or shortest-match
// semantics have to be adapted to the anchored longest-match contract of
// Pattern before they can serve a lexer.
type Compiler interface {
	Compile(source string) (Pattern, error)
}
