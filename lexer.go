package rexlex

// rule pairs a compiled pattern with the action producing its tokens. A
// rule's position within its patternSet is its priority: lower index wins
// ties.
type rule[K any] struct {
	pattern Pattern
	action  Action[K]
}

// patternSet is an ordered rule collection, built once and queried as a
// unit. It is never mutated after Build.
type patternSet[K any] []rule[K]

// bestMatch evaluates every rule anchored at pos and selects the winner:
// longest match first, ties resolved in favor of the earliest declared rule.
// ok is false if no rule matches at pos.
//
// Deliberately linear in the number of rules per scan step. Keeping the
// patterns independent lets clients compose arbitrary engine patterns,
// which a merged automaton would not allow.
func (ps patternSet[K]) bestMatch(input string, pos int) (winner int, end int, ok bool) {
	for i := range ps {
		e, matched := ps[i].pattern.MatchAt(input, pos)
		if !matched {
			continue
		}
		// strictly greater: on equal length the earlier rule is kept
		if !ok || e > end {
			winner, end, ok = i, e, true
		}
	}
	return winner, end, ok
}

// Lexer tokenizes texts according to a fixed rule set. Create one with
// NewBuilder.
//
// A Lexer is immutable: it may be reused for any number of inputs and shared
// between goroutines, each calling Scan independently. All mutable scan
// state lives in the TokenStream.
type Lexer[K any] struct {
	rules patternSet[K]
}

// Scan opens a token stream over input, with the scan cursor at offset 0.
func (l *Lexer[K]) Scan(input string) *TokenStream[K] {
	return &TokenStream[K]{input: input, rules: l.rules}
}

// Tokens drains a fresh stream over input and collects all tokens. If lexing
// fails, the tokens produced before the failing offset are returned together
// with the error.
func (l *Lexer[K]) Tokens(input string) ([]Token[K], error) {
	var tokens []Token[K]
	stream := l.Scan(input)
	for stream.Scan() {
		tokens = append(tokens, stream.Token())
	}
	return tokens, stream.Err()
}
