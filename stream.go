package rexlex

// TokenStream is a lazy, single-pass iterator over one input text, driven in
// the manner of bufio.Scanner:
//
//	stream := lexer.Scan(input)
//	for stream.Scan() {
//	    tok := stream.Token()
//	    …
//	}
//	if err := stream.Err(); err != nil {
//	    …
//	}
//
// A stream carries the mutable scan cursor and must be driven by a single
// consumer; it is not safe for concurrent use. Once exhausted or failed it
// stays that way — re-tokenizing requires a fresh call to Lexer.Scan.
type TokenStream[K any] struct {
	input string
	rules patternSet[K]
	pos   int
	tok   Token[K]
	err   error
}

// Scan advances the stream to the next token, which is then available
// through Token. It returns false when the input is exhausted or when lexing
// fails; Err tells the two cases apart. Calling Scan after it returned false
// is harmless and keeps returning false.
func (ts *TokenStream[K]) Scan() bool {
	if ts.err != nil {
		return false
	}
	// skipped matches loop here; recursing instead would grow the stack on
	// long runs of skipped text
	for ts.pos < len(ts.input) {
		i, end, ok := ts.rules.bestMatch(ts.input, ts.pos)
		if !ok {
			ts.err = &NoMatchError{Offset: uint64(ts.pos)}
			tracer().Errorf("lexing stops: %v", ts.err)
			return false
		}
		if end == ts.pos {
			ts.err = &ZeroWidthError{RuleIndex: i, Offset: uint64(ts.pos)}
			tracer().Errorf("lexing stops: %v", ts.err)
			return false
		}
		span := Span{uint64(ts.pos), uint64(end)}
		lexeme := ts.input[ts.pos:end]
		ts.pos = end
		if kind, emit := ts.rules[i].action(lexeme); emit {
			ts.tok = Token[K]{Kind: kind, Lexeme: lexeme, Span: span}
			tracer().Debugf("token %s", ts.tok)
			return true
		}
		tracer().Debugf("skip %q %s", lexeme, span)
	}
	return false
}

// Token returns the token produced by the most recent successful call to
// Scan.
func (ts *TokenStream[K]) Token() Token[K] {
	return ts.tok
}

// Err returns the error which terminated the stream, if any. Exhausting the
// input is not an error.
func (ts *TokenStream[K]) Err() error {
	return ts.err
}
