package lexmach

import (
	"fmt"

	"github.com/npillmayer/rexlex"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'rexlex.lexmach'.
func tracer() tracing.Trace {
	return tracing.Select("rexlex.lexmach")
}

// Engine is a pattern engine backed by lexmachine, usable as an alternative
// to the default regexp engine (see rexlex.Builder.WithCompiler). The zero
// value is ready to use.
type Engine struct{}

var _ rexlex.Compiler = Engine{}

// Compile is part of the rexlex.Compiler interface. It compiles source into
// a single-rule lexmachine NFA and returns an error if compilation failed.
//
// The NFA path is chosen deliberately: lexmachine's DFA compiler panics on
// degenerate pattern sources instead of returning an error, while the NFA
// compiler reports them as values. A recover guard converts any remaining
// lexmachine panic into an error, so that a malformed rule always surfaces
// as a *rexlex.PatternError from Build.
func (Engine) Compile(source string) (p rexlex.Pattern, err error) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("Error compiling pattern: %v", r)
			p, err = nil, fmt.Errorf("cannot compile pattern %q: %v", source, r)
		}
	}()
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(source), keepMatch)
	if err := lexer.CompileNFA(); err != nil {
		tracer().Errorf("Error compiling NFA: %v", err)
		return nil, err
	}
	return &pattern{lexer: lexer, source: source}, nil
}

// keepMatch is the single lexmachine action: hand the raw match through.
func keepMatch(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return m, nil
}

type pattern struct {
	lexer  *lexmachine.Lexer
	source string
}

var _ rexlex.Pattern = (*pattern)(nil)

// MatchAt is part of the rexlex.Pattern interface. A failing scan surfaces
// as a machines.UnconsumedInput; that and end-of-stream both translate to
// "no match at pos".
func (p *pattern) MatchAt(input string, pos int) (int, bool) {
	scan, err := p.lexer.Scanner([]byte(input[pos:]))
	if err != nil {
		tracer().Errorf("scanner error: %v", err)
		return 0, false
	}
	tok, err, eos := scan.Next()
	if eos {
		return 0, false
	}
	if err != nil {
		if _, is := err.(*machines.UnconsumedInput); !is {
			tracer().Errorf("scanner error: %v", err)
		}
		return 0, false
	}
	m := tok.(*machines.Match)
	if m.TC != 0 { // match did not anchor at the queried offset
		return 0, false
	}
	return pos + len(m.Bytes), true
}

func (p *pattern) String() string {
	return p.source
}
