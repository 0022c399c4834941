package rexlex

// Builder accumulates lexer rules in declaration order and finalizes them
// into an immutable Lexer. The zero Builder is not usable; create one with
// NewBuilder.
type Builder[K any] struct {
	pending  []pendingRule[K]
	compiler Compiler
}

type pendingRule[K any] struct {
	source string
	action Action[K]
}

// NewBuilder creates an empty Builder, set up with the default pattern
// engine (see GoRegexp).
func NewBuilder[K any]() *Builder[K] {
	return &Builder[K]{compiler: GoRegexp()}
}

// WithCompiler exchanges the pattern engine used by Build. Pattern sources
// of all rules are interpreted by the chosen engine; mixing engines within
// one lexer is not supported.
func (b *Builder[K]) WithCompiler(c Compiler) *Builder[K] {
	if c != nil {
		b.compiler = c
	}
	return b
}

// Token appends a rule matching pattern source. If the rule wins at a scan
// position, action is called with the matched lexeme and either classifies
// the token or suppresses it (see Action). Declaration order is significant:
// it breaks ties between rules matching with equal length, earliest rule
// first.
//
// The source is not compiled here; compile errors surface in Build.
func (b *Builder[K]) Token(source string, action Action[K]) *Builder[K] {
	b.pending = append(b.pending, pendingRule[K]{source: source, action: action})
	return b
}

// Skip appends a rule which consumes matching input without emitting tokens,
// e.g. for whitespace or comments.
func (b *Builder[K]) Skip(source string) *Builder[K] {
	return b.Token(source, Drop[K]())
}

// Build compiles every accumulated pattern source and freezes the rules into
// an immutable Lexer. It fails with a *PatternError identifying the first
// rule whose source the engine rejects.
func (b *Builder[K]) Build() (*Lexer[K], error) {
	rules := make(patternSet[K], len(b.pending))
	for i, p := range b.pending {
		pattern, err := b.compiler.Compile(p.source)
		if err != nil {
			tracer().Errorf("cannot compile pattern %q: %v", p.source, err)
			return nil, &PatternError{Index: i, Source: p.source, Cause: err}
		}
		rules[i] = rule[K]{pattern: pattern, action: p.action}
	}
	tracer().Debugf("built lexer with %d rules", len(rules))
	return &Lexer[K]{rules: rules}, nil
}
