package rexlex

import "regexp"

// The default pattern engine, backed by the standard library's regexp
// package. Sources are compiled with an \A(?:…) wrapper, forcing every match
// to be anchored at the queried offset.

// GoRegexp returns the default pattern engine. Pattern sources use RE2
// syntax, as documented for the regexp package.
func GoRegexp() Compiler {
	return goCompiler{}
}

type goCompiler struct{}

func (goCompiler) Compile(source string) (Pattern, error) {
	re, err := regexp.Compile(`\A(?:` + source + `)`)
	if err != nil {
		return nil, err
	}
	return &goPattern{re: re, source: source}, nil
}

type goPattern struct {
	re     *regexp.Regexp
	source string
}

func (p *goPattern) MatchAt(input string, pos int) (int, bool) {
	loc := p.re.FindStringIndex(input[pos:])
	if loc == nil {
		return 0, false
	}
	return pos + loc[1], true // loc[0] is 0, guaranteed by the \A anchor
}

func (p *goPattern) String() string {
	return p.source
}
