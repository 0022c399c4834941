/*
Package rexlex generates lexical analyzers from prioritized regular-expression
rules.

A lexer is assembled by declaring rules, each pairing a pattern source with an
action. The action classifies a matched lexeme, or suppresses it (whitespace,
comments):

	lexer, err := rexlex.NewBuilder[string]().
		Token(`[0-9]+`, rexlex.Emit("NUM")).
		Token(`[a-z]+`, rexlex.Emit("ID")).
		Skip(`\s+`).
		Build()

A lexer is immutable and may be shared; every call to Scan opens an
independent token stream over an input text:

	stream := lexer.Scan("12 ab")
	for stream.Scan() {
		fmt.Println(stream.Token())
	}
	if err := stream.Err(); err != nil {
		…
	}

At every scan position the rule producing the longest match wins. Rules tying
on match length are resolved by declaration order, earliest first, which makes
keyword-before-identifier rule sets behave as users expect: declare "if"
before `[a-z]+` and input "if" is a keyword, while "iffy" still is an
identifier.

Patterns are compiled by an exchangeable engine. The default engine is the
standard library's regexp package; matching is anchored at the scan position.
Package structure is as follows:

■ lexmach: an alternative pattern engine, backed by timtadh/lexmachine.

■ ruledef: declarative rule sets, loaded from YAML rule files.

■ cmd/rxli: an interactive token explorer for rule files.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rexlex
