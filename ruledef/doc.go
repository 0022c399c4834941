/*
Package ruledef loads declarative lexer rule sets from YAML.

Rule files let clients configure tokenization without writing Go code. A rule
file looks like this:

	rules:
	  - name: KW
	    pattern: if|else
	  - name: NUM
	    pattern: "[0-9]+"
	  - name: ID
	    pattern: "[a-z]+"
	  - pattern: \s+
	    skip: true

Rule order in the file is significant: it is the declaration order of the
resulting lexer and thus breaks ties between equally long matches. Skip rules
consume input without emitting tokens and are the only rules allowed to omit
a name.

A parsed RuleSet compiles into a rexlex lexer whose token kinds are the rule
names:

	rs, err := ruledef.LoadFile("tokens.yaml")
	…
	lexer, err := rs.Lexer()
	…
	tokens, err := lexer.Tokens(input)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ruledef
