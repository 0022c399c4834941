/*
Package rxli/main provides an interactive command line tool for exploring
lexer rule sets. rxli loads a YAML rule file, tokenizes input lines the user
types, and prints the resulting token streams. It serves as a sandbox while
developing rule sets, useful for early stages of lexer/parser development.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexlex'
func tracer() tracing.Trace {
	return tracing.Select("rexlex")
}
