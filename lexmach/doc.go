/*
Package lexmach provides a pattern engine backed by the lexmachine scanner
generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

lexmachine matches at its scanner's token counter or fails; the adapter
narrows this to the anchored longest-match contract of rexlex.Pattern. Every
pattern source is compiled into a machine of its own, so that rule priority
stays with rexlex instead of lexmachine's internal rule ordering. lexmachine
rejects patterns which can match the empty string at compile time, so with
this engine zero-width hazards surface from Build rather than during a scan.

Clients plug the engine into a builder:

	lexer, err := rexlex.NewBuilder[string]().
		WithCompiler(lexmach.Engine{}).
		Token(`[0-9]+`, rexlex.Emit("NUM")).
		Skip(`( |\t|\n|\r)+`).
		Build()

Pattern sources use lexmachine's regular-expression syntax, which differs in
places from RE2. Please refer to the lexmachine documentation.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
