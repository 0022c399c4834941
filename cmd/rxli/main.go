package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/rexlex"
	"github.com/npillmayer/rexlex/lexmach"
	"github.com/npillmayer/rexlex/ruledef"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI, where users enter input lines to be
// tokenized with a previously loaded rule file. Any arguments after the
// flags are treated as a first input line.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	rulesf := flag.String("rules", "", "YAML rule file to load")
	engine := flag.String("engine", "regexp", "Pattern engine [regexp|lexmachine]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to rxli") // colored welcome message
	if *rulesf == "" {
		pterm.Error.Println("no rule file given; usage: rxli -rules tokens.yaml")
		os.Exit(1)
	}
	//
	// load the rule file and build the lexer
	rs, err := ruledef.LoadFile(*rulesf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	var compiler rexlex.Compiler // nil selects the default engine
	if *engine == "lexmachine" {
		compiler = lexmach.Engine{}
	}
	lexer, err := rs.LexerWith(compiler)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	tracer().Infof("Loaded %s, fingerprint %s", *rulesf, rs.Fingerprint())
	pterm.Info.Println("Loaded " + *rulesf)
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		tokenize(lexer, input)
	}
	//
	// set up REPL and start receiving input lines
	repl, err := readline.New("rxli> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		tokenize(lexer, line)
	}
	println("Good bye!")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// tokenize scans one input line and prints every token. A lexing error is
// reported with the offset it occurred at; tokens produced before the error
// have been printed already and remain valid.
func tokenize(lexer *rexlex.Lexer[string], input string) {
	stream := lexer.Scan(input)
	count := 0
	for stream.Scan() {
		token := stream.Token()
		pterm.Printf(" %-12s | %-20q | %s\n", token.Kind, token.Lexeme, token.Span)
		count++
	}
	if err := stream.Err(); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	tracer().Infof("%d token(s)", count)
}
