package ruledef

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/rexlex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exprRules = `
rules:
  - name: KW
    pattern: if|else
  - name: NUM
    pattern: "[0-9]+"
  - name: ID
    pattern: "[a-z]+"
  - pattern: \s+
    skip: true
`

func TestParseRuleSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexlex.ruledef")
	defer teardown()
	//
	rs, err := Parse([]byte(exprRules))
	if err != nil {
		t.Fatalf("cannot parse rule set: %v", err)
	}
	if len(rs.Rules) != 4 {
		t.Fatalf("expected 4 rules, got %d", len(rs.Rules))
	}
	names := rs.Names()
	expected := []string{"KW", "NUM", "ID"}
	if len(names) != len(expected) {
		t.Fatalf("expected names %v, got %v", expected, names)
	}
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("expected name #%d to be %s, got %s", i, expected[i], name)
		}
	}
	if !rs.Rules[3].Skip {
		t.Errorf("expected the whitespace rule to be a skip rule")
	}
}

var ruleSetInputs = []string{
	"if x else 7",
	"answer 42",
	"iffy",
}

var ruleSetKinds = [][]string{
	{"KW", "ID", "KW", "NUM"},
	{"ID", "NUM"},
	{"ID"},
}

func TestRuleSetLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexlex", "rexlex.ruledef")
	defer teardown()
	//
	rs, err := Load(strings.NewReader(exprRules))
	if err != nil {
		t.Fatalf("cannot load rule set: %v", err)
	}
	lexer, err := rs.Lexer()
	if err != nil {
		t.Fatalf("cannot build lexer: %v", err)
	}
	for i, input := range ruleSetInputs {
		t.Logf("------+-----------------+--------")
		tokens, err := lexer.Tokens(input)
		if err != nil {
			t.Errorf("input #%d: unexpected lexing error: %v", i, err)
			continue
		}
		if len(tokens) != len(ruleSetKinds[i]) {
			t.Errorf("input #%d: expected %d tokens, got %d", i, len(ruleSetKinds[i]), len(tokens))
			continue
		}
		for j, token := range tokens {
			t.Logf(" %4s | %15q | %s", token.Kind, token.Lexeme, token.Span)
			if token.Kind != ruleSetKinds[i][j] {
				t.Errorf("input #%d, token #%d: expected %s, got %s", i, j, ruleSetKinds[i][j], token.Kind)
			}
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestRuleSetRejectsDuplicateNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexlex.ruledef")
	defer teardown()
	//
	_, err := Parse([]byte(`
rules:
  - name: NUM
    pattern: "[0-9]+"
  - name: NUM
    pattern: "[0-9a-f]+"
`))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected a duplicate-name error, got %v", err)
	}
}

func TestRuleSetRejectsUnnamedRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexlex.ruledef")
	defer teardown()
	//
	_, err := Parse([]byte(`
rules:
  - pattern: "[0-9]+"
`))
	if err == nil || !strings.Contains(err.Error(), "unnamed") {
		t.Errorf("expected an unnamed-rule error, got %v", err)
	}
}

func TestRuleSetRejectsMissingPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexlex.ruledef")
	defer teardown()
	//
	_, err := Parse([]byte(`
rules:
  - name: NUM
`))
	if err == nil || !strings.Contains(err.Error(), "no pattern") {
		t.Errorf("expected a missing-pattern error, got %v", err)
	}
}

// A bad pattern is not caught while parsing the file; it surfaces when the
// rule set is compiled.
func TestRuleSetBadPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexlex", "rexlex.ruledef")
	defer teardown()
	//
	rs, err := Parse([]byte(`
rules:
  - name: BAD
    pattern: "[a-"
`))
	if err != nil {
		t.Fatalf("cannot parse rule set: %v", err)
	}
	_, err = rs.Lexer()
	var perr *rexlex.PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *PatternError, got %v", err)
	}
	if perr.Index != 0 || perr.Source != "[a-" {
		t.Errorf("expected rule #0 with source %q, got #%d %q", "[a-", perr.Index, perr.Source)
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexlex.ruledef")
	defer teardown()
	//
	rs1, err := Parse([]byte(exprRules))
	if err != nil {
		t.Fatalf("cannot parse rule set: %v", err)
	}
	rs2, err := Parse([]byte(exprRules))
	if err != nil {
		t.Fatalf("cannot parse rule set: %v", err)
	}
	if rs1.Fingerprint() == "" {
		t.Fatalf("expected a non-empty fingerprint")
	}
	if rs1.Fingerprint() != rs2.Fingerprint() {
		t.Errorf("identical rule sets must fingerprint identically")
	}
	rs2.Rules[1].Pattern = "[0-9]*"
	if rs1.Fingerprint() == rs2.Fingerprint() {
		t.Errorf("differing rule sets must fingerprint differently")
	}
}
