package ruledef

import (
	"fmt"
	"io"
	"os"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/rexlex"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'rexlex.ruledef'.
func tracer() tracing.Trace {
	return tracing.Select("rexlex.ruledef")
}

// Rule is one entry of a declarative rule set.
type Rule struct {
	Name    string `yaml:"name,omitempty"`
	Pattern string `yaml:"pattern"`
	Skip    bool   `yaml:"skip,omitempty"`
}

// RuleSet represents the structure of a YAML rule file. Rules appear in
// declaration order.
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// Parse reads a rule set from YAML data and validates it: every rule needs a
// pattern, every non-skip rule needs a name, and names must be unique.
func Parse(data []byte) (*RuleSet, error) {
	rs := &RuleSet{}
	if err := yaml.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("cannot parse rule set: %w", err)
	}
	if err := rs.check(); err != nil {
		tracer().Errorf("invalid rule set: %v", err)
		return nil, err
	}
	tracer().Debugf("parsed rule set with %d rules", len(rs.Rules))
	return rs, nil
}

// Load reads a YAML rule set from r.
func Load(r io.Reader) (*RuleSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read rule set: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a YAML rule set from a file.
func LoadFile(filename string) (*RuleSet, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open rule file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (rs *RuleSet) check() error {
	names := treeset.NewWithStringComparator()
	for i, r := range rs.Rules {
		if r.Pattern == "" {
			return fmt.Errorf("rule #%d has no pattern", i)
		}
		if r.Skip {
			continue
		}
		if r.Name == "" {
			return fmt.Errorf("rule #%d is unnamed; only skip rules may omit a name", i)
		}
		if names.Contains(r.Name) {
			return fmt.Errorf("duplicate rule name %q", r.Name)
		}
		names.Add(r.Name)
	}
	return nil
}

// Names returns the names of all token-emitting rules, in declaration order.
func (rs *RuleSet) Names() []string {
	var names []string
	for _, r := range rs.Rules {
		if !r.Skip {
			names = append(names, r.Name)
		}
	}
	return names
}

// Fingerprint returns a stable hash of the rule set. Clients may use it to
// detect rule-file revisions, e.g. for invalidating caches keyed by rule
// set.
func (rs *RuleSet) Fingerprint() string {
	hash, err := structhash.Hash(rs, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint rule set: %v", err)
		return ""
	}
	return hash
}

// Lexer compiles the rule set with the default pattern engine. Token kinds
// are the rule names.
func (rs *RuleSet) Lexer() (*rexlex.Lexer[string], error) {
	return rs.LexerWith(nil)
}

// LexerWith compiles the rule set with a specific pattern engine; a nil
// engine selects the default one.
func (rs *RuleSet) LexerWith(engine rexlex.Compiler) (*rexlex.Lexer[string], error) {
	b := rexlex.NewBuilder[string]()
	if engine != nil {
		b.WithCompiler(engine)
	}
	for _, r := range rs.Rules {
		if r.Skip {
			b.Skip(r.Pattern)
		} else {
			b.Token(r.Pattern, rexlex.Emit(r.Name))
		}
	}
	return b.Build()
}
