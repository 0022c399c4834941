package rexlex

import "fmt"

// PatternError is returned by Builder.Build when a rule's pattern source does
// not compile. Index is the position of the offending rule in declaration
// order; Cause is the engine's compile error.
type PatternError struct {
	Index  int
	Source string
	Cause  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("rule #%d: cannot compile pattern %q: %v", e.Index, e.Source, e.Cause)
}

func (e *PatternError) Unwrap() error {
	return e.Cause
}

// NoMatchError terminates a token stream: no rule matched the input at
// Offset. The stream does not recover; tokens produced before Offset remain
// valid.
type NoMatchError struct {
	Offset uint64
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no rule matches input at offset %d", e.Offset)
}

// ZeroWidthError terminates a token stream: the winning rule matched the
// empty string at Offset. Advancing by zero bytes would stall the scan cursor
// forever, so the stream fails instead. This points at a rule-authoring
// mistake, typically a pattern quantified with '*' instead of '+'.
type ZeroWidthError struct {
	RuleIndex int
	Offset    uint64
}

func (e *ZeroWidthError) Error() string {
	return fmt.Sprintf("rule #%d matched zero-width at offset %d", e.RuleIndex, e.Offset)
}
