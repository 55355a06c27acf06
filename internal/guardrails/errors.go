package guardrails

import "fmt"

// RuleError wraps a failure inside one guardrail rule so the engine can log
// and skip it without aborting the chain.
type RuleError struct {
	RuleName string
	Cause    error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("guardrail rule %q: %v", e.RuleName, e.Cause)
}

func (e *RuleError) Unwrap() error { return e.Cause }
