// Package guardrails enforces evidence-based floors and data-driven
// adjustments on the category score map before aggregation. Rules apply
// strictly in order; later rules observe earlier adjustments.
package guardrails

import (
	"strings"
	"time"

	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/types"
)

// maxNotesLength bounds the concatenated adjustment notes.
const maxNotesLength = 500

// Context is the evidence a rule condition can inspect.
type Context struct {
	Resume *types.CandidateProfile
	JD     *types.JobRequirement
	Now    time.Time
}

// NewContext builds a rule context anchored to the current time.
func NewContext(jd *types.JobRequirement, resume *types.CandidateProfile) *Context {
	return &Context{Resume: resume, JD: jd, Now: time.Now()}
}

// Rule is one guardrail in the chain. Apply mutates and returns the score map
// along with any adjustment notes. An error marks the rule as faulty; the
// engine logs it and moves on.
type Rule interface {
	Name() string
	Apply(scores types.ScoreMap, ctx *Context) (types.ScoreMap, []string, error)
}

// Engine holds the ordered rule chain: built-in evidence floors first, then
// externally configured generic rules.
type Engine struct {
	rules []Rule
}

// NewEngine builds an engine from the built-in rules plus the given generic
// rule records. A nil or empty slice yields a builtins-only engine.
func NewEngine(generic []types.EvidenceRule) *Engine {
	rules := builtinRules()
	for _, record := range generic {
		rules = append(rules, &genericRule{rule: record})
	}
	return &Engine{rules: rules}
}

// Apply folds the score map through every rule in order and returns the
// adjusted map plus the concatenated, length-bounded notes. A failing rule is
// logged and skipped; the chain always completes.
func (e *Engine) Apply(scores types.ScoreMap, ctx *Context) (types.ScoreMap, string) {
	current := scores.Clone()
	var notes []string

	for _, rule := range e.rules {
		next, ruleNotes, err := rule.Apply(current, ctx)
		if err != nil {
			logger.Warn().
				Err(&RuleError{RuleName: rule.Name(), Cause: err}).
				Str("rule", rule.Name()).
				Msg("guardrail rule failed, skipping")
			continue
		}
		current = next
		notes = append(notes, ruleNotes...)
	}

	return current, TruncateNotes(strings.Join(notes, " | "))
}

// TriggeredConstraints dry-runs the generic rule conditions and returns one
// human-readable constraint per triggered rule. The oracle prompt embeds these
// so the model sees the same evidence limits the validator will enforce.
func (e *Engine) TriggeredConstraints(ctx *Context) []string {
	var out []string
	for _, rule := range e.rules {
		g, ok := rule.(*genericRule)
		if !ok {
			continue
		}
		hit, err := g.triggered(ctx)
		if err != nil || !hit {
			continue
		}
		out = append(out, g.constraint())
	}
	return out
}

// TruncateNotes bounds a notes string to the engine's maximum length.
func TruncateNotes(s string) string {
	if len(s) > maxNotesLength {
		return s[:maxNotesLength]
	}
	return s
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
