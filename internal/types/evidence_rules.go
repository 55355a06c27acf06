package types

// Evidence rule operators and actions form a closed set; anything outside it
// fails rule-set validation up front rather than at apply time.
const (
	OpEmpty                = "empty"
	OpContainsKeywordRatio = "contains_keyword_ratio"
	OpAvgDurationMonthsLT  = "avg_duration_months_lt"

	ActionCap      = "cap"
	ActionMultiply = "multiply"
	ActionSet      = "set"
)

// EvidenceRule is one externally configured guardrail: when Condition holds
// against the scoring context, Action adjusts a single category score.
type EvidenceRule struct {
	ID          string        `json:"id" validate:"required"`
	Description string        `json:"description"`
	Condition   RuleCondition `json:"condition" validate:"required"`
	Action      RuleAction    `json:"action" validate:"required"`
}

// RuleCondition selects a dotted field path (e.g. "resume.experience") and an
// operator over it. Keyword/Threshold apply to contains_keyword_ratio; Value
// applies to avg_duration_months_lt.
type RuleCondition struct {
	Field     string  `json:"field" validate:"required"`
	Operator  string  `json:"operator" validate:"required,oneof=empty contains_keyword_ratio avg_duration_months_lt"`
	Keyword   string  `json:"keyword,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Value     float64 `json:"value,omitempty"`
}

// RuleAction adjusts the target category score when the condition triggers.
type RuleAction struct {
	Target    string  `json:"target" validate:"required"`
	Operation string  `json:"operation" validate:"required,oneof=cap multiply set"`
	Value     float64 `json:"value"`
}
