package guardrails

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/types"
)

var validate = validator.New()

// LoadRules reads an evidence rule set from a JSON file and validates it both
// structurally (JSON Schema) and semantically (field tags). A bad rule file
// is a configuration error surfaced to the caller; it never silently yields a
// partial rule set.
func LoadRules(path string) ([]types.EvidenceRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set %s: %w", path, err)
	}
	return ParseRules(data)
}

// ParseRules validates and decodes an evidence rule set document.
func ParseRules(data []byte) ([]types.EvidenceRule, error) {
	if err := schemas.ValidateRuleSet(data); err != nil {
		return nil, fmt.Errorf("rule set schema: %w", err)
	}

	var rules []types.EvidenceRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("decode rule set: %w", err)
	}

	for i, rule := range rules {
		if err := validate.Struct(rule); err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, rule.ID, err)
		}
	}
	return rules, nil
}
