package guardrails

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/timeline"
	"github.com/jonathan/resume-scorer/internal/types"
)

// genericRule adapts one externally configured evidence rule to the Rule
// interface: resolve the condition's field path, evaluate its operator, and
// on trigger apply the action to the target score.
type genericRule struct {
	rule types.EvidenceRule
}

func (g *genericRule) Name() string { return g.rule.ID }

func (g *genericRule) Apply(scores types.ScoreMap, ctx *Context) (types.ScoreMap, []string, error) {
	hit, err := g.triggered(ctx)
	if err != nil {
		return scores, nil, err
	}
	if !hit {
		return scores, nil, nil
	}

	target := g.rule.Action.Target
	before, ok := scores[target]
	if !ok {
		return scores, nil, fmt.Errorf("unknown target score %q", target)
	}

	after := before
	switch g.rule.Action.Operation {
	case types.ActionCap:
		if limit := int(g.rule.Action.Value); before > limit {
			after = limit
		}
	case types.ActionMultiply:
		after = int(float64(before) * g.rule.Action.Value)
	case types.ActionSet:
		after = int(g.rule.Action.Value)
	default:
		return scores, nil, fmt.Errorf("unknown operation %q", g.rule.Action.Operation)
	}

	after = clampScore(after)
	if after == before {
		return scores, nil, nil
	}

	scores[target] = after
	note := fmt.Sprintf("[%s] %s: %d -> %d", g.rule.ID, target, before, after)
	return scores, []string{note}, nil
}

func (g *genericRule) triggered(ctx *Context) (bool, error) {
	if ctx == nil || ctx.Resume == nil {
		return false, nil
	}
	value, err := resolveField(ctx, g.rule.Condition.Field)
	if err != nil {
		return false, err
	}
	op, ok := operators[g.rule.Condition.Operator]
	if !ok {
		return false, fmt.Errorf("unknown operator %q", g.rule.Condition.Operator)
	}
	return op(value, g.rule.Condition, ctx)
}

// constraint renders the rule as a one-line limit for the oracle prompt.
func (g *genericRule) constraint() string {
	desc := g.rule.Description
	if desc == "" {
		desc = g.rule.ID
	}
	return fmt.Sprintf("%s: %s %s at %.0f", desc,
		g.rule.Action.Operation, g.rule.Action.Target, g.rule.Action.Value)
}

// fieldKind tags the shape a dotted path resolved to.
type fieldKind int

const (
	kindText fieldKind = iota
	kindList
	kindEntries
)

type fieldValue struct {
	kind    fieldKind
	text    string
	items   []string
	entries []types.ExperienceEntry
}

// resolveField maps a dotted path onto the scoring context. The supported
// paths form a closed set; anything else is a rule configuration fault.
func resolveField(ctx *Context, path string) (fieldValue, error) {
	switch path {
	case "resume.skills":
		return fieldValue{kind: kindList, items: ctx.Resume.Skills}, nil
	case "resume.certificates":
		return fieldValue{kind: kindList, items: ctx.Resume.Certificates}, nil
	case "resume.summary":
		return fieldValue{kind: kindText, text: ctx.Resume.Summary}, nil
	case "resume.experience":
		return fieldValue{kind: kindEntries, entries: ctx.Resume.Experience}, nil
	case "resume.projects":
		items := make([]string, 0, len(ctx.Resume.Projects))
		for _, p := range ctx.Resume.Projects {
			items = append(items, strings.TrimSpace(p.Name+" "+p.Description))
		}
		return fieldValue{kind: kindList, items: items}, nil
	default:
		return fieldValue{}, fmt.Errorf("unsupported field path %q", path)
	}
}

type operatorFunc func(v fieldValue, cond types.RuleCondition, ctx *Context) (bool, error)

var operators = map[string]operatorFunc{
	types.OpEmpty:                opEmpty,
	types.OpContainsKeywordRatio: opContainsKeywordRatio,
	types.OpAvgDurationMonthsLT:  opAvgDurationMonthsLT,
}

func opEmpty(v fieldValue, _ types.RuleCondition, _ *Context) (bool, error) {
	switch v.kind {
	case kindText:
		return strings.TrimSpace(v.text) == "", nil
	case kindEntries:
		return len(v.entries) == 0, nil
	default:
		return len(v.items) == 0, nil
	}
}

// opContainsKeywordRatio triggers when the fraction of list items mentioning
// the keyword reaches the threshold. Experience entries are matched on their
// combined role, company and description text.
func opContainsKeywordRatio(v fieldValue, cond types.RuleCondition, _ *Context) (bool, error) {
	keyword := strings.ToLower(strings.TrimSpace(cond.Keyword))
	if keyword == "" {
		return false, fmt.Errorf("contains_keyword_ratio requires a keyword")
	}

	var items []string
	switch v.kind {
	case kindList:
		items = v.items
	case kindEntries:
		for _, e := range v.entries {
			items = append(items, e.Role+" "+e.Company+" "+strings.Join(e.Description, " "))
		}
	case kindText:
		items = []string{v.text}
	}
	if len(items) == 0 {
		return false, nil
	}

	hits := 0
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), keyword) {
			hits++
		}
	}
	ratio := float64(hits) / float64(len(items))
	return ratio >= cond.Threshold, nil
}

// opAvgDurationMonthsLT triggers when the average tenure, in months, falls
// below the configured value. Every entry counts toward the average; entries
// whose dates do not parse contribute zero months and drag it down.
func opAvgDurationMonthsLT(v fieldValue, cond types.RuleCondition, ctx *Context) (bool, error) {
	if v.kind != kindEntries {
		return false, fmt.Errorf("avg_duration_months_lt requires an experience field, got %q", cond.Field)
	}

	totalMonths := 0.0
	for _, e := range v.entries {
		if years := timeline.DurationYears(e.StartDate, e.EndDate, ctx.Now); years > 0 {
			totalMonths += years * 12
		}
	}

	avg := 0.0
	if len(v.entries) > 0 {
		avg = totalMonths / float64(len(v.entries))
	}
	return avg < cond.Value, nil
}
