// Package oracle scores resumes through an external LLM and sanitizes the
// replies so oracle-provided scores obey the same invariants as locally
// computed ones: clamped integers, bounded notes, guardrails applied, final
// score always recomputed.
package oracle

import (
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/resume-scorer/internal/guardrails"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

// maxOracleNotes bounds the justification string taken from the oracle,
// leaving headroom for guardrail notes under the overall notes limit.
const maxOracleNotes = 240

// Sanitize coerces a raw oracle score document into a MatchResult. Every
// expected category field becomes an integer clamped to [0,100], anything
// missing or non-numeric defaults to 0, the guardrail chain runs on the
// coerced map and the final score is recomputed from scratch. The oracle's
// own final_score claim is never read.
func Sanitize(raw map[string]any, guard *guardrails.Engine, gctx *guardrails.Context) *types.MatchResult {
	scores := types.ScoreMap{}
	for _, key := range types.ScoreKeys {
		scores[key] = coerceScore(raw[key])
	}
	notes := coerceNotes(raw["notes"])

	scores, guardNotes := guard.Apply(scores, gctx)
	if guardNotes != "" {
		if notes != "" {
			notes += "; "
		}
		notes += guardNotes
	}

	result := &types.MatchResult{
		Notes:        guardrails.TruncateNotes(notes),
		MatchedItems: map[string]types.CategoryMatches{},
	}
	result.ApplyScoreMap(scores)
	result.FinalScore = scoring.FinalScore(scores)
	if gctx != nil && gctx.JD != nil {
		result.ExperienceRange = gctx.JD.ExperienceRange
	}
	return result
}

// coerceScore accepts the numeric shapes an LLM actually produces: JSON
// numbers, stringified numbers, or garbage, which defaults to 0.
func coerceScore(v any) int {
	switch n := v.(type) {
	case float64:
		return scoring.Clamp(int(math.Round(n)))
	case int:
		return scoring.Clamp(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return scoring.Clamp(int(math.Round(f)))
	default:
		return 0
	}
}

func coerceNotes(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	if len(s) > maxOracleNotes {
		s = s[:maxOracleNotes]
	}
	return s
}
