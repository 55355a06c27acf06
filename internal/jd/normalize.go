// Package jd normalizes raw job requirements into the canonical scoring form:
// deduplicated requirement lists, a parsed experience range, structurally
// complete scoring blocks, 0-100 criteria and weights summing to 100.
package jd

import (
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// defaultWeights is the importance distribution applied when a JD carries no
// usable weights at all. It mirrors the aggregator weight vector times 100.
var defaultWeights = map[string]int{
	"skills":              30,
	"experience":          25,
	"relevant_experience": 10,
	"projects":            10,
	"certificates":        5,
	"tools":               5,
	"technologies":        5,
	"qualification":       5,
	"responsibilities":    3,
	"salary":              2,
}

// Normalize sanitizes a job requirement in place and returns it. Scoring
// always completes on the result: missing lists become empty, every category
// gets a scoring block, criteria are scaled to 0-100 and weights to a 100
// total. The free-text experience field is parsed into a range unless the JD
// arrived pre-normalized with one.
func Normalize(jd *types.JobRequirement) *types.JobRequirement {
	jd.Skills = dedupeList(jd.Skills)
	jd.Technologies = dedupeList(jd.Technologies)
	jd.Tools = dedupeList(jd.Tools)
	jd.Certificates = dedupeList(jd.Certificates)
	jd.Responsibilities = dedupeList(jd.Responsibilities)
	jd.Projects = dedupeList(jd.Projects)

	if jd.ExperienceRange.Min == nil && jd.ExperienceRange.Max == nil {
		jd.ExperienceRange = ParseExperienceRange(jd.Experience)
	}

	jd.Scoring = normalizeWeights(scaleAllCriteria(ensureScoringStructure(jd.Scoring)))
	return jd
}

// ensureScoringStructure guarantees every canonical category has a block.
// Missing categories get safe zero-weight blocks.
func ensureScoringStructure(scoring map[string]types.ScoringBlock) map[string]types.ScoringBlock {
	out := make(map[string]types.ScoringBlock, len(types.ScoringCategories))
	for _, category := range types.ScoringCategories {
		block, ok := scoring[category]
		if !ok {
			out[category] = types.ScoringBlock{Weight: 0, Criteria: map[string]float64{}}
			continue
		}
		if block.Criteria == nil {
			block.Criteria = map[string]float64{}
		}
		if block.Weight < 0 {
			block.Weight = 0
		}
		out[category] = block
	}
	return out
}

// scaleAllCriteria rescales each category's criteria map to the 0-100 range.
func scaleAllCriteria(scoring map[string]types.ScoringBlock) map[string]types.ScoringBlock {
	for category, block := range scoring {
		block.Criteria = ScaleCriteria(block.Criteria)
		scoring[category] = block
	}
	return scoring
}

// ScaleCriteria maps bucket criteria onto 0-100. Values already on a 0-100
// scale are clamped as-is; smaller scales (e.g. 0-10) are stretched
// proportionally so the highest bucket lands on 100.
func ScaleCriteria(criteria map[string]float64) map[string]float64 {
	if len(criteria) == 0 {
		return map[string]float64{}
	}

	maxVal := 0.0
	for _, v := range criteria {
		if v > maxVal {
			maxVal = v
		}
	}

	out := make(map[string]float64, len(criteria))
	if maxVal <= 0 {
		for k := range criteria {
			out[k] = 0
		}
		return out
	}

	scale := 1.0
	if maxVal < 100 {
		scale = 100.0 / maxVal
	}
	for k, v := range criteria {
		scaled := math.Round(v * scale)
		out[k] = math.Max(0, math.Min(100, scaled))
	}
	return out
}

// normalizeWeights makes the category weights sum to 100. A total of zero
// falls back to the default distribution; any other total is rescaled
// proportionally.
func normalizeWeights(scoring map[string]types.ScoringBlock) map[string]types.ScoringBlock {
	total := 0
	for _, block := range scoring {
		total += block.Weight
	}

	if total == 100 {
		return scoring
	}

	if total == 0 {
		for category, weight := range defaultWeights {
			block := scoring[category]
			block.Weight = weight
			scoring[category] = block
		}
		return scoring
	}

	for category, block := range scoring {
		block.Weight = int(math.Round(float64(block.Weight) / float64(total) * 100))
		scoring[category] = block
	}
	return scoring
}

// dedupeList trims entries and removes blanks and duplicates, preserving
// first-seen order.
func dedupeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		clean := strings.TrimSpace(item)
		if clean == "" {
			continue
		}
		key := strings.ToLower(clean)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, clean)
	}
	return out
}
