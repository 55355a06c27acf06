// Package scoring computes the ten category scores and the weighted aggregate
// for a candidate profile against a job requirement.
package scoring

import (
	"math"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Weights is the fixed category weight vector. It sums to 1.00 and is the
// single source of truth for the aggregate: externally supplied final scores
// are discarded, never merged.
var Weights = map[string]float64{
	types.KeySkillsScore:             0.30,
	types.KeyExperienceScore:         0.25,
	types.KeyRelevantExperienceScore: 0.10,
	types.KeyProjectsScore:           0.10,
	types.KeyCertificatesScore:       0.05,
	types.KeyToolsScore:              0.05,
	types.KeyTechnologiesScore:       0.05,
	types.KeyQualificationScore:      0.05,
	types.KeyResponsibilitiesScore:   0.03,
	types.KeySalaryScore:             0.02,
}

// FinalScore computes the weighted sum of the category scores, rounded to the
// nearest integer. Keys absent from the map contribute zero. The computation
// is pure and idempotent.
func FinalScore(scores types.ScoreMap) int {
	total := 0.0
	for key, weight := range Weights {
		total += float64(scores[key]) * weight
	}
	return int(math.Round(total))
}

// Clamp bounds a score to [0, 100].
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ratioScore is the shared formula for count-based categories:
// round(100 * matched / total), 0 when the JD lists nothing.
func ratioScore(matched, total int) int {
	if total <= 0 {
		return 0
	}
	return Clamp(int(math.Round(100 * float64(matched) / float64(total))))
}
