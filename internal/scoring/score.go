package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/guardrails"
	"github.com/jonathan/resume-scorer/internal/jd"
	"github.com/jonathan/resume-scorer/internal/matching"
	"github.com/jonathan/resume-scorer/internal/profile"
	"github.com/jonathan/resume-scorer/internal/timeline"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Engine scores candidate profiles against job requirements. It is stateless
// apart from the shared semantic matcher and is safe for concurrent use.
type Engine struct {
	semantic  *matching.SemanticMatcher
	calc      *timeline.Calculator
	guardrail *guardrails.Engine
}

// NewEngine builds a scoring engine. A nil embedder disables the semantic
// fallback; phrase matching still runs. Generic guardrail rules may be nil.
func NewEngine(embedder matching.Embedder, rules []types.EvidenceRule) *Engine {
	semantic := matching.NewSemanticMatcher(embedder)
	return &Engine{
		semantic:  semantic,
		calc:      timeline.NewCalculator(semantic),
		guardrail: guardrails.NewEngine(rules),
	}
}

// Guardrails exposes the engine's guardrail chain for the oracle validation
// path, so both score provenances converge on the same rules.
func (e *Engine) Guardrails() *guardrails.Engine {
	return e.guardrail
}

// Score computes the full match result for one resume against one JD. Inputs
// are normalized first, so callers may pass raw extracted documents. Scoring
// never fails: missing evidence scores zero and the guardrail chain runs on
// whatever the category scorers produced.
func (e *Engine) Score(ctx context.Context, req *types.JobRequirement, cand *types.CandidateProfile) *types.MatchResult {
	jd.Normalize(req)
	return e.scoreNormalized(ctx, req, cand)
}

// scoreNormalized assumes the JD is already normalized. Batch scoring calls
// it directly so concurrent workers never mutate the shared JD.
func (e *Engine) scoreNormalized(ctx context.Context, req *types.JobRequirement, cand *types.CandidateProfile) *types.MatchResult {
	profile.Normalize(cand)

	corpus := matching.BuildCorpus(cand)
	result := &types.MatchResult{
		MatchedItems:    make(map[string]types.CategoryMatches),
		ExperienceRange: req.ExperienceRange,
	}

	scores := types.ScoreMap{}

	scores[types.KeySkillsScore] = e.listScore(ctx, corpus, req.Skills,
		matching.ThresholdSkills, "skills", result)
	scores[types.KeyTechnologiesScore] = e.listScore(ctx, corpus, req.Technologies,
		matching.ThresholdTechnologies, "technologies", result)
	scores[types.KeyToolsScore] = e.listScore(ctx, corpus, req.Tools,
		matching.ThresholdTools, "tools", result)
	scores[types.KeyCertificatesScore] = e.certificatesScore(ctx, corpus, req, cand, result)
	scores[types.KeyResponsibilitiesScore] = e.listScore(ctx, corpus, req.Responsibilities,
		matching.ThresholdResponsibilities, "responsibilities", result)
	scores[types.KeyProjectsScore] = e.projectsScore(ctx, corpus, req, result)
	scores[types.KeyQualificationScore] = qualificationScore(req.Qualification, cand.Education)

	totalYears := e.calc.TotalYears(ctx, cand.Experience, req.JobTitle)
	if totalYears == 0 && cand.TotalExperienceYears > 0 {
		totalYears = cand.TotalExperienceYears
	}
	scores[types.KeyExperienceScore] = ExperienceScore(totalYears, req.ExperienceRange)

	avgRelevant := averageRelevantYears(req.Skills, cand)
	scores[types.KeyRelevantExperienceScore] = BucketScore(avgRelevant, req.CriteriaFor("relevant_experience"))

	scores[types.KeySalaryScore] = salaryScore(req.CriteriaFor("salary"), cand.Salary)

	scores, guardNotes := e.guardrail.Apply(scores, guardrails.NewContext(req, cand))

	result.ApplyScoreMap(scores)
	result.FinalScore = FinalScore(scores)

	result.Details = types.MatchDetails{
		JDSkillCount:             len(req.Skills),
		SkillsMatched:            len(result.MatchedItems["skills"].Matched),
		JDTechCount:              len(req.Technologies),
		TechMatched:              len(result.MatchedItems["technologies"].Matched),
		ToolsMatched:             len(result.MatchedItems["tools"].Matched),
		ProjectsMatched:          len(result.MatchedItems["projects"].Matched),
		TotalExperienceYears:     totalYears,
		AvgRelevantYearsPerSkill: avgRelevant,
	}
	result.Notes = buildNotes(result, e.semantic.Enabled(), guardNotes)
	return result
}

// listScore runs the hybrid matcher for one count-based category and records
// the matched/missing lists on the result.
func (e *Engine) listScore(ctx context.Context, corpus, targets []string, threshold float64, category string, result *types.MatchResult) int {
	matched, missing := matching.ExtractMatches(corpus, targets)
	if len(missing) > 0 && e.semantic.Enabled() {
		var found []string
		found, missing = e.semantic.CheckMissing(ctx, corpus, missing, threshold)
		matched = append(matched, found...)
	}

	result.MatchedItems[category] = types.CategoryMatches{Matched: matched, Missing: missing}
	return ratioScore(len(matched), len(targets))
}

// certificatesScore matches JD certificates against the dedicated certificate
// list first, then semantically against the whole corpus. Certifications are
// often paraphrased, so the dedicated pass alone under-counts.
func (e *Engine) certificatesScore(ctx context.Context, corpus []string, req *types.JobRequirement, cand *types.CandidateProfile, result *types.MatchResult) int {
	matched, missing := matching.ExtractMatches(cand.Certificates, req.Certificates)
	if len(missing) > 0 && e.semantic.Enabled() {
		var found []string
		found, missing = e.semantic.CheckMissing(ctx, corpus, missing, matching.ThresholdCertificates)
		matched = append(matched, found...)
	}

	result.MatchedItems["certificates"] = types.CategoryMatches{Matched: matched, Missing: missing}
	return ratioScore(len(matched), len(req.Certificates))
}

// projectsScore tokenizes the JD project descriptions into keywords and runs
// the hybrid matcher over those.
func (e *Engine) projectsScore(ctx context.Context, corpus []string, req *types.JobRequirement, result *types.MatchResult) int {
	keywords := matching.ProjectKeywords(req.Projects)
	matched, missing := matching.ExtractMatches(corpus, keywords)
	if len(missing) > 0 && e.semantic.Enabled() {
		var found []string
		found, missing = e.semantic.CheckMissing(ctx, corpus, missing, matching.ThresholdProjects)
		matched = append(matched, found...)
	}

	result.MatchedItems["projects"] = types.CategoryMatches{Matched: matched, Missing: missing}
	return ratioScore(len(matched), len(keywords))
}

// qualificationScore is binary: any degree containing the JD qualification as
// a case-insensitive substring scores full marks.
func qualificationScore(qualification string, education []types.Education) int {
	needle := strings.ToLower(strings.TrimSpace(qualification))
	if needle == "" {
		return 0
	}
	for _, edu := range education {
		if strings.Contains(strings.ToLower(edu.Degree), needle) {
			return 100
		}
	}
	return 0
}

// averageRelevantYears averages the relevant-experience map lookups across
// all JD skills. Skills with no accumulated years drag the average down,
// which is the intended penalty for narrow experience.
func averageRelevantYears(jdSkills []string, cand *types.CandidateProfile) float64 {
	if len(jdSkills) == 0 {
		return 0
	}
	total := 0.0
	for _, skill := range jdSkills {
		total += cand.RelevantYears(skill)
	}
	return math.Round(total/float64(len(jdSkills))*100) / 100
}

// salaryScore buckets the candidate's preferred CTC against the JD salary
// criteria. No disclosed figure scores 0.
func salaryScore(criteria map[string]float64, salary *types.Salary) int {
	value, ok := salary.PreferredCTC()
	if !ok {
		return 0
	}
	return BucketScore(value, criteria)
}

// buildNotes assembles the audit string: headline ratios, semantic
// availability, then guardrail adjustments, bounded to the notes limit.
func buildNotes(result *types.MatchResult, semanticEnabled bool, guardNotes string) string {
	parts := []string{
		fmt.Sprintf("skills %d/%d matched",
			result.Details.SkillsMatched, result.Details.JDSkillCount),
		fmt.Sprintf("experience %.2fy", result.Details.TotalExperienceYears),
	}
	if !semanticEnabled {
		parts = append(parts, "semantic matching unavailable, phrase matching only")
	}
	if guardNotes != "" {
		parts = append(parts, guardNotes)
	}
	return guardrails.TruncateNotes(strings.Join(parts, "; "))
}
