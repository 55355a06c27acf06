package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/types"
)

func newOfflineEngine(rules []types.EvidenceRule) *Engine {
	return NewEngine(nil, rules)
}

func TestScore_SkillsRatioWithEmptyExperience(t *testing.T) {
	req := &types.JobRequirement{
		Skills: []string{"Python", "Docker"},
		Scoring: map[string]types.ScoringBlock{
			"skills": {Weight: 30},
		},
	}
	cand := &types.CandidateProfile{Skills: []string{"Python"}}

	result := newOfflineEngine(nil).Score(context.Background(), req, cand)

	assert.Equal(t, 50, result.SkillsScore)

	// No experience entries: the evidence floor forces the dependent
	// categories to zero.
	assert.Equal(t, 0, result.ExperienceScore)
	assert.Equal(t, 0, result.RelevantExperienceScore)
	assert.Equal(t, 0, result.ResponsibilitiesScore)

	// Final is recomputed strictly from the post-guardrail map.
	assert.Equal(t, FinalScore(result.ScoreMap()), result.FinalScore)
	assert.Equal(t, 15, result.FinalScore)
}

func TestScore_MatchedItemsPartition(t *testing.T) {
	req := &types.JobRequirement{
		Skills: []string{"Go", "Terraform"},
	}
	cand := &types.CandidateProfile{Skills: []string{"Go"}}

	result := newOfflineEngine(nil).Score(context.Background(), req, cand)

	skills := result.MatchedItems["skills"]
	assert.Equal(t, []string{"Go"}, skills.Matched)
	assert.Equal(t, []string{"Terraform"}, skills.Missing)
	assert.Equal(t, 1, result.Details.SkillsMatched)
	assert.Equal(t, 2, result.Details.JDSkillCount)
}

func TestScore_ExperienceFromTimeline(t *testing.T) {
	req := &types.JobRequirement{
		Experience: "3-8 years",
	}
	cand := &types.CandidateProfile{
		Skills: []string{"Go"},
		Experience: []types.ExperienceEntry{
			{Role: "Engineer", StartDate: "2019-01", EndDate: "2022-01"},
		},
	}

	result := newOfflineEngine(nil).Score(context.Background(), req, cand)

	assert.Equal(t, 100, result.ExperienceScore)
	assert.InDelta(t, 3.0, result.Details.TotalExperienceYears, 0.02)
	require.NotNil(t, result.ExperienceRange.Min)
	assert.Equal(t, 3.0, *result.ExperienceRange.Min)
}

func TestScore_DeclaredYearsFallback(t *testing.T) {
	req := &types.JobRequirement{Experience: "2+ years"}
	cand := &types.CandidateProfile{
		Experience: []types.ExperienceEntry{
			{Role: "Engineer", StartDate: "unknown", EndDate: "unknown"},
		},
		TotalExperienceYears: 4,
	}

	result := newOfflineEngine(nil).Score(context.Background(), req, cand)

	assert.Equal(t, 100, result.ExperienceScore)
	assert.Equal(t, 4.0, result.Details.TotalExperienceYears)
}

func TestScore_QualificationSubstring(t *testing.T) {
	req := &types.JobRequirement{Qualification: "computer science"}
	cand := &types.CandidateProfile{
		Education: []types.Education{
			{Degree: "B.Tech in Computer Science", Institution: "State University"},
		},
	}

	result := newOfflineEngine(nil).Score(context.Background(), req, cand)

	assert.Equal(t, 100, result.QualificationScore)
}

func TestScore_QualificationMissing(t *testing.T) {
	req := &types.JobRequirement{Qualification: "computer science"}
	cand := &types.CandidateProfile{
		Education: []types.Education{{Degree: "BA in History"}},
	}

	result := newOfflineEngine(nil).Score(context.Background(), req, cand)

	assert.Equal(t, 0, result.QualificationScore)
}

func TestScore_RelevantExperienceBuckets(t *testing.T) {
	req := &types.JobRequirement{
		Skills: []string{"Python", "Go"},
		Scoring: map[string]types.ScoringBlock{
			"relevant_experience": {Weight: 10, Criteria: map[string]float64{
				">=4": 100,
				"2-4": 70,
				"<2":  30,
			}},
		},
	}
	cand := &types.CandidateProfile{
		Skills: []string{"Python", "Go"},
		Experience: []types.ExperienceEntry{
			{Role: "Engineer", StartDate: "2020-01", EndDate: "2023-01"},
		},
		RelevantExperienceMap: map[string]float64{"python": 6, "go": 2},
	}

	result := newOfflineEngine(nil).Score(context.Background(), req, cand)

	// Average of 6 and 2 is 4.0, which lands in the ">=4" bucket.
	assert.Equal(t, 4.0, result.Details.AvgRelevantYearsPerSkill)
	assert.Equal(t, 100, result.RelevantExperienceScore)
}

func TestScore_SalaryPreferredCTC(t *testing.T) {
	expected := 12.0
	req := &types.JobRequirement{
		Scoring: map[string]types.ScoringBlock{
			"salary": {Weight: 2, Criteria: map[string]float64{
				"<10":   100,
				"10-15": 70,
				">15":   20,
			}},
		},
	}
	cand := &types.CandidateProfile{
		Skills: []string{"Go"},
		Salary: &types.Salary{ExpectedCTCLPA: &expected},
	}

	result := newOfflineEngine(nil).Score(context.Background(), req, cand)

	assert.Equal(t, 70, result.SalaryScore)
}

func TestScore_SalaryUndisclosed(t *testing.T) {
	req := &types.JobRequirement{
		Scoring: map[string]types.ScoringBlock{
			"salary": {Weight: 2, Criteria: map[string]float64{"<10": 100}},
		},
	}
	cand := &types.CandidateProfile{Skills: []string{"Go"}}

	result := newOfflineEngine(nil).Score(context.Background(), req, cand)

	assert.Equal(t, 0, result.SalaryScore)
}

func TestScore_GenericRuleCapsCategory(t *testing.T) {
	req := &types.JobRequirement{
		Skills:     []string{"Go"},
		Experience: "1+ years",
	}
	cand := &types.CandidateProfile{
		Skills: []string{"Go"},
		Experience: []types.ExperienceEntry{
			{Role: "Engineer", StartDate: "2020-01", EndDate: "2024-01"},
		},
	}
	rules := []types.EvidenceRule{{
		ID:          "summary_missing_cap",
		Description: "No summary to corroborate claims",
		Condition:   types.RuleCondition{Field: "resume.summary", Operator: types.OpEmpty},
		Action:      types.RuleAction{Target: types.KeyExperienceScore, Operation: types.ActionCap, Value: 40},
	}}

	result := newOfflineEngine(rules).Score(context.Background(), req, cand)

	assert.Equal(t, 40, result.ExperienceScore)
	assert.Contains(t, result.Notes, "summary_missing_cap")
	assert.Equal(t, FinalScore(result.ScoreMap()), result.FinalScore)
}

func TestScore_ProjectsKeywordRatio(t *testing.T) {
	req := &types.JobRequirement{
		Projects: []string{"inventory dashboard"},
	}
	cand := &types.CandidateProfile{
		Skills: []string{"Go"},
		Projects: []types.Project{
			{Name: "Warehouse inventory tracker", Description: "Tracks stock levels"},
		},
	}

	result := newOfflineEngine(nil).Score(context.Background(), req, cand)

	// Keyword "inventory" matches, "dashboard" does not.
	assert.Equal(t, 50, result.ProjectsScore)
	assert.Equal(t, []string{"inventory"}, result.MatchedItems["projects"].Matched)
	assert.Equal(t, []string{"dashboard"}, result.MatchedItems["projects"].Missing)
}

func TestScore_AllScoresWithinRange(t *testing.T) {
	req := &types.JobRequirement{
		Skills:       []string{"Go", "Python", "Rust"},
		Technologies: []string{"Kafka"},
		Tools:        []string{"Docker"},
		Experience:   "5+ years",
	}
	cand := &types.CandidateProfile{
		Skills: []string{"Go"},
		Experience: []types.ExperienceEntry{
			{Role: "Engineer", StartDate: "2023-01", EndDate: "2024-01"},
		},
	}

	result := newOfflineEngine(nil).Score(context.Background(), req, cand)

	for key, score := range result.ScoreMap() {
		assert.GreaterOrEqual(t, score, 0, key)
		assert.LessOrEqual(t, score, 100, key)
	}
	assert.GreaterOrEqual(t, result.FinalScore, 0)
	assert.LessOrEqual(t, result.FinalScore, 100)
}
