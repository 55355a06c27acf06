package oracle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/guardrails"
	"github.com/jonathan/resume-scorer/internal/types"
)

// stubClient replays canned oracle replies and records prompts.
type stubClient struct {
	replies []string
	errs    []error
	prompts []string
	calls   int
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	i := s.calls
	s.calls++
	s.prompts = append(s.prompts, prompt)
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	reply := ""
	if i < len(s.replies) {
		reply = s.replies[i]
	}
	return reply, err
}

func (s *stubClient) Close() error { return nil }

func TestScorerScore_SanitizesReply(t *testing.T) {
	client := &stubClient{replies: []string{
		"```json\n{\"skills_score\": 150, \"experience_score\": 60, \"final_score\": 1, \"notes\": \"solid\"}\n```",
	}}
	scorer := NewScorer(client, guardrails.NewEngine(nil))

	req := &types.JobRequirement{Skills: []string{"Go"}}
	cand := evidencedProfile()

	result, err := scorer.Score(context.Background(), req, cand)
	require.NoError(t, err)

	assert.Equal(t, 100, result.SkillsScore)
	assert.Equal(t, 60, result.ExperienceScore)
	// 100*0.30 + 60*0.25 = 45, never the oracle's claimed 1.
	assert.Equal(t, 45, result.FinalScore)
	assert.Contains(t, result.Notes, "solid")
}

func TestScorerScore_PromptCarriesTriggeredConstraints(t *testing.T) {
	client := &stubClient{replies: []string{`{"skills_score": 10}`}}
	rules := []types.EvidenceRule{{
		ID:          "summary_missing",
		Description: "No summary present",
		Condition:   types.RuleCondition{Field: "resume.summary", Operator: types.OpEmpty},
		Action:      types.RuleAction{Target: types.KeyProjectsScore, Operation: types.ActionCap, Value: 50},
	}}
	scorer := NewScorer(client, guardrails.NewEngine(rules))

	_, err := scorer.Score(context.Background(), &types.JobRequirement{}, evidencedProfile())
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "No summary present")
}

func TestParseScoreDocument_ToleratesProse(t *testing.T) {
	raw, err := parseScoreDocument(`Here you go: {"skills_score": 40} hope that helps`)
	require.NoError(t, err)

	assert.Equal(t, float64(40), raw["skills_score"])
}

func TestParseScoreDocument_MarkdownFences(t *testing.T) {
	raw, err := parseScoreDocument("```json\n{\"skills_score\": 12}\n```")
	require.NoError(t, err)

	assert.Equal(t, float64(12), raw["skills_score"])
}

func TestParseScoreDocument_NoJSON(t *testing.T) {
	_, err := parseScoreDocument("I cannot score this resume.")
	assert.Error(t, err)
}
