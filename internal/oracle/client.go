package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-scorer/internal/guardrails"
	"github.com/jonathan/resume-scorer/internal/jd"
	"github.com/jonathan/resume-scorer/internal/llm"
	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/profile"
	"github.com/jonathan/resume-scorer/internal/prompts"
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	defaultRetries = 3
	retryBackoff   = 2 * time.Second
)

// Scorer asks an LLM oracle to score a resume and funnels the reply through
// Sanitize. The guardrail engine is shared with the local scoring path so
// both provenances enforce the same evidence rules.
type Scorer struct {
	client  llm.Client
	guard   *guardrails.Engine
	retries int
}

// NewScorer builds an oracle scorer around an LLM client.
func NewScorer(client llm.Client, guard *guardrails.Engine) *Scorer {
	return &Scorer{client: client, guard: guard, retries: defaultRetries}
}

// Score normalizes the inputs, prompts the oracle and sanitizes its reply.
// Transient oracle failures are retried with a fixed backoff; only after all
// attempts fail does the error surface to the caller.
func (s *Scorer) Score(ctx context.Context, req *types.JobRequirement, cand *types.CandidateProfile) (*types.MatchResult, error) {
	jd.Normalize(req)
	profile.Normalize(cand)

	gctx := guardrails.NewContext(req, cand)
	prompt, err := s.buildPrompt(req, cand, gctx)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= s.retries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryBackoff):
			}
		}

		text, err := s.client.GenerateJSON(ctx, prompt)
		if err != nil {
			lastErr = err
			logger.Warn().Err(err).Int("attempt", attempt).Msg("oracle call failed")
			continue
		}

		raw, err := parseScoreDocument(text)
		if err != nil {
			lastErr = err
			logger.Warn().Err(err).Int("attempt", attempt).Msg("oracle reply unparseable")
			continue
		}

		return Sanitize(raw, s.guard, gctx), nil
	}

	return nil, fmt.Errorf("oracle scoring failed after %d attempts: %w", s.retries, lastErr)
}

func (s *Scorer) buildPrompt(req *types.JobRequirement, cand *types.CandidateProfile, gctx *guardrails.Context) (string, error) {
	jdJSON, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode job requirement: %w", err)
	}
	candJSON, err := json.MarshalIndent(cand, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode candidate profile: %w", err)
	}

	constraints := "none"
	if triggered := s.guard.TriggeredConstraints(gctx); len(triggered) > 0 {
		constraints = "- " + strings.Join(triggered, "\n- ")
	}

	template, err := prompts.Get("scoring.json", "oracle-score")
	if err != nil {
		return "", err
	}
	return prompts.Format(template, map[string]string{
		"JobRequirement":   string(jdJSON),
		"CandidateProfile": string(candJSON),
		"Constraints":      constraints,
	}), nil
}

// parseScoreDocument decodes the oracle reply, tolerating markdown fences and
// surrounding prose.
func parseScoreDocument(text string) (map[string]any, error) {
	cleaned := llm.CleanJSONBlock(text)

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err == nil {
		return raw, nil
	}

	extracted := llm.ExtractJSONObject(cleaned)
	if extracted == "" {
		return nil, fmt.Errorf("no JSON object in oracle reply")
	}
	if err := json.Unmarshal([]byte(extracted), &raw); err != nil {
		return nil, fmt.Errorf("decode oracle reply: %w", err)
	}
	return raw, nil
}
