package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/guardrails"
	"github.com/jonathan/resume-scorer/internal/llm"
	"github.com/jonathan/resume-scorer/internal/matching"
	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/types"
)

// loadFileConfig reads the optional --config file. Absent flag yields an
// empty config so flag values stand alone.
func loadFileConfig() (config.Config, error) {
	if flagConfig == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// loadJobRequirement reads and schema-validates a job requirement JSON file.
func loadJobRequirement(path string) (*types.JobRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job requirement %s: %w", path, err)
	}
	if err := schemas.ValidateJobRequirement(data); err != nil {
		return nil, fmt.Errorf("job requirement %s: %w", path, err)
	}

	var req types.JobRequirement
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job requirement JSON: %w", err)
	}
	return &req, nil
}

// loadCandidateProfile reads and schema-validates a candidate profile JSON file.
func loadCandidateProfile(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate profile %s: %w", path, err)
	}
	if err := schemas.ValidateCandidateProfile(data); err != nil {
		return nil, fmt.Errorf("candidate profile %s: %w", path, err)
	}

	var cand types.CandidateProfile
	if err := json.Unmarshal(data, &cand); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate profile JSON: %w", err)
	}
	return &cand, nil
}

// loadOptionalRules loads an evidence rule set when a path is given.
func loadOptionalRules(path string) ([]types.EvidenceRule, error) {
	if path == "" {
		return nil, nil
	}
	return guardrails.LoadRules(path)
}

// sharedEmbedder returns the process-wide embedder, or nil when disabled or
// unavailable. Scoring degrades to phrase matching either way.
func sharedEmbedder(ctx context.Context, disabled bool) matching.Embedder {
	if disabled {
		return nil
	}
	embedder, ok := llm.SharedEmbedder(ctx)
	if !ok {
		return nil
	}
	return embedder
}

// writeResult writes the match result JSON to a file, or stdout when no path
// is given.
func writeResult(path string, result *types.MatchResult) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match result to JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write match result to %s: %w", path, err)
	}
	return nil
}
