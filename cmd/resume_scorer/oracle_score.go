package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/guardrails"
	"github.com/jonathan/resume-scorer/internal/jd"
	"github.com/jonathan/resume-scorer/internal/llm"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/oracle"
	"github.com/jonathan/resume-scorer/internal/profile"
	"github.com/jonathan/resume-scorer/internal/types"
)

var oracleScoreCmd = &cobra.Command{
	Use:   "oracle-score",
	Short: "Score one resume through the LLM oracle",
	Long:  "Asks the LLM oracle to score the resume, then sanitizes its reply: scores clamped to 0-100 integers, guardrails applied, final score recomputed locally. With --from, sanitizes a previously captured oracle reply instead of calling the API.",
	RunE:  runOracleScore,
}

var (
	oracleJD     string
	oracleResume string
	oracleRules  string
	oracleOut    string
	oracleModel  string
	oracleFrom   string
)

func init() {
	oracleScoreCmd.Flags().StringVarP(&oracleJD, "jd", "j", "", "Path to JobRequirement JSON file (required)")
	oracleScoreCmd.Flags().StringVarP(&oracleResume, "resume", "r", "", "Path to CandidateProfile JSON file (required)")
	oracleScoreCmd.Flags().StringVar(&oracleRules, "rules", "", "Path to evidence rule set JSON file")
	oracleScoreCmd.Flags().StringVarP(&oracleOut, "out", "o", "", "Path to output MatchResult JSON file (default stdout)")
	oracleScoreCmd.Flags().StringVar(&oracleModel, "model", "", "Oracle model name (default "+llm.DefaultScoringModel+")")
	oracleScoreCmd.Flags().StringVar(&oracleFrom, "from", "", "Path to a raw oracle reply JSON to sanitize offline")

	if err := oracleScoreCmd.MarkFlagRequired("jd"); err != nil {
		panic(fmt.Sprintf("failed to mark jd flag as required: %v", err))
	}
	if err := oracleScoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(oracleScoreCmd)
}

func runOracleScore(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	if oracleRules == "" {
		oracleRules = fileCfg.Rules
	}
	if oracleModel == "" {
		oracleModel = fileCfg.ScoringModel
	}
	if oracleModel == "" {
		oracleModel = llm.DefaultScoringModel
	}

	req, err := loadJobRequirement(oracleJD)
	if err != nil {
		return err
	}
	cand, err := loadCandidateProfile(oracleResume)
	if err != nil {
		return err
	}
	rules, err := loadOptionalRules(oracleRules)
	if err != nil {
		return err
	}
	guard := guardrails.NewEngine(rules)

	ctx := cmd.Context()

	var result *types.MatchResult
	if oracleFrom != "" {
		result, err = sanitizeFromFile(oracleFrom, req, cand, guard)
		if err != nil {
			return err
		}
	} else {
		apiKey := fileCfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("no API key: set GEMINI_API_KEY or api_key in the config file")
		}

		client, err := llm.NewGeminiClient(ctx, apiKey, oracleModel)
		if err != nil {
			return fmt.Errorf("failed to create oracle client: %w", err)
		}
		defer func() { _ = client.Close() }()

		scorer := oracle.NewScorer(client, guard)
		result, err = scorer.Score(ctx, req, cand)
		if err != nil {
			return err
		}
	}

	if flagVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMatchResult(result)
		printer.PrintNotes(result)
	}

	if err := writeResult(oracleOut, result); err != nil {
		return err
	}
	if oracleOut != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Final score %d written to %s\n", result.FinalScore, oracleOut)
	}
	return nil
}

// sanitizeFromFile runs the score validator over a captured oracle reply
// without any network call.
func sanitizeFromFile(path string, req *types.JobRequirement, cand *types.CandidateProfile, guard *guardrails.Engine) (*types.MatchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read oracle reply %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal oracle reply JSON: %w", err)
	}

	jd.Normalize(req)
	profile.Normalize(cand)
	return oracle.Sanitize(raw, guard, guardrails.NewContext(req, cand)), nil
}
