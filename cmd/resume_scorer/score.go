package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against a job requirement",
	Long:  "Computes the ten category scores, applies evidence guardrails and writes the aggregated MatchResult JSON.",
	RunE:  runScore,
}

var (
	scoreJD         string
	scoreResume     string
	scoreRules      string
	scoreOut        string
	scoreNoSemantic bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJD, "jd", "j", "", "Path to JobRequirement JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to CandidateProfile JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreRules, "rules", "", "Path to evidence rule set JSON file")
	scoreCmd.Flags().StringVarP(&scoreOut, "out", "o", "", "Path to output MatchResult JSON file (default stdout)")
	scoreCmd.Flags().BoolVar(&scoreNoSemantic, "no-semantic", false, "Disable the semantic fallback matcher")

	if err := scoreCmd.MarkFlagRequired("jd"); err != nil {
		panic(fmt.Sprintf("failed to mark jd flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	if scoreRules == "" {
		scoreRules = fileCfg.Rules
	}

	req, err := loadJobRequirement(scoreJD)
	if err != nil {
		return err
	}
	cand, err := loadCandidateProfile(scoreResume)
	if err != nil {
		return err
	}
	rules, err := loadOptionalRules(scoreRules)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	embedder := sharedEmbedder(ctx, scoreNoSemantic || fileCfg.NoSemantic)

	engine := scoring.NewEngine(embedder, rules)
	result := engine.Score(ctx, req, cand)

	if flagVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobRequirement(req)
		printer.PrintMatchResult(result)
		printer.PrintMatchedItems(result)
		printer.PrintNotes(result)
	}

	if err := writeResult(scoreOut, result); err != nil {
		return err
	}
	if scoreOut != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Final score %d written to %s\n", result.FinalScore, scoreOut)
	}
	return nil
}
