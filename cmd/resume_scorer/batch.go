package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a directory of resumes against one job requirement",
	Long:  "Scores every *.json candidate profile in a directory against the same JD concurrently, writes one MatchResult per input and prints a ranking summary.",
	RunE:  runBatch,
}

var (
	batchJD         string
	batchResumesDir string
	batchRules      string
	batchOutDir     string
	batchParallel   int
	batchNoSemantic bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchJD, "jd", "j", "", "Path to JobRequirement JSON file (required)")
	batchCmd.Flags().StringVarP(&batchResumesDir, "resumes-dir", "d", "", "Directory of CandidateProfile JSON files (required)")
	batchCmd.Flags().StringVar(&batchRules, "rules", "", "Path to evidence rule set JSON file")
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Directory for MatchResult JSON outputs")
	batchCmd.Flags().IntVarP(&batchParallel, "parallel", "p", 4, "Maximum concurrent scorings (0 = unbounded)")
	batchCmd.Flags().BoolVar(&batchNoSemantic, "no-semantic", false, "Disable the semantic fallback matcher")

	if err := batchCmd.MarkFlagRequired("jd"); err != nil {
		panic(fmt.Sprintf("failed to mark jd flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("resumes-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark resumes-dir flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	if batchRules == "" {
		batchRules = fileCfg.Rules
	}

	req, err := loadJobRequirement(batchJD)
	if err != nil {
		return err
	}
	rules, err := loadOptionalRules(batchRules)
	if err != nil {
		return err
	}

	paths, err := filepath.Glob(filepath.Join(batchResumesDir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list resumes in %s: %w", batchResumesDir, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no *.json resumes found in %s", batchResumesDir)
	}
	sort.Strings(paths)

	candidates := make([]*types.CandidateProfile, 0, len(paths))
	names := make([]string, 0, len(paths))
	for _, path := range paths {
		cand, err := loadCandidateProfile(path)
		if err != nil {
			return err
		}
		candidates = append(candidates, cand)
		names = append(names, strings.TrimSuffix(filepath.Base(path), ".json"))
	}

	ctx := cmd.Context()
	embedder := sharedEmbedder(ctx, batchNoSemantic || fileCfg.NoSemantic)

	engine := scoring.NewEngine(embedder, rules)
	results := engine.ScoreBatch(ctx, req, candidates, batchParallel)

	if batchOutDir != "" {
		if err := os.MkdirAll(batchOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", batchOutDir, err)
		}
		for i, result := range results {
			outPath := filepath.Join(batchOutDir, names[i]+".result.json")
			if err := writeResult(outPath, result); err != nil {
				return err
			}
		}
	}

	// Ranking summary, best first
	type ranked struct {
		name  string
		score int
	}
	summary := make([]ranked, len(results))
	for i, result := range results {
		summary[i] = ranked{name: names[i], score: result.FinalScore}
	}
	sort.SliceStable(summary, func(i, j int) bool { return summary[i].score > summary[j].score })

	for i, entry := range summary {
		_, _ = fmt.Fprintf(os.Stdout, "%2d. %-30s %3d\n", i+1, entry.name, entry.score)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Scored %d resumes\n", len(results))

	return nil
}
