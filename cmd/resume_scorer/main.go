// Package main provides the entry point for the resume scorer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "resume_scorer",
	Short: "Guardrailed resume scoring engine",
	Long:  "Scores structured candidate profiles against structured job requirements using hybrid phrase/semantic matching, evidence guardrails and a fixed weighted aggregate.",
}

var (
	flagConfig    string
	flagVerbose   bool
	flagLogLevel  string
	flagLogPretty bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed progress boxes")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagLogPretty, "log-pretty", false, "Console log format instead of JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cobra.OnInitialize(func() {
		logger.Init(logger.Config{Level: flagLogLevel, Pretty: flagLogPretty})
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
