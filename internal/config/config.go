// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-scorer/internal/llm"
)

var validate = validator.New()

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	JD         string `json:"jd,omitempty"`          // Path to job requirement JSON
	Resume     string `json:"resume,omitempty"`      // Path to candidate profile JSON
	ResumesDir string `json:"resumes_dir,omitempty"` // Directory of candidate profiles for batch runs
	Rules      string `json:"rules,omitempty"`       // Path to evidence rule set JSON
	Out        string `json:"out,omitempty"`         // Output path (file or directory for batch)

	// Models
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	ScoringModel   string `json:"scoring_model,omitempty"`   // Oracle scoring model name
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name

	// Behavior
	MaxParallel int    `json:"max_parallel,omitempty" validate:"gte=0"` // Batch worker bound; 0 means unbounded
	NoSemantic  bool   `json:"no_semantic,omitempty"`                   // Disable the semantic fallback matcher
	Verbose     bool   `json:"verbose,omitempty"`                       // Print detailed debug information
	LogLevel    string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogPretty   bool   `json:"log_pretty,omitempty"` // Console log format instead of JSON
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate mutually exclusive fields
	if c.Resume != "" && c.ResumesDir != "" {
		return fmt.Errorf("config error: 'resume' and 'resumes_dir' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	for name, path := range map[string]string{
		"jd":     c.JD,
		"resume": c.Resume,
		"rules":  c.Rules,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.ResumesDir == "" {
		result.ResumesDir = defaults.ResumesDir
	}
	if result.Rules == "" {
		result.Rules = defaults.Rules
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ScoringModel == "" {
		result.ScoringModel = defaults.ScoringModel
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Int fields: use default if zero
	if result.MaxParallel == 0 {
		result.MaxParallel = defaults.MaxParallel
	}

	// Model names always have a usable fallback
	if result.ScoringModel == "" {
		result.ScoringModel = llm.DefaultScoringModel
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = llm.DefaultEmbeddingModel
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
