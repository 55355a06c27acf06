package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestPrintJobRequirement(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	jd := &types.JobRequirement{
		JobTitle:     "Senior Engineer",
		Experience:   "3-8 years",
		Skills:       []string{"Go", "Kubernetes", "Docker", "Kafka", "Redis", "Terraform"},
		Technologies: []string{"gRPC"},
	}

	p.PrintJobRequirement(jd)
	output := buf.String()

	assert.Contains(t, output, "JOB REQUIREMENT")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "3-8 years")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "gRPC")
}

func TestPrintJobRequirement_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirement(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		SkillsScore:     73,
		ExperienceScore: 100,
		FinalScore:      61,
		Details:         types.MatchDetails{TotalExperienceYears: 4.5},
	}

	p.PrintMatchResult(result)
	output := buf.String()

	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, "skills")
	assert.Contains(t, output, "73")
	assert.Contains(t, output, "FINAL")
	assert.Contains(t, output, "61")
	assert.Contains(t, output, "4.50 years")
}

func TestPrintMatchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchedItems(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		MatchedItems: map[string]types.CategoryMatches{
			"skills": {Matched: []string{"Go"}, Missing: []string{"Rust"}},
		},
	}

	p.PrintMatchedItems(result)
	output := buf.String()

	assert.Contains(t, output, "MATCHED ITEMS")
	assert.Contains(t, output, "skills (1/2)")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "Rust")
}

func TestPrintMatchedItems_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchedItems(&types.MatchResult{})

	assert.Empty(t, buf.String())
}

func TestPrintNotes_WrapsLongText(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		Notes: "skills 1/2 matched; experience 4.00y; semantic matching unavailable, phrase matching only",
	}

	p.PrintNotes(result)
	output := buf.String()

	assert.Contains(t, output, "NOTES")
	assert.Contains(t, output, "semantic matching")
}

func TestPrintNotes_EmptySkipped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintNotes(&types.MatchResult{})

	assert.Empty(t, buf.String())
}
