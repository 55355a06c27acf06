// Package types provides type definitions for structured data used throughout the resume-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobRequirement represents a structured job description after upstream extraction.
// Lists hold ordered, deduplicated requirement phrases; Projects holds free-text
// descriptions that are tokenized into keywords at scoring time.
type JobRequirement struct {
	JobTitle         string                  `json:"job_title,omitempty"`
	Skills           []string                `json:"skills"`
	Technologies     []string                `json:"technologies"`
	Tools            []string                `json:"tools"`
	Certificates     []string                `json:"certificates"`
	Responsibilities []string                `json:"responsibilities"`
	Projects         []string                `json:"projects"`
	Qualification    string                  `json:"qualification,omitempty"`
	Experience       string                  `json:"experience,omitempty"`
	ExperienceRange  ExperienceRange         `json:"experience_range"`
	Scoring          map[string]ScoringBlock `json:"scoring"`
}

// ExperienceRange is the normalized form of a free-text experience requirement.
// Either bound may be absent.
type ExperienceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// ScoringBlock holds the weight and criteria for a single scoring category.
// Criteria maps bucket labels (e.g. "3-5", ">=5", "<3") to scores in 0-100.
type ScoringBlock struct {
	Weight   int                `json:"weight"`
	Criteria map[string]float64 `json:"criteria"`
}

// ScoringCategories lists the ten canonical scoring categories in weight order.
var ScoringCategories = []string{
	"skills",
	"experience",
	"relevant_experience",
	"projects",
	"certificates",
	"tools",
	"technologies",
	"qualification",
	"responsibilities",
	"salary",
}

// CriteriaFor returns the bucket criteria for a category, or nil if the
// category has no scoring block.
func (j *JobRequirement) CriteriaFor(category string) map[string]float64 {
	if j.Scoring == nil {
		return nil
	}
	block, ok := j.Scoring[category]
	if !ok {
		return nil
	}
	return block.Criteria
}
