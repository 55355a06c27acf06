package types

import "strings"

// CandidateProfile represents the extracted facts of a single resume.
// It is constructed once per scoring request from already-validated upstream
// data and treated as immutable for the duration of scoring.
type CandidateProfile struct {
	Skills                []string           `json:"skills"`
	Experience            []ExperienceEntry  `json:"experience"`
	Education             []Education        `json:"education"`
	Projects              []Project          `json:"projects"`
	Certificates          []string           `json:"certificates"`
	Salary                *Salary            `json:"salary,omitempty"`
	Summary               string             `json:"summary,omitempty"`
	TotalExperienceYears  float64            `json:"total_experience_years,omitempty"`
	RelevantExperienceMap map[string]float64 `json:"relevant_experience_map,omitempty"`
}

// ExperienceEntry is a single role on the candidate's timeline.
// Years is an optional declared duration used only when date parsing fails.
type ExperienceEntry struct {
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Description []string `json:"description"`
	Years       float64  `json:"years,omitempty"`
}

// Education is a single degree entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
}

// Project is a candidate project with free-text description.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Salary holds current and expected annual CTC figures in LPA.
// Nil pointers mean the candidate did not disclose the figure.
type Salary struct {
	CurrentCTCLPA  *float64 `json:"current_ctc_lpa"`
	ExpectedCTCLPA *float64 `json:"expected_ctc_lpa"`
}

// PreferredCTC returns the salary figure used for scoring: expected CTC,
// falling back to current CTC. The boolean reports whether any figure exists.
func (s *Salary) PreferredCTC() (float64, bool) {
	if s == nil {
		return 0, false
	}
	if s.ExpectedCTCLPA != nil {
		return *s.ExpectedCTCLPA, true
	}
	if s.CurrentCTCLPA != nil {
		return *s.CurrentCTCLPA, true
	}
	return 0, false
}

// RelevantYears looks up accumulated years for a skill token, trying the
// exact key first and then its lowercase form.
func (c *CandidateProfile) RelevantYears(skill string) float64 {
	if c.RelevantExperienceMap == nil {
		return 0
	}
	if years, ok := c.RelevantExperienceMap[skill]; ok {
		return years
	}
	return c.RelevantExperienceMap[strings.ToLower(skill)]
}
