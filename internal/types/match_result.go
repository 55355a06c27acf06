package types

// Score map keys for the ten scoring categories plus the aggregate.
const (
	KeySkillsScore             = "skills_score"
	KeyExperienceScore         = "experience_score"
	KeyRelevantExperienceScore = "relevant_experience_score"
	KeyProjectsScore           = "projects_score"
	KeyCertificatesScore       = "certificates_score"
	KeyToolsScore              = "tools_score"
	KeyTechnologiesScore       = "technologies_score"
	KeyQualificationScore      = "qualification_score"
	KeyResponsibilitiesScore   = "responsibilities_score"
	KeySalaryScore             = "salary_score"
	KeyFinalScore              = "final_score"
)

// ScoreKeys lists the ten category score keys in canonical order.
var ScoreKeys = []string{
	KeySkillsScore,
	KeyExperienceScore,
	KeyRelevantExperienceScore,
	KeyProjectsScore,
	KeyCertificatesScore,
	KeyToolsScore,
	KeyTechnologiesScore,
	KeyQualificationScore,
	KeyResponsibilitiesScore,
	KeySalaryScore,
}

// ScoreMap is the mutable per-category score accumulator threaded through the
// guardrail rule chain before it is frozen into a MatchResult.
type ScoreMap map[string]int

// Clone returns an independent copy of the map.
func (m ScoreMap) Clone() ScoreMap {
	out := make(ScoreMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MatchResult is the canonical scoring output for one resume against one JD.
type MatchResult struct {
	SkillsScore             int `json:"skills_score"`
	ExperienceScore         int `json:"experience_score"`
	RelevantExperienceScore int `json:"relevant_experience_score"`
	ProjectsScore           int `json:"projects_score"`
	CertificatesScore       int `json:"certificates_score"`
	ToolsScore              int `json:"tools_score"`
	TechnologiesScore       int `json:"technologies_score"`
	QualificationScore      int `json:"qualification_score"`
	ResponsibilitiesScore   int `json:"responsibilities_score"`
	SalaryScore             int `json:"salary_score"`

	FinalScore int    `json:"final_score"`
	Notes      string `json:"notes"`

	Details         MatchDetails               `json:"details"`
	MatchedItems    map[string]CategoryMatches `json:"matched_items"`
	ExperienceRange ExperienceRange            `json:"experience_range"`
}

// CategoryMatches holds the disjoint matched/missing requirement lists for one category.
type CategoryMatches struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// MatchDetails carries diagnostic counts for auditability.
type MatchDetails struct {
	JDSkillCount             int     `json:"jd_skill_count"`
	SkillsMatched            int     `json:"skills_matched"`
	JDTechCount              int     `json:"jd_tech_count"`
	TechMatched              int     `json:"tech_matched"`
	ToolsMatched             int     `json:"tools_matched"`
	ProjectsMatched          int     `json:"projects_matched"`
	TotalExperienceYears     float64 `json:"candidate_total_experience_years"`
	AvgRelevantYearsPerSkill float64 `json:"candidate_relevant_years_per_skill_avg"`
}

// ScoreMap flattens the category scores into a mutable accumulator.
func (r *MatchResult) ScoreMap() ScoreMap {
	return ScoreMap{
		KeySkillsScore:             r.SkillsScore,
		KeyExperienceScore:         r.ExperienceScore,
		KeyRelevantExperienceScore: r.RelevantExperienceScore,
		KeyProjectsScore:           r.ProjectsScore,
		KeyCertificatesScore:       r.CertificatesScore,
		KeyToolsScore:              r.ToolsScore,
		KeyTechnologiesScore:       r.TechnologiesScore,
		KeyQualificationScore:      r.QualificationScore,
		KeyResponsibilitiesScore:   r.ResponsibilitiesScore,
		KeySalaryScore:             r.SalaryScore,
	}
}

// ApplyScoreMap writes the accumulator back into the named score fields.
// Unknown keys are ignored; the final score is never read from the map.
func (r *MatchResult) ApplyScoreMap(m ScoreMap) {
	r.SkillsScore = m[KeySkillsScore]
	r.ExperienceScore = m[KeyExperienceScore]
	r.RelevantExperienceScore = m[KeyRelevantExperienceScore]
	r.ProjectsScore = m[KeyProjectsScore]
	r.CertificatesScore = m[KeyCertificatesScore]
	r.ToolsScore = m[KeyToolsScore]
	r.TechnologiesScore = m[KeyTechnologiesScore]
	r.QualificationScore = m[KeyQualificationScore]
	r.ResponsibilitiesScore = m[KeyResponsibilitiesScore]
	r.SalaryScore = m[KeySalaryScore]
}
