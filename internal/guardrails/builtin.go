package guardrails

import "github.com/jonathan/resume-scorer/internal/types"

// evidenceFloor zeroes target scores when the resume carries no evidence for
// them. A score cannot exceed what the underlying facts support.
type evidenceFloor struct {
	name    string
	targets []string
	note    string
	missing func(resume *types.CandidateProfile) bool
}

func (r *evidenceFloor) Name() string { return r.name }

func (r *evidenceFloor) Apply(scores types.ScoreMap, ctx *Context) (types.ScoreMap, []string, error) {
	if ctx == nil || ctx.Resume == nil || !r.missing(ctx.Resume) {
		return scores, nil, nil
	}

	changed := false
	for _, target := range r.targets {
		if scores[target] != 0 {
			scores[target] = 0
			changed = true
		}
	}
	if !changed {
		return scores, nil, nil
	}
	return scores, []string{r.note}, nil
}

// builtinRules returns the evidence floors applied before any generic rule.
func builtinRules() []Rule {
	return []Rule{
		&evidenceFloor{
			name:    "no_skills_evidence",
			targets: []string{types.KeySkillsScore},
			note:    "skills score zeroed: resume lists no skills",
			missing: func(r *types.CandidateProfile) bool { return len(r.Skills) == 0 },
		},
		&evidenceFloor{
			name: "no_experience_evidence",
			targets: []string{
				types.KeyExperienceScore,
				types.KeyRelevantExperienceScore,
				types.KeyResponsibilitiesScore,
			},
			note:    "experience scores zeroed: resume has no experience entries",
			missing: func(r *types.CandidateProfile) bool { return len(r.Experience) == 0 },
		},
		&evidenceFloor{
			name:    "no_projects_evidence",
			targets: []string{types.KeyProjectsScore},
			note:    "projects score zeroed: resume lists no projects",
			missing: func(r *types.CandidateProfile) bool { return len(r.Projects) == 0 },
		},
		&evidenceFloor{
			name:    "no_certificates_evidence",
			targets: []string{types.KeyCertificatesScore},
			note:    "certificates score zeroed: resume lists no certifications",
			missing: func(r *types.CandidateProfile) bool { return len(r.Certificates) == 0 },
		},
	}
}
