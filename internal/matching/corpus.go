package matching

import (
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// BuildCorpus gathers the candidate's searchable text fragments: the skills
// list, each experience role and its description, project names and
// descriptions, and the summary. Empty fragments are dropped.
func BuildCorpus(profile *types.CandidateProfile) []string {
	var corpus []string

	corpus = append(corpus, profile.Skills...)

	for _, exp := range profile.Experience {
		corpus = append(corpus, exp.Role)
		corpus = append(corpus, strings.Join(exp.Description, " "))
	}

	for _, proj := range profile.Projects {
		corpus = append(corpus, proj.Name)
		corpus = append(corpus, proj.Description)
	}

	corpus = append(corpus, profile.Summary)

	out := corpus[:0]
	for _, fragment := range corpus {
		if strings.TrimSpace(fragment) != "" {
			out = append(out, fragment)
		}
	}
	return out
}
