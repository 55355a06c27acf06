package profile

import (
	"strings"
	"time"

	"github.com/jonathan/resume-scorer/internal/timeline"
	"github.com/jonathan/resume-scorer/internal/types"
)

// junkNames are placeholder values extractors emit for absent fields.
var junkNames = map[string]struct{}{
	"-": {}, "--": {}, "none": {}, "null": {}, "n/a": {},
}

// Normalize sanitizes a candidate profile in place and returns it: skills are
// deduplicated, junk projects dropped, and the relevant-experience map derived
// from the timeline when the extractor did not supply one. Missing fields
// default to safe empty values; normalization never fails.
func Normalize(profile *types.CandidateProfile) *types.CandidateProfile {
	profile.Skills = dedupeSkills(profile.Skills)
	profile.Projects = filterProjects(profile.Projects)
	profile.Certificates = dedupeSkills(profile.Certificates)

	if profile.RelevantExperienceMap == nil {
		profile.RelevantExperienceMap = BuildRelevantExperienceMap(profile.Experience, time.Now())
	}
	return profile
}

// BuildRelevantExperienceMap scans each experience entry's role and
// description for known skill aliases and attributes the entry's duration to
// every canonical token recognized. A role mentioning both Go and Docker for
// two years credits two years to each.
func BuildRelevantExperienceMap(entries []types.ExperienceEntry, now time.Time) map[string]float64 {
	out := make(map[string]float64)

	for _, entry := range entries {
		years := timeline.DurationYears(entry.StartDate, entry.EndDate, now)
		if years <= 0 {
			continue
		}

		text := strings.ToLower(entry.Role + " " + strings.Join(entry.Description, " "))
		for _, token := range extractKeywords(text) {
			out[token] += years
		}
	}
	return out
}

// extractKeywords returns the canonical tokens whose aliases occur in text.
// Text must already be lowercased; it is padded so edge-anchored aliases like
// " go " can match at the boundaries.
func extractKeywords(text string) []string {
	padded := " " + text + " "

	seen := make(map[string]struct{})
	var tokens []string
	for alias, canonical := range aliasMap {
		if !strings.Contains(padded, alias) {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		tokens = append(tokens, canonical)
	}
	return tokens
}

func dedupeSkills(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		clean := strings.TrimSpace(item)
		if clean == "" {
			continue
		}
		key := strings.ToLower(clean)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, clean)
	}
	return out
}

func filterProjects(projects []types.Project) []types.Project {
	out := make([]types.Project, 0, len(projects))
	seen := make(map[string]struct{}, len(projects))
	for _, proj := range projects {
		name := strings.TrimSpace(proj.Name)
		if name == "" {
			continue
		}
		if _, junk := junkNames[strings.ToLower(name)]; junk {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, types.Project{Name: name, Description: strings.TrimSpace(proj.Description)})
	}
	return out
}
