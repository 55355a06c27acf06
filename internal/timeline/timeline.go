package timeline

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/jonathan/resume-scorer/internal/matching"
	"github.com/jonathan/resume-scorer/internal/types"
)

// daysPerYear converts merged interval days into years.
const daysPerYear = 365.25

// Calculator computes total experience years from a candidate's timeline.
// The semantic matcher is optional; without it no relevance filtering happens.
type Calculator struct {
	semantic *matching.SemanticMatcher
	now      func() time.Time
}

// NewCalculator builds a calculator. Pass a nil matcher to disable the
// role-relevance filter.
func NewCalculator(semantic *matching.SemanticMatcher) *Calculator {
	return &Calculator{semantic: semantic, now: time.Now}
}

// WithClock overrides the current-time source. Intended for tests.
func (c *Calculator) WithClock(now func() time.Time) *Calculator {
	c.now = now
	return c
}

// TotalYears derives grounded tenure from the candidate's date ranges.
// When a JD job title is given and the semantic model is available, roles
// whose similarity to the title falls below the relevance threshold are
// dropped first; entries with no role text are always kept since relevance
// cannot be judged. Unparseable or inverted ranges are skipped. Overlapping
// intervals are merged before summing. If nothing parses, any declared
// per-entry years are summed instead.
func (c *Calculator) TotalYears(ctx context.Context, entries []types.ExperienceEntry, jobTitle string) float64 {
	if len(entries) == 0 {
		return 0
	}

	kept := c.filterRelevant(ctx, entries, jobTitle)
	now := c.now()

	type interval struct {
		start, end time.Time
	}
	var intervals []interval

	for _, entry := range kept {
		start, ok := ParseDate(entry.StartDate, now)
		if !ok {
			continue
		}
		end, ok := ParseDate(entry.EndDate, now)
		if !ok {
			continue
		}
		if end.Before(start) {
			continue
		}
		intervals = append(intervals, interval{start: start, end: end})
	}

	if len(intervals) == 0 {
		// No usable dates; fall back to declared durations.
		declared := 0.0
		for _, entry := range kept {
			declared += entry.Years
		}
		return declared
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].start.Before(intervals[j].start)
	})

	merged := make([]interval, 0, len(intervals))
	merged = append(merged, intervals[0])
	for _, next := range intervals[1:] {
		last := &merged[len(merged)-1]
		if next.start.Before(last.end) {
			if next.end.After(last.end) {
				last.end = next.end
			}
			continue
		}
		merged = append(merged, next)
	}

	totalDays := 0.0
	for _, iv := range merged {
		totalDays += iv.end.Sub(iv.start).Hours() / 24
	}

	return round2(totalDays / daysPerYear)
}

// filterRelevant drops entries whose role is semantically unrelated to the
// target job title. Without a title or an available model it keeps everything.
func (c *Calculator) filterRelevant(ctx context.Context, entries []types.ExperienceEntry, jobTitle string) []types.ExperienceEntry {
	if jobTitle == "" || !c.semantic.Enabled() {
		return entries
	}

	var roles []string
	var roleIdx []int
	for i, entry := range entries {
		if entry.Role != "" {
			roles = append(roles, entry.Role)
			roleIdx = append(roleIdx, i)
		}
	}
	if len(roles) == 0 {
		return entries
	}

	sims, ok := c.semantic.SimilarityMany(ctx, jobTitle, roles)
	if !ok {
		return entries
	}

	drop := make(map[int]bool)
	for j, sim := range sims {
		if sim < matching.ThresholdRoleRelevance {
			drop[roleIdx[j]] = true
		}
	}

	kept := make([]types.ExperienceEntry, 0, len(entries))
	for i, entry := range entries {
		if !drop[i] {
			kept = append(kept, entry)
		}
	}
	return kept
}

// DurationYears returns the month-precision duration of one entry in years,
// or 0 when either date is missing, unparseable, or inverted. Used by the
// guardrail duration operator and the relevant-experience map builder.
func DurationYears(startDate, endDate string, now time.Time) float64 {
	start, ok := ParseDate(startDate, now)
	if !ok {
		return 0
	}
	end, ok := ParseDate(endDate, now)
	if !ok {
		return 0
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return round2(float64(months) / 12)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
