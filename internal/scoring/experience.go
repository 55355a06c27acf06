package scoring

import (
	"math"

	"github.com/jonathan/resume-scorer/internal/types"
)

// ExperienceScore maps computed timeline years onto the JD's experience range.
// The min bound takes precedence when both are present: meeting it scores 100
// and falling short scores proportionally. A max-only range scores 100 up to
// the ceiling and decays proportionally beyond it. No bounds means no signal,
// which scores 0.
func ExperienceScore(years float64, r types.ExperienceRange) int {
	if r.Min != nil {
		min := *r.Min
		if years >= min {
			return 100
		}
		if min <= 0 {
			return 0
		}
		return Clamp(int(math.Round(100 * years / min)))
	}

	if r.Max != nil {
		max := *r.Max
		if years <= max {
			return 100
		}
		if years <= 0 {
			return 0
		}
		return Clamp(int(math.Round(100 * max / years)))
	}

	return 0
}
