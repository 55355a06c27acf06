package jd

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Patterns for the free-text experience grammar, tried in order.
var (
	rangePattern   = regexp.MustCompile(`(\d+)\s*[-to]+\s*(\d+)`)
	plusPattern    = regexp.MustCompile(`(\d+)\s*\+`)
	minimumPattern = regexp.MustCompile(`(?:minimum|least)\s*(\d+)`)
	upToPattern    = regexp.MustCompile(`up to\s*(\d+)`)
	numberPattern  = regexp.MustCompile(`(\d+)`)
)

// ParseExperienceRange extracts a {min, max} range from JD experience text
// such as "3-8 years", "5+ years", "at least 4 years", "up to 10 years" or
// "3 years". Unparseable input yields an open range with both bounds absent.
func ParseExperienceRange(text string) types.ExperienceRange {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return types.ExperienceRange{}
	}

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		return types.ExperienceRange{Min: parseBound(m[1]), Max: parseBound(m[2])}
	}
	if m := plusPattern.FindStringSubmatch(s); m != nil {
		return types.ExperienceRange{Min: parseBound(m[1])}
	}
	if m := minimumPattern.FindStringSubmatch(s); m != nil {
		return types.ExperienceRange{Min: parseBound(m[1])}
	}
	if m := upToPattern.FindStringSubmatch(s); m != nil {
		return types.ExperienceRange{Max: parseBound(m[1])}
	}
	if m := numberPattern.FindStringSubmatch(s); m != nil {
		// A lone figure like "3 years" means exactly that much.
		return types.ExperienceRange{Min: parseBound(m[1]), Max: parseBound(m[1])}
	}

	return types.ExperienceRange{}
}

func parseBound(digits string) *float64 {
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return nil
	}
	return &v
}
