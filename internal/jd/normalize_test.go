package jd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestParseExperienceRange_Grammar(t *testing.T) {
	cases := []struct {
		text     string
		min, max float64
		hasMin   bool
		hasMax   bool
	}{
		{"3-8 years", 3, 8, true, true},
		{"3 to 8 years", 3, 8, true, true},
		{"5+ years", 5, 0, true, false},
		{"at least 4 years", 4, 0, true, false},
		{"minimum 6 years", 6, 0, true, false},
		{"up to 10 years", 0, 10, false, true},
		{"3 years", 3, 3, true, true},
	}

	for _, tc := range cases {
		r := ParseExperienceRange(tc.text)
		if tc.hasMin {
			require.NotNil(t, r.Min, "min for %q", tc.text)
			assert.Equal(t, tc.min, *r.Min, "min for %q", tc.text)
		} else {
			assert.Nil(t, r.Min, "min for %q", tc.text)
		}
		if tc.hasMax {
			require.NotNil(t, r.Max, "max for %q", tc.text)
			assert.Equal(t, tc.max, *r.Max, "max for %q", tc.text)
		} else {
			assert.Nil(t, r.Max, "max for %q", tc.text)
		}
	}
}

func TestParseExperienceRange_Unparseable(t *testing.T) {
	for _, text := range []string{"", "senior level", "extensive experience"} {
		r := ParseExperienceRange(text)
		assert.Nil(t, r.Min, "min for %q", text)
		assert.Nil(t, r.Max, "max for %q", text)
	}
}

func TestNormalize_DedupesAndParsesRange(t *testing.T) {
	req := &types.JobRequirement{
		Skills:     []string{"Go", " go ", "", "Docker"},
		Experience: "3-8 years",
	}

	Normalize(req)

	assert.Equal(t, []string{"Go", "Docker"}, req.Skills)
	require.NotNil(t, req.ExperienceRange.Min)
	require.NotNil(t, req.ExperienceRange.Max)
	assert.Equal(t, 3.0, *req.ExperienceRange.Min)
	assert.Equal(t, 8.0, *req.ExperienceRange.Max)
}

func TestNormalize_KeepsPreNormalizedRange(t *testing.T) {
	min := 2.0
	req := &types.JobRequirement{
		Experience:      "5+ years",
		ExperienceRange: types.ExperienceRange{Min: &min},
	}

	Normalize(req)

	assert.Equal(t, 2.0, *req.ExperienceRange.Min)
}

func TestNormalize_FillsMissingScoringBlocks(t *testing.T) {
	req := &types.JobRequirement{}

	Normalize(req)

	require.Len(t, req.Scoring, len(types.ScoringCategories))
	for _, category := range types.ScoringCategories {
		block, ok := req.Scoring[category]
		require.True(t, ok, "missing block for %s", category)
		assert.NotNil(t, block.Criteria)
	}
}

func TestNormalize_ZeroWeightsFallBackToDefaults(t *testing.T) {
	req := &types.JobRequirement{}

	Normalize(req)

	total := 0
	for _, block := range req.Scoring {
		total += block.Weight
	}
	assert.Equal(t, 100, total)
	assert.Equal(t, 30, req.Scoring["skills"].Weight)
	assert.Equal(t, 25, req.Scoring["experience"].Weight)
}

func TestNormalize_RescalesWeightsTo100(t *testing.T) {
	req := &types.JobRequirement{
		Scoring: map[string]types.ScoringBlock{
			"skills":     {Weight: 3},
			"experience": {Weight: 1},
		},
	}

	Normalize(req)

	assert.Equal(t, 75, req.Scoring["skills"].Weight)
	assert.Equal(t, 25, req.Scoring["experience"].Weight)
}

func TestScaleCriteria_StretchesSmallScales(t *testing.T) {
	scaled := ScaleCriteria(map[string]float64{">=5": 10, "3-5": 6, "<3": 2})

	assert.Equal(t, 100.0, scaled[">=5"])
	assert.Equal(t, 60.0, scaled["3-5"])
	assert.Equal(t, 20.0, scaled["<3"])
}

func TestScaleCriteria_ClampsLargeValues(t *testing.T) {
	scaled := ScaleCriteria(map[string]float64{">=5": 120, "<3": 40})

	assert.Equal(t, 100.0, scaled[">=5"])
	assert.Equal(t, 40.0, scaled["<3"])
}

func TestScaleCriteria_Empty(t *testing.T) {
	assert.Empty(t, ScaleCriteria(nil))
}
