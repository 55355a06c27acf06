package guardrails

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestResolveField_SupportedPaths(t *testing.T) {
	ctx := testContext(&types.CandidateProfile{
		Skills:       []string{"Go"},
		Certificates: []string{"AWS SAA"},
		Summary:      "engineer",
		Experience:   []types.ExperienceEntry{{Role: "Engineer"}},
		Projects:     []types.Project{{Name: "Billing", Description: "invoices"}},
	})

	for _, path := range []string{
		"resume.skills", "resume.certificates", "resume.summary",
		"resume.experience", "resume.projects",
	} {
		_, err := resolveField(ctx, path)
		assert.NoError(t, err, path)
	}

	projects, err := resolveField(ctx, "resume.projects")
	require.NoError(t, err)
	assert.Equal(t, []string{"Billing invoices"}, projects.items)
}

func TestResolveField_UnknownPath(t *testing.T) {
	ctx := testContext(&types.CandidateProfile{})

	_, err := resolveField(ctx, "resume.salary")
	assert.Error(t, err)
}

func TestOpEmpty_Shapes(t *testing.T) {
	hit, err := opEmpty(fieldValue{kind: kindText, text: "  "}, types.RuleCondition{}, nil)
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = opEmpty(fieldValue{kind: kindList, items: []string{"x"}}, types.RuleCondition{}, nil)
	require.NoError(t, err)
	assert.False(t, hit)

	hit, err = opEmpty(fieldValue{kind: kindEntries}, types.RuleCondition{}, nil)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestOpContainsKeywordRatio(t *testing.T) {
	entries := fieldValue{kind: kindEntries, entries: []types.ExperienceEntry{
		{Role: "Software Intern"},
		{Role: "Engineering Intern"},
		{Role: "Backend Engineer"},
	}}

	hit, err := opContainsKeywordRatio(entries, types.RuleCondition{Keyword: "intern", Threshold: 0.5}, nil)
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = opContainsKeywordRatio(entries, types.RuleCondition{Keyword: "intern", Threshold: 0.7}, nil)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestOpContainsKeywordRatio_RequiresKeyword(t *testing.T) {
	_, err := opContainsKeywordRatio(fieldValue{kind: kindList, items: []string{"x"}}, types.RuleCondition{}, nil)
	assert.Error(t, err)
}

func TestOpContainsKeywordRatio_EmptyListNeverTriggers(t *testing.T) {
	hit, err := opContainsKeywordRatio(fieldValue{kind: kindList}, types.RuleCondition{Keyword: "go", Threshold: 0.1}, nil)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestOpAvgDurationMonthsLT(t *testing.T) {
	ctx := testContext(&types.CandidateProfile{})
	entries := fieldValue{kind: kindEntries, entries: []types.ExperienceEntry{
		{StartDate: "Jan 2022", EndDate: "Jul 2022"}, // 6 months
		{StartDate: "Jan 2023", EndDate: "Nov 2023"}, // 10 months
	}}

	hit, err := opAvgDurationMonthsLT(entries, types.RuleCondition{Value: 12}, ctx)
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = opAvgDurationMonthsLT(entries, types.RuleCondition{Value: 6}, ctx)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestOpAvgDurationMonthsLT_UndatedEntriesCountAsZero(t *testing.T) {
	ctx := testContext(&types.CandidateProfile{})
	entries := fieldValue{kind: kindEntries, entries: []types.ExperienceEntry{
		{StartDate: "Jan 2022", EndDate: "Jan 2023"}, // 12 months
		{StartDate: "unknown", EndDate: "unknown"},   // 0 months
	}}

	// Average over both entries is 6 months, not 12.
	hit, err := opAvgDurationMonthsLT(entries, types.RuleCondition{Value: 8}, ctx)
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = opAvgDurationMonthsLT(entries, types.RuleCondition{Value: 6}, ctx)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestOpAvgDurationMonthsLT_WrongShape(t *testing.T) {
	ctx := testContext(&types.CandidateProfile{})

	_, err := opAvgDurationMonthsLT(fieldValue{kind: kindList}, types.RuleCondition{Field: "resume.skills", Value: 6}, ctx)
	assert.Error(t, err)
}
