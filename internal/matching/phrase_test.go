package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPhrasePattern_PlainWord(t *testing.T) {
	pattern, err := BuildPhrasePattern("Python")
	require.NoError(t, err)

	assert.True(t, pattern.MatchString("Experienced in Python and Go."))
	assert.True(t, pattern.MatchString("python scripting"))
	assert.False(t, pattern.MatchString("micropython firmware"))
	assert.False(t, pattern.MatchString("pythonic style"))
}

func TestBuildPhrasePattern_SymbolSuffix(t *testing.T) {
	pattern, err := BuildPhrasePattern("C++")
	require.NoError(t, err)

	assert.True(t, pattern.MatchString("Modern C++ development"))
	assert.True(t, pattern.MatchString("knows C++, Rust and Go"))
	assert.True(t, pattern.MatchString("shipped a C++"))
	assert.False(t, pattern.MatchString("uses C+++Lib internally"))
	assert.False(t, pattern.MatchString("plain C code only"))
}

func TestBuildPhrasePattern_CSharp(t *testing.T) {
	pattern, err := BuildPhrasePattern("C#")
	require.NoError(t, err)

	assert.True(t, pattern.MatchString("Backend in C# and .NET"))
	assert.False(t, pattern.MatchString("C#9 experience"))
}

func TestBuildPhrasePattern_MultiWord(t *testing.T) {
	pattern, err := BuildPhrasePattern("machine learning")
	require.NoError(t, err)

	assert.True(t, pattern.MatchString("applied Machine Learning models"))
	assert.False(t, pattern.MatchString("machine learnings"))
}

func TestExtractMatches_RoundTrip(t *testing.T) {
	corpus := []string{"Experienced in C++ and Python."}

	matched, missing := ExtractMatches(corpus, []string{"C++", "Python"})

	assert.Equal(t, []string{"C++", "Python"}, matched)
	assert.Empty(t, missing)
}

func TestExtractMatches_PartitionsTargets(t *testing.T) {
	corpus := []string{
		"Built services in Go with Docker and Kubernetes.",
		"Some React on the side.",
	}

	matched, missing := ExtractMatches(corpus, []string{"Go", "Docker", "Terraform", "React"})

	assert.Equal(t, []string{"Go", "Docker", "React"}, matched)
	assert.Equal(t, []string{"Terraform"}, missing)
}

func TestExtractMatches_DropsBlankTargets(t *testing.T) {
	matched, missing := ExtractMatches([]string{"Python"}, []string{"", "  ", "Python"})

	assert.Equal(t, []string{"Python"}, matched)
	assert.Empty(t, missing)
}

func TestExtractMatches_PhraseNeverSpansFragments(t *testing.T) {
	// "machine" ends one fragment and "learning" starts the next; the joined
	// corpus must not let the phrase match across them.
	corpus := []string{"worked on machine", "learning new tools"}

	_, missing := ExtractMatches(corpus, []string{"machine learning"})

	assert.Equal(t, []string{"machine learning"}, missing)
}

func TestJoinCorpus_SkipsEmptyFragments(t *testing.T) {
	joined := JoinCorpus([]string{"a", "", "b"})
	assert.Equal(t, "a \n b", joined)
}
