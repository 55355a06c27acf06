package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketScore_LowerBoundWinsOverRange(t *testing.T) {
	criteria := map[string]float64{
		">=5": 100,
		"3-5": 70,
		"<3":  30,
	}

	// 5.0 satisfies both ">=5" and "3-5"; the lower-bound bucket wins.
	assert.Equal(t, 100, BucketScore(5, criteria))
	assert.Equal(t, 70, BucketScore(4, criteria))
	assert.Equal(t, 30, BucketScore(1, criteria))
}

func TestBucketScore_HighestThresholdFirst(t *testing.T) {
	criteria := map[string]float64{
		">=3": 60,
		">=7": 100,
	}

	assert.Equal(t, 100, BucketScore(8, criteria))
	assert.Equal(t, 60, BucketScore(4, criteria))
	assert.Equal(t, 0, BucketScore(2, criteria))
}

func TestBucketScore_SalaryGrammar(t *testing.T) {
	criteria := map[string]float64{
		"<10":   100,
		"10-15": 70,
		">15":   20,
	}

	assert.Equal(t, 100, BucketScore(8, criteria))
	assert.Equal(t, 70, BucketScore(12, criteria))
	assert.Equal(t, 20, BucketScore(18, criteria))
}

func TestBucketScore_ExactValue(t *testing.T) {
	criteria := map[string]float64{"12": 90}

	assert.Equal(t, 90, BucketScore(12, criteria))
	assert.Equal(t, 0, BucketScore(12.5, criteria))
}

func TestBucketScore_SkipsUnparseableLabels(t *testing.T) {
	criteria := map[string]float64{
		"senior": 100,
		">=2":    80,
	}

	assert.Equal(t, 80, BucketScore(3, criteria))
}

func TestBucketScore_NoMatchOrEmpty(t *testing.T) {
	assert.Equal(t, 0, BucketScore(4, map[string]float64{">=5": 100}))
	assert.Equal(t, 0, BucketScore(4, nil))
}

func TestBucketScore_ClampsScores(t *testing.T) {
	assert.Equal(t, 100, BucketScore(6, map[string]float64{">=5": 140}))
}
