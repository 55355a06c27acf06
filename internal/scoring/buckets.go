package scoring

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Bucket label grammar shared by the relevant-experience and salary criteria:
// ">=N", ">N", "<=N", "<N", "A-B" and bare numbers.
var (
	gteBucket   = regexp.MustCompile(`^>=\s*(\d+(?:\.\d+)?)$`)
	gtBucket    = regexp.MustCompile(`^>\s*(\d+(?:\.\d+)?)$`)
	lteBucket   = regexp.MustCompile(`^<=\s*(\d+(?:\.\d+)?)$`)
	ltBucket    = regexp.MustCompile(`^<\s*(\d+(?:\.\d+)?)$`)
	rangeBucket = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)$`)
	exactBucket = regexp.MustCompile(`^(\d+(?:\.\d+)?)$`)
)

const (
	rankLowerBound = iota // ">=N", ">N"
	rankRange             // "A-B" and exact values
	rankUpperBound        // "<N", "<=N"
)

type bucket struct {
	label string
	score float64
	bound float64
	rank  int
	match func(v float64) bool
}

// parseBucket compiles a criteria label into a predicate, or nil when the
// label does not follow the grammar. Unparseable labels are skipped rather
// than failing the whole category.
func parseBucket(label string, score float64) *bucket {
	s := strings.TrimSpace(label)

	if m := gteBucket.FindStringSubmatch(s); m != nil {
		n := mustFloat(m[1])
		return &bucket{label: label, score: score, bound: n, rank: rankLowerBound,
			match: func(v float64) bool { return v >= n }}
	}
	if m := gtBucket.FindStringSubmatch(s); m != nil {
		n := mustFloat(m[1])
		return &bucket{label: label, score: score, bound: n, rank: rankLowerBound,
			match: func(v float64) bool { return v > n }}
	}
	if m := rangeBucket.FindStringSubmatch(s); m != nil {
		lo, hi := mustFloat(m[1]), mustFloat(m[2])
		return &bucket{label: label, score: score, bound: lo, rank: rankRange,
			match: func(v float64) bool { return v >= lo && v <= hi }}
	}
	if m := lteBucket.FindStringSubmatch(s); m != nil {
		n := mustFloat(m[1])
		return &bucket{label: label, score: score, bound: n, rank: rankUpperBound,
			match: func(v float64) bool { return v <= n }}
	}
	if m := ltBucket.FindStringSubmatch(s); m != nil {
		n := mustFloat(m[1])
		return &bucket{label: label, score: score, bound: n, rank: rankUpperBound,
			match: func(v float64) bool { return v < n }}
	}
	if m := exactBucket.FindStringSubmatch(s); m != nil {
		n := mustFloat(m[1])
		return &bucket{label: label, score: score, bound: n, rank: rankRange,
			match: func(v float64) bool { return v == n }}
	}
	return nil
}

// BucketScore evaluates a criteria map against a candidate value. Buckets are
// tried in precedence order, first match wins: lower-bound buckets (">=N",
// ">N") highest threshold first, then ranges and exact values lowest bound
// first, then upper-bound buckets ("<N", "<=N") tightest first. No match, or
// an empty criteria map, scores 0.
func BucketScore(value float64, criteria map[string]float64) int {
	var buckets []*bucket
	for label, score := range criteria {
		if b := parseBucket(label, score); b != nil {
			buckets = append(buckets, b)
		}
	}

	sort.Slice(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		if a.rank == rankLowerBound {
			return a.bound > b.bound
		}
		return a.bound < b.bound
	})

	for _, b := range buckets {
		if b.match(value) {
			return Clamp(int(b.score + 0.5))
		}
	}
	return 0
}

func mustFloat(digits string) float64 {
	v, _ := strconv.ParseFloat(digits, 64)
	return v
}
