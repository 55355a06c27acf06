package matching

import (
	"context"
	"math"

	"github.com/jonathan/resume-scorer/internal/logger"
)

// Category-specific similarity thresholds. Short skill/tool phrases tolerate
// looser matches than certificate names, which are near-exact or nothing.
const (
	ThresholdSkills           = 0.45
	ThresholdTools            = 0.45
	ThresholdTechnologies     = 0.45
	ThresholdResponsibilities = 0.50
	ThresholdProjects         = 0.60
	ThresholdCertificates     = 0.65

	// ThresholdRoleRelevance gates experience entries against the JD job
	// title when filtering the timeline.
	ThresholdRoleRelevance = 0.35
)

// Embedder turns texts into dense vectors. Implementations must be safe for
// concurrent use; the scoring engine shares one instance across requests.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// SemanticMatcher matches requirement phrases against a corpus by maximum
// cosine similarity. A nil embedder disables it: every call reports all
// targets still missing, which keeps phrase-only scoring intact.
type SemanticMatcher struct {
	embedder Embedder
}

// NewSemanticMatcher wraps an embedder; pass nil for a disabled matcher.
func NewSemanticMatcher(embedder Embedder) *SemanticMatcher {
	return &SemanticMatcher{embedder: embedder}
}

// Enabled reports whether semantic matching is available.
func (s *SemanticMatcher) Enabled() bool {
	return s != nil && s.embedder != nil
}

// CheckMissing embeds the still-missing targets and the corpus fragments and
// marks a target found when its best cosine similarity against any fragment
// meets the threshold. Any embedding failure degrades to phrase-only results;
// no error escapes to callers.
func (s *SemanticMatcher) CheckMissing(ctx context.Context, corpus, missing []string, threshold float64) (found, stillMissing []string) {
	if len(missing) == 0 {
		return nil, nil
	}
	if !s.Enabled() || len(corpus) == 0 {
		return nil, missing
	}

	sources := make([]string, 0, len(corpus))
	for _, fragment := range corpus {
		if fragment != "" {
			sources = append(sources, fragment)
		}
	}
	if len(sources) == 0 {
		return nil, missing
	}

	sourceVecs, err := s.embedder.EmbedTexts(ctx, sources)
	if err != nil {
		logger.Warn().Err(err).Msg("semantic matcher: corpus embedding failed, falling back to phrase results")
		return nil, missing
	}

	targetVecs, err := s.embedder.EmbedTexts(ctx, missing)
	if err != nil {
		logger.Warn().Err(err).Msg("semantic matcher: target embedding failed, falling back to phrase results")
		return nil, missing
	}

	for i, target := range missing {
		best := 0.0
		for _, src := range sourceVecs {
			if sim := cosineSimilarity(targetVecs[i], src); sim > best {
				best = sim
			}
		}
		if best >= threshold {
			found = append(found, target)
		} else {
			stillMissing = append(stillMissing, target)
		}
	}

	return found, stillMissing
}

// BestSimilarity returns the highest cosine similarity between one text and a
// set of candidates, or false when embedding is unavailable or fails.
func (s *SemanticMatcher) BestSimilarity(ctx context.Context, text string, candidates []string) (float64, bool) {
	if !s.Enabled() || text == "" || len(candidates) == 0 {
		return 0, false
	}

	vecs, err := s.embedder.EmbedTexts(ctx, append([]string{text}, candidates...))
	if err != nil {
		logger.Warn().Err(err).Msg("semantic matcher: similarity embedding failed")
		return 0, false
	}

	best := 0.0
	for _, candidate := range vecs[1:] {
		if sim := cosineSimilarity(vecs[0], candidate); sim > best {
			best = sim
		}
	}
	return best, true
}

// SimilarityMany embeds the target and all texts in one batch and returns the
// cosine similarity of each text against the target. The boolean is false
// when embedding is unavailable or fails.
func (s *SemanticMatcher) SimilarityMany(ctx context.Context, target string, texts []string) ([]float64, bool) {
	if !s.Enabled() || target == "" || len(texts) == 0 {
		return nil, false
	}

	vecs, err := s.embedder.EmbedTexts(ctx, append([]string{target}, texts...))
	if err != nil || len(vecs) != len(texts)+1 {
		logger.Warn().Err(err).Msg("semantic matcher: batch similarity embedding failed")
		return nil, false
	}

	sims := make([]float64, len(texts))
	for i := range texts {
		sims[i] = cosineSimilarity(vecs[0], vecs[i+1])
	}
	return sims, true
}

// Similarity computes pairwise cosine similarity between two texts.
func (s *SemanticMatcher) Similarity(ctx context.Context, a, b string) (float64, bool) {
	if !s.Enabled() {
		return 0, false
	}
	vecs, err := s.embedder.EmbedTexts(ctx, []string{a, b})
	if err != nil || len(vecs) != 2 {
		return 0, false
	}
	return cosineSimilarity(vecs[0], vecs[1]), true
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
