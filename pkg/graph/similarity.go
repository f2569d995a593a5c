package graph

import (
	"gonum.org/v1/gonum/blas/gonum"
)

// blasEngine is the pure-Go gonum BLAS implementation used for float32
// vector math.
var blasEngine = gonum.Implementation{}

// Score computes the pairwise similarity of two tabs.
//
// When both tabs carry embeddings of equal nonzero length the score is
// their cosine similarity; a result of exactly 0 (including the
// no-embedding case) falls back to Jaccard overlap of the keyword sets.
// A domainBonus is added when both domains are nonempty and equal. The
// result is deliberately not clamped and may exceed 1.0.
func Score(a, b *Tab, domainBonus float64) float64 {
	sim := cosineSimilarity(a.Embedding, b.Embedding)
	if sim == 0 {
		sim = jaccard(a.Keywords, b.Keywords)
	}
	if a.Domain != "" && a.Domain == b.Domain {
		sim += domainBonus
	}
	return sim
}

// BuildMatrix computes the symmetric n×n similarity matrix over tabs.
// The diagonal stays 0. This is the engine's dominant O(n²) cost and is
// acceptable at the target scale of ~100 tabs.
func BuildMatrix(tabs []*Tab, domainBonus float64) [][]float64 {
	n := len(tabs)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			score := Score(tabs[i], tabs[j], domainBonus)
			matrix[i][j] = score
			matrix[j][i] = score
		}
	}
	return matrix
}

// cosineSimilarity returns the cosine of two vectors, or 0 when either is
// missing, mismatched in length, or zero-normed. An all-zero embedding is
// therefore indistinguishable from no embedding at all.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if n == 0 || n != len(b) {
		return 0
	}
	normA := blasEngine.Snrm2(n, a, 1)
	normB := blasEngine.Snrm2(n, b, 1)
	if normA == 0 || normB == 0 {
		return 0
	}
	dot := blasEngine.Sdot(n, a, 1, b, 1)
	return float64(dot) / (float64(normA) * float64(normB))
}

// jaccard computes set overlap of two keyword lists, 0 if either is empty.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(a))
	for _, k := range a {
		setA[k] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, k := range b {
		setB[k] = struct{}{}
	}
	inter := 0
	for k := range setA {
		if _, ok := setB[k]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
