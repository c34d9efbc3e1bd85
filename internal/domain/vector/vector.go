// Package vector provides the profile pooling and similarity math.
package vector

import "math"

// Mean computes the element-wise arithmetic mean of the vectors. All vectors
// must share the same dimension and the slice must be non-empty; both are
// guaranteed by the embedding provider contract and the upstream validation
// gates.
func Mean(vectors [][]float32) []float32 {
	dim := len(vectors[0])
	mean := make([]float32, dim)
	for _, v := range vectors {
		for i, x := range v {
			mean[i] += x
		}
	}
	n := float32(len(vectors))
	for i := range mean {
		mean[i] /= n
	}
	return mean
}

// Cosine computes the cosine similarity between a and b: dot product over the
// product of magnitudes. Returns 0 for a zero vector, which the embedding
// space never produces in practice.
func Cosine(a, b []float32) float64 {
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
