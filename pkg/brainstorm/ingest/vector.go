package ingest

import "math"

// Vector is a fixed-length term-count vector over a vocabulary. Idea
// vectors hold integral counts; cluster centroids hold element-wise means.
type Vector []float64

// Vectorize turns one text into a term-frequency vector of length
// vocab.Size(). Tokens absent from the vocabulary are silently ignored.
func Vectorize(text string, vocab *Vocabulary, tok *Tokenizer) Vector {
	vec := make(Vector, vocab.Size())
	for _, token := range tok.Tokenize(text) {
		if idx, ok := vocab.Index(token); ok {
			vec[idx]++
		}
	}
	return vec
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Sum returns the total of all components.
func (v Vector) Sum() float64 {
	var total float64
	for _, x := range v {
		total += x
	}
	return total
}

// Cosine returns the cosine similarity between two vectors. It returns 0
// when either vector is nil or empty, when the lengths differ, or when
// either norm is zero. For non-negative term-count vectors the result is
// in [0,1].
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
