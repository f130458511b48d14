package kernel

import (
	"fmt"
	"math"
)

// dot assumes len(a) == len(b).
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Dot returns the inner product sum(a_i * b_i).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Dot: %w: len(a)=%d len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}
	return dot(a, b), nil
}

// Euclidean returns the Euclidean distance sqrt(sum((a_i - b_i)^2)).
func Euclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Euclidean: %w: len(a)=%d len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}
	var ss float64
	for i := range a {
		d := a[i] - b[i]
		ss += d * d
	}
	return math.Sqrt(ss), nil
}

// CosineSimilarity returns dot(a,b) / (|a| * |b|).
//
// Either vector having a norm below machine epsilon is an error: the
// division is never performed against a near-zero denominator.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("CosineSimilarity: %w: len(a)=%d len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("CosineSimilarity: %w", ErrEmptyInput)
	}
	normA := math.Sqrt(dot(a, a))
	normB := math.Sqrt(dot(b, b))
	if normA < eps || normB < eps {
		return 0, fmt.Errorf("CosineSimilarity: %w", ErrZeroNorm)
	}
	return dot(a, b) / (normA * normB), nil
}
