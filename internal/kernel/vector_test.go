package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

var vecPairs = [][2][]float64{
	{{1, 2, 3}, {4, 5, 6}},
	{{0, 0}, {3, 4}},
	{{-1, 1}, {1, -1}},
	{{0.5, 0.25, 0.125}, {8, 4, 2}},
}

func TestDot(t *testing.T) {
	// 1*4 + 2*5 + 3*6 = 32
	got, err := Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, got)
}

func TestDotCommutative(t *testing.T) {
	for _, p := range vecPairs {
		ab, err := Dot(p[0], p[1])
		require.NoError(t, err)
		ba, err := Dot(p[1], p[0])
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "dot(%v,%v) != dot(b,a)", p[0], p[1])
	}
}

func TestDotMatchesGonum(t *testing.T) {
	for _, p := range vecPairs {
		got, err := Dot(p[0], p[1])
		require.NoError(t, err)
		assert.InDelta(t, floats.Dot(p[0], p[1]), got, 1e-12)
	}
}

func TestDotLengthMismatch(t *testing.T) {
	_, err := Dot([]float64{1, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestEuclidean(t *testing.T) {
	// 3-4-5 triangle
	got, err := Euclidean([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestEuclideanMatchesGonum(t *testing.T) {
	for _, p := range vecPairs {
		got, err := Euclidean(p[0], p[1])
		require.NoError(t, err)
		assert.InDelta(t, floats.Distance(p[0], p[1], 2), got, 1e-12)
	}
}

func TestEuclideanLengthMismatch(t *testing.T) {
	_, err := Euclidean([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCosineSimilaritySelf(t *testing.T) {
	for _, xs := range seqFixtures {
		got, err := CosineSimilarity(xs, xs)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-9, "cosine(%v, same) != 1", xs)
	}
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	got, err := CosineSimilarity([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-12)
}

func TestCosineSimilarityOpposite(t *testing.T) {
	got, err := CosineSimilarity([]float64{1, 2}, []float64{-1, -2})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, got, 1e-12)
}

func TestCosineSimilarityErrors(t *testing.T) {
	_, err := CosineSimilarity([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = CosineSimilarity(nil, nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	// Exact zero vector.
	_, err = CosineSimilarity([]float64{0, 0}, []float64{1, 1})
	require.ErrorIs(t, err, ErrZeroNorm)

	// Numerically indistinguishable from zero.
	_, err = CosineSimilarity([]float64{1, 1}, []float64{1e-200, 0})
	require.ErrorIs(t, err, ErrZeroNorm)
}
