// Copyright 2025 The Fina Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fina-ml/fina/kernel"
)

// The kernels themselves are covered in internal/kernel; these tests
// pin the public surface: results and error kinds pass through the
// re-export unchanged.
func TestPublicAPI(t *testing.T) {
	m, err := kernel.Mean([]float64{2, 4, 6})
	require.NoError(t, err)
	assert.Equal(t, 4.0, m)

	out, err := kernel.EMA([]float64{1, 2, 3}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1.5, 2.25}, out)

	assert.Equal(t, 0.5, kernel.Sigmoid(0))
	assert.Equal(t, 3.0, kernel.ReLU(3))
	assert.Equal(t, -0.2, kernel.LeakyReLU(-2, 0.1))
	assert.Equal(t, 0.0, kernel.Tanh(0))
}

func TestPublicErrorKinds(t *testing.T) {
	_, err := kernel.StdDev(nil)
	require.ErrorIs(t, err, kernel.ErrEmptyInput)

	_, err = kernel.Euclidean([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, kernel.ErrLengthMismatch)

	_, err = kernel.CosineSimilarity([]float64{0, 0}, []float64{1, 1})
	require.ErrorIs(t, err, kernel.ErrZeroNorm)

	_, err = kernel.ZScoreNormalize([]float64{5, 5, 5})
	require.ErrorIs(t, err, kernel.ErrZeroVariance)

	_, err = kernel.CrossEntropy([]float64{0, 0.5}, []float64{1, 0.5})
	require.ErrorIs(t, err, kernel.ErrNonPositivePrediction)

	_, err = kernel.EMA([]float64{1}, 2)
	require.ErrorIs(t, err, kernel.ErrInvalidAlpha)

	_, err = kernel.Clamp(1, 2, 0)
	require.ErrorIs(t, err, kernel.ErrInvalidRange)
}
