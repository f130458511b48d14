// Copyright 2025 The Fina Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/fina-ml/fina/internal/kernel"
)

// Error kinds. Wrapped by the kernels below; match with errors.Is.
var (
	ErrEmptyInput            = kernel.ErrEmptyInput
	ErrLengthMismatch        = kernel.ErrLengthMismatch
	ErrZeroNorm              = kernel.ErrZeroNorm
	ErrZeroVariance          = kernel.ErrZeroVariance
	ErrDegenerateRange       = kernel.ErrDegenerateRange
	ErrNonPositivePrediction = kernel.ErrNonPositivePrediction
	ErrSoftmaxUnderflow      = kernel.ErrSoftmaxUnderflow
	ErrInvalidAlpha          = kernel.ErrInvalidAlpha
	ErrInvalidRange          = kernel.ErrInvalidRange
)

// Descriptive statistics

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	return kernel.Mean(xs)
}

// Variance returns the population variance of xs.
func Variance(xs []float64) (float64, error) {
	return kernel.Variance(xs)
}

// StdDev returns the population standard deviation of xs.
func StdDev(xs []float64) (float64, error) {
	return kernel.StdDev(xs)
}

// RMS returns the root mean square of xs.
func RMS(xs []float64) (float64, error) {
	return kernel.RMS(xs)
}

// Vector metrics

// Dot returns the inner product of two equal-length sequences.
func Dot(a, b []float64) (float64, error) {
	return kernel.Dot(a, b)
}

// Euclidean returns the Euclidean distance between two equal-length
// sequences.
func Euclidean(a, b []float64) (float64, error) {
	return kernel.Euclidean(a, b)
}

// CosineSimilarity returns the cosine of the angle between two non-zero
// equal-length sequences.
func CosineSimilarity(a, b []float64) (float64, error) {
	return kernel.CosineSimilarity(a, b)
}

// Activations

// Sigmoid returns 1/(1+e^-x), saturating to exactly 1 above x=500 and
// exactly 0 below x=-500.
func Sigmoid(x float64) float64 {
	return kernel.Sigmoid(x)
}

// ReLU returns max(x, 0).
func ReLU(x float64) float64 {
	return kernel.ReLU(x)
}

// LeakyReLU returns x for x >= 0 and alpha*x otherwise.
func LeakyReLU(x, alpha float64) float64 {
	return kernel.LeakyReLU(x, alpha)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 {
	return kernel.Tanh(x)
}

// Losses

// Softmax returns the numerically-stabilized softmax of xs.
func Softmax(xs []float64) ([]float64, error) {
	return kernel.Softmax(xs)
}

// CrossEntropy returns -sum(target_i * ln(pred_i)); predictions must be
// strictly positive.
func CrossEntropy(pred, target []float64) (float64, error) {
	return kernel.CrossEntropy(pred, target)
}

// MSE returns the mean squared error between pred and target.
func MSE(pred, target []float64) (float64, error) {
	return kernel.MSE(pred, target)
}

// LogLoss returns the binary cross-entropy of pred against target,
// silently clamping predictions into (0, 1).
func LogLoss(pred, target []float64) (float64, error) {
	return kernel.LogLoss(pred, target)
}

// Normalization and smoothing

// MinMaxNormalize rescales xs into [0, 1].
func MinMaxNormalize(xs []float64) ([]float64, error) {
	return kernel.MinMaxNormalize(xs)
}

// ZScoreNormalize centers xs on its mean and scales by its standard
// deviation.
func ZScoreNormalize(xs []float64) ([]float64, error) {
	return kernel.ZScoreNormalize(xs)
}

// EMA returns the exponential moving average of xs with smoothing
// factor alpha in [0, 1].
func EMA(xs []float64, alpha float64) ([]float64, error) {
	return kernel.EMA(xs, alpha)
}

// Scalar utility

// Clamp bounds x into [lo, hi].
func Clamp(x, lo, hi float64) (float64, error) {
	return kernel.Clamp(x, lo, hi)
}
