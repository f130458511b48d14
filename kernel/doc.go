// Copyright 2025 The Fina Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel is the public API of the Fina numeric kernels: pure,
// stateless primitives for statistical and machine-learning
// preprocessing over float64 scalars and flat []float64 sequences.
//
// # Overview
//
// The kernels fall into five groups:
//   - Descriptive statistics: Mean, Variance, StdDev, RMS
//   - Vector metrics: Dot, Euclidean, CosineSimilarity
//   - Activations: Sigmoid, ReLU, LeakyReLU, Tanh
//   - Losses: Softmax, CrossEntropy, MSE, LogLoss
//   - Transforms and utilities: MinMaxNormalize, ZScoreNormalize, EMA, Clamp
//
// # Usage
//
//	xs := []float64{2, 4, 6}
//
//	m, err := kernel.Mean(xs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m) // 4
//
//	probs, err := kernel.Softmax([]float64{1, 2, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Fallible kernels return an error wrapping one of the exported
// sentinel kinds; match them with errors.Is:
//
//	_, err := kernel.MinMaxNormalize([]float64{5, 5, 5})
//	if errors.Is(err, kernel.ErrDegenerateRange) {
//	    // all elements equal, nothing to rescale
//	}
//
// Activations are total functions and return no error. No kernel
// mutates its input or retains state between calls; every function is
// safe for concurrent use.
package kernel
