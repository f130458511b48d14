package kernel

import (
	"fmt"
	"math"
)

// MinMaxNormalize rescales xs into [0, 1] via (x - min) / (max - min).
func MinMaxNormalize(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("MinMaxNormalize: %w", ErrEmptyInput)
	}
	minVal, maxVal := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < minVal {
			minVal = x
		}
		if x > maxVal {
			maxVal = x
		}
	}
	span := maxVal - minVal
	if math.Abs(span) < eps {
		return nil, fmt.Errorf("MinMaxNormalize: %w", ErrDegenerateRange)
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = (x - minVal) / span
	}
	return out, nil
}

// ZScoreNormalize centers xs on its mean and scales by its population
// standard deviation: (x - mean) / stddev.
func ZScoreNormalize(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("ZScoreNormalize: %w", ErrEmptyInput)
	}
	m := mean(xs)
	s := math.Sqrt(variance(xs))
	if s < eps {
		return nil, fmt.Errorf("ZScoreNormalize: %w", ErrZeroVariance)
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = (x - m) / s
	}
	return out, nil
}

// EMA returns the exponential moving average of xs with smoothing
// factor alpha:
//
//	out[0] = xs[0]
//	out[i] = alpha*xs[i] + (1-alpha)*out[i-1]
//
// Strictly sequential: each output depends on the previous output.
// alpha must lie in the closed interval [0, 1].
func EMA(xs []float64, alpha float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("EMA: %w", ErrEmptyInput)
	}
	// The negated form also rejects NaN alpha.
	if !(alpha >= 0 && alpha <= 1) {
		return nil, fmt.Errorf("EMA: %w: alpha=%v", ErrInvalidAlpha, alpha)
	}
	out := make([]float64, len(xs))
	out[0] = xs[0]
	for i := 1; i < len(xs); i++ {
		out[i] = alpha*xs[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}
