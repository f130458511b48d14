package kernel

import (
	"fmt"
	"math"
)

// mean assumes len(xs) > 0.
func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// variance assumes len(xs) > 0. Two-pass population variance: the mean
// is computed first, then the mean of squared deviations.
func variance(xs []float64) float64 {
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return ss / float64(len(xs))
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("Mean: %w", ErrEmptyInput)
	}
	return mean(xs), nil
}

// Variance returns the population variance of xs.
func Variance(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("Variance: %w", ErrEmptyInput)
	}
	return variance(xs), nil
}

// StdDev returns the population standard deviation of xs,
// sqrt(Variance(xs)).
func StdDev(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("StdDev: %w", ErrEmptyInput)
	}
	return math.Sqrt(variance(xs)), nil
}

// RMS returns the root mean square of xs, sqrt(mean(x^2)).
func RMS(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("RMS: %w", ErrEmptyInput)
	}
	var ss float64
	for _, x := range xs {
		ss += x * x
	}
	return math.Sqrt(ss / float64(len(xs))), nil
}
