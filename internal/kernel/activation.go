package kernel

import "math"

// Sigmoid returns 1 / (1 + e^-x).
//
// Inputs beyond ±500 saturate to exactly 1 and 0 before the exponential
// can overflow. Total over all inputs; NaN propagates.
func Sigmoid(x float64) float64 {
	if x > 500 {
		return 1
	}
	if x < -500 {
		return 0
	}
	return 1 / (1 + math.Exp(-x))
}

// ReLU returns max(x, 0).
func ReLU(x float64) float64 {
	return math.Max(x, 0)
}

// LeakyReLU returns x for x >= 0 and alpha*x otherwise. The caller
// supplies alpha; no validity constraint is enforced.
func LeakyReLU(x, alpha float64) float64 {
	if x >= 0 {
		return x
	}
	return alpha * x
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 {
	return math.Tanh(x)
}
