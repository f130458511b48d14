package kernel

import (
	"fmt"
	"math"
)

// Softmax returns the normalized exponentials of xs.
//
// The maximum element is subtracted before exponentiating so that large
// inputs cannot overflow the exponential. The underflow check is an
// exact comparison against 0.0, not an epsilon bound: only a sum that
// collapsed entirely to zero is an error.
func Softmax(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("Softmax: %w", ErrEmptyInput)
	}
	maxVal := math.Inf(-1)
	for _, x := range xs {
		if x > maxVal {
			maxVal = x
		}
	}
	out := make([]float64, len(xs))
	var sum float64
	for i, x := range xs {
		out[i] = math.Exp(x - maxVal)
		sum += out[i]
	}
	if sum == 0 {
		return nil, fmt.Errorf("Softmax: %w", ErrSoftmaxUnderflow)
	}
	for i := range out {
		out[i] /= sum
	}
	return out, nil
}

// CrossEntropy returns -sum(target_i * ln(pred_i)).
//
// Every prediction must be strictly positive; the per-element check
// short-circuits on the first violation. Contrast with LogLoss, which
// clamps out-of-range predictions instead of rejecting them.
func CrossEntropy(pred, target []float64) (float64, error) {
	if len(pred) != len(target) {
		return 0, fmt.Errorf("CrossEntropy: %w: len(pred)=%d len(target)=%d", ErrLengthMismatch, len(pred), len(target))
	}
	if len(pred) == 0 {
		return 0, fmt.Errorf("CrossEntropy: %w", ErrEmptyInput)
	}
	var loss float64
	for i, p := range pred {
		if p <= 0 {
			return 0, fmt.Errorf("CrossEntropy: %w: pred[%d]=%v", ErrNonPositivePrediction, i, p)
		}
		loss += target[i] * math.Log(p)
	}
	return -loss, nil
}

// MSE returns the mean squared error mean((pred_i - target_i)^2).
func MSE(pred, target []float64) (float64, error) {
	if len(pred) != len(target) {
		return 0, fmt.Errorf("MSE: %w: len(pred)=%d len(target)=%d", ErrLengthMismatch, len(pred), len(target))
	}
	if len(pred) == 0 {
		return 0, fmt.Errorf("MSE: %w", ErrEmptyInput)
	}
	var ss float64
	for i := range pred {
		d := pred[i] - target[i]
		ss += d * d
	}
	return ss / float64(len(pred)), nil
}

// LogLoss returns the binary cross-entropy, averaged over samples:
// mean of -(t*ln(p') + (1-t)*ln(1-p')) with p' = p clamped into
// [eps, 1-eps].
//
// The clamp is silent: out-of-range predictions are not an error here.
// This deliberately diverges from CrossEntropy's strict check.
func LogLoss(pred, target []float64) (float64, error) {
	if len(pred) != len(target) {
		return 0, fmt.Errorf("LogLoss: %w: len(pred)=%d len(target)=%d", ErrLengthMismatch, len(pred), len(target))
	}
	if len(pred) == 0 {
		return 0, fmt.Errorf("LogLoss: %w", ErrEmptyInput)
	}
	var loss float64
	for i, p := range pred {
		p = math.Min(math.Max(p, eps), 1-eps)
		t := target[i]
		loss += t*math.Log(p) + (1-t)*math.Log(1-p)
	}
	return -loss / float64(len(pred)), nil
}
