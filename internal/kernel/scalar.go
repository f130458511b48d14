package kernel

import (
	"fmt"
	"math"
)

// Clamp bounds x into [lo, hi].
func Clamp(x, lo, hi float64) (float64, error) {
	if lo > hi {
		return 0, fmt.Errorf("Clamp: %w: lo=%v hi=%v", ErrInvalidRange, lo, hi)
	}
	return math.Min(math.Max(x, lo), hi), nil
}
