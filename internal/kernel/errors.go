package kernel

import "errors"

// Error kinds. Every failing kernel call wraps exactly one of these
// sentinels together with the operation name and the offending values,
// e.g. "Dot: sequences differ in length: len(a)=2 len(b)=3". Callers
// match kinds with errors.Is. All kinds are non-retryable: they report
// invalid input, never a transient condition.
var (
	// ErrEmptyInput reports a sequence argument with zero elements where
	// at least one element is required.
	ErrEmptyInput = errors.New("input sequence is empty")

	// ErrLengthMismatch reports two sequence arguments of unequal length.
	ErrLengthMismatch = errors.New("sequences differ in length")

	// ErrZeroNorm reports a vector whose Euclidean norm is below machine
	// epsilon where division by the norm is required.
	ErrZeroNorm = errors.New("vector has zero norm")

	// ErrZeroVariance reports a sequence whose standard deviation is
	// below machine epsilon where division by it is required.
	ErrZeroVariance = errors.New("standard deviation is zero")

	// ErrDegenerateRange reports a sequence whose max-min span is below
	// machine epsilon (all elements equal).
	ErrDegenerateRange = errors.New("all elements are equal")

	// ErrNonPositivePrediction reports a prediction <= 0 where a
	// logarithm is required.
	ErrNonPositivePrediction = errors.New("prediction must be positive")

	// ErrSoftmaxUnderflow reports a softmax whose sum of exponentials
	// collapsed to exactly zero.
	ErrSoftmaxUnderflow = errors.New("sum of exponentials underflowed to zero")

	// ErrInvalidAlpha reports a smoothing coefficient outside [0, 1].
	ErrInvalidAlpha = errors.New("alpha must be in [0, 1]")

	// ErrInvalidRange reports a min bound that exceeds its max bound.
	ErrInvalidRange = errors.New("min bound exceeds max bound")
)

// eps is the IEEE-754 double-precision machine epsilon (2^-52), the
// near-zero threshold for every denominator guard in this package.
const eps = 0x1p-52
