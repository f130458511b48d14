// Package kernel implements the numeric kernels behind the Fina library.
//
// The package is a flat collection of pure functions over float64 scalars
// and []float64 sequences:
//   - Descriptive statistics: Mean, Variance, StdDev, RMS
//   - Vector metrics: Dot, Euclidean, CosineSimilarity
//   - Activations: Sigmoid, ReLU, LeakyReLU, Tanh
//   - Losses: Softmax, CrossEntropy, MSE, LogLoss
//   - Normalization and smoothing: MinMaxNormalize, ZScoreNormalize, EMA
//   - Scalar utility: Clamp
//
// Every function is stateless and reentrant: nothing outside the call's
// own stack frame is read or written, inputs are never mutated, and
// sequence results are freshly allocated. Calls may run concurrently with
// no synchronization.
//
// Functions with preconditions return an error wrapping one of the
// package's sentinel kinds (ErrEmptyInput, ErrLengthMismatch, ...), so
// callers can discriminate failures with errors.Is. Activations are total
// and return no error; NaN and infinities propagate per IEEE-754.
package kernel
