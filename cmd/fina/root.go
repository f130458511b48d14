package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fina-ml/fina/kernel"
)

const version = "v0.1.0"

// NewCLI builds the fina command tree. Sequences are passed as trailing
// arguments (comma- or whitespace-separated floats) or piped on stdin.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fina",
		Short:         "Numeric kernels for statistical and ML preprocessing",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	describeCmd := &cobra.Command{
		Use:   "describe [values...]",
		Short: "Summary statistics for a sequence",
		RunE:  DescribeHandler,
	}

	normalizeCmd := &cobra.Command{
		Use:   "normalize [values...]",
		Short: "Rescale a sequence (min-max or z-score)",
		RunE:  NormalizeHandler,
	}
	normalizeCmd.Flags().String("method", "minmax", "Normalization method: minmax or zscore")

	softmaxCmd := &cobra.Command{
		Use:   "softmax [values...]",
		Short: "Numerically-stabilized softmax of a sequence",
		RunE:  SoftmaxHandler,
	}

	emaCmd := &cobra.Command{
		Use:   "ema [values...]",
		Short: "Exponential moving average of a sequence",
		RunE:  EMAHandler,
	}
	emaCmd.Flags().Float64("alpha", 0.5, "Smoothing factor in [0, 1]")

	distanceCmd := &cobra.Command{
		Use:   "distance SEQUENCE_A SEQUENCE_B",
		Short: "Metric between two sequences of equal length",
		Args:  cobra.ExactArgs(2),
		RunE:  DistanceHandler,
	}
	distanceCmd.Flags().String("metric", "euclidean", "Metric: dot, euclidean or cosine")

	activateCmd := &cobra.Command{
		Use:   "activate [values...]",
		Short: "Apply an activation function elementwise",
		RunE:  ActivateHandler,
	}
	activateCmd.Flags().String("fn", "", "Activation: sigmoid, relu, leaky-relu or tanh")
	activateCmd.Flags().Float64("alpha", 0.01, "Negative-side slope for leaky-relu")
	_ = activateCmd.MarkFlagRequired("fn")

	lossCmd := &cobra.Command{
		Use:   "loss PREDICTIONS TARGETS",
		Short: "Loss between predictions and targets",
		Args:  cobra.ExactArgs(2),
		RunE:  LossHandler,
	}
	lossCmd.Flags().String("fn", "", "Loss: mse, cross-entropy or log-loss")
	_ = lossCmd.MarkFlagRequired("fn")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fina %s\n", version)
		},
	}

	rootCmd.AddCommand(
		describeCmd,
		normalizeCmd,
		softmaxCmd,
		emaCmd,
		distanceCmd,
		activateCmd,
		lossCmd,
		versionCmd,
	)

	return rootCmd
}

// NormalizeHandler rescales the input with the selected method.
func NormalizeHandler(cmd *cobra.Command, args []string) error {
	xs, err := readSequence(cmd, args)
	if err != nil {
		return err
	}
	method, _ := cmd.Flags().GetString("method")

	var out []float64
	switch method {
	case "minmax":
		out, err = kernel.MinMaxNormalize(xs)
	case "zscore":
		out, err = kernel.ZScoreNormalize(xs)
	default:
		return fmt.Errorf("unknown method %q (want minmax or zscore)", method)
	}
	if err != nil {
		return err
	}
	printSequence(cmd, out)
	return nil
}

// SoftmaxHandler prints the softmax of the input, one value per line.
func SoftmaxHandler(cmd *cobra.Command, args []string) error {
	xs, err := readSequence(cmd, args)
	if err != nil {
		return err
	}
	out, err := kernel.Softmax(xs)
	if err != nil {
		return err
	}
	printSequence(cmd, out)
	return nil
}

// EMAHandler smooths the input with an exponential moving average.
func EMAHandler(cmd *cobra.Command, args []string) error {
	xs, err := readSequence(cmd, args)
	if err != nil {
		return err
	}
	alpha, _ := cmd.Flags().GetFloat64("alpha")
	out, err := kernel.EMA(xs, alpha)
	if err != nil {
		return err
	}
	printSequence(cmd, out)
	return nil
}

// DistanceHandler computes the selected metric between two sequences.
func DistanceHandler(cmd *cobra.Command, args []string) error {
	a, err := parseSequence(args[0])
	if err != nil {
		return err
	}
	b, err := parseSequence(args[1])
	if err != nil {
		return err
	}
	metric, _ := cmd.Flags().GetString("metric")

	var v float64
	switch metric {
	case "dot":
		v, err = kernel.Dot(a, b)
	case "euclidean":
		v, err = kernel.Euclidean(a, b)
	case "cosine":
		v, err = kernel.CosineSimilarity(a, b)
	default:
		return fmt.Errorf("unknown metric %q (want dot, euclidean or cosine)", metric)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatFloat(v))
	return nil
}

// ActivateHandler applies a scalar activation to every element.
func ActivateHandler(cmd *cobra.Command, args []string) error {
	xs, err := readSequence(cmd, args)
	if err != nil {
		return err
	}
	fn, _ := cmd.Flags().GetString("fn")
	alpha, _ := cmd.Flags().GetFloat64("alpha")

	var f func(float64) float64
	switch fn {
	case "sigmoid":
		f = kernel.Sigmoid
	case "relu":
		f = kernel.ReLU
	case "leaky-relu":
		f = func(x float64) float64 { return kernel.LeakyReLU(x, alpha) }
	case "tanh":
		f = kernel.Tanh
	default:
		return fmt.Errorf("unknown activation %q (want sigmoid, relu, leaky-relu or tanh)", fn)
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	printSequence(cmd, out)
	return nil
}

// LossHandler computes the selected loss between predictions and targets.
func LossHandler(cmd *cobra.Command, args []string) error {
	pred, err := parseSequence(args[0])
	if err != nil {
		return err
	}
	target, err := parseSequence(args[1])
	if err != nil {
		return err
	}
	fn, _ := cmd.Flags().GetString("fn")

	var v float64
	switch fn {
	case "mse":
		v, err = kernel.MSE(pred, target)
	case "cross-entropy":
		v, err = kernel.CrossEntropy(pred, target)
	case "log-loss":
		v, err = kernel.LogLoss(pred, target)
	default:
		return fmt.Errorf("unknown loss %q (want mse, cross-entropy or log-loss)", fn)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatFloat(v))
	return nil
}

func printSequence(cmd *cobra.Command, xs []float64) {
	w := cmd.OutOrStdout()
	for _, x := range xs {
		fmt.Fprintln(w, formatFloat(x))
	}
}
