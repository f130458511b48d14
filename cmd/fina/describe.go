package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fina-ml/fina/kernel"
)

// DescribeHandler prints a summary-statistics table for the input
// sequence.
func DescribeHandler(cmd *cobra.Command, args []string) error {
	xs, err := readSequence(cmd, args)
	if err != nil {
		return err
	}

	mean, err := kernel.Mean(xs)
	if err != nil {
		return err
	}
	// Non-empty from here on; the remaining kernels cannot fail.
	variance, _ := kernel.Variance(xs)
	stddev, _ := kernel.StdDev(xs)
	rms, _ := kernel.RMS(xs)

	minVal, maxVal := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < minVal {
			minVal = x
		}
		if x > maxVal {
			maxVal = x
		}
	}

	data := [][]string{
		{"COUNT", strconv.Itoa(len(xs))},
		{"MEAN", formatFloat(mean)},
		{"VARIANCE", formatFloat(variance)},
		{"STD DEV", formatFloat(stddev)},
		{"MIN", formatFloat(minVal)},
		{"MAX", formatFloat(maxVal)},
		{"RMS", formatFloat(rms)},
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"STAT", "VALUE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}
