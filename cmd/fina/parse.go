package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
)

// readSequence parses one flat sequence of floats from the trailing
// arguments, or from stdin when no arguments (or a single "-") are
// given.
func readSequence(cmd *cobra.Command, args []string) ([]float64, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return parseSequence(string(data))
	}
	return parseSequence(strings.Join(args, " "))
}

// parseSequence splits s on commas and whitespace and parses every
// token as a float64. An input with no tokens yields an empty sequence;
// the kernels report that case themselves.
func parseSequence(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
