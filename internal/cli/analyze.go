package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fretboard/pkg/errors"
	"github.com/matzehuels/fretboard/pkg/intervals"
	"github.com/matzehuels/fretboard/pkg/pipeline"
	"github.com/matzehuels/fretboard/pkg/tuning"
)

// analyzeCommand creates the analyze command for the interval summary alone.
func (c *CLI) analyzeCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "analyze [tuning]",
		Short: "Print the intervals a tuning's open strings span",
		Long: `Print the intervals a tuning's open strings span.

Every pair of strings (lower to higher) spans an interval; the summary lists
the distinct intervals available and every narrower distance that no pair
reaches.`,
		Example: `  fretboard analyze "E A E A C# E"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return errors.New(errors.ErrCodeMissingArgument, "missing tuning argument")
			}
			input := strings.Join(args, " ")
			if err := errors.ValidateTuningArg(input); err != nil {
				return err
			}
			if err := pipeline.ValidateFormat(format); err != nil {
				return err
			}

			t, _, err := pipeline.Parse(cmd.Context(), input)
			if err != nil {
				return err
			}
			report, err := intervals.Analyze(t.Notes())
			if err != nil {
				return err
			}
			return writeAnalysis(cmd.OutOrStdout(), t, report, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatText, "output format: text, json")
	return cmd
}

func writeAnalysis(w io.Writer, t tuning.Tuning, report intervals.Report, format string) error {
	if format == pipeline.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Tuning    tuning.Tuning    `json:"tuning"`
			Intervals intervals.Report `json:"intervals"`
		}{t, report})
	}

	fmt.Fprintf(w, "Tuning: %s\n", t)
	if report.Empty() {
		_, err := fmt.Fprintln(w, "A single string spans no intervals.")
		return err
	}
	fmt.Fprintf(w, "Gaps: %s\n", joinInts(report.Gaps))
	return report.WriteText(w)
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, " ")
}
