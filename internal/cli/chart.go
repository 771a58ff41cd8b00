package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fretboard/pkg/errors"
	"github.com/matzehuels/fretboard/pkg/music"
	"github.com/matzehuels/fretboard/pkg/pipeline"
)

// chartCommand creates the chart command, the renderer the site generator
// shells out to.
func (c *CLI) chartCommand() *cobra.Command {
	var (
		output      string
		noCache     bool
		noIntervals bool
	)
	opts := pipeline.Options{
		Frets:  pipeline.DefaultFrets,
		Format: pipeline.DefaultFormat,
	}

	cmd := &cobra.Command{
		Use:   "chart [tuning]",
		Short: "Draw the fretboard chart for a tuning",
		Long: `Draw the fretboard chart for a tuning.

The tuning lists the open strings from lowest to highest, e.g. EADGBE or
"D G D G B D". Sharps follow their letter (C#). Characters that are not
notes are skipped, so "C6 add9" reads as C A D D.

The chart is the notes table, then the degree table (--degrees), then one
masked degree table per scale (--scales, --all-scales), then the intervals
the open strings span (unless --no-intervals).`,
		Example: `  fretboard chart EADGBE
  fretboard chart "E A E A C# E" --degrees --scales "minor pentatonic"
  fretboard chart DGDGBD --frets 24 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return errors.New(errors.ErrCodeMissingArgument, "missing tuning argument")
			}
			opts.Tuning = strings.Join(args, " ")
			opts.SkipIntervals = noIntervals
			return c.runChart(cmd.Context(), cmd.OutOrStdout(), opts, output, noCache)
		},
	}

	cmd.Flags().BoolVarP(&opts.Degrees, "degrees", "d", false, "add the scale-degree table")
	cmd.Flags().StringSliceVar(&opts.Scales, "scales", nil, "add a masked degree table per scale (comma-separated)")
	cmd.Flags().BoolVar(&opts.AllScales, "all-scales", false, "add a masked degree table for every scale")
	cmd.Flags().IntVar(&opts.Frets, "frets", opts.Frets, "frets to draw: 12, 13, 15, 16, 22 or 24")
	cmd.Flags().StringVar(&opts.Reference, "reference", "", "degree reference note (default: lowest string)")
	cmd.Flags().BoolVar(&noIntervals, "no-intervals", false, "omit the interval summary")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", opts.Format, "output format: text, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the chart to a file instead of stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached charts")

	registerChartCompletions(cmd)

	return cmd
}

// runChart renders the chart and writes it to w, or to output when set.
func (c *CLI) runChart(ctx context.Context, w io.Writer, opts pipeline.Options, output string, noCache bool) error {
	runner := c.newRunner(noCache)
	defer runner.Cache.Close()

	opts.Logger = loggerFromContext(ctx)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = w.Write(result.Output)
		return err
	}
	if err := errors.ValidateOutputPath(output); err != nil {
		return err
	}
	if err := os.WriteFile(output, result.Output, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Chart for %s", StyleHighlight.Render(result.Tuning.String()))
	printFile(output)
	printStats(result.Stats.Strings, result.Stats.Tables, result.CacheHit)
	return nil
}

// registerChartCompletions completes scale names, fret counts and formats.
func registerChartCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("scales", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return music.ScaleNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("frets", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var counts []string
		for _, n := range []int{12, 13, 15, 16, 22, 24} {
			counts = append(counts, strconv.Itoa(n))
		}
		return counts, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{pipeline.FormatText, pipeline.FormatJSON}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("reference", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, n := range music.Notes() {
			names = append(names, n.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}
