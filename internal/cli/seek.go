package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fretboard/pkg/intervals"
	"github.com/matzehuels/fretboard/pkg/music"
)

const defaultRequired = "2-11,13,14"

// seekCommand creates the seek command for the interval seeker.
func (c *CLI) seekCommand() *cobra.Command {
	var (
		required string
		exclude  string
		from     string
		limit    int
	)
	opts := intervals.DefaultSeekOptions()

	cmd := &cobra.Command{
		Use:   "seek",
		Short: "Search for string gaps that cover a set of intervals",
		Long: `Search for string gaps that cover a set of intervals.

Every sequence of --length gaps with each gap between --min and --max
semitones is tried in order. A sequence is printed when the intervals its
strings span include every --required distance and none of the --exclude
distances. Lists take numbers and inclusive ranges: "2-11,13,14".

Shorter suffixes of a sequence are not examined once a suffix spans more
than --cutoff semitones.`,
		Example: `  fretboard seek
  fretboard seek --length 6 --exclude 1 --from E`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if opts.Required, err = intervals.ParseInts(required); err != nil {
				return fmt.Errorf("--required: %w", err)
			}
			if opts.Exclude, err = intervals.ParseInts(exclude); err != nil {
				return fmt.Errorf("--exclude: %w", err)
			}
			var root *music.Note
			if from != "" {
				n, err := music.ParseNote(from)
				if err != nil {
					return fmt.Errorf("--from: %w", err)
				}
				root = &n
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			found, err := intervals.Seek(opts)
			if err != nil {
				return err
			}
			if limit > 0 && len(found) > limit {
				found = found[:limit]
			}
			if err := writeCandidates(cmd.OutOrStdout(), found, root); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Found %d candidates", len(found)))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Length, "length", opts.Length, "gaps per candidate (strings - 1)")
	cmd.Flags().IntVar(&opts.Min, "min", opts.Min, "smallest gap in semitones")
	cmd.Flags().IntVar(&opts.Max, "max", opts.Max, "largest gap in semitones")
	cmd.Flags().StringVar(&required, "required", defaultRequired, "distances every candidate must span")
	cmd.Flags().StringVar(&exclude, "exclude", "", "distances no candidate may span")
	cmd.Flags().IntVar(&opts.Cutoff, "cutoff", opts.Cutoff, "suffix span that ends the search of a candidate (0 = none)")
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many candidates (0 = all)")
	cmd.Flags().StringVar(&from, "from", "", "also print each candidate as a tuning from this lowest note")

	return cmd
}

// writeCandidates prints one candidate per line, followed by the tuning it
// gives from root when root is set.
func writeCandidates(w io.Writer, found []intervals.Candidate, root *music.Note) error {
	for _, cand := range found {
		line := cand.String()
		if root != nil {
			line += "  " + tuningFromGaps(*root, cand.Gaps)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// tuningFromGaps stacks gaps on root, e.g. E + (5, 5) = "E A D".
func tuningFromGaps(root music.Note, gaps []int) string {
	names := []string{root.String()}
	n := root
	for _, g := range gaps {
		n = n.Add(g)
		names = append(names, n.String())
	}
	return strings.Join(names, " ")
}
