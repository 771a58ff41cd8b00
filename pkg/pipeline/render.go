package pipeline

import (
	"fmt"
	"io"

	"github.com/matzehuels/fretboard/pkg/fretboard"
	pkgio "github.com/matzehuels/fretboard/pkg/io"
	"github.com/matzehuels/fretboard/pkg/tuning"
)

// Tables lays out the tables of a chart in output order: the notes table,
// the degree table when requested, then one masked degree table per
// scale. opts must have been validated.
func Tables(t tuning.Tuning, opts Options) ([]fretboard.Table, error) {
	base := opts.tableOptions()

	notes, err := fretboard.Build(t, base...)
	if err != nil {
		return nil, err
	}
	tables := []fretboard.Table{notes}

	if opts.Degrees {
		tb, err := fretboard.Build(t, append(base, fretboard.WithView(fretboard.ViewDegrees))...)
		if err != nil {
			return nil, err
		}
		tables = append(tables, tb)
	}

	for _, s := range opts.scales {
		tb, err := fretboard.Build(t, append(base, fretboard.WithView(fretboard.ViewDegrees), fretboard.WithMask(s))...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		tables = append(tables, tb)
	}
	return tables, nil
}

// Write renders c in the given format. Text output is the tables separated
// by blank lines followed, after one more blank line, by the interval
// summary.
func Write(w io.Writer, c pkgio.Chart, format string) error {
	switch format {
	case FormatJSON:
		return pkgio.WriteJSON(w, c)
	case FormatText:
		if err := fretboard.WriteTables(w, c.Tables...); err != nil {
			return err
		}
		if c.Intervals == nil || c.Intervals.Empty() {
			return nil
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		return c.Intervals.WriteText(w)
	default:
		return ValidateFormat(format)
	}
}
