package fretboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/fretboard/pkg/errors"
	"github.com/matzehuels/fretboard/pkg/music"
	"github.com/matzehuels/fretboard/pkg/tuning"
)

// blankCell replaces a masked-out fretted cell.
const blankCell = "  "

// inlays are the marked frets, lap-steel style (10 rather than 9).
var inlays = map[int]bool{3: true, 5: true, 7: true, 10: true, 12: true, 15: true, 17: true, 19: true, 22: true, 24: true}

// Row is one string of a table. Cells[0] is the open string; Cells[f] is
// fret f. Each cell is exactly two characters wide.
type Row struct {
	Open  music.Note `json:"open"`
	Cells []string   `json:"cells"`
}

// Table is a laid-out fretboard, ready to print.
type Table struct {
	Title     string     `json:"title,omitempty"`
	View      string     `json:"view"`
	Frets     int        `json:"frets"`
	Reference music.Note `json:"reference"`
	Rows      []Row      `json:"rows"`
}

// Build computes the cells of a table for t. Rows are ordered highest
// string first.
func Build(t tuning.Tuning, opts ...Option) (Table, error) {
	o := newOptions(opts...)
	if err := ValidateFrets(o.frets); err != nil {
		return Table{}, err
	}
	if t.Len() == 0 {
		return Table{}, errors.New(errors.ErrCodeEmptyTuning, "tuning has no strings")
	}

	ref := t.Lowest()
	if o.reference != nil {
		ref = *o.reference
	}

	tb := Table{
		Title:     o.title,
		View:      o.view.String(),
		Frets:     o.frets,
		Reference: ref,
	}
	if o.scale != nil && tb.Title == "" {
		tb.Title = o.scale.Name
	}

	for _, open := range t.Strings() {
		row := Row{Open: open, Cells: make([]string, o.frets+1)}
		for f := 0; f <= o.frets; f++ {
			n := open.Add(f)
			deg := music.DegreeOf(ref, n)
			if f > 0 && o.scale != nil && !o.scale.Mask.Has(deg) {
				row.Cells[f] = blankCell
				continue
			}
			if o.view == ViewDegrees {
				row.Cells[f] = deg.Cell()
			} else {
				row.Cells[f] = n.Cell()
			}
		}
		tb.Rows = append(tb.Rows, row)
	}
	return tb, nil
}

// Render builds a table for t and writes it to w.
func Render(w io.Writer, t tuning.Tuning, opts ...Option) error {
	tb, err := Build(t, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, tb.String())
	return err
}

// String returns the table as text, one line per row, newline terminated.
func (tb Table) String() string {
	var b strings.Builder
	if tb.Title != "" {
		b.WriteString(tb.Title)
		b.WriteByte('\n')
	}
	ruler := rulerLine(tb.Frets)
	lines := []string{ruler, numberLine(tb.Frets), ruler}
	for _, r := range tb.Rows {
		lines = append(lines, rowLine(r.Cells))
	}
	lines = append(lines, ruler, inlayLine(tb.Frets), ruler)
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTables writes tables to w separated by blank lines.
func WriteTables(w io.Writer, tables ...Table) error {
	for i, tb := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, tb.String()); err != nil {
			return err
		}
	}
	return nil
}

// Width returns the character width of every line of a table with the
// given fret count.
func Width(frets int) int {
	return 5*frets + 6
}

func rulerLine(frets int) string {
	return "    ||" + strings.Repeat("-", 5*frets-1) + "|"
}

func numberLine(frets int) string {
	var b strings.Builder
	b.WriteString("    |")
	for f := 1; f <= frets; f++ {
		fmt.Fprintf(&b, "| %-2d ", f)
	}
	b.WriteString("|")
	return b.String()
}

func rowLine(cells []string) string {
	var b strings.Builder
	b.WriteString(" " + cells[0] + " |")
	for _, c := range cells[1:] {
		b.WriteString("| " + c + " ")
	}
	b.WriteString("|")
	return b.String()
}

// inlayLine marks each inlay fret with "*" under the cell's first column.
func inlayLine(frets int) string {
	line := []byte(strings.Repeat(" ", Width(frets)))
	copy(line, "    ||")
	line[len(line)-1] = '|'
	for f := 1; f <= frets; f++ {
		if inlays[f] {
			line[5*f+2] = '*'
		}
	}
	return string(line)
}
