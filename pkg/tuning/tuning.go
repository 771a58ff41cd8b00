package tuning

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/fretboard/pkg/errors"
	"github.com/matzehuels/fretboard/pkg/music"
)

// MaxStrings is the largest string count charts are laid out for. Longer
// tunings still parse; the interval table is sized for this many strings.
const MaxStrings = 8

// Tuning is an ordered set of open-string notes, lowest string first.
// The zero value has no strings; use [Parse] or [New].
type Tuning struct {
	notes []music.Note
}

// New builds a tuning from notes given lowest string first.
func New(notes ...music.Note) (Tuning, error) {
	if len(notes) == 0 {
		return Tuning{}, errors.New(errors.ErrCodeEmptyTuning, "tuning has no strings")
	}
	return Tuning{notes: append([]music.Note(nil), notes...)}, nil
}

// Parse scans s and keeps every candidate that resolves to a note.
// It fails only when nothing usable remains.
func Parse(s string) (Tuning, error) {
	var notes []music.Note
	for _, tok := range Scan(s) {
		if tok.OK() {
			notes = append(notes, tok.Note)
		}
	}
	if len(notes) == 0 {
		return Tuning{}, errors.New(errors.ErrCodeEmptyTuning, "no notes found in %q", s)
	}
	return Tuning{notes: notes}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Tuning {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of strings.
func (t Tuning) Len() int { return len(t.notes) }

// Notes returns the open-string notes, lowest string first.
func (t Tuning) Notes() []music.Note {
	return append([]music.Note(nil), t.notes...)
}

// Strings returns the open-string notes in chart order, highest string
// first.
func (t Tuning) Strings() []music.Note {
	out := t.Notes()
	reverse(out)
	return out
}

// Lowest returns the lowest string's note. It panics on an empty tuning.
func (t Tuning) Lowest() music.Note { return t.notes[0] }

// String renders the notes separated by spaces, e.g. "E A D G B E".
func (t Tuning) String() string {
	names := make([]string, len(t.notes))
	for i, n := range t.notes {
		names[i] = n.String()
	}
	return strings.Join(names, " ")
}

// Compact renders the notes without separators, e.g. "EADGBE".
func (t Tuning) Compact() string {
	return strings.ReplaceAll(t.String(), " ", "")
}

// MarshalJSON encodes the tuning as an array of note names.
func (t Tuning) MarshalJSON() ([]byte, error) {
	names := make([]string, len(t.notes))
	for i, n := range t.notes {
		names[i] = n.String()
	}
	return json.Marshal(names)
}

// UnmarshalJSON decodes an array of note names.
func (t *Tuning) UnmarshalJSON(data []byte) error {
	var notes []music.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return err
	}
	v, err := New(notes...)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
