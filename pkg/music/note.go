package music

import (
	"strings"

	"github.com/matzehuels/fretboard/pkg/errors"
)

// NoteCount is the number of pitch classes in the chromatic cycle.
const NoteCount = 12

// Note is a pitch class, an index into the chromatic cycle starting at A.
type Note uint8

// The twelve pitch classes in cycle order.
const (
	A Note = iota
	ASharp
	B
	C
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
)

var noteNames = [NoteCount]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// String returns the bare note name, e.g. "C#".
func (n Note) String() string {
	return noteNames[n%NoteCount]
}

// Cell returns the note name padded to the two-character table cell width.
func (n Note) Cell() string {
	return pad2(n.String())
}

// Next returns the cyclic successor of n (one fret higher).
func (n Note) Next() Note {
	return n.Add(1)
}

// Add returns the note k semitones above n. Negative k walks down.
func (n Note) Add(k int) Note {
	return Note(mod12(int(n) + k))
}

// Distance returns how many semitones "to" lies above "from", in [0, 11].
func Distance(from, to Note) int {
	return mod12(int(to) - int(from))
}

// ParseNote looks up a single note name such as "c#" or "A ".
// Trailing spaces are ignored so the padded table form parses too.
func ParseNote(s string) (Note, error) {
	name := strings.ToUpper(strings.TrimRight(s, " "))
	for i, n := range noteNames {
		if n == name {
			return Note(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeUnknownNote, "unknown note %q", s)
}

// MarshalText encodes the note by name so JSON output reads "C#" rather
// than an index.
func (n Note) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText decodes a note name.
func (n *Note) UnmarshalText(text []byte) error {
	v, err := ParseNote(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Notes returns the full chromatic cycle starting at A.
func Notes() []Note {
	out := make([]Note, NoteCount)
	for i := range out {
		out[i] = Note(i)
	}
	return out
}

func mod12(v int) int {
	v %= NoteCount
	if v < 0 {
		v += NoteCount
	}
	return v
}

func pad2(s string) string {
	if len(s) >= 2 {
		return s
	}
	return s + " "
}
