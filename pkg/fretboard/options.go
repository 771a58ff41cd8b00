package fretboard

import (
	"github.com/matzehuels/fretboard/pkg/errors"
	"github.com/matzehuels/fretboard/pkg/music"
)

// View selects what each cell shows.
type View int

const (
	ViewNotes   View = iota // absolute note names
	ViewDegrees             // degree labels relative to the reference note
)

// String returns "notes" or "degrees".
func (v View) String() string {
	if v == ViewDegrees {
		return "degrees"
	}
	return "notes"
}

// DefaultFrets is the number of frets drawn when none is requested.
const DefaultFrets = 12

// ValidFrets is the set of supported fret counts. Each has a matching ruler
// and inlay row.
var ValidFrets = map[int]bool{12: true, 13: true, 15: true, 16: true, 22: true, 24: true}

// ValidateFrets checks n against ValidFrets.
func ValidateFrets(n int) error {
	if !ValidFrets[n] {
		return errors.New(errors.ErrCodeInvalidFrets, "unsupported fret count %d (must be 12, 13, 15, 16, 22 or 24)", n)
	}
	return nil
}

// Option configures Build.
type Option func(*options)

type options struct {
	frets     int
	view      View
	reference *music.Note
	scale     *music.Scale
	title     string
}

// WithFrets sets the number of frets drawn after the open string.
func WithFrets(n int) Option { return func(o *options) { o.frets = n } }

// WithView selects notes or degrees.
func WithView(v View) Option { return func(o *options) { o.view = v } }

// WithReference sets the degree reference note. Default is the lowest
// string.
func WithReference(n music.Note) Option { return func(o *options) { o.reference = &n } }

// WithMask blanks fretted cells whose degree is not in the scale's mask.
// The table title defaults to the scale name.
func WithMask(s music.Scale) Option { return func(o *options) { o.scale = &s } }

// WithTitle prints a title line above the table.
func WithTitle(title string) Option { return func(o *options) { o.title = title } }

func newOptions(opts ...Option) options {
	o := options{frets: DefaultFrets}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
