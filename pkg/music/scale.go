package music

import (
	"math/bits"
	"strings"

	"github.com/matzehuels/fretboard/pkg/errors"
)

// Mask is a 12-bit set of active degrees; bit i set means Degree(i) is part
// of the scale or chord shape.
type Mask uint16

// MaskOf builds a mask from the given degrees.
func MaskOf(degrees ...Degree) Mask {
	var m Mask
	for _, d := range degrees {
		m |= 1 << (d % NoteCount)
	}
	return m
}

// Has reports whether degree d is active.
func (m Mask) Has(d Degree) bool {
	return m&(1<<(d%NoteCount)) != 0
}

// Count returns the number of active degrees.
func (m Mask) Count() int {
	return bits.OnesCount16(uint16(m & 0x0fff))
}

// Degrees returns the active degrees in ascending order.
func (m Mask) Degrees() []Degree {
	var out []Degree
	for d := Degree(0); d < NoteCount; d++ {
		if m.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Scale is a named degree mask.
type Scale struct {
	Name string
	Mask Mask
}

// Scales is the catalogue of named masks in display order.
var Scales = []Scale{
	{"Major scale", MaskOf(0, 2, 4, 5, 7, 9, 11)},
	{"Natural minor scale", MaskOf(0, 2, 3, 5, 7, 8, 10)},
	{"Major pentatonic", MaskOf(0, 2, 4, 7, 9)},
	{"Minor pentatonic", MaskOf(0, 3, 5, 7, 10)},
	{"Blues scale", MaskOf(0, 3, 5, 6, 7, 10)},
	{"Dorian", MaskOf(0, 2, 3, 5, 7, 9, 10)},
	{"Mixolydian", MaskOf(0, 2, 4, 5, 7, 9, 10)},
	{"Major triad", MaskOf(0, 4, 7)},
	{"Minor triad", MaskOf(0, 3, 7)},
	{"Dominant 7th", MaskOf(0, 4, 7, 10)},
	{"Major 7th", MaskOf(0, 4, 7, 11)},
	{"Minor 7th", MaskOf(0, 3, 7, 10)},
	{"Major 6th", MaskOf(0, 4, 7, 9)},
	{"Minor 6th", MaskOf(0, 3, 7, 9)},
	{"Add 9", MaskOf(0, 2, 4, 7)},
}

// LookupScale finds a scale by name. Matching ignores case and treats
// "-" and "_" as spaces, so "minor-pentatonic" finds "Minor pentatonic".
func LookupScale(name string) (Scale, error) {
	key := normalizeScaleName(name)
	for _, s := range Scales {
		if normalizeScaleName(s.Name) == key {
			return s, nil
		}
	}
	return Scale{}, errors.New(errors.ErrCodeUnknownScale, "unknown scale %q", name)
}

// ScaleNames returns the catalogue names in display order.
func ScaleNames() []string {
	names := make([]string, len(Scales))
	for i, s := range Scales {
		names[i] = s.Name
	}
	return names
}

func normalizeScaleName(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}
