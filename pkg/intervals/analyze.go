package intervals

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/matzehuels/fretboard/pkg/music"
)

// Interval is a semitone distance and its name.
type Interval struct {
	Distance int    `json:"distance"`
	Name     string `json:"name"`
}

// Report is the result of analyzing a tuning's open strings.
type Report struct {
	Gaps      []int      `json:"gaps"`
	Available []Interval `json:"available"`
	Missing   []Interval `json:"missing"`
}

// Empty reports whether there was nothing to analyze (fewer than two
// strings).
func (r Report) Empty() bool { return len(r.Gaps) == 0 }

// Gaps returns the distance from each string to the next higher one.
// notes are ordered lowest string first.
func Gaps(notes []music.Note) []int {
	if len(notes) < 2 {
		return nil
	}
	gaps := make([]int, len(notes)-1)
	for i := range gaps {
		gaps[i] = music.Distance(notes[i], notes[i+1])
	}
	return gaps
}

// Reachable returns every running sum of every suffix of gaps, deduplicated
// and sorted ascending.
func Reachable(gaps []int) []int {
	return reachable(gaps, 0)
}

// reachable stops examining shorter suffixes once a whole suffix sums past
// cutoff. A cutoff of 0 disables the limit.
func reachable(gaps []int, cutoff int) []int {
	seen := make(map[int]bool)
	for start := range gaps {
		acc := 0
		for _, g := range gaps[start:] {
			acc += g
			seen[acc] = true
		}
		if cutoff > 0 && acc > cutoff {
			break
		}
	}
	out := make([]int, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// Analyze lists the intervals spanned by notes (lowest string first) and
// the distances up to the widest span that no pair of strings reaches.
// Unison is never reported missing. With fewer than two notes the report
// is empty.
func Analyze(notes []music.Note) (Report, error) {
	gaps := Gaps(notes)
	if len(gaps) == 0 {
		return Report{}, nil
	}

	dists := Reachable(gaps)
	available, err := named(dists)
	if err != nil {
		return Report{}, fmt.Errorf("analyze: %w", err)
	}

	var missingDists []int
	widest := dists[len(dists)-1]
	for d := 1; d <= widest; d++ {
		if _, ok := slices.BinarySearch(dists, d); !ok {
			missingDists = append(missingDists, d)
		}
	}
	missing, err := named(missingDists)
	if err != nil {
		return Report{}, fmt.Errorf("analyze: %w", err)
	}

	return Report{Gaps: gaps, Available: available, Missing: missing}, nil
}

func named(dists []int) ([]Interval, error) {
	out := make([]Interval, 0, len(dists))
	for _, d := range dists {
		name, err := music.IntervalName(d)
		if err != nil {
			return nil, err
		}
		out = append(out, Interval{Distance: d, Name: name})
	}
	return out, nil
}

// WriteText writes the two summary lines:
//
//	Available intervals (11): m3 M3 P4 P5 M6 P8 M10 P11 P12 M13 P15
//	Missing intervals (13): m2 M2 TT ...
//
// An empty report writes nothing.
func (r Report) WriteText(w io.Writer) error {
	if r.Empty() {
		return nil
	}
	_, err := fmt.Fprintf(w, "Available intervals (%d): %s\nMissing intervals (%d): %s\n",
		len(r.Available), joinNames(r.Available),
		len(r.Missing), joinNames(r.Missing))
	return err
}

func joinNames(iv []Interval) string {
	if len(iv) == 0 {
		return "none"
	}
	names := make([]string, len(iv))
	for i, v := range iv {
		names[i] = v.Name
	}
	return strings.Join(names, " ")
}
