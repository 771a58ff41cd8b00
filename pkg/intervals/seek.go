package intervals

import (
	"strconv"
	"strings"

	"github.com/matzehuels/fretboard/pkg/errors"
)

// SeekOptions bounds the brute-force search.
type SeekOptions struct {
	Length   int   // gaps per candidate (strings - 1)
	Min, Max int   // inclusive range each gap is drawn from
	Required []int // distances every candidate must reach
	Exclude  []int // candidates reaching any of these are dropped
	Cutoff   int   // stop at a suffix summing past this; 0 = no limit
}

// DefaultSeekOptions looks for five-gap (six-string) tunings with gaps of
// 2 to 6 semitones that reach every interval from M2 to M9 except P8.
func DefaultSeekOptions() SeekOptions {
	return SeekOptions{
		Length:   5,
		Min:      2,
		Max:      6,
		Required: []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 14},
		Cutoff:   19,
	}
}

// Validate checks the search bounds.
func (o SeekOptions) Validate() error {
	if o.Length < 1 || o.Length > 8 {
		return errors.New(errors.ErrCodeInvalidInput, "gap count %d out of range (1-8)", o.Length)
	}
	if o.Min < 0 || o.Max > 11 || o.Min > o.Max {
		return errors.New(errors.ErrCodeInvalidInput, "gap range %d-%d invalid (0 <= min <= max <= 11)", o.Min, o.Max)
	}
	if o.Cutoff < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cutoff must not be negative")
	}
	return nil
}

// Candidate is a gap sequence that satisfied the search.
type Candidate struct {
	Gaps      []int `json:"gaps"`
	Reachable []int `json:"reachable"`
}

// String formats the candidate as "(2, 3, 4, 4, 6) {2, 3, 4, ...}".
func (c Candidate) String() string {
	return "(" + joinInts(c.Gaps) + ") {" + joinInts(c.Reachable) + "}"
}

// Seek enumerates every gap sequence in lexicographic order and returns
// those whose reachable set contains all required distances and none of
// the excluded ones.
func Seek(opts SeekOptions) ([]Candidate, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	gaps := make([]int, opts.Length)
	for i := range gaps {
		gaps[i] = opts.Min
	}

	var out []Candidate
	for {
		reach := reachable(gaps, opts.Cutoff)
		if accepts(reach, opts) {
			out = append(out, Candidate{
				Gaps:      append([]int(nil), gaps...),
				Reachable: reach,
			})
		}
		if !advance(gaps, opts.Min, opts.Max) {
			return out, nil
		}
	}
}

// advance steps gaps like an odometer, last position fastest. It returns
// false after the final combination.
func advance(gaps []int, lo, hi int) bool {
	for i := len(gaps) - 1; i >= 0; i-- {
		if gaps[i] < hi {
			gaps[i]++
			return true
		}
		gaps[i] = lo
	}
	return false
}

func accepts(reach []int, opts SeekOptions) bool {
	set := make(map[int]bool, len(reach))
	for _, d := range reach {
		set[d] = true
	}
	for _, d := range opts.Required {
		if !set[d] {
			return false
		}
	}
	for _, d := range opts.Exclude {
		if set[d] {
			return false
		}
	}
	return true
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ", ")
}

// ParseInts parses a comma-separated list such as "2,3,4" or "2-6,9".
// Ranges are inclusive.
func ParseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			a, err1 := strconv.Atoi(strings.TrimSpace(lo))
			b, err2 := strconv.Atoi(strings.TrimSpace(hi))
			if err1 != nil || err2 != nil || a > b {
				return nil, errors.New(errors.ErrCodeInvalidInput, "invalid range %q", part)
			}
			for n := a; n <= b; n++ {
				out = append(out, n)
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid number %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}
