package music

import (
	"fmt"

	"github.com/matzehuels/fretboard/pkg/errors"
)

// MaxIntervalDistance is the widest span the interval table names: seven
// major-seventh gaps, the most an eight-string tuning can stack.
const MaxIntervalDistance = 77

// simpleIntervals names the distances within one octave.
var simpleIntervals = [NoteCount + 1]string{
	"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7", "P8",
}

// compoundQualities gives quality and interval number for 1..12 semitones;
// compound intervals add 7 to the number per octave.
var compoundQualities = [NoteCount]struct {
	quality string
	number  int
}{
	{"m", 2}, {"M", 2}, {"m", 3}, {"M", 3}, {"P", 4}, {"A", 4},
	{"P", 5}, {"m", 6}, {"M", 6}, {"m", 7}, {"M", 7}, {"P", 8},
}

var intervalNames = buildIntervalNames()

func buildIntervalNames() []string {
	names := make([]string, MaxIntervalDistance+1)
	for d := range names {
		if d <= NoteCount {
			names[d] = simpleIntervals[d]
			continue
		}
		q := compoundQualities[(d-1)%NoteCount]
		octaves := (d - 1) / NoteCount
		names[d] = fmt.Sprintf("%s%d", q.quality, q.number+7*octaves)
	}
	return names
}

// IntervalName returns the name of an interval d semitones wide.
// Negative or out-of-table distances return an INTERVAL_OUT_OF_RANGE error.
func IntervalName(d int) (string, error) {
	if d < 0 || d >= len(intervalNames) {
		return "", errors.New(errors.ErrCodeIntervalOverflow,
			"interval of %d semitones is outside the table (0-%d)", d, MaxIntervalDistance)
	}
	return intervalNames[d], nil
}
