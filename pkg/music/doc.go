// Package music holds the fixed lookup tables fretboard charts are built
// from: the 12-note chromatic cycle, scale-degree labels, named intervals
// and scale/chord masks.
//
// # Notes
//
// A [Note] is an index into the cycle A, A#, B, C, C#, D, D#, E, F, F#, G,
// G#. All arithmetic wraps modulo 12, so the note at any fret is a pure
// function of the open string and the fret number:
//
//	music.E.Add(5) // A
//
// # Degrees and masks
//
// [DegreeOf] labels a note relative to a reference note (1, b2, 2, … 7).
// A [Mask] selects which of the twelve degrees belong to a scale or chord
// shape; [Scales] lists the named masks the chart renderer knows about.
//
// # Intervals
//
// [IntervalName] maps a semitone distance to its name. The table extends
// past the octave (m9, M9, … P15, …) up to [MaxIntervalDistance]; larger
// distances are reported as errors rather than wrapped.
package music
