// Package fretboard lays out fixed-width ASCII fretboard tables.
//
// A table has one row per string, highest string on top, and one cell per
// fret after the open-string cell:
//
//	    ||-----------------------------------------------------------|
//	    || 1  | 2  | 3  | 4  | 5  | 6  | 7  | 8  | 9  | 10 | 11 | 12 |
//	    ||-----------------------------------------------------------|
//	 E  || F  | F# | G  | G# | A  | A# | B  | C  | C# | D  | D# | E  |
//	...
//
// Cells show either absolute notes ([ViewNotes]) or scale degrees relative
// to a reference note ([ViewDegrees]). With [WithMask], fretted cells whose
// degree is outside the mask are blanked; the open-string cell is always
// shown.
package fretboard
