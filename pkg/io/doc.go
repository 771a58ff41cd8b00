// Package io reads tuning lists and writes charts as JSON.
//
// # Tuning lists
//
// [ReadTunings] loads the list of tunings a site is built from. The format
// follows the file extension:
//
//   - .csv: columns notes, name, comment. A header row naming any of
//     those columns (in any order and case) is detected; without one the
//     columns are taken in that order. Blank rows and rows with no notes
//     are skipped.
//   - .toml: an array of [[tuning]] tables with the same three keys.
//   - anything else: one tuning per line; blank lines and lines starting
//     with "#" are ignored.
//
// Example CSV:
//
//	notes,name,comment
//	EADGBE,Standard,
//	DGDGBD,Open G,"Slide, mostly"
//
// # Chart export
//
// [WriteJSON] encodes a [Chart] (the tuning, its tables and the interval
// report) as indented JSON:
//
//	{
//	  "tuning": ["E", "A", "D", "G", "B", "E"],
//	  "tables": [{"view": "notes", "frets": 12, "reference": "E", "rows": [...]}],
//	  "intervals": {"gaps": [5, 5, 5, 4, 5], "available": [...], "missing": [...]}
//	}
package io
