// Package tuning parses free-form tuning strings into ordered notes.
//
// Input is scanned leniently: "EADGBE", "E-A-D-G-B-E", "c6 add9" and
// "EAEAC#E" all parse. Scanning runs right to left so that a "#" attaches
// to the letter written before it. Characters that do not resolve to a
// note are skipped rather than rejected; [Scan] exposes every candidate
// with its outcome, and [Parse] keeps only the notes.
//
// A tuning is stored lowest string first, as written. [Tuning.Strings]
// returns the display order used by charts, highest string first.
package tuning
