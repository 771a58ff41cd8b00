// Package intervals works out which musical intervals a tuning can reach
// across its open strings.
//
// The gaps between adjacent strings are stacked: starting from every
// string, the running sums of the remaining gaps give the semitone
// distances to each higher string. [Analyze] names those distances and
// lists the ones in between that no pair of strings spans.
//
// [Seek] runs the same computation backwards: it brute-forces small gap
// sequences looking for ones that reach a required set of distances.
package intervals
