package music

// Degree is a note's position relative to a reference note, 0 (root)
// through 11 (major seventh).
type Degree uint8

var degreeNames = [NoteCount]string{"1", "b2", "2", "b3", "3", "4", "b5", "5", "b6", "6", "b7", "7"}

// String returns the degree label, e.g. "b3".
func (d Degree) String() string {
	return degreeNames[d%NoteCount]
}

// Cell returns the label padded to the two-character table cell width.
func (d Degree) Cell() string {
	return pad2(d.String())
}

// DegreeOf labels n relative to the reference note ref.
func DegreeOf(ref, n Note) Degree {
	return Degree(Distance(ref, n))
}
