package music

import (
	"testing"

	"github.com/matzehuels/fretboard/pkg/errors"
)

func TestNextCycles(t *testing.T) {
	for _, n := range Notes() {
		got := n
		for i := 0; i < NoteCount; i++ {
			got = got.Next()
		}
		if got != n {
			t.Errorf("%s advanced 12 times = %s, want %s", n, got, n)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	for _, a := range Notes() {
		if d := Distance(a, a); d != 0 {
			t.Errorf("Distance(%s, %s) = %d, want 0", a, a, d)
		}
		for _, b := range Notes() {
			ab, ba := Distance(a, b), Distance(b, a)
			if ab < 0 || ab > 11 {
				t.Errorf("Distance(%s, %s) = %d, out of range", a, b, ab)
			}
			if (ab+ba)%NoteCount != 0 {
				t.Errorf("Distance(%s, %s) + Distance(%s, %s) = %d, want multiple of 12", a, b, b, a, ab+ba)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		from, to Note
		want     int
	}{
		{E, A, 5},
		{A, E, 7},
		{G, B, 4},
		{B, E, 5},
		{GSharp, A, 1},
		{A, GSharp, 11},
	}
	for _, tt := range tests {
		if got := Distance(tt.from, tt.to); got != tt.want {
			t.Errorf("Distance(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		n    Note
		k    int
		want Note
	}{
		{E, 0, E},
		{E, 1, F},
		{E, 5, A},
		{E, 12, E},
		{E, 24, E},
		{G, 3, ASharp},
		{A, -1, GSharp},
	}
	for _, tt := range tests {
		if got := tt.n.Add(tt.k); got != tt.want {
			t.Errorf("%s.Add(%d) = %s, want %s", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestParseNote(t *testing.T) {
	tests := []struct {
		in      string
		want    Note
		wantErr bool
	}{
		{"A", A, false},
		{"a#", ASharp, false},
		{"C ", C, false},
		{"f#", FSharp, false},
		{"H", 0, true},
		{"E#", 0, true},
		{"#", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNote(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeUnknownNote) {
					t.Errorf("ParseNote(%q) error = %v, want UNKNOWN_NOTE", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNote(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseNote(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestCell(t *testing.T) {
	if got := C.Cell(); got != "C " {
		t.Errorf("C.Cell() = %q, want %q", got, "C ")
	}
	if got := CSharp.Cell(); got != "C#" {
		t.Errorf("CSharp.Cell() = %q, want %q", got, "C#")
	}
}
