package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fretboard/pkg/errors"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "header",
			input: "notes,name,comment\nEADGBE,Standard,\nDGDGBD,Open G,\"Slide, mostly\"\n",
			want: []Entry{
				{Notes: "EADGBE", Name: "Standard"},
				{Notes: "DGDGBD", Name: "Open G", Comment: "Slide, mostly"},
			},
		},
		{
			name:  "header reordered and cased",
			input: "Comment,NOTES,Name\nwide,C E G A C E,C6\n",
			want:  []Entry{{Notes: "C E G A C E", Name: "C6", Comment: "wide"}},
		},
		{
			name:  "headerless",
			input: "EADGBE,Standard,six strings\nDADGAD\n",
			want: []Entry{
				{Notes: "EADGBE", Name: "Standard", Comment: "six strings"},
				{Notes: "DADGAD"},
			},
		},
		{
			name:  "blank rows and rows without notes skipped",
			input: "notes,name\n\n , \n,Nameless\nGBDGBD,Open G\n",
			want:  []Entry{{Notes: "GBDGBD", Name: "Open G"}},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadTOML(t *testing.T) {
	input := `
[[tuning]]
notes = "EADGBE"
name = "Standard"

[[tuning]]
notes = "  "
name = "ignored"

[[tuning]]
notes = "C E G A C E"
comment = "C6"
`
	got, err := ReadTOML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Notes: "EADGBE", Name: "Standard"},
		{Notes: "C E G A C E", Comment: "C6"},
	}, got)

	_, err = ReadTOML(strings.NewReader("[[tuning]\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestReadText(t *testing.T) {
	got, err := ReadText(strings.NewReader("# lap steel\nEAEAC#E\n\n  DGDGBD  \n"))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Notes: "EAEAC#E"}, {Notes: "DGDGBD"}}, got)
}

func TestReadTunings(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("csv by extension", func(t *testing.T) {
		got, err := ReadTunings(write("tunings.CSV", "notes\nEADGBE\n"))
		require.NoError(t, err)
		assert.Equal(t, []Entry{{Notes: "EADGBE"}}, got)
	})

	t.Run("toml by extension", func(t *testing.T) {
		got, err := ReadTunings(write("tunings.toml", "[[tuning]]\nnotes = \"DGDGBD\"\n"))
		require.NoError(t, err)
		assert.Equal(t, []Entry{{Notes: "DGDGBD"}}, got)
	})

	t.Run("text otherwise", func(t *testing.T) {
		// a comma line in a text file is taken whole
		got, err := ReadTunings(write("tunings.txt", "EADGBE,Standard\n"))
		require.NoError(t, err)
		assert.Equal(t, []Entry{{Notes: "EADGBE,Standard"}}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadTunings(filepath.Join(dir, "nope.csv"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
	})
}

func TestEntryTitle(t *testing.T) {
	assert.Equal(t, "Open G", Entry{Notes: "DGDGBD", Name: "Open G"}.Title())
	assert.Equal(t, "DGDGBD", Entry{Notes: "DGDGBD"}.Title())
}
