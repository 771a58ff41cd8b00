package site

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fretboard/pkg/errors"
	pkgio "github.com/matzehuels/fretboard/pkg/io"
)

// stubRenderer returns canned outcomes by notes.
type stubRenderer struct {
	outcomes map[string]Outcome
	calls    []string
}

func (s *stubRenderer) Command(notes string) (string, []string) {
	return "stub", []string{"chart", notes}
}

func (s *stubRenderer) Render(_ context.Context, notes string) Outcome {
	s.calls = append(s.calls, notes)
	if o, ok := s.outcomes[notes]; ok {
		return o
	}
	return Outcome{Stdout: "chart for " + notes + "\n"}
}

func TestSectionID(t *testing.T) {
	tests := []struct {
		base  string
		index int
		want  string
	}{
		{"Open G", 0, "open-g-1"},
		{"C6 / A minor", 2, "c6--a-minor-3"},
		{"  EADGBE  ", 4, "eadgbe-5"},
		{"E A C# E", 1, "e-a-c-e-2"},
		{"--Drop_D__", 0, "drop_d-1"},
		{"###", 6, "tuning-7"},
		{"", 0, "tuning-1"},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.want, SectionID(tt.base, tt.index))
		})
	}
}

func TestGenerateHTML(t *testing.T) {
	entries := []pkgio.Entry{
		{Notes: "DGDGBD", Name: "Open G", Comment: "Dobro <classic>"},
		{Notes: "EAEAC#E"},
	}
	r := &stubRenderer{}

	var buf bytes.Buffer
	summary, err := Generate(context.Background(), entries, r, &buf, Options{Title: "Charts & more"})
	require.NoError(t, err)
	assert.Equal(t, Summary{Entries: 2}, summary)
	assert.Equal(t, []string{"DGDGBD", "EAEAC#E"}, r.calls)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>Charts &amp; more</title>")
	assert.Contains(t, out, `<li><a href="#open-g-1">Open G</a></li>`)
	assert.Contains(t, out, `<li><a href="#eaeace-2">EAEAC#E</a></li>`)
	assert.Contains(t, out, `<div class="section" id="open-g-1">`)
	assert.Contains(t, out, "<h2>Open G</h2>")
	assert.Contains(t, out, `<div class="meta">Dobro &lt;classic&gt;</div>`)
	assert.Contains(t, out, "<pre>\nchart for DGDGBD\n\n</pre>")
	assert.NotContains(t, out, "STDERR")
	assert.NotContains(t, out, "Exit code")
	// unnamed entries have no heading, only the notes
	assert.Equal(t, 1, strings.Count(out, "<h2>Open G</h2>"))
	assert.Equal(t, 2, strings.Count(out, `<div class="tuning-notes">`))
	assert.True(t, strings.HasSuffix(out, "</body>\n</html>\n"))
}

func TestGenerateFailuresAreIsolated(t *testing.T) {
	entries := []pkgio.Entry{
		{Notes: "xyz", Name: "Broken"},
		{Notes: "DG", Name: "Fine"},
		{Notes: "EE", Name: "Missing binary"},
	}
	r := &stubRenderer{outcomes: map[string]Outcome{
		"xyz": {Stderr: "Error: no notes found\n", ExitCode: 1},
		"EE":  {Stderr: "Error: stub not found.\n", ExitCode: NotRun},
	}}

	var buf bytes.Buffer
	summary, err := Generate(context.Background(), entries, r, &buf, Options{Title: "T", Format: FormatHTML})
	require.NoError(t, err)
	assert.Equal(t, Summary{Entries: 3, Failed: 2}, summary)

	out := buf.String()
	assert.Contains(t, out, `<div class="meta stderr">STDERR:</div>`)
	assert.Contains(t, out, "Error: no notes found")
	assert.Contains(t, out, `<div class="meta">Exit code: 1</div>`)
	assert.Contains(t, out, "chart for DG")
	// a command that never ran shows stderr but no exit code
	assert.Equal(t, 1, strings.Count(out, "Exit code"))
}

func TestGenerateMarkdown(t *testing.T) {
	entries := []pkgio.Entry{
		{Notes: "DGDGBD", Name: "Open G", Comment: "slide"},
		{Notes: "xyz"},
	}
	r := &stubRenderer{outcomes: map[string]Outcome{
		"xyz": {Stderr: "Error: no notes", ExitCode: 1},
	}}

	var buf bytes.Buffer
	_, err := Generate(context.Background(), entries, r, &buf, Options{Title: "Tunings", Format: FormatMarkdown})
	require.NoError(t, err)

	want := "# Tunings\n" +
		"\n" +
		"## Contents\n" +
		"\n" +
		"- [Open G](#open-g-1)\n" +
		"- [xyz](#xyz-2)\n" +
		"\n" +
		"<a id=\"open-g-1\"></a>\n" +
		"\n" +
		"## Open G\n" +
		"\n" +
		"`DGDGBD`\n" +
		"\n" +
		"_slide_\n" +
		"\n" +
		"```text\n" +
		"chart for DGDGBD\n" +
		"```\n" +
		"\n" +
		"<a id=\"xyz-2\"></a>\n" +
		"\n" +
		"## xyz\n" +
		"\n" +
		"**STDERR:**\n" +
		"\n" +
		"```text\n" +
		"Error: no notes\n" +
		"```\n" +
		"\n" +
		"Exit code: 1\n"
	assert.Equal(t, want, buf.String())
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	_, err := Generate(context.Background(), nil, &stubRenderer{}, &buf, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	assert.Zero(t, buf.Len())
}

func TestGenerateBadFormat(t *testing.T) {
	var buf bytes.Buffer
	_, err := Generate(context.Background(), []pkgio.Entry{{Notes: "E"}}, &stubRenderer{}, &buf, Options{Format: "pdf"})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &stubRenderer{}
	var buf bytes.Buffer
	_, err := Generate(ctx, []pkgio.Entry{{Notes: "E"}, {Notes: "A"}}, r, &buf, Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.calls)
}
