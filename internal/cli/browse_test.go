package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	pkgio "github.com/matzehuels/fretboard/pkg/io"
	"github.com/matzehuels/fretboard/pkg/pipeline"
)

func newTestBrowseModel(entries []pkgio.Entry) BrowseModel {
	runner := pipeline.NewRunner(nil, nil, log.New(io.Discard))
	return NewBrowseModel(context.Background(), entries, runner, pipeline.Options{Frets: pipeline.DefaultFrets})
}

func press(m BrowseModel, keys ...string) BrowseModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(BrowseModel)
	}
	return m
}

func TestBrowseModelNavigation(t *testing.T) {
	m := newTestBrowseModel(commonTunings)

	m = press(m, "down", "j")
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor)
	}
	m = press(m, "up", "k", "k")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 (clamped)", m.Cursor)
	}

	for i, n := 0, len(commonTunings)+3; i < n; i++ {
		m = press(m, "down")
	}
	if m.Cursor != len(commonTunings)-1 {
		t.Errorf("Cursor = %d, want last entry", m.Cursor)
	}
	if m.Cursor >= m.Offset+m.Height || m.Cursor < m.Offset {
		t.Errorf("cursor %d outside window [%d, %d)", m.Cursor, m.Offset, m.Offset+m.Height)
	}
}

func TestBrowseModelQuit(t *testing.T) {
	m := newTestBrowseModel(commonTunings)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestBrowseModelView(t *testing.T) {
	entries := []pkgio.Entry{
		{Notes: "C E G A C E", Name: "C6", Comment: "Lap steel"},
		{Notes: "xyz", Name: "Broken"},
	}
	m := newTestBrowseModel(entries)

	view := m.View()
	for _, want := range []string{"Tunings", "C6", "Lap steel", "[1/2]", "Available intervals"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m = press(m, "down")
	if view := m.View(); !strings.Contains(view, "no notes") {
		t.Errorf("broken tuning should show its error:\n%s", view)
	}
}

func TestBrowseModelToggles(t *testing.T) {
	m := newTestBrowseModel([]pkgio.Entry{{Notes: "E A D G B E"}})

	plain := m.View()
	m = press(m, "d")
	degrees := m.View()
	if strings.Count(degrees, "|") <= strings.Count(plain, "|") {
		t.Error("d should add the degree table")
	}

	m = press(m, "s")
	if m.scale != 1 {
		t.Errorf("scale = %d, want 1", m.scale)
	}
	for i, n := 0, len(scaleChoices()); i < n; i++ {
		m = press(m, "s")
	}
	if m.scale != 0 {
		t.Errorf("scale = %d, want 0 after a full cycle", m.scale)
	}
}

func TestBrowseModelWindowSize(t *testing.T) {
	m := newTestBrowseModel(commonTunings)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if got := next.(BrowseModel).Height; got != 3 {
		t.Errorf("Height = %d, want minimum 3", got)
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 36})
	if got := next.(BrowseModel).Height; got != 10 {
		t.Errorf("Height = %d, want 10", got)
	}
}
