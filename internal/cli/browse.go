package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fretboard/pkg/errors"
	pkgio "github.com/matzehuels/fretboard/pkg/io"
	"github.com/matzehuels/fretboard/pkg/pipeline"
)

// commonTunings is the list browsed when no file is given.
var commonTunings = []pkgio.Entry{
	{Notes: "E A D G B E", Name: "Standard"},
	{Notes: "D A D G B E", Name: "Drop D"},
	{Notes: "D A D G A D", Name: "DADGAD"},
	{Notes: "D G D G B D", Name: "Open G", Comment: "Dobro and resonator"},
	{Notes: "D A D F# A D", Name: "Open D"},
	{Notes: "E B E G# B E", Name: "Open E"},
	{Notes: "C E G A C E", Name: "C6", Comment: "Lap steel"},
	{Notes: "B D E G# C# E", Name: "E13", Comment: "Lap steel"},
	{Notes: "E A E A C# E", Name: "Open A", Comment: "Lap steel"},
}

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// browseCommand creates the interactive tuning browser.
func (c *CLI) browseCommand() *cobra.Command {
	var noCache bool
	opts := pipeline.Options{Frets: pipeline.DefaultFrets}

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Page through tunings and their charts",
		Long: `Page through tunings and their charts.

Reads a tuning list (CSV, TOML or text, as for "site"), or a built-in list of
common guitar and lap steel tunings when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := commonTunings
			if len(args) == 1 {
				var err error
				if entries, err = pkgio.ReadTunings(args[0]); err != nil {
					return err
				}
				if len(entries) == 0 {
					return errors.New(errors.ErrCodeInvalidInput, "no tunings found in %s", args[0])
				}
			}
			if err := pipeline.ValidateFrets(opts.Frets); err != nil {
				return err
			}

			runner := c.newRunner(noCache)
			defer runner.Cache.Close()

			m := NewBrowseModel(cmd.Context(), entries, runner, opts)
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&opts.Frets, "frets", opts.Frets, "frets to draw: 12, 13, 15, 16, 22 or 24")
	cmd.Flags().BoolVarP(&opts.Degrees, "degrees", "d", false, "start with the degree table shown")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

// =============================================================================
// BrowseModel - Interactive tuning browser
// =============================================================================

// BrowseModel is the bubbletea model for the tuning browser: a list on top
// and the selected tuning's chart below.
type BrowseModel struct {
	Entries []pkgio.Entry
	Cursor  int
	Height  int
	Offset  int

	ctx    context.Context
	runner *pipeline.Runner
	opts   pipeline.Options
	scale  int // index into scale choices; 0 = none
	charts map[string]string
}

// NewBrowseModel creates a browser over entries.
func NewBrowseModel(ctx context.Context, entries []pkgio.Entry, runner *pipeline.Runner, opts pipeline.Options) BrowseModel {
	return BrowseModel{
		Entries: entries,
		Height:  8,
		ctx:     ctx,
		runner:  runner,
		opts:    opts,
		charts:  make(map[string]string),
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "d":
			m.opts.Degrees = !m.opts.Degrees
		case "s":
			m.scale = (m.scale + 1) % (len(scaleChoices()) + 1)
		}
	case tea.WindowSizeMsg:
		// leave room for the chart below the list
		m.Height = (msg.Height - 6) / 3
		if m.Height < 3 {
			m.Height = 3
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tunings"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  d degrees  s next scale  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Entries))
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-20s %s", cursor, e.Title(), listDimStyle.Render(e.Notes))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))
	b.WriteString("\n\n")

	if len(m.Entries) == 0 {
		return b.String()
	}
	e := m.Entries[m.Cursor]
	if e.Comment != "" {
		b.WriteString(StyleDim.Render(e.Comment))
		b.WriteString("\n\n")
	}
	b.WriteString(m.chart(e.Notes))
	return b.String()
}

// chart renders notes with the current view settings. Results are memoized
// per model; the runner's cache covers repeat sessions.
func (m BrowseModel) chart(notes string) string {
	opts := m.opts
	opts.Tuning = notes
	opts.Scales = nil
	if m.scale > 0 {
		opts.Scales = []string{scaleChoices()[m.scale-1]}
	}

	key := fmt.Sprintf("%s|%t|%v", notes, opts.Degrees, opts.Scales)
	if s, ok := m.charts[key]; ok {
		return s
	}

	var s string
	res, err := m.runner.Execute(m.ctx, opts)
	if err != nil {
		s = listErrorStyle.Render(errors.UserMessage(err))
	} else {
		s = string(res.Output)
	}
	m.charts[key] = s
	return s
}

// scaleChoices are the masks the browser cycles through.
func scaleChoices() []string {
	return []string{"Major scale", "Minor pentatonic", "Major pentatonic", "Blues scale", "Major triad", "Minor triad"}
}
