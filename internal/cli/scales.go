package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fretboard/pkg/music"
)

// scalesCommand lists the mask catalogue.
func (c *CLI) scalesCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "scales",
		Short: "List the scale and chord masks",
		Long: `List the scale and chord masks usable with chart --scales.

Names match case-insensitively, and "-" or "_" may stand in for spaces
(minor-pentatonic).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if plain {
				for _, s := range music.Scales {
					fmt.Fprintf(w, "%-20s %s\n", s.Name, degreeList(s.Mask))
				}
				return nil
			}

			rows := make([][]string, 0, len(music.Scales))
			for _, s := range music.Scales {
				rows = append(rows, []string{s.Name, fmt.Sprint(s.Mask.Count()), degreeList(s.Mask)})
			}
			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Name", "Notes", "Degrees").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle.Padding(0, 1)
					}
					if col == 0 {
						return StyleHighlight.Padding(0, 1)
					}
					return lipgloss.NewStyle().Padding(0, 1)
				})
			_, err := fmt.Fprintln(w, t.Render())
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print without borders or color")
	return cmd
}

func degreeList(m music.Mask) string {
	degs := m.Degrees()
	names := make([]string, len(degs))
	for i, d := range degs {
		names[i] = d.String()
	}
	return strings.Join(names, " ")
}
