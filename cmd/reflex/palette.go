package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reflex/internal/core"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the theme palette",
	Long: `Shows the background colors the game cycles through. The theme
changes at the start of every session and after every 10 points.`,
	Args: cobra.NoArgs,
	Run:  runPalette,
}

func runPalette(_ *cobra.Command, _ []string) {
	rows := make([]table.Row, 0, core.PaletteSize)
	for i, c := range core.Palette() {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex)).Render("      ")
		rows = append(rows, table.Row{strconv.Itoa(i), c.Name, c.Hex, swatch})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Name", Width: 14},
			{Title: "Hex", Width: 8},
			{Title: "Swatch", Width: 6},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)

	fmt.Println(t.View())
}
