package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/stationrank/stationrank/pkg/rank"
)

var (
	colorCyan   = lipgloss.Color("36")  // primary accents
	colorYellow = lipgloss.Color("220") // warnings
	colorWhite  = lipgloss.Color("255") // values
	colorDim    = lipgloss.Color("240") // muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// printTopStations writes the numbered top-K report to stdout, scores to
// six decimal places.
func printTopStations(top []rank.Ranked) {
	fmt.Println(styleTitle.Render(fmt.Sprintf("--- Top %d stations (PageRank) ---", len(top))))
	for i, r := range top {
		fmt.Printf("%s %s %s\n",
			styleNumber.Render(fmt.Sprintf("%2d.", i+1)),
			styleValue.Render(r.Name),
			styleDim.Render(fmt.Sprintf("(score: %.6f)", r.Score)))
	}
}

// printWarning writes a styled warning line to stderr.
func printWarning(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styleWarning.Render("⚠ "+fmt.Sprintf(format, args...)))
}
