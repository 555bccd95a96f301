package report

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/cfgtrack/internal/tracker"
	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Blue

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // Dim gray

	countStyle = lipgloss.NewStyle().
			Bold(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// RenderSummary renders the post-analysis console summary: totals plus the
// options with the most object files.
func RenderSummary(s tracker.Summary) string {
	var b strings.Builder

	rule := strings.Repeat("=", 60)
	b.WriteString(bannerStyle.Render(rule) + "\n")
	b.WriteString(bannerStyle.Render("MAKEFILE OBJECT FILE ANALYSIS") + "\n")
	b.WriteString(bannerStyle.Render(rule) + "\n")

	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Total CONFIG options:"),
		countStyle.Render(fmt.Sprintf("%d", s.TotalOptions))))
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Options with object files:"),
		countStyle.Render(fmt.Sprintf("%d", s.WithArtifacts))))
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Options without object files:"),
		countStyle.Render(fmt.Sprintf("%d", s.WithoutArtifacts))))

	if len(s.Top) > 0 {
		b.WriteString(fmt.Sprintf("\nTop %d options with most object files:\n", len(s.Top)))
		for _, rec := range s.Top {
			b.WriteString(fmt.Sprintf("  %s: %d object files\n",
				optionStyle.Render(rec.Option), len(rec.Artifacts)))
		}
	}

	b.WriteString(bannerStyle.Render(rule) + "\n")
	return b.String()
}

// RenderImportHint renders the spreadsheet-import instructions printed after
// a successful export.
func RenderImportHint(output string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Success! Import %s into a spreadsheet:\n", output))
	b.WriteString(hintStyle.Render("  1. Open Google Sheets") + "\n")
	b.WriteString(hintStyle.Render("  2. File -> Import -> Upload") + "\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("  3. Select %s", output)) + "\n")
	b.WriteString(hintStyle.Render(`  4. Choose "Replace spreadsheet" and "Detect automatically"`) + "\n")
	return b.String()
}
