// Package render formats recommendations for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/earlycareers/programme-survey/internal/eligibility"
)

const (
	DefaultWidth = 80
	minWidth     = 40
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	primaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	secondaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true)
	detailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	adviceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")).Italic(true)
	cardStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5B8DEF")).
			Padding(1, 2)
)

// Card renders the result, and advice when present, inside a bordered box
// no wider than width columns.
func Card(result eligibility.Result, advice string, width int) string {
	if width < minWidth {
		width = minWidth
	}
	// border and horizontal padding
	inner := width - 6

	var sections []string
	sections = append(sections, titleStyle.Render("Recommended programmes"))
	sections = append(sections, entry(primaryStyle, "Primary", result.PrimaryCategory, result.Commentary, inner))

	for _, c := range result.SecondaryCategories {
		sections = append(sections, entry(secondaryStyle, "Also consider", c, result.Commentary, inner))
	}

	if advice = strings.TrimSpace(advice); advice != "" {
		sections = append(sections,
			titleStyle.Render("Adviser note"),
			adviceStyle.Width(inner).Render(advice),
		)
	}

	return cardStyle.Render(strings.Join(sections, "\n\n"))
}

func entry(label lipgloss.Style, prefix string, c eligibility.Category, commentary map[eligibility.Category]string, width int) string {
	heading := label.Width(width).Render(prefix + ": " + string(c))
	text := strings.TrimSpace(commentary[c])
	if text == "" {
		return heading
	}
	return heading + "\n" + detailStyle.Width(width).Render(text)
}
