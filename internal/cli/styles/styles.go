package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/xlc-dev/chromatic/internal/config/colors"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 40

	// Text styles
	TitleStyle lipgloss.Style
	LabelStyle lipgloss.Style // For field labels like "background:"
	ValueStyle lipgloss.Style // For field values
)

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Foreground)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Foreground))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Width(12)

	ValueStyle = lipgloss.NewStyle()
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderChip renders a solid block filled with a hex color
func RenderChip(hexColor string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hexColor)).
		Render("      ")
}

// RenderSwatch renders sample text in the scheme's foreground on its background
func RenderSwatch(scheme colors.ColorScheme, text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Foreground)).
		Background(lipgloss.Color(scheme.Background)).
		Padding(1, 2).
		Width(CardWidth - 8).
		Render(text)
}

// RenderPreview renders the full preview card: a swatch plus one row per key
func RenderPreview(scheme colors.ColorScheme, sample string) string {
	m := scheme.ToMap()
	rows := make([]string, 0, len(colors.Keys))
	for _, key := range colors.Keys {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
			LabelStyle.Render(key+":"),
			RenderChip(m[key]),
			" ",
			ValueStyle.Render(m[key]),
		))
	}

	return CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Color Scheme"),
		"",
		RenderSwatch(scheme, sample),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	))
}

// RenderPlainPreview renders the preview without escape sequences for pipes and dumb terminals
func RenderPlainPreview(scheme colors.ColorScheme, sample string) string {
	m := scheme.ToMap()
	var b strings.Builder
	b.WriteString("Color Scheme\n\n")
	fmt.Fprintf(&b, "  %s\n\n", sample)
	for _, key := range colors.Keys {
		fmt.Fprintf(&b, "%-12s%s\n", key+":", m[key])
	}
	return strings.TrimRight(b.String(), "\n")
}
