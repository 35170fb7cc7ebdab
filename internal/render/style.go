package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/amterp/freecell/internal/model"
)

// Adaptive colors: first value for dark terminals, second for light.
var (
	colorRedSuit   = lipgloss.AdaptiveColor{Dark: "#ef4444", Light: "#dc2626"}
	colorBlackSuit = lipgloss.AdaptiveColor{Dark: "#e5e7eb", Light: "#111827"}
	colorLabel     = lipgloss.AdaptiveColor{Dark: "#6b7280", Light: "#9ca3af"}
)

var (
	styleRedSuit   = lipgloss.NewStyle().Foreground(colorRedSuit)
	styleBlackSuit = lipgloss.NewStyle().Foreground(colorBlackSuit)
	styleLabel     = lipgloss.NewStyle().Foreground(colorLabel)
)

// StyledCard colors a card by suit color.
func StyledCard(c model.Card) string {
	if c.Color() == model.Red {
		return styleRedSuit.Render(c.String())
	}
	return styleBlackSuit.Render(c.String())
}

// Styled renders the same layout as Text with colored cards and muted labels.
func Styled(view BoardView) string {
	return format(view, StyledCard, func(s string) string { return styleLabel.Render(s) })
}
