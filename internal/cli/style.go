package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Palette for CLI chrome. Dark terminal value first, light second.
var (
	ColorSuccess = lipgloss.AdaptiveColor{Dark: "#22c55e", Light: "#16a34a"}
	ColorWarning = lipgloss.AdaptiveColor{Dark: "#f59e0b", Light: "#d97706"}
	ColorMuted   = lipgloss.AdaptiveColor{Dark: "#6b7280", Light: "#9ca3af"}
	ColorAccent  = lipgloss.AdaptiveColor{Dark: "#a78bfa", Light: "#7c3aed"}
	ColorFelt    = lipgloss.AdaptiveColor{Dark: "#4ade80", Light: "#15803d"}
)

// status is one kind of one-line message: a coloured marker and where it goes.
type status struct {
	marker string
	style  lipgloss.Style
	stderr bool
}

var (
	statusSuccess = status{marker: "✓", style: lipgloss.NewStyle().Foreground(ColorSuccess)}
	statusWarning = status{marker: "!", style: lipgloss.NewStyle().Foreground(ColorWarning), stderr: true}
	statusInfo    = status{marker: "→", style: lipgloss.NewStyle().Foreground(ColorMuted)}
)

func (s status) print(format string, args ...any) {
	var w io.Writer = os.Stdout
	if s.stderr {
		w = os.Stderr
	}
	fmt.Fprintf(w, "%s %s\n", s.style.Render(s.marker), fmt.Sprintf(format, args...))
}

// PrintSuccess reports a finished action, such as a solved game or saved settings.
func PrintSuccess(format string, args ...any) { statusSuccess.print(format, args...) }

// PrintWarning goes to stderr so it never mixes with a rendered board.
func PrintWarning(format string, args ...any) { statusWarning.print(format, args...) }

func PrintInfo(format string, args ...any) { statusInfo.print(format, args...) }

// RenderID highlights a game ID.
func RenderID(id string) string {
	return lipgloss.NewStyle().Foreground(ColorAccent).Render(id)
}

// TitleBox frames the game header in felt green.
func TitleBox(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorFelt).
		Padding(0, 2).
		Bold(true).
		Render(title)
}

// LabelValue right-aligns label within labelWidth, as in `config show`.
func LabelValue(label, value string, labelWidth int) string {
	l := lipgloss.NewStyle().Width(labelWidth).Align(lipgloss.Right).Foreground(ColorMuted)
	return l.Render(label+":") + " " + value
}
