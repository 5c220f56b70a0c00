package textbox

import "github.com/charmbracelet/lipgloss"

// Style controls the text box rendering.
type Style struct {
	Prompt      lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
	}
}
