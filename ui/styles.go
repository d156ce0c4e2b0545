package ui

import "github.com/charmbracelet/lipgloss"

// Styling functions using lipgloss
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	ProcessingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// tagStyles maps the fixed per-file status tags to their colors.
var tagStyles = map[string]lipgloss.Style{
	"OK":   SuccessStyle,
	"FIX":  SuccessStyle,
	"SKIP": InfoStyle,
	"MISS": WarnStyle,
	"LOOP": ProcessingStyle,
	"NORM": ProcessingStyle,
	"FAIL": ErrorStyle,
}

// Tag renders one of the fixed status tags (OK, FIX, SKIP, MISS, LOOP,
// NORM, FAIL) with its color. Unknown tags come back unstyled.
func Tag(tag string) string {
	style, ok := tagStyles[tag]
	if !ok {
		return tag
	}
	return style.Render(tag)
}
