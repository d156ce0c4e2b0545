package ui

// TUI message types for the compliance review screen

// FixesCompleteMsg reports the per-file outcome of fixing the selected
// files. Paths absent from Errors converted cleanly.
type FixesCompleteMsg struct {
	Fixed  []string
	Errors map[string]error
}
