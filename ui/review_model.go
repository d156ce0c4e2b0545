package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Fixer converts a single non-compliant file in place. Injected by the
// check command so the UI stays free of ffmpeg knowledge.
type Fixer func(path string) error

// ReviewItem is one non-compliant file shown on the review screen.
type ReviewItem struct {
	Path     string
	Reasons  []string
	Selected bool
	Fixed    bool
	Err      error
}

// ReviewModel is the TUI model for reviewing and fixing non-compliant
// files found by the check command.
type ReviewModel struct {
	// Data
	items []ReviewItem
	fixer Fixer

	// UI state
	cursor int
	width  int
	height int

	// Interaction state
	confirmingFix bool
	pendingFix    []string
	showHelp      bool

	// Control state
	fixing   bool
	quitting bool
}

// NewReviewModel creates a review TUI model over the non-compliant files.
func NewReviewModel(items []ReviewItem, fixer Fixer) ReviewModel {
	return ReviewModel{
		items:    items,
		fixer:    fixer,
		showHelp: true,
	}
}

// Init implements tea.Model
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmingFix {
			return m.handleConfirmationInput(msg)
		}
		return m.handleNormalInput(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case FixesCompleteMsg:
		m.handleFixesComplete(msg)
	}

	return m, nil
}

func (m ReviewModel) handleNormalInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.fixing {
		// Conversions are running; only allow bailing out of the UI.
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "h", "?":
		m.showHelp = !m.showHelp

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case " ": // spacebar to toggle selection
		if len(m.items) > 0 && !m.items[m.cursor].Fixed {
			m.items[m.cursor].Selected = !m.items[m.cursor].Selected
		}

	case "a": // select all unfixed files
		for i := range m.items {
			if !m.items[i].Fixed {
				m.items[i].Selected = true
			}
		}

	case "c": // clear all selections
		for i := range m.items {
			m.items[i].Selected = false
		}

	case "enter":
		return m.handleFixCommand()
	}

	return m, nil
}

func (m ReviewModel) handleConfirmationInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmingFix = false
		m.fixing = true
		return m, m.executeFixCommand()

	case "n", "N", "ctrl+c", "esc":
		m.confirmingFix = false
		m.pendingFix = nil
	}

	return m, nil
}

func (m ReviewModel) handleFixCommand() (tea.Model, tea.Cmd) {
	var selected []string
	for _, item := range m.items {
		if item.Selected && !item.Fixed {
			selected = append(selected, item.Path)
		}
	}

	if len(selected) == 0 {
		return m, nil
	}

	m.pendingFix = selected
	m.confirmingFix = true
	return m, nil
}

func (m ReviewModel) executeFixCommand() tea.Cmd {
	pending := m.pendingFix
	fixer := m.fixer
	return func() tea.Msg {
		msg := FixesCompleteMsg{Errors: make(map[string]error)}
		for _, path := range pending {
			if err := fixer(path); err != nil {
				msg.Errors[path] = err
				continue
			}
			msg.Fixed = append(msg.Fixed, path)
		}
		return msg
	}
}

func (m *ReviewModel) handleFixesComplete(msg FixesCompleteMsg) {
	m.fixing = false
	m.pendingFix = nil

	for i := range m.items {
		item := &m.items[i]
		if err, failed := msg.Errors[item.Path]; failed {
			item.Err = err
			item.Selected = false
			continue
		}
		for _, fixed := range msg.Fixed {
			if item.Path == fixed {
				item.Fixed = true
				item.Selected = false
				item.Err = nil
				break
			}
		}
	}
}

// View implements tea.Model
func (m ReviewModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if len(m.items) == 0 {
		style := SuccessStyle.MarginTop(2).MarginLeft(2)
		return style.Render("✅ All files are web-safe!\n\nPress 'q' to quit.")
	}

	if m.confirmingFix {
		return m.renderConfirmationDialog()
	}

	return m.renderMainView()
}

func (m ReviewModel) renderConfirmationDialog() string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("⚠️  Confirm Re-encode"))
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("Re-encode %d file(s) in place?\n\n", len(m.pendingFix)))

	for _, file := range m.pendingFix {
		content.WriteString(fmt.Sprintf("  • %s\n", file))
	}

	content.WriteString("\n")
	content.WriteString(WarnStyle.Render("Each file is replaced only after its conversion succeeds."))
	content.WriteString("\n\n")
	content.WriteString("Press 'y' to confirm, 'n' to cancel")

	return content.String()
}

func (m ReviewModel) renderMainView() string {
	var content strings.Builder

	remaining := 0
	for _, item := range m.items {
		if !item.Fixed {
			remaining++
		}
	}

	header := fmt.Sprintf("webvid - Compliance Review (%d of %d still non-compliant)",
		remaining, len(m.items))
	content.WriteString(HeaderStyle.Render(header))
	content.WriteString("\n\n")

	if m.fixing {
		content.WriteString(ProcessingStyle.Render("🎬 Re-encoding selected files..."))
		content.WriteString("\n\n")
	}

	content.WriteString(m.renderItemList())
	content.WriteString("\n")

	if m.showHelp {
		content.WriteString(m.renderHelp())
	} else {
		content.WriteString("Press 'h' for help")
	}

	return content.String()
}

func (m ReviewModel) renderItemList() string {
	var content strings.Builder

	for i, item := range m.items {
		var line strings.Builder

		switch {
		case item.Fixed:
			line.WriteString("[✓] ")
		case item.Selected:
			line.WriteString("[•] ")
		default:
			line.WriteString("[ ] ")
		}

		name := item.Path
		switch {
		case i == m.cursor:
			line.WriteString(lipgloss.NewStyle().Reverse(true).Render(name))
		case item.Fixed:
			line.WriteString(SuccessStyle.Render(name))
		case item.Selected:
			line.WriteString(ProcessingStyle.Render(name))
		default:
			line.WriteString(name)
		}

		if item.Err != nil {
			line.WriteString(ErrorStyle.Render(fmt.Sprintf("  ❌ %v", item.Err)))
		} else if !item.Fixed {
			line.WriteString(InfoStyle.Render(fmt.Sprintf("  (%s)", strings.Join(item.Reasons, "; "))))
		}

		content.WriteString(line.String())
		content.WriteString("\n")
	}

	return content.String()
}

func (m ReviewModel) renderHelp() string {
	help := []string{
		"↑/k, ↓/j: navigate",
		"space: select file",
		"a: select all  c: clear",
		"enter: re-encode selected",
		"h: toggle help  q: quit",
	}
	return InfoStyle.Render(strings.Join(help, "  •  "))
}
