package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// InfoPopup shows a one-off message that any key dismisses
type InfoPopup struct {
	title   string
	message string
	styles  *Styles
}

// NewInfoPopup creates an info popup
func NewInfoPopup(title, message string) *InfoPopup {
	return &InfoPopup{
		title:   title,
		message: message,
		styles:  New(),
	}
}

// NewStagePopup announces that the tree reached stage
func NewStagePopup(stage int) *InfoPopup {
	return NewInfoPopup("Tree grown", fmt.Sprintf("HURRRAY! You grew a tree! You are now at stage %d!", stage))
}

// Init initializes the popup
func (p *InfoPopup) Init() tea.Cmd {
	return nil
}

// Update closes the popup on enter, space or escape
func (p *InfoPopup) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", " ", "esc", "q":
			return p, func() tea.Msg { return CloseOverlayMsg{} }
		}
	}
	return p, nil
}

// View renders the popup
func (p *InfoPopup) View() string {
	var b strings.Builder
	b.WriteString(p.styles.Banner.Render("🌳 " + p.message))
	b.WriteString("\n\n")
	b.WriteString(p.styles.Footer.Render("Enter: OK"))
	return b.String()
}

// Title returns the popup title
func (p *InfoPopup) Title() string {
	return p.title
}

// Size returns the popup dimensions
func (p *InfoPopup) Size() (width, height int) {
	return max(40, len(p.message)+10), 7
}
