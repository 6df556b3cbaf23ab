package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"slider/internal/ui/textutil"
)

const (
	modalWidth  = 50
	closeButton = "[x]"
)

// InfoModal shows the deck's modal text. Esc or the close button dismisses it.
type InfoModal struct {
	Title string
	Body  string
}

// Ensure InfoModal implements View and Clickable.
var (
	_ View      = (*InfoModal)(nil)
	_ Clickable = (*InfoModal)(nil)
)

// NewInfoModal creates a modal.
func NewInfoModal(title, body string) *InfoModal {
	return &InfoModal{Title: title, Body: body}
}

// Init implements View.
func (m *InfoModal) Init() tea.Cmd { return nil }

// Update implements View.
func (m *InfoModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		return m, dismissModal
	}
	return m, nil
}

func (m *InfoModal) inner() int {
	return modalWidth - Styles.Modal.GetHorizontalFrameSize()
}

// View implements View.
func (m *InfoModal) View() string {
	inner := m.inner()
	btn := textutil.Width(closeButton)
	title := textutil.Truncate(m.Title, inner-btn-1)
	gap := textutil.Spaces(inner - btn - textutil.Width(title))
	content := Styles.Title.Render(title) + gap + Styles.Button.Render(closeButton) + "\n\n" +
		Styles.Normal.Width(inner).Render(m.Body) + "\n\n" +
		Styles.Muted.Render("esc: close")
	return Styles.Modal.Width(modalWidth - Styles.Modal.GetHorizontalBorderSize()).Render(content)
}

// Click implements Clickable; coordinates are relative to the modal box.
func (m *InfoModal) Click(x, y int) tea.Cmd {
	// The close button ends the first content row, inside border and padding.
	row := Styles.Modal.GetBorderTopSize() + Styles.Modal.GetPaddingTop()
	right := modalWidth - Styles.Modal.GetBorderRightSize() - Styles.Modal.GetPaddingRight()
	if y == row && x >= right-textutil.Width(closeButton) && x < right {
		return dismissModal
	}
	return nil
}

func dismissModal() tea.Msg { return DismissModalMsg{} }
