package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slider/internal/carousel"
	"slider/internal/ui/textutil"
)

// RoleOpenModal marks the header button that opens the info window.
const RoleOpenModal = "open-modal"

const openButton = "[ About ]"

// HeaderView draws the deck title and the button that opens the info window.
type HeaderView struct {
	title string
	width int
	zones Zones
}

// Ensure HeaderView implements View and Clickable.
var (
	_ View      = (*HeaderView)(nil)
	_ Clickable = (*HeaderView)(nil)
)

// NewHeaderView creates a header for title.
func NewHeaderView(title string) *HeaderView {
	return &HeaderView{title: title, width: defaultWidth}
}

// Init implements View.
func (h *HeaderView) Init() tea.Cmd { return nil }

// Update implements View.
func (h *HeaderView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		h.width = msg.Width
	}
	return h, nil
}

// View implements View.
func (h *HeaderView) View() string {
	h.zones.Reset()
	width := max(h.width, textutil.Width(openButton)+1)
	btnWidth := textutil.Width(openButton)
	title := textutil.Truncate(h.title, width-btnWidth-1)
	gap := width - btnWidth - textutil.Width(title)
	h.zones.Add(width-btnWidth, width, 0, carousel.Element{Kind: RoleOpenModal})
	return lipgloss.JoinHorizontal(lipgloss.Top,
		Styles.Title.Render(title),
		textutil.Spaces(gap),
		Styles.Button.Render(openButton),
	)
}

// Click implements Clickable.
func (h *HeaderView) Click(x, y int) tea.Cmd {
	if t, ok := h.zones.Hit(x, y); ok && t.Role() == RoleOpenModal {
		return func() tea.Msg { return ShowModalMsg{} }
	}
	return nil
}
