package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slider/internal/carousel"
	"slider/internal/config"
	"slider/internal/ui/textutil"
)

// Roles of the non-indicator elements the slider draws.
const (
	RoleControl = "control"
	RoleDots    = "dots"
	AttrDir     = "dir"
)

const (
	defaultWidth = 80
	controlWidth = 3
	minCardWidth = 24
)

// SliderView draws the carousel: the slide whose offset places it in the
// viewport, a control on each side and one dot per slide.
// It is the engine's Renderer; it never changes the position itself.
type SliderView struct {
	slides  []config.Slide
	frame   carousel.Frame
	renders int
	width   int
	zones   Zones
}

// Ensure SliderView implements View, Clickable and carousel.Renderer.
var (
	_ View              = (*SliderView)(nil)
	_ Clickable         = (*SliderView)(nil)
	_ carousel.Renderer = (*SliderView)(nil)
)

// NewSliderView creates a view for slides. Nothing is drawn until the engine renders.
func NewSliderView(slides []config.Slide) *SliderView {
	return &SliderView{slides: slides, width: defaultWidth}
}

// Render implements carousel.Renderer.
func (s *SliderView) Render(f carousel.Frame) {
	s.frame = carousel.Frame{
		Current:    f.Current,
		Offsets:    append([]int(nil), f.Offsets...),
		Indicators: append([]bool(nil), f.Indicators...),
	}
	s.renders++
}

// Renders returns how many frames the engine pushed.
func (s *SliderView) Renders() int { return s.renders }

// Frame returns the last frame pushed by the engine.
func (s *SliderView) Frame() carousel.Frame { return s.frame }

// Init implements View.
func (s *SliderView) Init() tea.Cmd { return nil }

// Update implements View.
func (s *SliderView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = msg.Width
	}
	return s, nil
}

// Visible returns the slide whose offset covers the left edge of a viewport
// cols wide, or -1 when no slide does.
func (s *SliderView) Visible(cols int) int {
	if cols <= 0 {
		cols = 1
	}
	for i, off := range s.frame.Offsets {
		start := off * cols / carousel.PanelWidth
		if start <= 0 && start+cols > 0 {
			return i
		}
	}
	return -1
}

func (s *SliderView) cardWidth() int {
	w := s.width
	if w <= 0 {
		w = defaultWidth
	}
	return max(w-2*controlWidth, minCardWidth)
}

func (s *SliderView) cardContent(sl config.Slide, inner int) string {
	var b strings.Builder
	b.WriteString(Styles.CardTitle.Render(textutil.Truncate(sl.Title, inner)))
	b.WriteString("\n\n")
	b.WriteString(Styles.Normal.Width(inner).Render(sl.Body))
	if sl.Author != "" {
		b.WriteString("\n\n")
		b.WriteString(Styles.Author.Render(textutil.Truncate("- "+sl.Author, inner)))
	}
	return b.String()
}

// View implements View.
func (s *SliderView) View() string {
	s.zones.Reset()
	if len(s.slides) == 0 || len(s.frame.Offsets) == 0 {
		return Styles.Empty.Render("No slides")
	}

	cardWidth := s.cardWidth()
	inner := cardWidth - Styles.Card.GetHorizontalFrameSize()
	height := 0
	for _, sl := range s.slides {
		height = max(height, lipgloss.Height(s.cardContent(sl, inner)))
	}

	content := ""
	if idx := s.Visible(inner); idx >= 0 && idx < len(s.slides) {
		content = s.cardContent(s.slides[idx], inner)
	}
	card := Styles.Card.
		Width(cardWidth - Styles.Card.GetHorizontalBorderSize()).
		Height(height + Styles.Card.GetVerticalPadding()).
		Render(content)
	cardHeight := lipgloss.Height(card)

	left := lipgloss.Place(controlWidth, cardHeight, lipgloss.Center, lipgloss.Center, Styles.Control.Render(controlPrev))
	right := lipgloss.Place(controlWidth, cardHeight, lipgloss.Center, lipgloss.Center, Styles.Control.Render(controlNext))
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, card, right)
	rowWidth := 2*controlWidth + cardWidth

	header := Styles.Muted.Render(fmt.Sprintf("Slide %d of %d", s.frame.Current+1, len(s.slides)))

	// Row 0 is the header, the card occupies rows [1, 1+cardHeight), dots follow.
	s.zones.AddRows(0, controlWidth, 1, 1+cardHeight, carousel.Element{Kind: RoleControl, Attrs: map[string]string{AttrDir: "prev"}})
	s.zones.AddRows(controlWidth+cardWidth, rowWidth, 1, 1+cardHeight, carousel.Element{Kind: RoleControl, Attrs: map[string]string{AttrDir: "next"}})

	dotsY := 1 + cardHeight
	dots := s.renderDots(rowWidth, dotsY)

	return lipgloss.JoinVertical(lipgloss.Left, header, row, dots)
}

// renderDots draws the indicator row and registers its zones: the whole row
// as the container, one cell per dot on top of it.
func (s *SliderView) renderDots(rowWidth, y int) string {
	n := len(s.frame.Indicators)
	total := 2*n - 1
	start := textutil.CenterStart(rowWidth, total)

	s.zones.Add(0, max(rowWidth, start+total), y, carousel.Element{Kind: RoleDots})
	parts := make([]string, n)
	for i, active := range s.frame.Indicators {
		if active {
			parts[i] = Styles.DotOn.Render(dotActive)
		} else {
			parts[i] = Styles.DotOff.Render(dotInactive)
		}
		x := start + 2*i
		s.zones.Add(x, x+1, y, carousel.IndicatorElement(i))
	}
	return textutil.Spaces(start) + strings.Join(parts, " ")
}

// Click implements Clickable. Controls become Forward/Backward, anything in
// the dots row becomes an activation for the router to inspect.
func (s *SliderView) Click(x, y int) tea.Cmd {
	t, ok := s.zones.Hit(x, y)
	if !ok {
		return nil
	}
	var ev carousel.Event
	switch t.Role() {
	case RoleControl:
		if dir, _ := t.Attr(AttrDir); dir == "prev" {
			ev = carousel.Backward{}
		} else {
			ev = carousel.Forward{}
		}
	default:
		ev = carousel.Activate{Target: t}
	}
	return func() tea.Msg { return SliderInputMsg{Event: ev} }
}
