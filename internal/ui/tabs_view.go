package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slider/internal/carousel"
	"slider/internal/config"
	"slider/internal/ui/textutil"
)

// Roles used in the tab row.
const (
	RoleTab    = "tab"
	RoleTabRow = "tab-row"
	AttrTab    = "tab"
)

const tabGap = 2

// TabsView shows a row of tabs and the content of the active one.
type TabsView struct {
	tabs  []config.Tab
	set   *TabSet
	width int
	zones Zones
}

// Ensure TabsView implements View and Clickable.
var (
	_ View      = (*TabsView)(nil)
	_ Clickable = (*TabsView)(nil)
)

// NewTabsView creates a view with the first tab active.
func NewTabsView(tabs []config.Tab) *TabsView {
	return &TabsView{tabs: tabs, set: NewTabSet(len(tabs)), width: defaultWidth}
}

// Active returns the active tab index, -1 without tabs.
func (v *TabsView) Active() int { return v.set.Current }

// Init implements View.
func (v *TabsView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *TabsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
	case SelectTabMsg:
		v.set.Select(msg.Index)
	case CycleTabMsg:
		if msg.Delta < 0 {
			v.set.Prev()
		} else {
			v.set.Next()
		}
	}
	return v, nil
}

// View implements View.
func (v *TabsView) View() string {
	v.zones.Reset()
	if len(v.tabs) == 0 {
		return ""
	}
	width := v.width
	if width <= 0 {
		width = defaultWidth
	}

	v.zones.Add(0, width, 0, carousel.Element{Kind: RoleTabRow})
	var row strings.Builder
	x := 0
	for i, t := range v.tabs {
		label := "[" + strconv.Itoa(i+1) + "] " + t.Label
		w := textutil.Width(label)
		if i == v.set.Current {
			row.WriteString(Styles.TabOn.Render(label))
		} else {
			row.WriteString(Styles.TabOff.Render(label))
		}
		v.zones.Add(x, x+w, 0, carousel.Element{Kind: RoleTab, Attrs: map[string]string{AttrTab: strconv.Itoa(i)}})
		x += w
		if i < len(v.tabs)-1 {
			row.WriteString(textutil.Spaces(tabGap))
			x += tabGap
		}
	}

	active := v.tabs[v.set.Current]
	inner := max(width-Styles.TabBody.GetHorizontalFrameSize(), 1)
	body := Styles.Title.Render(textutil.Truncate(active.Title, inner)) + "\n" +
		Styles.TabBody.Width(width).Render(active.Body)
	return lipgloss.JoinVertical(lipgloss.Left, row.String(), "", body)
}

// Click implements Clickable. Only clicks on a tab select it; the rest of the
// row is ignored.
func (v *TabsView) Click(x, y int) tea.Cmd {
	t, ok := v.zones.Hit(x, y)
	if !ok || t.Role() != RoleTab {
		return nil
	}
	raw, _ := t.Attr(AttrTab)
	i, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return func() tea.Msg { return SelectTabMsg{Index: i} }
}
