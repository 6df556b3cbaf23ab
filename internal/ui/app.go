package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"slider/internal/carousel"
	"slider/internal/config"
	"slider/internal/logging"
)

// Panel IDs in the page layout, top to bottom.
const (
	PanelHeader = "header"
	PanelTabs   = "tabs"
	PanelSlider = "slider"
	PanelHelp   = "help"
)

// Options configures NewAppModel.
type Options struct {
	Deck      *config.Deck
	Keys      carousel.Keys
	QuitKeys  []string
	ModalKey  string
	Logger    *slog.Logger
	Observers []carousel.Observer
}

// OptionsFromConfig maps loaded settings onto Options.
func OptionsFromConfig(cfg *config.Config, deck *config.Deck) Options {
	return Options{
		Deck:     deck,
		Keys:     carousel.Keys{Previous: cfg.Keys.Previous, Next: cfg.Keys.Next},
		QuitKeys: cfg.Keys.Quit,
		ModalKey: cfg.Keys.Modal,
	}
}

// AppModel is the root model: header, tabs, slider and help stacked
// vertically, with an overlay stack for the info window.
type AppModel struct {
	Deck     *config.Deck
	Engine   *carousel.Engine
	Router   *carousel.Router
	Header   *HeaderView
	Tabs     *TabsView
	Slider   *SliderView
	Help     *HelpView
	Layout   *StackLayout
	Overlays OverlayStack
	Keys     *KeyHandler
	Log      *slog.Logger

	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel wires the carousel engine to a SliderView and initializes it.
func NewAppModel(opts Options) (*AppModel, error) {
	deck := opts.Deck
	if deck == nil {
		deck = config.DefaultDeck()
	}
	keys := opts.Keys
	if len(keys.Previous) == 0 && len(keys.Next) == 0 {
		keys = carousel.DefaultKeys()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	slider := NewSliderView(deck.Slides)
	engineOpts := []carousel.Option{carousel.WithLogger(log)}
	for _, o := range opts.Observers {
		engineOpts = append(engineOpts, carousel.WithObserver(o))
	}
	engine := carousel.New(len(deck.Slides), slider, engineOpts...)
	if err := engine.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize carousel: %w", err)
	}

	reg := NewKeybindRegistry()
	quit := opts.QuitKeys
	if len(quit) == 0 {
		quit = []string{"q", "ctrl+c"}
	}
	for _, k := range quit {
		reg.BindWithDesc(k, tea.Quit, "quit")
	}
	modalKey := opts.ModalKey
	if modalKey == "" {
		modalKey = "o"
	}
	reg.BindWithDesc(modalKey, func() tea.Msg { return ShowModalMsg{} }, "about")
	if len(deck.Tabs) > 1 {
		reg.BindWithDesc("tab", func() tea.Msg { return CycleTabMsg{Delta: 1} }, "next tab")
		reg.Bind("shift+tab", func() tea.Msg { return CycleTabMsg{Delta: -1} })
	}
	for i := range deck.Tabs {
		idx := i
		reg.Bind(strconv.Itoa(i+1), func() tea.Msg { return SelectTabMsg{Index: idx} })
	}

	header := NewHeaderView(deck.Title)
	tabs := NewTabsView(deck.Tabs)
	help := NewHelpView(NewKeyMap(keys, reg))

	return &AppModel{
		Deck:   deck,
		Engine: engine,
		Router: carousel.NewRouter(engine, keys),
		Header: header,
		Tabs:   tabs,
		Slider: slider,
		Help:   help,
		Layout: NewStackLayout(
			Panel{ID: PanelHeader, View: header},
			Panel{ID: PanelTabs, View: tabs},
			Panel{ID: PanelSlider, View: slider},
			Panel{ID: PanelHelp, View: help},
		),
		Keys: NewKeyHandler(reg),
		Log:  log,
	}, nil
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// dispatch hands a slider event to the router and reports the outcome in the status line.
func (m *AppModel) dispatch(ev carousel.Event) {
	err := m.Router.Dispatch(ev)
	switch {
	case err == nil:
		m.Help.Status, m.Help.Err = "", false
	case errors.Is(err, carousel.ErrOutOfRange), errors.Is(err, carousel.ErrMalformedIndex):
		m.Log.Warn("slider input rejected", "err", err)
		m.Help.Status, m.Help.Err = err.Error(), true
	default:
		m.Log.Error("slider input failed", "err", err)
		m.Help.Status, m.Help.Err = err.Error(), true
	}
}

func (m *AppModel) showModal() {
	if m.Overlays.Len() > 0 {
		return
	}
	m.Overlays.Push(Overlay{
		View:    NewInfoModal(m.Deck.Modal.Title, m.Deck.Modal.Body),
		Dismiss: []string{"esc"},
	})
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, a.Layout.Update(msg)
	case ShowModalMsg:
		a.showModal()
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case SliderInputMsg:
		a.dispatch(msg.Event)
		return a, nil
	case SelectTabMsg, CycleTabMsg:
		_, cmd := a.Tabs.Update(msg)
		return a, cmd
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if a.Overlays.Len() > 0 {
			return a, a.Overlays.ClickTop(a.width, a.height, msg.X, msg.Y)
		}
		return a, a.Layout.Click(msg.X, msg.Y)
	case tea.KeyMsg:
		// Overlays take all keys while open.
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if consumed, cmd := a.Keys.Handle(msg); consumed {
			return a, cmd
		}
		a.dispatch(carousel.KeyPress{Code: msg.String()})
		return a, nil
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Overlays.Len() > 0 && a.width > 0 && a.height > 0 {
		screen, _, _, _ := a.Overlays.Place(a.width, a.height)
		return screen
	}
	page := a.Layout.View()
	if top, ok := a.Overlays.Peek(); ok {
		page += "\n\n" + top.View.View()
	}
	return page
}
