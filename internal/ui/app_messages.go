package ui

import "slider/internal/carousel"

// SliderInputMsg carries a slider input event (control or dot click) to the app,
// which hands it to the carousel router.
type SliderInputMsg struct {
	Event carousel.Event
}

// ShowModalMsg opens the info window (keys.modal or the header button).
type ShowModalMsg struct{}

// DismissModalMsg closes the topmost overlay (esc, close button, backdrop click).
type DismissModalMsg struct{}

// SelectTabMsg activates a tab by index (digit keys or a click on the tab row).
type SelectTabMsg struct {
	Index int
}

// CycleTabMsg activates the next (Delta > 0) or previous tab.
type CycleTabMsg struct {
	Delta int
}
