// Package ui hosts the carousel in a Bubble Tea program.
//
// Core abstractions:
//   - View: a region with its own model, update, view (Elm-style)
//   - Panel/StackLayout: panels stacked vertically; clicks are translated to panel-local coordinates
//   - Zones: per-frame table of clickable rectangles; containers dispatch by hit-testing it
//   - SliderView: a carousel.Renderer that draws the visible slide, controls and dots
//   - TabsView: tab row with one content area per tab
//   - OverlayStack: modal windows with dismiss keys
//   - KeybindRegistry/KeyHandler: app-level key bindings (quit, modal, tabs)
//
// Every slider input (keys, controls, dots) goes through carousel.Router.
package ui
