// Package carousel implements the slide carousel engine.
//
// Core abstractions:
//   - Move: a navigation intent (Next, Previous, GoTo)
//   - State: current index + count, with circular increment/decrement
//   - Layout: pure mapping of (current, count) to per-panel offsets
//   - IndicatorSet: one indicator per panel, exactly one active
//   - Router: fans the input channels (controls, keys, indicator activation) into moves
//   - Engine: applies moves and pushes frames to a Renderer
//
// The engine never wraps around a GoTo and never clamps: out-of-range targets
// are rejected with ErrOutOfRange and nothing is rendered.
package carousel
