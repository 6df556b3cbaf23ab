package carousel

import "errors"

var (
	// ErrOutOfRange is returned for a GoTo whose index is outside [0, count).
	ErrOutOfRange = errors.New("carousel: index out of range")

	// ErrEmptyCarousel is returned by State when count is zero.
	// Engine treats it as a no-op and never surfaces it.
	ErrEmptyCarousel = errors.New("carousel: no panels")

	// ErrIndexNotFound is returned by IndicatorSet.Lookup for an unknown index.
	ErrIndexNotFound = errors.New("carousel: indicator not found")

	// ErrMalformedIndex is returned when an indicator's index annotation is not an integer.
	ErrMalformedIndex = errors.New("carousel: malformed indicator index")

	// ErrNotInitialized is returned by Engine.HandleInput before Initialize.
	ErrNotInitialized = errors.New("carousel: engine not initialized")

	// ErrAlreadyInitialized is returned when Initialize (or IndicatorSet.Build) runs twice.
	ErrAlreadyInitialized = errors.New("carousel: already initialized")
)
