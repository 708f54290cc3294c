package offaxis

import "errors"

var (
	// ErrDegenerateGeometry is returned when the screen window has a
	// zero-length edge, a corner or the eye is not finite, or the eye lies on
	// (or behind) the screen plane. Any of these would otherwise produce
	// non-finite or inverted frustum bounds.
	ErrDegenerateGeometry = errors.New("offaxis: degenerate geometry")

	// ErrInvalidClipRange is returned when the clip distances violate
	// 0 < near < far.
	ErrInvalidClipRange = errors.New("offaxis: invalid clip range")

	// ErrSessionState is returned by Begin on an already active camera and
	// by End on an inactive one.
	ErrSessionState = errors.New("offaxis: invalid session state")
)
