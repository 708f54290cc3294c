package offaxis

// CameraOption configures a Camera during creation.
// Use functional options to customize Camera behavior.
//
// Example:
//
//	// Default 1x1 window in front of an eye at the origin
//	cam, err := offaxis.NewCamera()
//
//	// A 52x29 cm monitor with the viewer 60 cm in front of it
//	win, _ := offaxis.NewScreenWindow(tl, tr, bl, br)
//	cam, err := offaxis.NewCamera(
//	    offaxis.WithViewPortalWindow(win),
//	    offaxis.WithUserPosition(offaxis.V3(0, 0, 60)),
//	    offaxis.WithClip(1, 500),
//	)
type CameraOption func(*cameraOptions)

// cameraOptions holds optional configuration for Camera creation.
type cameraOptions struct {
	eye      Vec3
	near     float64
	far      float64
	window   ScreenWindow
	up       Vec3
	observer func(Diagnostics)
}

const (
	// DefaultNearClip is the near-clip distance of a new Camera.
	DefaultNearClip = 1.0

	// DefaultFarClip is the far-clip distance of a new Camera.
	DefaultFarClip = 1000.0
)

// defaultOptions returns the default camera options.
func defaultOptions() cameraOptions {
	return cameraOptions{
		eye:    Vec3{},
		near:   DefaultNearClip,
		far:    DefaultFarClip,
		window: defaultWindow(),
		up:     WorldUp,
	}
}

// WithUserPosition sets the initial eye position.
func WithUserPosition(eye Vec3) CameraOption {
	return func(o *cameraOptions) {
		o.eye = eye
	}
}

// WithClip sets the initial near and far clip distances.
//
// Keep near small for a wide viewing volume. When simulating a real window,
// far can match the tracking range but should stay small enough to keep
// depth-buffer precision.
func WithClip(near, far float64) CameraOption {
	return func(o *cameraOptions) {
		o.near = near
		o.far = far
	}
}

// WithViewPortalWindow sets the initial screen window.
func WithViewPortalWindow(w ScreenWindow) CameraOption {
	return func(o *cameraOptions) {
		o.window = w
	}
}

// WithUp sets the look-at up vector installed by Begin. The default is
// WorldUp. When up is parallel to the view direction, the screen's own up
// axis is used instead.
func WithUp(up Vec3) CameraOption {
	return func(o *cameraOptions) {
		o.up = up
	}
}

// WithObserver registers a function that receives a Diagnostics snapshot at
// the end of every session. The observer must not call back into the camera.
func WithObserver(fn func(Diagnostics)) CameraOption {
	return func(o *cameraOptions) {
		o.observer = fn
	}
}
