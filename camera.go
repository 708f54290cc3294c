package offaxis

import (
	"fmt"
	"math"
)

// Camera is a user-perspective camera: a perspective camera whose image stays
// geometrically aligned with a fixed physical screen window as seen from a
// (possibly tracked) eye position.
//
// Every setter validates its input and synchronously recomputes the frustum.
// Setters are transactional: when one returns an error the camera keeps its
// previous inputs, so a Camera always holds a valid frustum.
//
// A Camera is owned by a single render goroutine and is not safe for
// concurrent use.
type Camera struct {
	eye      Vec3
	near     float64
	far      float64
	window   ScreenWindow
	up       Vec3
	frustum  Frustum
	observer func(Diagnostics)

	session session
}

// Ensure Camera implements PerspectiveCamera.
var _ PerspectiveCamera = (*Camera)(nil)

// NewCamera creates a Camera. Without options the eye is at the origin,
// near is DefaultNearClip, far is DefaultFarClip and the window is a 1x1
// square centered on (0, 0, -1) facing +Z.
func NewCamera(opts ...CameraOption) (*Camera, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Camera{up: o.up, observer: o.observer}
	if err := c.apply(o.window, o.eye, o.near, o.far); err != nil {
		return nil, err
	}

	Logger().Debug("offaxis: camera initialised",
		"near", c.near, "far", c.far,
		"left", c.frustum.TopLeftNear.X, "right", c.frustum.BottomRightNear.X,
		"bottom", c.frustum.BottomRightNear.Y, "top", c.frustum.TopLeftNear.Y)
	return c, nil
}

// apply validates a complete set of inputs, solves the frustum and commits
// the result. On error nothing is changed.
func (c *Camera) apply(w ScreenWindow, eye Vec3, near, far float64) error {
	if err := validateClip(near, far); err != nil {
		return err
	}
	f, err := SolveFrustum(w, eye, near)
	if err != nil {
		return err
	}
	c.window = w
	c.eye = eye
	c.near = near
	c.far = far
	c.frustum = f
	return nil
}

// validateClip enforces 0 < near < far with finite values.
func validateClip(near, far float64) error {
	switch {
	case !isFinite(near) || !isFinite(far):
		return fmt.Errorf("%w: near=%g far=%g must be finite", ErrInvalidClipRange, near, far)
	case near <= 0:
		return fmt.Errorf("%w: near=%g must be positive", ErrInvalidClipRange, near)
	case near >= far:
		return fmt.Errorf("%w: near=%g must be less than far=%g", ErrInvalidClipRange, near, far)
	}
	return nil
}

// SetNearClip sets the near-clip distance and recomputes the frustum.
func (c *Camera) SetNearClip(near float64) error {
	return c.apply(c.window, c.eye, near, c.far)
}

// SetFarClip sets the far-clip distance.
func (c *Camera) SetFarClip(far float64) error {
	return c.apply(c.window, c.eye, c.near, far)
}

// SetClip sets both clip distances at once, for moves that would be invalid
// one distance at a time.
func (c *Camera) SetClip(near, far float64) error {
	return c.apply(c.window, c.eye, near, far)
}

// SetUserPosition moves the eye and recomputes the frustum.
// The eye must be in the same frame as the window corners.
func (c *Camera) SetUserPosition(eye Vec3) error {
	return c.apply(c.window, eye, c.near, c.far)
}

// SetViewPortalWindow sets the physical screen window from its corners and
// recomputes the frustum with the current eye position.
func (c *Camera) SetViewPortalWindow(topLeft, topRight, bottomLeft, bottomRight Vec3) error {
	w, err := NewScreenWindow(topLeft, topRight, bottomLeft, bottomRight)
	if err != nil {
		return err
	}
	return c.apply(w, c.eye, c.near, c.far)
}

// SetPortal replaces the window and the eye in one step.
func (c *Camera) SetPortal(w ScreenWindow, eye Vec3) error {
	return c.apply(w, eye, c.near, c.far)
}

// NearClip returns the near-clip distance.
func (c *Camera) NearClip() float64 { return c.near }

// FarClip returns the far-clip distance.
func (c *Camera) FarClip() float64 { return c.far }

// UserPosition returns the eye position.
func (c *Camera) UserPosition() Vec3 { return c.eye }

// Window returns the screen window.
func (c *Camera) Window() ScreenWindow { return c.window }

// Frustum returns the frustum solved for the current inputs.
func (c *Camera) Frustum() Frustum { return c.frustum }

// Active reports whether the camera is between Begin and End.
func (c *Camera) Active() bool { return c.session.active }

// Begin saves the render state's projection and view, installs the
// off-axis frustum and a view looking from the eye perpendicularly into the
// screen plane, and applies vp. An empty vp keeps the render state's current
// viewport. Every successful Begin must be paired with End; prefer Render,
// which guarantees it.
func (c *Camera) Begin(rs RenderState, vp Viewport) error {
	if err := c.session.begin(rs); err != nil {
		return err
	}

	f := c.frustum
	rs.SetFrustum(f.Left, f.Right, f.Bottom, f.Top, c.near, c.far)
	target, up := c.lookAt()
	rs.LookAt(c.eye, target, up)
	if !vp.Empty() {
		rs.SetViewport(vp)
	}
	return nil
}

// End restores the projection and view saved by Begin.
func (c *Camera) End() error {
	if err := c.session.end(); err != nil {
		return err
	}

	d := c.Diagnostics()
	Logger().Debug("offaxis: session end", "camera", d)
	if c.observer != nil {
		c.observer(d)
	}
	return nil
}

// lookAt returns the look-at target and up vector. The view direction is the
// screen normal, sign-normalized by the depth of the top-left corner so that
// the camera always faces the screen; for a solved frustum that depth is
// -D and the camera looks along -Zs.
func (c *Camera) lookAt() (target, up Vec3) {
	dir := c.frustum.Normal.Mul(math.Copysign(1, c.frustum.TopLeftCam.Z))
	target = c.eye.Add(dir)

	up = c.up.Normalize()
	if up.IsZero() || math.Abs(up.Dot(dir)) > 1-shapeTolerance {
		up = c.window.Up()
	}
	return target, up
}
