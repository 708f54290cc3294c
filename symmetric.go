package offaxis

import (
	"fmt"
	"math"
)

// SymmetricCamera is a conventional perspective camera with a frustum
// centered on its view axis. It shares the session rules of Camera and can
// be used wherever a PerspectiveCamera is accepted.
type SymmetricCamera struct {
	// Position is the eye position.
	Position Vec3

	// Target is the point the camera looks at.
	Target Vec3

	// Up is the look-at up vector. Zero means WorldUp.
	Up Vec3

	// FOV is the vertical field of view in degrees.
	FOV float64

	// Aspect is width/height. Zero means the aspect of the viewport passed
	// to Begin.
	Aspect float64

	near, far float64
	session   session
}

// Ensure SymmetricCamera implements PerspectiveCamera.
var _ PerspectiveCamera = (*SymmetricCamera)(nil)

// NewSymmetricCamera creates a camera at position looking at target with the
// given vertical field of view in degrees and the default clip distances.
func NewSymmetricCamera(position, target Vec3, fov float64) *SymmetricCamera {
	return &SymmetricCamera{
		Position: position,
		Target:   target,
		FOV:      fov,
		near:     DefaultNearClip,
		far:      DefaultFarClip,
	}
}

// SetClip sets the clip distances.
func (c *SymmetricCamera) SetClip(near, far float64) error {
	if err := validateClip(near, far); err != nil {
		return err
	}
	c.near, c.far = near, far
	return nil
}

// NearClip returns the near-clip distance.
func (c *SymmetricCamera) NearClip() float64 { return c.near }

// FarClip returns the far-clip distance.
func (c *SymmetricCamera) FarClip() float64 { return c.far }

// Bounds returns the near-plane extents for the given aspect ratio.
func (c *SymmetricCamera) Bounds(aspect float64) (left, right, bottom, top float64) {
	top = c.near * math.Tan(c.FOV*math.Pi/360)
	right = top * aspect
	return -right, right, -top, top
}

// Begin saves the render state and installs the symmetric projection and
// the look-at view.
func (c *SymmetricCamera) Begin(rs RenderState, vp Viewport) error {
	if err := validateClip(c.near, c.far); err != nil {
		return err
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("%w: field of view %g out of range", ErrDegenerateGeometry, c.FOV)
	}
	dir := c.Target.Sub(c.Position)
	if dir.Length() < geometryEpsilon {
		return fmt.Errorf("%w: target coincides with position", ErrDegenerateGeometry)
	}
	up := c.Up
	if up.IsZero() {
		up = WorldUp
	}
	if up.Normalize().Cross(dir.Normalize()).Length() < shapeTolerance {
		return fmt.Errorf("%w: up vector parallel to view direction", ErrDegenerateGeometry)
	}

	aspect := c.Aspect
	if aspect <= 0 {
		aspect = vp.Aspect()
	}

	if err := c.session.begin(rs); err != nil {
		return err
	}
	l, r, b, t := c.Bounds(aspect)
	rs.SetFrustum(l, r, b, t, c.near, c.far)
	rs.LookAt(c.Position, c.Target, up)
	if !vp.Empty() {
		rs.SetViewport(vp)
	}
	return nil
}

// End restores the render state saved by Begin.
func (c *SymmetricCamera) End() error {
	return c.session.end()
}
