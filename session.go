package offaxis

import (
	"errors"
	"fmt"
)

// RenderState is the rendering pipeline's projection/view state, consumed by
// cameras during a session. Implementations keep a stack so that Begin can
// save the current transforms and End can restore them.
//
// The render package provides a software implementation and the gpu package
// one that uploads camera uniforms.
type RenderState interface {
	// SaveProjectionAndView pushes the current projection and view.
	SaveProjectionAndView()

	// RestoreProjectionAndView pops the transforms pushed by the matching
	// SaveProjectionAndView.
	RestoreProjectionAndView()

	// SetFrustum installs an asymmetric perspective projection.
	SetFrustum(left, right, bottom, top, near, far float64)

	// LookAt installs a view transform from eye towards target.
	LookAt(eye, target, up Vec3)

	// SetViewport installs the window-space viewport.
	SetViewport(vp Viewport)
}

// PerspectiveCamera is the capability shared by Camera and SymmetricCamera,
// so that a renderer can accept either.
type PerspectiveCamera interface {
	Begin(rs RenderState, vp Viewport) error
	End() error
	NearClip() float64
	FarClip() float64
}

// session tracks the Inactive/Active state of a camera and the render state
// it saved.
type session struct {
	rs     RenderState
	active bool
}

func (s *session) begin(rs RenderState) error {
	if s.active {
		return fmt.Errorf("%w: Begin called on an active camera", ErrSessionState)
	}
	if rs == nil {
		return fmt.Errorf("%w: nil render state", ErrSessionState)
	}
	rs.SaveProjectionAndView()
	s.rs = rs
	s.active = true
	return nil
}

func (s *session) end() error {
	if !s.active {
		return fmt.Errorf("%w: End called on an inactive camera", ErrSessionState)
	}
	s.rs.RestoreProjectionAndView()
	s.rs = nil
	s.active = false
	return nil
}

// Render runs draw between cam.Begin and cam.End. End is deferred, so the
// render state is restored when draw returns an error and when it panics
// (the panic is then propagated). Errors from draw and End are joined.
//
// Example:
//
//	err := offaxis.Render(cam, stack, offaxis.Rect(0, 0, 1920, 1080), func() error {
//	    return scene.Draw(stack)
//	})
func Render(cam PerspectiveCamera, rs RenderState, vp Viewport, draw func() error) (err error) {
	if err := cam.Begin(rs, vp); err != nil {
		return err
	}
	defer func() {
		if endErr := cam.End(); endErr != nil {
			err = errors.Join(err, endErr)
		}
	}()
	return draw()
}
