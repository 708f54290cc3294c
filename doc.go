// Package offaxis computes generalized off-axis (asymmetric) perspective
// projections for cameras whose image must stay aligned with a physical
// display seen from a moving eye.
//
// # Overview
//
// A head-tracked screen behaves like a window onto the virtual scene only if
// the rendered frustum has its apex at the viewer's eye and its near-plane
// rectangle is the screen rectangle scaled towards the eye. offaxis derives
// that frustum from the four world-space corners of the screen and the eye
// position, and installs it around a render pass.
//
// # Quick Start
//
//	import "github.com/gogpu/offaxis"
//
//	// Screen corners and eye in the same frame (here: centimeters, tracker origin)
//	cam, err := offaxis.NewCamera(offaxis.WithClip(1, 500))
//	if err != nil {
//	    return err
//	}
//	err = cam.SetViewPortalWindow(tl, tr, bl, br)
//
//	// Every frame
//	if err := cam.SetUserPosition(headPosition); err != nil {
//	    // skip or correct the frame: the previous frustum is still installed
//	}
//	err = offaxis.Render(cam, renderState, viewport, drawScene)
//
// # Architecture
//
// The package is organized into:
//   - ScreenWindow: screen basis (Xs, Ys, Zs), width and height
//   - SolveFrustum: left/right/bottom/top at the near plane for an eye
//   - Camera: setters that recompute synchronously, Begin/End session
//   - RenderState: the pipeline's projection/view stack, implemented by
//     the render (software) and gpu (uniform upload) packages
//
// # Coordinate System
//
// Any right-handed world frame works as long as the corners and the eye share
// it. The installed view looks from the eye along the negative screen normal,
// with x towards the screen's right edge and y towards its top edge, the
// OpenGL camera convention.
//
// # Errors
//
// Degenerate geometry, invalid clip ranges and unbalanced sessions are
// reported immediately with ErrDegenerateGeometry, ErrInvalidClipRange and
// ErrSessionState; match them with errors.Is.
package offaxis

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
