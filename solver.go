package offaxis

import (
	"fmt"
	"math"
)

// Frustum holds the asymmetric frustum solved for one eye position and the
// intermediate quantities it was derived from. All fields are a pure
// function of (ScreenWindow, eye, near).
type Frustum struct {
	// Left, Right, Bottom and Top are the clip-plane extents at the near
	// plane, in the camera frame installed by Begin.
	Left, Right, Bottom, Top float64

	// Near is the near-clip distance the extents were scaled to.
	Near float64

	// L and B are the eye's offsets from the bottom-left corner along the
	// screen's horizontal and vertical edges; R = width - L, T = height - B.
	L, R, B, T float64

	// D is the perpendicular distance from the screen plane to the eye,
	// positive on the side the screen normal points to.
	D float64

	// TopLeftCam and BottomRightCam are the corners relative to the eye,
	// expressed in the camera frame (x right, y up, z towards the viewer).
	TopLeftCam, BottomRightCam Vec3

	// TopLeftNear and BottomRightNear are the corners projected onto the
	// near plane. They equal (Left, Top, -Near) and (Right, Bottom, -Near).
	TopLeftNear, BottomRightNear Vec3

	// Normal is the screen normal Zs.
	Normal Vec3
}

// SolveFrustum computes the off-axis frustum for an eye looking through w,
// scaled by similar triangles to the near plane:
//
//	VP = bottomLeft - eye
//	D  = -(VP · Zs)
//	L  = VP · Xs,  B = VP · Ys,  R = width - L,  T = height - B
//	left = -L·near/D, right = R·near/D, bottom = -B·near/D, top = T·near/D
//
// Returns ErrDegenerateGeometry when the eye is not finite or D < ε (the
// eye lies on the screen plane or behind it), and ErrInvalidClipRange when
// near is not positive and finite.
func SolveFrustum(w ScreenWindow, eye Vec3, near float64) (Frustum, error) {
	if !eye.IsFinite() {
		return Frustum{}, fmt.Errorf("%w: non-finite eye position %v", ErrDegenerateGeometry, eye)
	}
	if !isFinite(near) || near <= 0 {
		return Frustum{}, fmt.Errorf("%w: near=%g", ErrInvalidClipRange, near)
	}

	vp := w.bottomLeft.Sub(eye)
	d := -vp.Dot(w.zs)
	if d < geometryEpsilon {
		if math.Abs(d) < geometryEpsilon {
			return Frustum{}, fmt.Errorf("%w: eye %v lies on the screen plane (d=%g)",
				ErrDegenerateGeometry, eye, d)
		}
		return Frustum{}, fmt.Errorf("%w: eye %v is behind the screen plane (d=%g)",
			ErrDegenerateGeometry, eye, d)
	}

	f := Frustum{
		Near:   near,
		D:      d,
		L:      vp.Dot(w.xs),
		B:      vp.Dot(w.ys),
		Normal: w.zs,
	}
	f.R = w.width - f.L
	f.T = w.height - f.B

	scale := near / d
	f.Left = -f.L * scale
	f.Right = f.R * scale
	f.Bottom = -f.B * scale
	f.Top = f.T * scale

	f.TopLeftCam = w.toCamera(w.topLeft.Sub(eye))
	f.BottomRightCam = w.toCamera(w.bottomRight.Sub(eye))

	var err error
	if f.TopLeftNear, err = projectNear(f.TopLeftCam, near); err != nil {
		return Frustum{}, err
	}
	if f.BottomRightNear, err = projectNear(f.BottomRightCam, near); err != nil {
		return Frustum{}, err
	}
	return f, nil
}

// toCamera expresses an eye-relative world vector in the camera frame whose
// axes are the screen's right, up and normal directions.
func (w ScreenWindow) toCamera(v Vec3) Vec3 {
	return Vec3{X: v.Dot(w.Right()), Y: v.Dot(w.Up()), Z: v.Dot(w.zs)}
}

// projectNear scales a camera-space vector onto the near plane.
func projectNear(v Vec3, near float64) (Vec3, error) {
	s, err := nearPlaneScale(v.Z)
	if err != nil {
		return Vec3{}, err
	}
	return v.Mul(s * near), nil
}

// nearPlaneScale returns 1/|z| for a camera-space depth. Dividing by the
// absolute value keeps a corner on its own side of the view axis when it
// lies behind the eye; a depth within ε of zero has no projection.
func nearPlaneScale(z float64) (float64, error) {
	az := math.Abs(z)
	if az < geometryEpsilon {
		return 0, fmt.Errorf("%w: corner lies in the eye's plane (z=%g)", ErrDegenerateGeometry, z)
	}
	return 1 / az, nil
}

// Matrix returns the projection matrix for the frustum with the given far
// clip distance.
func (f Frustum) Matrix(far float64) Matrix4 {
	return FrustumMatrix(f.Left, f.Right, f.Bottom, f.Top, f.Near, far)
}

// Symmetric reports whether the frustum is centered on the view axis within
// epsilon.
func (f Frustum) Symmetric(epsilon float64) bool {
	return math.Abs(f.Left+f.Right) < epsilon && math.Abs(f.Bottom+f.Top) < epsilon
}
