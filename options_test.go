package offaxis

import (
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.near != DefaultNearClip || o.far != DefaultFarClip {
		t.Errorf("clip = (%v, %v), want (%v, %v)", o.near, o.far, DefaultNearClip, DefaultFarClip)
	}
	if o.up != WorldUp {
		t.Errorf("up = %v, want %v", o.up, WorldUp)
	}
	if !o.window.Center().Approx(V3(0, 0, -1), 1e-12) {
		t.Errorf("window center = %v, want (0, 0, -1)", o.window.Center())
	}
	if o.observer != nil {
		t.Error("default observer is not nil")
	}
}

func TestCameraOptions(t *testing.T) {
	win := unitWindow(t)
	eye := V3(0.25, 0.75, 3)
	up := V3(0, 0, 1)

	o := defaultOptions()
	for _, opt := range []CameraOption{
		WithViewPortalWindow(win),
		WithUserPosition(eye),
		WithClip(0.01, 20),
		WithUp(up),
		WithObserver(func(Diagnostics) {}),
	} {
		opt(&o)
	}

	if o.window != win {
		t.Error("WithViewPortalWindow not applied")
	}
	if o.eye != eye {
		t.Errorf("eye = %v, want %v", o.eye, eye)
	}
	if o.near != 0.01 || o.far != 20 {
		t.Errorf("clip = (%v, %v), want (0.01, 20)", o.near, o.far)
	}
	if o.up != up {
		t.Errorf("up = %v, want %v", o.up, up)
	}
	if o.observer == nil {
		t.Error("WithObserver not applied")
	}
}

func TestWithUpInstalledByBegin(t *testing.T) {
	// Tilted head: up leans to the right but is not parallel to the view.
	up := V3(1, 1, 0)
	cam, err := NewCamera(WithViewPortalWindow(unitWindow(t)), WithUserPosition(V3(0.5, 0.5, 1)), WithUp(up))
	if err != nil {
		t.Fatal(err)
	}
	rs := &recordingState{}
	if err := cam.Begin(rs, Viewport{}); err != nil {
		t.Fatal(err)
	}
	defer cam.End()

	if !rs.up.Approx(up.Normalize(), 1e-12) {
		t.Errorf("up = %v, want %v", rs.up, up.Normalize())
	}
}

func TestWithObserverCalledOnEnd(t *testing.T) {
	var got []Diagnostics
	cam, err := NewCamera(
		WithViewPortalWindow(unitWindow(t)),
		WithUserPosition(V3(0.5, 0.5, 1)),
		WithClip(0.1, 50),
		WithObserver(func(d Diagnostics) { got = append(got, d) }),
	)
	if err != nil {
		t.Fatal(err)
	}

	rs := &recordingState{}
	if err := cam.Begin(rs, Viewport{}); err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatal("observer called before End")
	}
	if err := cam.End(); err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 {
		t.Fatalf("observer called %d times, want 1", len(got))
	}
	d := got[0]
	if d != cam.Diagnostics() {
		t.Errorf("observer got %+v, want %+v", d, cam.Diagnostics())
	}
	if d.Eye != V3(0.5, 0.5, 1) || d.Near != 0.1 || d.Far != 50 {
		t.Errorf("diagnostics eye/near/far = %v/%v/%v", d.Eye, d.Near, d.Far)
	}
	if d.Corners[0] != V3(0, 1, 0) || d.Corners[3] != V3(1, 0, 0) {
		t.Errorf("corners = %v", d.Corners)
	}
	if !d.Center.Approx(V3(0.5, 0.5, 0), 1e-12) {
		t.Errorf("center = %v", d.Center)
	}
	if d.Frustum != cam.Frustum() {
		t.Error("diagnostics frustum differs from camera frustum")
	}
}
