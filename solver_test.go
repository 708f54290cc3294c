package offaxis

import (
	"errors"
	"math"
	"testing"
)

func TestSolveFrustumSymmetricCentering(t *testing.T) {
	w := unitWindow(t)
	f, err := SolveFrustum(w, V3(0.5, 0.5, 1), 0.1)
	if err != nil {
		t.Fatalf("SolveFrustum: %v", err)
	}

	const eps = 1e-6
	checks := []struct {
		name      string
		got, want float64
	}{
		{"D", f.D, 1},
		{"L", f.L, 0.5},
		{"R", f.R, 0.5},
		{"B", f.B, 0.5},
		{"T", f.T, 0.5},
		{"left", f.Left, -0.05},
		{"right", f.Right, 0.05},
		{"bottom", f.Bottom, -0.05},
		{"top", f.Top, 0.05},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > eps {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if -f.Left != f.Right || -f.Bottom != f.Top {
		t.Errorf("bounds not exactly symmetric: %+v", f)
	}
	if !f.Symmetric(eps) {
		t.Error("Symmetric() = false, want true")
	}
}

func TestSolveFrustumLinearSensitivity(t *testing.T) {
	w := unitWindow(t)
	const near = 0.1
	base := V3(0.5, 0.5, 2)
	f0, err := SolveFrustum(w, base, near)
	if err != nil {
		t.Fatalf("SolveFrustum: %v", err)
	}

	prevLeft, prevRight := math.Inf(1), math.Inf(1)
	for _, dx := range []float64{-0.3, -0.1, 0.2, 0.45} {
		f, err := SolveFrustum(w, base.Add(w.Right().Mul(dx)), near)
		if err != nil {
			t.Fatalf("SolveFrustum(dx=%v): %v", dx, err)
		}
		shift := dx * near / f0.D
		if got := f0.Left - f.Left; math.Abs(got-shift) > 1e-12 {
			t.Errorf("dx=%v: left shifted by %v, want %v", dx, got, shift)
		}
		if got := f0.Right - f.Right; math.Abs(got-shift) > 1e-12 {
			t.Errorf("dx=%v: right shifted by %v, want %v", dx, got, shift)
		}
		if f.D != f0.D {
			t.Errorf("dx=%v: D = %v, want %v", dx, f.D, f0.D)
		}
		// Moving right moves both bounds left.
		if f.Left >= prevLeft || f.Right >= prevRight {
			t.Errorf("dx=%v: bounds not monotonic (%v, %v) after (%v, %v)",
				dx, f.Left, f.Right, prevLeft, prevRight)
		}
		prevLeft, prevRight = f.Left, f.Right
	}
}

func TestSolveFrustumNearProjections(t *testing.T) {
	w := unitWindow(t)
	for _, eye := range []Vec3{V3(0.5, 0.5, 1), V3(-0.4, 1.3, 0.6), V3(2, -1, 5)} {
		f, err := SolveFrustum(w, eye, 0.25)
		if err != nil {
			t.Fatalf("SolveFrustum(%v): %v", eye, err)
		}
		if want := V3(f.Left, f.Top, -0.25); !f.TopLeftNear.Approx(want, 1e-12) {
			t.Errorf("eye %v: TopLeftNear = %v, want %v", eye, f.TopLeftNear, want)
		}
		if want := V3(f.Right, f.Bottom, -0.25); !f.BottomRightNear.Approx(want, 1e-12) {
			t.Errorf("eye %v: BottomRightNear = %v, want %v", eye, f.BottomRightNear, want)
		}
		if math.Abs(f.TopLeftCam.Z+f.D) > 1e-12 {
			t.Errorf("eye %v: TopLeftCam.Z = %v, want %v", eye, f.TopLeftCam.Z, -f.D)
		}
	}
}

func TestSolveFrustumDegenerate(t *testing.T) {
	w := unitWindow(t)
	tests := []struct {
		name string
		eye  Vec3
		near float64
		want error
	}{
		{"eye on screen plane", V3(0.5, 0.5, 0), 0.1, ErrDegenerateGeometry},
		{"eye within epsilon of plane", V3(0.2, 0.9, 1e-12), 0.1, ErrDegenerateGeometry},
		{"eye on plane outside window", V3(3, -2, 0), 0.1, ErrDegenerateGeometry},
		{"eye behind screen", V3(0.5, 0.5, -1), 0.1, ErrDegenerateGeometry},
		{"NaN eye", V3(math.NaN(), 0, 1), 0.1, ErrDegenerateGeometry},
		{"zero near", V3(0.5, 0.5, 1), 0, ErrInvalidClipRange},
		{"negative near", V3(0.5, 0.5, 1), -1, ErrInvalidClipRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SolveFrustum(w, tt.eye, tt.near)
			if !errors.Is(err, tt.want) {
				t.Errorf("SolveFrustum() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSolveFrustumDeterministic(t *testing.T) {
	w := unitWindow(t)
	eye := V3(0.123, 0.456, 0.789)
	a, err := SolveFrustum(w, eye, 0.37)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := SolveFrustum(w, eye, 0.37)
	if a != b {
		t.Errorf("SolveFrustum not repeatable: %+v vs %+v", a, b)
	}
}

func TestNearPlaneScale(t *testing.T) {
	tests := []struct {
		z       float64
		want    float64
		wantErr bool
	}{
		{-2, 0.5, false},
		{4, 0.25, false},
		{0, 0, true},
		{1e-12, 0, true},
	}
	for _, tt := range tests {
		got, err := nearPlaneScale(tt.z)
		if (err != nil) != tt.wantErr {
			t.Errorf("nearPlaneScale(%v) error = %v, wantErr %v", tt.z, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("nearPlaneScale(%v) = %v, want %v", tt.z, got, tt.want)
		}
	}
}
