package offaxis

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

// unitWindow is the 1x1 window in the z=0 plane with its bottom-left corner
// at the origin.
func unitWindow(t *testing.T) ScreenWindow {
	t.Helper()
	w, err := NewScreenWindow(V3(0, 1, 0), V3(1, 1, 0), V3(0, 0, 0), V3(1, 0, 0))
	if err != nil {
		t.Fatalf("NewScreenWindow: %v", err)
	}
	return w
}

func TestNewScreenWindowBasis(t *testing.T) {
	w := unitWindow(t)
	xs, ys, zs := w.Basis()

	if !xs.Approx(V3(-1, 0, 0), 1e-12) {
		t.Errorf("Xs = %v, want (-1, 0, 0)", xs)
	}
	if !ys.Approx(V3(0, -1, 0), 1e-12) {
		t.Errorf("Ys = %v, want (0, -1, 0)", ys)
	}
	if !zs.Approx(V3(0, 0, 1), 1e-12) {
		t.Errorf("Zs = %v, want (0, 0, 1)", zs)
	}
	if w.Width() != 1 || w.Height() != 1 {
		t.Errorf("size = %vx%v, want 1x1", w.Width(), w.Height())
	}
	if !w.Right().Approx(V3(1, 0, 0), 1e-12) || !w.Up().Approx(V3(0, 1, 0), 1e-12) {
		t.Errorf("Right/Up = %v/%v", w.Right(), w.Up())
	}
	if !w.Center().Approx(V3(0.5, 0.5, 0), 1e-12) {
		t.Errorf("Center = %v, want (0.5, 0.5, 0)", w.Center())
	}
}

func TestNewScreenWindowSize(t *testing.T) {
	// 52x29 monitor, tilted back 30 degrees about its bottom edge.
	a := math.Pi / 6
	up := V3(0, math.Cos(a), -math.Sin(a))
	bl := V3(-26, -14.5, 0)
	br := V3(26, -14.5, 0)
	tl := bl.Add(up.Mul(29))
	tr := br.Add(up.Mul(29))

	w, err := NewScreenWindow(tl, tr, bl, br)
	if err != nil {
		t.Fatalf("NewScreenWindow: %v", err)
	}
	if math.Abs(w.Width()-52) > 1e-9 || math.Abs(w.Height()-29) > 1e-9 {
		t.Errorf("size = %vx%v, want 52x29", w.Width(), w.Height())
	}
	want := V3(1, 0, 0).Cross(up)
	if !w.Normal().Approx(want, 1e-12) {
		t.Errorf("Normal = %v, want %v", w.Normal(), want)
	}
}

func TestNewScreenWindowDegenerate(t *testing.T) {
	tests := []struct {
		name           string
		tl, tr, bl, br Vec3
	}{
		{"zero height", V3(0, 0, 0), V3(1, 0, 0), V3(0, 0, 0), V3(1, 0, 0)},
		{"zero width", V3(0, 1, 0), V3(0, 1, 0), V3(0, 0, 0), V3(0, 0, 0)},
		{"all corners equal", V3(2, 2, 2), V3(2, 2, 2), V3(2, 2, 2), V3(2, 2, 2)},
		{"collinear edges", V3(-1, 0, 0), V3(0, 0, 0), V3(0, 0, 0), V3(1, 0, 0)},
		{"NaN corner", V3(0, 1, 0), V3(1, 1, 0), V3(math.NaN(), 0, 0), V3(1, 0, 0)},
		{"infinite corner", V3(0, 1, 0), V3(math.Inf(1), 1, 0), V3(0, 0, 0), V3(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScreenWindow(tt.tl, tt.tr, tt.bl, tt.br)
			if !errors.Is(err, ErrDegenerateGeometry) {
				t.Errorf("NewScreenWindow() error = %v, want ErrDegenerateGeometry", err)
			}
		})
	}
}

func TestNewScreenWindowWarnsOnSkew(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	// Top-right pulled off the plane: accepted, but reported.
	_, err := NewScreenWindow(V3(0, 1, 0), V3(1, 1, 0.2), V3(0, 0, 0), V3(1, 0, 0))
	if err != nil {
		t.Fatalf("NewScreenWindow: %v", err)
	}
	if !strings.Contains(buf.String(), "not a parallelogram") {
		t.Errorf("expected parallelogram warning, got: %s", buf.String())
	}

	buf.Reset()
	_ = unitWindow(t)
	if buf.Len() != 0 {
		t.Errorf("rectangular window logged: %s", buf.String())
	}
}
