package offaxis

import "log/slog"

// Diagnostics is a snapshot of the inputs and results of a Camera, emitted at
// the end of each session for tracing. It is observational only.
type Diagnostics struct {
	Eye     Vec3
	Corners [4]Vec3 // top-left, top-right, bottom-left, bottom-right
	Center  Vec3
	Near    float64
	Far     float64
	Frustum Frustum
}

// Diagnostics returns a snapshot of the camera's current state.
func (c *Camera) Diagnostics() Diagnostics {
	return Diagnostics{
		Eye:     c.eye,
		Corners: c.window.Corners(),
		Center:  c.window.Center(),
		Near:    c.near,
		Far:     c.far,
		Frustum: c.frustum,
	}
}

// LogValue implements slog.LogValuer.
func (d Diagnostics) LogValue() slog.Value {
	f := d.Frustum
	return slog.GroupValue(
		slog.Any("head", d.Eye),
		slog.Any("tl", d.Corners[0]),
		slog.Any("tr", d.Corners[1]),
		slog.Any("bl", d.Corners[2]),
		slog.Any("br", d.Corners[3]),
		slog.Any("mid", d.Center),
		slog.Any("camTL", f.TopLeftCam),
		slog.Any("camBR", f.BottomRightCam),
		slog.Any("nearTL", f.TopLeftNear),
		slog.Any("nearBR", f.BottomRightNear),
		slog.Float64("d", f.D),
		slog.Float64("left", f.Left),
		slog.Float64("right", f.Right),
		slog.Float64("bottom", f.Bottom),
		slog.Float64("top", f.Top),
		slog.Float64("near", d.Near),
		slog.Float64("far", d.Far),
	)
}
