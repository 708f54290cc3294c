// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads the physical calibration of a user-perspective setup
// ("rig"): the measured corners of the display, the initial eye position,
// clip distances, the look-at up vector and the viewport.
//
// Rigs are written in TOML or YAML; the format follows the file extension.
//
//	# rig.toml, centimeters in tracker space
//	near = 1.0
//	far  = 500.0
//	eye  = [0.0, 0.0, 60.0]
//
//	[window]
//	top_left     = [-26.0, 14.5, 0.0]
//	top_right    = [ 26.0, 14.5, 0.0]
//	bottom_left  = [-26.0, -14.5, 0.0]
//	bottom_right = [ 26.0, -14.5, 0.0]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/offaxis"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for files whose extension is neither TOML nor
// YAML.
var ErrUnknownFormat = errors.New("config: unknown rig format")

// Format is a rig file encoding.
type Format int

const (
	// FormatTOML selects TOML decoding.
	FormatTOML Format = iota

	// FormatYAML selects YAML decoding.
	FormatYAML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Point is a world-space point written as a three-element array.
type Point [3]float64

// Vec3 converts the point to an offaxis.Vec3.
func (p Point) Vec3() offaxis.Vec3 {
	return offaxis.V3(p[0], p[1], p[2])
}

// Window holds the measured screen corners.
type Window struct {
	TopLeft     Point `toml:"top_left" yaml:"top_left"`
	TopRight    Point `toml:"top_right" yaml:"top_right"`
	BottomLeft  Point `toml:"bottom_left" yaml:"bottom_left"`
	BottomRight Point `toml:"bottom_right" yaml:"bottom_right"`
}

// Viewport is the window-space rectangle passed to Begin.
type Viewport struct {
	X      float64 `toml:"x" yaml:"x"`
	Y      float64 `toml:"y" yaml:"y"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Rig is the calibration of one display and viewer.
// Zero Near and Far mean the offaxis defaults; a nil Up means WorldUp.
type Rig struct {
	Window   Window    `toml:"window" yaml:"window"`
	Eye      Point     `toml:"eye" yaml:"eye"`
	Near     float64   `toml:"near" yaml:"near"`
	Far      float64   `toml:"far" yaml:"far"`
	Up       *Point    `toml:"up,omitempty" yaml:"up,omitempty"`
	Viewport *Viewport `toml:"viewport,omitempty" yaml:"viewport,omitempty"`
}

// Load reads and decodes a rig file.
func Load(path string) (*Rig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	rig, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return rig, nil
}

// Decode decodes a rig. Unknown fields are rejected so that misspelled
// corner names do not silently fall back to zero.
func Decode(r io.Reader, format Format) (*Rig, error) {
	var rig Rig
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rig); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&rig); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return &rig, nil
}

// Encode writes the rig in the given format.
func (r *Rig) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// ScreenWindow builds the offaxis screen window from the measured corners.
func (r *Rig) ScreenWindow() (offaxis.ScreenWindow, error) {
	w := r.Window
	return offaxis.NewScreenWindow(
		w.TopLeft.Vec3(), w.TopRight.Vec3(),
		w.BottomLeft.Vec3(), w.BottomRight.Vec3(),
	)
}

// Clip returns the clip distances with defaults applied.
func (r *Rig) Clip() (near, far float64) {
	near, far = r.Near, r.Far
	if near == 0 {
		near = offaxis.DefaultNearClip
	}
	if far == 0 {
		far = offaxis.DefaultFarClip
	}
	return near, far
}

// OffaxisViewport returns the configured viewport, or an empty one meaning
// "keep the render state's viewport".
func (r *Rig) OffaxisViewport() offaxis.Viewport {
	if r.Viewport == nil {
		return offaxis.Viewport{}
	}
	v := r.Viewport
	return offaxis.Rect(v.X, v.Y, v.Width, v.Height)
}

// Options returns camera options for the rig.
func (r *Rig) Options() ([]offaxis.CameraOption, error) {
	win, err := r.ScreenWindow()
	if err != nil {
		return nil, err
	}
	near, far := r.Clip()
	opts := []offaxis.CameraOption{
		offaxis.WithViewPortalWindow(win),
		offaxis.WithUserPosition(r.Eye.Vec3()),
		offaxis.WithClip(near, far),
	}
	if r.Up != nil {
		opts = append(opts, offaxis.WithUp(r.Up.Vec3()))
	}
	return opts, nil
}

// NewCamera creates a camera for the rig. Extra options are applied after
// the rig's own.
func (r *Rig) NewCamera(extra ...offaxis.CameraOption) (*offaxis.Camera, error) {
	opts, err := r.Options()
	if err != nil {
		return nil, err
	}
	return offaxis.NewCamera(append(opts, extra...)...)
}

// Apply updates an existing camera with the rig's window, eye and clip
// distances. The window and eye are replaced together; on error the camera
// keeps its previous geometry.
func (r *Rig) Apply(cam *offaxis.Camera) error {
	win, err := r.ScreenWindow()
	if err != nil {
		return err
	}
	near, far := r.Clip()
	if err := cam.SetClip(near, far); err != nil {
		return err
	}
	return cam.SetPortal(win, r.Eye.Vec3())
}
