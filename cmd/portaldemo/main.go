// Command portaldemo renders a wireframe room behind a physical screen as
// seen through it from a sequence of eye positions, one PNG per position.
//
// With -watch it keeps running and re-renders the centered view whenever the
// rig file changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gogpu/offaxis"
	"github.com/gogpu/offaxis/config"
	"github.com/gogpu/offaxis/render"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	var (
		rigPath = flag.String("rig", "", "rig file (.toml or .yaml); default is a 52x29 monitor viewed from 60 units")
		frames  = flag.Int("frames", 5, "number of eye positions in the sweep")
		sweep   = flag.Float64("sweep", 1.0, "sweep extent as a fraction of the window width")
		width   = flag.Int("width", 960, "image width")
		height  = flag.Int("height", 540, "image height")
		output  = flag.String("output", ".", "output directory")
		watch   = flag.Bool("watch", false, "re-render when the rig file changes")
		verbose = flag.Bool("v", false, "log per-frame diagnostics")
	)
	flag.Parse()

	if *verbose {
		offaxis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	rig := defaultRig()
	if *rigPath != "" {
		var err error
		if rig, err = config.Load(*rigPath); err != nil {
			log.Fatalf("Failed to load rig: %v", err)
		}
	}

	d := &demo{
		canvas:  render.NewCanvas(*width, *height),
		printer: message.NewPrinter(language.English),
	}
	cam, err := rig.NewCamera(offaxis.WithObserver(d.observe))
	if err != nil {
		log.Fatalf("Failed to create camera: %v", err)
	}
	d.stack = render.NewMatrixStack(d.canvas.Viewport())
	d.viewport = rig.OffaxisViewport()

	for i, eye := range eyeSweep(rig, *frames, *sweep) {
		path := filepath.Join(*output, fmt.Sprintf("portal_%02d.png", i))
		if err := d.renderFrame(cam, eye, path); err != nil {
			log.Printf("Frame %d skipped: %v", i, err)
			continue
		}
		log.Printf("Frame %d saved to %s (eye %v)", i, path, eye)
	}

	if *watch {
		if *rigPath == "" {
			log.Fatal("-watch requires -rig")
		}
		if err := d.watch(*rigPath, cam, *output); err != nil {
			log.Fatalf("Watch failed: %v", err)
		}
	}
}

// watch re-renders the rig's own eye position on every rig change until
// interrupted.
func (d *demo) watch(path string, cam *offaxis.Camera, output string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close()

	reloads := make(chan *config.Rig)
	go func() {
		_ = w.Run(ctx, func(rig *config.Rig, err error) {
			if err != nil {
				log.Printf("Rig reload failed: %v", err)
				return
			}
			select {
			case reloads <- rig:
			case <-ctx.Done():
			}
		})
	}()

	log.Printf("Watching %s", w.Path())
	for {
		select {
		case <-ctx.Done():
			return nil
		case rig := <-reloads:
			if err := rig.Apply(cam); err != nil {
				log.Printf("Rig rejected: %v", err)
				continue
			}
			d.viewport = rig.OffaxisViewport()
			out := filepath.Join(output, "portal_live.png")
			if err := d.renderFrame(cam, rig.Eye.Vec3(), out); err != nil {
				log.Printf("Frame skipped: %v", err)
				continue
			}
			log.Printf("Frame saved to %s", out)
		}
	}
}

// defaultRig is a 52x29 monitor centered on the origin in the z=0 plane,
// viewed from 60 units in front of it.
func defaultRig() *config.Rig {
	return &config.Rig{
		Window: config.Window{
			TopLeft:     config.Point{-26, 14.5, 0},
			TopRight:    config.Point{26, 14.5, 0},
			BottomLeft:  config.Point{-26, -14.5, 0},
			BottomRight: config.Point{26, -14.5, 0},
		},
		Eye:  config.Point{0, 0, 60},
		Near: 1,
		Far:  500,
	}
}

// eyeSweep returns n eye positions moving along the window's right axis,
// centered on the rig's eye.
func eyeSweep(rig *config.Rig, n int, extent float64) []offaxis.Vec3 {
	win, err := rig.ScreenWindow()
	if err != nil || n <= 1 {
		return []offaxis.Vec3{rig.Eye.Vec3()}
	}
	eyes := make([]offaxis.Vec3, n)
	span := win.Width() * extent
	for i := range eyes {
		t := float64(i)/float64(n-1) - 0.5
		eyes[i] = rig.Eye.Vec3().Add(win.Right().Mul(t * span))
	}
	return eyes
}

var (
	background = color.RGBA{R: 16, G: 18, B: 28, A: 255}
	textColor  = color.RGBA{R: 230, G: 230, B: 200, A: 255}
)
