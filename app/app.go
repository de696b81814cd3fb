// Package app is the standalone point cloud viewer page: a canvas next to
// a side panel with example and file loaders and material controls.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/pcviewer/loader"
	"github.com/seqsense/pcviewer/render"
)

// ErrSuperseded is returned by Load when a newer load was requested
// before this one completed. Its result is discarded.
var ErrSuperseded = errors.New("load superseded by a newer request")

// App is the state of the standalone viewer.
type App struct {
	cfg     Config
	fetcher loader.Fetcher

	mu       sync.Mutex
	scene    *render.Scene
	camera   *render.Camera
	controls *render.OrbitControls
	mesh     *render.Points
	token    uint64
}

func New(cfg Config, f loader.Fetcher) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, _ := colorful.Hex(cfg.Background)

	scene := render.NewScene()
	scene.Background = bg

	camera := render.NewPerspectiveCamera(75, 1, 0.01, 1000)
	camera.Position = mat.Vec3{1, 1, 1}
	camera.LookAt(mat.Vec3{})

	controls := render.NewOrbitControls(camera)
	controls.Update()

	return &App{
		cfg:      cfg,
		fetcher:  f,
		scene:    scene,
		camera:   camera,
		controls: controls,
	}, nil
}

// begin starts a load request and returns its token.
func (a *App) begin() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token++
	return a.token
}

// complete applies the cloud if token is still the latest request.
func (a *App) complete(token uint64, c *loader.Cloud) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if token != a.token {
		return false
	}
	if a.mesh != nil {
		a.scene.Remove(a.mesh)
	}
	a.mesh = render.NewPoints(c.Positions, c.Colors, render.PointsMaterial{
		Size:    c.Format.DefaultPointSize(),
		Opacity: 1,
	})
	a.scene.Add(a.mesh)
	return true
}

// Load fetches and decodes the cloud at url and replaces the current mesh
// with it. name gives the file name used for format detection and may be
// empty. Only the most recently started load is applied.
func (a *App) Load(ctx context.Context, url, name string) error {
	token := a.begin()
	c, err := loader.Load(ctx, a.fetcher, url, name)
	if err != nil {
		return err
	}
	if !a.complete(token, c) {
		slog.Debug("discarding stale load", "name", name, "token", token)
		return ErrSuperseded
	}
	return nil
}

// SetPointSize sets the point size from a slider value in hundredths.
func (a *App) SetPointSize(slider float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mesh == nil {
		return
	}
	a.mesh.Material.Size = slider / 100
}

// SetOpacity sets the mesh opacity and turns transparency on.
func (a *App) SetOpacity(v float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mesh == nil {
		return
	}
	a.mesh.Material.Opacity = v
	a.mesh.Material.Transparent = true
}

// SetBackground parses a #rrggbb color and applies it.
func (a *App) SetBackground(hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("invalid background %q: %w", hex, err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scene.Background = c
	return nil
}

// Resize fits the canvas into the window beside the side panel and
// returns the canvas size.
func (a *App) Resize(windowWidth, windowHeight int) (int, int) {
	w := windowWidth - a.cfg.SidePanelWidth
	if w < 1 {
		w = 1
	}
	h := windowHeight
	if h < 1 {
		h = 1
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera.Aspect = float32(w) / float32(h)
	a.controls.SetViewportHeight(float32(h))
	return w, h
}

// Mesh returns the current point mesh, or nil before the first load.
func (a *App) Mesh() *render.Points {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mesh
}

func (a *App) Controls() *render.OrbitControls {
	return a.controls
}

// frame updates the controls and runs draw with the scene locked.
func (a *App) frame(draw func(*render.Scene, *render.Camera)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.controls.Update()
	draw(a.scene, a.camera)
}
