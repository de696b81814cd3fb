package viewer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/pcviewer/cloud"
	"github.com/seqsense/pcviewer/internal/fetch"
	"github.com/seqsense/pcviewer/loader"
	"github.com/seqsense/pcviewer/render"
)

const frameDistance = 2.5

type State int

const (
	StateLoading State = iota
	StateLoaded
	StateFailed
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	case StateDisposed:
		return "disposed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// LoadError describes a failure to load the point cloud document.
// Status is the HTTP status when the server answered with an error.
type LoadError struct {
	URL    string
	Status int
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.URL, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(url string, err error) *LoadError {
	le := &LoadError{URL: url, Err: err}
	var se *fetch.StatusError
	if errors.As(err, &se) {
		le.Status = se.Status
	}
	return le
}

// fetchDocument fetches and parses the document. Errors are *LoadError.
func fetchDocument(ctx context.Context, f loader.Fetcher, url string) (*cloud.Document, error) {
	b, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, newLoadError(url, err)
	}
	doc, err := cloud.ParseDocument(bytes.NewReader(b))
	if err != nil {
		return nil, newLoadError(url, err)
	}
	return doc, nil
}

// relayout coalesces resize requests of the window and the container into
// at most one pending layout pass.
type relayout chan struct{}

func newRelayout() relayout {
	return make(relayout, 1)
}

func (r relayout) request() {
	select {
	case r <- struct{}{}:
	default:
	}
}

// stage is the scene, camera and controls of one viewer.
type stage struct {
	scene    *render.Scene
	camera   *render.Camera
	controls *render.OrbitControls
	points   *render.Points
}

func newStage(cfg Config) (*stage, error) {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	scene := render.NewScene()
	scene.Background = bg

	camera := render.NewPerspectiveCamera(75, 1, 0.1, 1000)
	camera.Position = mat.Vec3{0, 0, 3}
	camera.Up = mat.Vec3{0, -1, 0}
	camera.LookAt(mat.Vec3{})

	controls := render.NewOrbitControls(camera)
	controls.EnableDamping = true
	controls.DampingFactor = cfg.DampingFactor
	controls.AutoRotate = cfg.AutoRotate
	controls.AutoRotateSpeed = cfg.AutoRotateSpeed

	return &stage{
		scene:    scene,
		camera:   camera,
		controls: controls,
	}, nil
}

// setDocument replaces the scene content with the document's points and
// camera frustums and frames the camera on the points.
func (s *stage) setDocument(doc *cloud.Document, pointSize float32) {
	b := cloud.Build(doc)

	s.scene.Clear()
	s.points = render.NewPoints(b.Positions, b.Colors, render.PointsMaterial{
		Size:    pointSize,
		Opacity: 1,
		Round:   true,
		Scale:   render.ViewerPointScale,
	})
	s.scene.Add(s.points)
	for _, w := range cloud.Frustums(doc) {
		s.scene.Add(&render.LineSegments{Positions: w.Positions, Color: w.Color})
	}
	s.frame(cloud.BoundingSphere(b.Positions))
}

// frame targets the sphere center and backs the camera away along -z.
func (s *stage) frame(sp cloud.Sphere) {
	r := sp.Radius
	if r <= 0 {
		r = 1
	}
	s.controls.Target = sp.Center
	s.camera.Position = sp.Center.Sub(mat.Vec3{0, 0, frameDistance * r})
	s.camera.LookAt(sp.Center)
	s.controls.Update()
}

// core is the platform independent part of a Viewer.
type core struct {
	cfg   Config
	stage *stage

	mu    sync.Mutex
	state State
	err   error
}

func newCore(cfg Config) (*core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	st, err := newStage(cfg)
	if err != nil {
		return nil, err
	}
	return &core{cfg: cfg, stage: st}, nil
}

// load fetches the document and applies it to the stage unless the viewer
// was disposed meanwhile. An empty url leaves the scene empty.
func (c *core) load(ctx context.Context, f loader.Fetcher, url string) {
	if url == "" {
		c.finish(nil, nil)
		return
	}
	if c.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.FetchTimeout)
		defer cancel()
	}
	doc, err := fetchDocument(ctx, f, url)
	c.finish(doc, err)
}

func (c *core) finish(doc *cloud.Document, err error) {
	c.mu.Lock()
	if c.state != StateLoading {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.state = StateFailed
		c.err = err
	} else {
		if doc != nil {
			c.stage.setDocument(doc, c.cfg.PointSize)
		}
		c.state = StateLoaded
	}
	onError := c.cfg.OnError
	c.mu.Unlock()

	if err != nil {
		slog.Error("PointCloudViewer: failed to load JSON", "error", err)
	} else if doc != nil {
		slog.Debug("PointCloudViewer: document loaded",
			"points", len(doc.Points), "poses", len(doc.CameraPoses))
	}
	if err != nil && onError != nil {
		onError(err)
	}
}

// dispose moves to the terminal state. It returns false if already disposed.
func (c *core) dispose() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateDisposed {
		return false
	}
	c.state = StateDisposed
	return true
}

func (c *core) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the load error, if the load failed.
func (c *core) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// withStage runs fn with exclusive access to the stage.
func (c *core) withStage(fn func(*stage)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.stage)
}
