package viewer

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"syscall/js"

	"github.com/seqsense/pcviewer/internal/fetch"
	"github.com/seqsense/pcviewer/render"
)

// Viewer is a point cloud viewer mounted in a DOM container.
type Viewer struct {
	*core

	container       js.Value
	style           js.Value
	imagePanel      js.Value
	canvasWrapper   js.Value
	canvasContainer js.Value
	images          []js.Value

	renderer  *render.Renderer
	listeners render.Listeners

	cancel   context.CancelFunc
	done     chan struct{}
	chResize relayout
	once     sync.Once
}

// Mount builds the viewer inside container and starts loading the
// document at jsonURL in the background.
func Mount(container js.Value, jsonURL string, imageURLs []string, cfg Config) (*Viewer, error) {
	c, err := newCore(cfg)
	if err != nil {
		return nil, err
	}
	doc := js.Global().Get("document")

	style := container.Get("style")
	if style.Get("height").String() == "" && container.Get("clientHeight").Int() == 0 {
		style.Set("height", strconv.Itoa(cfg.DefaultHeight)+"px")
	}

	v := &Viewer{
		core:      c,
		container: container,
		done:      make(chan struct{}),
		chResize:  newRelayout(),
	}

	v.style = doc.Call("createElement", "style")
	v.style.Set("textContent", styleSheet(cfg.ImagePanelWidth))
	doc.Get("head").Call("appendChild", v.style)

	container.Get("classList").Call("add", classContainer)
	v.imagePanel = newDiv(doc, classImagePanel)
	v.canvasWrapper = newDiv(doc, classCanvasWrapper)
	v.canvasContainer = newDiv(doc, classCanvasContainer)
	v.canvasWrapper.Call("appendChild", v.canvasContainer)
	container.Call("appendChild", v.imagePanel)
	container.Call("appendChild", v.canvasWrapper)

	canvas := doc.Call("createElement", "canvas")
	v.canvasContainer.Call("appendChild", canvas)
	v.renderer, err = render.NewRenderer(canvas)
	if err != nil {
		v.removeDOM()
		return nil, err
	}

	for i, u := range imageURLs {
		img := doc.Call("createElement", "img")
		img.Set("src", u)
		img.Set("alt", "")
		img.Set("loading", "lazy")
		img.Get("style").Set("border", ThumbnailBorder(i, false))
		v.imagePanel.Call("appendChild", img)
		v.images = append(v.images, img)
	}

	render.BindControls(&v.listeners, canvas, c.stage.controls)
	v.listeners.Add(js.Global(), "resize", true, func(js.Value) {
		v.requestResize()
	})
	v.listeners.ObserveResize(container, v.requestResize)

	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel

	v.resize()
	go func() {
		c.load(ctx, &fetch.Client{}, jsonURL)
		v.requestResize()
	}()
	go v.run(ctx)

	return v, nil
}

func newDiv(doc js.Value, class string) js.Value {
	d := doc.Call("createElement", "div")
	d.Set("className", class)
	return d
}

func (v *Viewer) requestResize() {
	v.chResize.request()
}

func (v *Viewer) run(ctx context.Context) {
	defer close(v.done)
	defer v.renderer.Dispose()

	frames := render.AnimationFrames(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-v.chResize:
			v.resize()
		case <-frames:
			v.withStage(func(s *stage) {
				s.controls.Update()
				v.renderer.Render(s.scene, s.camera)
			})
		}
	}
}

func (v *Viewer) resize() {
	rect := v.container.Call("getBoundingClientRect")
	w, h := rect.Get("width").Float(), rect.Get("height").Float()
	if w <= 0 {
		w = v.container.Get("clientWidth").Float()
	}
	if h <= 0 {
		h = v.container.Get("clientHeight").Float()
	}
	w, h = Measure(w, h, v.cfg.ImagePanelWidth, v.cfg.DefaultHeight)
	size := SquareSize(w, h, v.cfg.ImagePanelWidth)

	cs := v.canvasContainer.Get("style")
	cs.Set("width", strconv.Itoa(size)+"px")
	cs.Set("height", strconv.Itoa(size)+"px")
	v.renderer.SetSize(size, size)

	panelHeight := v.imagePanel.Get("clientHeight").Float()
	if panelHeight <= 0 {
		panelHeight = v.container.Get("clientHeight").Float()
	}
	maxH := ThumbnailMaxHeight(panelHeight, len(v.images))
	for i, img := range v.images {
		s := img.Get("style")
		s.Set("maxHeight", strconv.Itoa(maxH)+"px")
		s.Set("height", "auto")
		s.Set("border", ThumbnailBorder(i, true))
	}

	v.withStage(func(s *stage) {
		s.camera.Aspect = 1
		s.controls.SetViewportHeight(float32(size))
		v.renderer.Render(s.scene, s.camera)
	})
	slog.Debug("PointCloudViewer: resized", "size", size, "thumbnail_max_height", maxH)
}

// Dispose stops rendering, cancels a pending load and removes the viewer
// from its container. It is safe to call more than once.
func (v *Viewer) Dispose() {
	v.once.Do(func() {
		v.dispose()
		v.cancel()
		v.listeners.RemoveAll()
		go func() {
			<-v.done
			v.removeDOM()
		}()
	})
}

func (v *Viewer) removeDOM() {
	v.container.Call("removeChild", v.imagePanel)
	v.container.Call("removeChild", v.canvasWrapper)
	v.container.Get("classList").Call("remove", classContainer)
	v.style.Call("remove")
}
