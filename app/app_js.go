package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/seqsense/pcviewer/blob"
	"github.com/seqsense/pcviewer/render"
)

// Page binds an App to the DOM controls of the page.
type Page struct {
	app *App
	ctx context.Context

	viewer        js.Value
	exampleSelect js.Value
	canvas        js.Value

	renderer  *render.Renderer
	listeners render.Listeners
	console   *console
	consoleFn js.Func
}

// Bind looks up the configured elements, creates the canvas and installs
// the event handlers. Loads started by the handlers are bound to ctx.
func Bind(ctx context.Context, doc js.Value, a *App) (*Page, error) {
	elems := make(map[string]js.Value)
	for _, e := range a.cfg.Elements.IDs() {
		el := doc.Call("getElementById", e[1])
		if el.IsNull() || el.IsUndefined() {
			return nil, fmt.Errorf("element %q (%s) not found", e[1], e[0])
		}
		elems[e[0]] = el
	}

	p := &Page{
		app:           a,
		ctx:           ctx,
		viewer:        elems["viewer"],
		exampleSelect: elems["example_select"],
		console:       &console{app: a},
	}

	p.canvas = doc.Call("createElement", "canvas")
	p.viewer.Call("appendChild", p.canvas)
	var err error
	p.renderer, err = render.NewRenderer(p.canvas)
	if err != nil {
		p.viewer.Call("removeChild", p.canvas)
		return nil, err
	}

	if len(a.cfg.Examples) > 0 {
		p.exampleSelect.Set("innerHTML", "")
		for _, ex := range a.cfg.Examples {
			opt := doc.Call("createElement", "option")
			opt.Set("value", ex.URL)
			opt.Set("textContent", ex.Name)
			p.exampleSelect.Call("appendChild", opt)
		}
	}

	p.listeners.Add(elems["load_example"], "click", true, func(js.Value) {
		url := p.exampleSelect.Get("value").String()
		go p.load(url, "")
	})
	p.listeners.Add(elems["file_input"], "change", true, func(e js.Value) {
		files := e.Get("target").Get("files")
		if files.Length() == 0 {
			return
		}
		b, err := blob.JS(files.Index(0))
		if err != nil {
			slog.Error("invalid file", "error", err)
			return
		}
		go func() {
			url, err := b.DataURL()
			if err != nil {
				slog.Error("failed to read file", "name", b.Name(), "error", err)
				return
			}
			p.load(url, b.Name())
		}()
	})
	p.listeners.Add(elems["point_size_slider"], "input", true, func(e js.Value) {
		a.SetPointSize(float32(e.Get("target").Get("valueAsNumber").Float()))
	})
	p.listeners.Add(elems["opacity_slider"], "input", true, func(e js.Value) {
		a.SetOpacity(float32(e.Get("target").Get("valueAsNumber").Float()))
	})
	p.listeners.Add(elems["bg_color"], "input", true, func(e js.Value) {
		if err := a.SetBackground(e.Get("target").Get("value").String()); err != nil {
			slog.Error("failed to set background", "error", err)
		}
	})
	p.listeners.Add(js.Global(), "resize", true, func(js.Value) {
		p.resize()
	})
	render.BindControls(&p.listeners, p.canvas, a.Controls())

	p.consoleFn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) != 1 {
			return js.Global().Get("Promise").Call("reject", errorToJS(errArgumentNumber))
		}
		line := args[0].String()
		return newPromise(func() (interface{}, error) {
			return p.console.Run(p.ctx, line)
		})
	})
	js.Global().Set("pcviewerConsole", p.consoleFn)

	p.resize()
	return p, nil
}

func (p *Page) load(url, name string) {
	if name == "" {
		name = url
	}
	err := p.app.Load(p.ctx, url, name)
	switch {
	case err == nil:
		slog.Info("loaded point cloud", "name", shortName(name))
	case errors.Is(err, ErrSuperseded), errors.Is(err, context.Canceled):
	default:
		slog.Error("failed to load point cloud", "name", shortName(name), "error", err)
	}
}

// shortName keeps data: URLs out of the log.
func shortName(name string) string {
	if len(name) > 64 {
		return name[:61] + "..."
	}
	return name
}

func (p *Page) resize() {
	win := js.Global()
	w, h := p.app.Resize(win.Get("innerWidth").Int(), win.Get("innerHeight").Int())
	p.renderer.SetSize(w, h)
}

// Run renders a frame per animation frame until ctx is canceled.
func (p *Page) Run(ctx context.Context) {
	defer p.close()
	frames := render.AnimationFrames(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-frames:
			p.app.frame(p.renderer.Render)
		}
	}
}

func (p *Page) close() {
	p.listeners.RemoveAll()
	js.Global().Delete("pcviewerConsole")
	p.consoleFn.Release()
	p.renderer.Dispose()
	p.viewer.Call("removeChild", p.canvas)
}

func newPromise(fn func() (interface{}, error)) js.Value {
	var handler js.Func
	handler = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		resolve, reject := args[0], args[1]
		go func() {
			defer handler.Release()
			res, err := fn()
			if err != nil {
				reject.Invoke(errorToJS(err))
				return
			}
			resolve.Invoke(res)
		}()
		return nil
	})
	return js.Global().Get("Promise").New(handler)
}

func errorToJS(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}
