// Command pcviewer-wasm exports the PointCloudViewer component to
// JavaScript.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"syscall/js"

	"github.com/seqsense/pcviewer/internal/fetch"
	"github.com/seqsense/pcviewer/viewer"
)

var errDisposed = errors.New("viewer disposed before mount")

type handle struct {
	mu       sync.Mutex
	v        *viewer.Viewer
	err      error
	disposed bool
	cancel   context.CancelFunc

	funcs []js.Func
}

func (h *handle) mounted(v *viewer.Viewer, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		if v != nil {
			v.Dispose()
		}
		return
	}
	h.v, h.err = v, err
}

func (h *handle) dispose() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return
	}
	h.disposed = true
	h.cancel()
	if h.v != nil {
		h.v.Dispose()
	}
	if h.err == nil && h.v == nil {
		h.err = errDisposed
	}
}

func (h *handle) error() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return h.err
	}
	if h.v != nil {
		return h.v.Err()
	}
	return nil
}

func (h *handle) release() {
	for _, f := range h.funcs {
		f.Release()
	}
}

func (h *handle) JS() js.Value {
	obj := js.Global().Get("Object").New()
	dispose := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		h.dispose()
		h.release()
		return nil
	})
	errFn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if err := h.error(); err != nil {
			return errorToJS(err)
		}
		return nil
	})
	h.funcs = append(h.funcs, dispose, errFn)
	obj.Set("dispose", dispose)
	obj.Set("error", errFn)
	return obj
}

func errorToJS(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

func stringSlice(v js.Value) []string {
	if v.IsUndefined() || v.IsNull() {
		return nil
	}
	out := make([]string, v.Length())
	for i := range out {
		out[i] = v.Index(i).String()
	}
	return out
}

// config builds the viewer config from the options object, fetching the
// YAML document named by configUrl first.
func config(ctx context.Context, f *fetch.Client, opts js.Value) (viewer.Config, error) {
	cfg := viewer.DefaultConfig()
	if opts.IsUndefined() || opts.IsNull() {
		return cfg, nil
	}
	if u := opts.Get("configUrl"); u.Type() == js.TypeString {
		b, err := f.Fetch(ctx, u.String())
		if err != nil {
			return cfg, err
		}
		if cfg, err = viewer.ParseConfig(b); err != nil {
			return cfg, err
		}
	}
	if v := opts.Get("imagePanelWidth"); v.Type() == js.TypeNumber {
		cfg.ImagePanelWidth = v.Int()
	}
	if v := opts.Get("defaultHeight"); v.Type() == js.TypeNumber {
		cfg.DefaultHeight = v.Int()
	}
	if v := opts.Get("autoRotate"); v.Type() == js.TypeBoolean {
		cfg.AutoRotate = v.Bool()
	}
	if v := opts.Get("pointSize"); v.Type() == js.TypeNumber {
		cfg.PointSize = float32(v.Float())
	}
	if v := opts.Get("onError"); v.Type() == js.TypeFunction {
		cfg.OnError = func(err error) {
			v.Invoke(errorToJS(err))
		}
	}
	return cfg, cfg.Validate()
}

func newViewer(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorToJS(fmt.Errorf("PointCloudViewer(container, jsonUrl, imageUrls, options): got %d arguments", len(args)))
	}
	container, jsonURL := args[0], args[1].String()
	var imageURLs []string
	var opts js.Value
	if len(args) > 2 {
		imageURLs = stringSlice(args[2])
	}
	if len(args) > 3 {
		opts = args[3]
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &handle{cancel: cancel}
	go func() {
		cfg, err := config(ctx, &fetch.Client{}, opts)
		if err != nil {
			slog.Error("PointCloudViewer: invalid options", "error", err)
			h.mounted(nil, err)
			return
		}
		v, err := viewer.Mount(container, jsonURL, imageURLs, cfg)
		if err != nil {
			slog.Error("PointCloudViewer: failed to mount", "error", err)
		}
		h.mounted(v, err)
	}()
	return h.JS()
}

func main() {
	js.Global().Set("PointCloudViewer", js.FuncOf(newViewer))
	select {}
}
