// Command pcviewer-app-wasm runs the standalone viewer page. The optional
// global pcviewerAppConfig names a YAML config to fetch before binding.
package main

import (
	"context"
	"log/slog"
	"syscall/js"

	"github.com/seqsense/pcviewer/app"
	"github.com/seqsense/pcviewer/internal/fetch"
)

func loadConfig(ctx context.Context, f *fetch.Client) (app.Config, error) {
	u := js.Global().Get("pcviewerAppConfig")
	if u.Type() != js.TypeString {
		return app.DefaultConfig(), nil
	}
	b, err := f.Fetch(ctx, u.String())
	if err != nil {
		return app.Config{}, err
	}
	return app.ParseConfig(b)
}

func main() {
	ctx := context.Background()
	f := &fetch.Client{}

	cfg, err := loadConfig(ctx, f)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return
	}
	a, err := app.New(cfg, f)
	if err != nil {
		slog.Error("invalid config", "error", err)
		return
	}
	p, err := app.Bind(ctx, js.Global().Get("document"), a)
	if err != nil {
		slog.Error("failed to start", "error", err)
		return
	}
	p.Run(ctx)
}
