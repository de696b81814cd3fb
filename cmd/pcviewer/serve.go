package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var serveCfg struct {
	addr string
	dir  string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve static files without caching",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, serveCfg.addr, serveCfg.dir)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveCfg.addr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveCfg.dir, "dir", ".", "directory to serve")
}

type noCache struct {
	http.Handler
}

func (h *noCache) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	slog.Debug("request", "method", r.Method, "path", r.URL.Path)
	h.Handler.ServeHTTP(w, r)
}

func newFileServer(dir string) http.Handler {
	return &noCache{Handler: http.FileServer(http.Dir(dir))}
}

func serve(ctx context.Context, addr, dir string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newFileServer(dir),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("serving", "addr", addr, "dir", dir)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
