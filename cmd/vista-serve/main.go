package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"vista/internal/app"
	"vista/internal/core"
	"vista/internal/preview"
	"vista/internal/scene"
)

//go:embed index.html
var indexHTML []byte

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	rate := flag.Int("fps", 10, "frames broadcast per second")
	workers := flag.Int("workers", runtime.NumCPU(), "render workers")
	preset := flag.String("preset", scene.DefaultPreset, "scene preset")
	var overrides app.Overrides
	flag.Var(&overrides, "set", "scene override in key=value form (repeatable)")
	flag.Parse()

	cfg := app.NewConfig()
	cfg.Preset = *preset
	cfg.Set = overrides
	sc, err := cfg.Scene()
	if err != nil {
		log.Fatal(err)
	}

	ctrl := scene.NewController(sc, *rate)
	eval := scene.NewEvaluator(*workers)
	eval.Compositor.FOV = sc.FOV
	hub := preview.NewHub(ctrl)
	streamer := &preview.Streamer{
		Hub:       hub,
		Control:   ctrl,
		Evaluator: eval,
		Size:      core.Size{W: sc.Width, H: sc.Height},
		Rate:      *rate,
	}

	srv := &http.Server{Addr: *addr, Handler: newMux(hub), ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return streamer.Run(gctx)
	})
	g.Go(func() error {
		fmt.Printf("Serving %dx%d preview on http://localhost%s\n", sc.Width, sc.Height, *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func newMux(hub *preview.Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	mux.Handle("/ws", hub)
	return mux
}
