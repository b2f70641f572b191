package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pthm/elcmp"
	"github.com/pthm/elcmp/lib/watch"
)

const shutdownTimeout = 5 * time.Second

func (c *cli) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve components over HTTP",
		Long: `Serve the configured page at / and every component as a fragment at
/c/{name}. HTMX requests to / receive the page component without the layout.

With watch enabled, changed component modules are reloaded in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(c.cfg, c.logger)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, a)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", "", "listen address")
	flags.Bool("watch", false, "reload component modules when they change")
	_ = c.v.BindPFlag("server.addr", flags.Lookup("addr"))
	_ = c.v.BindPFlag("watch", flags.Lookup("watch"))

	return cmd
}

// newRouter mounts the component handlers on a chi router.
func newRouter(a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(a.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	if a.prom != nil {
		r.Handle("/metrics", promhttp.HandlerFor(a.prom, promhttp.HandlerOpts{}))
	}

	if dir := a.cfg.Server.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(dir))))
		}
	}

	r.Handle("/c/{name}", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		elcmp.Handler(a.engine, chi.URLParam(req, "name")).ServeHTTP(w, req)
	}))

	if a.cfg.Page != "" {
		r.Handle("/", elcmp.Handler(a.engine, a.cfg.Page, elcmp.WithPage(a.page(a.cfg.Page))))
	}
	return r
}

// requestLogger logs each request at debug level with its chi request ID.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

// runServe runs the HTTP server, and the watcher when enabled, until ctx is
// cancelled or one of them fails.
func runServe(ctx context.Context, a *app) error {
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var w *watch.Watcher
	if a.cfg.Watch {
		var err error
		w, err = watch.New(watch.Config{
			Dir:       a.cfg.ComponentsDir,
			Extension: a.cfg.Extension,
			Debounce:  a.cfg.WatchDebounce,
			Logger:    a.logger,
		})
		if err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info(fmt.Sprintf("listening on %s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	})

	if w != nil {
		a.logger.Info(fmt.Sprintf("watching %s", a.cfg.ComponentsDir))
		g.Go(func() error {
			return w.Run(ctx, watch.Reload(a.loader, a.logger))
		})
	}

	return g.Wait()
}
