package main

import (
	"embed"
	"io/fs"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pthm/elcmp"
	"github.com/pthm/elcmp/example/components"
	"github.com/pthm/elcmp/lib/diag"
	"github.com/pthm/elcmp/lib/script"
)

// Runtime component modules. The leading underscore keeps the Go tool from
// building them as part of this package.
//
//go:embed _modules
var moduleFiles embed.FS

func main() {
	logger := diag.New(os.Stderr, zap.InfoLevel)
	defer diag.Install(logger)()

	modules, err := fs.Sub(moduleFiles, "_modules")
	if err != nil {
		logger.Fatal("opening modules", zap.Error(err))
	}

	store := NewStore()
	engine := newEngine(store, modules, logger, elcmp.NewMetrics())

	mux := newMux(engine, store)
	mux.Handle("GET /metrics", promhttp.Handler())

	addr := ":8080"
	logger.Info("starting server at http://localhost" + addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newEngine registers the compiled components and autoloads the runtime
// modules.
func newEngine(store *Store, modules fs.FS, logger *zap.Logger, metrics *elcmp.Metrics) *elcmp.Engine {
	reg := elcmp.NewRegistry(logger)
	components.Init(store, reg)

	loader := elcmp.NewLoader(modules, script.New(), reg, elcmp.WithLoaderLogger(logger))
	loader.Autoload(".")

	return elcmp.New(
		elcmp.WithRegistry(reg),
		elcmp.WithResolver(loader),
		elcmp.WithLogger(logger),
		elcmp.WithMetrics(metrics),
	)
}
