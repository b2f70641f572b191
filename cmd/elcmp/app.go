package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pthm/elcmp"
	"github.com/pthm/elcmp/lib/config"
	"github.com/pthm/elcmp/lib/script"
)

// app wires the engine for one configuration.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	registry *elcmp.Registry
	loader   *elcmp.Loader
	engine   *elcmp.Engine
	prom     *prometheus.Registry
}

func newApp(cfg config.Config, logger *zap.Logger) (*app, error) {
	info, err := os.Stat(cfg.ComponentsDir)
	if err != nil {
		return nil, fmt.Errorf("components directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("components directory: %s is not a directory", cfg.ComponentsDir)
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		registry: elcmp.NewRegistry(logger),
	}
	a.loader = elcmp.NewLoader(os.DirFS(cfg.ComponentsDir), script.New(), a.registry,
		elcmp.WithExtension(cfg.Extension),
		elcmp.WithLoaderLogger(logger),
	)

	opts := []elcmp.Option{
		elcmp.WithRegistry(a.registry),
		elcmp.WithResolver(a.loader),
		elcmp.WithLogger(logger),
	}
	if cfg.Metrics {
		a.prom = prometheus.NewRegistry()
		opts = append(opts, elcmp.WithMetrics(elcmp.NewMetrics(elcmp.WithPrometheusRegistry(a.prom))))
	}
	a.engine = elcmp.New(opts...)

	for _, folder := range cfg.Autoload {
		n := a.loader.Autoload(folder)
		logger.Debug("autoloaded components", zap.String("folder", folder), zap.Int("count", n))
	}
	return a, nil
}

// page returns the configured layout with main as its main component.
func (a *app) page(main string) elcmp.Page {
	l := a.cfg.Layout
	return elcmp.Page{
		Title:       l.Title,
		Stylesheets: l.Stylesheets,
		Scripts:     l.Scripts,
		Header:      l.Header,
		Footer:      l.Footer,
		Main:        main,
	}
}
