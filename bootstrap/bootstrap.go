// Package bootstrap wires all dependencies and starts the application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/artpar/varmsg/adapters/clock"
	apihttp "github.com/artpar/varmsg/adapters/http"
	"github.com/artpar/varmsg/adapters/idgen"
	"github.com/artpar/varmsg/adapters/matcher"
	"github.com/artpar/varmsg/adapters/memory"
	"github.com/artpar/varmsg/adapters/metrics"
	"github.com/artpar/varmsg/adapters/rospack"
	"github.com/artpar/varmsg/adapters/sqlite"
	"github.com/artpar/varmsg/app"
	"github.com/artpar/varmsg/config"
	"github.com/artpar/varmsg/core/registry"
	"github.com/artpar/varmsg/core/resolve"
	"github.com/artpar/varmsg/ports"
	"github.com/rs/zerolog"
)

// App represents the running application.
type App struct {
	Logger   zerolog.Logger
	Config   *config.Config
	Registry *registry.Registry
	Resolver *resolve.Resolver
	Service  *app.ResolveService

	db     *sqlite.DB
	holder *config.Holder
	server *http.Server
}

// New wires the application from a fixed configuration.
func New(cfg *config.Config) (*App, error) {
	return build(cfg, nil)
}

// NewWithHotReload wires the application with a config holder that watches
// the file for changes. Resolver search paths take effect on the next
// resolution without a restart.
func NewWithHotReload(path string) (*App, error) {
	logger := newLogger(config.Default().Logging)

	holder, err := config.NewHolder(path, logger)
	if err != nil {
		return nil, err
	}
	if err := holder.WatchFile(); err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	holder.WatchSignals()

	return build(holder.Get(), holder)
}

func build(cfg *config.Config, holder *config.Holder) (*App, error) {
	logger := newLogger(cfg.Logging)

	var store ports.SchemaStore
	var db *sqlite.DB
	switch cfg.Database.Driver {
	case "sqlite":
		var err error
		db, err = sqlite.Open(cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open schema store: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate schema store: %w", err)
		}
		store = sqlite.NewSchemaStore(db)
	case "memory":
		store = memory.NewSchemaStore()
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.New()
	}

	reg := registry.New()

	var locator ports.PackageLocator
	if holder != nil {
		locator = &reloadingLocator{holder: holder}
	} else {
		locator = rospack.New(cfg.Resolver.SearchPaths)
	}

	resolver := resolve.New(locator, matcher.New(), reg,
		resolve.WithBasePackage(cfg.Resolver.BasePackage))

	service := app.NewResolveService(resolver, idgen.UUID{}, clock.Real{}, logger,
		app.ResolveServiceConfig{Store: store, Metrics: collector})

	a := &App{
		Logger:   logger,
		Config:   cfg,
		Registry: reg,
		Resolver: resolver,
		Service:  service,
		db:       db,
		holder:   holder,
	}

	handler := apihttp.NewSchemaHandler(service, logger, collector)
	a.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return a, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().Str("addr", a.server.Addr).Msg("schema API listening")
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-sigCh:
		a.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.Close()
	return nil
}

// Close releases application resources.
func (a *App) Close() {
	if a.holder != nil {
		a.holder.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
}

// reloadingLocator reads the current search paths from the config holder on
// every lookup, so config reloads affect subsequent resolutions.
type reloadingLocator struct {
	holder *config.Holder
}

func (l *reloadingLocator) Locate(pkg string) (string, bool) {
	return rospack.New(l.holder.Get().Resolver.SearchPaths).Locate(pkg)
}

func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger().Level(level)
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)
}
