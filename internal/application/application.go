package application

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/wiring/internal/config"
	"github.com/eugenenazirov/wiring/internal/loader"
	"github.com/eugenenazirov/wiring/internal/logging"
	"github.com/eugenenazirov/wiring/internal/registry"
)

// App encapsulates the settings, the component registry and the logger.
type App struct {
	cfg      config.Config
	registry *registry.Registry
	logger   *zap.Logger
}

// Option configures App behaviour.
type Option func(*App)

// WithRegistry replaces the built-in component registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(a *App) {
		a.registry = reg
	}
}

// New initializes the application from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	app := &App{
		cfg:      cfg,
		registry: registry.Default(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.registry == nil {
		return nil, errors.New("registry is required")
	}
	return app, nil
}

// Run reads the components file, wires the named components and writes the result line to w.
func (a *App) Run(w io.Writer) error {
	logger := logging.WithRunID(a.logger)

	components, err := config.LoadComponents(a.cfg.ComponentsFile)
	if err != nil {
		return err
	}
	logger.Debug("components loaded",
		zap.String("file", a.cfg.ComponentsFile),
		zap.String("provider", components.Provider),
		zap.String("calculator", components.Calculator),
	)

	result, err := loader.New(a.registry, logger, loader.WithOutput(w)).Run(components)
	if err != nil {
		return err
	}

	logger.Info("run completed", zap.Float64("result", result))
	return nil
}

// ListComponents writes every registered identifier to w, one per line.
func (a *App) ListComponents(w io.Writer) error {
	for _, id := range a.registry.Identifiers() {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return fmt.Errorf("write identifier: %w", err)
		}
	}
	return nil
}
