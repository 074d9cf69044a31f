package loader

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"go.uber.org/zap"

	"github.com/eugenenazirov/wiring/internal/config"
	"github.com/eugenenazirov/wiring/internal/dao"
	"github.com/eugenenazirov/wiring/internal/metier"
	"github.com/eugenenazirov/wiring/internal/registry"
)

// Resolver finds the factory registered for an identifier.
type Resolver interface {
	Lookup(id string) (registry.Factory, bool)
}

// Loader builds, wires and runs the configured components.
type Loader struct {
	resolver Resolver
	logger   *zap.Logger
	out      io.Writer
}

// Option configures Loader behaviour.
type Option func(*Loader)

// WithOutput overrides where the result line is written, primarily for tests.
func WithOutput(w io.Writer) Option {
	return func(l *Loader) {
		l.out = w
	}
}

// New constructs a Loader resolving identifiers through resolver.
func New(resolver Resolver, logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		resolver: resolver,
		logger:   logger,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run executes every step for components and returns the computed result.
func (l *Loader) Run(components config.Components) (float64, error) {
	providerInstance, err := l.instantiate(StepProvider, components.Provider)
	if err != nil {
		return 0, err
	}
	provider, ok := providerInstance.(dao.Provider)
	if !ok {
		return 0, newError(StepProvider, ErrMethodNotFound, components.Provider,
			fmt.Errorf("%T has no Value() float64", providerInstance))
	}

	calculator, err := l.instantiate(StepCalculator, components.Calculator)
	if err != nil {
		return 0, err
	}

	setter, ok := calculator.(metier.ProviderSetter)
	if !ok {
		return 0, newError(StepInject, ErrMethodNotFound, components.Calculator,
			fmt.Errorf("%T has no SetProvider(dao.Provider)", calculator))
	}
	if _, err := guard(func() (struct{}, error) {
		setter.SetProvider(provider)
		return struct{}{}, nil
	}); err != nil {
		return 0, newError(StepInject, ErrInvocation, components.Calculator, err)
	}
	l.logger.Debug("provider injected",
		zap.Stringer("step", StepInject),
		zap.String("identifier", components.Calculator),
	)

	computer, ok := calculator.(metier.Computer)
	if !ok {
		return 0, newError(StepCompute, ErrMethodNotFound, components.Calculator,
			fmt.Errorf("%T has no Compute() (float64, error)", calculator))
	}
	result, err := guard(computer.Compute)
	if err != nil {
		return 0, newError(StepCompute, ErrInvocation, components.Calculator, err)
	}
	l.logger.Debug("computation completed",
		zap.Stringer("step", StepCompute),
		zap.String("identifier", components.Calculator),
		zap.Float64("result", result),
	)

	if _, err := fmt.Fprintln(l.out, resultPrefix+FormatResult(result)); err != nil {
		return result, fmt.Errorf("write result: %w", err)
	}
	return result, nil
}

func (l *Loader) instantiate(step Step, id string) (any, error) {
	factory, ok := l.resolver.Lookup(id)
	if !ok {
		return nil, newError(step, ErrTypeResolution, id, nil)
	}

	instance, err := guard[any](factory)
	if err != nil {
		return nil, newError(step, ErrInstantiation, id, err)
	}
	if isNil(instance) {
		return nil, newError(step, ErrInstantiation, id, errNilInstance)
	}

	l.logger.Debug("component built",
		zap.Stringer("step", step),
		zap.String("identifier", id),
		zap.String("type", fmt.Sprintf("%T", instance)),
	)
	return instance, nil
}

// isNil reports whether v is nil, including a nil value behind a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// guard runs fn and turns a panic into an error.
func guard[T any](fn func() (T, error)) (out T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			out = zero
			err = fmt.Errorf("%w: %v", errPanic, rec)
		}
	}()
	return fn()
}
