package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeResolution is returned when no factory is registered for an identifier.
	ErrTypeResolution = errors.New("type resolution error")
	// ErrInstantiation is returned when a factory fails, panics or returns nothing.
	ErrInstantiation = errors.New("instantiation error")
	// ErrMethodNotFound is returned when an instance lacks the operation a step needs.
	ErrMethodNotFound = errors.New("method not found")
	// ErrInvocation is returned when an operation fails or panics while running.
	ErrInvocation = errors.New("invocation error")

	errNilInstance = errors.New("factory returned nil")
	errPanic       = errors.New("panic")
)

// Step identifies one stage of a run.
type Step int

const (
	StepProvider Step = iota + 1
	StepCalculator
	StepInject
	StepCompute
)

func (s Step) String() string {
	switch s {
	case StepProvider:
		return "build provider"
	case StepCalculator:
		return "build calculator"
	case StepInject:
		return "inject provider"
	case StepCompute:
		return "compute"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Error describes which step failed, on which identifier, and why.
type Error struct {
	Step       Step
	Kind       error
	Identifier string
	Err        error
}

func newError(step Step, kind error, id string, err error) *Error {
	return &Error{Step: step, Kind: kind, Identifier: id, Err: err}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %q: %v", e.Step, e.Identifier, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
