package application

import (
	"errors"

	"github.com/eugenenazirov/wiring/internal/config"
	"github.com/eugenenazirov/wiring/internal/loader"
)

// Process exit codes, one per failure kind.
const (
	ExitOK = iota
	ExitFailure
	ExitConfigNotFound
	ExitConfigIncomplete
	ExitTypeResolution
	ExitInstantiation
	ExitMethodNotFound
	ExitInvocation
)

// ExitCode maps err to the process exit code for its failure kind.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrConfigNotFound):
		return ExitConfigNotFound
	case errors.Is(err, config.ErrConfigIncomplete):
		return ExitConfigIncomplete
	case errors.Is(err, loader.ErrTypeResolution):
		return ExitTypeResolution
	case errors.Is(err, loader.ErrInstantiation):
		return ExitInstantiation
	case errors.Is(err, loader.ErrMethodNotFound):
		return ExitMethodNotFound
	case errors.Is(err, loader.ErrInvocation):
		return ExitInvocation
	default:
		return ExitFailure
	}
}
