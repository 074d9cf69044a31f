package metier

import "errors"

var (
	// ErrProviderNotSet is returned when Compute runs before a provider was injected.
	ErrProviderNotSet = errors.New("provider not set")
)
