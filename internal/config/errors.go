package config

import "errors"

var (
	// ErrConfigNotFound is returned when the components file is missing or unreadable.
	ErrConfigNotFound = errors.New("configuration not found")
	// ErrConfigIncomplete is returned when the components file has fewer than two lines.
	ErrConfigIncomplete = errors.New("configuration incomplete")
)
