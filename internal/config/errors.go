// Package config provides configuration management for the blogwatch application.
package config

import "errors"

// Common configuration errors
var (
	// ErrMissingSection is returned when a required configuration section is absent
	ErrMissingSection = errors.New("missing configuration section")

	// ErrInvalidValue is returned when a configuration value fails validation
	ErrInvalidValue = errors.New("invalid configuration value")
)
