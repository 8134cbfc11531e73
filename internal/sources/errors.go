package sources

import "errors"

var (
	// ErrNoSources indicates a sources file with no usable entries.
	ErrNoSources = errors.New("no usable sources in configuration")
	// ErrMissingField indicates a required source field is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidKind indicates an unknown strategy kind.
	ErrInvalidKind = errors.New("invalid source kind")
	// ErrNotHTTP indicates a URL with a non-HTTP(S) scheme.
	ErrNotHTTP = errors.New("must be an http(s) URL")
)
