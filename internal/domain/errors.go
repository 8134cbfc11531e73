package domain

import "errors"

// Validation errors for emitted articles.
var (
	// ErrMissingTitle is returned when an article has no title.
	ErrMissingTitle = errors.New("article has no title")
	// ErrMissingURL is returned when an article has no URL.
	ErrMissingURL = errors.New("article has no url")
	// ErrMissingDate is returned when an article has no resolved publish date.
	ErrMissingDate = errors.New("article has no publish date")
)
