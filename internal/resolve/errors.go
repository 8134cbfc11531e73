package resolve

import "errors"

var (
	// ErrUnparseableDate indicates no known layout matched the date text.
	ErrUnparseableDate = errors.New("unparseable date")

	// ErrNoTitle indicates every title probe came up empty.
	ErrNoTitle = errors.New("no title found")
)
