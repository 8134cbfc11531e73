package fetch

import "errors"

// ErrUnexpectedStatus indicates a response status outside the 2xx range.
var ErrUnexpectedStatus = errors.New("unexpected status")
