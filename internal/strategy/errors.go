package strategy

import "errors"

// ErrRenderingUnavailable indicates the rendered strategy cannot run on
// this host, either because rendering is disabled by configuration or no
// browser binary exists. Callers skip the source and keep going.
var ErrRenderingUnavailable = errors.New("rendering unavailable")
