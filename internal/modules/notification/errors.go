package notification

import "errors"

// ErrFetch wraps store failures during a feed load so callers can tell a
// failed refresh from a mutation error.
var ErrFetch = errors.New("failed to fetch notifications")
