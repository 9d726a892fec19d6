package remotebin

import "errors"

// ErrUnavailable covers every remote failure mode: connection errors,
// non-success HTTP statuses and malformed response bodies. Callers match it
// with errors.Is and fall back to local data.
var ErrUnavailable = errors.New("remote store unavailable")
