package bibleapi

import "errors"

// ErrUnavailable covers every provider failure mode: connection errors,
// non-success HTTP statuses and malformed response bodies. Callers match it
// with errors.Is and fall back to cached chapters.
var ErrUnavailable = errors.New("scripture provider unavailable")
