package gateway

// Source names the tier that produced the value returned by Load.
type Source string

const (
	// SourceDefault means neither tier had the key; the caller's default
	// value was left in place.
	SourceDefault Source = "default"
	// SourceLocal means the local store served the value.
	SourceLocal Source = "local"
	// SourceRemote means the remote document was authoritative and the
	// local cache was refreshed from it.
	SourceRemote Source = "remote"
)

// RemoteState names what happened on the remote side of an operation.
type RemoteState string

const (
	// RemoteSkipped: cloud sync is off or not fully configured; no network
	// calls were made.
	RemoteSkipped RemoteState = "skipped"
	// RemoteSynced: the remote phase completed.
	RemoteSynced RemoteState = "synced"
	// RemoteFailed: the remote phase failed and the operation fell back to
	// local data. Never surfaced as an error.
	RemoteFailed RemoteState = "failed"
)

// Outcome reports which path a gateway operation took. The observed behavior
// hid this entirely behind a catch-all; returning it lets callers and tests
// tell "served from cache after remote failure" apart from "remote synced"
// while the error contract stays the same.
type Outcome struct {
	Source Source
	Remote RemoteState
}
