// Package gateway implements the dual-tier persistence layer: the local
// sqlite store is always written and always authoritative on failure, and an
// optional remote bin is mirrored best-effort for cross-device consistency.
// No other component talks to the remote store directly.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strconv"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/localstore"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/logging"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/remotebin"
)

// revisionKey is the reserved aggregate-document property carrying the
// monotonically increasing revision counter used by guarded saves.
const revisionKey = "__rev"

// guardedSaveAttempts bounds the re-merge loop of a guarded save.
const guardedSaveAttempts = 3

// Gateway provides Load and Save for named records.
//
// The remote read-modify-write window in Save is unprotected by default:
// two writers racing against the bin can lose one writer's update to the
// other, even for unrelated keys, because the whole document is replaced on
// every PUT. With guarded enabled the gateway verifies its revision landed
// and re-merges on conflict; the bin has no conditional PUT, so that narrows
// the window rather than closing it.
type Gateway struct {
	local   localstore.Store
	remote  remotebin.Client
	log     logging.Logger
	guarded bool
}

func New(local localstore.Store, remote remotebin.Client, log logging.Logger, guarded bool) *Gateway {
	return &Gateway{local: local, remote: remote, log: log, guarded: guarded}
}

// Load resolves the value for key into out, which must be a non-nil pointer
// pre-populated with the caller's default value.
//
// The local entry is read first; if cloud sync is configured, one remote
// fetch may override it and refresh the local cache. Load never fails:
// every remote or decode problem is logged and the best local value (or the
// untouched default) is what remains in out.
func (g *Gateway) Load(ctx context.Context, key string, out any) Outcome {
	outcome := Outcome{Source: SourceDefault, Remote: RemoteSkipped}

	localRaw, err := g.local.Get(ctx, key)
	if err != nil {
		g.log.Warn(ctx, "local read failed", "key", key, "error", err)
	}
	if localRaw != nil {
		if decodeInto(localRaw, out) == nil {
			outcome.Source = SourceLocal
		} else {
			g.log.Warn(ctx, "local value unreadable, using default", "key", key)
		}
	}

	settings := g.cloudSettings(ctx)
	if !settings.Configured() {
		return outcome
	}

	doc, err := g.remote.Fetch(ctx, settings)
	if err != nil {
		g.log.Warn(ctx, "remote load failed, using local data", "key", key, "error", err)
		outcome.Remote = RemoteFailed
		return outcome
	}
	outcome.Remote = RemoteSynced

	remoteRaw, ok := doc[key]
	if !ok {
		return outcome
	}
	if err := decodeInto(remoteRaw, out); err != nil {
		g.log.Warn(ctx, "remote value unreadable, using local data", "key", key, "error", err)
		outcome.Remote = RemoteFailed
		return outcome
	}

	// Remote value is authoritative: refresh the local cache.
	if err := g.local.Set(ctx, key, remoteRaw); err != nil {
		g.log.Warn(ctx, "local cache refresh failed", "key", key, "error", err)
	}
	outcome.Source = SourceRemote
	return outcome
}

// Save writes data to the local entry for key and, when cloud sync is
// configured, merges it into the remote aggregate document.
//
// The returned error reflects only the local phase; once the local write has
// committed the operation is reported successful regardless of the remote
// outcome, which is visible in Outcome.Remote.
func (g *Gateway) Save(ctx context.Context, key string, data any) (Outcome, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Outcome{}, err
	}

	if err := g.local.Set(ctx, key, raw); err != nil {
		return Outcome{}, err
	}
	outcome := Outcome{Source: SourceLocal, Remote: RemoteSkipped}

	settings := g.cloudSettings(ctx)
	if !settings.Configured() {
		return outcome, nil
	}

	if err := g.saveRemote(ctx, settings, key, raw); err != nil {
		g.log.Warn(ctx, "remote save failed", "key", key, "error", err)
		outcome.Remote = RemoteFailed
		return outcome, nil
	}
	outcome.Remote = RemoteSynced
	return outcome, nil
}

func (g *Gateway) saveRemote(ctx context.Context, settings *models.CloudSettings, key string, raw json.RawMessage) error {
	for attempt := 0; ; attempt++ {
		doc, err := g.remote.Fetch(ctx, settings)
		if err != nil {
			if errors.Is(err, remotebin.ErrUnavailable) {
				// Start from an empty document, same as a never-written bin.
				doc = remotebin.Document{}
			} else {
				return err
			}
		}

		doc[key] = raw

		var rev int64
		if g.guarded {
			rev = docRevision(doc) + 1
			doc[revisionKey] = json.RawMessage(strconv.FormatInt(rev, 10))
		}

		if err := g.remote.Put(ctx, settings, doc); err != nil {
			return err
		}
		if !g.guarded {
			return nil
		}

		// Verify our revision landed; another writer may have replaced the
		// document between our fetch and put.
		current, err := g.remote.Fetch(ctx, settings)
		if err != nil {
			return err
		}
		if docRevision(current) == rev {
			return nil
		}
		if attempt+1 >= guardedSaveAttempts {
			return remotebin.ErrUnavailable
		}
		g.log.Warn(ctx, "remote save conflicted, re-merging", "key", key, "attempt", attempt+1)
	}
}

func docRevision(doc remotebin.Document) int64 {
	raw, ok := doc[revisionKey]
	if !ok {
		return 0
	}
	rev, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0
	}
	return rev
}

// decodeInto unmarshals raw into a scratch value of out's type and copies it
// over only on success, so a failed decode never leaves out half-written.
func decodeInto(raw []byte, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("out must be a non-nil pointer")
	}
	scratch := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(raw, scratch.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(scratch.Elem())
	return nil
}
