package gateway

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/localstore"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/logging"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/remotebin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupStore(t *testing.T) localstore.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE records (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return localstore.NewSQLiteStore(db)
}

func nopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func enableCloud(t *testing.T, g *Gateway) {
	t.Helper()
	require.NoError(t, g.SaveCloudSettings(context.Background(), &models.CloudSettings{
		Enabled:  true,
		Provider: models.ProviderJSONBin,
		APIKey:   "key",
		BinID:    "bin",
	}))
}

// ---- fake remote client ----

// fakeRemote implements remotebin.Client with an in-memory document and
// injectable failures.
type fakeRemote struct {
	doc remotebin.Document

	fetchErr error
	putErr   error

	fetches int
	puts    int

	// onPut runs before every successful put, simulating a concurrent writer.
	onPut func(doc remotebin.Document)
}

func (f *fakeRemote) Fetch(ctx context.Context, s *models.CloudSettings) (remotebin.Document, error) {
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := remotebin.Document{}
	for k, v := range f.doc {
		out[k] = v
	}
	return out, nil
}

func (f *fakeRemote) Put(ctx context.Context, s *models.CloudSettings, doc remotebin.Document) error {
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	if f.onPut != nil {
		f.onPut(doc)
	}
	f.doc = remotebin.Document{}
	for k, v := range doc {
		f.doc[k] = v
	}
	return nil
}

// ---- TESTS ----

func TestSaveThenLoad_RoundTrip_LocalOnly(t *testing.T) {
	g := New(setupStore(t), &fakeRemote{}, nopLogger(), false)
	ctx := context.Background()

	videos := []models.VideoItem{{ID: "1", Title: "Sunday Service"}}
	out, err := g.Save(ctx, "gracegather_videos", videos)
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, out.Source)
	assert.Equal(t, RemoteSkipped, out.Remote)

	var loaded []models.VideoItem
	lo := g.Load(ctx, "gracegather_videos", &loaded)
	assert.Equal(t, SourceLocal, lo.Source)
	assert.Equal(t, RemoteSkipped, lo.Remote)
	require.Equal(t, videos, loaded)
}

func TestLoad_AbsentKey_KeepsDefault(t *testing.T) {
	g := New(setupStore(t), &fakeRemote{}, nopLogger(), false)

	loaded := []models.VideoItem{{ID: "default"}}
	out := g.Load(context.Background(), "gracegather_videos", &loaded)

	assert.Equal(t, SourceDefault, out.Source)
	require.Len(t, loaded, 1)
	assert.Equal(t, "default", loaded[0].ID)
}

func TestLoad_RemoteValueIsAuthoritative_AndRefreshesCache(t *testing.T) {
	store := setupStore(t)
	remote := &fakeRemote{doc: remotebin.Document{
		"gracegather_videos": json.RawMessage(`[{"id":"remote"}]`),
	}}
	g := New(store, remote, nopLogger(), false)
	ctx := context.Background()

	enableCloud(t, g)
	_, err := store.Get(ctx, "gracegather_videos")
	require.NoError(t, err)

	var loaded []models.VideoItem
	out := g.Load(ctx, "gracegather_videos", &loaded)

	assert.Equal(t, SourceRemote, out.Source)
	assert.Equal(t, RemoteSynced, out.Remote)
	require.Len(t, loaded, 1)
	assert.Equal(t, "remote", loaded[0].ID)

	// Local cache was overwritten with the remote value.
	raw, err := store.Get(ctx, "gracegather_videos")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"remote"}]`, string(raw))
}

func TestLoad_RemoteUnavailable_FallsBackToLocal(t *testing.T) {
	remote := &fakeRemote{fetchErr: remotebin.ErrUnavailable}
	g := New(setupStore(t), remote, nopLogger(), false)
	ctx := context.Background()

	enableCloud(t, g)
	_, err := g.Save(ctx, "k", map[string]string{"v": "local"})
	require.NoError(t, err)

	remote.fetchErr = remotebin.ErrUnavailable
	var loaded map[string]string
	out := g.Load(ctx, "k", &loaded)

	assert.Equal(t, SourceLocal, out.Source)
	assert.Equal(t, RemoteFailed, out.Remote)
	assert.Equal(t, "local", loaded["v"])
}

func TestLoad_RemoteUnavailable_NoLocal_KeepsDefault(t *testing.T) {
	remote := &fakeRemote{fetchErr: remotebin.ErrUnavailable}
	g := New(setupStore(t), remote, nopLogger(), false)
	ctx := context.Background()

	enableCloud(t, g)

	loaded := "fallback"
	out := g.Load(ctx, "nothing", &loaded)

	assert.Equal(t, SourceDefault, out.Source)
	assert.Equal(t, RemoteFailed, out.Remote)
	assert.Equal(t, "fallback", loaded)
}

func TestLoad_MalformedRemoteValue_KeepsLocal(t *testing.T) {
	remote := &fakeRemote{doc: remotebin.Document{
		"k": json.RawMessage(`"not-an-array"`),
	}}
	g := New(setupStore(t), remote, nopLogger(), false)
	ctx := context.Background()

	enableCloud(t, g)
	_, err := g.Save(ctx, "k", []int{1, 2})
	require.NoError(t, err)
	// Save merged our value into the fake document; put the bad value back.
	remote.doc["k"] = json.RawMessage(`"not-an-array"`)

	var loaded []int
	out := g.Load(ctx, "k", &loaded)

	assert.Equal(t, SourceLocal, out.Source)
	assert.Equal(t, RemoteFailed, out.Remote)
	assert.Equal(t, []int{1, 2}, loaded)
}

func TestSave_RemoteFailure_StillSucceeds(t *testing.T) {
	remote := &fakeRemote{putErr: remotebin.ErrUnavailable}
	g := New(setupStore(t), remote, nopLogger(), false)
	ctx := context.Background()

	enableCloud(t, g)
	out, err := g.Save(ctx, "k", "value")

	require.NoError(t, err)
	assert.Equal(t, SourceLocal, out.Source)
	assert.Equal(t, RemoteFailed, out.Remote)

	var loaded string
	lo := g.Load(ctx, "k", &loaded)
	assert.Equal(t, SourceLocal, lo.Source)
	assert.Equal(t, "value", loaded)
}

func TestSave_MergesIntoAggregateDocument(t *testing.T) {
	remote := &fakeRemote{doc: remotebin.Document{
		"gracegather_prayers": json.RawMessage(`[{"id":"p1"}]`),
	}}
	g := New(setupStore(t), remote, nopLogger(), false)
	ctx := context.Background()

	enableCloud(t, g)
	out, err := g.Save(ctx, "gracegather_videos", []string{"v1"})
	require.NoError(t, err)
	assert.Equal(t, RemoteSynced, out.Remote)

	// The unrelated key survived the full-document replacement.
	assert.Contains(t, remote.doc, "gracegather_prayers")
	assert.Contains(t, remote.doc, "gracegather_videos")
}

func TestSave_EmptyBin_StartsFromEmptyDocument(t *testing.T) {
	remote := &fakeRemote{fetchErr: remotebin.ErrUnavailable}
	g := New(setupStore(t), remote, nopLogger(), false)
	ctx := context.Background()

	enableCloud(t, g)
	// Fetch fails but Put succeeds: the save starts from an empty document,
	// same as a bin that has never been written.
	out, err := g.Save(ctx, "k", 42)
	require.NoError(t, err)
	assert.Equal(t, RemoteSynced, out.Remote)
	assert.Contains(t, remote.doc, "k")
}

func TestSave_AppendTwice_LoadSeesItemOnce(t *testing.T) {
	g := New(setupStore(t), &fakeRemote{}, nopLogger(), false)
	ctx := context.Background()

	_, err := g.Save(ctx, "gracegather_videos", []models.VideoItem{})
	require.NoError(t, err)

	var existing []models.VideoItem
	g.Load(ctx, "gracegather_videos", &existing)

	newItem := models.VideoItem{ID: "42", Title: "Easter"}
	_, err = g.Save(ctx, "gracegather_videos", append(existing, newItem))
	require.NoError(t, err)

	var loaded []models.VideoItem
	g.Load(ctx, "gracegather_videos", &loaded)

	count := 0
	for _, v := range loaded {
		if v.ID == "42" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestGuardedSave_RetriesOnConcurrentWriter(t *testing.T) {
	remote := &fakeRemote{doc: remotebin.Document{}}
	g := New(setupStore(t), remote, nopLogger(), true)
	ctx := context.Background()

	enableCloud(t, g)

	// First put is clobbered by a concurrent writer bumping the revision.
	interfered := false
	remote.onPut = func(doc remotebin.Document) {
		if !interfered {
			interfered = true
			doc[revisionKey] = json.RawMessage(`99`)
			delete(doc, "k")
		}
	}

	out, err := g.Save(ctx, "k", "mine")
	require.NoError(t, err)
	assert.Equal(t, RemoteSynced, out.Remote)

	// The retry re-merged our key on top of the interfering write.
	assert.Contains(t, remote.doc, "k")
	assert.JSONEq(t, `"mine"`, string(remote.doc["k"]))
}

func TestGuardedSave_GivesUpAfterBoundedAttempts(t *testing.T) {
	remote := &fakeRemote{doc: remotebin.Document{}}
	g := New(setupStore(t), remote, nopLogger(), true)
	ctx := context.Background()

	enableCloud(t, g)

	// Every put is clobbered.
	remote.onPut = func(doc remotebin.Document) {
		doc[revisionKey] = json.RawMessage(`9999`)
	}

	out, err := g.Save(ctx, "k", "mine")
	require.NoError(t, err) // local write committed, so the save succeeds
	assert.Equal(t, RemoteFailed, out.Remote)
}

func TestCloudSettings_RoundTripAndAbsent(t *testing.T) {
	g := New(setupStore(t), &fakeRemote{}, nopLogger(), false)
	ctx := context.Background()

	require.Nil(t, g.CloudSettings(ctx))

	s := &models.CloudSettings{Enabled: true, Provider: models.ProviderJSONBin, APIKey: "k", BinID: "b"}
	require.NoError(t, g.SaveCloudSettings(ctx, s))

	got := g.CloudSettings(ctx)
	require.NotNil(t, got)
	assert.Equal(t, *s, *got)
}

func TestCloudSettings_NeverMirroredBySave(t *testing.T) {
	remote := &fakeRemote{doc: remotebin.Document{}}
	g := New(setupStore(t), remote, nopLogger(), false)
	ctx := context.Background()

	enableCloud(t, g)
	_, err := g.Save(ctx, "k", "v")
	require.NoError(t, err)

	assert.NotContains(t, remote.doc, settingsKey)
}

func TestPartialConfiguration_MakesNoNetworkCalls(t *testing.T) {
	remote := &fakeRemote{doc: remotebin.Document{}}
	g := New(setupStore(t), remote, nopLogger(), false)
	ctx := context.Background()

	// Enabled but missing the bin id: local-only behavior.
	require.NoError(t, g.SaveCloudSettings(ctx, &models.CloudSettings{
		Enabled: true, Provider: models.ProviderJSONBin, APIKey: "k",
	}))

	_, err := g.Save(ctx, "k", "v")
	require.NoError(t, err)
	var s string
	g.Load(ctx, "k", &s)

	assert.Zero(t, remote.fetches)
	assert.Zero(t, remote.puts)
}

func TestLoadLocal_CorruptedEntryTreatedAsAbsent(t *testing.T) {
	store := setupStore(t)
	g := New(store, &fakeRemote{}, nopLogger(), false)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "gracegather_auth_session", []byte(`{broken`)))

	var sess models.Session
	ok := g.LoadLocal(ctx, "gracegather_auth_session", &sess)
	assert.False(t, ok)
}

func TestDeleteLocal_AbsentKeyIsNoop(t *testing.T) {
	g := New(setupStore(t), &fakeRemote{}, nopLogger(), false)
	require.NoError(t, g.DeleteLocal(context.Background(), "nothing-here"))
}

func TestClearLocalPrefix_RemovesOnlyMatchingKeys(t *testing.T) {
	g := New(setupStore(t), &fakeRemote{}, nopLogger(), false)
	ctx := context.Background()

	require.NoError(t, g.SaveLocal(ctx, "gracegather_bible_cache_kjv_john_3", "cached"))
	require.NoError(t, g.SaveLocal(ctx, "gracegather_bible_cache_kjv_ruth_1", "cached"))
	require.NoError(t, g.SaveLocal(ctx, "gracegather_auth_session", "keep"))

	require.NoError(t, g.ClearLocalPrefix(ctx, "gracegather_bible_cache_"))

	var v string
	assert.False(t, g.LoadLocal(ctx, "gracegather_bible_cache_kjv_john_3", &v))
	assert.False(t, g.LoadLocal(ctx, "gracegather_bible_cache_kjv_ruth_1", &v))
	assert.True(t, g.LoadLocal(ctx, "gracegather_auth_session", &v))
	assert.Equal(t, "keep", v)
}
