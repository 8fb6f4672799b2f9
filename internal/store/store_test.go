package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitec-sas/gestion/internal/model"
	"github.com/sitec-sas/gestion/internal/store"
	"github.com/sitec-sas/gestion/tests/testutil"
)

// recordingPusher captures the state handed to the push hook.
type recordingPusher struct {
	pushed chan model.AppState
}

func newRecordingPusher() *recordingPusher {
	return &recordingPusher{pushed: make(chan model.AppState, 1)}
}

func (p *recordingPusher) Push(_ context.Context, state model.AppState) {
	p.pushed <- state
}

func sampleState() model.AppState {
	state := model.DefaultAppState()
	state.Clients = []model.Client{{ID: "c1", Name: "Ferretería El Martillo", NIT: "900123456-7"}}
	state.Quotes = []model.Quote{{
		ID: "q1", Number: "COT-101", ClientID: "c1", Date: "2026-08-01",
		ServiceTypes: []model.ServiceType{model.ServiceSale},
		Items: []model.QuoteItem{
			{ID: "i1", Description: "Cámara Domo", Quantity: 2},
			{ID: "i2", Description: "Cable UTP", Quantity: 1},
		},
		Status: model.StatusSent,
	}}
	return state
}

func TestOpenWithoutSnapshotReturnsDefault(t *testing.T) {
	s := testutil.NewTestStore(t)

	state := s.State()
	assert.Empty(t, state.Clients)
	assert.Empty(t, state.Quotes)
	assert.False(t, state.SyncConfig.Enabled)
}

func TestCommitRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sitec.db")

	s, err := store.Open(dbPath, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Commit(context.Background(), sampleState()))
	require.NoError(t, s.Close())

	reopened, err := store.Open(dbPath, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got := reopened.State()
	require.Len(t, got.Clients, 1)
	assert.Equal(t, "Ferretería El Martillo", got.Clients[0].Name)

	// Item order survives the round-trip.
	require.Len(t, got.Quotes, 1)
	require.Len(t, got.Quotes[0].Items, 2)
	assert.Equal(t, "Cámara Domo", got.Quotes[0].Items[0].Description)
	assert.Equal(t, "Cable UTP", got.Quotes[0].Items[1].Description)
}

func TestReplaceCurrentStateIsNoOp(t *testing.T) {
	s := testutil.NewTestStore(t)
	require.NoError(t, s.Commit(context.Background(), sampleState()))

	before := s.State()
	require.NoError(t, s.Replace(context.Background(), s.State()))
	assert.Equal(t, before, s.State())
}

func TestCorruptSnapshotFallsBackToDefault(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sitec.db")

	s, err := store.Open(dbPath, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Commit(context.Background(), sampleState()))
	require.NoError(t, s.Close())

	db, err := sqlx.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec("UPDATE snapshots SET data = '{not json'")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := store.Open(dbPath, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got := reopened.State()
	assert.Empty(t, got.Clients)
	assert.Empty(t, got.Quotes)
}

func TestCommitTriggersPushWhenConfigured(t *testing.T) {
	s := testutil.NewTestStore(t)
	pusher := newRecordingPusher()
	s.SetPusher(pusher)

	state := sampleState()
	state.SyncConfig = model.SyncConfig{Enabled: true, RemoteURL: "https://remote.test", RemoteKey: "k"}
	require.NoError(t, s.Commit(context.Background(), state))

	select {
	case pushed := <-pusher.pushed:
		assert.Equal(t, "c1", pushed.Clients[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("push hook was not invoked")
	}
}

func TestCommitDoesNotPushWhenDisabled(t *testing.T) {
	s := testutil.NewTestStore(t)
	pusher := newRecordingPusher()
	s.SetPusher(pusher)

	state := sampleState()
	state.SyncConfig = model.SyncConfig{Enabled: false, RemoteURL: "https://remote.test", RemoteKey: "k"}
	require.NoError(t, s.Commit(context.Background(), state))

	select {
	case <-pusher.pushed:
		t.Fatal("push hook invoked with sync disabled")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestReplaceNeverPushes(t *testing.T) {
	s := testutil.NewTestStore(t)
	pusher := newRecordingPusher()
	s.SetPusher(pusher)

	state := sampleState()
	state.SyncConfig = model.SyncConfig{Enabled: true, RemoteURL: "https://remote.test", RemoteKey: "k"}
	require.NoError(t, s.Replace(context.Background(), state))

	select {
	case <-pusher.pushed:
		t.Fatal("push hook invoked by Replace")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRecordSyncPersistsMarker(t *testing.T) {
	s := testutil.NewTestStore(t)
	require.NoError(t, s.Commit(context.Background(), sampleState()))

	stamp := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordSync(stamp))

	got := s.State().SyncConfig.LastSync
	require.NotNil(t, got)
	assert.True(t, got.Equal(stamp))
}

func TestMergeRemoteReplacesOnlyPresentCollections(t *testing.T) {
	local := sampleState()
	local.Technicians = []model.Technician{{ID: "t1", Name: "Carlos"}}

	partial := model.PartialState{
		Clients: []model.Client{{ID: "c9", Name: "Nuevo Cliente"}},
	}

	merged := store.MergeRemote(local, partial)

	require.Len(t, merged.Clients, 1)
	assert.Equal(t, "c9", merged.Clients[0].ID)

	// Collections absent from the pull keep their local values.
	assert.Equal(t, local.Quotes, merged.Quotes)
	assert.Equal(t, local.Technicians, merged.Technicians)
	assert.Equal(t, local.SyncConfig, merged.SyncConfig)
}

func TestMergeRemoteEmptyCollectionIsApplied(t *testing.T) {
	local := sampleState()

	merged := store.MergeRemote(local, model.PartialState{Clients: []model.Client{}})

	assert.Empty(t, merged.Clients)
	assert.Equal(t, local.Quotes, merged.Quotes)
}
