package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitec-sas/gestion/internal/model"
)

// stubRecorder captures the sync marker timestamps it receives.
type stubRecorder struct {
	stamps []time.Time
}

func (r *stubRecorder) RecordSync(t time.Time) error {
	r.stamps = append(r.stamps, t)
	return nil
}

func newTestEngine(rec *stubRecorder, baseURL string) *Engine {
	e := NewEngine(rec, zerolog.Nop())
	e.newClient = func(_, apiKey string) *Client { return NewClient(baseURL, apiKey) }
	e.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	return e
}

func pushableState() model.AppState {
	state := model.DefaultAppState()
	state.SyncConfig = model.SyncConfig{Enabled: true, RemoteURL: "ignored", RemoteKey: "secret-key"}
	state.Clients = []model.Client{{
		ID: "c1", Name: "Constructora Andina", NIT: "901234567-1", ContactPerson: "Laura Pérez",
	}}
	state.Quotes = []model.Quote{{
		ID: "q1", Number: "COT-101", ClientID: "c1", Date: "2026-08-15",
		Status: model.StatusSent,
		Total:  decimal.NewFromInt(333200),
	}}
	return state
}

func TestPushUploadsBothCollections(t *testing.T) {
	var gotClients []remoteClient
	var gotQuotes []remoteQuote
	var clientHeaders http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		switch r.URL.Path {
		case "/rest/v1/clients":
			clientHeaders = r.Header.Clone()
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotClients))
		case "/rest/v1/quotes":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotQuotes))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	rec := &stubRecorder{}
	e := newTestEngine(rec, srv.URL)
	e.Push(context.Background(), pushableState())

	require.Len(t, gotClients, 1)
	assert.Equal(t, "Constructora Andina", gotClients[0].Name)
	assert.Equal(t, "Laura Pérez", gotClients[0].ContactPerson)

	require.Len(t, gotQuotes, 1)
	assert.Equal(t, "q1", gotQuotes[0].ID)
	assert.Equal(t, "c1", gotQuotes[0].ClientID)
	assert.Equal(t, "COT-101", gotQuotes[0].Data.Number)

	assert.Equal(t, "secret-key", clientHeaders.Get("apikey"))
	assert.Equal(t, "Bearer secret-key", clientHeaders.Get("Authorization"))
	assert.Equal(t, "resolution=merge-duplicates", clientHeaders.Get("Prefer"))

	require.Len(t, rec.stamps, 1)
}

func TestPushOneFailureDoesNotBlockTheOther(t *testing.T) {
	var quotesUpserts int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/clients":
			http.Error(w, "boom", http.StatusInternalServerError)
		case "/rest/v1/quotes":
			atomic.AddInt32(&quotesUpserts, 1)
			w.WriteHeader(http.StatusCreated)
		}
	}))
	defer srv.Close()

	rec := &stubRecorder{}
	e := newTestEngine(rec, srv.URL)
	e.Push(context.Background(), pushableState())

	assert.Equal(t, int32(1), atomic.LoadInt32(&quotesUpserts))

	// The marker advances even after a partial failure.
	require.Len(t, rec.stamps, 1)
	assert.True(t, rec.stamps[0].Equal(e.now()))
}

func TestPushSkipsEmptyCollections(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	state := model.DefaultAppState()
	state.SyncConfig = model.SyncConfig{Enabled: true, RemoteURL: "ignored", RemoteKey: "k"}

	rec := &stubRecorder{}
	e := newTestEngine(rec, srv.URL)
	e.Push(context.Background(), state)

	assert.Zero(t, atomic.LoadInt32(&requests))
	assert.Empty(t, rec.stamps, "no marker without any upsert")
}

func TestPushDoesNothingWhenDisabled(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer srv.Close()

	state := pushableState()
	state.SyncConfig.Enabled = false

	rec := &stubRecorder{}
	e := newTestEngine(rec, srv.URL)
	e.Push(context.Background(), state)

	assert.Zero(t, atomic.LoadInt32(&requests))
	assert.Empty(t, rec.stamps)
}

func TestPullTranslatesRemoteShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/rest/v1/clients":
			json.NewEncoder(w).Encode([]remoteClient{{
				ID: "c1", Name: "Hotel Caribe", NIT: "800555444-3", ContactPerson: "Andrés Gómez",
			}})
		case "/rest/v1/quotes":
			json.NewEncoder(w).Encode([]remoteQuote{{
				ID: "q1", ClientID: "c1",
				Data: model.Quote{ID: "q1", Number: "COT-102", ClientID: "c1", Status: model.StatusApproved},
			}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	e := newTestEngine(&stubRecorder{}, srv.URL)
	cfg := model.SyncConfig{Enabled: true, RemoteURL: "ignored", RemoteKey: "k"}

	partial, err := e.Pull(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, partial.Clients, 1)
	assert.Equal(t, "Hotel Caribe", partial.Clients[0].Name)
	assert.Equal(t, "Andrés Gómez", partial.Clients[0].ContactPerson)

	require.Len(t, partial.Quotes, 1)
	assert.Equal(t, "COT-102", partial.Quotes[0].Number)
	assert.Equal(t, model.StatusApproved, partial.Quotes[0].Status)
}

func TestPullFailureSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/rest/v1/clients" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	e := newTestEngine(&stubRecorder{}, srv.URL)
	cfg := model.SyncConfig{Enabled: true, RemoteURL: "ignored", RemoteKey: "k"}

	_, err := e.Pull(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pulling clients")
}

func TestPullNotConfigured(t *testing.T) {
	e := NewEngine(&stubRecorder{}, zerolog.Nop())

	_, err := e.Pull(context.Background(), model.SyncConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClientRetriesAfterRateLimit(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	err := c.Upsert(context.Background(), collectionClients, []remoteClient{{ID: "c1"}})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}
