// Package sync replicates entity collections between the local store and
// a remote REST backend, one direction at a time. Push is best-effort and
// silent; pull is a foreground operation whose failure is surfaced.
package sync

import (
	"context"
	"errors"
	"fmt"
	gosync "sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sitec-sas/gestion/internal/model"
)

// ErrNotConfigured is returned by Pull when the sync configuration is
// missing the remote URL or key.
var ErrNotConfigured = errors.New("cloud sync is not configured")

// Recorder persists the sync marker after a push completes.
type Recorder interface {
	RecordSync(t time.Time) error
}

// Engine replicates collections against the remote backend addressed by
// the state's SyncConfig.
type Engine struct {
	recorder Recorder
	log      zerolog.Logger

	// newClient and now are swappable for tests.
	newClient func(baseURL, apiKey string) *Client
	now       func() time.Time
}

// NewEngine creates an engine that stamps the sync marker through rec.
func NewEngine(rec Recorder, log zerolog.Logger) *Engine {
	return &Engine{
		recorder:  rec,
		log:       log,
		newClient: NewClient,
		now:       time.Now,
	}
}

// Push uploads every non-empty replicated collection to the remote
// backend. Each collection's upsert is independent: all are issued, all
// are awaited, and one failure never prevents the others. On completion
// the sync marker is advanced even after a partial failure, since retry
// is opportunistic (the next mutation pushes again).
//
// Push never returns an error; network failures are logged and swallowed
// because the local commit is already durable without the cloud copy.
func (e *Engine) Push(ctx context.Context, state model.AppState) {
	cfg := state.SyncConfig
	if !cfg.CanSync() {
		return
	}
	client := e.newClient(cfg.RemoteURL, cfg.RemoteKey)

	type upsert struct {
		collection string
		records    interface{}
		count      int
	}
	var jobs []upsert
	if len(state.Clients) > 0 {
		jobs = append(jobs, upsert{collectionClients, toRemoteClients(state.Clients), len(state.Clients)})
	}
	if len(state.Quotes) > 0 {
		jobs = append(jobs, upsert{collectionQuotes, toRemoteQuotes(state.Quotes), len(state.Quotes)})
	}
	if len(jobs) == 0 {
		return
	}

	var wg gosync.WaitGroup
	failures := make([]error, len(jobs))
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job upsert) {
			defer wg.Done()
			if err := client.Upsert(ctx, job.collection, job.records); err != nil {
				failures[i] = fmt.Errorf("pushing %s: %w", job.collection, err)
				return
			}
			e.log.Debug().
				Str("collection", job.collection).
				Int("records", job.count).
				Msg("pushed collection")
		}(i, job)
	}
	wg.Wait()

	for _, err := range failures {
		if err != nil {
			e.log.Warn().Err(err).Msg("push failed, will retry on next change")
		}
	}

	if err := e.recorder.RecordSync(e.now()); err != nil {
		e.log.Warn().Err(err).Msg("recording sync marker")
	}
}

// Pull downloads the replicated collections concurrently and translates
// them back to the local shape. Unlike Push it is user-initiated and
// expects a definite outcome: any transport rejection fails the whole
// pull. The returned partial state contains only the collections the
// remote responded with; applying it is the caller's decision, behind an
// explicit confirmation.
func (e *Engine) Pull(ctx context.Context, cfg model.SyncConfig) (model.PartialState, error) {
	if cfg.RemoteURL == "" || cfg.RemoteKey == "" {
		return model.PartialState{}, ErrNotConfigured
	}
	client := e.newClient(cfg.RemoteURL, cfg.RemoteKey)

	var (
		wg         gosync.WaitGroup
		rawClients []remoteClient
		rawQuotes  []remoteQuote
		errClients error
		errQuotes  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errClients = client.List(ctx, collectionClients, &rawClients)
	}()
	go func() {
		defer wg.Done()
		errQuotes = client.List(ctx, collectionQuotes, &rawQuotes)
	}()
	wg.Wait()

	if errClients != nil {
		return model.PartialState{}, fmt.Errorf("pulling clients: %w", errClients)
	}
	if errQuotes != nil {
		return model.PartialState{}, fmt.Errorf("pulling quotes: %w", errQuotes)
	}

	e.log.Info().
		Int("clients", len(rawClients)).
		Int("quotes", len(rawQuotes)).
		Msg("pulled remote collections")

	return model.PartialState{
		Clients: fromRemoteClients(rawClients),
		Quotes:  fromRemoteQuotes(rawQuotes),
	}, nil
}
