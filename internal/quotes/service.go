// Package quotes implements the quote lifecycle: creation with frozen
// totals, guarded status changes, and the approval protocol that keeps at
// most one Approved quote per client.
package quotes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitec-sas/gestion/internal/finance"
	"github.com/sitec-sas/gestion/internal/model"
)

var (
	// ErrNotFound is returned when no quote has the given id.
	ErrNotFound = errors.New("quote not found")

	// ErrApproved guards sticky Approved quotes: they cannot be deleted
	// and their status only changes through the approval protocol.
	ErrApproved = errors.New("quote is approved")

	// ErrUseApprove is returned when SetStatus targets Approved, which
	// is only reachable through Approve.
	ErrUseApprove = errors.New("approving requires the approval protocol")

	// ErrUnknownClient is returned when a quote references a client that
	// does not exist.
	ErrUnknownClient = errors.New("unknown client")

	// ErrNoServiceTypes is returned when a quote covers no service type.
	ErrNoServiceTypes = errors.New("at least one service type is required")
)

// Confirmer asks the user a yes/no question. The CLI backs it with an
// interactive prompt; tests use stubs.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(message string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(message string) (bool, error) { return f(message) }

// Store is the slice of the local store the lifecycle needs.
type Store interface {
	State() model.AppState
	Commit(ctx context.Context, next model.AppState) error
}

// Service drives quote mutations through the store. Every operation
// builds the next full AppState and commits it as a whole.
type Service struct {
	store Store

	now   func() time.Time
	newID func() string
}

// NewService creates a lifecycle service over the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// CreateInput carries everything the quote builder collects.
type CreateInput struct {
	ClientID     string
	ServiceTypes []model.ServiceType
	Items        []model.QuoteItem
	LaborCost    decimal.Decimal

	// Observations and CommercialConditions default to the company
	// boilerplate when left empty.
	Observations         string
	CommercialConditions string
}

// Create builds a new quote with totals computed once and frozen, a UUID
// identity, a COT display number derived from the current quote count,
// and an initial status of Sent. The quote is prepended to the
// collection and committed.
func (s *Service) Create(ctx context.Context, in CreateInput) (model.Quote, error) {
	state := s.store.State()

	if _, ok := state.ClientByID(in.ClientID); !ok {
		return model.Quote{}, fmt.Errorf("%w: %s", ErrUnknownClient, in.ClientID)
	}
	if len(in.ServiceTypes) == 0 {
		return model.Quote{}, ErrNoServiceTypes
	}

	items := make([]model.QuoteItem, len(in.Items))
	for i, it := range in.Items {
		if it.ID == "" {
			it.ID = s.newID()
		}
		items[i] = it
	}

	totals := finance.ComputeTotals(items, in.LaborCost)

	observations := in.Observations
	if observations == "" {
		observations = model.DefaultQuoteObservations
	}
	conditions := in.CommercialConditions
	if conditions == "" {
		conditions = model.DefaultCommercialConditions
	}

	q := model.Quote{
		ID:                   s.newID(),
		Number:               fmt.Sprintf("COT-%d", 101+len(state.Quotes)),
		ClientID:             in.ClientID,
		Date:                 s.now().Format("2006-01-02"),
		ServiceTypes:         in.ServiceTypes,
		Items:                items,
		LaborCost:            in.LaborCost,
		SubtotalItems:        totals.SubtotalItems,
		SubtotalGeneral:      totals.SubtotalGeneral,
		IVA:                  totals.IVA,
		Total:                totals.Total,
		Status:               model.StatusSent,
		Observations:         observations,
		CommercialConditions: conditions,
	}

	state.Quotes = append([]model.Quote{q}, state.Quotes...)
	if err := s.store.Commit(ctx, state); err != nil {
		return model.Quote{}, fmt.Errorf("saving quote: %w", err)
	}
	return q, nil
}

// SetStatus updates a quote's status directly. Only Draft, Sent and
// Rejected are reachable this way; Approved requires Approve, and an
// already Approved quote can only change through the approval protocol.
func (s *Service) SetStatus(ctx context.Context, id string, status model.QuoteStatus) error {
	if status == model.StatusApproved {
		return ErrUseApprove
	}

	state := s.store.State()
	idx := quoteIndex(state.Quotes, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if state.Quotes[idx].Status == model.StatusApproved {
		return fmt.Errorf("%w: %s", ErrApproved, state.Quotes[idx].Number)
	}

	state.Quotes[idx].Status = status
	return s.store.Commit(ctx, state)
}

// Approve promotes the quote to Approved, keeping the invariant of at
// most one Approved quote per client. When another quote of the same
// client is already Approved, the confirmer is asked to authorize
// replacing it; on confirmation the old quote is demoted to Sent and the
// new one promoted, atomically in a single commit. On refusal nothing
// changes.
//
// The returned bool reports whether the quote ended up Approved; a
// refusal is not an error.
func (s *Service) Approve(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	state := s.store.State()
	idx := quoteIndex(state.Quotes, id)
	if idx < 0 {
		return false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	target := state.Quotes[idx]
	if target.Status == model.StatusApproved {
		return true, nil
	}

	prevIdx := -1
	for i, q := range state.Quotes {
		if q.ClientID == target.ClientID && q.Status == model.StatusApproved && q.ID != target.ID {
			prevIdx = i
			break
		}
	}

	if prevIdx >= 0 {
		msg := fmt.Sprintf(
			"El cliente ya tiene una cotización aprobada (%s). ¿Desea reemplazarla por esta nueva cotización y marcar la anterior como enviada?",
			state.Quotes[prevIdx].Number,
		)
		ok, err := confirm.Confirm(msg)
		if err != nil {
			return false, fmt.Errorf("confirming replacement: %w", err)
		}
		if !ok {
			return false, nil
		}
		state.Quotes[prevIdx].Status = model.StatusSent
	}

	state.Quotes[idx].Status = model.StatusApproved
	if err := s.store.Commit(ctx, state); err != nil {
		return false, fmt.Errorf("saving approval: %w", err)
	}
	return true, nil
}

// Delete removes the quote. Approved quotes cannot be deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	state := s.store.State()
	idx := quoteIndex(state.Quotes, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if state.Quotes[idx].Status == model.StatusApproved {
		return fmt.Errorf("%w: %s", ErrApproved, state.Quotes[idx].Number)
	}

	state.Quotes = append(state.Quotes[:idx], state.Quotes[idx+1:]...)
	return s.store.Commit(ctx, state)
}

func quoteIndex(quotes []model.Quote, id string) int {
	for i, q := range quotes {
		if q.ID == id {
			return i
		}
	}
	return -1
}
