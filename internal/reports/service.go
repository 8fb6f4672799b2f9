// Package reports creates execution reports for completed site visits.
// Reports are immutable once created.
package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sitec-sas/gestion/internal/model"
)

var (
	// ErrUnknownVisit is returned when the referenced visit does not exist.
	ErrUnknownVisit = errors.New("unknown visit")

	// ErrQuoteNotApproved is returned when the linked quote is not
	// Approved at selection time. The link is never re-validated later.
	ErrQuoteNotApproved = errors.New("linked quote is not approved")

	// ErrActivitiesRequired is returned when the activities text is empty.
	ErrActivitiesRequired = errors.New("activities description is required")
)

// Store is the slice of the local store the report service needs.
type Store interface {
	State() model.AppState
	Commit(ctx context.Context, next model.AppState) error
}

// Service creates execution reports.
type Service struct {
	store Store

	now   func() time.Time
	newID func() string
}

// NewService creates a report service over the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// CreateInput carries the report form fields. QuoteID is optional.
type CreateInput struct {
	VisitID             string
	QuoteID             string
	Activities          string
	EquipmentIntervened string
	Observations        string
	WarrantyMonths      int
}

// Create builds a report for the visit, copying the visit's client and
// defaulting the warranty to twelve months. A linked quote must be
// Approved at this moment.
func (s *Service) Create(ctx context.Context, in CreateInput) (model.ExecutionReport, error) {
	if in.Activities == "" {
		return model.ExecutionReport{}, ErrActivitiesRequired
	}

	state := s.store.State()

	visit, ok := state.VisitByID(in.VisitID)
	if !ok {
		return model.ExecutionReport{}, fmt.Errorf("%w: %s", ErrUnknownVisit, in.VisitID)
	}

	if in.QuoteID != "" {
		q, ok := state.QuoteByID(in.QuoteID)
		if !ok || q.Status != model.StatusApproved {
			return model.ExecutionReport{}, fmt.Errorf("%w: %s", ErrQuoteNotApproved, in.QuoteID)
		}
	}

	warranty := in.WarrantyMonths
	if warranty == 0 {
		warranty = 12
	}

	r := model.ExecutionReport{
		ID:                  s.newID(),
		VisitID:             visit.ID,
		ClientID:            visit.ClientID,
		QuoteID:             in.QuoteID,
		Date:                s.now().Format("2006-01-02"),
		Activities:          in.Activities,
		EquipmentIntervened: in.EquipmentIntervened,
		Observations:        in.Observations,
		WarrantyMonths:      warranty,
	}

	state.Reports = append([]model.ExecutionReport{r}, state.Reports...)
	if err := s.store.Commit(ctx, state); err != nil {
		return model.ExecutionReport{}, fmt.Errorf("saving report: %w", err)
	}
	return r, nil
}

// Summary renders the pre-formatted text block handed to the print
// renderer.
func Summary(state model.AppState, r model.ExecutionReport) string {
	clientName := r.ClientID
	if c, ok := state.ClientByID(r.ClientID); ok {
		clientName = c.Name
	}
	out := fmt.Sprintf("CLIENTE: %s\nFECHA: %s\n", clientName, r.Date)
	if q, ok := state.QuoteByID(r.QuoteID); ok {
		out += fmt.Sprintf("COTIZACIÓN ASOCIADA: %s\n", q.Number)
	}
	out += fmt.Sprintf("\nACTIVIDADES REALIZADAS:\n%s", r.Activities)
	return out
}
