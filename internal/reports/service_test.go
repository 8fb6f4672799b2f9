package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitec-sas/gestion/internal/model"
)

type fakeStore struct {
	state model.AppState
}

func (f *fakeStore) State() model.AppState { return f.state.Clone() }

func (f *fakeStore) Commit(_ context.Context, next model.AppState) error {
	f.state = next
	return nil
}

func baseState() model.AppState {
	state := model.DefaultAppState()
	state.Clients = []model.Client{{ID: "c1", Name: "Centro Comercial Río"}}
	state.Visits = []model.Visit{{ID: "v1", ClientID: "c1", Date: "2026-08-20"}}
	state.Quotes = []model.Quote{
		{ID: "q-approved", Number: "COT-101", ClientID: "c1", Status: model.StatusApproved},
		{ID: "q-sent", Number: "COT-102", ClientID: "c1", Status: model.StatusSent},
	}
	return state
}

func TestCreateCopiesClientFromVisit(t *testing.T) {
	fs := &fakeStore{state: baseState()}
	svc := NewService(fs)

	r, err := svc.Create(context.Background(), CreateInput{
		VisitID:    "v1",
		Activities: "Mantenimiento preventivo de cámaras",
	})
	require.NoError(t, err)

	assert.Equal(t, "c1", r.ClientID)
	assert.Equal(t, 12, r.WarrantyMonths)
	require.Len(t, fs.state.Reports, 1)
	assert.Equal(t, r.ID, fs.state.Reports[0].ID)
}

func TestCreateUnknownVisit(t *testing.T) {
	svc := NewService(&fakeStore{state: baseState()})

	_, err := svc.Create(context.Background(), CreateInput{
		VisitID:    "ghost",
		Activities: "algo",
	})
	assert.ErrorIs(t, err, ErrUnknownVisit)
}

func TestCreateRequiresActivities(t *testing.T) {
	svc := NewService(&fakeStore{state: baseState()})

	_, err := svc.Create(context.Background(), CreateInput{VisitID: "v1"})
	assert.ErrorIs(t, err, ErrActivitiesRequired)
}

func TestCreateLinkedQuoteMustBeApproved(t *testing.T) {
	svc := NewService(&fakeStore{state: baseState()})

	_, err := svc.Create(context.Background(), CreateInput{
		VisitID:    "v1",
		QuoteID:    "q-sent",
		Activities: "instalación",
	})
	assert.ErrorIs(t, err, ErrQuoteNotApproved)

	r, err := svc.Create(context.Background(), CreateInput{
		VisitID:    "v1",
		QuoteID:    "q-approved",
		Activities: "instalación",
	})
	require.NoError(t, err)
	assert.Equal(t, "q-approved", r.QuoteID)
}

func TestCreateKeepsExplicitWarranty(t *testing.T) {
	svc := NewService(&fakeStore{state: baseState()})

	r, err := svc.Create(context.Background(), CreateInput{
		VisitID:        "v1",
		Activities:     "cambio de DVR",
		WarrantyMonths: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, r.WarrantyMonths)
}

func TestSummary(t *testing.T) {
	state := baseState()
	r := model.ExecutionReport{
		ClientID:   "c1",
		QuoteID:    "q-approved",
		Date:       "2026-08-21",
		Activities: "Ajuste de lentes y limpieza",
	}

	out := Summary(state, r)
	assert.Contains(t, out, "CLIENTE: Centro Comercial Río")
	assert.Contains(t, out, "FECHA: 2026-08-21")
	assert.Contains(t, out, "COTIZACIÓN ASOCIADA: COT-101")
	assert.Contains(t, out, "Ajuste de lentes y limpieza")
}
