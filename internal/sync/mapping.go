package sync

import "github.com/sitec-sas/gestion/internal/model"

// Remote collection names. Clients and quotes are the collections
// replicated today; the remote schema uses snake_case field names.
const (
	collectionClients = "clients"
	collectionQuotes  = "quotes"
)

// remoteClient is the remote-schema shape of a client record.
type remoteClient struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NIT           string `json:"nit"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ContactPerson string `json:"contact_person"`
}

// remoteQuote wraps the full local quote record as an opaque nested
// document: the remote schema only needs the identity and the client
// reference for querying, not the quote's internal shape.
type remoteQuote struct {
	ID       string      `json:"id"`
	ClientID string      `json:"client_id"`
	Data     model.Quote `json:"data"`
}

func toRemoteClients(clients []model.Client) []remoteClient {
	out := make([]remoteClient, len(clients))
	for i, c := range clients {
		out[i] = remoteClient{
			ID:            c.ID,
			Name:          c.Name,
			NIT:           c.NIT,
			Address:       c.Address,
			Phone:         c.Phone,
			Email:         c.Email,
			ContactPerson: c.ContactPerson,
		}
	}
	return out
}

func fromRemoteClients(records []remoteClient) []model.Client {
	out := make([]model.Client, len(records))
	for i, r := range records {
		out[i] = model.Client{
			ID:            r.ID,
			Name:          r.Name,
			NIT:           r.NIT,
			Address:       r.Address,
			Phone:         r.Phone,
			Email:         r.Email,
			ContactPerson: r.ContactPerson,
		}
	}
	return out
}

func toRemoteQuotes(quotes []model.Quote) []remoteQuote {
	out := make([]remoteQuote, len(quotes))
	for i, q := range quotes {
		out[i] = remoteQuote{ID: q.ID, ClientID: q.ClientID, Data: q}
	}
	return out
}

func fromRemoteQuotes(records []remoteQuote) []model.Quote {
	out := make([]model.Quote, len(records))
	for i, r := range records {
		out[i] = r.Data
	}
	return out
}
