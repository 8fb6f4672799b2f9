package model

import "time"

// StorageKey is the fixed key under which the AppState snapshot is
// persisted on the device.
const StorageKey = "sitec_app_data"

// SyncConfig holds the remote replication settings. It travels inside the
// AppState so that backups carry the full device configuration.
type SyncConfig struct {
	// Enabled turns on the best-effort push after every commit.
	Enabled bool `json:"enabled"`

	// RemoteURL is the root URL of the remote REST backend.
	RemoteURL string `json:"remoteUrl"`

	// RemoteKey is the API key sent on every request.
	RemoteKey string `json:"remoteKey"`

	// LastSync is when the last push completed (even partially).
	LastSync *time.Time `json:"lastSync,omitempty"`
}

// CanSync reports whether the configuration is complete enough to reach
// the remote backend.
func (c SyncConfig) CanSync() bool {
	return c.Enabled && c.RemoteURL != "" && c.RemoteKey != ""
}

// AppState is the complete local dataset: every entity collection plus
// the sync configuration. Exactly one AppState exists per device; it is
// the unit of persistence, export and import. All values are held by
// value with no back-references.
type AppState struct {
	Clients     []Client           `json:"clients"`
	Technicians []Technician       `json:"technicians"`
	Quotes      []Quote            `json:"quotes"`
	Visits      []Visit            `json:"visits"`
	Reports     []ExecutionReport  `json:"reports"`
	Maintenance []MaintenanceAlert `json:"maintenance"`
	SyncConfig  SyncConfig         `json:"syncConfig"`
}

// DefaultAppState returns the well-defined empty state used when no
// snapshot exists or the persisted payload cannot be parsed.
func DefaultAppState() AppState {
	return AppState{
		Clients:     []Client{},
		Technicians: []Technician{},
		Quotes:      []Quote{},
		Visits:      []Visit{},
		Reports:     []ExecutionReport{},
		Maintenance: []MaintenanceAlert{},
	}
}

// Clone returns a deep copy of the state. Mutating the copy never
// affects the original; quote item slices are copied as well.
func (s AppState) Clone() AppState {
	out := s
	out.Clients = append([]Client(nil), s.Clients...)
	out.Technicians = append([]Technician(nil), s.Technicians...)
	out.Visits = append([]Visit(nil), s.Visits...)
	out.Reports = append([]ExecutionReport(nil), s.Reports...)
	out.Maintenance = append([]MaintenanceAlert(nil), s.Maintenance...)

	out.Quotes = make([]Quote, len(s.Quotes))
	for i, q := range s.Quotes {
		q.Items = append([]QuoteItem(nil), q.Items...)
		q.ServiceTypes = append([]ServiceType(nil), q.ServiceTypes...)
		out.Quotes[i] = q
	}

	if s.SyncConfig.LastSync != nil {
		t := *s.SyncConfig.LastSync
		out.SyncConfig.LastSync = &t
	}
	return out
}

// QuoteByID finds a quote by its UUID identity.
func (s AppState) QuoteByID(id string) (Quote, bool) {
	for _, q := range s.Quotes {
		if q.ID == id {
			return q, true
		}
	}
	return Quote{}, false
}

// ClientByID finds a client by ID.
func (s AppState) ClientByID(id string) (Client, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// VisitByID finds a visit by ID.
func (s AppState) VisitByID(id string) (Visit, bool) {
	for _, v := range s.Visits {
		if v.ID == id {
			return v, true
		}
	}
	return Visit{}, false
}
