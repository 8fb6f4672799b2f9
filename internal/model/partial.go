package model

// PartialState carries the collections a remote pull actually returned.
// A nil slice means the collection was absent from the response and the
// local value must be kept; an empty non-nil slice is a real (empty)
// remote collection.
type PartialState struct {
	Clients     []Client
	Technicians []Technician
	Quotes      []Quote
	Visits      []Visit
	Reports     []ExecutionReport
	Maintenance []MaintenanceAlert
}

// IsEmpty reports whether the pull returned no collections at all.
func (p PartialState) IsEmpty() bool {
	return p.Clients == nil && p.Technicians == nil && p.Quotes == nil &&
		p.Visits == nil && p.Reports == nil && p.Maintenance == nil
}
