package model

// Client is a customer record. Deleting a client does not cascade to
// quotes or reports that reference it; stale references keep working as
// plain strings.
type Client struct {
	// ID is the stable opaque identifier used as the sync key.
	ID string `json:"id"`

	// Name is the company or person name.
	Name string `json:"name"`

	// NIT is the Colombian tax identification number.
	NIT string `json:"nit"`

	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	// ContactPerson is the optional named contact at the client.
	ContactPerson string `json:"contactPerson,omitempty"`
}
