package domain

// Address is a saved delivery address. At most one address in a book is
// the default; a non-empty book always has exactly one after a mutation
// completes.
type Address struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Street       string `json:"street"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	IsDefault    bool   `json:"isDefault"`
}

// AddressSnapshot is the frozen copy of an address stored on an order.
// It is independent of the address book; removing or editing the source
// address never changes order history.
type AddressSnapshot struct {
	Label        string `json:"label"`
	Street       string `json:"street"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode,omitempty"`
}

// Snapshot copies the display fields into an order-bound snapshot.
func (a Address) Snapshot() AddressSnapshot {
	return AddressSnapshot{
		Label:        a.Label,
		Street:       a.Street,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
	}
}
