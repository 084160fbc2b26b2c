// Package address manages the customer's saved delivery addresses and
// the single-default invariant over them.
package address

import (
	"sync"

	"github.com/google/uuid"

	"fooddelivery-api/internal/domain"
)

// Book holds the saved addresses in insertion order. After any mutation
// a non-empty book has exactly one default address.
type Book struct {
	mu        sync.RWMutex
	addresses []domain.Address
}

// New returns an empty Book.
func New() *Book {
	return &Book{}
}

// Seed returns a Book loaded with the demo addresses.
func Seed() *Book {
	return &Book{addresses: []domain.Address{
		{
			ID:           uuid.NewString(),
			Label:        "Casa",
			Street:       "Rua das Flores, 123",
			Complement:   "Apto 45",
			Neighborhood: "Centro",
			City:         "São Paulo",
			State:        "SP",
			ZipCode:      "01000-000",
			IsDefault:    true,
		},
		{
			ID:           uuid.NewString(),
			Label:        "Trabalho",
			Street:       "Av. Paulista, 1000",
			Complement:   "Sala 801",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
			ZipCode:      "01310-100",
		},
	}}
}

// Input carries the caller-supplied address fields for Add.
type Input struct {
	Label        string
	Street       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
}

// Patch carries partial updates for Update. Nil fields are left
// untouched. IsDefault is deliberately absent; SetDefault is the only
// path allowed to move the default flag.
type Patch struct {
	Label        *string
	Street       *string
	Complement   *string
	Neighborhood *string
	City         *string
	State        *string
	ZipCode      *string
}

// Add appends a new address with a fresh id. The first address ever
// added becomes the default.
func (b *Book) Add(in Input) domain.Address {
	b.mu.Lock()
	defer b.mu.Unlock()
	addr := domain.Address{
		ID:           uuid.NewString(),
		Label:        in.Label,
		Street:       in.Street,
		Complement:   in.Complement,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		IsDefault:    len(b.addresses) == 0,
	}
	b.addresses = append(b.addresses, addr)
	return addr
}

// Update merges the patch into the matching address.
func (b *Book) Update(id string, p Patch) (domain.Address, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.addresses {
		if b.addresses[i].ID != id {
			continue
		}
		addr := &b.addresses[i]
		if p.Label != nil {
			addr.Label = *p.Label
		}
		if p.Street != nil {
			addr.Street = *p.Street
		}
		if p.Complement != nil {
			addr.Complement = *p.Complement
		}
		if p.Neighborhood != nil {
			addr.Neighborhood = *p.Neighborhood
		}
		if p.City != nil {
			addr.City = *p.City
		}
		if p.State != nil {
			addr.State = *p.State
		}
		if p.ZipCode != nil {
			addr.ZipCode = *p.ZipCode
		}
		return *addr, nil
	}
	return domain.Address{}, domain.ErrNotFound
}

// Remove deletes the matching address. When the removed address was the
// default, the first remaining address (insertion order) is promoted so
// a non-empty book never ends up without one.
func (b *Book) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	idx := -1
	for i := range b.addresses {
		if b.addresses[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	b.addresses = append(b.addresses[:idx], b.addresses[idx+1:]...)

	hasDefault := false
	for i := range b.addresses {
		if b.addresses[i].IsDefault {
			hasDefault = true
			break
		}
	}
	if !hasDefault && len(b.addresses) > 0 {
		b.addresses[0].IsDefault = true
	}
	return nil
}

// SetDefault flags the matching address as the default and clears the
// flag everywhere else. Unknown ids are a silent no-op; the existing
// default stays in place.
func (b *Book) SetDefault(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	found := false
	for i := range b.addresses {
		if b.addresses[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return
	}
	for i := range b.addresses {
		b.addresses[i].IsDefault = b.addresses[i].ID == id
	}
}

// List returns the addresses in insertion order.
func (b *Book) List() []domain.Address {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Address, len(b.addresses))
	copy(out, b.addresses)
	return out
}

// Get looks up an address by id.
func (b *Book) Get(id string) (domain.Address, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, addr := range b.addresses {
		if addr.ID == id {
			return addr, nil
		}
	}
	return domain.Address{}, domain.ErrNotFound
}

// DefaultAddress returns the flagged address, falling back to the first
// one when no flag is set, or nil for an empty book. The fallback is
// view-only: it does not repair the stored flag.
func (b *Book) DefaultAddress() *domain.Address {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, addr := range b.addresses {
		if addr.IsDefault {
			a := addr
			return &a
		}
	}
	if len(b.addresses) > 0 {
		a := b.addresses[0]
		return &a
	}
	return nil
}
