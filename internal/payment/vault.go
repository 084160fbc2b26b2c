// Package payment manages the customer's payment methods: saved cards
// with a single-default invariant plus the two fixed methods (PIX and
// cash) that are always available and never change.
package payment

import (
	"sync"

	"github.com/google/uuid"

	"fooddelivery-api/internal/domain"
)

// The fixed methods come after the saved cards in AllMethods, in this
// order.
var fixedMethods = []domain.FixedPaymentMethod{
	{
		ID:          "pix",
		Type:        "pix",
		Name:        "PIX",
		Icon:        "qr-code-outline",
		Description: "Pagamento instantâneo",
		IsFixed:     true,
	},
	{
		ID:          "money",
		Type:        "money",
		Name:        "Dinheiro",
		Icon:        "cash-outline",
		Description: "Pagamento na entrega",
		IsFixed:     true,
	},
}

// Vault holds the saved cards in insertion order. After any mutation a
// non-empty vault has exactly one default card.
type Vault struct {
	mu    sync.RWMutex
	saved []domain.PaymentMethod
}

// New returns a Vault with no saved cards.
func New() *Vault {
	return &Vault{}
}

// Seed returns a Vault loaded with the demo cards.
func Seed() *Vault {
	return &Vault{saved: []domain.PaymentMethod{
		{
			ID:          uuid.NewString(),
			Type:        domain.CardTypeCredit,
			Name:        "Cartão de Crédito",
			Brand:       "Visa",
			LastDigits:  "1234",
			HolderName:  "MATHEUS E SANTO",
			ExpiryMonth: "12",
			ExpiryYear:  "28",
			IsDefault:   true,
		},
		{
			ID:          uuid.NewString(),
			Type:        domain.CardTypeDebit,
			Name:        "Cartão de Débito",
			Brand:       "Mastercard",
			LastDigits:  "5678",
			HolderName:  "MATHEUS E SANTO",
			ExpiryMonth: "08",
			ExpiryYear:  "27",
		},
	}}
}

// Patch carries partial updates for Update. IsDefault is deliberately
// absent; SetDefault is the only path allowed to move the default flag.
type Patch struct {
	Type        *string
	Name        *string
	HolderName  *string
	ExpiryMonth *string
	ExpiryYear  *string
}

// Add stores a validated card with a fresh id. The first card ever
// saved becomes the default. The caller is expected to have run the
// card through NewCardMethod (or equivalent validation) first.
func (v *Vault) Add(method domain.PaymentMethod) domain.PaymentMethod {
	v.mu.Lock()
	defer v.mu.Unlock()
	method.ID = uuid.NewString()
	method.IsDefault = len(v.saved) == 0
	v.saved = append(v.saved, method)
	return method
}

// Update merges the patch into the matching card.
func (v *Vault) Update(id string, p Patch) (domain.PaymentMethod, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.saved {
		if v.saved[i].ID != id {
			continue
		}
		m := &v.saved[i]
		if p.Type != nil {
			m.Type = *p.Type
		}
		if p.Name != nil {
			m.Name = *p.Name
		}
		if p.HolderName != nil {
			m.HolderName = upperHolder(*p.HolderName)
		}
		if p.ExpiryMonth != nil {
			m.ExpiryMonth = *p.ExpiryMonth
		}
		if p.ExpiryYear != nil {
			m.ExpiryYear = *p.ExpiryYear
		}
		return *m, nil
	}
	return domain.PaymentMethod{}, domain.ErrNotFound
}

// Remove deletes the matching card. When the removed card was the
// default, the first remaining card (insertion order) is promoted.
// Fixed methods cannot be removed; their ids are not part of the saved
// collection and resolve to not-found here.
func (v *Vault) Remove(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	idx := -1
	for i := range v.saved {
		if v.saved[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	v.saved = append(v.saved[:idx], v.saved[idx+1:]...)

	hasDefault := false
	for i := range v.saved {
		if v.saved[i].IsDefault {
			hasDefault = true
			break
		}
	}
	if !hasDefault && len(v.saved) > 0 {
		v.saved[0].IsDefault = true
	}
	return nil
}

// SetDefault flags the matching card as the default and clears the flag
// everywhere else. Unknown ids are a silent no-op.
func (v *Vault) SetDefault(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	found := false
	for i := range v.saved {
		if v.saved[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return
	}
	for i := range v.saved {
		v.saved[i].IsDefault = v.saved[i].ID == id
	}
}

// Saved returns the saved cards in insertion order.
func (v *Vault) Saved() []domain.PaymentMethod {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]domain.PaymentMethod, len(v.saved))
	copy(out, v.saved)
	return out
}

// Get looks up a saved card by id.
func (v *Vault) Get(id string) (domain.PaymentMethod, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, m := range v.saved {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.PaymentMethod{}, domain.ErrNotFound
}

// FixedMethods returns the constant methods (PIX, cash).
func FixedMethods() []domain.FixedPaymentMethod {
	out := make([]domain.FixedPaymentMethod, len(fixedMethods))
	copy(out, fixedMethods)
	return out
}

// FixedMethod looks up a fixed method by id.
func FixedMethod(id string) (domain.FixedPaymentMethod, bool) {
	for _, m := range fixedMethods {
		if m.ID == id {
			return m, true
		}
	}
	return domain.FixedPaymentMethod{}, false
}

// DefaultMethod returns the flagged card, falling back to the first
// saved card when no flag is set, or nil when there are no saved cards.
// The fallback is view-only: it does not repair the stored flag.
func (v *Vault) DefaultMethod() *domain.PaymentMethod {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, m := range v.saved {
		if m.IsDefault {
			method := m
			return &method
		}
	}
	if len(v.saved) > 0 {
		method := v.saved[0]
		return &method
	}
	return nil
}
