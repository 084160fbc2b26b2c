// Package cart tracks the items the customer has picked and their
// quantities. Entries are keyed by menu item id, one entry per item;
// insertion order is preserved for display.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"fooddelivery-api/internal/domain"
)

// Ledger is the in-memory cart. Count and Total are recomputed from the
// live collection on every read so they can never drift from it.
type Ledger struct {
	mu      sync.RWMutex
	entries map[string]*domain.CartEntry
	order   []string
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{entries: make(map[string]*domain.CartEntry)}
}

// AddItem puts one unit of the item in the cart, incrementing the
// existing entry if the item is already there. It always succeeds.
func (l *Ledger) AddItem(item domain.MenuItem) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if entry, ok := l.entries[item.ID]; ok {
		entry.Quantity++
		return
	}
	l.entries[item.ID] = &domain.CartEntry{Item: item, Quantity: 1}
	l.order = append(l.order, item.ID)
}

// RemoveItem drops the whole entry regardless of quantity. No-op when
// the item is not in the cart.
func (l *Ledger) RemoveItem(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.delete(id)
}

// Increment bumps the quantity of an existing entry. It never creates
// one; unknown ids are a no-op.
func (l *Ledger) Increment(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if entry, ok := l.entries[id]; ok {
		entry.Quantity++
	}
}

// Decrement lowers the quantity of an existing entry, removing it when
// the quantity reaches zero. Unknown ids are a no-op.
func (l *Ledger) Decrement(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.entries[id]
	if !ok {
		return
	}
	entry.Quantity--
	if entry.Quantity <= 0 {
		l.delete(id)
	}
}

// Clear empties the cart. Checkout calls this after placing the order.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make(map[string]*domain.CartEntry)
	l.order = nil
}

func (l *Ledger) delete(id string) {
	if _, ok := l.entries[id]; !ok {
		return
	}
	delete(l.entries, id)
	for i, existing := range l.order {
		if existing == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Items returns the current entries in insertion order.
func (l *Ledger) Items() []domain.CartEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	items := make([]domain.CartEntry, 0, len(l.order))
	for _, id := range l.order {
		items = append(items, *l.entries[id])
	}
	return items
}

// Count is the sum of all quantities in the cart.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count := 0
	for _, entry := range l.entries {
		count += entry.Quantity
	}
	return count
}

// Total is the sum of quantity times unit price over all entries.
func (l *Ledger) Total() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	total := decimal.Zero
	for _, entry := range l.entries {
		line := entry.Item.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		total = total.Add(line)
	}
	return total
}
