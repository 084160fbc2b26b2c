// Package catalog holds the menu shown to customers. The collection is
// seeded once at startup and read-only afterwards.
package catalog

import (
	"sync"

	"github.com/shopspring/decimal"

	"fooddelivery-api/internal/domain"
)

// Store is an in-memory menu keyed by item id, iterated in insertion
// order for display.
type Store struct {
	mu    sync.RWMutex
	byID  map[string]domain.MenuItem
	order []string
}

// New returns an empty Store.
func New() *Store {
	return &Store{byID: make(map[string]domain.MenuItem)}
}

// Seed returns a Store loaded with the demo menu.
func Seed() *Store {
	s := New()
	s.put(domain.MenuItem{
		ID:          "pizza-catupiry",
		Name:        "Pizza de frango com catupiry",
		Price:       decimal.NewFromInt(90),
		Size:        "G",
		Ingredients: "Mussarela, frango, catupiry, orégano e molho da casa",
		Image:       "https://images.unsplash.com/photo-1513104890138-7c749659a591?q=80&w=1200&auto=format&fit=crop",
	})
	s.put(domain.MenuItem{
		ID:          "x-salada",
		Name:        "X-Salada Clássico",
		Price:       decimal.NewFromInt(12),
		Ingredients: "Blend especial do chefe, alface, tomate, cheddar e molho da casa",
		Image:       "https://images.unsplash.com/photo-1550547660-d9450f859349?q=80&w=1200&auto=format&fit=crop",
	})
	return s
}

func (s *Store) put(item domain.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[item.ID]; !ok {
		s.order = append(s.order, item.ID)
	}
	s.byID[item.ID] = item
}

// List returns the menu in insertion order.
func (s *Store) List() []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.MenuItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.byID[id])
	}
	return items
}

// Get looks up a menu item by id.
func (s *Store) Get(id string) (domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.byID[id]
	if !ok {
		return domain.MenuItem{}, domain.ErrNotFound
	}
	return item, nil
}
