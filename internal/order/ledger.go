// Package order keeps the order history and runs the status lifecycle.
// Orders are never deleted; cancelling is a transition, not a removal.
package order

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fooddelivery-api/internal/domain"
)

// ErrInvalidTransition is returned when a status update would move an
// order backwards or out of a terminal state.
var ErrInvalidTransition = errors.New("invalid status transition")

// statusRank orders the forward lifecycle. Terminal states have no
// outgoing transitions.
var statusRank = map[domain.OrderStatus]int{
	domain.StatusPending:   0,
	domain.StatusPreparing: 1,
	domain.StatusOnTheWay:  2,
	domain.StatusDelivered: 3,
}

// CanTransition reports whether an order may move from one status to
// another: strictly forward along
// pending → preparing → on_the_way → delivered, with cancellation
// allowed from any non-terminal state.
func CanTransition(from, to domain.OrderStatus) bool {
	if from == domain.StatusDelivered || from == domain.StatusCancelled {
		return false
	}
	if to == domain.StatusCancelled {
		return true
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// Input carries the caller-supplied fields for Add. Id, date and status
// are never taken from the caller; Add assigns them.
type Input struct {
	Items        []domain.OrderItem
	Subtotal     decimal.Decimal
	DeliveryFee  decimal.Decimal
	Total        decimal.Decimal
	Address      domain.AddressSnapshot
	Payment      domain.PaymentSnapshot
	Observations string
}

// Ledger is the in-memory order history, most recent first.
type Ledger struct {
	mu     sync.RWMutex
	orders []domain.Order
	now    func() time.Time
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{now: time.Now}
}

// Seed returns a Ledger loaded with the demo history.
func Seed() *Ledger {
	l := New()
	l.orders = []domain.Order{
		{
			ID:     "1001",
			Date:   time.Date(2025, time.November, 10, 19, 30, 0, 0, time.Local),
			Status: domain.StatusDelivered,
			Items: []domain.OrderItem{
				{ID: "pizza-catupiry", Name: "Pizza de frango com catupiry", Price: decimal.NewFromInt(90), Qty: 1},
				{ID: "refrigerante", Name: "Refrigerante Lata", Price: decimal.NewFromInt(5), Qty: 2},
			},
			Subtotal:    decimal.NewFromInt(100),
			DeliveryFee: decimal.NewFromInt(8),
			Total:       decimal.NewFromInt(108),
			Address: domain.AddressSnapshot{
				Label: "Casa", Street: "Rua das Flores, 123", Complement: "Apto 45",
				Neighborhood: "Centro", City: "São Paulo", State: "SP",
			},
			Payment: domain.PaymentSnapshot{Method: "pix", Name: "PIX"},
		},
		{
			ID:     "1002",
			Date:   time.Date(2025, time.November, 9, 20, 15, 0, 0, time.Local),
			Status: domain.StatusDelivered,
			Items: []domain.OrderItem{
				{ID: "x-salada", Name: "X-Salada Clássico", Price: decimal.NewFromInt(12), Qty: 2},
				{ID: "suco-natural", Name: "Suco Natural", Price: decimal.NewFromInt(8), Qty: 1},
			},
			Subtotal:    decimal.NewFromInt(32),
			DeliveryFee: decimal.NewFromInt(8),
			Total:       decimal.NewFromInt(40),
			Address: domain.AddressSnapshot{
				Label: "Trabalho", Street: "Av. Paulista, 1000", Complement: "Sala 801",
				Neighborhood: "Bela Vista", City: "São Paulo", State: "SP",
			},
			Payment: domain.PaymentSnapshot{Method: "credit", Name: "Cartão de Crédito"},
		},
		{
			ID:     "1003",
			Date:   time.Date(2025, time.November, 8, 18, 45, 0, 0, time.Local),
			Status: domain.StatusCancelled,
			Items: []domain.OrderItem{
				{ID: "pizza-calabresa", Name: "Pizza de calabresa", Price: decimal.NewFromInt(85), Qty: 1},
			},
			Subtotal:    decimal.NewFromInt(85),
			DeliveryFee: decimal.NewFromInt(8),
			Total:       decimal.NewFromInt(93),
			Address: domain.AddressSnapshot{
				Label: "Casa", Street: "Rua das Flores, 123", Complement: "Apto 45",
				Neighborhood: "Centro", City: "São Paulo", State: "SP",
			},
			Payment: domain.PaymentSnapshot{Method: "money", Name: "Dinheiro"},
		},
	}
	return l
}

// Add records a new order with a fresh id, the current time and status
// pending, prepending it so the history stays most-recent-first.
func (l *Ledger) Add(in Input) domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	o := domain.Order{
		ID:           uuid.NewString(),
		Date:         l.now(),
		Status:       domain.StatusPending,
		Items:        copyItems(in.Items),
		Subtotal:     in.Subtotal,
		DeliveryFee:  in.DeliveryFee,
		Total:        in.Total,
		Address:      in.Address,
		Payment:      in.Payment,
		Observations: in.Observations,
	}
	l.orders = append([]domain.Order{o}, l.orders...)
	return o
}

// UpdateStatus moves the matching order to a new status. Backward moves
// and moves out of delivered/cancelled are rejected.
func (l *Ledger) UpdateStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.orders {
		if l.orders[i].ID != id {
			continue
		}
		if !CanTransition(l.orders[i].Status, status) {
			return domain.Order{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, l.orders[i].Status, status)
		}
		l.orders[i].Status = status
		return snapshot(l.orders[i]), nil
	}
	return domain.Order{}, domain.ErrNotFound
}

// Cancel moves the matching order to cancelled.
func (l *Ledger) Cancel(id string) (domain.Order, error) {
	return l.UpdateStatus(id, domain.StatusCancelled)
}

// Reorder places a brand-new order copying the items, amounts, address
// and payment of a past one. The source order is left untouched.
func (l *Ledger) Reorder(id string) (domain.Order, error) {
	l.mu.RLock()
	var src *domain.Order
	for i := range l.orders {
		if l.orders[i].ID == id {
			o := snapshot(l.orders[i])
			src = &o
			break
		}
	}
	l.mu.RUnlock()
	if src == nil {
		return domain.Order{}, domain.ErrNotFound
	}
	return l.Add(Input{
		Items:       src.Items,
		Subtotal:    src.Subtotal,
		DeliveryFee: src.DeliveryFee,
		Total:       src.Total,
		Address:     src.Address,
		Payment:     src.Payment,
	}), nil
}

// Orders returns the history, most recent first.
func (l *Ledger) Orders() []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Order, len(l.orders))
	for i := range l.orders {
		out[i] = snapshot(l.orders[i])
	}
	return out
}

// Get looks up an order by id.
func (l *Ledger) Get(id string) (domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := range l.orders {
		if l.orders[i].ID == id {
			return snapshot(l.orders[i]), nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

func snapshot(o domain.Order) domain.Order {
	o.Items = copyItems(o.Items)
	return o
}

func copyItems(items []domain.OrderItem) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	copy(out, items)
	return out
}
