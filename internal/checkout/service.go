// Package checkout confirms an order: it reads the cart, resolves the
// delivery address and payment method, records the order and clears the
// cart.
package checkout

import (
	"errors"

	"github.com/shopspring/decimal"

	"fooddelivery-api/internal/address"
	"fooddelivery-api/internal/cart"
	"fooddelivery-api/internal/domain"
	"fooddelivery-api/internal/order"
	"fooddelivery-api/internal/payment"
)

var (
	// ErrEmptyCart is returned when confirming with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoAddress is returned when no delivery address could be resolved.
	ErrNoAddress = errors.New("delivery address required")
	// ErrNoPayment is returned when the payment method is missing or unknown.
	ErrNoPayment = errors.New("payment method required")
)

// Service wires the four state domains together for the confirmation
// flow. The domains themselves stay independent; only this service
// reads across them.
type Service struct {
	cart        *cart.Ledger
	addresses   *address.Book
	payments    *payment.Vault
	orders      *order.Ledger
	deliveryFee decimal.Decimal
}

// New builds a Service charging the given delivery fee per order.
func New(cartLedger *cart.Ledger, book *address.Book, vault *payment.Vault, orders *order.Ledger, deliveryFee decimal.Decimal) *Service {
	return &Service{
		cart:        cartLedger,
		addresses:   book,
		payments:    vault,
		orders:      orders,
		deliveryFee: deliveryFee,
	}
}

// ConfirmInput selects the address and payment for the order. An empty
// AddressID falls back to the book's default address. PaymentMethodID
// may name a saved card or one of the fixed methods.
type ConfirmInput struct {
	AddressID       string
	PaymentMethodID string
	ChangeFor       string
	Observations    string
}

// Confirm places the order and clears the cart. The order stores
// independent snapshots of the cart items, address and payment, so later
// edits to those collections never rewrite history.
func (s *Service) Confirm(in ConfirmInput) (domain.Order, error) {
	entries := s.cart.Items()
	if len(entries) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	addr, err := s.resolveAddress(in.AddressID)
	if err != nil {
		return domain.Order{}, err
	}

	pay, err := s.resolvePayment(in.PaymentMethodID, in.ChangeFor)
	if err != nil {
		return domain.Order{}, err
	}

	items := make([]domain.OrderItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, domain.OrderItem{
			ID:    e.Item.ID,
			Name:  e.Item.Name,
			Price: e.Item.Price,
			Qty:   e.Quantity,
		})
	}

	subtotal := s.cart.Total()
	placed := s.orders.Add(order.Input{
		Items:        items,
		Subtotal:     subtotal,
		DeliveryFee:  s.deliveryFee,
		Total:        subtotal.Add(s.deliveryFee),
		Address:      addr.Snapshot(),
		Payment:      pay,
		Observations: in.Observations,
	})

	s.cart.Clear()
	return placed, nil
}

func (s *Service) resolveAddress(id string) (domain.Address, error) {
	if id == "" {
		def := s.addresses.DefaultAddress()
		if def == nil {
			return domain.Address{}, ErrNoAddress
		}
		return *def, nil
	}
	addr, err := s.addresses.Get(id)
	if err != nil {
		return domain.Address{}, ErrNoAddress
	}
	return addr, nil
}

func (s *Service) resolvePayment(id, changeFor string) (domain.PaymentSnapshot, error) {
	if id == "" {
		return domain.PaymentSnapshot{}, ErrNoPayment
	}
	if fixed, ok := payment.FixedMethod(id); ok {
		snap := domain.PaymentSnapshot{Method: fixed.Type, Name: fixed.Name}
		if fixed.ID == "money" {
			snap.ChangeFor = changeFor
		}
		return snap, nil
	}
	card, err := s.payments.Get(id)
	if err != nil {
		return domain.PaymentSnapshot{}, ErrNoPayment
	}
	return domain.PaymentSnapshot{Method: card.Type, Name: card.Name}, nil
}
