package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery-api/internal/address"
	"fooddelivery-api/internal/cart"
	"fooddelivery-api/internal/domain"
	"fooddelivery-api/internal/order"
	"fooddelivery-api/internal/payment"
)

type fixture struct {
	cart   *cart.Ledger
	book   *address.Book
	vault  *payment.Vault
	orders *order.Ledger
	svc    *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		cart:   cart.New(),
		book:   address.New(),
		vault:  payment.New(),
		orders: order.New(),
	}
	f.svc = New(f.cart, f.book, f.vault, f.orders, decimal.NewFromInt(8))
	return f
}

func (f *fixture) fillCart() {
	f.cart.AddItem(domain.MenuItem{ID: "pizza-catupiry", Name: "Pizza de frango com catupiry", Price: decimal.NewFromInt(90)})
	f.cart.AddItem(domain.MenuItem{ID: "x-salada", Name: "X-Salada Clássico", Price: decimal.NewFromInt(12)})
	f.cart.AddItem(domain.MenuItem{ID: "x-salada", Name: "X-Salada Clássico", Price: decimal.NewFromInt(12)})
}

func TestConfirmRejectsEmptyCart(t *testing.T) {
	f := newFixture(t)
	f.book.Add(address.Input{Label: "Casa"})
	_, err := f.svc.Confirm(ConfirmInput{PaymentMethodID: "pix"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestConfirmRequiresAnAddress(t *testing.T) {
	f := newFixture(t)
	f.fillCart()
	_, err := f.svc.Confirm(ConfirmInput{PaymentMethodID: "pix"})
	assert.ErrorIs(t, err, ErrNoAddress)

	_, err = f.svc.Confirm(ConfirmInput{AddressID: "nope", PaymentMethodID: "pix"})
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestConfirmRequiresAPaymentMethod(t *testing.T) {
	f := newFixture(t)
	f.fillCart()
	f.book.Add(address.Input{Label: "Casa"})

	_, err := f.svc.Confirm(ConfirmInput{})
	assert.ErrorIs(t, err, ErrNoPayment)

	_, err = f.svc.Confirm(ConfirmInput{PaymentMethodID: "nope"})
	assert.ErrorIs(t, err, ErrNoPayment)
}

func TestConfirmPlacesOrderAndClearsCart(t *testing.T) {
	f := newFixture(t)
	f.fillCart()
	addr := f.book.Add(address.Input{Label: "Casa", Street: "Rua das Flores, 123", City: "São Paulo"})

	placed, err := f.svc.Confirm(ConfirmInput{
		AddressID:       addr.ID,
		PaymentMethodID: "pix",
		Observations:    "sem cebola",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, placed.Status)
	require.Len(t, placed.Items, 2)
	assert.Equal(t, "pizza-catupiry", placed.Items[0].ID)
	assert.Equal(t, 1, placed.Items[0].Qty)
	assert.Equal(t, 2, placed.Items[1].Qty)
	assert.True(t, placed.Subtotal.Equal(decimal.NewFromInt(114)), "subtotal = %s", placed.Subtotal)
	assert.True(t, placed.DeliveryFee.Equal(decimal.NewFromInt(8)))
	assert.True(t, placed.Total.Equal(decimal.NewFromInt(122)))
	assert.Equal(t, "Casa", placed.Address.Label)
	assert.Equal(t, "pix", placed.Payment.Method)
	assert.Equal(t, "PIX", placed.Payment.Name)
	assert.Equal(t, "sem cebola", placed.Observations)

	assert.Equal(t, 0, f.cart.Count(), "cart is cleared after checkout")
	assert.Len(t, f.orders.Orders(), 1)
}

func TestConfirmFallsBackToDefaultAddress(t *testing.T) {
	f := newFixture(t)
	f.fillCart()
	f.book.Add(address.Input{Label: "Casa", Street: "Rua das Flores, 123"})
	f.book.Add(address.Input{Label: "Trabalho", Street: "Av. Paulista, 1000"})

	placed, err := f.svc.Confirm(ConfirmInput{PaymentMethodID: "money", ChangeFor: "150"})
	require.NoError(t, err)
	assert.Equal(t, "Casa", placed.Address.Label, "empty address id uses the book default")
	assert.Equal(t, "money", placed.Payment.Method)
	assert.Equal(t, "150", placed.Payment.ChangeFor)
}

func TestConfirmWithSavedCard(t *testing.T) {
	f := newFixture(t)
	f.fillCart()
	f.book.Add(address.Input{Label: "Casa"})
	saved := f.vault.Add(domain.PaymentMethod{
		Type: domain.CardTypeCredit, Name: "Cartão de Crédito", Brand: "Visa", LastDigits: "1234",
	})

	placed, err := f.svc.Confirm(ConfirmInput{PaymentMethodID: saved.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.CardTypeCredit, placed.Payment.Method)
	assert.Equal(t, "Cartão de Crédito", placed.Payment.Name)
	assert.Empty(t, placed.Payment.ChangeFor, "change-for only applies to cash")
}

func TestOrderSnapshotsSurviveLaterMutations(t *testing.T) {
	f := newFixture(t)
	f.fillCart()
	addr := f.book.Add(address.Input{Label: "Casa", Street: "Rua das Flores, 123"})

	placed, err := f.svc.Confirm(ConfirmInput{AddressID: addr.ID, PaymentMethodID: "pix"})
	require.NoError(t, err)

	street := "Rua Nova, 999"
	_, err = f.book.Update(addr.ID, address.Patch{Street: &street})
	require.NoError(t, err)
	require.NoError(t, f.book.Remove(addr.ID))

	kept, err := f.orders.Get(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rua das Flores, 123", kept.Address.Street,
		"editing or deleting the source address must not rewrite history")
}
