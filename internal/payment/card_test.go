package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery-api/internal/domain"
)

var testNow = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.Local)

func validCard() CardInput {
	return CardInput{
		Type:        domain.CardTypeCredit,
		CardNumber:  "4111 1111 1111 1111",
		HolderName:  "Matheus e Santo",
		ExpiryMonth: "12",
		ExpiryYear:  "28",
		CVV:         "123",
	}
}

func TestNewCardMethodHappyPath(t *testing.T) {
	method, err := NewCardMethod(validCard(), testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.CardTypeCredit, method.Type)
	assert.Equal(t, "Cartão de Crédito", method.Name)
	assert.Equal(t, BrandVisa, method.Brand)
	assert.Equal(t, "1111", method.LastDigits)
	assert.Equal(t, "MATHEUS E SANTO", method.HolderName, "holder name is stored upper-cased")
	assert.Empty(t, method.ID, "id is assigned by the vault, not validation")
}

func TestNewCardMethodDebitName(t *testing.T) {
	in := validCard()
	in.Type = domain.CardTypeDebit
	method, err := NewCardMethod(in, testNow)
	require.NoError(t, err)
	assert.Equal(t, "Cartão de Débito", method.Name)
}

func TestNewCardMethodRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CardInput)
		wantErr error
	}{
		{"missing holder", func(in *CardInput) { in.HolderName = "   " }, ErrMissingHolderName},
		{"12 digits", func(in *CardInput) { in.CardNumber = "411111111111" }, ErrInvalidCardNumber},
		{"20 digits", func(in *CardInput) { in.CardNumber = "41111111111111111111" }, ErrInvalidCardNumber},
		{"letters in number", func(in *CardInput) { in.CardNumber = "4111abcd11111111" }, ErrInvalidCardNumber},
		{"missing expiry month", func(in *CardInput) { in.ExpiryMonth = "" }, ErrInvalidExpiry},
		{"missing expiry year", func(in *CardInput) { in.ExpiryYear = "" }, ErrInvalidExpiry},
		{"month out of range", func(in *CardInput) { in.ExpiryMonth = "13" }, ErrInvalidExpiry},
		{"expired card", func(in *CardInput) { in.ExpiryMonth = "07"; in.ExpiryYear = "26" }, ErrCardExpired},
		{"cvv too short", func(in *CardInput) { in.CVV = "12" }, ErrInvalidCVV},
		{"cvv too long", func(in *CardInput) { in.CVV = "12345" }, ErrInvalidCVV},
		{"cvv not digits", func(in *CardInput) { in.CVV = "12a" }, ErrInvalidCVV},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validCard()
			tc.mutate(&in)
			_, err := NewCardMethod(in, testNow)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewCardMethodAccepts16Digits(t *testing.T) {
	in := validCard()
	in.CardNumber = "5500000000000000"
	method, err := NewCardMethod(in, testNow)
	require.NoError(t, err)
	assert.Equal(t, BrandMastercard, method.Brand)
	assert.Equal(t, "0000", method.LastDigits)
}

func TestDetectBrand(t *testing.T) {
	assert.Equal(t, BrandVisa, DetectBrand("4111111111111111"))
	assert.Equal(t, BrandMastercard, DetectBrand("5500000000000000"))
	assert.Equal(t, BrandAmex, DetectBrand("340000000000009"))
	assert.Equal(t, BrandElo, DetectBrand("6362970000457013"))
	assert.Equal(t, BrandOther, DetectBrand("9999999999999999"))
}

func TestIsExpired(t *testing.T) {
	expired, err := IsExpired("07", "26", testNow)
	require.NoError(t, err)
	assert.True(t, expired, "July 2026 is before August 2026")

	expired, err = IsExpired("08", "26", testNow)
	require.NoError(t, err)
	assert.True(t, expired, "first of the current month is strictly before now")

	expired, err = IsExpired("09", "26", testNow)
	require.NoError(t, err)
	assert.False(t, expired)

	_, err = IsExpired("0", "26", testNow)
	assert.Error(t, err)
	_, err = IsExpired("12", "x", testNow)
	assert.Error(t, err)
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "1234 5678 9012 3456", FormatCardNumber("1234567890123456"))
	assert.Equal(t, "1234 5678 9012 3", FormatCardNumber("1234 5678 9012 3"))
}
