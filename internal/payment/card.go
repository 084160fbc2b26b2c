package payment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fooddelivery-api/internal/domain"
)

// Card validation rejection reasons, surfaced to the caller for display
// as user-facing messages.
var (
	ErrMissingHolderName = errors.New("holder name required")
	ErrInvalidCardNumber = errors.New("card number must have 13 to 19 digits")
	ErrInvalidExpiry     = errors.New("expiry date missing or invalid")
	ErrCardExpired       = errors.New("card is expired")
	ErrInvalidCVV        = errors.New("cvv must have 3 or 4 digits")
)

// Recognized card brands, inferred from the leading digit.
const (
	BrandVisa       = "Visa"
	BrandMastercard = "Mastercard"
	BrandAmex       = "American Express"
	BrandElo        = "Elo"
	BrandOther      = "Outros"
)

// CardInput is the raw card form as entered by the customer.
type CardInput struct {
	Type        string
	CardNumber  string
	HolderName  string
	ExpiryMonth string
	ExpiryYear  string
	CVV         string
}

// NewCardMethod validates the form against the given clock and builds
// the method to be saved: brand inferred from the number, only the last
// four digits kept, holder name upper-cased. The full number and CVV
// never leave this function.
func NewCardMethod(in CardInput, now time.Time) (domain.PaymentMethod, error) {
	holder := strings.TrimSpace(in.HolderName)
	if holder == "" {
		return domain.PaymentMethod{}, ErrMissingHolderName
	}

	number := cleanNumber(in.CardNumber)
	if !allDigits(number) || len(number) < 13 || len(number) > 19 {
		return domain.PaymentMethod{}, ErrInvalidCardNumber
	}

	if in.ExpiryMonth == "" || in.ExpiryYear == "" {
		return domain.PaymentMethod{}, ErrInvalidExpiry
	}
	expired, err := IsExpired(in.ExpiryMonth, in.ExpiryYear, now)
	if err != nil {
		return domain.PaymentMethod{}, ErrInvalidExpiry
	}
	if expired {
		return domain.PaymentMethod{}, ErrCardExpired
	}

	if !allDigits(in.CVV) || len(in.CVV) < 3 || len(in.CVV) > 4 {
		return domain.PaymentMethod{}, ErrInvalidCVV
	}

	cardType := in.Type
	if cardType != domain.CardTypeDebit {
		cardType = domain.CardTypeCredit
	}
	name := "Cartão de Crédito"
	if cardType == domain.CardTypeDebit {
		name = "Cartão de Débito"
	}

	return domain.PaymentMethod{
		Type:        cardType,
		Name:        name,
		Brand:       DetectBrand(number),
		LastDigits:  number[len(number)-4:],
		HolderName:  upperHolder(holder),
		ExpiryMonth: in.ExpiryMonth,
		ExpiryYear:  in.ExpiryYear,
	}, nil
}

// DetectBrand infers the card brand from the leading digit of the
// cleaned number.
func DetectBrand(number string) string {
	switch {
	case strings.HasPrefix(number, "4"):
		return BrandVisa
	case strings.HasPrefix(number, "5"):
		return BrandMastercard
	case strings.HasPrefix(number, "3"):
		return BrandAmex
	case strings.HasPrefix(number, "6"):
		return BrandElo
	default:
		return BrandOther
	}
}

// IsExpired reports whether a card with the given two-digit expiry
// month and year (interpreted as 20YY) is expired at the given time.
// The card counts as expired once the first day of its expiry month is
// strictly before now.
func IsExpired(month, year string, now time.Time) (bool, error) {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return false, fmt.Errorf("invalid expiry month %q", month)
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < 0 || y > 99 {
		return false, fmt.Errorf("invalid expiry year %q", year)
	}
	expiry := time.Date(2000+y, time.Month(m), 1, 0, 0, 0, 0, now.Location())
	return expiry.Before(now), nil
}

// FormatCardNumber groups the digits in blocks of four for display.
func FormatCardNumber(number string) string {
	number = cleanNumber(number)
	var b strings.Builder
	for i, r := range number {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func cleanNumber(number string) string {
	return strings.ReplaceAll(number, " ", "")
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func upperHolder(holder string) string {
	return strings.ToUpper(strings.TrimSpace(holder))
}
