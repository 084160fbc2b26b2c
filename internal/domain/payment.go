package domain

// Card types accepted by the vault.
const (
	CardTypeCredit = "credit"
	CardTypeDebit  = "debit"
)

// PaymentMethod is a saved card. Only the last four digits of the number
// are kept. The single-default invariant mirrors the address book, scoped
// to saved methods only.
type PaymentMethod struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	LastDigits  string `json:"lastDigits"`
	HolderName  string `json:"holderName"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	IsDefault   bool   `json:"isDefault"`
}

// FixedPaymentMethod is one of the always-available methods (PIX, cash).
// Fixed methods are constants: never created, edited or removed at
// runtime, and they carry no default semantics.
type FixedPaymentMethod struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	IsFixed     bool   `json:"isFixed"`
}

// PaymentSnapshot is the frozen payment summary stored on an order.
type PaymentSnapshot struct {
	Method    string `json:"method"`
	Name      string `json:"name"`
	ChangeFor string `json:"changeFor,omitempty"`
}
