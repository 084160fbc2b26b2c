package domain

// CartEntry pairs a menu item with the quantity currently in the cart.
// Quantity is always >= 1; an entry that would drop to zero is removed
// from the ledger instead.
type CartEntry struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}
