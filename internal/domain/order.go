package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusOnTheWay  OrderStatus = "on_the_way"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderItem is one line of an order, snapshotted from the cart at
// checkout time.
type OrderItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
}

// Order is an entry in the order history. Orders are never deleted;
// cancellation is a status transition. Address and payment are
// independent snapshots, not live references.
type Order struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Status       OrderStatus     `json:"status"`
	Items        []OrderItem     `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	DeliveryFee  decimal.Decimal `json:"deliveryFee"`
	Total        decimal.Decimal `json:"total"`
	Address      AddressSnapshot `json:"address"`
	Payment      PaymentSnapshot `json:"payment"`
	Observations string          `json:"observations,omitempty"`
}
