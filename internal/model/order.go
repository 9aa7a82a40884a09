package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks fulfilment progress. Progression is forward-only;
// this system only ever assigns StatusPending, the rest belong to an
// external fulfilment process.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// Next returns the following status in the forward progression, or the
// status itself if it is terminal.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case StatusPending:
		return StatusProcessing
	case StatusProcessing:
		return StatusShipped
	case StatusShipped:
		return StatusDelivered
	default:
		return s
	}
}

// ShippingAddress is the flat address attached to an order.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Order is an immutable record of a completed checkout. Items is a
// snapshot copy taken at creation time; later cart mutations never
// affect a placed order.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	UserID          string          `json:"userId"`
	Items           []CartItem      `json:"items"`
	Total           float64         `json:"total"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
}
