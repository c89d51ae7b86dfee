package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order event types published to the broker.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the message body published when an order changes.
type OrderEvent struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OrderID    uint            `json:"order_id"`
	UserID     uint            `json:"user_id"`
	Status     OrderStatus     `json:"status"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurred_at"`
}
