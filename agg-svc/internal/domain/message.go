package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated = "order_created"
	EventOrderRated   = "order_rated"
	EventOrderDeleted = "order_deleted"
)

// Counter fields of the analytics:orders hash.
const (
	CounterCreated = "created"
	CounterDeleted = "deleted"
)

type EventItem struct {
	FoodID   int `json:"food_id"`
	Quantity int `json:"quantity"`
}

// OrderEvent is the message order-svc publishes on the orders topic.
type OrderEvent struct {
	EventID   string          `json:"event_id"`
	Type      string          `json:"type"`
	OrderID   int             `json:"order_id"`
	UserID    int             `json:"user_id"`
	Rating    *int            `json:"rating,omitempty"`
	Items     []EventItem     `json:"items,omitempty"`
	Total     decimal.Decimal `json:"total"`
	Timestamp time.Time       `json:"timestamp"`
}
