package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated = "order_created"
	EventOrderRated   = "order_rated"
	EventOrderDeleted = "order_deleted"
)

type EventItem struct {
	FoodID   int `json:"food_id"`
	Quantity int `json:"quantity"`
}

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

func newEvent(eventType string, orderID, userID int) OrderEvent {
	return OrderEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		OrderID:   orderID,
		UserID:    userID,
		Timestamp: time.Now(),
	}
}

func NewOrderCreatedEvent(order *Order) OrderEvent {
	event := newEvent(EventOrderCreated, order.ID, order.UserID)
	event.Items = lo.Map(order.Lines(), func(line OrderLine, _ int) EventItem {
		return EventItem{FoodID: line.Food.ID, Quantity: line.Quantity}
	})
	event.Total = order.Total()
	return event
}

func NewOrderRatedEvent(orderID, userID, rating int) OrderEvent {
	event := newEvent(EventOrderRated, orderID, userID)
	event.Rating = &rating
	return event
}

func NewOrderDeletedEvent(orderID, userID int) OrderEvent {
	return newEvent(EventOrderDeleted, orderID, userID)
}
