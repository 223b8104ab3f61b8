package service

import (
	"context"
	"time"

	"food-ordering/agg-svc/internal/domain"
	"food-ordering/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
	ClearProcessed(ctx context.Context, eventID string) error
	RecordOrderCreated(ctx context.Context, day time.Time, items []domain.EventItem) error
	RecordRating(ctx context.Context, orderID, rating int) error
	RecordOrderDeleted(ctx context.Context, orderID int) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, msg domain.OrderEvent)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
