package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"food-ordering/agg-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads the orders topic until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Aggregation Service consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.OrderEvent
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, msg)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, msg domain.OrderEvent) {
	switch msg.Type {
	case domain.EventOrderCreated, domain.EventOrderRated, domain.EventOrderDeleted:
	default:
		return
	}

	if msg.EventID != "" {
		fresh, err := c.Store.MarkProcessed(ctx, msg.EventID)
		if err != nil {
			log.Printf("Error checking event %s: %v", msg.EventID, err)
			return
		}
		if !fresh {
			log.Printf("Skipping duplicate event %s", msg.EventID)
			return
		}
	}

	log.Printf("Processing %s: OrderID=%d, UserID=%d", msg.Type, msg.OrderID, msg.UserID)

	var err error
	switch msg.Type {
	case domain.EventOrderCreated:
		err = c.processCreated(ctx, msg)
	case domain.EventOrderRated:
		if msg.Rating == nil {
			log.Printf("Ignoring rating event for order %d without a rating", msg.OrderID)
			return
		}
		err = c.Store.RecordRating(ctx, msg.OrderID, *msg.Rating)
	case domain.EventOrderDeleted:
		err = c.Store.RecordOrderDeleted(ctx, msg.OrderID)
	}
	if err != nil {
		log.Printf("Error processing %s for order %d: %v", msg.Type, msg.OrderID, err)
		c.release(ctx, msg.EventID)
		return
	}

	log.Printf("Successfully processed %s for order %d", msg.Type, msg.OrderID)
}

// release drops the processed marker of a failed event so a redelivery is
// not skipped.
func (c *Consumer) release(ctx context.Context, eventID string) {
	if eventID == "" {
		return
	}
	if err := c.Store.ClearProcessed(ctx, eventID); err != nil {
		log.Printf("Error releasing event %s: %v", eventID, err)
	}
}

func (c *Consumer) processCreated(ctx context.Context, msg domain.OrderEvent) error {
	day := msg.Timestamp.Local()
	if msg.Timestamp.IsZero() {
		day = time.Now()
	}
	return c.Store.RecordOrderCreated(ctx, day, msg.Items)
}
